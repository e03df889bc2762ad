package gobag

import (
	"fmt"
	"iter"

	e "github.com/STBoyden/gobag/error"
	"github.com/STBoyden/gobag/option"
)

const (
	// DefaultCapacity is the initial buffer size used by NewArrayBag.
	DefaultCapacity = 25

	// DefaultMaxCapacity bounds how large an ArrayBag may grow unless
	// WithMaxCapacity says otherwise.
	DefaultMaxCapacity = 10000
)

type arrayConfig struct {
	maxCapacity int
}

// ArrayOption configures an ArrayBag at construction time.
type ArrayOption func(cfg *arrayConfig)

// WithMaxCapacity sets the largest capacity the bag may grow to. Negative
// values are rejected by the constructors.
func WithMaxCapacity(maxCapacity int) ArrayOption {
	return func(cfg *arrayConfig) {
		cfg.maxCapacity = maxCapacity
	}
}

// ArrayBag stores its entries in the prefix [0, count) of a buffer whose
// length is the bag's capacity. Slots past count always hold the zero value
// so removed entries are not kept alive.
type ArrayBag[T comparable] struct {
	buf         []T
	count       int
	maxCapacity int
}

var _ Bag[int] = (*ArrayBag[int])(nil)

// NewArrayBag creates an empty bag with DefaultCapacity, or the maximum
// capacity if that is smaller. A negative maximum is treated as zero.
func NewArrayBag[T comparable](opts ...ArrayOption) *ArrayBag[T] {
	cfg := newArrayConfig(opts)
	cfg.maxCapacity = max(cfg.maxCapacity, 0)

	return &ArrayBag[T]{
		buf:         make([]T, min(DefaultCapacity, cfg.maxCapacity)),
		maxCapacity: cfg.maxCapacity,
	}
}

// NewArrayBagWithCapacity creates an empty bag with room for initialCapacity
// entries. It fails with a CapacityExceeded error when initialCapacity is
// above the maximum capacity.
func NewArrayBagWithCapacity[T comparable](initialCapacity int, opts ...ArrayOption) (*ArrayBag[T], error) {
	cfg := newArrayConfig(opts)

	if cfg.maxCapacity < 0 {
		return nil, e.New(e.InvalidCapacity, fmt.Sprintf("maximum capacity %d is negative", cfg.maxCapacity))
	}

	if initialCapacity < 0 {
		return nil, e.New(e.InvalidCapacity, fmt.Sprintf("initial capacity %d is negative", initialCapacity))
	}

	if initialCapacity > cfg.maxCapacity {
		return nil, e.New(e.CapacityExceeded, fmt.Sprintf("initial capacity %d is above the maximum of %d", initialCapacity, cfg.maxCapacity))
	}

	return &ArrayBag[T]{
		buf:         make([]T, initialCapacity),
		maxCapacity: cfg.maxCapacity,
	}, nil
}

// ArrayBagOf creates a bag holding items, in order, using the default limits.
func ArrayBagOf[T comparable](items ...T) (*ArrayBag[T], error) {
	bag, err := NewArrayBagWithCapacity[T](min(max(len(items), DefaultCapacity), DefaultMaxCapacity))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := bag.Add(item); err != nil {
			return nil, err
		}
	}

	return bag, nil
}

func newArrayConfig(opts []ArrayOption) arrayConfig {
	cfg := arrayConfig{maxCapacity: DefaultMaxCapacity}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (b *ArrayBag[T]) Size() int {
	return b.count
}

func (b *ArrayBag[T]) IsEmpty() bool {
	return b.count == 0
}

// Capacity returns the current buffer size.
func (b *ArrayBag[T]) Capacity() int {
	return len(b.buf)
}

func (b *ArrayBag[T]) MaxCapacity() int {
	return b.maxCapacity
}

// Add appends item, doubling the buffer first when it is full. When doubling
// would pass the maximum capacity the buffer grows to exactly the maximum;
// only a bag that is already at the maximum rejects the item.
func (b *ArrayBag[T]) Add(item T) error {
	if b.count == len(b.buf) {
		if err := b.grow(); err != nil {
			return err
		}
	}

	b.buf[b.count] = item
	b.count++

	return nil
}

func (b *ArrayBag[T]) grow() error {
	capacity := len(b.buf)

	if capacity >= b.maxCapacity {
		return e.New(e.CapacityExceeded, fmt.Sprintf("bag is full at the maximum capacity of %d", b.maxCapacity))
	}

	newCapacity := min(max(2*capacity, 1), b.maxCapacity)

	buf := make([]T, newCapacity)
	copy(buf, b.buf[:b.count])
	b.buf = buf

	return nil
}

// RemoveAny removes the most recently placed entry, which is the last
// occupied slot.
func (b *ArrayBag[T]) RemoveAny() option.Option[T] {
	if b.count == 0 {
		return option.None[T]()
	}

	return option.Some(b.removeAt(b.count - 1))
}

// RemoveOne fills the vacated slot with the last entry, so the index order of
// the remaining entries is not preserved.
func (b *ArrayBag[T]) RemoveOne(item T) bool {
	index := b.indexOf(item)
	if index < 0 {
		return false
	}

	b.removeAt(index)

	return true
}

func (b *ArrayBag[T]) removeAt(index int) T {
	var zero T

	last := b.count - 1
	entry := b.buf[index]

	b.buf[index] = b.buf[last]
	b.buf[last] = zero
	b.count--

	return entry
}

func (b *ArrayBag[T]) indexOf(item T) int {
	for i := 0; i < b.count; i++ {
		if b.buf[i] == item {
			return i
		}
	}

	return -1
}

// Clear empties the bag but keeps its current capacity.
func (b *ArrayBag[T]) Clear() {
	clear(b.buf[:b.count])
	b.count = 0
}

func (b *ArrayBag[T]) Frequency(item T) int {
	frequency := 0

	for i := 0; i < b.count; i++ {
		if b.buf[i] == item {
			frequency++
		}
	}

	return frequency
}

func (b *ArrayBag[T]) Contains(item T) bool {
	return b.indexOf(item) >= 0
}

// ToSlice returns the entries in index order. An empty bag yields an empty,
// non-nil slice.
func (b *ArrayBag[T]) ToSlice() []T {
	entries := make([]T, b.count)
	copy(entries, b.buf[:b.count])

	return entries
}

func (b *ArrayBag[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(b.buf[i]) {
				return
			}
		}
	}
}

func (b *ArrayBag[T]) String() string {
	return format[T](b.All())
}

func (b *ArrayBag[T]) Union(other Bag[T]) (Bag[T], error) {
	return union[T](b.empty(b.count+other.Size()), b, other)
}

func (b *ArrayBag[T]) Intersection(other Bag[T]) (Bag[T], error) {
	return intersection[T](b.empty(min(b.count, other.Size())), b, other)
}

func (b *ArrayBag[T]) Difference(other Bag[T]) (Bag[T], error) {
	return difference[T](b.empty(b.count), b, other)
}

// empty returns a bag with the receiver's limits, pre-sized for the expected
// number of entries.
func (b *ArrayBag[T]) empty(expected int) Bag[T] {
	return &ArrayBag[T]{
		buf:         make([]T, min(expected, b.maxCapacity)),
		maxCapacity: b.maxCapacity,
	}
}
