package gobag

import (
	"iter"

	"github.com/STBoyden/gobag/option"
)

type node[T comparable] struct {
	data T
	next *node[T]
}

// ChainBag stores its entries in a singly linked chain. New entries become
// the head, so traversal runs from the most recently added entry to the
// oldest. A ChainBag is never full.
//
// The zero value is an empty bag ready to use.
type ChainBag[T comparable] struct {
	head  *node[T]
	count int
}

var _ Bag[int] = (*ChainBag[int])(nil)

func NewChainBag[T comparable]() *ChainBag[T] {
	return &ChainBag[T]{}
}

// ChainBagOf creates a bag holding items. Traversal yields them in reverse.
func ChainBagOf[T comparable](items ...T) *ChainBag[T] {
	bag := NewChainBag[T]()

	for _, item := range items {
		bag.push(item)
	}

	return bag
}

func (b *ChainBag[T]) Size() int {
	return b.count
}

func (b *ChainBag[T]) IsEmpty() bool {
	return b.count == 0
}

// Add links item in as the new head. It never fails.
func (b *ChainBag[T]) Add(item T) error {
	b.push(item)
	return nil
}

func (b *ChainBag[T]) push(item T) {
	b.head = &node[T]{data: item, next: b.head}
	b.count++
}

// RemoveAny detaches the head, i.e. the most recently added entry.
func (b *ChainBag[T]) RemoveAny() option.Option[T] {
	if b.head == nil {
		return option.None[T]()
	}

	return option.Some(b.pop())
}

func (b *ChainBag[T]) pop() T {
	head := b.head

	b.head = head.next
	head.next = nil
	b.count--

	return head.data
}

// RemoveOne overwrites the first node holding item with the head's entry and
// then drops the head node. The head's entry therefore moves to where item
// was, and the traversal order of the remaining entries changes.
func (b *ChainBag[T]) RemoveOne(item T) bool {
	found := b.find(item)
	if found == nil {
		return false
	}

	found.data = b.head.data
	b.pop()

	return true
}

func (b *ChainBag[T]) find(item T) *node[T] {
	for current := b.head; current != nil; current = current.next {
		if current.data == item {
			return current
		}
	}

	return nil
}

// Clear drops the whole chain at once; the nodes become garbage together.
func (b *ChainBag[T]) Clear() {
	b.head = nil
	b.count = 0
}

func (b *ChainBag[T]) Frequency(item T) int {
	frequency := 0

	for current := b.head; current != nil; current = current.next {
		if current.data == item {
			frequency++
		}
	}

	return frequency
}

func (b *ChainBag[T]) Contains(item T) bool {
	return b.find(item) != nil
}

// ToSlice returns the entries in head-to-tail order. An empty bag yields an
// empty, non-nil slice.
func (b *ChainBag[T]) ToSlice() []T {
	entries := make([]T, 0, b.count)

	for current := b.head; current != nil; current = current.next {
		entries = append(entries, current.data)
	}

	return entries
}

func (b *ChainBag[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := b.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (b *ChainBag[T]) String() string {
	return format[T](b.All())
}

func (b *ChainBag[T]) Union(other Bag[T]) (Bag[T], error) {
	return union[T](NewChainBag[T](), b, other)
}

func (b *ChainBag[T]) Intersection(other Bag[T]) (Bag[T], error) {
	return intersection[T](NewChainBag[T](), b, other)
}

func (b *ChainBag[T]) Difference(other Bag[T]) (Bag[T], error) {
	return difference[T](NewChainBag[T](), b, other)
}
