// Package gobag provides multisets ("bags") over comparable element types.
//
// Two storage strategies satisfy the same Bag interface: ArrayBag keeps its
// entries in a contiguous buffer that doubles when full, ChainBag keeps them
// in a singly linked chain of nodes. Callers that only depend on Bag can swap
// one for the other freely.
//
// Bags are not safe for concurrent use.
package gobag

import (
	"fmt"
	"iter"
	"strings"

	"github.com/STBoyden/gobag/option"
)

// Bag is a collection that permits duplicates and tracks how many times each
// element occurs.
type Bag[T comparable] interface {
	// Size returns the number of entries, counting duplicates.
	Size() int
	IsEmpty() bool

	// Add inserts one occurrence of item. Only capacity-bounded bags can
	// fail, in which case the bag is left exactly as it was.
	Add(item T) error

	// RemoveAny removes an unspecified entry and returns it, or None if the
	// bag is empty.
	RemoveAny() option.Option[T]

	// RemoveOne removes a single occurrence of item. It reports whether an
	// occurrence was found.
	RemoveOne(item T) bool

	Clear()

	// Frequency returns the number of occurrences of item.
	Frequency(item T) int
	Contains(item T) bool

	// ToSlice returns a freshly allocated snapshot of the entries in the
	// bag's traversal order.
	ToSlice() []T

	// All iterates the entries in the same order as ToSlice. The bag must
	// not be modified during iteration.
	All() iter.Seq[T]

	// Union, Intersection and Difference build a new bag of the receiver's
	// kind. Neither operand is modified, and the result shares no storage
	// with either of them.
	Union(other Bag[T]) (Bag[T], error)
	Intersection(other Bag[T]) (Bag[T], error)
	Difference(other Bag[T]) (Bag[T], error)
}

// format renders entries the same way for every bag kind, e.g. "[1, 2, 2]".
func format[T any](entries iter.Seq[T]) string {
	var sb strings.Builder

	sb.WriteByte('[')

	first := true
	for entry := range entries {
		if !first {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, entry)
		first = false
	}

	sb.WriteByte(']')

	return sb.String()
}
