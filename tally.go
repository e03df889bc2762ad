package gobag

import "github.com/STBoyden/gobag/hashbag"

// Tally counts every entry of bag into a hash-backed frequency table.
func Tally[T comparable](bag Bag[T]) hashbag.HashBag[T] {
	tally := hashbag.New[T]()

	for entry := range bag.All() {
		hashbag.Insert(tally, entry)
	}

	return tally
}
