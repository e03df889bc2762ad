// Package hashbag is a map-backed frequency table. It answers "how many of
// x" in O(1), which makes it a cheap oracle for the linear bags in package
// gobag.
package hashbag

type HashBag[K comparable] map[K]uint32

func New[K comparable]() HashBag[K] {
	return make(map[K]uint32)
}

func From[K comparable](keys ...K) HashBag[K] {
	bag := New[K]()

	for _, key := range keys {
		Insert(bag, key)
	}

	return bag
}

func Insert[K comparable](bag HashBag[K], key K) {
	bag[key]++
}

// Remove drops one occurrence of key. Keys whose count reaches zero are
// deleted so that Keys only reports present entries.
func Remove[K comparable](bag HashBag[K], key K) bool {
	count, ok := bag[key]

	if !ok {
		return false
	}

	if count > 1 {
		bag[key]--
		return true
	}

	delete(bag, key)

	return true
}

func Count[K comparable](bag HashBag[K], key K) int {
	return int(bag[key])
}

// Len is the total number of occurrences, not the number of distinct keys.
func Len[K comparable](bag HashBag[K]) int {
	total := 0

	for _, count := range bag {
		total += int(count)
	}

	return total
}

// Keys returns the distinct keys in unspecified order.
func Keys[K comparable](bag HashBag[K]) []K {
	keys := make([]K, 0, len(bag))

	for key := range bag {
		keys = append(keys, key)
	}

	return keys
}
