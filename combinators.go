package gobag

// The combinators only rely on the Bag interface, so both storage kinds share
// them. Each kind supplies an empty result bag of its own kind.
//
// Frequencies are recomputed by linear scans, making intersection and
// difference O(n·m). Elements are only required to be comparable with ==.

func union[T comparable](result, a, b Bag[T]) (Bag[T], error) {
	for entry := range a.All() {
		if err := result.Add(entry); err != nil {
			return nil, err
		}
	}

	for entry := range b.All() {
		if err := result.Add(entry); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func intersection[T comparable](result, a, b Bag[T]) (Bag[T], error) {
	for entry := range a.All() {
		if result.Contains(entry) {
			continue
		}

		copies := min(a.Frequency(entry), b.Frequency(entry))
		if err := addCopies(result, entry, copies); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func difference[T comparable](result, a, b Bag[T]) (Bag[T], error) {
	for entry := range a.All() {
		if result.Contains(entry) {
			continue
		}

		// b may hold more copies than a; never go below zero.
		copies := max(a.Frequency(entry)-b.Frequency(entry), 0)
		if err := addCopies(result, entry, copies); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func addCopies[T comparable](bag Bag[T], entry T, copies int) error {
	for range copies {
		if err := bag.Add(entry); err != nil {
			return err
		}
	}

	return nil
}
