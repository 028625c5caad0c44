package random

import "golang.org/x/exp/slices"

// InPlace returns a slice of 'p' distinct elements picked at random from the given slice.
//
// Every drawn element is swapped behind the active range whether it was a duplicate or not, so each position is drawn
// at most once and the function performs at most len(src) draws. Duplicates are detected with a linear scan of the
// elements picked so far.
//
// NOTE: This function alters the order of the elements in the given slice, including when it returns an error; the
// slice must not be accessed concurrently for the duration of the call.
func InPlace[S ~[]E, E comparable](src S, p int, opts ...Option) (S, error) {
	if err := checkPreconditions(len(src), p); err != nil {
		return nil, err
	}

	options := newOptions(opts...)

	var (
		dest   = make(S, p)
		filled int
		offset int
	)

	for filled != p && offset < len(src) {
		i := index(options.source, len(src)-offset)

		picked := src[i]

		if !slices.Contains(dest[:filled], picked) {
			dest[filled] = picked
			filled++
		}

		swapWithLastUnpicked(src, i, offset)
		offset++
	}

	if filled != p {
		return nil, ErrTooManyDuplicates
	}

	return dest, nil
}

// swapWithLastUnpicked swaps the element at index i with the last element of the active range, shrinking the range by
// one; offset is the number of elements already moved behind it.
func swapWithLastUnpicked[S ~[]E, E any](src S, i, offset int) {
	last := len(src) - 1 - offset
	src[i], src[last] = src[last], src[i]
}
