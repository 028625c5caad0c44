package random

import "golang.org/x/exp/slices"

// Rebuild returns a slice of 'p' distinct elements picked at random from the given slice, leaving the given slice
// untouched.
//
// After each draw the working copy is rebuilt without the drawn element, allocating a fresh slice every time. This
// makes the function quadratic in the length of the source; it exists as a correctness and performance baseline, use
// 'InPlace' or 'Hashed' instead.
func Rebuild[S ~[]E, E comparable](src S, p int, opts ...Option) (S, error) {
	if err := checkPreconditions(len(src), p); err != nil {
		return nil, err
	}

	options := newOptions(opts...)

	work := make(S, len(src))
	copy(work, src)

	var (
		dest   = make(S, p)
		filled int
	)

	for filled != p && len(work) > 0 {
		i := index(options.source, len(work))

		picked := work[i]

		if !slices.Contains(dest[:filled], picked) {
			dest[filled] = picked
			filled++
		}

		// Drop the drawn element by splitting the working copy around it and joining both halves into a fresh slice.
		next := make(S, 0, len(work)-1)
		next = append(next, work[:i]...)
		next = append(next, work[i+1:]...)

		work = next
	}

	if filled != p {
		return nil, ErrTooManyDuplicates
	}

	return dest, nil
}
