package random

// Hash projects an element onto a 64-bit hash identity. The projection must be consistent with equality, equal
// elements must hash equal; the converse need not hold.
type Hash[E any] func(E) uint64

// Hashed returns a slice of 'p' distinct elements picked at random from the given slice, using the same swap-to-tail
// strategy as 'InPlace' but detecting duplicates via a set of the hash identities picked so far, making the duplicate
// check near constant time.
//
// Only hash identities are ever compared, never the elements themselves: two distinct elements which collide under
// the given hash are treated as duplicates. Callers requiring strict equality-based deduplication should use
// 'InPlace'.
//
// NOTE: This function alters the order of the elements in the given slice, including when it returns an error; the
// slice must not be accessed concurrently for the duration of the call.
func Hashed[S ~[]E, E any](src S, p int, hash Hash[E], opts ...Option) (S, error) {
	if hash == nil {
		panic("random: a hash projection must be provided")
	}

	if err := checkPreconditions(len(src), p); err != nil {
		return nil, err
	}

	options := newOptions(opts...)

	var (
		dest   = make(S, p)
		seen   = make(map[uint64]struct{}, p)
		filled int
		offset int
	)

	for filled != p && offset < len(src) {
		i := index(options.source, len(src)-offset)

		picked := src[i]

		if identity := hash(picked); !contains(seen, identity) {
			dest[filled] = picked
			seen[identity] = struct{}{}
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

func contains(seen map[uint64]struct{}, identity uint64) bool {
	_, ok := seen[identity]
	return ok
}
