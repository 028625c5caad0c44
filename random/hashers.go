package random

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/exp/constraints"
)

// HashString is a 'Hash[string]' hashing the string content with xxhash64.
func HashString(s string) uint64 {
	return xxhash.ChecksumString64(s)
}

// HashBytes is a 'Hash[[]byte]' hashing the slice content with xxhash64.
//
// NOTE: Byte slices are hashed by content, the projection is only consistent with 'bytes.Equal' and not with slice
// identity.
func HashBytes(b []byte) uint64 {
	return xxhash.Checksum64(b)
}

// HashNumber returns a 'Hash' for the given integer type, hashing the 8-byte little-endian encoding of the value with
// xxhash64.
func HashNumber[E constraints.Integer]() Hash[E] {
	return func(e E) uint64 {
		var buf [8]byte

		binary.LittleEndian.PutUint64(buf[:], uint64(e))

		return xxhash.Checksum64(buf[:])
	}
}
