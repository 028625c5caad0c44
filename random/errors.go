package random

import (
	"errors"
	"fmt"
)

// ErrTooManyDuplicates is returned when the source slice does not contain enough distinct elements to fill a sample
// of the requested size.
var ErrTooManyDuplicates = errors.New("not enough distinct elements in the source slice")

// InvalidSampleSizeError is returned when the requested sample size is zero, or greater than the length of the source
// slice.
type InvalidSampleSizeError struct {
	Size   int
	Length int
}

func (e InvalidSampleSizeError) Error() string {
	if e.Size == 0 {
		return "sample size must not be zero"
	}

	return fmt.Sprintf("sample size %d greater than source length %d", e.Size, e.Length)
}
