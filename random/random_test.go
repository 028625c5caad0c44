package random

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// samplers exposes the three variants behind a common signature so the shared contract can be tested uniformly.
var samplers = []struct {
	name string
	fn   func(src []int, p int, opts ...Option) ([]int, error)
}{
	{
		name: "Rebuild",
		fn:   Rebuild[[]int, int],
	},
	{
		name: "InPlace",
		fn:   InPlace[[]int, int],
	},
	{
		name: "Hashed",
		fn: func(src []int, p int, opts ...Option) ([]int, error) {
			return Hashed(src, p, HashNumber[int](), opts...)
		},
	},
}

func TestSampleLengthAndDistinctness(t *testing.T) {
	const (
		sourceLength = 32_768
		sampleLength = 1_024
		maxValue     = 1 << 31
	)

	for _, sampler := range samplers {
		t.Run(sampler.name, func(t *testing.T) {
			src := randomSource(sourceLength, maxValue)

			original := make(map[int]struct{}, len(src))
			for _, e := range src {
				original[e] = struct{}{}
			}

			sample, err := sampler.fn(src, sampleLength)
			require.NoError(t, err)
			require.Len(t, sample, sampleLength)

			seen := make(map[int]struct{}, len(sample))

			for _, e := range sample {
				_, duplicate := seen[e]
				require.False(t, duplicate, "element %d sampled twice", e)

				seen[e] = struct{}{}

				require.Contains(t, original, e)
				require.GreaterOrEqual(t, e, 0)
				require.Less(t, e, maxValue)
			}
		})
	}
}

func TestSampleWholeSource(t *testing.T) {
	for _, sampler := range samplers {
		t.Run(sampler.name, func(t *testing.T) {
			sample, err := sampler.fn([]int{1, 2, 3, 4, 5}, 5)
			require.NoError(t, err)
			require.ElementsMatch(t, []int{1, 2, 3, 4, 5}, sample)
		})
	}
}

func TestSampleAllDistinctValues(t *testing.T) {
	for _, sampler := range samplers {
		t.Run(sampler.name, func(t *testing.T) {
			sample, err := sampler.fn([]int{5, 5, 5, 7}, 2)
			require.NoError(t, err)
			require.ElementsMatch(t, []int{5, 7}, sample)
		})
	}
}

func TestSampleTooManyDuplicates(t *testing.T) {
	type test struct {
		name string
		src  []int
		p    int
	}

	tests := []*test{
		{
			name: "MoreThanDistinctValues",
			src:  []int{5, 5, 5, 7},
			p:    3,
		},
		{
			name: "ThreeDistinctValuesOutOf32",
			src:  randomSource(32, 3),
			p:    31,
		},
	}

	for _, sampler := range samplers {
		for _, test := range tests {
			t.Run(sampler.name+test.name, func(t *testing.T) {
				src := make([]int, len(test.src))
				copy(src, test.src)

				_, err := sampler.fn(src, test.p)
				require.ErrorIs(t, err, ErrTooManyDuplicates)
			})
		}
	}
}

func TestSampleInvalidSampleSize(t *testing.T) {
	type test struct {
		name string
		src  []int
		p    int
	}

	tests := []*test{
		{
			name: "Zero",
			src:  randomSource(32, 3),
		},
		{
			name: "ZeroWithEmptySource",
			src:  []int{},
		},
		{
			name: "ZeroWithNilSource",
		},
		{
			name: "GreaterThanSourceLength",
			src:  randomSource(32, 3),
			p:    33,
		},
	}

	for _, sampler := range samplers {
		for _, test := range tests {
			t.Run(sampler.name+test.name, func(t *testing.T) {
				_, err := sampler.fn(test.src, test.p)

				var invalidSampleSize InvalidSampleSizeError

				require.ErrorAs(t, err, &invalidSampleSize)
				require.Equal(t, test.p, invalidSampleSize.Size)
				require.Equal(t, len(test.src), invalidSampleSize.Length)
			})
		}
	}
}

func TestSampleWithSeededSource(t *testing.T) {
	const (
		sourceLength = 1_024
		sampleLength = 128
		seed         = 42
	)

	src := randomSource(sourceLength, 1<<31)

	for _, sampler := range samplers {
		t.Run(sampler.name, func(t *testing.T) {
			run := func() []int {
				cpy := make([]int, len(src))
				copy(cpy, src)

				sample, err := sampler.fn(cpy, sampleLength, WithSource(rand.New(rand.NewSource(seed))))
				require.NoError(t, err)

				return sample
			}

			require.Equal(t, run(), run())
		})
	}
}

func TestRebuildLeavesSourceUntouched(t *testing.T) {
	src := randomSource(1_024, 1<<31)

	cpy := make([]int, len(src))
	copy(cpy, src)

	_, err := Rebuild(src, 128)
	require.NoError(t, err)
	require.Equal(t, cpy, src)
}

func TestInPlacePermutesSource(t *testing.T) {
	src := randomSource(1_024, 1<<31)

	cpy := make([]int, len(src))
	copy(cpy, src)

	_, err := InPlace(src, 128)
	require.NoError(t, err)
	require.ElementsMatch(t, cpy, src)
}

func TestIndexUpperBoundary(t *testing.T) {
	// A draw arbitrarily close to one must still map below the slice length.
	source := stubSource{draw: math.Nextafter(1, 0)}

	for _, n := range []int{1, 2, 31, 1_024} {
		i := index(source, n)
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, n)
	}
}

func TestIndexLowerBoundary(t *testing.T) {
	require.Zero(t, index(stubSource{}, 1_024))
}

func TestCheckPreconditions(t *testing.T) {
	type test struct {
		name  string
		n     int
		p     int
		valid bool
	}

	tests := []*test{
		{
			name: "ZeroSampleSize",
			n:    32,
		},
		{
			name: "ZeroSampleSizeAndLength",
		},
		{
			name: "SampleSizeGreaterThanLength",
			n:    32,
			p:    33,
		},
		{
			name:  "SampleSizeEqualToLength",
			n:     32,
			p:     32,
			valid: true,
		},
		{
			name:  "SampleSizeSmallerThanLength",
			n:     32,
			p:     1,
			valid: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := checkPreconditions(test.n, test.p)

			if test.valid {
				require.NoError(t, err)
				return
			}

			require.ErrorAs(t, err, &InvalidSampleSizeError{})
		})
	}
}

// stubSource always returns the same draw.
type stubSource struct {
	draw float64
}

func (s stubSource) Float64() float64 {
	return s.draw
}

// randomSource returns a slice of n random integers in [0, maxValue).
func randomSource(n, maxValue int) []int {
	src := make([]int, n)

	for i := range src {
		src[i] = rand.Intn(maxValue)
	}

	return src
}
