package partition

import (
	"math/rand"

	"datasplit/internal/config"
)

// Split names one of the three output partitions. Its value doubles as the
// subdirectory name.
type Split string

const (
	Train Split = "train"
	Val   Split = "val"
	Test  Split = "test"
)

// Splits lists the partitions in slicing order.
var Splits = []Split{Train, Val, Test}

// Sizes holds the number of samples per split.
type Sizes struct {
	Train int
	Val   int
	Test  int
}

// Total returns Train + Val + Test.
func (s Sizes) Total() int {
	return s.Train + s.Val + s.Test
}

// ComputeSizes floors n*ratio for train and val and gives test the remainder,
// so the three sizes always add up to n. Ratio sums a hair above 1 are clamped
// instead of producing a negative test size.
func ComputeSizes(n int, ratios config.Ratios) Sizes {
	if n <= 0 {
		return Sizes{}
	}
	train := min(int(float64(n)*ratios.Train), n)
	val := min(int(float64(n)*ratios.Val), n-train)
	return Sizes{Train: train, Val: val, Test: n - train - val}
}

// NewRand returns a generator seeded with seed. math/rand sequences for a
// given seed are frozen by the Go 1 compatibility promise, which keeps
// assignments reproducible across Go releases.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Permutation returns the indices [0, n) shuffled with rng (Fisher–Yates via
// rand.Shuffle).
func Permutation(n int, rng *rand.Rand) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	return indices
}

// Assignment partitions [0, N) into three disjoint ordered groups. Index i
// addresses the i-th entry of both sorted listings.
type Assignment struct {
	Train []int
	Val   []int
	Test  []int
}

// Assign shuffles [0, n) with rng and slices the permutation into train, val
// and test groups of ComputeSizes(n, ratios), in that order.
func Assign(n int, ratios config.Ratios, rng *rand.Rand) Assignment {
	perm := Permutation(n, rng)
	sizes := ComputeSizes(n, ratios)
	return Assignment{
		Train: perm[:sizes.Train:sizes.Train],
		Val:   perm[sizes.Train : sizes.Train+sizes.Val : sizes.Train+sizes.Val],
		Test:  perm[sizes.Train+sizes.Val:],
	}
}

// Indices returns the group for split.
func (a Assignment) Indices(split Split) []int {
	switch split {
	case Train:
		return a.Train
	case Val:
		return a.Val
	case Test:
		return a.Test
	default:
		return nil
	}
}

// Sizes reports the group lengths.
func (a Assignment) Sizes() Sizes {
	return Sizes{Train: len(a.Train), Val: len(a.Val), Test: len(a.Test)}
}

// Lookup inverts the assignment into a per-index split table of length n.
func (a Assignment) Lookup() []Split {
	out := make([]Split, a.Sizes().Total())
	for _, split := range Splits {
		for _, idx := range a.Indices(split) {
			out[idx] = split
		}
	}
	return out
}
