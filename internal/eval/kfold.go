package eval

import (
	"fmt"
	"math/rand"
)

// Fold is one train/held-out partition of row indices.
type Fold struct {
	Train []int
	Test  []int
}

// KFold shuffles n row indices with the given seed and partitions them into
// k folds. Held-out sets are disjoint, cover every index exactly once, and
// differ in size by at most one.
func KFold(n, k int, seed int64) ([]Fold, error) {
	if k < 2 {
		return nil, fmt.Errorf("fold count must be at least 2, got %d", k)
	}
	if n < k {
		return nil, fmt.Errorf("cannot split %d rows into %d folds", n, k)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(a, b int) {
		indices[a], indices[b] = indices[b], indices[a]
	})

	folds := make([]Fold, k)
	base := n / k
	extra := n % k

	start := 0
	for f := 0; f < k; f++ {
		size := base
		if f < extra {
			size++
		}
		test := indices[start : start+size]
		start += size

		train := make([]int, 0, n-size)
		train = append(train, indices[:start-size]...)
		train = append(train, indices[start:]...)

		folds[f] = Fold{
			Train: train,
			Test:  append([]int(nil), test...),
		}
	}
	return folds, nil
}
