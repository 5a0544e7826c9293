package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKFoldPartitionsAreDisjointAndComplete(t *testing.T) {
	const n, k = 23, 5

	folds, err := KFold(n, k, 42)
	require.NoError(t, err)
	require.Len(t, folds, k)

	seen := make(map[int]int)
	for fi, fold := range folds {
		// Held-out rows never appear in their own training set.
		train := make(map[int]struct{}, len(fold.Train))
		for _, idx := range fold.Train {
			train[idx] = struct{}{}
		}
		for _, idx := range fold.Test {
			_, overlaps := train[idx]
			assert.False(t, overlaps, "fold %d: index %d in both train and test", fi, idx)
			seen[idx]++
		}

		assert.Len(t, fold.Train, n-len(fold.Test), "fold %d train size", fi)
	}

	// Every index is held out exactly once.
	require.Len(t, seen, n)
	for idx, count := range seen {
		assert.Equal(t, 1, count, "index %d held out %d times", idx, count)
	}
}

func TestKFoldSizesDifferByAtMostOne(t *testing.T) {
	folds, err := KFold(10, 3, 1)
	require.NoError(t, err)

	sizes := []int{len(folds[0].Test), len(folds[1].Test), len(folds[2].Test)}
	min, max := sizes[0], sizes[0]
	for _, s := range sizes[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	assert.LessOrEqual(t, max-min, 1)
	assert.Equal(t, 10, sizes[0]+sizes[1]+sizes[2])
}

func TestKFoldDeterministicForSeed(t *testing.T) {
	first, err := KFold(50, 5, 42)
	require.NoError(t, err)
	second, err := KFold(50, 5, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	different, err := KFold(50, 5, 43)
	require.NoError(t, err)
	assert.NotEqual(t, first, different)
}

func TestKFoldRejectsBadArguments(t *testing.T) {
	_, err := KFold(10, 1, 42)
	require.Error(t, err)

	_, err = KFold(3, 5, 42)
	require.Error(t, err)
}
