package model

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const minLeafSamples = 2

// treeNode is one node of a CART regression tree. Leaves carry the mean
// target of their samples; internal nodes split on feature <= threshold.
type treeNode struct {
	feature   int
	threshold float64
	value     float64
	left      *treeNode
	right     *treeNode
}

func (n *treeNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *treeNode) predict(x *mat.Dense, row int) float64 {
	node := n
	for !node.isLeaf() {
		if x.At(row, node.feature) <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

// buildTree grows a regression tree on the sample indices. When maxFeatures
// is positive, each split considers a random feature subset (random forest
// style); otherwise all features are candidates.
func buildTree(x *mat.Dense, y []float64, indices []int, depth, maxDepth, maxFeatures int, rng *rand.Rand) *treeNode {
	node := &treeNode{value: meanAt(y, indices)}

	if depth >= maxDepth || len(indices) < 2*minLeafSamples {
		return node
	}

	feature, threshold, ok := bestSplit(x, y, indices, maxFeatures, rng)
	if !ok {
		return node
	}

	var left, right []int
	for _, idx := range indices {
		if x.At(idx, feature) <= threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	if len(left) < minLeafSamples || len(right) < minLeafSamples {
		return node
	}

	node.feature = feature
	node.threshold = threshold
	node.left = buildTree(x, y, left, depth+1, maxDepth, maxFeatures, rng)
	node.right = buildTree(x, y, right, depth+1, maxDepth, maxFeatures, rng)
	return node
}

// bestSplit scans candidate features for the split minimizing the summed
// squared error of the two children.
func bestSplit(x *mat.Dense, y []float64, indices []int, maxFeatures int, rng *rand.Rand) (feature int, threshold float64, ok bool) {
	_, cols := x.Dims()

	candidates := make([]int, cols)
	for j := range candidates {
		candidates[j] = j
	}
	if maxFeatures > 0 && maxFeatures < cols && rng != nil {
		rng.Shuffle(cols, func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
		candidates = candidates[:maxFeatures]
	}

	bestSSE := math.Inf(1)
	values := make([]float64, 0, len(indices))

	for _, j := range candidates {
		values = values[:0]
		for _, idx := range indices {
			values = append(values, x.At(idx, j))
		}
		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		for v := 1; v < len(sorted); v++ {
			if sorted[v] == sorted[v-1] {
				continue
			}
			candidate := (sorted[v] + sorted[v-1]) / 2
			sse, valid := splitSSE(x, y, indices, j, candidate)
			if valid && sse < bestSSE {
				bestSSE = sse
				feature = j
				threshold = candidate
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func splitSSE(x *mat.Dense, y []float64, indices []int, feature int, threshold float64) (float64, bool) {
	var leftSum, rightSum float64
	var leftN, rightN int
	for _, idx := range indices {
		if x.At(idx, feature) <= threshold {
			leftSum += y[idx]
			leftN++
		} else {
			rightSum += y[idx]
			rightN++
		}
	}
	if leftN < minLeafSamples || rightN < minLeafSamples {
		return 0, false
	}

	leftMean := leftSum / float64(leftN)
	rightMean := rightSum / float64(rightN)

	sse := 0.0
	for _, idx := range indices {
		var d float64
		if x.At(idx, feature) <= threshold {
			d = y[idx] - leftMean
		} else {
			d = y[idx] - rightMean
		}
		sse += d * d
	}
	return sse, true
}

func meanAt(y []float64, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	sum := 0.0
	for _, idx := range indices {
		sum += y[idx]
	}
	return sum / float64(len(indices))
}
