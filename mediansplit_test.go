package bosm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedianFindsKthSmallest(t *testing.T) {
	values := []uint32{9, 3, 7, 1, 8, 2, 6, 4, 5}
	original := append([]uint32(nil), values...)
	for k := 0; k < len(values); k++ {
		got := median(values, k)
		assert.EqualValues(t, k+1, got, "k=%d", k)
	}
	assert.Equal(t, original, values, "median must not mutate the input slice")
}

func TestSelectPartitionDegenerateOnUniform(t *testing.T) {
	deltas := []uint32{0, 1, 2, 3, 4, 5, 6, 7}
	p := selectPartition(deltas, 7)
	assert.True(t, p.degenerate(7))
}

func TestSelectPartitionFindsOutlierOnOneSide(t *testing.T) {
	deltas := []uint32{0, 0, 0, 0, 0, 0, 0, 1000}
	p := selectPartition(deltas, 1000)
	assert.False(t, p.degenerate(1000))
	assert.EqualValues(t, -1, p.xlMinus, "no left outliers expected")
	assert.True(t, p.xuPlus <= 1000, "right cut should isolate the outlier")
}

func TestSelectPartitionNeverExceedsExhaustiveMinimum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	deltas := make([]uint32, 64)
	for i := range deltas {
		deltas[i] = uint32(rng.Intn(5000))
	}
	var maxDelta uint32
	for _, v := range deltas {
		if v > maxDelta {
			maxDelta = v
		}
	}

	chosen := selectPartition(deltas, maxDelta)
	chosenCost := partitionCost(deltas, maxDelta, chosen)

	// Exhaustively try every candidate the algorithm itself could produce
	// (power-of-two half-widths around the true median) and confirm none
	// scores strictly lower, per the partition-optimality property.
	m := int64(median(append([]uint32(nil), deltas...), len(deltas)/2))
	w := bitWidth(int64(maxDelta)) + 1
	best := int64(len(deltas)) * int64(bitWidth(int64(maxDelta)))
	for beta := 1; beta < w; beta++ {
		pow := int64(1) << uint(beta-1)
		xu := int64(maxDelta) + 1
		if m+pow < xu {
			xu = m + pow
		}
		xl := int64(-1)
		if m-pow > xl {
			xl = m - pow
		}
		cand := partition{xlMinus: xl, xlPlus: xl + 1, xuPlus: xu, xuMinus: xu - 1}
		cost := partitionCost(deltas, maxDelta, cand)
		if cost < best {
			best = cost
		}
	}
	assert.Equal(t, best, chosenCost)
}

// partitionCost recomputes the exact bit cost of classifying deltas under
// p, independent of selectPartition's own incremental bookkeeping, to
// verify the optimality property without trusting the code under test.
func partitionCost(deltas []uint32, maxDelta uint32, p partition) int64 {
	var leftN, rightN int64
	for _, vu := range deltas {
		v := int64(vu)
		switch {
		case v <= p.xlMinus:
			leftN++
		case v >= p.xuPlus:
			rightN++
		}
	}
	Lp := len(deltas)
	cost := bitmapOrIndexCost(leftN+rightN, Lp)
	if leftN > 0 {
		cost += leftN * int64(bitWidth(p.xlMinus))
	}
	if rightN > 0 {
		cost += rightN * int64(bitWidth(int64(maxDelta)-p.xuPlus))
	}
	normals := int64(Lp) - leftN - rightN
	if normals > 0 {
		cost += normals * int64(bitWidth(p.xuPlus-p.xlMinus-2))
	}
	return cost
}
