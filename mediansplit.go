package bosm

// partition mirrors the Partition entity: a three-way split of the delta
// array into left outliers (v <= xlMinus), right outliers (v >= xuPlus),
// and normals (xlPlus <= v <= xuMinus).
type partition struct {
	xlMinus, xlPlus, xuPlus, xuMinus int64
}

// degenerate reports whether this partition places every delta in the
// normal bucket (k1 == k2 == 0).
func (p partition) degenerate(maxDelta int64) bool {
	return p.xlMinus == -1 && p.xuPlus == maxDelta+1
}

// median returns the k-th smallest element of values without mutating the
// caller's slice, via a Lomuto-partition quickselect. Either of the two
// selection variants mentioned in the design notes is acceptable; Lomuto
// is used here for its simplicity.
func median(values []uint32, k int) uint32 {
	buf := append([]uint32(nil), values...)
	lo, hi := 0, len(buf)-1
	for {
		if lo == hi {
			return buf[lo]
		}
		p := lomutoPartition(buf, lo, hi)
		switch {
		case k == p:
			return buf[p]
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

func lomutoPartition(a []uint32, lo, hi int) int {
	pivot := a[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}

// bitmapOrIndexCost returns the smaller of the bitmap encoding's bit cost
// and the explicit-index-lists encoding's bit cost for n outlier
// positions among Lp collapsed deltas.
func bitmapOrIndexCost(n int64, Lp int) int64 {
	indexCost := n * int64(bitWidth(int64(Lp-1)))
	bitmapCost := int64(Lp) + n
	if indexCost < bitmapCost {
		return indexCost
	}
	return bitmapCost
}

// selectPartition finds the bit-optimal three-way split of deltas around
// their median by exhaustive search over power-of-two half-widths, per
// the scoring function in the design notes. deltas has length Lp;
// maxDelta is the delta range of the (uncollapsed) block.
func selectPartition(deltas []uint32, maxDelta uint32) partition {
	Lp := len(deltas)
	md := int64(maxDelta)
	m := int64(median(deltas, Lp/2))

	w := bitWidth(md) + 1
	countLeft := make([]int64, w+1)
	countRight := make([]int64, w+1)
	for _, vu := range deltas {
		v := int64(vu)
		if v == m {
			continue
		}
		diff := v - m
		if diff < 0 {
			diff = -diff
		}
		beta := bitWidth(diff)
		if v < m {
			countLeft[beta]++
		} else {
			countRight[beta]++
		}
	}

	best := partition{xlMinus: -1, xlPlus: 0, xuPlus: md + 1, xuMinus: md}
	bestCost := int64(Lp) * int64(bitWidth(md))

	var leftN, rightN int64
	for beta := w - 1; beta >= 1; beta-- {
		leftN += countLeft[beta]
		rightN += countRight[beta]

		pow := int64(1) << uint(beta-1)
		xu := md + 1
		if m+pow < xu {
			xu = m + pow
		}
		xl := int64(-1)
		if m-pow > xl {
			xl = m - pow
		}

		cost := bitmapOrIndexCost(leftN+rightN, Lp)
		if leftN > 0 {
			cost += leftN * int64(bitWidth(xl))
		}
		if rightN > 0 {
			cost += rightN * int64(bitWidth(md-xu))
		}
		normalsN := int64(Lp) - leftN - rightN
		if normalsN > 0 {
			cost += normalsN * int64(bitWidth(xu-xl-2))
		}

		if cost < bestCost {
			bestCost = cost
			best = partition{xlMinus: xl, xlPlus: xl + 1, xuPlus: xu, xuMinus: xu - 1}
		}
	}
	return best
}
