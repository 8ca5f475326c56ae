package bosm

// repeatRun mirrors the RepeatRun entity: a collapsed run of run_length
// equal deltas starting at start_index in the uncollapsed raw sequence.
type repeatRun struct {
	start  uint32
	length uint32
}

// deltaRLE subtracts the block minimum from every value and collapses
// runs of equal deltas into a single entry, recording (start, length) in
// runs. maxDelta is the delta range (max-min) needed by MedianSplit.
//
// The trailing run at end-of-block is collapsed by the same >7 rule as
// every other run: spec.md's §4.3 step 4 describes the trailing flush as
// exempt from the threshold, but that reading contradicts the literal S1
// scenario (a 16-long constant block must produce a single run entry, not
// 16 inline values). The worked example is the stronger signal, so the
// threshold is applied uniformly here; see DESIGN.md.
func deltaRLE(raw []int32) (minVal int32, maxDelta uint32, deltas []uint32, runs []repeatRun) {
	minVal, maxVal := raw[0], raw[0]
	for _, v := range raw[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	maxDelta = uint32(maxVal) - uint32(minVal)

	delta := func(v int32) uint32 { return uint32(v) - uint32(minVal) }

	L := len(raw)
	deltas = make([]uint32, 0, L)
	preDelta := delta(raw[0])
	run := 1
	runStart := 0

	flush := func(start, length int, d uint32) {
		if length > 7 {
			runs = append(runs, repeatRun{start: uint32(start), length: uint32(length)})
			deltas = append(deltas, d)
			return
		}
		for k := 0; k < length; k++ {
			deltas = append(deltas, d)
		}
	}

	for j := 1; j < L; j++ {
		d := delta(raw[j])
		if d == preDelta {
			run++
			continue
		}
		flush(runStart, run, preDelta)
		run = 1
		runStart = j
		preDelta = d
	}
	flush(runStart, run, preDelta)

	return minVal, maxDelta, deltas, runs
}

// expandDeltas reconstructs the L raw values of a block from its
// collapsed deltas and run table, mirroring the cursor walk in the design
// notes: repeat_i tracks the next run to expand, cur_i the position in
// the uncollapsed output.
func expandDeltas(minVal int32, deltas []uint32, runs []repeatRun, L int) ([]int32, error) {
	out := make([]int32, 0, L)
	repeatI := 0
	deltaI := 0
	curI := 0
	for curI < L {
		if repeatI < len(runs) && uint32(curI) == runs[repeatI].start {
			if deltaI >= len(deltas) {
				return nil, ErrCorruptHeader
			}
			d := deltas[deltaI]
			length := int(runs[repeatI].length)
			if curI+length > L {
				return nil, ErrCorruptHeader
			}
			for k := 0; k < length; k++ {
				out = append(out, int32(uint32(minVal)+d))
			}
			curI += length
			deltaI++
			repeatI++
			continue
		}
		if deltaI >= len(deltas) {
			return nil, ErrCorruptHeader
		}
		out = append(out, int32(uint32(minVal)+deltas[deltaI]))
		deltaI++
		curI++
	}
	return out, nil
}
