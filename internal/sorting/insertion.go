package sorting

// InsertionTrace records an insertion sort over values. Each pass
// marks the key, bubbles it left one adjacent swap at a time while the
// left neighbor is strictly greater, then settles. Equal elements are
// never exchanged, so the sort is stable.
func InsertionTrace(values []int) Trace {
	work := make([]int, len(values))
	copy(work, values)

	var trace Trace
	for i := 1; i < len(work); i++ {
		trace = append(trace, Step{Op: OpKey, I: i})

		j := i
		for j > 0 {
			trace = append(trace, Step{Op: OpCompare, I: j - 1, J: j})
			if work[j-1] <= work[j] {
				break
			}
			trace = append(trace, Step{Op: OpSwap, I: j - 1, J: j})
			work[j-1], work[j] = work[j], work[j-1]
			j--
		}

		trace = append(trace, Step{Op: OpPassDone, I: j})
	}

	trace = append(trace, Step{Op: OpDone, I: len(work) - 1})
	return trace
}
