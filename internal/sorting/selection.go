package sorting

// SelectionTrace records a selection sort over values. Each pass marks
// the slot under consideration, scans the rest of the array for a
// strictly smaller element, re-keying whenever the running minimum
// moves, and exchanges once at the end of the scan when needed.
func SelectionTrace(values []int) Trace {
	work := make([]int, len(values))
	copy(work, values)

	if len(work) < 2 {
		return Trace{{Op: OpDone, I: len(work) - 1}}
	}

	var trace Trace
	for i := 0; i < len(work); i++ {
		min := i
		trace = append(trace, Step{Op: OpKey, I: i})

		for j := i + 1; j < len(work); j++ {
			trace = append(trace, Step{Op: OpCompare, I: min, J: j})
			if work[j] < work[min] {
				min = j
				trace = append(trace, Step{Op: OpKey, I: min})
			}
		}

		if min != i {
			trace = append(trace, Step{Op: OpSwap, I: i, J: min})
			work[i], work[min] = work[min], work[i]
		}

		trace = append(trace, Step{Op: OpSortedPrefix, I: i})
	}

	trace = append(trace, Step{Op: OpDone, I: len(work) - 1})
	return trace
}
