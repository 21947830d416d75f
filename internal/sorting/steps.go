// Package sorting produces the exact operation sequences of insertion
// and selection sort so the visualizer can replay them frame by frame.
package sorting

// Op identifies one visualizer-facing operation of a sort run.
type Op int

const (
	// OpKey marks index I as the current key (insertion) or the
	// running minimum (selection).
	OpKey Op = iota
	// OpCompare marks indices I and J as being compared.
	OpCompare
	// OpSwap exchanges the elements at I and J.
	OpSwap
	// OpPassDone ends an insertion pass; transient highlights clear.
	// I is the index the key settled at.
	OpPassDone
	// OpSortedPrefix marks indices 0..I as settled (selection).
	OpSortedPrefix
	// OpDone marks the whole array as sorted.
	OpDone
)

// Step is one operation of a trace.
type Step struct {
	Op   Op
	I, J int
}

// Trace is the full operation sequence of one sort run.
type Trace []Step

// Swaps returns only the exchange operations of the trace.
func (t Trace) Swaps() []Step {
	swaps := make([]Step, 0, len(t))
	for _, step := range t {
		if step.Op == OpSwap {
			swaps = append(swaps, step)
		}
	}
	return swaps
}

// Apply replays the swap operations of the trace on a copy of values
// and returns the resulting order.
func Apply(values []int, trace Trace) []int {
	out := make([]int, len(values))
	copy(out, values)
	for _, step := range trace {
		if step.Op == OpSwap {
			out[step.I], out[step.J] = out[step.J], out[step.I]
		}
	}
	return out
}
