// Package trace records comparison sorts as replayable step traces.
//
// A [Trace] is an ordered sequence of [Step] values. Each step holds a full
// snapshot of the array plus the indices highlighted at that instant:
//
//   - Comparing: up to two indices currently being compared
//   - Swapped: indices just exchanged, or marked as settled
//   - Kind: the event that produced the step (compare, swap, shift, ...)
//
// The generators [Bubble], [Selection] and [Insertion] are pure functions of
// their input. They clone the input before sorting and share no state, so they
// may be called concurrently.
//
// # Example
//
//	steps := trace.Bubble(trace.Array{5, 3, 8, 1, 2})
//	first, last := steps[0], steps.Last()
//	fmt.Println(first.Array, last.Array) // [5 3 8 1 2] [1 2 3 5 8]
//
// # Invariants
//
// Every trace has at least two steps. The first holds the unmodified input
// and the last the sorted array, both without highlights. [Trace.Validate]
// checks these against the input.
package trace
