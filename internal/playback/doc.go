// Package playback drives navigation over a recorded sort trace.
//
// A [Controller] owns the trace, the current index and the auto-play loop.
// It moves between four states:
//
//	Ready     - trace loaded or reset, not animating
//	Playing   - a tick is scheduled and will advance the index
//	Paused    - stopped by the user away from a fresh start
//	Completed - auto-play ran to the last step
//
// # Ticks
//
// Auto-play schedules one tick at a time through a [Scheduler]. Every tick
// carries a [Ticket] stamped with the controller's generation counter. Any
// operation that changes state bumps the counter, so a tick scheduled before
// a Reset, Pause or SetSpeed is dropped when it fires instead of advancing
// the new state.
//
// # Thread Safety
//
// Controller is NOT safe for concurrent use. Tickets must be handed back to
// [Controller.Fire] on the goroutine that owns the controller, for example
// from a Bubble Tea Update or a select loop over [ClockScheduler.C].
package playback
