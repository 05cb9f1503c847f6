// Package viz provides the interactive terminal visualizer for sorting
// traces.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: bar chart of the current step with playback controls
//   - [RenderBars]: colored vertical bars for a single step
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Play/Pause
//	←/→   - Step backward/forward (also h/l)
//	R     - Reset to the first step
//	N     - New random array
//	Tab   - Next algorithm
//	+/-   - Faster/slower playback
//	T     - Cycle color themes
//	L     - Switch language
//	?     - Show help overlay
package viz
