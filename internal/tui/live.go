// Package tui renders sorting playback as plain ANSI frames, for terminals
// and pipes where the interactive visualizer is not wanted.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/trace"
)

const (
	width       = 70
	height      = 16
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var marks = map[trace.Highlight]rune{
	trace.HighlightNone:      '#',
	trace.HighlightComparing: '?',
	trace.HighlightSwapped:   '*',
	trace.HighlightSorted:    '=',
}

type LiveRenderer struct {
	out         io.Writer
	title       string
	printer     *message.Printer
	clearFrames bool
	canvas      [][]rune
}

// NewLiveRenderer writes frames to out. With clearFrames set every frame
// first clears the screen; otherwise frames are appended.
func NewLiveRenderer(out io.Writer, title string, printer *message.Printer, clearFrames bool) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		out:         out,
		title:       title,
		printer:     printer,
		clearFrames: clearFrames,
		canvas:      canvas,
	}
}

// Play starts player and renders each step it reaches until the trace is
// complete or ctx is done. ticks must be the channel of player's scheduler.
func (r *LiveRenderer) Play(ctx context.Context, player *playback.Controller, ticks <-chan playback.Ticket) error {
	r.Start()
	defer r.Stop()

	r.Render(player)
	player.Play()
	for player.Playing() {
		select {
		case <-ctx.Done():
			player.Close()
			return ctx.Err()
		case t := <-ticks:
			if player.Fire(t) {
				r.Render(player)
			}
		}
	}
	return nil
}

// Render draws the current step of player.
func (r *LiveRenderer) Render(player *playback.Controller) {
	step := player.Current()
	r.reset()
	r.drawBars(step)

	var b strings.Builder
	if r.clearFrames {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(&b, "  %s  [%d/%d] %d%%\n", r.title, player.Index()+1, player.Len(), player.Progress())
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString("  " + trace.Describe(r.printer, step) + "\n")

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) reset() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

// drawBars fills the canvas bottom-up, leaving the last row for values.
func (r *LiveRenderer) drawBars(step trace.Step) {
	n := len(step.Array)
	if n == 0 {
		return
	}

	bw := min(width/n, 8)
	if bw < 2 {
		bw = 2
	}
	base := height - 2
	heights := step.Array.Scale(base)

	for i, h := range heights {
		x0 := i * bw
		c := marks[step.Highlight(i)]
		for y := base - 1; y >= base-h; y-- {
			for x := x0; x < x0+bw-1; x++ {
				r.set(x, y, c)
			}
		}
		label := strconv.FormatFloat(step.Array[i], 'g', -1, 64)
		for j, ch := range label {
			if j >= bw-1 {
				break
			}
			r.set(x0+j, height-1, ch)
		}
	}
}

func (r *LiveRenderer) Start() {
	if r.clearFrames {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.clearFrames {
		fmt.Fprint(r.out, showCursor)
	}
}
