package playback_test

import (
	"time"

	"github.com/san-kum/sortviz/internal/playback"
)

type pendingTick struct {
	at     time.Duration
	ticket playback.Ticket
}

// fakeScheduler is a manual clock. Ticks only fire from Advance.
type fakeScheduler struct {
	now       time.Duration
	pending   *pendingTick
	scheduled []playback.Ticket
	cancels   int
}

func (f *fakeScheduler) Schedule(delay time.Duration, t playback.Ticket) {
	f.pending = &pendingTick{at: f.now + delay, ticket: t}
	f.scheduled = append(f.scheduled, t)
}

func (f *fakeScheduler) Cancel() {
	f.pending = nil
	f.cancels++
}

// Advance moves the clock by d, firing every tick that falls due, and
// returns how many of them advanced c.
func (f *fakeScheduler) Advance(d time.Duration, c *playback.Controller) int {
	target := f.now + d
	advanced := 0
	for f.pending != nil && f.pending.at <= target {
		p := *f.pending
		f.pending = nil
		f.now = p.at
		if c.Fire(p.ticket) {
			advanced++
		}
	}
	f.now = target
	return advanced
}

func (f *fakeScheduler) lastTicket() playback.Ticket {
	return f.scheduled[len(f.scheduled)-1]
}
