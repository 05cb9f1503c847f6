package playback

import (
	"sync"
	"time"
)

// Ticket identifies one scheduled tick.
type Ticket uint64

// Scheduler delivers a ticket back to the controller after a delay. A new
// Schedule replaces any pending one.
type Scheduler interface {
	Schedule(delay time.Duration, t Ticket)
	Cancel()
}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration, Ticket) {}
func (nopScheduler) Cancel()                        {}

// ClockScheduler delivers tickets on a channel using wall-clock timers.
type ClockScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
	c     chan Ticket
}

func NewClockScheduler() *ClockScheduler {
	return &ClockScheduler{c: make(chan Ticket, 1)}
}

// C returns the channel tickets are delivered on.
func (s *ClockScheduler) C() <-chan Ticket { return s.c }

func (s *ClockScheduler) Schedule(delay time.Duration, t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, func() { s.deliver(t) })
}

// deliver replaces an unread ticket, which can only be stale.
func (s *ClockScheduler) deliver(t Ticket) {
	for {
		select {
		case s.c <- t:
			return
		default:
		}
		select {
		case <-s.c:
		default:
		}
	}
}

func (s *ClockScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
