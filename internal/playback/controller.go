package playback

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/sortviz/internal/trace"
)

const (
	DefaultSpeed = 500 * time.Millisecond
	MinSpeed     = 50 * time.Millisecond
	MaxSpeed     = 1000 * time.Millisecond
	SpeedStep    = 50 * time.Millisecond
)

type Status int

const (
	StatusReady Status = iota
	StatusPlaying
	StatusPaused
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is a read-only snapshot of a controller.
type State struct {
	Index    int
	Len      int
	Status   Status
	Playing  bool
	Complete bool
	Speed    time.Duration
	Progress int
}

type Controller struct {
	steps      trace.Trace
	index      int
	status     Status
	speed      time.Duration
	generation uint64
	sched      Scheduler
	closed     bool
}

// New returns a controller without a trace. speed <= 0 selects DefaultSpeed
// and a nil sched never fires.
func New(sched Scheduler, speed time.Duration) *Controller {
	if sched == nil {
		sched = nopScheduler{}
	}
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Controller{sched: sched, speed: speed}
}

// Load replaces the trace and lands in Ready at the first step.
func (c *Controller) Load(steps trace.Trace) {
	c.invalidate()
	c.steps = steps
	c.index = 0
	c.status = StatusReady
}

// Play starts auto-play. After a completed run it restarts from the first
// step. It does nothing while already playing or when there is no step to
// advance to.
func (c *Controller) Play() {
	if c.closed || len(c.steps) <= 1 || c.status == StatusPlaying {
		return
	}
	c.invalidate()

	if c.status == StatusCompleted {
		c.index = 0
	}
	if c.index == c.last() {
		c.status = StatusCompleted
		return
	}
	c.status = StatusPlaying
	c.schedule()
}

func (c *Controller) Pause() {
	if c.status != StatusPlaying {
		return
	}
	c.invalidate()
	c.status = StatusPaused
}

// Toggle pauses while playing and plays otherwise.
func (c *Controller) Toggle() {
	if c.status == StatusPlaying {
		c.Pause()
		return
	}
	c.Play()
}

func (c *Controller) StepForward() {
	if len(c.steps) == 0 {
		return
	}
	c.invalidate()
	if c.index == c.last() {
		return
	}
	c.index++
	c.status = StatusPaused
}

func (c *Controller) StepBackward() {
	if len(c.steps) == 0 {
		return
	}
	c.invalidate()
	if c.index > 0 {
		c.index--
		c.status = StatusPaused
	} else if c.status == StatusPlaying {
		c.status = StatusPaused
	}
}

// Seek jumps to index, clamped to the trace, and stops auto-play.
func (c *Controller) Seek(index int) {
	if len(c.steps) == 0 {
		return
	}
	c.invalidate()
	c.index = max(0, min(index, c.last()))
	c.status = StatusPaused
}

func (c *Controller) Reset() {
	c.invalidate()
	c.index = 0
	c.status = StatusReady
}

// SetSpeed changes the tick delay. While playing, the pending tick is
// discarded and a new one is scheduled with the new delay.
func (c *Controller) SetSpeed(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSpeed, d)
	}
	c.speed = d
	if c.status == StatusPlaying {
		c.invalidate()
		c.schedule()
	}
	return nil
}

// Fire advances by one step if t is the live ticket. Stale tickets are
// dropped and Fire reports false.
func (c *Controller) Fire(t Ticket) bool {
	if c.closed || c.status != StatusPlaying || uint64(t) != c.generation {
		return false
	}

	c.index++
	if c.index >= c.last() {
		c.index = c.last()
		c.status = StatusCompleted
		return true
	}
	c.schedule()
	return true
}

// Close cancels the pending tick. A closed controller ignores further ticks
// and Play calls.
func (c *Controller) Close() {
	c.invalidate()
	if c.status == StatusPlaying {
		c.status = StatusPaused
	}
	c.closed = true
}

func (c *Controller) invalidate() {
	c.generation++
	c.sched.Cancel()
}

func (c *Controller) schedule() {
	c.generation++
	c.sched.Schedule(c.speed, Ticket(c.generation))
}

func (c *Controller) last() int { return len(c.steps) - 1 }

// Current returns the step at the current index, or the zero Step before
// the first Load.
func (c *Controller) Current() trace.Step {
	if len(c.steps) == 0 {
		return trace.Step{}
	}
	return c.steps[c.index]
}

func (c *Controller) Steps() trace.Trace   { return c.steps }
func (c *Controller) Index() int           { return c.index }
func (c *Controller) Len() int             { return len(c.steps) }
func (c *Controller) Status() Status       { return c.status }
func (c *Controller) Playing() bool        { return c.status == StatusPlaying }
func (c *Controller) Complete() bool       { return c.status == StatusCompleted }
func (c *Controller) Speed() time.Duration { return c.speed }
func (c *Controller) Loaded() bool         { return len(c.steps) > 0 }
func (c *Controller) AtEnd() bool          { return len(c.steps) > 0 && c.index == c.last() }
func (c *Controller) AtStart() bool        { return c.index == 0 }

// Progress is the current position as a rounded percentage of the trace.
func (c *Controller) Progress() int {
	if len(c.steps) <= 1 {
		return 0
	}
	return int(math.Round(float64(c.index) / float64(c.last()) * 100))
}

func (c *Controller) State() State {
	return State{
		Index:    c.index,
		Len:      len(c.steps),
		Status:   c.status,
		Playing:  c.Playing(),
		Complete: c.Complete(),
		Speed:    c.speed,
		Progress: c.Progress(),
	}
}
