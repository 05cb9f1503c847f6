package playback_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/trace"
)

const speed = 100 * time.Millisecond

var _ = Describe("Controller", func() {
	var (
		sched *fakeScheduler
		ctrl  *playback.Controller
		steps trace.Trace
	)

	BeforeEach(func() {
		sched = &fakeScheduler{}
		ctrl = playback.New(sched, speed)
		steps = trace.Bubble(trace.Array{5, 3, 8, 1, 2})
		ctrl.Load(steps)
	})

	Describe("Load", func() {
		It("lands in Ready at the first step", func() {
			Expect(ctrl.Status()).To(Equal(playback.StatusReady))
			Expect(ctrl.Index()).To(Equal(0))
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(ctrl.Complete()).To(BeFalse())
			Expect(ctrl.Current().Array).To(Equal(trace.Array{5, 3, 8, 1, 2}))
		})

		It("cancels a pending tick from the previous trace", func() {
			ctrl.Play()
			stale := sched.lastTicket()
			ctrl.Load(trace.Insertion(trace.Array{2, 1}))

			Expect(ctrl.Fire(stale)).To(BeFalse())
			Expect(ctrl.Index()).To(Equal(0))
			Expect(ctrl.Len()).To(Equal(7))
		})
	})

	Describe("Play", func() {
		It("advances one step per tick", func() {
			ctrl.Play()
			Expect(ctrl.Status()).To(Equal(playback.StatusPlaying))

			Expect(sched.Advance(speed-time.Millisecond, ctrl)).To(Equal(0))
			Expect(sched.Advance(time.Millisecond, ctrl)).To(Equal(1))
			Expect(ctrl.Index()).To(Equal(1))

			Expect(sched.Advance(3*speed, ctrl)).To(Equal(3))
			Expect(ctrl.Index()).To(Equal(4))
		})

		It("completes at the last step and stops scheduling", func() {
			ctrl.Play()
			sched.Advance(time.Duration(len(steps))*speed, ctrl)

			Expect(ctrl.Index()).To(Equal(len(steps) - 1))
			Expect(ctrl.Complete()).To(BeTrue())
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(ctrl.Status()).To(Equal(playback.StatusCompleted))
			Expect(ctrl.Progress()).To(Equal(100))
			Expect(sched.pending).To(BeNil())
		})

		It("restarts from the first step after completion", func() {
			ctrl.Play()
			sched.Advance(time.Duration(len(steps))*speed, ctrl)
			Expect(ctrl.Complete()).To(BeTrue())

			ctrl.Play()
			Expect(ctrl.Index()).To(Equal(0))
			Expect(ctrl.Complete()).To(BeFalse())
			Expect(ctrl.Playing()).To(BeTrue())

			sched.Advance(speed, ctrl)
			Expect(ctrl.Index()).To(Equal(1))
		})

		It("is a no-op while already playing", func() {
			ctrl.Play()
			sched.Advance(speed/2, ctrl)
			scheduled := len(sched.scheduled)

			ctrl.Play()
			Expect(sched.scheduled).To(HaveLen(scheduled))
			Expect(sched.Advance(speed/2, ctrl)).To(Equal(1))
		})

		It("never enters Playing on a single-step trace", func() {
			ctrl.Load(trace.Trace{trace.Step{Array: trace.Array{7}}})
			ctrl.Play()

			Expect(ctrl.Status()).To(Equal(playback.StatusReady))
			Expect(sched.scheduled).To(BeEmpty())
			Expect(ctrl.Progress()).To(Equal(0))
		})

		It("plays the two-step trace of an empty array", func() {
			ctrl.Load(trace.Selection(trace.Array{}))
			ctrl.Play()
			sched.Advance(speed, ctrl)

			Expect(ctrl.Complete()).To(BeTrue())
			Expect(ctrl.Index()).To(Equal(1))
		})

		It("completes without scheduling when parked on the last step", func() {
			ctrl.Seek(len(steps) - 1)
			Expect(ctrl.Complete()).To(BeFalse())

			ctrl.Play()
			Expect(ctrl.Complete()).To(BeTrue())
			Expect(sched.pending).To(BeNil())
		})

		It("does nothing before a trace is loaded", func() {
			empty := playback.New(sched, speed)
			empty.Play()
			empty.StepForward()
			empty.StepBackward()

			Expect(empty.Loaded()).To(BeFalse())
			Expect(empty.Status()).To(Equal(playback.StatusReady))
			Expect(empty.Current()).To(Equal(trace.Step{}))
		})
	})

	Describe("Pause", func() {
		It("stops auto-play and drops the pending tick", func() {
			ctrl.Play()
			stale := sched.lastTicket()
			ctrl.Pause()

			Expect(ctrl.Status()).To(Equal(playback.StatusPaused))
			Expect(ctrl.Fire(stale)).To(BeFalse())
			Expect(sched.Advance(10*speed, ctrl)).To(Equal(0))
			Expect(ctrl.Index()).To(Equal(0))
		})

		It("resumes from where it stopped", func() {
			ctrl.Play()
			sched.Advance(2*speed, ctrl)
			ctrl.Pause()
			ctrl.Play()
			sched.Advance(speed, ctrl)

			Expect(ctrl.Index()).To(Equal(3))
		})

		It("is a no-op unless playing", func() {
			ctrl.Pause()
			Expect(ctrl.Status()).To(Equal(playback.StatusReady))
		})
	})

	Describe("Toggle", func() {
		It("alternates between playing and paused", func() {
			ctrl.Toggle()
			Expect(ctrl.Playing()).To(BeTrue())
			ctrl.Toggle()
			Expect(ctrl.Status()).To(Equal(playback.StatusPaused))
		})
	})

	Describe("StepForward", func() {
		It("advances and stops auto-play", func() {
			ctrl.Play()
			stale := sched.lastTicket()
			ctrl.StepForward()

			Expect(ctrl.Index()).To(Equal(1))
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(ctrl.Fire(stale)).To(BeFalse())
		})

		It("leaves the index unchanged at the last step", func() {
			for i := 0; i < len(steps)+3; i++ {
				ctrl.StepForward()
			}
			Expect(ctrl.Index()).To(Equal(len(steps) - 1))
			Expect(ctrl.AtEnd()).To(BeTrue())
		})

		It("does not mark the trace complete when navigated to the end", func() {
			ctrl.Seek(len(steps) - 2)
			ctrl.StepForward()

			Expect(ctrl.AtEnd()).To(BeTrue())
			Expect(ctrl.Complete()).To(BeFalse())
		})
	})

	Describe("StepBackward", func() {
		It("clamps at the first step", func() {
			ctrl.StepBackward()
			Expect(ctrl.Index()).To(Equal(0))
		})

		It("stops auto-play", func() {
			ctrl.Play()
			sched.Advance(3*speed, ctrl)
			ctrl.StepBackward()

			Expect(ctrl.Index()).To(Equal(2))
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(sched.Advance(10*speed, ctrl)).To(Equal(0))
		})

		It("stops auto-play at the first step too", func() {
			ctrl.Play()
			ctrl.StepBackward()

			Expect(ctrl.Index()).To(Equal(0))
			Expect(ctrl.Status()).To(Equal(playback.StatusPaused))
		})

		It("leaves Completed", func() {
			ctrl.Play()
			sched.Advance(time.Duration(len(steps))*speed, ctrl)
			ctrl.StepBackward()

			Expect(ctrl.Complete()).To(BeFalse())
			Expect(ctrl.Index()).To(Equal(len(steps) - 2))
		})
	})

	Describe("Reset", func() {
		DescribeTable("always returns to a stopped first step",
			func(prepare func()) {
				prepare()
				ctrl.Reset()

				Expect(ctrl.Index()).To(Equal(0))
				Expect(ctrl.Playing()).To(BeFalse())
				Expect(ctrl.Complete()).To(BeFalse())
				Expect(ctrl.Status()).To(Equal(playback.StatusReady))
			},
			Entry("from Ready", func() {}),
			Entry("from Playing", func() {
				ctrl.Play()
				sched.Advance(2*speed, ctrl)
			}),
			Entry("from Paused", func() {
				ctrl.Play()
				sched.Advance(2*speed, ctrl)
				ctrl.Pause()
			}),
			Entry("from Completed", func() {
				ctrl.Play()
				sched.Advance(time.Duration(len(steps))*speed, ctrl)
			}),
		)

		It("drops a tick scheduled before the reset", func() {
			ctrl.Play()
			sched.Advance(2*speed, ctrl)
			stale := sched.lastTicket()
			ctrl.Reset()

			Expect(ctrl.Fire(stale)).To(BeFalse())
			Expect(ctrl.Index()).To(Equal(0))
		})
	})

	Describe("SetSpeed", func() {
		It("rejects non-positive delays", func() {
			Expect(ctrl.SetSpeed(0)).To(MatchError(playback.ErrInvalidSpeed))
			Expect(ctrl.SetSpeed(-time.Second)).To(MatchError(playback.ErrInvalidSpeed))
			Expect(ctrl.Speed()).To(Equal(speed))
		})

		It("reschedules immediately with the new delay while playing", func() {
			ctrl.Play()
			sched.Advance(speed*3/4, ctrl)
			stale := sched.lastTicket()

			Expect(ctrl.SetSpeed(2 * speed)).To(Succeed())
			Expect(ctrl.Fire(stale)).To(BeFalse())

			// The old wait is discarded, not shortened or extended.
			Expect(sched.Advance(2*speed-time.Millisecond, ctrl)).To(Equal(0))
			Expect(sched.Advance(time.Millisecond, ctrl)).To(Equal(1))
		})

		It("never advances twice within one new interval", func() {
			ctrl.Play()
			for i := 0; i < 5; i++ {
				sched.Advance(speed/2, ctrl)
				Expect(ctrl.SetSpeed(speed)).To(Succeed())
			}
			Expect(ctrl.Index()).To(Equal(0))

			Expect(sched.Advance(speed, ctrl)).To(Equal(1))
			Expect(ctrl.Index()).To(Equal(1))
		})

		It("only stores the delay when stopped", func() {
			Expect(ctrl.SetSpeed(3 * speed)).To(Succeed())
			Expect(sched.scheduled).To(BeEmpty())

			ctrl.Play()
			Expect(sched.Advance(3*speed, ctrl)).To(Equal(1))
		})
	})

	Describe("Fire", func() {
		It("ignores tickets that were never issued", func() {
			ctrl.Play()
			Expect(ctrl.Fire(sched.lastTicket() + 1)).To(BeFalse())
			Expect(ctrl.Index()).To(Equal(0))
		})

		It("consumes each ticket once", func() {
			ctrl.Play()
			t := sched.lastTicket()
			Expect(ctrl.Fire(t)).To(BeTrue())
			Expect(ctrl.Fire(t)).To(BeFalse())
			Expect(ctrl.Index()).To(Equal(1))
		})
	})

	Describe("Close", func() {
		It("cancels the pending tick and ignores further play", func() {
			ctrl.Play()
			stale := sched.lastTicket()
			ctrl.Close()

			Expect(ctrl.Fire(stale)).To(BeFalse())
			ctrl.Play()
			Expect(ctrl.Playing()).To(BeFalse())
		})
	})

	Describe("Progress", func() {
		It("rounds the position to a percentage", func() {
			ctrl.Load(trace.Insertion(trace.Array{3, 1}))
			Expect(ctrl.Len()).To(Equal(7))

			ctrl.Seek(1)
			Expect(ctrl.Progress()).To(Equal(17))
			ctrl.Seek(3)
			Expect(ctrl.Progress()).To(Equal(50))

			st := ctrl.State()
			Expect(st.Index).To(Equal(3))
			Expect(st.Len).To(Equal(7))
			Expect(st.Progress).To(Equal(50))
			Expect(st.Speed).To(Equal(speed))
		})
	})
})
