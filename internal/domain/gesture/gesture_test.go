package gesture_test

import (
	"testing"
	"time"

	gesture "github.com/okian/podium/internal/domain/gesture"
	. "github.com/smartystreets/goconvey/convey"
)

// manualTimer lets tests drive the long-press timer without sleeping.
type manualTimer struct {
	stopped bool
	fire    func()
}

func (t *manualTimer) Stop() bool {
	was := t.stopped
	t.stopped = true
	return !was
}

type timerControl struct {
	timers []*manualTimer
}

func (c *timerControl) factory(_ time.Duration, fire func()) gesture.Timer {
	t := &manualTimer{fire: fire}
	c.timers = append(c.timers, t)
	return t
}

// fireLast simulates the long-press delay elapsing.
func (c *timerControl) fireLast() {
	if len(c.timers) == 0 {
		return
	}
	t := c.timers[len(c.timers)-1]
	if !t.stopped {
		t.fire()
	}
}

type commitLog struct {
	calls [][2]int
}

func (l *commitLog) fn(from, to int) {
	l.calls = append(l.calls, [2]int{from, to})
}

func TestHandleDrag(t *testing.T) {
	Convey("Given a recognizer for item 1 of 4 with a 64-unit slot", t, func() {
		clock := &timerControl{}
		log := &commitLog{}
		r := gesture.New(1, 4, log.fn,
			gesture.WithTimerFactory(clock.factory),
			gesture.WithSlotHeight(64),
		)

		Convey("When pressing the handle, dragging and releasing", func() {
			r.PointerDown(gesture.RegionHandle, 10, 100)
			So(r.State(), ShouldEqual, gesture.StateDragging)

			// Many intermediate frames; none may commit.
			for y := 100.0; y <= 228; y += 8 {
				r.PointerMove(10, y)
			}
			So(log.calls, ShouldBeEmpty)

			r.PointerUp(10, 228)

			Convey("Then exactly one commit lands on the slot two below", func() {
				So(log.calls, ShouldResemble, [][2]int{{1, 3}})
				So(r.State(), ShouldEqual, gesture.StateIdle)
			})

			Convey("And no long-press timer was ever started", func() {
				So(clock.timers, ShouldBeEmpty)
			})
		})

		Convey("When dragging up past the top of the list", func() {
			r.PointerDown(gesture.RegionHandle, 10, 500)
			r.PointerMove(10, 100)
			r.PointerUp(10, 100)

			Convey("Then the target clamps to index 0", func() {
				So(log.calls, ShouldResemble, [][2]int{{1, 0}})
			})
		})

		Convey("When dragging but releasing in place", func() {
			r.PointerDown(gesture.RegionHandle, 10, 100)
			r.PointerMove(10, 110)
			r.PointerUp(10, 110)

			Convey("Then it commits the identity pair and the store treats it as a no-op", func() {
				So(log.calls, ShouldResemble, [][2]int{{1, 1}})
			})
		})

		Convey("When the drag is cancelled", func() {
			r.PointerDown(gesture.RegionHandle, 10, 100)
			r.PointerMove(10, 300)
			r.PointerCancel()

			Convey("Then nothing commits and the machine is idle", func() {
				So(log.calls, ShouldBeEmpty)
				So(r.State(), ShouldEqual, gesture.StateIdle)
			})
		})
	})
}

func TestLongPress(t *testing.T) {
	Convey("Given a recognizer with a manual long-press timer", t, func() {
		clock := &timerControl{}
		log := &commitLog{}
		r := gesture.New(0, 3, log.fn,
			gesture.WithTimerFactory(clock.factory),
			gesture.WithSlotHeight(64),
			gesture.WithMovementSlop(10),
		)

		Convey("When pressing the body", func() {
			r.PointerDown(gesture.RegionBody, 50, 50)

			Convey("Then the machine arms and a timer is pending", func() {
				So(r.State(), ShouldEqual, gesture.StateArmed)
				So(len(clock.timers), ShouldEqual, 1)
			})

			Convey("And the timer firing promotes it to dragging", func() {
				clock.fireLast()
				So(r.State(), ShouldEqual, gesture.StateDragging)

				r.PointerMove(50, 120)
				r.PointerUp(50, 120)
				So(log.calls, ShouldResemble, [][2]int{{0, 1}})
			})

			Convey("And moving 15 units before it fires disarms the gesture", func() {
				r.PointerMove(50, 65)
				So(r.State(), ShouldEqual, gesture.StateIdle)
				So(clock.timers[0].stopped, ShouldBeTrue)

				Convey("So a late fire is ignored and release commits nothing", func() {
					clock.fireLast()
					So(r.State(), ShouldEqual, gesture.StateIdle)
					r.PointerUp(50, 65)
					So(log.calls, ShouldBeEmpty)
				})
			})

			Convey("And releasing before the timer fires is a plain tap", func() {
				r.PointerUp(50, 50)
				So(r.State(), ShouldEqual, gesture.StateIdle)
				So(log.calls, ShouldBeEmpty)
				So(clock.timers[0].stopped, ShouldBeTrue)
			})

			Convey("And a pointer cancel while armed stops the timer", func() {
				r.PointerCancel()
				So(r.State(), ShouldEqual, gesture.StateIdle)
				So(clock.timers[0].stopped, ShouldBeTrue)
			})
		})

		Convey("When moving within the slop while armed", func() {
			r.PointerDown(gesture.RegionBody, 50, 50)
			r.PointerMove(54, 58)

			Convey("Then the gesture stays armed", func() {
				So(r.State(), ShouldEqual, gesture.StateArmed)
			})
		})
	})
}

func TestTeardown(t *testing.T) {
	Convey("Given an armed recognizer", t, func() {
		clock := &timerControl{}
		log := &commitLog{}
		r := gesture.New(0, 3, log.fn, gesture.WithTimerFactory(clock.factory))
		r.PointerDown(gesture.RegionBody, 0, 0)

		Convey("When the item is torn down mid-press", func() {
			r.Close()

			Convey("Then the pending timer is stopped", func() {
				So(clock.timers[0].stopped, ShouldBeTrue)
			})

			Convey("And a racing fire cannot revive the machine", func() {
				clock.timers[0].fire() // simulate Stop losing the race
				So(r.State(), ShouldEqual, gesture.StateIdle)
			})

			Convey("And later input is inert", func() {
				r.PointerDown(gesture.RegionHandle, 0, 0)
				So(r.State(), ShouldEqual, gesture.StateIdle)
				r.PointerUp(0, 0)
				So(log.calls, ShouldBeEmpty)
			})
		})
	})
}

func TestSetPosition(t *testing.T) {
	Convey("Given a recognizer whose item moved after a re-render", t, func() {
		log := &commitLog{}
		r := gesture.New(0, 3, log.fn, gesture.WithSlotHeight(64))
		r.SetPosition(2, 5)

		Convey("When dragging from the new position", func() {
			r.PointerDown(gesture.RegionHandle, 0, 0)
			r.PointerMove(0, -64)
			r.PointerUp(0, -64)

			Convey("Then the commit uses the updated index", func() {
				So(log.calls, ShouldResemble, [][2]int{{2, 1}})
			})
		})
	})
}
