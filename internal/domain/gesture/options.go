package gesture

import "time"

// Option applies a configuration option to a Recognizer.
type Option func(*Recognizer)

// WithLongPressDelay sets how long a body press must hold before dragging
// starts. Default 500ms.
func WithLongPressDelay(d time.Duration) Option {
	return func(r *Recognizer) {
		if d > 0 {
			r.longPressDelay = d
		}
	}
}

// WithMovementSlop sets the per-axis distance an armed pointer may travel
// before the gesture is treated as a scroll. Default 10 units.
func WithMovementSlop(slop float64) Option {
	return func(r *Recognizer) {
		if slop > 0 {
			r.movementSlop = slop
		}
	}
}

// WithSlotHeight sets the vertical size of one list slot, used to translate
// a drag offset into a target index.
func WithSlotHeight(h float64) Option {
	return func(r *Recognizer) {
		if h > 0 {
			r.slotHeight = h
		}
	}
}

// WithTimerFactory sets the long-press timer source. Used by tests.
func WithTimerFactory(f TimerFactory) Option {
	return func(r *Recognizer) {
		if f != nil {
			r.newTimer = f
		}
	}
}
