// Package gesture turns raw pointer input into at-most-one reorder commit
// per press-to-release gesture.
//
// Each draggable item owns one Recognizer, an explicit finite-state machine:
//
//	Idle -> Armed -> {Dragging | Idle}
//
// Pointer-down on the drag handle enters Dragging immediately. Pointer-down
// on the item body arms a long-press timer; moving past the slop threshold
// before it fires disarms the gesture so the surrounding list can scroll.
// While dragging, moves only update a visual offset; the commit callback
// runs once on pointer-up and never on pointer-cancel.
package gesture

import (
	"sync"
	"time"
)

// Default gesture tuning.
const (
	defaultLongPressDelay = 500 * time.Millisecond
	defaultMovementSlop   = 10.0
	defaultSlotHeight     = 64.0
)

// Region identifies where on the item a pointer-down landed.
type Region int

const (
	// RegionBody is anywhere on the item outside the drag handle.
	RegionBody Region = iota
	// RegionHandle is the designated grab region; it starts a drag at once.
	RegionHandle
)

// State is a recognizer's position in the gesture state machine.
type State int

const (
	// StateIdle means no gesture is in progress.
	StateIdle State = iota
	// StateArmed means a body press is waiting out the long-press timer.
	StateArmed
	// StateDragging means the item follows the pointer until release.
	StateDragging
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// CommitFunc receives the reorder decided by a completed gesture. It is
// called at most once per gesture.
type CommitFunc func(from, to int)

// Recognizer is the per-item gesture state machine. All methods are safe
// for concurrent use; the long-press timer fires on its own goroutine.
type Recognizer struct {
	mu sync.Mutex

	state     State
	itemIndex int
	listLen   int
	closed    bool

	// Tuning, fixed after New.
	longPressDelay time.Duration
	movementSlop   float64
	slotHeight     float64
	commit         CommitFunc
	newTimer       TimerFactory

	// Gesture-local state, valid outside StateIdle.
	timer            Timer
	timerGen         uint64
	startX, startY   float64
	lastX, lastY     float64
	committedGesture bool
}

// New creates a recognizer for the item currently at itemIndex in a list of
// listLen items. commit receives the (from, to) pair when a drag completes.
func New(itemIndex, listLen int, commit CommitFunc, opts ...Option) *Recognizer {
	r := &Recognizer{
		state:          StateIdle,
		itemIndex:      itemIndex,
		listLen:        listLen,
		longPressDelay: defaultLongPressDelay,
		movementSlop:   defaultMovementSlop,
		slotHeight:     defaultSlotHeight,
		commit:         commit,
		newTimer:       AfterFunc,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current machine state.
func (r *Recognizer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Offset returns the visual drag offset from the press point. Zero outside
// StateDragging; presentation code reads it every frame, this package never
// turns it into a commit until pointer-up.
func (r *Recognizer) Offset() (dx, dy float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateDragging {
		return 0, 0
	}
	return r.lastX - r.startX, r.lastY - r.startY
}

// SetPosition updates the item's index and the list length, typically after
// a reorder re-rendered the list.
func (r *Recognizer) SetPosition(itemIndex, listLen int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.itemIndex = itemIndex
	r.listLen = listLen
}

// PointerDown starts a gesture. A handle press drags immediately; a body
// press arms the long-press timer. Ignored outside StateIdle.
func (r *Recognizer) PointerDown(region Region, x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.state != StateIdle {
		return
	}
	r.startX, r.startY = x, y
	r.lastX, r.lastY = x, y
	r.committedGesture = false

	if region == RegionHandle {
		r.state = StateDragging
		return
	}

	r.state = StateArmed
	r.timerGen++
	gen := r.timerGen
	r.timer = r.newTimer(r.longPressDelay, func() { r.longPressFired(gen) })
}

// longPressFired promotes an armed press into a drag. Stale fires from a
// timer that lost a Stop race are discarded by generation.
func (r *Recognizer) longPressFired(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || gen != r.timerGen || r.state != StateArmed {
		return
	}
	r.timer = nil
	r.state = StateDragging
}

// PointerMove tracks the pointer. While armed, exceeding the slop on either
// axis disarms the gesture (the user is scrolling, not dragging). While
// dragging it only updates the visual offset.
func (r *Recognizer) PointerMove(x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case StateArmed:
		if abs(x-r.startX) > r.movementSlop || abs(y-r.startY) > r.movementSlop {
			r.disarmLocked()
		}
	case StateDragging:
		r.lastX, r.lastY = x, y
	case StateIdle:
	}
}

// PointerUp ends the gesture. An armed press releases as an ordinary tap; a
// drag commits exactly once with the target index derived from the vertical
// offset.
func (r *Recognizer) PointerUp(x, y float64) {
	r.mu.Lock()
	switch r.state {
	case StateArmed:
		r.disarmLocked()
		r.mu.Unlock()
		return
	case StateDragging:
		r.lastX, r.lastY = x, y
		from := r.itemIndex
		to := r.targetIndexLocked()
		commit := r.commit
		alreadyCommitted := r.committedGesture
		r.committedGesture = true
		r.state = StateIdle
		r.mu.Unlock()
		if commit != nil && !alreadyCommitted {
			commit(from, to)
		}
		return
	case StateIdle:
	}
	r.mu.Unlock()
}

// PointerCancel discards the gesture without committing.
func (r *Recognizer) PointerCancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disarmLocked()
}

// Close cancels any pending timer and makes further input inert. Must be
// called on item teardown so a long-press timer cannot fire into a disposed
// item.
func (r *Recognizer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.disarmLocked()
}

// disarmLocked stops the pending timer, if any, and returns to StateIdle.
func (r *Recognizer) disarmLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.timerGen++
	r.state = StateIdle
}

// targetIndexLocked maps the accumulated vertical offset to a list index,
// one slot height per position, clamped to the list bounds.
func (r *Recognizer) targetIndexLocked() int {
	if r.slotHeight <= 0 || r.listLen == 0 {
		return r.itemIndex
	}
	dy := r.lastY - r.startY
	steps := int(roundHalfAway(dy / r.slotHeight))
	to := r.itemIndex + steps
	if to < 0 {
		to = 0
	}
	if to > r.listLen-1 {
		to = r.listLen - 1
	}
	return to
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func roundHalfAway(v float64) float64 {
	if v < 0 {
		return float64(int(v - 0.5))
	}
	return float64(int(v + 0.5))
}
