package gestures

import (
	"math"
	"time"

	"github.com/go-drift/drawerkit/pkg/geometry"
)

// HorizontalDragGestureRecognizer recognizes horizontal drags with
// conditional acceptance.
//
// The recognizer competes in a [GestureArena]. Once the pointer travels past
// the touch slop with horizontal movement dominant, ShouldAccept decides
// whether this drag belongs to the drawer or should pass through to the
// content underneath (e.g., a horizontally scrolling list). Vertical-dominant
// movement always rejects.
type HorizontalDragGestureRecognizer struct {
	Arena *GestureArena

	// ShouldAccept is consulted once, when the drag exceeds the slop. It
	// receives the pointer-down position and the total horizontal travel so
	// far. Nil accepts everything.
	ShouldAccept func(start geometry.Offset, totalDelta float64) bool

	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	// Now supplies timestamps for velocity tracking. Nil uses time.Now.
	Now func() time.Time

	pointer  int64           // current pointer being tracked
	start    geometry.Offset // initial touch position
	last     geometry.Offset // most recent touch position
	lastTime time.Time       // timestamp of last update (for velocity)
	velocity float64         // smoothed horizontal velocity in units/second
	slop     float64         // minimum distance before recognizing a drag
	accepted bool            // true after winning the gesture arena
	rejected bool            // true once the gesture was rejected
	started  bool            // true after OnStart has been called
}

// NewHorizontalDragGestureRecognizer creates a recognizer competing in arena.
func NewHorizontalDragGestureRecognizer(arena *GestureArena) *HorizontalDragGestureRecognizer {
	return &HorizontalDragGestureRecognizer{Arena: arena}
}

func (r *HorizontalDragGestureRecognizer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// AddPointer begins tracking a pointer from its down event. The recognizer
// holds the arena so acceptance can wait for the slop decision.
func (r *HorizontalDragGestureRecognizer) AddPointer(event PointerEvent) {
	if r.Arena == nil {
		return
	}
	r.pointer = event.PointerID
	r.start = event.Position
	r.last = event.Position
	r.lastTime = r.now()
	r.velocity = 0
	r.slop = DefaultTouchSlop
	r.accepted = false
	r.rejected = false
	r.started = false
	r.Arena.Add(event.PointerID, r)
	r.Arena.Hold(event.PointerID, r)
}

// HandleEvent processes move, up, and cancel events for the tracked pointer.
func (r *HorizontalDragGestureRecognizer) HandleEvent(event PointerEvent) {
	if event.PointerID != r.pointer || r.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.handleMove(event)
	case PointerPhaseUp:
		r.handleUp(event)
	case PointerPhaseCancel:
		r.handleCancel()
	}
}

// handleMove decides acceptance once the slop is exceeded and tracks the
// release velocity while the drag is live.
func (r *HorizontalDragGestureRecognizer) handleMove(event PointerEvent) {
	now := r.now()
	dt := now.Sub(r.lastTime).Seconds()

	total := event.Position.Sub(r.start)
	primary := math.Abs(total.X)
	orthogonal := math.Abs(total.Y)

	if !r.accepted {
		if primary > r.slop && primary >= orthogonal {
			// Horizontal movement dominant: ask the callback whether the
			// drawer should take this drag.
			accept := true
			if r.ShouldAccept != nil {
				accept = r.ShouldAccept(r.start, total.X)
			}
			if accept {
				r.Arena.Resolve(r.pointer, r)
			} else {
				r.rejected = true
				r.Arena.Reject(r.pointer, r)
				return
			}
		} else if orthogonal > r.slop {
			// Vertical movement dominant: likely a scroll, give it up.
			r.rejected = true
			r.Arena.Reject(r.pointer, r)
			return
		}
	}

	// Exponential smoothing keeps fling detection stable across jittery
	// input timestamps.
	delta := event.Position.Sub(r.last)
	if dt > 0 {
		inst := delta.X / dt
		r.velocity = r.velocity*0.8 + inst*0.2
	}

	if r.accepted {
		r.ensureStarted()
		if r.OnUpdate != nil {
			r.OnUpdate(DragUpdateDetails{
				Position:     event.Position,
				Delta:        delta,
				PrimaryDelta: delta.X,
			})
		}
	}

	r.last = event.Position
	r.lastTime = now
}

func (r *HorizontalDragGestureRecognizer) handleUp(event PointerEvent) {
	if r.accepted {
		if r.OnEnd != nil {
			r.OnEnd(DragEndDetails{
				Position:        event.Position,
				Velocity:        geometry.Offset{X: r.velocity},
				PrimaryVelocity: r.velocity,
			})
		}
	} else {
		r.Arena.Reject(r.pointer, r)
	}
}

func (r *HorizontalDragGestureRecognizer) handleCancel() {
	if r.accepted && r.OnCancel != nil {
		r.OnCancel()
	}
	r.rejected = true
	r.Arena.Reject(r.pointer, r)
}

// AcceptGesture implements GestureArenaMember.
func (r *HorizontalDragGestureRecognizer) AcceptGesture(pointerID int64) {
	if pointerID != r.pointer || r.rejected {
		return
	}
	r.accepted = true
	r.ensureStarted()
}

// RejectGesture implements GestureArenaMember.
func (r *HorizontalDragGestureRecognizer) RejectGesture(pointerID int64) {
	if pointerID != r.pointer {
		return
	}
	r.rejected = true
}

func (r *HorizontalDragGestureRecognizer) ensureStarted() {
	if r.started {
		return
	}
	r.started = true
	if r.OnStart != nil {
		r.OnStart(DragStartDetails{Position: r.start})
	}
}

// Dispose releases the recognizer. A live pointer is abandoned.
func (r *HorizontalDragGestureRecognizer) Dispose() {
	r.rejected = true
	r.OnStart = nil
	r.OnUpdate = nil
	r.OnEnd = nil
	r.OnCancel = nil
}
