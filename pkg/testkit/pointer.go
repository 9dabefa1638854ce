package testkit

import (
	"time"

	"github.com/go-drift/drawerkit/pkg/geometry"
	"github.com/go-drift/drawerkit/pkg/gestures"
)

// PointerTarget consumes raw pointer events, e.g. *drawer.Drawer.
type PointerTarget interface {
	HandlePointer(event gestures.PointerEvent)
}

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Gesture synthesizes one pointer's event sequence against a target,
// advancing a FakeClock between events so velocity tracking sees realistic
// timestamps. Events follow the host-input contract: down, moves, then a
// single up or cancel.
type Gesture struct {
	target   PointerTarget
	clock    *FakeClock
	id       int64
	position geometry.Offset
	done     bool
}

// StartGesture presses the pointer down at pos.
func StartGesture(target PointerTarget, clock *FakeClock, pos geometry.Offset) *Gesture {
	g := &Gesture{
		target:   target,
		clock:    clock,
		id:       allocPointerID(),
		position: pos,
	}
	target.HandlePointer(gestures.PointerEvent{
		PointerID: g.id,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
	return g
}

// MoveBy advances the clock by interval and moves the pointer by delta.
func (g *Gesture) MoveBy(delta geometry.Offset, interval time.Duration) {
	if g.done {
		return
	}
	g.clock.Advance(interval)
	g.position = g.position.Add(delta)
	g.target.HandlePointer(gestures.PointerEvent{
		PointerID: g.id,
		Position:  g.position,
		Delta:     delta,
		Phase:     gestures.PointerPhaseMove,
	})
}

// Release lifts the pointer at its current position.
func (g *Gesture) Release() {
	if g.done {
		return
	}
	g.done = true
	g.target.HandlePointer(gestures.PointerEvent{
		PointerID: g.id,
		Position:  g.position,
		Phase:     gestures.PointerPhaseUp,
	})
}

// Cancel aborts the pointer sequence.
func (g *Gesture) Cancel() {
	if g.done {
		return
	}
	g.done = true
	g.target.HandlePointer(gestures.PointerEvent{
		PointerID: g.id,
		Position:  g.position,
		Phase:     gestures.PointerPhaseCancel,
	})
}

// Swipe plays a complete drag: down at from, steps evenly spaced moves to
// to (each one frame apart), then up. The implied speed is
// distance / (steps · frame).
func Swipe(target PointerTarget, clock *FakeClock, from, to geometry.Offset, steps int) {
	if steps < 1 {
		steps = 1
	}
	g := StartGesture(target, clock, from)
	step := geometry.Offset{
		X: (to.X - from.X) / float64(steps),
		Y: (to.Y - from.Y) / float64(steps),
	}
	for range steps {
		g.MoveBy(step, FramePeriod)
	}
	g.Release()
}
