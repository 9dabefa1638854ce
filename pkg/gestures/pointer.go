// Package gestures provides pointer event types, the gesture arena, and the
// horizontal drag recognizer that feeds the drawer.
//
// Hosts translate their native input events into [PointerEvent] values and
// deliver them to whatever owns a recognizer (for the drawer, its
// HandlePointer method). Event sequences are well-formed by contract:
// down, then zero or more moves, then up or cancel, per pointer.
package gestures

import "github.com/go-drift/drawerkit/pkg/geometry"

// PointerPhase identifies where an event sits in a pointer's lifecycle.
type PointerPhase int

const (
	// PointerPhaseDown means the pointer made contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove means the pointer moved while in contact.
	PointerPhaseMove
	// PointerPhaseUp means the pointer was released.
	PointerPhaseUp
	// PointerPhaseCancel means the system aborted the pointer sequence.
	PointerPhaseCancel
)

// PointerEvent is one raw input event from the host input system.
type PointerEvent struct {
	// PointerID distinguishes concurrent pointers.
	PointerID int64
	// Position is the pointer location in logical units.
	Position geometry.Offset
	// Delta is the movement since the previous event for this pointer.
	Delta geometry.Offset
	// Phase is the lifecycle phase of this event.
	Phase PointerPhase
}

// DefaultTouchSlop is the distance in logical units a pointer must travel
// before a drag is recognized.
const DefaultTouchSlop = 18.0

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// Position is where the pointer first made contact.
	Position geometry.Offset
}

// DragUpdateDetails describes one movement of an active drag.
type DragUpdateDetails struct {
	// Position is the current pointer location.
	Position geometry.Offset
	// Delta is the movement since the last update.
	Delta geometry.Offset
	// PrimaryDelta is the movement along the recognizer's axis.
	PrimaryDelta float64
}

// DragEndDetails describes the release of a drag.
type DragEndDetails struct {
	// Position is where the pointer lifted.
	Position geometry.Offset
	// Velocity is the smoothed release velocity in units/second.
	Velocity geometry.Offset
	// PrimaryVelocity is the release velocity along the recognizer's axis.
	PrimaryVelocity float64
}
