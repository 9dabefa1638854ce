package gestures_test

import (
	"testing"
	"time"

	"github.com/go-drift/drawerkit/pkg/geometry"
	"github.com/go-drift/drawerkit/pkg/gestures"
	"github.com/go-drift/drawerkit/pkg/testkit"
)

// dragHarness wires a recognizer to a private arena and records callbacks.
type dragHarness struct {
	recognizer *gestures.HorizontalDragGestureRecognizer
	arena      *gestures.GestureArena
	clock      *testkit.FakeClock

	starts   []gestures.DragStartDetails
	updates  []gestures.DragUpdateDetails
	ends     []gestures.DragEndDetails
	cancels  int
	position geometry.Offset
}

func newDragHarness() *dragHarness {
	h := &dragHarness{
		arena: gestures.NewGestureArena(),
		clock: testkit.NewFakeClock(),
	}
	h.recognizer = gestures.NewHorizontalDragGestureRecognizer(h.arena)
	h.recognizer.Now = h.clock.Now
	h.recognizer.OnStart = func(d gestures.DragStartDetails) { h.starts = append(h.starts, d) }
	h.recognizer.OnUpdate = func(d gestures.DragUpdateDetails) { h.updates = append(h.updates, d) }
	h.recognizer.OnEnd = func(d gestures.DragEndDetails) { h.ends = append(h.ends, d) }
	h.recognizer.OnCancel = func() { h.cancels++ }
	return h
}

func (h *dragHarness) down(pos geometry.Offset) {
	h.position = pos
	h.recognizer.AddPointer(gestures.PointerEvent{
		PointerID: 1,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
	h.arena.Close(1)
}

func (h *dragHarness) move(delta geometry.Offset) {
	h.clock.Advance(16 * time.Millisecond)
	h.position = h.position.Add(delta)
	h.recognizer.HandleEvent(gestures.PointerEvent{
		PointerID: 1,
		Position:  h.position,
		Delta:     delta,
		Phase:     gestures.PointerPhaseMove,
	})
}

func (h *dragHarness) up() {
	h.recognizer.HandleEvent(gestures.PointerEvent{
		PointerID: 1,
		Position:  h.position,
		Phase:     gestures.PointerPhaseUp,
	})
	h.arena.Sweep(1)
}

func (h *dragHarness) cancel() {
	h.recognizer.HandleEvent(gestures.PointerEvent{
		PointerID: 1,
		Position:  h.position,
		Phase:     gestures.PointerPhaseCancel,
	})
}

func TestDragWaitsForTouchSlop(t *testing.T) {
	h := newDragHarness()
	h.down(geometry.Offset{X: 10, Y: 100})

	h.move(geometry.Offset{X: 10})
	if len(h.starts) != 0 {
		t.Fatal("drag started inside the touch slop")
	}

	h.move(geometry.Offset{X: 10})
	if len(h.starts) != 1 {
		t.Fatal("drag did not start after clearing the slop")
	}
	if h.starts[0].Position.X != 10 {
		t.Errorf("start position = %v, want the pointer-down position", h.starts[0].Position)
	}
	if len(h.updates) != 1 {
		t.Fatalf("updates = %d, want 1 (the accepting move)", len(h.updates))
	}
	if h.updates[0].PrimaryDelta != 10 {
		t.Errorf("PrimaryDelta = %v, want 10", h.updates[0].PrimaryDelta)
	}
}

func TestVerticalMovementRejects(t *testing.T) {
	h := newDragHarness()
	h.down(geometry.Offset{X: 10, Y: 100})

	h.move(geometry.Offset{Y: 25})
	h.move(geometry.Offset{X: 40})
	h.up()

	if len(h.starts) != 0 {
		t.Error("vertical-dominant movement should not start a horizontal drag")
	}
	if len(h.ends) != 0 {
		t.Error("rejected drag should not report an end")
	}
}

func TestShouldAcceptFalsePassesThrough(t *testing.T) {
	h := newDragHarness()
	h.recognizer.ShouldAccept = func(geometry.Offset, float64) bool { return false }

	h.down(geometry.Offset{X: 10, Y: 100})
	h.move(geometry.Offset{X: 30})
	h.up()

	if len(h.starts) != 0 {
		t.Error("declined drag should not start")
	}
	if len(h.updates) != 0 {
		t.Error("declined drag should not report updates")
	}
}

func TestShouldAcceptReceivesStartAndTravel(t *testing.T) {
	h := newDragHarness()
	var gotStart geometry.Offset
	var gotTravel float64
	h.recognizer.ShouldAccept = func(start geometry.Offset, totalDelta float64) bool {
		gotStart = start
		gotTravel = totalDelta
		return true
	}

	h.down(geometry.Offset{X: 10, Y: 100})
	h.move(geometry.Offset{X: -30})
	h.up()

	if gotStart.X != 10 || gotStart.Y != 100 {
		t.Errorf("start = %v, want {10 100}", gotStart)
	}
	if gotTravel != -30 {
		t.Errorf("totalDelta = %v, want -30 (signed travel)", gotTravel)
	}
}

func TestReleaseVelocityIsSmoothed(t *testing.T) {
	h := newDragHarness()
	h.down(geometry.Offset{X: 10, Y: 100})

	// 16px every 16ms is 1000 units/s instantaneous. The exponential filter
	// converges toward it from below.
	for range 20 {
		h.move(geometry.Offset{X: 16})
	}
	h.up()

	if len(h.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(h.ends))
	}
	v := h.ends[0].PrimaryVelocity
	if v < 900 || v > 1000 {
		t.Errorf("PrimaryVelocity = %v, want between 900 and 1000", v)
	}
}

func TestLeftwardDragReportsNegativeVelocity(t *testing.T) {
	h := newDragHarness()
	h.down(geometry.Offset{X: 300, Y: 100})

	for range 10 {
		h.move(geometry.Offset{X: -16})
	}
	h.up()

	if len(h.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(h.ends))
	}
	if h.ends[0].PrimaryVelocity >= 0 {
		t.Errorf("PrimaryVelocity = %v, want negative", h.ends[0].PrimaryVelocity)
	}
}

func TestCancelNotifiesAcceptedDrag(t *testing.T) {
	h := newDragHarness()
	h.down(geometry.Offset{X: 10, Y: 100})
	h.move(geometry.Offset{X: 30})
	if len(h.starts) != 1 {
		t.Fatal("drag did not start")
	}

	h.cancel()
	if h.cancels != 1 {
		t.Errorf("cancels = %d, want 1", h.cancels)
	}
	if len(h.ends) != 0 {
		t.Error("canceled drag should not report an end")
	}
}

func TestUpBeforeSlopReportsNothing(t *testing.T) {
	h := newDragHarness()
	h.down(geometry.Offset{X: 10, Y: 100})
	h.move(geometry.Offset{X: 5})
	h.up()

	if len(h.starts)+len(h.updates)+len(h.ends) != 0 {
		t.Errorf("tap-like sequence reported callbacks: starts=%d updates=%d ends=%d",
			len(h.starts), len(h.updates), len(h.ends))
	}
}

func TestEventsForOtherPointersIgnored(t *testing.T) {
	h := newDragHarness()
	h.down(geometry.Offset{X: 10, Y: 100})

	h.recognizer.HandleEvent(gestures.PointerEvent{
		PointerID: 99,
		Position:  geometry.Offset{X: 500},
		Phase:     gestures.PointerPhaseMove,
	})
	if len(h.starts) != 0 || len(h.updates) != 0 {
		t.Error("recognizer reacted to a foreign pointer")
	}
}
