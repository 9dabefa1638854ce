// Package drawer implements a gesture-driven sliding side panel core.
//
// A [Drawer] owns the panel's open/close progress and unifies three input
// sources into it: explicit calls (Open/Close/Toggle), a continuous edge
// drag, and a velocity-seeded fling on release. The drawer is headless — it
// never paints. A host renderer reads [Drawer.Transform] every frame to
// position, scale, and tilt the content it draws, and feeds raw pointer
// events into [Drawer.HandlePointer].
//
// Typical wiring:
//
//	d, err := drawer.New(drawer.DefaultOptions())
//	if err != nil { ... }
//	d.SetViewport(width)
//	remove := d.AddListener(func() { requestFrame() })
//
//	// per frame:
//	animation.StepTickers()
//	t := d.Transform()
//	paintContent(t.TranslationX, t.Scale, t.RotationY)
//
// The drawer is single-threaded by contract: drive it from the host's frame
// thread only.
package drawer

import (
	"math"

	"github.com/go-drift/drawerkit/pkg/animation"
	"github.com/go-drift/drawerkit/pkg/errors"
	"github.com/go-drift/drawerkit/pkg/geometry"
	"github.com/go-drift/drawerkit/pkg/gestures"
)

// gestureSession captures the per-drag state latched when a drag begins.
// It is discarded on release; nothing survives across sessions.
type gestureSession struct {
	draggable bool
	startX    float64
}

// Drawer coordinates drawer gestures and progress. Create one with [New].
type Drawer struct {
	opts     Options
	progress *animation.ProgressController

	arena      *gestures.GestureArena
	recognizer *gestures.HorizontalDragGestureRecognizer

	width   float64
	session *gestureSession

	controller       *Controller
	controllerRemove func()
}

// New validates opts and builds a drawer. Invalid configuration (negative
// durations or angles, broken gradients) is a construction-time error;
// after New succeeds there are no runtime error paths.
func New(opts Options) (*Drawer, error) {
	opts = normalizeOptions(opts)

	if opts.OffsetFromRight < 0 {
		return nil, errors.Config("drawer.New", "OffsetFromRight",
			"must not be negative, got %v", opts.OffsetFromRight)
	}
	if opts.RotateAngle < 0 {
		return nil, errors.Config("drawer.New", "RotateAngle",
			"must not be negative, got %v", opts.RotateAngle)
	}
	if opts.Background.Gradient != nil {
		if err := opts.Background.Gradient.Validate(); err != nil {
			return nil, errors.Config("drawer.New", "Background.Gradient", "%v", err)
		}
	}

	progress, err := animation.NewProgressController(animation.ProgressConfig{
		ForwardDuration: opts.ForwardDuration,
		ForwardCurve:    opts.ForwardCurve,
		ReverseDuration: opts.ReverseDuration,
		ReverseCurve:    opts.ReverseCurve,
		Provider:        opts.Provider,
	})
	if err != nil {
		return nil, err
	}

	d := &Drawer{
		opts:     opts,
		progress: progress,
		arena:    gestures.NewGestureArena(),
	}
	d.recognizer = gestures.NewHorizontalDragGestureRecognizer(d.arena)
	d.recognizer.ShouldAccept = d.shouldAcceptDrag
	d.recognizer.OnStart = d.onDragStart
	d.recognizer.OnUpdate = d.onDragUpdate
	d.recognizer.OnEnd = d.onDragEnd
	d.recognizer.OnCancel = d.onDragCancel
	return d, nil
}

// SetViewport tells the drawer the available width in logical units. Call it
// on first layout and whenever the host resizes.
func (d *Drawer) SetViewport(width float64) {
	if width < 0 {
		width = 0
	}
	d.width = width
}

// MaxSlide is how far the content travels at full progress:
// viewport width minus OffsetFromRight.
func (d *Drawer) MaxSlide() float64 {
	slide := d.width - d.opts.OffsetFromRight
	if slide < 0 {
		return 0
	}
	return slide
}

// Open animates the drawer open.
func (d *Drawer) Open() { d.progress.Open() }

// Close animates the drawer closed.
func (d *Drawer) Close() { d.progress.Close() }

// Toggle closes a fully open drawer and opens it in every other state.
func (d *Drawer) Toggle() { d.progress.Toggle() }

// Reset cancels any animation and returns the drawer to fully closed.
// Required after changing configuration at runtime.
func (d *Drawer) Reset() { d.progress.Reset() }

// Value returns the current progress in [0, 1].
func (d *Drawer) Value() float64 { return d.progress.Value() }

// Status returns the current coarse state.
func (d *Drawer) Status() animation.Status { return d.progress.Status() }

// IsOpen returns true when the drawer is at rest fully open.
func (d *Drawer) IsOpen() bool { return d.progress.IsCompleted() }

// IsClosed returns true when the drawer is at rest fully closed.
func (d *Drawer) IsClosed() bool { return d.progress.IsDismissed() }

// AddListener registers a callback fired on every progress change.
// Returns an unsubscribe function.
func (d *Drawer) AddListener(fn func()) func() {
	return d.progress.AddListener(fn)
}

// AddStatusListener registers a callback fired on every status change.
// Returns an unsubscribe function.
func (d *Drawer) AddStatusListener(fn func(animation.Status)) func() {
	return d.progress.AddStatusListener(fn)
}

// Options returns the normalized configuration the drawer runs with.
func (d *Drawer) Options() Options { return d.opts }

// HandleBack intercepts a system back/dismiss signal. A fully open drawer
// consumes it and starts closing; in every other state the signal propagates.
func (d *Drawer) HandleBack() bool {
	if !d.progress.IsCompleted() {
		return false
	}
	d.progress.Close()
	return true
}

// HandlePointer feeds one raw pointer event into the drawer's gesture
// recognition, including the arena choreography a host input system would
// otherwise perform. Hosts that run their own gesture arena should register
// [Drawer.Recognizer] there instead.
func (d *Drawer) HandlePointer(event gestures.PointerEvent) {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		d.recognizer.AddPointer(event)
		d.arena.Close(event.PointerID)
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		d.recognizer.HandleEvent(event)
		d.arena.Sweep(event.PointerID)
	default:
		d.recognizer.HandleEvent(event)
	}
}

// Recognizer exposes the drawer's drag recognizer for hosts that manage
// their own gesture arena.
func (d *Drawer) Recognizer() *gestures.HorizontalDragGestureRecognizer {
	return d.recognizer
}

// shouldAcceptDrag is the edge-gating rule, consulted once per gesture when
// the drag clears the touch slop. Restricting activation to a narrow margin
// near the relevant edge leaves horizontal gestures elsewhere to the content.
func (d *Drawer) shouldAcceptDrag(start geometry.Offset, totalDelta float64) bool {
	return d.canBeginDrag(start.X)
}

// canBeginDrag decides whether a drag starting at startX may manipulate the
// drawer, given the current resting state.
func (d *Drawer) canBeginDrag(startX float64) bool {
	if d.width <= 0 {
		return false
	}
	switch {
	case d.progress.IsDismissed():
		return startX < d.opts.Drag.OpenEdgeWidth
	case d.progress.IsCompleted():
		return startX > d.MaxSlide()-d.opts.Drag.CloseEdgeMargin
	default:
		return false
	}
}

func (d *Drawer) onDragStart(details gestures.DragStartDetails) {
	d.progress.Stop()
	d.session = &gestureSession{
		draggable: true,
		startX:    details.Position.X,
	}
}

func (d *Drawer) onDragUpdate(details gestures.DragUpdateDetails) {
	if d.session == nil || !d.session.draggable {
		return
	}
	slide := d.MaxSlide()
	if slide <= 0 {
		return
	}
	d.progress.DragBy(details.PrimaryDelta / slide)
}

func (d *Drawer) onDragEnd(details gestures.DragEndDetails) {
	if d.session == nil {
		return
	}
	d.session = nil

	// The drag already landed on a bound: nothing to settle.
	if d.progress.IsDismissed() || d.progress.IsCompleted() {
		return
	}

	slide := d.MaxSlide()
	if slide <= 0 {
		return
	}

	if math.Abs(details.PrimaryVelocity) >= d.opts.Drag.MinFlingVelocity {
		d.progress.Fling(details.PrimaryVelocity / slide)
		return
	}

	// Slow release: snap by position. At exactly the threshold, open.
	if d.progress.Value() < d.opts.Drag.SnapThreshold {
		d.progress.Close()
	} else {
		d.progress.Open()
	}
}

func (d *Drawer) onDragCancel() {
	d.session = nil
	// Treat a canceled gesture like a slow release so the drawer never
	// rests mid-slide.
	if d.progress.IsDismissed() || d.progress.IsCompleted() {
		return
	}
	if d.progress.Value() < d.opts.Drag.SnapThreshold {
		d.progress.Close()
	} else {
		d.progress.Open()
	}
}

// AttachController binds a detached [Controller] handle to this drawer.
// Any previous controller is detached first.
func (d *Drawer) AttachController(c *Controller) {
	d.DetachController()
	if c == nil {
		return
	}
	d.controller = c
	d.controllerRemove = d.progress.AddListener(func() {
		c.setProgress(d.progress.Value())
	})
	c.attach(d.Open, d.Close, d.Toggle, d.Value, d.Status)
}

// DetachController unbinds the current controller handle, if any.
func (d *Drawer) DetachController() {
	if d.controllerRemove != nil {
		d.controllerRemove()
		d.controllerRemove = nil
	}
	if d.controller != nil {
		d.controller.detach()
		d.controller = nil
	}
}

// Dispose stops any animation and releases resources.
func (d *Drawer) Dispose() {
	d.DetachController()
	d.recognizer.Dispose()
	d.progress.Dispose()
}
