package animation

import (
	"fmt"
	"time"

	"github.com/go-drift/drawerkit/pkg/errors"
)

// Status represents the coarse state of the drawer progress.
//
// The status follows this state machine:
//
//	                 Open()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │          Close()             │
//	    └──────────────────────────────┘
//
// While a timed run or fling is moving the value, status is StatusForward or
// StatusReverse. At rest, status is StatusDismissed (value 0) or
// StatusCompleted (value 1).
type Status int

const (
	// StatusDismissed means the drawer is at rest fully closed (value 0.0).
	StatusDismissed Status = iota
	// StatusForward means the value is moving toward open (1.0).
	StatusForward
	// StatusReverse means the value is moving toward closed (0.0).
	StatusReverse
	// StatusCompleted means the drawer is at rest fully open (value 1.0).
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DefaultDuration is the forward (and, unless overridden, reverse) run length.
const DefaultDuration = 300 * time.Millisecond

// ProgressConfig configures a [ProgressController].
//
// Zero values mean "unset" and fall back to defaults: ForwardDuration to
// [DefaultDuration], ForwardCurve to [EaseInOut], and the reverse pair to
// their forward counterparts. Explicitly negative durations are configuration
// errors reported by [NewProgressController].
type ProgressConfig struct {
	ForwardDuration time.Duration
	ForwardCurve    Curve
	ReverseDuration time.Duration
	ReverseCurve    Curve

	// Provider supplies frame tickers. Nil uses [DefaultProvider], whose
	// tickers are advanced by the host calling [StepTickers].
	Provider TickerProvider
}

// ProgressController owns the drawer's normalized progress value in [0, 1]
// and is its single source of truth.
//
// Three input sources drive the value, and the latest request always wins:
//
//   - Timed runs: [ProgressController.Open] and [ProgressController.Close]
//     ease toward a bound over the configured duration and curve.
//   - Direct writes: [ProgressController.DragBy] applies a drag delta
//     synchronously, canceling any run in flight.
//   - Velocity settles: [ProgressController.Fling] replaces the fixed
//     duration with a spring simulation seeded by the release velocity.
//
// Every mutation notifies value listeners exactly once. The controller is
// single-threaded by contract: all calls happen on the host's frame thread.
type ProgressController struct {
	forwardDuration time.Duration
	forwardCurve    Curve
	reverseDuration time.Duration
	reverseCurve    Curve
	provider        TickerProvider

	value      float64
	status     Status
	ticker     *Ticker
	startValue float64
	target     float64

	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewProgressController creates a controller from the given configuration.
// Invalid configuration (negative durations) is reported here; there are no
// recoverable error paths after construction.
func NewProgressController(cfg ProgressConfig) (*ProgressController, error) {
	if cfg.ForwardDuration < 0 {
		return nil, errors.Config("animation.NewProgressController", "ForwardDuration",
			"must be positive, got %v", cfg.ForwardDuration)
	}
	if cfg.ReverseDuration < 0 {
		return nil, errors.Config("animation.NewProgressController", "ReverseDuration",
			"must be positive, got %v", cfg.ReverseDuration)
	}

	forwardDuration := cfg.ForwardDuration
	if forwardDuration == 0 {
		forwardDuration = DefaultDuration
	}
	forwardCurve := cfg.ForwardCurve
	if forwardCurve == nil {
		forwardCurve = EaseInOut
	}
	reverseDuration := cfg.ReverseDuration
	if reverseDuration == 0 {
		reverseDuration = forwardDuration
	}
	reverseCurve := cfg.ReverseCurve
	if reverseCurve == nil {
		reverseCurve = forwardCurve
	}
	provider := cfg.Provider
	if provider == nil {
		provider = DefaultProvider
	}

	return &ProgressController{
		forwardDuration: forwardDuration,
		forwardCurve:    forwardCurve,
		reverseDuration: reverseDuration,
		reverseCurve:    reverseCurve,
		provider:        provider,
		status:          StatusDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}, nil
}

// Open animates the value from its current position to 1.0 over the forward
// duration and curve. Any run in flight is canceled first.
func (c *ProgressController) Open() {
	c.animateTo(1, StatusForward, c.forwardDuration, c.forwardCurve)
}

// Close animates the value from its current position to 0.0 over the reverse
// duration and curve.
func (c *ProgressController) Close() {
	c.animateTo(0, StatusReverse, c.reverseDuration, c.reverseCurve)
}

// Toggle closes a completed drawer and opens it in every other state,
// including mid-animation.
func (c *ProgressController) Toggle() {
	if c.status == StatusCompleted {
		c.Close()
		return
	}
	c.Open()
}

func (c *ProgressController) animateTo(target float64, direction Status, duration time.Duration, curve Curve) {
	c.stopTicker()

	c.target = target
	c.startValue = c.value
	c.setStatus(direction)

	c.ticker = c.provider.CreateTicker(func(elapsed time.Duration) {
		c.tick(elapsed, duration, curve)
	})
	c.ticker.Start()
}

func (c *ProgressController) tick(elapsed time.Duration, duration time.Duration, curve Curve) {
	if duration <= 0 {
		c.value = c.target
		c.notifyListeners()
		c.finishRun()
		return
	}

	fraction := float64(elapsed) / float64(duration)
	if fraction >= 1.0 {
		fraction = 1.0
	}

	eased := fraction
	if curve != nil {
		eased = curve(fraction)
	}
	c.value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if fraction >= 1.0 {
		c.finishRun()
	}
}

// DragBy adds delta to the current value, clamped to [0, 1]. It cancels any
// timed run in flight and notifies listeners synchronously before returning.
// Used exclusively for drag tracking.
func (c *ProgressController) DragBy(delta float64) {
	c.stopTicker()

	c.value = clamp01(c.value + delta)
	switch {
	case c.value <= 0:
		c.setStatus(StatusDismissed)
	case c.value >= 1:
		c.setStatus(StatusCompleted)
	case delta > 0:
		c.setStatus(StatusForward)
	case delta < 0:
		c.setStatus(StatusReverse)
	}
	c.notifyListeners()
}

// Fling settles the value at a bound with a spring seeded by the release
// velocity, in units of full widths per second: negative closes, anything
// else opens. A faster release settles sooner; a near-zero velocity still
// completes in bounded time through the spring's own stiffness.
func (c *ProgressController) Fling(velocity float64) {
	c.stopTicker()

	target := 1.0
	direction := StatusForward
	if velocity < 0 {
		target = 0
		direction = StatusReverse
	}

	c.target = target
	c.startValue = c.value
	c.setStatus(direction)

	sim := NewSpringSimulation(IOSSpring(), c.value, velocity, target)
	lastTime := Now()
	c.ticker = c.provider.CreateTicker(func(time.Duration) {
		now := Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		// Cap dt so a stalled host doesn't make the spring catch up all at once.
		const maxDt = 0.032
		if dt > maxDt {
			dt = maxDt
		}

		done := sim.Step(dt)
		c.value = clamp01(sim.Position())
		c.notifyListeners()
		if done {
			c.finishRun()
		}
	})
	c.ticker.Start()
}

// Reset cancels any run, discards its ticker, and reinitializes the value to
// 0.0 (StatusDismissed). Call it after changing durations or curves at
// runtime so the new configuration applies to the next run.
func (c *ProgressController) Reset() {
	c.stopTicker()
	c.value = 0
	c.setStatus(StatusDismissed)
	c.notifyListeners()
}

// Stop cancels any run, freezing the value where it is.
func (c *ProgressController) Stop() {
	c.stopTicker()
}

func (c *ProgressController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// finishRun stops the ticker and latches the terminal status for the bound
// the run reached.
func (c *ProgressController) finishRun() {
	c.stopTicker()
	if c.value <= 0 {
		c.setStatus(StatusDismissed)
	} else if c.value >= 1 {
		c.setStatus(StatusCompleted)
	}
}

// Value returns the current progress in [0, 1].
func (c *ProgressController) Value() float64 {
	return c.value
}

// Status returns the current coarse state.
func (c *ProgressController) Status() Status {
	return c.status
}

// IsAnimating returns true while a timed run or fling is in flight.
func (c *ProgressController) IsAnimating() bool {
	return c.status == StatusForward || c.status == StatusReverse
}

// IsCompleted returns true when the drawer is at rest fully open.
func (c *ProgressController) IsCompleted() bool {
	return c.status == StatusCompleted
}

// IsDismissed returns true when the drawer is at rest fully closed.
func (c *ProgressController) IsDismissed() bool {
	return c.status == StatusDismissed
}

// AddListener adds a callback that fires on every value change.
// Returns an unsubscribe function.
func (c *ProgressController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *ProgressController) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *ProgressController) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		c.dispatchStatus(listener, status)
	}
}

func (c *ProgressController) notifyListeners() {
	for _, listener := range c.listeners {
		c.dispatch(listener)
	}
}

// dispatch isolates listener panics so one misbehaving observer cannot take
// down the host frame loop.
func (c *ProgressController) dispatch(fn func()) {
	defer errors.Recover("animation.ProgressController.notify")
	fn()
}

func (c *ProgressController) dispatchStatus(fn func(Status), status Status) {
	defer errors.Recover("animation.ProgressController.notifyStatus")
	fn(status)
}

// Dispose stops any run and releases listener registrations.
func (c *ProgressController) Dispose() {
	c.stopTicker()
	c.listeners = nil
	c.statusListeners = nil
}
