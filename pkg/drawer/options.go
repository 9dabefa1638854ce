package drawer

import (
	"math"
	"time"

	"github.com/go-drift/drawerkit/pkg/animation"
	"github.com/go-drift/drawerkit/pkg/geometry"
)

// Alignment controls how the host positions the panel content vertically.
type Alignment int

const (
	// AlignStart pins the panel content to the top of the viewport.
	AlignStart Alignment = iota
	// AlignCenter centers the panel content vertically.
	AlignCenter
)

func (a Alignment) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "start"
}

// Brightness is a styling hint for the panel's default colors.
type Brightness int

const (
	// BrightnessDark styles the panel for dark backgrounds.
	BrightnessDark Brightness = iota
	// BrightnessLight styles the panel for light backgrounds.
	BrightnessLight
)

func (b Brightness) String() string {
	if b == BrightnessLight {
		return "light"
	}
	return "dark"
}

// Fill describes the panel background as either a solid color or a gradient.
// When both are set the gradient wins; when neither is set the theme default
// applies. See [Fill.Resolve].
type Fill struct {
	Color    geometry.Color
	Gradient *geometry.LinearGradient
}

// IsZero reports whether neither color nor gradient is set.
func (f Fill) IsZero() bool {
	return f.Gradient == nil && f.Color.IsZero()
}

// Resolve applies the precedence chain: gradient > color > fallback.
func (f Fill) Resolve(fallback Fill) Fill {
	if f.Gradient != nil {
		return Fill{Gradient: f.Gradient}
	}
	if !f.Color.IsZero() {
		return Fill{Color: f.Color}
	}
	return fallback
}

// DragBehavior configures gesture activation and release thresholds.
// The values are tuning constants, not derived from a physical model;
// override them per product feel.
type DragBehavior struct {
	// MinFlingVelocity is the release speed (units/s) at or above which the
	// drawer flings instead of snapping.
	MinFlingVelocity float64
	// OpenEdgeWidth is the activation margin from the left edge inside which
	// a drag may begin opening a dismissed drawer.
	OpenEdgeWidth float64
	// CloseEdgeMargin is the activation margin left of the slide limit
	// inside which a drag may begin closing a completed drawer.
	CloseEdgeMargin float64
	// SnapThreshold is the progress at or above which a slow release opens
	// the drawer. Below it the drawer closes.
	SnapThreshold float64
}

// DefaultDragBehavior returns the recommended thresholds.
func DefaultDragBehavior() DragBehavior {
	return DragBehavior{
		MinFlingVelocity: 365,
		OpenEdgeWidth:    60,
		CloseEdgeMargin:  16,
		SnapThreshold:    0.5,
	}
}

// normalizeDragBehavior fills in zero values with defaults.
func normalizeDragBehavior(value DragBehavior) DragBehavior {
	defaults := DefaultDragBehavior()
	if value.MinFlingVelocity <= 0 {
		value.MinFlingVelocity = defaults.MinFlingVelocity
	}
	if value.OpenEdgeWidth <= 0 {
		value.OpenEdgeWidth = defaults.OpenEdgeWidth
	}
	if value.CloseEdgeMargin <= 0 {
		value.CloseEdgeMargin = defaults.CloseEdgeMargin
	}
	if value.SnapThreshold <= 0 {
		value.SnapThreshold = defaults.SnapThreshold
	}
	return value
}

// DefaultRotateAngle is the panel tilt at full progress when rotation is on.
const DefaultRotateAngle = math.Pi / 24

// Options configures a [Drawer]. Start from [DefaultOptions] and override
// fields; zero values fall back to defaults where one exists.
type Options struct {
	// ForwardDuration is the open transition length (default 300ms).
	ForwardDuration time.Duration
	// ForwardCurve eases the open transition (default EaseInOut).
	ForwardCurve animation.Curve
	// ReverseDuration is the close transition length (defaults to forward).
	ReverseDuration time.Duration
	// ReverseCurve eases the close transition (defaults to forward).
	ReverseCurve animation.Curve

	// OffsetFromRight is how much of the viewport the slid content keeps
	// uncovered on the right (default 60). maxSlide = width − OffsetFromRight.
	OffsetFromRight float64

	// Rotate tilts the content about the vertical axis while sliding.
	Rotate bool
	// RotateAngle is the tilt in radians at full progress (default π/24).
	RotateAngle float64

	// Alignment positions the panel content (default AlignStart).
	Alignment Alignment
	// Background fills the panel; gradient wins over color, theme default
	// when neither is set.
	Background Fill
	// Brightness is a styling hint consumed only by the renderer.
	Brightness Brightness

	// Drag tunes gesture thresholds; zero values use DefaultDragBehavior.
	Drag DragBehavior

	// Provider supplies frame tickers to the progress controller.
	Provider animation.TickerProvider
}

// DefaultOptions returns the canonical configuration: 300ms ease-in-out both
// ways, 60-unit right offset, rotation on at π/24.
func DefaultOptions() Options {
	return Options{
		ForwardDuration: animation.DefaultDuration,
		ForwardCurve:    animation.EaseInOut,
		OffsetFromRight: 60,
		Rotate:          true,
		RotateAngle:     DefaultRotateAngle,
		Drag:            DefaultDragBehavior(),
	}
}

// normalizeOptions fills unset fields with defaults. Validation of values
// that cannot be defaulted happens in New.
func normalizeOptions(opts Options) Options {
	if opts.OffsetFromRight == 0 {
		opts.OffsetFromRight = 60
	}
	if opts.RotateAngle == 0 {
		opts.RotateAngle = DefaultRotateAngle
	}
	opts.Drag = normalizeDragBehavior(opts.Drag)
	return opts
}
