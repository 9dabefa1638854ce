package drawer

import (
	goerrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/drawerkit/pkg/animation"
	"github.com/go-drift/drawerkit/pkg/errors"
	"github.com/go-drift/drawerkit/pkg/geometry"
)

// fileConfig mirrors the optional drawer.yaml layout.
type fileConfig struct {
	ForwardDuration string   `yaml:"forward_duration,omitempty"`
	ForwardCurve    string   `yaml:"forward_curve,omitempty"`
	ReverseDuration string   `yaml:"reverse_duration,omitempty"`
	ReverseCurve    string   `yaml:"reverse_curve,omitempty"`
	OffsetFromRight *float64 `yaml:"offset_from_right,omitempty"`
	Rotate          *bool    `yaml:"rotate,omitempty"`
	RotateAngle     *float64 `yaml:"rotate_angle,omitempty"`
	Alignment       string   `yaml:"alignment,omitempty"`
	Brightness      string   `yaml:"brightness,omitempty"`
	Color           string   `yaml:"color,omitempty"`
	Gradient        []string `yaml:"gradient,omitempty"`

	Drag struct {
		MinFlingVelocity float64 `yaml:"min_fling_velocity,omitempty"`
		OpenEdgeWidth    float64 `yaml:"open_edge_width,omitempty"`
		CloseEdgeMargin  float64 `yaml:"close_edge_margin,omitempty"`
		SnapThreshold    float64 `yaml:"snap_threshold,omitempty"`
	} `yaml:"drag,omitempty"`
}

// namedCurves maps config names to easing curves.
var namedCurves = map[string]animation.Curve{
	"linear":      animation.Linear,
	"ease":        animation.Ease,
	"ease-in":     animation.EaseIn,
	"ease-out":    animation.EaseOut,
	"ease-in-out": animation.EaseInOut,
}

// LoadOptions reads drawer options from a YAML file, applying
// [DefaultOptions] for anything the file leaves out. A missing file is not
// an error: it yields the defaults unchanged. Malformed values are
// configuration errors.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return opts, nil
		}
		return opts, errors.Config("drawer.LoadOptions", "path", "failed to read %s: %v", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return opts, errors.Config("drawer.LoadOptions", "yaml", "failed to parse %s: %v", path, err)
	}
	return applyFileConfig(opts, cfg)
}

func applyFileConfig(opts Options, cfg fileConfig) (Options, error) {
	var err error
	if opts.ForwardDuration, err = parseDuration(cfg.ForwardDuration, opts.ForwardDuration, "forward_duration"); err != nil {
		return opts, err
	}
	if opts.ReverseDuration, err = parseDuration(cfg.ReverseDuration, opts.ReverseDuration, "reverse_duration"); err != nil {
		return opts, err
	}
	if opts.ForwardCurve, err = parseCurve(cfg.ForwardCurve, opts.ForwardCurve, "forward_curve"); err != nil {
		return opts, err
	}
	if opts.ReverseCurve, err = parseCurve(cfg.ReverseCurve, opts.ReverseCurve, "reverse_curve"); err != nil {
		return opts, err
	}

	if cfg.OffsetFromRight != nil {
		opts.OffsetFromRight = *cfg.OffsetFromRight
	}
	if cfg.Rotate != nil {
		opts.Rotate = *cfg.Rotate
	}
	if cfg.RotateAngle != nil {
		opts.RotateAngle = *cfg.RotateAngle
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Alignment)) {
	case "", "start":
	case "center":
		opts.Alignment = AlignCenter
	default:
		return opts, errors.Config("drawer.LoadOptions", "alignment",
			"unknown value %q (want start or center)", cfg.Alignment)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Brightness)) {
	case "", "dark":
	case "light":
		opts.Brightness = BrightnessLight
	default:
		return opts, errors.Config("drawer.LoadOptions", "brightness",
			"unknown value %q (want dark or light)", cfg.Brightness)
	}

	if cfg.Color != "" {
		color, err := ParseHexColor(cfg.Color)
		if err != nil {
			return opts, errors.Config("drawer.LoadOptions", "color", "%v", err)
		}
		opts.Background.Color = color
	}
	if len(cfg.Gradient) > 0 {
		colors := make([]geometry.Color, 0, len(cfg.Gradient))
		for _, hex := range cfg.Gradient {
			color, err := ParseHexColor(hex)
			if err != nil {
				return opts, errors.Config("drawer.LoadOptions", "gradient", "%v", err)
			}
			colors = append(colors, color)
		}
		opts.Background.Gradient = geometry.NewLinearGradient(colors...)
	}

	if cfg.Drag.MinFlingVelocity > 0 {
		opts.Drag.MinFlingVelocity = cfg.Drag.MinFlingVelocity
	}
	if cfg.Drag.OpenEdgeWidth > 0 {
		opts.Drag.OpenEdgeWidth = cfg.Drag.OpenEdgeWidth
	}
	if cfg.Drag.CloseEdgeMargin > 0 {
		opts.Drag.CloseEdgeMargin = cfg.Drag.CloseEdgeMargin
	}
	if cfg.Drag.SnapThreshold > 0 {
		opts.Drag.SnapThreshold = cfg.Drag.SnapThreshold
	}

	return opts, nil
}

func parseDuration(raw string, fallback time.Duration, field string) (time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fallback, errors.Config("drawer.LoadOptions", field, "invalid duration %q", raw)
	}
	return d, nil
}

func parseCurve(raw string, fallback animation.Curve, field string) (animation.Curve, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return fallback, nil
	}
	if curve, ok := namedCurves[name]; ok {
		return curve, nil
	}
	return fallback, errors.Config("drawer.LoadOptions", field,
		"unknown curve %q (want linear, ease, ease-in, ease-out, or ease-in-out)", raw)
}

// ParseHexColor parses "#RGB", "#RRGGBB", or "#AARRGGBB" hex notation.
func ParseHexColor(raw string) (geometry.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := range 3 {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
		fallthrough
	case 6:
		hex = "FF" + hex
		fallthrough
	case 8:
		value, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", raw)
		}
		return geometry.Color(value), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q (want #RGB, #RRGGBB, or #AARRGGBB)", raw)
	}
}
