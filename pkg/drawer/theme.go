package drawer

import "github.com/go-drift/drawerkit/pkg/geometry"

// Theme holds the styling defaults the renderer falls back to when Options
// leaves the panel background unset.
type Theme struct {
	// Background fills the panel when Options.Background is empty.
	Background Fill
	// Brightness is the default styling hint.
	Brightness Brightness
	// CornerRadius rounds the slid content's corners while the drawer is
	// fully open (see Drawer.ShouldClipContent).
	CornerRadius float64
}

// DefaultTheme returns dark-panel defaults.
func DefaultTheme() Theme {
	return Theme{
		Background:   Fill{Color: geometry.RGB(38, 50, 56)},
		Brightness:   BrightnessDark,
		CornerRadius: 16,
	}
}

// ResolveBackground applies the background precedence chain for this drawer:
// gradient from Options, else color from Options, else the theme default.
func (d *Drawer) ResolveBackground(theme Theme) Fill {
	return d.opts.Background.Resolve(theme.Background)
}
