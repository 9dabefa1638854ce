package geometry

import "fmt"

// GradientStop defines a color stop within a gradient.
// Position is a fraction in [0, 1] along the gradient axis.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient describes a gradient between two points in the unit square.
// Hosts rasterize it; the drawer core only carries and samples it.
type LinearGradient struct {
	Begin Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient builds a left-to-right gradient with evenly spaced stops.
func NewLinearGradient(colors ...Color) *LinearGradient {
	stops := make([]GradientStop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = GradientStop{Position: pos, Color: c}
	}
	return &LinearGradient{End: Offset{X: 1}, Stops: stops}
}

// ColorAt samples the gradient at fraction t along its axis.
func (g *LinearGradient) ColorAt(t float64) Color {
	if len(g.Stops) == 0 {
		return ColorTransparent
	}
	t = Clamp(t, 0, 1)
	prev := g.Stops[0]
	if t <= prev.Position {
		return prev.Color
	}
	for _, stop := range g.Stops[1:] {
		if t <= stop.Position {
			span := stop.Position - prev.Position
			if span <= 0 {
				return stop.Color
			}
			return LerpColor(prev.Color, stop.Color, (t-prev.Position)/span)
		}
		prev = stop
	}
	return g.Stops[len(g.Stops)-1].Color
}

// Validate checks that stops are within range and ordered.
func (g *LinearGradient) Validate() error {
	last := -1.0
	for i, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return fmt.Errorf("gradient stop %d position %v outside [0, 1]", i, stop.Position)
		}
		if stop.Position < last {
			return fmt.Errorf("gradient stop %d position %v out of order", i, stop.Position)
		}
		last = stop.Position
	}
	return nil
}
