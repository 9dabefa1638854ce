// Package geometry provides the small set of value types the drawer core
// exchanges with a host UI framework: offsets, sizes, colors, and gradient
// descriptions. Painting and layout stay with the host; these types only
// describe positions and styling intent.
package geometry

// Offset is a position or translation in logical units.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size is a width/height pair in logical units.
type Size struct {
	Width  float64
	Height float64
}

// Clamp constrains v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
