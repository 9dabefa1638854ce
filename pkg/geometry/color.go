package geometry

import "math"

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// Common colors used as styling defaults.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
)

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / 255.0
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	b := uint8(math.Round(Clamp(a, 0, 1) * 255))
	return Color(uint32(b)<<24 | uint32(c)&0x00FFFFFF)
}

// IsZero reports whether the color is the zero value (fully transparent black).
// Option structs use it to detect "not set".
func (c Color) IsZero() bool {
	return c == 0
}

// LerpColor linearly interpolates between two colors channel by channel.
func LerpColor(a, b Color, t float64) Color {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return Color(uint32(lerp(uint8(a>>24), uint8(b>>24)))<<24 |
		uint32(lerp(uint8(a>>16), uint8(b>>16)))<<16 |
		uint32(lerp(uint8(a>>8), uint8(b>>8)))<<8 |
		uint32(lerp(uint8(a), uint8(b))))
}
