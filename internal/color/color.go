// Package color converts textual colors between hexadecimal, functional
// RGBA and fractional percent notations.
//
// Every notation parses into the canonical Color value and every Color can
// be serialized into any notation. Parsing and formatting are pure functions
// with no shared mutable state, so they are safe for concurrent use.
package color

// Color is the canonical 4-channel color value.
// Channels are bytes, so an out-of-range channel cannot be represented;
// parsers range-check their input before narrowing.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Opaque is the alpha value used when a notation omits alpha.
const Opaque uint8 = 255

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: Opaque}
}

// RGBA returns a color with the given channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Channels returns the channels in R, G, B, A order.
func (c Color) Channels() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// String returns the hex notation of the color.
func (c Color) String() string {
	return FormatHex(c)
}
