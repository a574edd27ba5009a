// Package colour provides the colour-space conversions and the palette,
// variation and contrast generators behind swatch.
//
// Every exported function is pure: no I/O, no shared state, and the same
// input always yields the same output.
package colour

import (
	"math"
)

// HSL represents a colour in hue/saturation/lightness form.
// H is in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect linearises a colour component using the WCAG threshold.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 int) int {
	diff := h1 - h2
	if diff < 0 {
		diff = -diff
	}
	diff %= 360
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}

// RotateHue returns hsl with its hue shifted by deg degrees, wrapped into [0,360).
// Saturation and lightness are left untouched.
func RotateHue(hsl HSL, deg int) HSL {
	hsl.H = wrapHue(hsl.H + deg)
	return hsl
}

func wrapHue(h int) int {
	return ((h % 360) + 360) % 360
}

// RGBToHSL converts RGB to HSL colour space.
// All three components are rounded to the nearest integer.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l := (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: roundHalfUp(l * 100)}
	}

	// Saturation.
	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	// Hue, as a fraction of the full turn.
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h /= 6

	return HSL{
		H: wrapHue(roundHalfUp(h * 360)),
		S: roundHalfUp(s * 100),
		L: roundHalfUp(l * 100),
	}
}

// HSLToRGB converts HSL to RGB colour space using the chroma/intermediate/match
// decomposition over six 60° hue sectors.
func HSLToRGB(hsl HSL) RGB {
	h := float64(hsl.H) / 360.0
	s := float64(hsl.S) / 100.0
	l := float64(hsl.L) / 100.0

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}
}

// toChannel scales a [0,1] component to an 8-bit channel.
func toChannel(v float64) uint8 {
	n := roundHalfUp(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// roundHalfUp rounds to the nearest integer, with halves going towards +Inf
// (-0.5 rounds to 0, unlike math.Round).
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
