package colour

import (
	"fmt"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// String returns the HSL colour in CSS-like notation.
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// String returns the LCH colour in CSS-like notation.
func (lch LCH) String() string {
	return fmt.Sprintf("lch(%d, %d, %d)", lch.L, lch.C, lch.H)
}

// Hue offsets, in degrees, for each harmony relation.
const (
	offsetComplementary = 180
	offsetTriadic       = 120
	offsetAnalogous     = 30
	offsetSplitComp     = 150
)

// Harmony holds the colours related to a base colour by hue rotation.
type Harmony struct {
	Complementary      string    `json:"complementary"`
	Triadic            [2]string `json:"triadic"`
	Analogous          [2]string `json:"analogous"`
	SplitComplementary [2]string `json:"splitComplementary"`
}

// Swatch is a labelled hex colour.
type Swatch struct {
	Label string
	Hex   string
}

// Swatches returns the harmony colours in display order.
func (h Harmony) Swatches() []Swatch {
	return []Swatch{
		{Label: "complementary", Hex: h.Complementary},
		{Label: "triadic 1", Hex: h.Triadic[0]},
		{Label: "triadic 2", Hex: h.Triadic[1]},
		{Label: "analogous 1", Hex: h.Analogous[0]},
		{Label: "analogous 2", Hex: h.Analogous[1]},
		{Label: "split-complementary 1", Hex: h.SplitComplementary[0]},
		{Label: "split-complementary 2", Hex: h.SplitComplementary[1]},
	}
}

// rotatedHex rotates the hue of base and returns the result as hex.
func rotatedHex(base HSL, deg int) string {
	return RGBToHex(HSLToRGB(RotateHue(base, deg)))
}

// GeneratePalette derives complementary, triadic, analogous and
// split-complementary colours from hex. Saturation and lightness are kept.
// Malformed input is treated as black.
func GeneratePalette(hex string) Harmony {
	return harmonyFromHSL(RGBToHSL(HexToRGB(hex)))
}

func harmonyFromHSL(base HSL) Harmony {
	return Harmony{
		Complementary: rotatedHex(base, offsetComplementary),
		Triadic: [2]string{
			rotatedHex(base, offsetTriadic),
			rotatedHex(base, 2*offsetTriadic),
		},
		Analogous: [2]string{
			rotatedHex(base, offsetAnalogous),
			rotatedHex(base, -offsetAnalogous),
		},
		SplitComplementary: [2]string{
			rotatedHex(base, offsetSplitComp),
			rotatedHex(base, 360-offsetSplitComp),
		},
	}
}
