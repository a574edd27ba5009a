package colour

import (
	"encoding/json"
)

// Result aggregates every representation derived from a single hex colour.
type Result struct {
	RGB        RGB        `json:"rgb"`
	HSL        HSL        `json:"hsl"`
	LCH        LCH        `json:"lch"`
	Palette    Harmony    `json:"palette"`
	Variations Variations `json:"variations"`
	Contrasts  Contrasts  `json:"contrasts"`
}

// ConvertColor derives the full Result for hex.
// Malformed input degrades to black rather than failing; see ConvertColorStrict.
func ConvertColor(hex string) Result {
	rgb := HexToRGB(hex)
	return Result{
		RGB:        rgb,
		HSL:        RGBToHSL(rgb),
		LCH:        RGBToLCH(rgb),
		Palette:    GeneratePalette(hex),
		Variations: GenerateVariations(hex),
		Contrasts:  CalculateContrasts(hex),
	}
}

// ConvertColorStrict is ConvertColor for callers that must tell malformed
// input apart from black. It returns an error wrapping ErrInvalidHex.
func ConvertColorStrict(hex string) (Result, error) {
	if _, err := ParseHex(hex); err != nil {
		return Result{}, err
	}
	return ConvertColor(hex), nil
}

// Hex returns the canonical hex form of the converted colour.
func (r Result) Hex() string {
	return r.RGB.Hex()
}

// ToJSON converts the result to indented JSON.
func (r Result) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
