package colour

// VariationSteps is the number of colours in each variation ramp.
const VariationSteps = 5

// Per-step increments for the ramps.
const (
	tintStep  = 10 // lightness points
	shadeStep = 10 // lightness points
	toneStep  = 15 // saturation points
)

// Variations holds tint, shade and tone ramps for a base colour.
// Index i is step i+1 of the ramp.
type Variations struct {
	Tints  [VariationSteps]string `json:"tints"`
	Shades [VariationSteps]string `json:"shades"`
	Tones  [VariationSteps]string `json:"tones"`
}

// GenerateVariations walks lightness up (tints), lightness down (shades) and
// saturation down (tones) from hex. Steps clamp at 0 and 100, so the tail
// of a ramp may repeat the boundary colour.
// Malformed input is treated as black.
func GenerateVariations(hex string) Variations {
	return variationsFromHSL(RGBToHSL(HexToRGB(hex)))
}

func variationsFromHSL(base HSL) Variations {
	var v Variations
	for i := 0; i < VariationSteps; i++ {
		step := i + 1

		tint := base
		tint.L = min(100, base.L+tintStep*step)
		v.Tints[i] = RGBToHex(HSLToRGB(tint))

		shade := base
		shade.L = max(0, base.L-shadeStep*step)
		v.Shades[i] = RGBToHex(HSLToRGB(shade))

		tone := base
		tone.S = max(0, base.S-toneStep*step)
		v.Tones[i] = RGBToHex(HSLToRGB(tone))
	}
	return v
}
