package colour

import "math"

var (
	white = RGB{R: 255, G: 255, B: 255}
	black = RGB{R: 0, G: 0, B: 0}
)

// Contrasts holds the WCAG contrast ratios of a colour against pure white
// and pure black, rounded to two decimal places.
type Contrasts struct {
	White float64 `json:"white"`
	Black float64 `json:"black"`
}

// CalculateContrasts returns the contrast ratios of hex against white and black.
// Malformed input is treated as black.
func CalculateContrasts(hex string) Contrasts {
	return contrastsFromRGB(HexToRGB(hex))
}

func contrastsFromRGB(rgb RGB) Contrasts {
	return Contrasts{
		White: round2(ContrastRatio(rgb, white)),
		Black: round2(ContrastRatio(rgb, black)),
	}
}

func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// WCAG 2.0 contrast thresholds.
const (
	ratioAAA     = 7.0
	ratioAA      = 4.5
	ratioAALarge = 3.0
	levelAAA     = "AAA"
	levelAA      = "AA"
	levelAALarge = "AA Large"
	levelFail    = "Fail"
)

// WCAGLevel grades a contrast ratio against the WCAG 2.0 success criteria
// for normal text (AA 4.5:1, AAA 7:1) and large text (3:1).
func WCAGLevel(ratio float64) string {
	switch {
	case ratio >= ratioAAA:
		return levelAAA
	case ratio >= ratioAA:
		return levelAA
	case ratio >= ratioAALarge:
		return levelAALarge
	default:
		return levelFail
	}
}
