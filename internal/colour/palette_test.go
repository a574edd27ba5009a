package colour

import (
	"testing"
)

func TestGeneratePaletteRed(t *testing.T) {
	got := GeneratePalette("#ff0000")

	want := Harmony{
		Complementary:      "#00ffff",
		Triadic:            [2]string{"#00ff00", "#0000ff"},
		Analogous:          [2]string{"#ff8000", "#ff0080"},
		SplitComplementary: [2]string{"#00ff80", "#0080ff"},
	}
	if got != want {
		t.Errorf("GeneratePalette(#ff0000) = %+v, want %+v", got, want)
	}
}

func TestGeneratePaletteHueWraparound(t *testing.T) {
	// Magenta sits at h=300, so its complement lands on (300+180)%360 = 120.
	got := GeneratePalette("#ff00ff")
	if hsl := RGBToHSL(HexToRGB(got.Complementary)); hsl.H != 120 {
		t.Errorf("complementary hue = %d, want 120", hsl.H)
	}
	if got.Complementary != "#00ff00" {
		t.Errorf("complementary = %s, want #00ff00", got.Complementary)
	}
}

func TestGeneratePaletteTriadicSpacing(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#00ff00", "#0000ff"} {
		t.Run(hex, func(t *testing.T) {
			base := RGBToHSL(HexToRGB(hex))
			p := GeneratePalette(hex)
			h1 := RGBToHSL(HexToRGB(p.Triadic[0])).H
			h2 := RGBToHSL(HexToRGB(p.Triadic[1])).H

			if d := HueDistance(base.H, h1); d != 120 {
				t.Errorf("triadic[0] is %d degrees from base, want 120", d)
			}
			if d := HueDistance(base.H, h2); d != 120 {
				t.Errorf("triadic[1] is %d degrees from base, want 120 (240 the other way)", d)
			}
			if d := HueDistance(h1, h2); d != 120 {
				t.Errorf("triadic pair is %d degrees apart, want 120", d)
			}
		})
	}
}

func TestGeneratePaletteKeepsSaturationAndLightness(t *testing.T) {
	base := HSL{H: 200, S: 60, L: 40}
	hex := HSLToRGB(base).Hex()
	p := GeneratePalette(hex)
	src := RGBToHSL(HexToRGB(hex))

	for _, sw := range p.Swatches() {
		want := HSLToRGB(RotateHue(src, hueOffset(t, src, sw.Hex))).Hex()
		if sw.Hex != want {
			t.Errorf("%s = %s, want %s", sw.Label, sw.Hex, want)
		}
	}
}

// hueOffset finds which harmony offset produced hex from src.
func hueOffset(t *testing.T, src HSL, hex string) int {
	t.Helper()
	for _, off := range []int{180, 120, 240, 30, -30, 150, 210} {
		if HSLToRGB(RotateHue(src, off)).Hex() == hex {
			return off
		}
	}
	t.Fatalf("%s is not a hue rotation of %+v", hex, src)
	return 0
}

func TestGeneratePaletteAchromatic(t *testing.T) {
	p := GeneratePalette("#808080")
	for _, sw := range p.Swatches() {
		if sw.Hex != "#808080" {
			t.Errorf("%s = %s, want #808080 for a grey base", sw.Label, sw.Hex)
		}
	}
}

func TestGeneratePaletteInvalidFallsBackToBlack(t *testing.T) {
	p := GeneratePalette("nope")
	for _, sw := range p.Swatches() {
		if sw.Hex != "#000000" {
			t.Errorf("%s = %s, want #000000", sw.Label, sw.Hex)
		}
	}
}

func TestHarmonySwatchesOrder(t *testing.T) {
	p := GeneratePalette("#ff0000")
	s := p.Swatches()
	if len(s) != 7 {
		t.Fatalf("Swatches() returned %d entries, want 7", len(s))
	}
	if s[0].Label != "complementary" || s[0].Hex != p.Complementary {
		t.Errorf("first swatch = %+v, want complementary", s[0])
	}
	if s[6].Hex != p.SplitComplementary[1] {
		t.Errorf("last swatch = %+v, want split-complementary 2", s[6])
	}
}

func TestRGBString(t *testing.T) {
	if got := (RGB{R: 1, G: 2, B: 3}).String(); got != "rgb(1, 2, 3)" {
		t.Errorf("RGB.String() = %q", got)
	}
	if got := (HSL{H: 10, S: 20, L: 30}).String(); got != "hsl(10, 20%, 30%)" {
		t.Errorf("HSL.String() = %q", got)
	}
	if got := (LCH{L: 53, C: 105, H: 40}).String(); got != "lch(53, 105, 40)" {
		t.Errorf("LCH.String() = %q", got)
	}
}
