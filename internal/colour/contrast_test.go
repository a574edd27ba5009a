package colour

import (
	"testing"
)

func TestCalculateContrasts(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Contrasts
	}{
		{name: "white", hex: "#ffffff", want: Contrasts{White: 1, Black: 21}},
		{name: "black", hex: "#000000", want: Contrasts{White: 21, Black: 1}},
		{name: "red", hex: "#ff0000", want: Contrasts{White: 4, Black: 5.25}},
		{name: "invalid is black", hex: "zzzzzz", want: Contrasts{White: 21, Black: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateContrasts(tt.hex); got != tt.want {
				t.Errorf("CalculateContrasts(%s) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestCalculateContrastsRange(t *testing.T) {
	for _, hex := range []string{"#123456", "#abcdef", "#7f7f7f", "#00ff00", "#0000ff", "#fedcba"} {
		c := CalculateContrasts(hex)
		for _, v := range []float64{c.White, c.Black} {
			if v < 1 || v > 21 {
				t.Errorf("CalculateContrasts(%s) = %+v, ratio outside [1,21]", hex, c)
			}
		}
	}
}

func TestWCAGLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{21, "AAA"},
		{7, "AAA"},
		{6.99, "AA"},
		{4.5, "AA"},
		{4.49, "AA Large"},
		{3, "AA Large"},
		{2.99, "Fail"},
		{1, "Fail"},
	}

	for _, tt := range tests {
		if got := WCAGLevel(tt.ratio); got != tt.want {
			t.Errorf("WCAGLevel(%v) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}
