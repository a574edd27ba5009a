package colour

import (
	"math"
)

// D65 reference white, scaled to Y=100.
const (
	whiteX = 95.047
	whiteY = 100.000
	whiteZ = 108.883
)

// CIE constants for the piecewise f(t) in XYZ -> Lab.
const (
	labEpsilon = 0.008856
	labKappa   = 7.787
)

// XYZ represents CIE 1931 tristimulus values on a 0-100 scale (D65).
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Lab represents a colour in CIELAB space relative to D65.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// LCH is the cylindrical form of CIELAB, rounded to integers.
type LCH struct {
	L int `json:"l"`
	C int `json:"c"`
	H int `json:"h"`
}

// srgbToLinear decodes an sRGB component in [0,1] (IEC 61966-2-1 threshold).
func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// RGBToXYZ converts sRGB to CIE XYZ using the D65 sRGB matrix.
func RGBToXYZ(rgb RGB) XYZ {
	r := srgbToLinear(float64(rgb.R)/255.0) * 100
	g := srgbToLinear(float64(rgb.G)/255.0) * 100
	b := srgbToLinear(float64(rgb.B)/255.0) * 100

	return XYZ{
		X: r*0.4124564 + g*0.3575761 + b*0.1804375,
		Y: r*0.2126729 + g*0.7151522 + b*0.0721750,
		Z: r*0.0193339 + g*0.1191920 + b*0.9503041,
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1.0/3.0)
	}
	return labKappa*t + 16.0/116.0
}

// XYZToLab converts CIE XYZ to CIELAB relative to the D65 white point.
func XYZToLab(xyz XYZ) Lab {
	fx := labF(xyz.X / whiteX)
	fy := labF(xyz.Y / whiteY)
	fz := labF(xyz.Z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToLCH converts CIELAB to LCH. Hue is in degrees [0,360).
func LabToLCH(lab Lab) LCH {
	c := math.Sqrt(lab.A*lab.A + lab.B*lab.B)
	h := math.Atan2(lab.B, lab.A) * (180 / math.Pi)
	if h < 0 {
		h += 360
	}

	return LCH{
		L: roundHalfUp(lab.L),
		C: roundHalfUp(c),
		H: wrapHue(roundHalfUp(h)),
	}
}

// RGBToLCH converts sRGB to LCH via XYZ and CIELAB.
func RGBToLCH(rgb RGB) LCH {
	return LabToLCH(XYZToLab(RGBToXYZ(rgb)))
}
