package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by the strict parsers when the input is not a
// 6-digit hex colour with an optional leading '#'.
var ErrInvalidHex = errors.New("invalid hex colour")

// IsHex reports whether s is a 6-digit hex colour, with or without a leading '#'.
func IsHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ParseHex parses a hex colour string into an RGB struct.
// Supports formats: #RRGGBB, RRGGBB (case-insensitive).
// Shorthand (#RGB), CSS functions and named colours are rejected with ErrInvalidHex.
func ParseHex(hex string) (RGB, error) {
	if !IsHex(hex) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	hex = strings.TrimPrefix(hex, "#")

	// IsHex has already validated every digit.
	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)

	return RGB{
		R: uint8(r),
		G: uint8(g),
		B: uint8(b),
	}, nil
}

// HexToRGB parses a hex colour, falling back to black for malformed input.
// Use ParseHex where "black" and "invalid" need telling apart.
func HexToRGB(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		return RGB{}
	}
	return rgb
}

// RGBToHex formats rgb as a lowercase "#rrggbb" string.
func RGBToHex(rgb RGB) string {
	return rgb.Hex()
}

// NormaliseHex returns hex in canonical "#rrggbb" form.
func NormaliseHex(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}
