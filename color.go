package moire

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Reference layer colors.
var (
	White     = RGB{255, 255, 255}
	Black     = RGB{0, 0, 0}
	LightBlue = RGB{200, 200, 255}
	Yellow    = RGB{255, 255, 0}
	Red       = RGB{255, 0, 0}
	Blue      = RGB{0, 0, 255}
)

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the hex form of c.
func (c RGB) String() string { return c.Hex() }

func (c RGB) array() [3]uint8 { return [3]uint8{c.R, c.G, c.B} }

// FromColor converts any color to RGB, compositing it over white.
func FromColor(c color.Color) RGB {
	r, g, b, a := c.RGBA()
	// Premultiplied 16-bit channels over a white background.
	over := func(v uint32) uint8 {
		return uint8((v + (0xffff - a)) >> 8)
	}
	return RGB{R: over(r), G: over(g), B: over(b)}
}

// ParseHex parses "#rgb", "rgb", "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [6]uint8
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok || i >= len(v) {
			return RGB{}, fmt.Errorf("moire: invalid hex color %q", s)
		}
		v[i] = d
	}

	switch len(s) {
	case 3:
		return RGB{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17}, nil
	case 6:
		return RGB{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5]}, nil
	default:
		return RGB{}, fmt.Errorf("moire: invalid hex color %q", s)
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
