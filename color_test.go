package moire

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGB implements color.Color.
var _ color.Color = RGB{}

func TestRGB_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGB
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 65535},
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"opaque red", Red, 65535, 0, 0, 65535},
		{"light blue", LightBlue, 200 * 257, 200 * 257, 65535, 65535},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#c8c8ff", LightBlue, false},
		{"ffff00", Yellow, false},
		{"#f00", Red, false},
		{"00F", Blue, false},
		{"", RGB{}, true},
		{"#12", RGB{}, true},
		{"#1234567", RGB{}, true},
		{"zzzzzz", RGB{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []RGB{White, Black, LightBlue, Yellow, Red, Blue} {
		got, err := ParseHex(c.Hex())
		if err != nil || got != c {
			t.Errorf("ParseHex(%q) = %v, %v", c.Hex(), got, err)
		}
	}
	if s := LightBlue.String(); s != "#c8c8ff" {
		t.Errorf("String() = %q", s)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGB
	}{
		{"opaque", color.RGBA{R: 10, G: 20, B: 30, A: 255}, RGB{10, 20, 30}},
		{"transparent is white", color.RGBA{}, White},
		{"gray", color.Gray{Y: 128}, RGB{128, 128, 128}},
		{"half black over white", color.NRGBA{A: 128}, RGB{127, 127, 127}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
