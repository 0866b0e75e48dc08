// Package blend provides 8-bit blending for RGB canvases and coverage masks.
//
// All arithmetic is integer. Products of two 8-bit values are divided by
// 255 with rounding, so full coverage reproduces the source exactly and
// zero coverage leaves the destination untouched.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 returns round(x / 255) for x in [0, 65535] without dividing.
func div255(x uint32) uint32 {
	x += 128
	return (x + (x >> 8)) >> 8
}

// MulDiv255 returns round(a * b / 255).
func MulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint32(a) * uint32(b)))
}

// Lerp mixes src over dst with weight a: round((src*a + dst*(255-a)) / 255).
func Lerp(dst, src, a uint8) uint8 {
	return uint8(div255(uint32(src)*uint32(a) + uint32(dst)*uint32(255-a)))
}

// Max writes max(dst[i], src[i]) into dst. Lengths must match.
func Max(dst, src []uint8) {
	src = src[:len(dst)]
	for i, v := range src {
		if v > dst[i] {
			dst[i] = v
		}
	}
}

// Min writes min(dst[i], src[i]) into dst. Lengths must match.
func Min(dst, src []uint8) {
	src = src[:len(dst)]
	for i, v := range src {
		if v < dst[i] {
			dst[i] = v
		}
	}
}

// Invert writes 255 - dst[i] into dst.
func Invert(dst []uint8) {
	for i, v := range dst {
		dst[i] = 255 - v
	}
}
