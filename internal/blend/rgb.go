package blend

// FillRGB paints color c into the packed RGB buffer dst, weighting every
// pixel by its coverage. len(dst) must be 3*len(cov).
func FillRGB(dst []uint8, c [3]uint8, cov []uint8) {
	dst = dst[:3*len(cov)]
	for i, a := range cov {
		switch a {
		case 0:
			continue
		case 255:
			dst[3*i+0] = c[0]
			dst[3*i+1] = c[1]
			dst[3*i+2] = c[2]
		default:
			dst[3*i+0] = Lerp(dst[3*i+0], c[0], a)
			dst[3*i+1] = Lerp(dst[3*i+1], c[1], a)
			dst[3*i+2] = Lerp(dst[3*i+2], c[2], a)
		}
	}
}

// FillRGBMasked is FillRGB with the coverage further scaled by mask:
// the effective weight is round(cov*mask/255). All buffers share one
// pixel count.
func FillRGBMasked(dst []uint8, c [3]uint8, cov, mask []uint8) {
	mask = mask[:len(cov)]
	dst = dst[:3*len(cov)]
	for i, a := range cov {
		m := mask[i]
		if a == 0 || m == 0 {
			continue
		}
		if a != 255 || m != 255 {
			a = MulDiv255(a, m)
			if a == 0 {
				continue
			}
		}
		if a == 255 {
			dst[3*i+0] = c[0]
			dst[3*i+1] = c[1]
			dst[3*i+2] = c[2]
			continue
		}
		dst[3*i+0] = Lerp(dst[3*i+0], c[0], a)
		dst[3*i+1] = Lerp(dst[3*i+1], c[1], a)
		dst[3*i+2] = Lerp(dst[3*i+2], c[2], a)
	}
}

// ClearRGB sets every pixel of dst to c.
func ClearRGB(dst []uint8, c [3]uint8) {
	for i := 0; i+2 < len(dst); i += 3 {
		dst[i+0] = c[0]
		dst[i+1] = c[1]
		dst[i+2] = c[2]
	}
}
