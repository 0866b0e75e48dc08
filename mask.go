package moire

import (
	"fmt"
	"image"

	"github.com/gogpu/moire/internal/blend"
)

// Mask is an 8-bit coverage buffer. Values range from 0 (transparent) to
// 255 (fully covered); anti-aliased edges hold values in between.
// Pixels are stored row-major with stride equal to the width.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("moire: negative mask size %dx%d", width, height))
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromData wraps data as a width×height mask without copying.
// It returns ErrSizeMismatch unless len(data) == width*height.
func NewMaskFromData(width, height int, data []uint8) (*Mask, error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %d bytes for a %dx%d mask", ErrSizeMismatch, len(data), width, height)
	}
	return &Mask{width: width, height: height, data: data}, nil
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clear sets every value to 0.
func (m *Mask) Clear() { m.Fill(0) }

// Invert replaces every value v with 255 - v.
func (m *Mask) Invert() { blend.Invert(m.data) }

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// SameSize reports whether m and o have the same dimensions.
func (m *Mask) SameSize(o *Mask) bool {
	return m.width == o.width && m.height == o.height
}

// Max sets every value to max(m, o).
func (m *Mask) Max(o *Mask) error {
	if !m.SameSize(o) {
		return sizeMismatch(m, o)
	}
	blend.Max(m.data, o.data)
	return nil
}

// Min sets every value to min(m, o).
func (m *Mask) Min(o *Mask) error {
	if !m.SameSize(o) {
		return sizeMismatch(m, o)
	}
	blend.Min(m.data, o.data)
	return nil
}

// Equal reports whether m and o have the same size and contents.
func (m *Mask) Equal(o *Mask) bool {
	if !m.SameSize(o) {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// MaxDiff returns the largest absolute per-pixel difference between m and o
// and the number of pixels that differ at all.
func (m *Mask) MaxDiff(o *Mask) (maxDiff uint8, count int, err error) {
	if !m.SameSize(o) {
		return 0, 0, sizeMismatch(m, o)
	}
	for i, a := range m.data {
		b := o.data[i]
		if a == b {
			continue
		}
		count++
		d := a - b
		if b > a {
			d = b - a
		}
		maxDiff = max(maxDiff, d)
	}
	return maxDiff, count, nil
}

// Image returns an *image.Alpha sharing the mask's pixels.
func (m *Mask) Image() *image.Alpha {
	return &image.Alpha{Pix: m.data, Stride: m.width, Rect: m.Bounds()}
}

// ComposeLayerMask writes the final mask of a layer into dst:
//
//	dst[i] = min(max(lattice[i], ring[i]), outer[i])
//
// The ring keeps a solid boundary where the lattice leaves gaps; the outer
// disc clips everything the lattice walk overshot. dst may alias lattice.
func ComposeLayerMask(dst, lattice, ring, outer *Mask) error {
	for _, o := range []*Mask{lattice, ring, outer} {
		if !dst.SameSize(o) {
			return sizeMismatch(dst, o)
		}
	}
	composeLayerMask(dst.data, lattice.data, ring.data, outer.data)
	return nil
}

func composeLayerMask(dst, lattice, ring, outer []uint8) {
	lattice = lattice[:len(dst)]
	ring = ring[:len(dst)]
	outer = outer[:len(dst)]
	for i := range dst {
		v := max(lattice[i], ring[i])
		dst[i] = min(v, outer[i])
	}
}

func sizeMismatch(a, b *Mask) error {
	return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.width, a.height, b.width, b.height)
}
