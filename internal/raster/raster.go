// Package raster scan-converts closed polygons into 8-bit coverage and RGB
// buffers with anti-aliasing.
//
// Accumulation is done by golang.org/x/image/vector, which computes exact
// signed area per pixel. Overlapping polygons of the same orientation
// saturate at full coverage; a polygon wound the opposite way cancels the
// one it lies in, which is how annuli are drawn.
package raster

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/moire/internal/blend"
)

// Polygons is a flat list of closed polygons that all have Sides vertices.
// XY holds x0, y0, x1, y1, ... for every vertex of every polygon in turn.
type Polygons struct {
	XY    []float32
	Sides int
}

// Len returns the number of polygons.
func (p Polygons) Len() int {
	if p.Sides <= 0 {
		return 0
	}
	return len(p.XY) / (2 * p.Sides)
}

// Rasterizer converts polygons to coverage for a fixed-size buffer.
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	z      *vector.Rasterizer
	cov    []uint8 // scratch coverage for FillRGBMasked
}

// New creates a rasterizer for width×height buffers.
func New(width, height int) *Rasterizer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("raster: invalid size %dx%d", width, height))
	}
	return &Rasterizer{
		width:  width,
		height: height,
		z:      vector.NewRasterizer(width, height),
		cov:    make([]uint8, width*height),
	}
}

// Width returns the buffer width.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the buffer height.
func (r *Rasterizer) Height() int { return r.height }

// Coverage overwrites dst with the anti-aliased coverage of polys:
// 0 outside, 255 in solid interior, fractional values along edges.
// len(dst) must be Width*Height.
func (r *Rasterizer) Coverage(dst []uint8, polys Polygons) {
	r.checkLen("coverage", len(dst), 1)
	r.load(polys)
	r.z.DrawOp = draw.Src
	a := &image.Alpha{
		Pix:    dst,
		Stride: r.width,
		Rect:   image.Rect(0, 0, r.width, r.height),
	}
	r.z.Draw(a, a.Rect, image.Opaque, image.Point{})
}

// FillRGBMasked paints c into dst through the coverage of polys, scaled
// per pixel by mask. len(mask) must be Width*Height.
func (r *Rasterizer) FillRGBMasked(dst []uint8, polys Polygons, c [3]uint8, mask []uint8) {
	r.checkLen("rgb", len(dst), 3)
	r.checkLen("mask", len(mask), 1)
	r.Coverage(r.cov, polys)
	blend.FillRGBMasked(dst, c, r.cov, mask)
}

// load resets the accumulator and adds every polygon as a closed path.
func (r *Rasterizer) load(polys Polygons) {
	r.z.Reset(r.width, r.height)
	if polys.Sides < 3 {
		return
	}
	stride := 2 * polys.Sides
	for off := 0; off+stride <= len(polys.XY); off += stride {
		v := polys.XY[off : off+stride]
		r.z.MoveTo(v[0], v[1])
		for i := 2; i < stride; i += 2 {
			r.z.LineTo(v[i], v[i+1])
		}
		r.z.ClosePath()
	}
}

func (r *Rasterizer) checkLen(what string, n, channels int) {
	if want := r.width * r.height * channels; n != want {
		panic(fmt.Sprintf("raster: %s buffer has %d bytes, want %d", what, n, want))
	}
}
