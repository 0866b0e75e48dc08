package moire

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/moire/internal/blend"
)

// Canvas is a packed 8-bit RGB pixel buffer, row-major, 3 bytes per pixel.
type Canvas struct {
	width  int
	height int
	data   []uint8
}

// NewCanvas creates a black width×height canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("moire: negative canvas size %dx%d", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
}

// NewCanvasFromData wraps data as a width×height RGB canvas without
// copying. It returns ErrSizeMismatch unless len(data) == width*height*3.
func NewCanvasFromData(width, height int, data []uint8) (*Canvas, error) {
	if width <= 0 || height <= 0 || len(data) != width*height*3 {
		return nil, fmt.Errorf("%w: %d bytes for a %dx%d RGB canvas", ErrSizeMismatch, len(data), width, height)
	}
	return &Canvas{width: width, height: height, data: data}, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas.
func (c *Canvas) Height() int { return c.height }

// Data returns the raw pixel data (RGB format).
func (c *Canvas) Data() []uint8 { return c.data }

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// ignored.
func (c *Canvas) SetPixel(x, y int, col RGB) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 3
	c.data[i+0] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
}

// RGBAt returns the color of a single pixel, or White outside the canvas.
func (c *Canvas) RGBAt(x, y int) RGB {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return White
	}
	i := (y*c.width + x) * 3
	return RGB{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2]}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGB) {
	blend.ClearRGB(c.data, col.array())
}

// FillMasked paints col through m: every pixel is mixed towards col in
// proportion to its mask value. A value of 255 replaces the pixel.
func (c *Canvas) FillMasked(col RGB, m *Mask) error {
	if m.width != c.width || m.height != c.height {
		return fmt.Errorf("%w: canvas %dx%d, mask %dx%d", ErrSizeMismatch, c.width, c.height, m.width, m.height)
	}
	blend.FillRGB(c.data, col.array(), m.data)
	return nil
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color { return c.RGBAt(x, y) }

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// ToImage converts the canvas to an opaque image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	c.drawInto(img)
	return img
}

// drawInto copies the canvas into dst, expanding RGB to RGBA.
func (c *Canvas) drawInto(dst *image.RGBA) {
	if dst.Rect != c.Bounds() {
		r := dst.Rect.Intersect(c.Bounds())
		xdraw.Draw(dst, r, c, r.Min, xdraw.Src)
		return
	}
	for y := 0; y < c.height; y++ {
		src := c.data[y*c.width*3 : (y+1)*c.width*3]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+c.width*4]
		for x := 0; x < c.width; x++ {
			row[4*x+0] = src[3*x+0]
			row[4*x+1] = src[3*x+1]
			row[4*x+2] = src[3*x+2]
			row[4*x+3] = 0xff
		}
	}
}

// View returns a read-only view of the canvas. The view takes no lock, so
// it must not be read while the canvas is being written.
func (c *Canvas) View() CanvasView { return CanvasView{c: c} }

// CanvasView is a read-only window onto a Canvas. It stays valid across
// renders and always shows the latest frame.
//
// A view returned by an Engine holds the engine lock while it reads, so
// RGBAt, At, Snapshot, ToImage and DrawInto may run concurrently with
// RenderFrame. Bytes returns the live buffer and is only safe when no
// render can run at the same time; do not modify it.
type CanvasView struct {
	c  *Canvas
	mu *sync.Mutex // engine lock, nil for a bare canvas
}

func (v CanvasView) lock() func() {
	if v.mu == nil {
		return func() {}
	}
	v.mu.Lock()
	return v.mu.Unlock
}

// Width returns the canvas width.
func (v CanvasView) Width() int { return v.c.width }

// Height returns the canvas height.
func (v CanvasView) Height() int { return v.c.height }

// Stride returns the number of bytes per row.
func (v CanvasView) Stride() int { return v.c.width * 3 }

// Bytes returns the packed row-major RGB pixels without copying.
func (v CanvasView) Bytes() []uint8 { return v.c.data }

// RGBAt returns the color at (x, y).
func (v CanvasView) RGBAt(x, y int) RGB {
	defer v.lock()()
	return v.c.RGBAt(x, y)
}

// At implements the image.Image interface.
func (v CanvasView) At(x, y int) color.Color { return v.RGBAt(x, y) }

// Bounds implements the image.Image interface.
func (v CanvasView) Bounds() image.Rectangle { return v.c.Bounds() }

// ColorModel implements the image.Image interface.
func (v CanvasView) ColorModel() color.Model { return color.RGBAModel }

// Snapshot copies the current pixels; the copy is unaffected by later
// renders.
func (v CanvasView) Snapshot() []uint8 {
	defer v.lock()()
	return append([]uint8(nil), v.c.data...)
}

// ToImage converts the current frame to an image.RGBA for display toolkits.
func (v CanvasView) ToImage() *image.RGBA {
	defer v.lock()()
	return v.c.ToImage()
}

// DrawInto copies the current frame into dst, reusing its pixels. dst may
// have any bounds; pixels outside the canvas are left untouched.
func (v CanvasView) DrawInto(dst *image.RGBA) {
	defer v.lock()()
	v.c.drawInto(dst)
}
