// Package lattice enumerates the centres of a hexagonal disc lattice.
//
// Cells are visited along an outward square spiral in (column, row) index
// space, so centres come out roughly in order of increasing distance from
// the origin. Only centres strictly inside the bounding disc are yielded,
// but the walk continues until it leaves the canvas, which keeps coverage
// complete up to the disc boundary.
package lattice

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// MinSpacing is the smallest accepted lattice spacing in pixels.
// Smaller values would make the spiral walk millions of cells per canvas.
const MinSpacing = 0.25

// rowPitch is the vertical distance between rows for unit spacing (√3/2).
var rowPitch = math.Sqrt(3) / 2

// ErrInvalidConfig is returned by Config.Validate for unusable parameters.
var ErrInvalidConfig = errors.New("lattice: invalid config")

// Offset is a lattice centre relative to the pattern origin.
type Offset struct {
	X, Y float64
}

// Config describes one lattice enumeration.
type Config struct {
	// Spacing is the distance between neighbouring centres in a row.
	Spacing float64

	// Radius bounds the disc; a centre is included when X²+Y² < Radius².
	Radius float64

	// Width and Height are the canvas dimensions. The pattern origin sits
	// at (Width/2, Height/2) and the walk stops once it leaves the canvas.
	Width, Height int
}

// Validate reports whether the configuration can be enumerated.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Spacing) || math.IsInf(c.Spacing, 0) || c.Spacing < MinSpacing:
		return fmt.Errorf("%w: spacing %v (minimum %v)", ErrInvalidConfig, c.Spacing, MinSpacing)
	case math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) || c.Radius <= 0:
		return fmt.Errorf("%w: radius %v", ErrInvalidConfig, c.Radius)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// Origin returns the absolute pixel position of the lattice origin.
func (c Config) Origin() (x, y float64) {
	return float64(c.Width / 2), float64(c.Height / 2)
}

// bounds returns the box the spiral must stay inside, in absolute pixels.
// It is the canvas, grown when the disc would not fit so that every disc
// cell is visited before the walk stops. Rows are closer together than
// columns, so the spiral needs ceil(R/rowPitch/s) rings to cover the disc
// vertically; two more absorb the spiral's off-centre start.
func (c Config) bounds() (minX, minY, maxX, maxY float64) {
	ox, oy := c.Origin()
	rings := math.Ceil(c.Radius / (rowPitch * c.Spacing))
	reach := (rings + 2) * c.Spacing
	minX = math.Min(0, ox-reach)
	minY = math.Min(0, oy-reach)
	maxX = math.Max(float64(c.Width), ox+reach)
	maxY = math.Max(float64(c.Height), oy+reach)
	return minX, minY, maxX, maxY
}

// Cell returns the offset of the cell at column xi, row yi.
// Odd rows are shifted right by half a spacing.
func Cell(xi, yi int, spacing float64) Offset {
	x := float64(xi) * spacing
	if yi%2 != 0 {
		x += spacing / 2
	}
	return Offset{X: x, Y: float64(yi) * rowPitch * spacing}
}

// Spiral directions, in turning order.
const (
	dirUp = iota
	dirRight
	dirDown
	dirLeft
)

// Centers returns the lattice centres inside the disc described by cfg.
//
// The sequence is finite and restartable: ranging over it again yields the
// same centres in the same order. An invalid config yields nothing; call
// Validate first to learn why.
func Centers(cfg Config) iter.Seq[Offset] {
	return func(yield func(Offset) bool) {
		if cfg.Validate() != nil {
			return
		}

		ox, oy := cfg.Origin()
		minX, minY, maxX, maxY := cfg.bounds()
		r2 := cfg.Radius * cfg.Radius

		var xi, yi, dir, streak, turns int
		streakSize := 1
		for {
			o := Cell(xi, yi, cfg.Spacing)
			if o.X*o.X+o.Y*o.Y < r2 {
				if !yield(o) {
					return
				}
			}

			ax, ay := ox+o.X, oy+o.Y
			if ax < minX || ax >= maxX || ay < minY || ay >= maxY {
				return
			}

			switch dir {
			case dirUp:
				yi--
			case dirRight:
				xi++
			case dirDown:
				yi++
			case dirLeft:
				xi--
			}

			streak++
			if streak == streakSize {
				dir = (dir + 1) % 4
				streak = 0
				turns++
				if turns%2 == 0 {
					streakSize++
				}
			}
		}
	}
}

// Collect returns all centres of cfg in enumeration order.
func Collect(cfg Config) ([]Offset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var out []Offset
	for o := range Centers(cfg) {
		out = append(out, o)
	}
	return out, nil
}

// Count returns the number of centres cfg yields.
func Count(cfg Config) int {
	n := 0
	for range Centers(cfg) {
		n++
	}
	return n
}
