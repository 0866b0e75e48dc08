package moire

import (
	"fmt"
	"math"

	"github.com/gogpu/moire/internal/lattice"
)

// Layer geometry defaults.
const (
	// DefaultSpacing is the lattice spacing shared by the reference layers.
	DefaultSpacing = 6.0

	// DiameterUnit scales the reference diameters (1.0 to 2.5) to pixels.
	DiameterUnit = 2.0

	// MaxLayers is the largest layer count an Engine accepts.
	MaxLayers = 8
)

// LayerSpec holds the construction parameters of one layer.
type LayerSpec struct {
	// Name labels the layer in logs and user interfaces.
	Name string

	// Color is the flat paint color.
	Color RGB

	// Diameter of each disc in pixels.
	Diameter float64

	// Spacing between lattice centres in pixels.
	Spacing float64
}

// DefaultLayers returns the five reference layers, innermost look first.
func DefaultLayers() []LayerSpec {
	return []LayerSpec{
		{Name: "lightblue", Color: LightBlue, Diameter: 1.000 * DiameterUnit, Spacing: DefaultSpacing},
		{Name: "yellow", Color: Yellow, Diameter: 1.375 * DiameterUnit, Spacing: DefaultSpacing},
		{Name: "red", Color: Red, Diameter: 1.750 * DiameterUnit, Spacing: DefaultSpacing},
		{Name: "blue", Color: Blue, Diameter: 2.125 * DiameterUnit, Spacing: DefaultSpacing},
		{Name: "black", Color: Black, Diameter: 2.500 * DiameterUnit, Spacing: DefaultSpacing},
	}
}

func (s LayerSpec) validate(i int) error {
	if math.IsNaN(s.Spacing) || math.IsInf(s.Spacing, 0) || s.Spacing < lattice.MinSpacing {
		return fmt.Errorf("%w: layer %d (%s) spacing %v", ErrInvalidSpacing, i, s.Name, s.Spacing)
	}
	if math.IsNaN(s.Diameter) || math.IsInf(s.Diameter, 0) || s.Diameter <= 0 {
		return fmt.Errorf("%w: layer %d (%s) diameter %v", ErrInvalidLayers, i, s.Name, s.Diameter)
	}
	return nil
}

// LayerState is a snapshot of one layer as seen by the engine.
type LayerState struct {
	Spec LayerSpec

	// Degrees is the stored rotation angle.
	Degrees float64

	// Dirty reports whether the mask is stale and will be rebuilt on the
	// next render.
	Dirty bool

	// MaskBuilds counts lattice mask rebuilds so far.
	MaskBuilds uint64
}

// layer is the engine's mutable record for one LayerSpec.
type layer struct {
	spec    LayerSpec
	degrees float64
	angle   float64 // radians

	shapes    ShapeSet // unrotated, built on first rebuild
	hasShapes bool

	mask   *Mask // final mask
	builds uint64
}

// shapeKey identifies an unrotated shape set; spacing and diameter fully
// determine it for a given engine geometry.
type shapeKey struct {
	spacing  float64
	diameter float64
}

func (l *layer) key() shapeKey {
	return shapeKey{spacing: l.spec.Spacing, diameter: l.spec.Diameter}
}
