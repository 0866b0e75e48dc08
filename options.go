package moire

import (
	"fmt"
	"math"
)

// Engine geometry defaults.
const (
	DefaultCanvasSize      = 512
	DefaultOuterRadius     = 200.0
	DefaultRingInnerRadius = 175.0
	DefaultAngleLimit      = 60.0

	// DefaultRimSegments approximates the outer disc and ring circles.
	DefaultRimSegments = 100
)

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Reference engine: 512×512, five layers
//	e, err := moire.New()
//
//	// Three custom layers, discs punched out of opaque sheets
//	e, err := moire.New(
//	    moire.WithLayers(a, b, c),
//	    moire.WithPerforation(),
//	)
type EngineOption func(*engineOptions)

// engineOptions holds the engine configuration.
type engineOptions struct {
	width, height  int
	outerRadius    float64
	ringInner      float64
	layers         []LayerSpec
	angleLimit     float64
	strictAngles   bool
	perforate      bool
	circleSegments int
	rimSegments    int
	shapeCacheSize int
}

// defaultOptions returns the reference configuration.
func defaultOptions() engineOptions {
	return engineOptions{
		width:          DefaultCanvasSize,
		height:         DefaultCanvasSize,
		outerRadius:    DefaultOuterRadius,
		ringInner:      DefaultRingInnerRadius,
		layers:         DefaultLayers(),
		angleLimit:     DefaultAngleLimit,
		circleSegments: DefaultCircleSegments,
		rimSegments:    DefaultRimSegments,
		shapeCacheSize: MaxLayers,
	}
}

// WithCanvasSize sets the canvas and mask dimensions.
func WithCanvasSize(width, height int) EngineOption {
	return func(o *engineOptions) {
		o.width, o.height = width, height
	}
}

// WithOuterRadius sets the radius of the outer disc that clips every layer.
// It also bounds the lattice.
func WithOuterRadius(r float64) EngineOption {
	return func(o *engineOptions) {
		o.outerRadius = r
	}
}

// WithRingInnerRadius sets the inner radius of the solid boundary ring.
// The ring spans from this radius to the outer radius.
func WithRingInnerRadius(r float64) EngineOption {
	return func(o *engineOptions) {
		o.ringInner = r
	}
}

// WithLayers replaces the layer list. Layers are composited in the given
// order, so later layers cover earlier ones.
func WithLayers(layers ...LayerSpec) EngineOption {
	return func(o *engineOptions) {
		o.layers = append([]LayerSpec(nil), layers...)
	}
}

// WithAngleLimit sets the accepted rotation range to [-deg, +deg].
func WithAngleLimit(deg float64) EngineOption {
	return func(o *engineOptions) {
		o.angleLimit = deg
	}
}

// WithStrictAngles makes SetLayerAngle reject out-of-range angles with
// ErrAngleOutOfRange instead of clamping them.
func WithStrictAngles() EngineOption {
	return func(o *engineOptions) {
		o.strictAngles = true
	}
}

// WithPerforation inverts the lattice mask: each layer becomes an opaque
// sheet with the discs punched out of it, instead of a set of opaque discs.
func WithPerforation() EngineOption {
	return func(o *engineOptions) {
		o.perforate = true
	}
}

// WithCircleSegments sets how many sides approximate each disc.
func WithCircleSegments(n int) EngineOption {
	return func(o *engineOptions) {
		o.circleSegments = n
	}
}

// WithShapeCacheSize limits how many unrotated shape sets are kept.
// 0 keeps all of them.
func WithShapeCacheSize(n int) EngineOption {
	return func(o *engineOptions) {
		o.shapeCacheSize = n
	}
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// validate reports configuration errors. Called once by New.
func (o *engineOptions) validate() error {
	switch {
	case o.width <= 0 || o.height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidGeometry, o.width, o.height)
	case !finitePositive(o.outerRadius):
		return fmt.Errorf("%w: outer radius %v", ErrInvalidGeometry, o.outerRadius)
	case !finitePositive(o.ringInner) || o.ringInner >= o.outerRadius:
		return fmt.Errorf("%w: ring inner radius %v with outer radius %v", ErrInvalidGeometry, o.ringInner, o.outerRadius)
	case !finitePositive(o.angleLimit):
		return fmt.Errorf("%w: angle limit %v", ErrInvalidGeometry, o.angleLimit)
	case o.circleSegments < 3:
		return fmt.Errorf("%w: %d circle segments", ErrInvalidGeometry, o.circleSegments)
	case o.shapeCacheSize < 0:
		return fmt.Errorf("%w: shape cache size %d", ErrInvalidLayers, o.shapeCacheSize)
	case len(o.layers) == 0 || len(o.layers) > MaxLayers:
		return fmt.Errorf("%w: %d layers (want 1..%d)", ErrInvalidLayers, len(o.layers), MaxLayers)
	}
	for i, l := range o.layers {
		if err := l.validate(i); err != nil {
			return err
		}
	}
	return nil
}
