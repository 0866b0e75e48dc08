// Package moire renders moiré patterns from stacked hexagonal lattices of
// discs.
//
// # Overview
//
// Each layer is a field of small discs placed on a hexagonal lattice
// inside a circular window. Layers are painted over one another in a
// fixed order, and rotating one layer relative to the others produces
// interference fringes. A solid ring frames the window.
//
// # Quick Start
//
//	import "github.com/gogpu/moire"
//
//	e, err := moire.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Rotate the top layer and render
//	_ = e.SetLayerAngle(4, 12.5)
//	view := e.RenderFrame()
//	img := view.ToImage()
//
// # Pipeline
//
// A frame is built in five stages:
//   - Lattice: internal/lattice walks a spiral over the hexagonal grid and
//     yields every centre strictly inside the outer radius.
//   - Shapes: BuildShapeSet turns centres into polygonal discs.
//   - Transform: ShapeSet.Rotate turns a layer about the canvas centre.
//   - Raster: internal/raster produces anti-aliased 8-bit coverage.
//   - Composite: each layer mask is min(max(lattice, ring), outer) and the
//     canvas is white with every layer painted through its mask in order.
//
// The outer disc and ring masks are built once. A layer mask is rebuilt
// only after its angle changes; the canvas is repainted on every frame.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X increases right and Y increases
// down. Angles passed to SetLayerAngle are in degrees.
//
// # Logging
//
// The package is silent by default. Call SetLogger with a *slog.Logger to
// see engine lifecycle and per-frame debug events.
package moire

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
