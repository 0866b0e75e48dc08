package moire

import (
	"iter"

	"github.com/gogpu/moire/internal/lattice"
)

// rasterize overwrites dst with the coverage of s, reusing the engine's
// vertex buffer.
func (e *Engine) rasterize(dst *Mask, s ShapeSet) {
	p := s.polygons(e.xy)
	e.xy = p.XY
	e.ras.Coverage(dst.data, p)
}

// ensureStaticMasks builds the outer-disc and ring masks on first use.
// Neither depends on any mutable parameter, so they are never rebuilt.
func (e *Engine) ensureStaticMasks() {
	if e.staticBuilt {
		return
	}
	o := &e.opts
	outer := Circle(e.center, o.outerRadius, o.rimSegments)
	e.outerPoly = outer.polygons(nil)
	e.rasterize(e.outer, outer)
	e.rasterize(e.ring, Annulus(e.center, o.outerRadius, o.ringInner, o.rimSegments))
	e.staticBuilt = true
	e.stats.StaticBuilds++

	Logger().Debug("moire: static masks built",
		"outer_radius", o.outerRadius,
		"ring_inner_radius", o.ringInner)
}

// latticePoints adapts a lattice enumeration to shape-builder centres.
func latticePoints(cfg lattice.Config) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for c := range lattice.Centers(cfg) {
			if !yield(Point{X: c.X, Y: c.Y}) {
				return
			}
		}
	}
}

// buildShapes enumerates the lattice of a layer and turns it into discs
// centred on the canvas.
func (e *Engine) buildShapes(spec LayerSpec) ShapeSet {
	cfg := lattice.Config{
		Spacing: spec.Spacing,
		Radius:  e.opts.outerRadius,
		Width:   e.opts.width,
		Height:  e.opts.height,
	}
	s := BuildShapeSet(latticePoints(cfg), spec.Diameter, e.center, e.opts.circleSegments)
	Logger().Debug("moire: lattice built",
		"spacing", spec.Spacing,
		"diameter", spec.Diameter,
		"discs", s.Len())
	return s
}

// rebuildLayer recomputes the final mask of layer i from its current angle.
func (e *Engine) rebuildLayer(i int) {
	l := e.layers[i]
	if !l.hasShapes {
		l.shapes = e.shapes.GetOrCreate(l.key(), func() ShapeSet {
			return e.buildShapes(l.spec)
		})
		l.hasShapes = true
	}

	shapes := l.shapes
	if l.angle != 0 {
		shapes = shapes.Rotate(l.angle, e.center)
	}
	e.rasterize(e.lattice, shapes)
	if e.opts.perforate {
		e.lattice.Invert()
	}
	composeLayerMask(l.mask.data, e.lattice.data, e.ring.data, e.outer.data)
	l.builds++

	Logger().Debug("moire: layer mask rebuilt",
		"layer", i,
		"name", l.spec.Name,
		"degrees", l.degrees)
}

// compositeLayers repaints the whole canvas: white first, then every layer
// in order, filling the outer disc through the layer's final mask. Later
// layers win wherever masks overlap.
func (e *Engine) compositeLayers() {
	e.canvas.Clear(White)
	for _, l := range e.layers {
		e.ras.FillRGBMasked(e.canvas.data, e.outerPoly, l.spec.Color.array(), l.mask.data)
	}
}
