package moire

import (
	"iter"
	"math"

	"github.com/gogpu/moire/internal/raster"
)

// DefaultCircleSegments is the number of sides used to approximate a disc.
const DefaultCircleSegments = 32

// ShapeSet is an immutable set of closed polygons that all have the same
// number of vertices. Transform returns a new set; the receiver is never
// modified, so a set can be cached and shared.
type ShapeSet struct {
	verts []Point
	sides int
}

// BuildShapeSet returns one regular polygon of the given diameter per
// centre. Centres are offsets from the pattern origin; origin is where that
// origin lands on the canvas. sides below 3 are raised to 3.
func BuildShapeSet(centers iter.Seq[Point], diameter float64, origin Point, sides int) ShapeSet {
	sides = max(sides, 3)
	s := ShapeSet{sides: sides}
	for c := range centers {
		s.verts = appendCircle(s.verts, origin.Add(c), diameter/2, sides, false)
	}
	return s
}

// Circle returns a set holding a single regular polygon.
func Circle(center Point, radius float64, sides int) ShapeSet {
	sides = max(sides, 3)
	return ShapeSet{verts: appendCircle(nil, center, radius, sides, false), sides: sides}
}

// Annulus returns a ring between two concentric circles. The inner circle
// is wound the other way, so it cancels the outer one when rasterized.
func Annulus(center Point, outer, inner float64, sides int) ShapeSet {
	sides = max(sides, 3)
	v := appendCircle(nil, center, outer, sides, false)
	v = appendCircle(v, center, inner, sides, true)
	return ShapeSet{verts: v, sides: sides}
}

// appendCircle appends the vertices of a regular polygon inscribed in the
// circle. Vertex k sits at angle 2πk/sides.
func appendCircle(dst []Point, c Point, r float64, sides int, reverse bool) []Point {
	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		k := i
		if reverse {
			k = (sides - i) % sides
		}
		a := step * float64(k)
		dst = append(dst, Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
	}
	return dst
}

// Len returns the number of shapes.
func (s ShapeSet) Len() int {
	if s.sides == 0 {
		return 0
	}
	return len(s.verts) / s.sides
}

// Sides returns the vertex count of every shape.
func (s ShapeSet) Sides() int { return s.sides }

// Shape returns the vertices of shape i. The slice must not be modified.
func (s ShapeSet) Shape(i int) []Point {
	return s.verts[i*s.sides : (i+1)*s.sides : (i+1)*s.sides]
}

// Transform returns a copy of the set with m applied to every vertex.
func (s ShapeSet) Transform(m Matrix) ShapeSet {
	out := ShapeSet{verts: make([]Point, len(s.verts)), sides: s.sides}
	for i, p := range s.verts {
		out.verts[i] = m.TransformPoint(p)
	}
	return out
}

// Rotate returns the set rotated by angle radians about center.
func (s ShapeSet) Rotate(angle float64, center Point) ShapeSet {
	return s.Transform(RotateAbout(angle, center.X, center.Y))
}

// polygons flattens the set into buf for the rasterizer, reusing its
// capacity.
func (s ShapeSet) polygons(buf []float32) raster.Polygons {
	buf = buf[:0]
	for _, p := range s.verts {
		buf = append(buf, float32(p.X), float32(p.Y))
	}
	return raster.Polygons{XY: buf, Sides: s.sides}
}
