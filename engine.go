package moire

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/moire/internal/cache"
	"github.com/gogpu/moire/internal/dirty"
	"github.com/gogpu/moire/internal/raster"
)

// Engine owns the canvas, masks and layer records of one composition and
// renders frames on demand.
//
// Only layers whose angle changed since the previous frame get their masks
// rebuilt; the canvas itself is always repainted from every layer so that
// later layers occlude earlier ones regardless of which subset changed.
//
// Engine methods are safe to call from several goroutines; calls are
// serialized and a render pass never overlaps another call. Views returned
// by RenderFrame and View share the same lock; see CanvasView.
type Engine struct {
	mu sync.Mutex

	opts   engineOptions
	center Point

	canvas      *Canvas
	outer       *Mask
	ring        *Mask
	outerPoly   raster.Polygons // outer disc, the fill region of every layer
	lattice     *Mask           // scratch for the layer being rebuilt
	staticBuilt bool

	layers []*layer
	dirty  *dirty.Set
	shapes *cache.Cache[shapeKey, ShapeSet]
	ras    *raster.Rasterizer
	xy     []float32 // scratch vertices for the rasterizer

	stats Stats
}

// Stats reports how much work the engine has done.
type Stats struct {
	// Frames counts completed RenderFrame calls.
	Frames uint64

	// StaticBuilds counts outer-disc and ring mask builds; at most 1.
	StaticBuilds int

	// MaskBuilds counts lattice mask rebuilds per layer.
	MaskBuilds []uint64

	// ShapeSets is the number of cached unrotated shape sets.
	ShapeSets int

	// ShapeHits and ShapeMisses count shape cache lookups.
	ShapeHits, ShapeMisses uint64
}

// New creates an engine. With no options it renders the reference
// composition: a 512×512 canvas, five layers, outer radius 200 and a ring
// from 175 to 200.
func New(opts ...EngineOption) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		opts:    o,
		center:  Pt(float64(o.width/2), float64(o.height/2)),
		canvas:  NewCanvas(o.width, o.height),
		outer:   NewMask(o.width, o.height),
		ring:    NewMask(o.width, o.height),
		lattice: NewMask(o.width, o.height),
		layers:  make([]*layer, len(o.layers)),
		dirty:   dirty.New(len(o.layers)),
		shapes:  cache.New[shapeKey, ShapeSet](o.shapeCacheSize),
		ras:     raster.New(o.width, o.height),
	}
	for i, spec := range o.layers {
		e.layers[i] = &layer{spec: spec, mask: NewMask(o.width, o.height)}
	}
	e.dirty.MarkAll()
	e.canvas.Clear(White)

	Logger().Info("moire: engine ready",
		"width", o.width,
		"height", o.height,
		"layers", len(e.layers),
		"perforated", o.perforate)
	return e, nil
}

// Size returns the canvas dimensions.
func (e *Engine) Size() (width, height int) {
	return e.opts.width, e.opts.height
}

// LayerCount returns the number of layers.
func (e *Engine) LayerCount() int { return len(e.layers) }

// AngleLimit returns the largest accepted absolute angle in degrees.
func (e *Engine) AngleLimit() float64 { return e.opts.angleLimit }

// Angle returns the stored rotation of layer i in degrees.
func (e *Engine) Angle(i int) (float64, error) {
	if i < 0 || i >= len(e.layers) {
		return 0, fmt.Errorf("%w: %d (have %d layers)", ErrLayerIndex, i, len(e.layers))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layers[i].degrees, nil
}

// SetLayerAngle sets the rotation of layer i in degrees. The layer is
// marked dirty only if the stored angle actually changes.
//
// NaN and infinite angles are rejected with ErrAngleOutOfRange. Angles
// beyond the limit are clamped, or rejected when the engine was built with
// WithStrictAngles.
func (e *Engine) SetLayerAngle(i int, degrees float64) error {
	if i < 0 || i >= len(e.layers) {
		return fmt.Errorf("%w: %d (have %d layers)", ErrLayerIndex, i, len(e.layers))
	}
	degrees, err := e.checkAngle(i, degrees)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.setAngleLocked(i, degrees)
	return nil
}

// SetLayerAngles sets every layer's angle from one snapshot, as a slider
// panel reports it. len(degrees) must equal LayerCount. Nothing is changed
// if any angle is rejected.
func (e *Engine) SetLayerAngles(degrees []float64) error {
	if len(degrees) != len(e.layers) {
		return fmt.Errorf("%w: %d angles for %d layers", ErrLayerIndex, len(degrees), len(e.layers))
	}
	checked := make([]float64, len(degrees))
	for i, d := range degrees {
		v, err := e.checkAngle(i, d)
		if err != nil {
			return err
		}
		checked[i] = v
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i, d := range checked {
		e.setAngleLocked(i, d)
	}
	return nil
}

// checkAngle applies the angle policy and returns the value to store.
func (e *Engine) checkAngle(i int, degrees float64) (float64, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return 0, fmt.Errorf("%w: layer %d angle %v", ErrAngleOutOfRange, i, degrees)
	}
	limit := e.opts.angleLimit
	if degrees >= -limit && degrees <= limit {
		return degrees, nil
	}
	if e.opts.strictAngles {
		return 0, fmt.Errorf("%w: layer %d angle %v outside ±%v", ErrAngleOutOfRange, i, degrees, limit)
	}
	clamped := math.Max(-limit, math.Min(limit, degrees))
	Logger().Debug("moire: angle clamped", "layer", i, "degrees", degrees, "clamped", clamped)
	return clamped, nil
}

// setAngleLocked stores the angle and marks the layer dirty on change.
// Caller must hold e.mu.
func (e *Engine) setAngleLocked(i int, degrees float64) {
	l := e.layers[i]
	rad := degrees * math.Pi / 180
	if rad == l.angle {
		return
	}
	l.angle = rad
	l.degrees = degrees
	e.dirty.Mark(i)
}

// RenderFrame runs one render pass and returns the canvas.
//
// The pass builds the static masks if needed, rebuilds the mask of every
// dirty layer, then repaints the whole canvas from all layers in order.
// The returned view stays valid and shows later frames too.
func (e *Engine) RenderFrame() CanvasView {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureStaticMasks()
	rebuilt := e.dirty.TakeAll()
	for _, i := range rebuilt {
		e.rebuildLayer(i)
	}
	e.compositeLayers()
	e.stats.Frames++

	Logger().Debug("moire: frame rendered", "frame", e.stats.Frames, "rebuilt", len(rebuilt))
	return e.View()
}

// View returns the canvas without rendering. Before the first RenderFrame
// it is plain white.
func (e *Engine) View() CanvasView { return CanvasView{c: e.canvas, mu: &e.mu} }

// Layers returns a snapshot of every layer.
func (e *Engine) Layers() []LayerState {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]LayerState, len(e.layers))
	for i, l := range e.layers {
		out[i] = LayerState{
			Spec:       l.spec,
			Degrees:    l.degrees,
			Dirty:      e.dirty.IsDirty(i),
			MaskBuilds: l.builds,
		}
	}
	return out
}

// LayerMask returns a copy of the final mask of layer i as of the last
// render.
func (e *Engine) LayerMask(i int) (*Mask, error) {
	if i < 0 || i >= len(e.layers) {
		return nil, fmt.Errorf("%w: %d (have %d layers)", ErrLayerIndex, i, len(e.layers))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layers[i].mask.Clone(), nil
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.stats
	s.MaskBuilds = make([]uint64, len(e.layers))
	for i, l := range e.layers {
		s.MaskBuilds[i] = l.builds
	}
	cs := e.shapes.Stats()
	s.ShapeSets = cs.Len
	s.ShapeHits = cs.Hits
	s.ShapeMisses = cs.Misses
	return s
}
