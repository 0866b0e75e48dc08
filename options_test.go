package moire

import (
	"errors"
	"math"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if w, h := e.Size(); w != 512 || h != 512 {
		t.Errorf("Size() = %dx%d, want 512x512", w, h)
	}
	if e.LayerCount() != 5 {
		t.Errorf("LayerCount() = %d, want 5", e.LayerCount())
	}
	if e.AngleLimit() != 60 {
		t.Errorf("AngleLimit() = %v, want 60", e.AngleLimit())
	}

	wantColors := []RGB{LightBlue, Yellow, Red, Blue, Black}
	wantDiameters := []float64{2, 2.75, 3.5, 4.25, 5}
	for i, l := range e.Layers() {
		if l.Spec.Color != wantColors[i] {
			t.Errorf("layer %d color = %v, want %v", i, l.Spec.Color, wantColors[i])
		}
		if l.Spec.Diameter != wantDiameters[i] {
			t.Errorf("layer %d diameter = %v, want %v", i, l.Spec.Diameter, wantDiameters[i])
		}
		if l.Spec.Spacing != 6 {
			t.Errorf("layer %d spacing = %v, want 6", i, l.Spec.Spacing)
		}
		if !l.Dirty || l.Degrees != 0 {
			t.Errorf("layer %d state = %+v, want dirty at 0°", i, l)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	good := LayerSpec{Name: "a", Color: Red, Diameter: 2, Spacing: 6}
	tests := []struct {
		name string
		opts []EngineOption
		want error
	}{
		{"zero width", []EngineOption{WithCanvasSize(0, 10)}, ErrInvalidGeometry},
		{"negative height", []EngineOption{WithCanvasSize(10, -1)}, ErrInvalidGeometry},
		{"zero outer radius", []EngineOption{WithOuterRadius(0)}, ErrInvalidGeometry},
		{"nan outer radius", []EngineOption{WithOuterRadius(math.NaN())}, ErrInvalidGeometry},
		{"ring not inside", []EngineOption{WithRingInnerRadius(200)}, ErrInvalidGeometry},
		{"ring negative", []EngineOption{WithRingInnerRadius(-5)}, ErrInvalidGeometry},
		{"angle limit", []EngineOption{WithAngleLimit(0)}, ErrInvalidGeometry},
		{"two segments", []EngineOption{WithCircleSegments(2)}, ErrInvalidGeometry},
		{"no layers", []EngineOption{WithLayers()}, ErrInvalidLayers},
		{"too many layers", []EngineOption{WithLayers(good, good, good, good, good, good, good, good, good)}, ErrInvalidLayers},
		{"zero diameter", []EngineOption{WithLayers(LayerSpec{Diameter: 0, Spacing: 6})}, ErrInvalidLayers},
		{"negative cache", []EngineOption{WithShapeCacheSize(-1)}, ErrInvalidLayers},
		{"zero spacing", []EngineOption{WithLayers(LayerSpec{Diameter: 2, Spacing: 0})}, ErrInvalidSpacing},
		{"tiny spacing", []EngineOption{WithLayers(LayerSpec{Diameter: 2, Spacing: 0.01})}, ErrInvalidSpacing},
		{"inf spacing", []EngineOption{WithLayers(LayerSpec{Diameter: 2, Spacing: math.Inf(1)})}, ErrInvalidSpacing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() err = %v, want %v", err, tt.want)
			}
			if e != nil {
				t.Error("New() returned an engine with an error")
			}
		})
	}
}

func TestWithLayersCopiesInput(t *testing.T) {
	specs := []LayerSpec{{Name: "a", Color: Red, Diameter: 2, Spacing: 6}}
	e, err := New(WithLayers(specs...))
	if err != nil {
		t.Fatal(err)
	}
	specs[0].Color = Blue
	if got := e.Layers()[0].Spec.Color; got != Red {
		t.Errorf("engine layer color = %v, want red", got)
	}
}

func TestWithCanvasSizeNonSquare(t *testing.T) {
	e, err := New(WithCanvasSize(300, 200), WithOuterRadius(90), WithRingInnerRadius(80))
	if err != nil {
		t.Fatal(err)
	}
	v := e.RenderFrame()
	if v.Width() != 300 || v.Height() != 200 || len(v.Bytes()) != 300*200*3 {
		t.Errorf("view = %dx%d with %d bytes", v.Width(), v.Height(), len(v.Bytes()))
	}
	// Ring pixel straight above the centre (150,100).
	if got := v.RGBAt(150, 100-85); got != Black {
		t.Errorf("ring pixel = %v, want black", got)
	}
}
