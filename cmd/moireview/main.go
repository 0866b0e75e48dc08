// Command moireview shows the moiré engine in a window with one rotation
// slider per layer.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/moire"
)

const appTitle = "Moiré"

func main() {
	var (
		perforate = flag.Bool("perforate", false, "punch the discs out of opaque sheets")
		strict    = flag.Bool("strict", false, "reject out-of-range angles instead of clamping")
		verbose   = flag.Bool("v", false, "log engine events to stderr")
	)
	flag.Parse()

	if *verbose {
		moire.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []moire.EngineOption
	if *perforate {
		opts = append(opts, moire.WithPerforation())
	}
	if *strict {
		opts = append(opts, moire.WithStrictAngles())
	}
	engine, err := moire.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	a := app.New()
	win := a.NewWindow(appTitle)
	v := newViewer(engine)
	win.SetContent(container.NewBorder(nil, nil, nil, v.controls(), v.img))
	win.Resize(fyne.NewSize(900, 560))
	win.ShowAndRun()
}

// viewer keeps the displayed frame in step with the engine.
type viewer struct {
	engine *moire.Engine
	img    *fynecanvas.Image
	status *widget.Label
}

func newViewer(e *moire.Engine) *viewer {
	v := &viewer{
		engine: e,
		status: widget.NewLabel(""),
	}
	v.img = fynecanvas.NewImageFromImage(e.RenderFrame().ToImage())
	v.img.FillMode = fynecanvas.ImageFillOriginal
	v.updateStatus()
	return v
}

// controls builds one labelled slider per layer.
func (v *viewer) controls() fyne.CanvasObject {
	limit := v.engine.AngleLimit()
	box := container.NewVBox()
	for i, l := range v.engine.Layers() {
		label := widget.NewLabel(fmt.Sprintf("%s: 0°", l.Spec.Name))
		s := widget.NewSlider(-limit, limit)
		s.Step = 0.25
		s.OnChanged = func(deg float64) {
			if err := v.engine.SetLayerAngle(i, deg); err != nil {
				log.Printf("layer %d: %v", i, err)
				return
			}
			label.SetText(fmt.Sprintf("%s: %.2f°", l.Spec.Name, deg))
			v.redraw()
		}
		box.Add(label)
		box.Add(s)
	}
	box.Add(v.status)
	return widget.NewCard("Layers", "", container.NewPadded(box))
}

// redraw swaps in a fresh image so the toolkit never reads pixels that are
// being overwritten.
func (v *viewer) redraw() {
	v.img.Image = v.engine.RenderFrame().ToImage()
	v.img.Refresh()
	v.updateStatus()
}

func (v *viewer) updateStatus() {
	s := v.engine.Stats()
	v.status.SetText(fmt.Sprintf("frames %d, shape cache %d/%d", s.Frames, s.ShapeHits, s.ShapeHits+s.ShapeMisses))
}
