// Command moirebench sweeps a layer through its angle range and reports
// frame timings. It writes nothing to disk.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/moire"
)

func main() {
	var (
		frames    = flag.Int("frames", 120, "number of frames to render")
		layer     = flag.Int("layer", 4, "layer to rotate")
		step      = flag.Float64("step", 1, "angle step per frame in degrees")
		perforate = flag.Bool("perforate", false, "punch the discs out of opaque sheets")
		verbose   = flag.Bool("v", false, "log engine events to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if *verbose {
		moire.SetLogger(logger)
	}

	var opts []moire.EngineOption
	if *perforate {
		opts = append(opts, moire.WithPerforation())
	}
	e, err := moire.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	start := time.Now()
	e.RenderFrame()
	logger.Info("first frame", "elapsed", time.Since(start))

	limit := e.AngleLimit()
	deg := -limit
	times := make([]float64, 0, *frames)
	for range *frames {
		if err := e.SetLayerAngle(*layer, deg); err != nil {
			log.Fatalf("SetLayerAngle: %v", err)
		}
		t0 := time.Now()
		e.RenderFrame()
		times = append(times, float64(time.Since(t0).Microseconds()))

		deg += *step
		if deg > limit {
			deg = -limit
		}
	}

	if len(times) > 0 {
		mean, std := stat.MeanStdDev(times, nil)
		logger.Info("sweep done",
			"frames", len(times),
			"layer", *layer,
			"mean_us", mean,
			"stddev_us", std)
	}

	s := e.Stats()
	logger.Info("engine stats",
		"frames", s.Frames,
		"static_builds", s.StaticBuilds,
		"mask_builds", s.MaskBuilds,
		"shape_sets", s.ShapeSets,
		"shape_hits", s.ShapeHits,
		"shape_misses", s.ShapeMisses)
}
