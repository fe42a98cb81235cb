// Grid-cell field preview tool - renders the firing field to a PNG.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/calab/torusmorph/config"
	"github.com/calab/torusmorph/gridcell"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "field.png", "Output PNG path")
	size := flag.Int("size", 512, "Image size in pixels")
	window := flag.Float64("window", 1.5, "Half-width of the sampled square in sheet units")
	sigma := flag.Float64("sigma", 0, "Gaussian bump width (0 = use config)")
	phaseX := flag.Float64("phase-x", 0, "Field offset X (0 = use config)")
	phaseY := flag.Float64("phase-y", 0, "Field offset Y (0 = use config)")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Derived.LogLevel}))
	slog.SetDefault(logger)

	if *size < 1 {
		slog.Error("size must be at least 1", "size", *size)
		os.Exit(1)
	}
	if *window <= 0 {
		slog.Error("window must be positive", "window", *window)
		os.Exit(1)
	}

	// Use config values where flags are left at zero
	fieldSigma := cfg.Field.Sigma
	if *sigma > 0 {
		fieldSigma = *sigma
	}
	phase := r2.Vec{X: cfg.Field.PhaseX, Y: cfg.Field.PhaseY}
	if *phaseX != 0 {
		phase.X = *phaseX
	}
	if *phaseY != 0 {
		phase.Y = *phaseY
	}

	// Sample pixel centers over the square, top row first. A single
	// field evaluation covers the whole raster.
	n := *size
	span := 2 * *window
	points := make([]r2.Vec, 0, n*n)
	for py := 0; py < n; py++ {
		y := *window - (float64(py)+0.5)/float64(n)*span
		for px := 0; px < n; px++ {
			x := -*window + (float64(px)+0.5)/float64(n)*span
			points = append(points, r2.Vec{X: x, Y: y})
		}
	}
	rates, err := gridcell.PDF(points, phase, fieldSigma)
	if err != nil {
		slog.Error("failed to sample firing field", "error", err)
		os.Exit(1)
	}

	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, v := range rates {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for py := 0; py < n; py++ {
		for px := 0; px < n; px++ {
			v := 0.0
			if maxV > minV {
				v = (rates[py*n+px] - minV) / (maxV - minV)
			}
			img.SetRGBA(px, py, heatColor(v))
		}
	}

	f, err := os.Create(*outPath)
	if err != nil {
		slog.Error("failed to create output file", "error", err)
		os.Exit(1)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		slog.Error("failed to encode png", "error", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		slog.Error("failed to close output file", "error", err)
		os.Exit(1)
	}

	slog.Info("wrote field preview",
		"path", *outPath,
		"size", n,
		"sigma", fieldSigma,
		"min", minV,
		"max", maxV,
	)
}

// heatColor maps a normalized rate to a color gradient:
// dark blue -> cyan -> yellow -> white.
func heatColor(v float64) color.RGBA {
	var r, g, b uint8
	if v < 0.25 {
		// Dark blue to blue
		t := v / 0.25
		r = uint8(10 + t*30)
		g = uint8(20 + t*60)
		b = uint8(60 + t*100)
	} else if v < 0.5 {
		// Blue to cyan
		t := (v - 0.25) / 0.25
		r = uint8(40 + t*20)
		g = uint8(80 + t*120)
		b = uint8(160 + t*40)
	} else if v < 0.75 {
		// Cyan to yellow-green
		t := (v - 0.5) / 0.25
		r = uint8(60 + t*140)
		g = uint8(200 - t*40)
		b = uint8(200 - t*150)
	} else {
		// Yellow-green to white
		t := (v - 0.75) / 0.25
		r = uint8(200 + t*55)
		g = uint8(160 + t*95)
		b = uint8(50 + t*205)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
