package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/calab/torusmorph/config"
	"github.com/calab/torusmorph/export"
	"github.com/calab/torusmorph/gridcell"
	"github.com/calab/torusmorph/lattice"
	"github.com/calab/torusmorph/morph"
	"github.com/calab/torusmorph/torus"
	"github.com/calab/torusmorph/trimesh"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outputDir := flag.String("out", "", "Base output directory (empty = use config)")
	stageName := flag.String("stage", "torus", "Morph stage: cylinder, twist or torus")
	progress := flag.Float64("p", 1, "Morph progress in [0,1] for single-frame runs")
	frames := flag.Int("frames", 1, "Number of frames sweeping p from 0 to 1")
	rotation := flag.Float64("rotation", 0, "Field sampling rotation in degrees (0 = use config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Derived.LogLevel}))
	slog.SetDefault(logger)

	if *frames < 1 {
		slog.Error("frames must be at least 1", "frames", *frames)
		os.Exit(1)
	}

	stage, err := cfg.Derived.Pipeline.Stage(*stageName)
	if err != nil {
		slog.Error("unknown morph stage", "error", err)
		os.Exit(1)
	}

	// Use config rotation if not overridden by CLI
	rotationRad := cfg.Derived.RotationRad
	if *rotation != 0 {
		rotationRad = *rotation * math.Pi / 180
	}

	// Use config output dir if not overridden by CLI; each run gets a
	// timestamped subdirectory.
	baseDir := cfg.Output.Dir
	if *outputDir != "" {
		baseDir = *outputDir
	}
	runDir := ""
	if baseDir != "" {
		runDir = filepath.Join(baseDir, time.Now().Format("20060102_150405"))
	}
	out, err := export.NewManager(runDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	slog.Info("starting morph run",
		"rings", cfg.Lattice.Rings,
		"stage", stage.Name,
		"frames", *frames,
		"rotation_deg", rotationRad*180/math.Pi,
		"anchor", cfg.Derived.Anchor.String(),
		"dir", out.Dir(),
	)

	phases, euclid, err := lattice.RhombusMeshGrid(cfg.Lattice.Rings)
	if err != nil {
		slog.Error("failed to build mesh grid", "error", err)
		os.Exit(1)
	}

	// Sample the firing field at the (optionally rotated) sheet
	// positions, wrapped into the unit rhombus.
	sampled := euclid
	if rotationRad != 0 {
		sampled = torus.Rotate2D(euclid, rotationRad)
	}
	wrapped := make([]r2.Vec, len(sampled))
	for i, p := range sampled {
		wrapped[i] = torus.WrapToRhombus(p)
	}
	rates, err := gridcell.PDF(wrapped, r2.Vec{X: cfg.Field.PhaseX, Y: cfg.Field.PhaseY}, cfg.Field.Sigma)
	if err != nil {
		slog.Error("failed to sample firing field", "error", err)
		os.Exit(1)
	}

	faces, err := trimesh.ConstrainedDelaunay(euclid, cfg.Derived.SideLimit, trimesh.WithTolerance(cfg.Mesh.Tolerance))
	if err != nil {
		slog.Error("failed to triangulate mesh", "error", err)
		os.Exit(1)
	}

	vertices := make([]export.VertexRow, len(phases))
	for i, ph := range phases {
		w := torus.WrapPhase(ph)
		vertices[i] = export.VertexRow{
			Index: i,
			T1:    ph.T1,
			T2:    ph.T2,
			T3:    ph.T3,
			T1W:   w.T1,
			T2W:   w.T2,
			X:     euclid[i].X,
			Y:     euclid[i].Y,
			Rate:  rates[i],
		}
	}
	triangles := make([]export.TriangleRow, len(faces))
	for i, f := range faces {
		triangles[i] = export.TriangleRow{A: f[0], B: f[1], C: f[2]}
	}
	corners := make([]export.CornerRow, 0, 6)
	for i, c := range lattice.HexTile() {
		corners = append(corners, export.CornerRow{Index: i, X: c.X, Y: c.Y})
	}

	if err := writeMesh(out, cfg, vertices, triangles, corners); err != nil {
		slog.Error("failed to write mesh artifacts", "error", err)
		os.Exit(1)
	}

	for f := 0; f < *frames; f++ {
		pf := *progress
		if *frames > 1 {
			pf = float64(f) / float64(*frames-1)
		}
		points := morph.Map(phases, pf, stage.Fn)
		rows := make([]export.FrameRow, len(points))
		for i, pt := range points {
			rows[i] = export.FrameRow{Index: i, P: pf, X: pt.X, Y: pt.Y, Z: pt.Z}
		}
		if err := out.WriteFrame(stage.Name, f, rows); err != nil {
			slog.Error("failed to write frame", "error", err)
			os.Exit(1)
		}
		slog.Info("frame complete", "stage", stage.Name, "frame", f, "p", pf, "vertices", len(points))
	}

	slog.Info("run complete",
		"dir", out.Dir(),
		"vertices", len(vertices),
		"triangles", len(triangles),
		"frames", *frames,
	)
}

// writeMesh writes the morph-independent artifacts of a run.
func writeMesh(out *export.Manager, cfg *config.Config, vertices []export.VertexRow, triangles []export.TriangleRow, corners []export.CornerRow) error {
	if err := out.WriteConfig(cfg); err != nil {
		return err
	}
	if err := out.WriteVertices(vertices); err != nil {
		return err
	}
	if err := out.WriteTriangles(triangles); err != nil {
		return err
	}
	return out.WriteCorners(corners)
}
