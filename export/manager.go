// Package export writes run artifacts as CSV files plus a config snapshot.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/calab/torusmorph/config"
)

// Manager handles structured run output with CSV artifacts.
type Manager struct {
	dir string
}

// NewManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		return nil, nil
	}

	// Create output directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Manager{dir: dir}, nil
}

// Dir returns the output directory path.
func (m *Manager) Dir() string {
	if m == nil {
		return ""
	}
	return m.dir
}

// WriteConfig saves the current configuration as YAML.
func (m *Manager) WriteConfig(cfg *config.Config) error {
	if m == nil {
		return nil
	}
	configPath := filepath.Join(m.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteVertices writes the sheet mesh vertices to vertices.csv.
func (m *Manager) WriteVertices(rows []VertexRow) error {
	if m == nil {
		return nil
	}
	return m.writeCSV("vertices.csv", rows)
}

// WriteTriangles writes the mesh faces to triangles.csv.
func (m *Manager) WriteTriangles(rows []TriangleRow) error {
	if m == nil {
		return nil
	}
	return m.writeCSV("triangles.csv", rows)
}

// WriteCorners writes the unit hexagon corners to hexcorners.csv.
func (m *Manager) WriteCorners(rows []CornerRow) error {
	if m == nil {
		return nil
	}
	return m.writeCSV("hexcorners.csv", rows)
}

// WriteFrame writes one morphed frame to frame_<stage>_<NNN>.csv.
func (m *Manager) WriteFrame(stage string, frame int, rows []FrameRow) error {
	if m == nil {
		return nil
	}
	return m.writeCSV(fmt.Sprintf("frame_%s_%03d.csv", stage, frame), rows)
}

// writeCSV marshals rows into a fresh file under the output directory.
func (m *Manager) writeCSV(name string, rows any) error {
	path := filepath.Join(m.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}
