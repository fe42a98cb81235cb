package trimesh

import (
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/calab/torusmorph/lattice"
)

var rightTriangle = []r2.Vec{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
}

func sortedIndices(tr Triangle) [3]int {
	s := tr[:]
	sort.Ints(s)
	return Triangle{s[0], s[1], s[2]}
}

func TestFilterKeepsLocalFaces(t *testing.T) {
	faces, err := ConstrainedDelaunay(rightTriangle, 2)
	if err != nil {
		t.Fatalf("ConstrainedDelaunay: %v", err)
	}
	if len(faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(faces))
	}
	if got := sortedIndices(faces[0]); got != (Triangle{0, 1, 2}) {
		t.Errorf("face covers %v, expected [0 1 2]", got)
	}
}

func TestFilterDropsLongEdges(t *testing.T) {
	// The hypotenuse is sqrt 2, longer than the limit.
	faces, err := ConstrainedDelaunay(rightTriangle, 1)
	if err != nil {
		t.Fatalf("ConstrainedDelaunay: %v", err)
	}
	if len(faces) != 0 {
		t.Errorf("expected no faces, got %d", len(faces))
	}
}

func TestToleranceOption(t *testing.T) {
	limit := math.Sqrt2 - 1e-9

	faces, err := ConstrainedDelaunay(rightTriangle, limit)
	if err != nil {
		t.Fatalf("ConstrainedDelaunay: %v", err)
	}
	if len(faces) != 1 {
		t.Errorf("default tolerance: expected 1 face, got %d", len(faces))
	}

	faces, err = ConstrainedDelaunay(rightTriangle, limit, WithTolerance(0))
	if err != nil {
		t.Fatalf("ConstrainedDelaunay: %v", err)
	}
	if len(faces) != 0 {
		t.Errorf("zero tolerance: expected no faces, got %d", len(faces))
	}
}

func TestUnitLatticeFaceCount(t *testing.T) {
	// A hexagonal patch of side n tiles into exactly 6n^2 unit triangles;
	// the filter at limit 1 keeps all of them and nothing else.
	for _, n := range []int{1, 2} {
		nodes, err := lattice.GridNodes(n)
		if err != nil {
			t.Fatalf("GridNodes(%d): %v", n, err)
		}
		faces, err := ConstrainedDelaunay(nodes, 1)
		if err != nil {
			t.Fatalf("ConstrainedDelaunay: %v", err)
		}
		if want := 6 * n * n; len(faces) != want {
			t.Errorf("n=%d: expected %d faces, got %d", n, want, len(faces))
		}
		for _, f := range faces {
			for _, idx := range f {
				if idx < 0 || idx >= len(nodes) {
					t.Fatalf("n=%d: face %v indexes outside the point set", n, f)
				}
			}
			if e := longestEdge(nodes[f[0]], nodes[f[1]], nodes[f[2]]); e > 1+DefaultTolerance {
				t.Errorf("n=%d: face %v has edge %v over the limit", n, f, e)
			}
		}
	}
}

func TestDegenerateInputs(t *testing.T) {
	cases := []struct {
		name   string
		points []r2.Vec
	}{
		{"empty", nil},
		{"single", []r2.Vec{{X: 1, Y: 1}}},
		{"pair", []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{"collinear", []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
	}
	for _, c := range cases {
		faces, err := ConstrainedDelaunay(c.points, 10)
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if len(faces) != 0 {
			t.Errorf("%s: expected no faces, got %d", c.name, len(faces))
		}
	}
}
