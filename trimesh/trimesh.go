// Package trimesh builds edge-length constrained Delaunay face lists over
// 2D point sets.
package trimesh

import (
	"math"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultTolerance is the slack added to the side limit before an edge
// counts as too long.
const DefaultTolerance = 1e-6

// Triangle indexes three vertices of the point slice a triangulation was
// built from. Indices are 0-based. Faces are emitted in the underlying
// library's order; no canonical ordering is guaranteed.
type Triangle [3]int

// Option adjusts triangulation behavior.
type Option func(*options)

type options struct {
	tol float64
}

// WithTolerance overrides DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tol = tol }
}

// ConstrainedDelaunay triangulates the point set and drops every triangle
// whose longest edge exceeds sideLimit plus the tolerance. Raw Delaunay
// closes the convex hull over the gaps where a periodic tile conceptually
// wraps; the length filter removes those spanning faces, leaving only
// locally supported ones. Point sets with no triangulation, fewer than 3
// points or all collinear, yield an empty face list and no error.
func ConstrainedDelaunay(points []r2.Vec, sideLimit float64, opts ...Option) ([]Triangle, error) {
	o := options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	if len(points) < 3 {
		return nil, nil
	}
	pts := make([]delaunay.Point, len(points))
	for i, p := range points {
		pts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		// The library fails only on degenerate input, which has no faces.
		return nil, nil
	}

	limit := sideLimit + o.tol
	var faces []Triangle
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		a, b, c := tri.Triangles[i], tri.Triangles[i+1], tri.Triangles[i+2]
		if longestEdge(points[a], points[b], points[c]) <= limit {
			faces = append(faces, Triangle{a, b, c})
		}
	}
	return faces, nil
}

func longestEdge(a, b, c r2.Vec) float64 {
	ab := math.Hypot(a.X-b.X, a.Y-b.Y)
	bc := math.Hypot(b.X-c.X, b.Y-c.Y)
	ca := math.Hypot(c.X-a.X, c.Y-a.Y)
	return math.Max(ab, math.Max(bc, ca))
}
