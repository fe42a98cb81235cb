package torus

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rotate2D rotates every point about the origin by alpha radians using
// polar re-expression. The origin maps to itself for any alpha.
func Rotate2D(points []r2.Vec, alpha float64) []r2.Vec {
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		rho := math.Hypot(p.X, p.Y)
		theta := math.Atan2(p.Y, p.X) + alpha
		out[i] = r2.Vec{X: rho * math.Cos(theta), Y: rho * math.Sin(theta)}
	}
	return out
}

// WrapToRhombus folds a point into the canonical rhombus fundamental
// domain of the lattice tiling, the unit rhombus spanned by (1,0) and
// (1/2, sqrt3/2). Wrapping any lattice translate of p yields the same
// point as wrapping p, and wrapping is idempotent.
func WrapToRhombus(p r2.Vec) r2.Vec {
	halfHeight := sqrt3 / 2
	nY := math.Floor(p.Y / halfHeight)
	y := p.Y - nY*halfHeight
	x := p.X - nY*0.5
	x -= math.Floor(x - y/sqrt3)
	return r2.Vec{X: x, Y: y}
}
