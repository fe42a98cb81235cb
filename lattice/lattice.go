// Package lattice generates the hexagonal point sets and mesh grids the
// morph pipeline and field simulator sample.
package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/calab/torusmorph/torus"
)

// GridNodes returns every node of the triangular lattice lying within
// nRings concentric hexagonal rings around the origin, center first. Ring
// a contributes 6a nodes, so the result holds exactly 1 + 3n(n+1) points.
// The hexagon is oriented with two horizontal sides.
//
// Each node is located in closed form: index b within ring a decomposes
// as c = b mod a, giving polar radius sqrt((a-c)^2 + ac) and an angle
// built from the edge the node sits on. No axial coordinates are
// generated or deduplicated.
func GridNodes(nRings int) ([]r2.Vec, error) {
	if nRings < 0 {
		return nil, fmt.Errorf("lattice: ring count must be non-negative, got %d", nRings)
	}
	nodes := make([]r2.Vec, 0, 1+3*nRings*(nRings+1))
	nodes = append(nodes, r2.Vec{})
	for a := 1; a <= nRings; a++ {
		for b := 0; b < 6*a; b++ {
			c := b % a
			r := math.Sqrt(float64((a-c)*(a-c) + a*c))
			theta := math.Atan(math.Sqrt(3)*float64(c)/float64(2*a-c)) + math.Pi*float64(b-c)/float64(3*a)
			nodes = append(nodes, r2.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
		}
	}
	return nodes, nil
}

// HexTile returns the 6 corner vertices of the canonical hexagonal phase
// tile in corner-up orientation. Every corner sits at distance 1/sqrt(3)
// from the origin; the first is (0, 1/sqrt(3)).
func HexTile() []r2.Vec {
	radius := 1 / math.Sqrt(3)
	corners := make([]r2.Vec, 6)
	for k := 1; k <= 6; k++ {
		angle := math.Pi/6 + float64(k)*math.Pi/3
		corners[k-1] = r2.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return corners
}

// RhombusMeshGrid samples phase space uniformly over [0, 2pi] on both
// axes with numRings+1 points per axis and maps every sample to Euclidean
// rhombus coordinates. The returned slices are index-aligned, row-major
// with the t1 axis varying fastest.
func RhombusMeshGrid(numRings int) ([]torus.Phase, []r2.Vec, error) {
	if numRings < 1 {
		return nil, nil, fmt.Errorf("lattice: mesh grid needs at least 1 ring, got %d", numRings)
	}
	side := numRings + 1
	step := 2 * math.Pi / float64(numRings)
	phases := make([]torus.Phase, 0, side*side)
	for j := 0; j < side; j++ {
		t2 := float64(j) * step
		for i := 0; i < side; i++ {
			phases = append(phases, torus.PhaseOf(float64(i)*step, t2))
		}
	}
	return phases, torus.ToEuclidean(phases), nil
}
