// Package gridcell simulates periodic grid-cell firing-rate fields as
// sums of lattice-centered Gaussians.
package gridcell

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/calab/torusmorph/lattice"
)

// PDF evaluates the firing-rate field of one simulated grid cell at every
// query point: the sum over the nodes of a hexagonal lattice, shifted by
// phase, of an isotropic Gaussian density with standard deviation sigma.
// The lattice extent grows with the query span, 1.5 rings per unit of the
// widest coordinate, so the field always covers the queries with margin.
// Results are index-aligned with points.
func PDF(points []r2.Vec, phase r2.Vec, sigma float64) ([]float64, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("gridcell: sigma must be positive, got %v", sigma)
	}

	span := 0.0
	for _, q := range points {
		span = math.Max(span, math.Max(math.Abs(q.X), math.Abs(q.Y)))
	}
	nodes, err := lattice.GridNodes(int(math.Ceil(1.5 * span)))
	if err != nil {
		return nil, err
	}

	normal := distuv.Normal{Mu: 0, Sigma: sigma}
	rates := make([]float64, len(points))
	for i, q := range points {
		sum := 0.0
		for _, n := range nodes {
			sum += normal.Prob(math.Hypot(q.X-(phase.X+n.X), q.Y-(phase.Y+n.Y)))
		}
		rates[i] = sum
	}
	return rates, nil
}
