// Package torus converts between the Euclidean tile frame and toroidal
// phase coordinates, and folds points into their periodic fundamental
// domains.
package torus

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const twoPi = 2 * math.Pi

// sqrt3 is tan(pi/3), the slope of the hexagonal lattice basis.
var sqrt3 = math.Sqrt(3)

// Phase is an angular coordinate triple on the 2-torus, in radians.
// T3 is redundant: T3 = -(T1+T2) holds for every Phase built here. Values
// are not reduced to a canonical interval; see WrapPhase.
type Phase struct {
	T1, T2, T3 float64
}

// PhaseOf builds a Phase from its two free channels.
func PhaseOf(t1, t2 float64) Phase {
	return Phase{T1: t1, T2: t2, T3: -(t1 + t2)}
}

// FromEuclidean converts tile-frame points to toroidal phases through the
// fixed linear basis change, scaled by 2*pi. Outputs are not wrapped and
// exceed [-pi, pi] for points outside the canonical tile.
func FromEuclidean(points []r2.Vec) []Phase {
	phases := make([]Phase, len(points))
	for i, p := range points {
		t1 := p.X - p.Y/sqrt3
		t2 := p.Y / (sqrt3 / 2)
		phases[i] = PhaseOf(t1*twoPi, t2*twoPi)
	}
	return phases
}

// ToEuclidean inverts FromEuclidean on the T1, T2 channels.
func ToEuclidean(phases []Phase) []r2.Vec {
	points := make([]r2.Vec, len(phases))
	for i, ph := range phases {
		points[i] = r2.Vec{
			X: ph.T1/twoPi + ph.T2/(2*twoPi),
			Y: sqrt3 / 2 * ph.T2 / twoPi,
		}
	}
	return points
}

// WrapPhase reduces every channel into [-pi, pi). After wrapping, the
// sum-zero identity holds modulo 2*pi only.
func WrapPhase(ph Phase) Phase {
	return Phase{
		T1: wrapAngle(ph.T1),
		T2: wrapAngle(ph.T2),
		T3: wrapAngle(ph.T3),
	}
}

func wrapAngle(t float64) float64 {
	return t - twoPi*math.Floor((t+math.Pi)/twoPi)
}
