// Package morph implements the three-stage isometric deformation taking
// a flat phase tile through a rolled cylinder and a half-twisted cylinder
// to a torus. Every stage is a pure function of a toroidal coordinate
// pair and a progress parameter; progress is clamped into [0, 1] by all
// stages. Each stage starts from the previous stage's finished shape, so
// chaining them at matching parameters is seamless.
package morph

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultHeight is the cylinder height used when nothing else applies.
const DefaultHeight = 2 * math.Pi

const twoPi = 2 * math.Pi

var sqrt3over2 = math.Sqrt(3) / 2

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// FlatToCylinder rolls the flat sheet into a unit-radius cylinder by an
// isometric pipe bend: at progress p the sheet follows a circular arc of
// radius 1/p, preserving arc length along the winding direction exactly.
// nphi = t1 + t2/2 is the angle around the eventual axis; the height
// channel (t2/2pi)*height*(sqrt3/2) never changes with p. At p=0 the
// sheet lies flat in the X-Z plane at y=-1, vertically centered against
// the finished cylinder.
func FlatToCylinder(t1, t2, p, height float64) r3.Vec {
	p = clamp01(p)
	nphi := t1 + t2/2
	v := t2 / twoPi * height * sqrt3over2
	if p <= 0 {
		return r3.Vec{X: nphi, Y: -1, Z: v}
	}
	r0 := 1 / p
	sin, cos := math.Sincos(p * nphi)
	return r3.Vec{
		X: r0 * sin,
		Y: r0*(1-cos) - 1,
		Z: v,
	}
}

// TwistCylinder rotates the finished cylinder about its axis by an angle
// growing with t2, reaching a half-turn differential across the tile at
// p=1. Its p=0 output equals FlatToCylinder at p=1 for the same inputs.
func TwistCylinder(t1, t2, p, height float64) r3.Vec {
	p = clamp01(p)
	base := FlatToCylinder(t1, t2, 1, height)
	sin, cos := math.Sincos(p * (t2 + math.Pi) / 2)
	return r3.Vec{
		X: base.X*cos - base.Y*sin,
		Y: base.X*sin + base.Y*cos,
		Z: base.Z,
	}
}
