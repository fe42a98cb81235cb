package morph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Anchor selects where along the tube the torus bend is anchored.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorBottom
	AnchorTop
)

// ParseAnchor converts a configuration string to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "center":
		return AnchorCenter, nil
	case "bottom":
		return AnchorBottom, nil
	case "top":
		return AnchorTop, nil
	}
	return AnchorCenter, fmt.Errorf("morph: unknown anchor %q", s)
}

func (a Anchor) String() string {
	switch a {
	case AnchorBottom:
		return "bottom"
	case AnchorTop:
		return "top"
	}
	return "center"
}

// offset is the anchor's displacement along the tube axis.
func (a Anchor) offset() float64 {
	switch a {
	case AnchorBottom:
		return 1
	case AnchorTop:
		return -1
	}
	return 0
}

// TorusBend parametrizes the final stage: the torus major radius, the
// tube shrink factor, and the bend anchor.
type TorusBend struct {
	MajorRadius float64
	Shrink      float64
	Anchor      Anchor
}

// DefaultTorusBend returns the canonical bend: unit major radius, tube
// shrinking to half width, centered anchor.
func DefaultTorusBend() TorusBend {
	return TorusBend{MajorRadius: 1, Shrink: 2, Anchor: AnchorCenter}
}

// BendToTorus bends the fully twisted cylinder into a torus by an
// isometric pipe bend of the tube centerline, shrinking the tube from
// full width at p=0 to 1/Shrink at p=1 so the closing pipe cannot pass
// through itself. The centerline carries a sqrt3/2 factor reconciling the
// hexagonal basis scale with the bend geometry. The p=0 output equals
// TwistCylinder at p=1 over a cylinder of height 2*pi*MajorRadius; at p=1
// with the default bend the zero phase lands exactly on (-0.5, 0, 0).
func BendToTorus(t1, t2, p float64, b TorusBend) r3.Vec {
	p = clamp01(p)
	cylH := twoPi * b.MajorRadius
	base := TwistCylinder(t1, t2, 1, cylH)
	if p <= 0 {
		return base
	}

	uoffset := b.Anchor.offset()
	u := t2/twoPi*cylH + uoffset
	rt := b.MajorRadius / p
	sin, cos := math.Sincos(u / rt)

	cx := rt * (1 - cos) * sqrt3over2
	cz := rt * sin * sqrt3over2
	radX := cos * base.X
	radY := base.Y
	radZ := -sin * base.X
	rShrink := 1 / (1 + (b.Shrink-1)*p)

	return r3.Vec{
		X: cx + rShrink*radX - p,
		Y: rShrink * radY,
		Z: cz + rShrink*radZ - uoffset*cylH/2 + p*math.Pi*uoffset,
	}
}
