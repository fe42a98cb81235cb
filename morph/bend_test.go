package morph

import (
	"math"
	"testing"
)

func TestBendStartsAtTwistedCylinder(t *testing.T) {
	bends := []TorusBend{
		DefaultTorusBend(),
		{MajorRadius: 2, Shrink: 3, Anchor: AnchorTop},
	}
	for _, b := range bends {
		height := 2 * math.Pi * b.MajorRadius
		for _, ph := range phaseGrid {
			want := TwistCylinder(ph.t1, ph.t2, 1, height)
			got := BendToTorus(ph.t1, ph.t2, 0, b)
			if !nearly(got, want, 1e-12) {
				t.Errorf("R=%v phase (%v,%v): expected %+v, got %+v", b.MajorRadius, ph.t1, ph.t2, want, got)
			}
		}
	}
}

func TestBendCenterAnchorOrigin(t *testing.T) {
	// The phase origin on the finished torus sits on the inner equator,
	// shrunk to half the tube radius and pulled back by R.
	got := BendToTorus(0, 0, 1, DefaultTorusBend())
	if math.Abs(got.X+0.5) > 1e-10 || math.Abs(got.Y) > 1e-10 || math.Abs(got.Z) > 1e-10 {
		t.Errorf("expected (-0.5, 0, 0), got %+v", got)
	}
}

func TestBendBottomAnchor(t *testing.T) {
	b := DefaultTorusBend()
	b.Anchor = AnchorBottom
	got := BendToTorus(0, 0, 1, b)
	wantX := math.Sqrt(3)/2*(1-math.Cos(1)) + math.Cos(1)/2 - 1
	wantZ := (math.Sqrt(3)/2 - 0.5) * math.Sin(1)
	if math.Abs(got.X-wantX) > 1e-10 || math.Abs(got.Y) > 1e-10 || math.Abs(got.Z-wantZ) > 1e-10 {
		t.Errorf("expected (%v, 0, %v), got %+v", wantX, wantZ, got)
	}
}

func TestBendAnchorMirror(t *testing.T) {
	// Top and bottom anchors trace mirror images of the same roll, so
	// the phase origin lands at the same X with the Z sign flipped.
	bottom := DefaultTorusBend()
	bottom.Anchor = AnchorBottom
	top := DefaultTorusBend()
	top.Anchor = AnchorTop
	pb := BendToTorus(0, 0, 1, bottom)
	pt := BendToTorus(0, 0, 1, top)
	if math.Abs(pb.X-pt.X) > 1e-12 || math.Abs(pb.Y-pt.Y) > 1e-12 || math.Abs(pb.Z+pt.Z) > 1e-12 {
		t.Errorf("bottom %+v and top %+v are not mirrored", pb, pt)
	}
}

func TestBendTubeShrink(t *testing.T) {
	// At full bend the tube cross section is scaled by 1/shrink, so
	// points half a tube turn apart sit a shrunk diameter from each
	// other.
	for _, shrink := range []float64{2, 3} {
		b := DefaultTorusBend()
		b.Shrink = shrink
		a := BendToTorus(0, 0, 1, b)
		o := BendToTorus(math.Pi, 0, 1, b)
		diam := math.Sqrt((a.X-o.X)*(a.X-o.X) + (a.Y-o.Y)*(a.Y-o.Y) + (a.Z-o.Z)*(a.Z-o.Z))
		if math.Abs(diam-2/shrink) > 1e-10 {
			t.Errorf("shrink %v: tube diameter %v, expected %v", shrink, diam, 2/shrink)
		}
	}
}

func TestParseAnchor(t *testing.T) {
	cases := []struct {
		in   string
		want Anchor
		ok   bool
	}{
		{"center", AnchorCenter, true},
		{"bottom", AnchorBottom, true},
		{"top", AnchorTop, true},
		{"", AnchorCenter, false},
		{"middle", AnchorCenter, false},
	}
	for _, c := range cases {
		got, err := ParseAnchor(c.in)
		if c.ok && err != nil {
			t.Errorf("ParseAnchor(%q): unexpected error %v", c.in, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseAnchor(%q): expected error", c.in)
		}
		if c.ok && got != c.want {
			t.Errorf("ParseAnchor(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestAnchorString(t *testing.T) {
	if AnchorCenter.String() != "center" || AnchorBottom.String() != "bottom" || AnchorTop.String() != "top" {
		t.Errorf("anchor names: %q %q %q", AnchorCenter, AnchorBottom, AnchorTop)
	}
}
