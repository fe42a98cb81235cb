package morph

import (
	"testing"

	"github.com/calab/torusmorph/torus"
)

func makePhases(n int) []torus.Phase {
	phases := make([]torus.Phase, n)
	for i := range phases {
		phases[i] = torus.PhaseOf(float64(i)*0.37, float64(i)*-0.11)
	}
	return phases
}

func TestMapMatchesSequential(t *testing.T) {
	// Cover both the sequential path and the chunked worker path.
	for _, n := range []int{60, 5000} {
		phases := makePhases(n)
		fn := TorusStage(DefaultTorusBend())
		got := Map(phases, 0.7, fn)
		if len(got) != n {
			t.Fatalf("n=%d: expected %d points, got %d", n, n, len(got))
		}
		for i, ph := range phases {
			if want := fn(ph.T1, ph.T2, 0.7); got[i] != want {
				t.Errorf("n=%d point %d: expected %+v, got %+v", n, i, want, got[i])
			}
		}
	}
}

func TestMapEmpty(t *testing.T) {
	if got := Map(nil, 1, FlatStage(DefaultHeight)); len(got) != 0 {
		t.Errorf("expected no points, got %d", len(got))
	}
}

func TestPipelineStageOrder(t *testing.T) {
	stages := DefaultPipeline().Stages()
	want := []string{"cylinder", "twist", "torus"}
	if len(stages) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(stages))
	}
	for i, name := range want {
		if stages[i].Name != name {
			t.Errorf("stage %d: expected %q, got %q", i, name, stages[i].Name)
		}
	}
}

func TestPipelineStageLookup(t *testing.T) {
	pl := DefaultPipeline()
	st, err := pl.Stage("cylinder")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := st.Fn(1, 2, 0.5), FlatToCylinder(1, 2, 0.5, pl.Height); got != want {
		t.Errorf("cylinder stage: expected %+v, got %+v", want, got)
	}
	if _, err := pl.Stage("spiral"); err == nil {
		t.Errorf("expected error for unknown stage")
	}
}
