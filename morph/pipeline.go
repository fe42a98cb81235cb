package morph

import "fmt"

// Stage is one named transition of the morph sequence.
type Stage struct {
	Name string
	Fn   StageFunc
}

// Pipeline assembles the three transitions from shared parameters.
// Animation timing and easing are the caller's business; a Pipeline only
// names the stages and binds their parameters.
type Pipeline struct {
	Height float64
	Bend   TorusBend
}

// DefaultPipeline returns the canonical sequence: height 2*pi cylinder
// and the default torus bend.
func DefaultPipeline() Pipeline {
	return Pipeline{Height: DefaultHeight, Bend: DefaultTorusBend()}
}

// Stages lists the transitions in morph order. The torus stage ignores
// Height: its base cylinder height is fixed by the bend's major radius.
func (pl Pipeline) Stages() []Stage {
	return []Stage{
		{Name: "cylinder", Fn: FlatStage(pl.Height)},
		{Name: "twist", Fn: TwistStage(pl.Height)},
		{Name: "torus", Fn: TorusStage(pl.Bend)},
	}
}

// Stage returns the named transition.
func (pl Pipeline) Stage(name string) (Stage, error) {
	for _, s := range pl.Stages() {
		if s.Name == name {
			return s, nil
		}
	}
	return Stage{}, fmt.Errorf("morph: unknown stage %q", name)
}
