package layout

import (
	"math"
	"reflect"
	"testing"
)

func forceConfig(iterations int) Config {
	return Config{Algorithm: AlgorithmForce, ForceIterations: iterations}
}

func TestPlaceForce_RootsPinned(t *testing.T) {
	bodies := []Body{
		{ID: "samvaha", Kind: KindCenter, Mass: 1.0, Children: []string{"bravli", "mayapramana"}},
		{ID: "bravli", Kind: KindMajor, Mass: 0.8},
		{ID: "mayapramana", Kind: KindStandard, Mass: 0.5},
	}

	pos := Place(bodies, nil, forceConfig(100))

	if pos["samvaha"] != (Vec3{}) {
		t.Errorf("root position = %+v, want origin", pos["samvaha"])
	}
	if pos["bravli"] == (Vec3{}) || pos["mayapramana"] == (Vec3{}) {
		t.Errorf("children stuck at the origin: %+v", pos)
	}
}

func TestPlaceForce_SeedDeterminism(t *testing.T) {
	bodies := []Body{
		{ID: "root", Kind: KindCenter, Mass: 1.0, Children: []string{"a", "b", "c"}},
		{ID: "a", Mass: 0.5},
		{ID: "b", Mass: 0.5},
		{ID: "c", Mass: 0.5},
	}
	bonds := []Bond{{A: "a", B: "b", Strength: 0.5}}

	first := Place(bodies, bonds, Config{Algorithm: AlgorithmForce, Seed: 7})
	second := Place(bodies, bonds, Config{Algorithm: AlgorithmForce, Seed: 7})
	other := Place(bodies, bonds, Config{Algorithm: AlgorithmForce, Seed: 8})

	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different layouts")
	}
	if reflect.DeepEqual(first, other) {
		t.Error("different seeds produced identical layouts")
	}
}

func TestPlaceForce_Converges(t *testing.T) {
	bodies := []Body{
		{ID: "root", Kind: KindCenter, Mass: 1.0, Children: []string{"a", "b"}},
		{ID: "a", Mass: 0.5},
		{ID: "b", Mass: 0.5},
	}

	settled := Place(bodies, nil, forceConfig(400))
	longer := Place(bodies, nil, forceConfig(600))

	// Damping bleeds off the kinetic energy; extra iterations barely move
	// anything once the system has settled.
	for _, id := range []string{"a", "b"} {
		drift := settled[id].Sub(longer[id]).Length()
		if drift > 0.05 {
			t.Errorf("%s drifted %v between 400 and 600 iterations", id, drift)
		}
	}

	// Repulsion keeps the unbonded pair apart; the springs to the root keep
	// both within a bounded shell.
	sep := settled["a"].Sub(settled["b"]).Length()
	if sep < 0.5 {
		t.Errorf("separation = %v, bodies collapsed together", sep)
	}
	for _, id := range []string{"a", "b"} {
		if r := settled[id].Length(); r > 100 || math.IsNaN(r) {
			t.Errorf("%s flew off to radius %v", id, r)
		}
	}
}

func TestPlaceForce_BondPullsCloser(t *testing.T) {
	bodies := []Body{
		{ID: "root", Kind: KindCenter, Mass: 1.0, Children: []string{"a", "b"}},
		{ID: "a", Mass: 0.5},
		{ID: "b", Mass: 0.5},
	}

	loose := Place(bodies, nil, forceConfig(400))
	bonded := Place(bodies, []Bond{{A: "a", B: "b", Strength: 2.0}}, forceConfig(400))

	looseSep := loose["a"].Sub(loose["b"]).Length()
	bondedSep := bonded["a"].Sub(bonded["b"]).Length()
	if bondedSep >= looseSep {
		t.Errorf("bond did not pull bodies closer: %v >= %v", bondedSep, looseSep)
	}
}

func TestPlaceForce_ZeroStrengthBondDefaults(t *testing.T) {
	bodies := []Body{
		{ID: "root", Kind: KindCenter, Mass: 1.0, Children: []string{"a", "b"}},
		{ID: "a", Mass: 0.5},
		{ID: "b", Mass: 0.5},
	}

	// An unspecified strength takes the parent-child default rather than
	// meaning no attraction, so the bonded pair still ends up closer than
	// an unbonded one.
	loose := Place(bodies, nil, forceConfig(400))
	defaulted := Place(bodies, []Bond{{A: "a", B: "b"}}, forceConfig(400))

	looseSep := loose["a"].Sub(loose["b"]).Length()
	defaultedSep := defaulted["a"].Sub(defaulted["b"]).Length()
	if defaultedSep >= looseSep {
		t.Errorf("zero-strength bond exerted no pull: %v >= %v", defaultedSep, looseSep)
	}
}

func TestPlaceForce_DanglingBondSkipped(t *testing.T) {
	bodies := []Body{
		{ID: "root", Kind: KindCenter, Mass: 1.0, Children: []string{"a"}},
		{ID: "a", Mass: 0.5},
	}
	bonds := []Bond{
		{A: "a", B: "ghost", Strength: 1.0},
		{A: "a", B: "a", Strength: 1.0},
	}

	pos := Place(bodies, bonds, forceConfig(50))

	if len(pos) != 2 {
		t.Errorf("placed %d bodies, want 2", len(pos))
	}
	if _, ok := pos["ghost"]; ok {
		t.Error("dangling bond endpoint was placed")
	}
}

func TestPlaceForce_Empty(t *testing.T) {
	pos := Place(nil, nil, forceConfig(10))
	if len(pos) != 0 {
		t.Errorf("got %d positions, want 0", len(pos))
	}
}

func TestConfig_Defaults(t *testing.T) {
	def := DefaultConfig()

	if def.Algorithm != AlgorithmOrbital {
		t.Errorf("default algorithm = %s, want orbital", def.Algorithm)
	}
	if def.ForceIterations != 200 || def.Seed != 1 {
		t.Errorf("force defaults = %d iterations, seed %d", def.ForceIterations, def.Seed)
	}
	if want := math.Pi * (3 - math.Sqrt(5)); def.GoldenAngle != want {
		t.Errorf("golden angle = %v, want %v", def.GoldenAngle, want)
	}
}
