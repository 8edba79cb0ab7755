package layout

import (
	"testing"

	"github.com/vistaara/sutradhar/internal/entity"
)

func TestFromGraph(t *testing.T) {
	g := entity.Graph{
		Entities: []entity.Entity{
			{ID: "samvaha", Kind: "center", Mass: 1.0, Children: []string{"bravli"}},
			{ID: "bravli"},
		},
		Relations: []entity.Relation{
			{Source: "samvaha", Target: "bravli", Strength: 0.6},
		},
	}

	bodies, bonds := FromGraph(g)

	if len(bodies) != 2 {
		t.Fatalf("got %d bodies, want 2", len(bodies))
	}
	if bodies[0].Kind != KindCenter || bodies[0].Mass != 1.0 {
		t.Errorf("bodies[0] = %+v", bodies[0])
	}
	// Undeclared kind and mass fall back to renderable defaults.
	if bodies[1].Kind != KindStandard {
		t.Errorf("bodies[1].Kind = %s, want standard", bodies[1].Kind)
	}
	if bodies[1].Mass != defaultMass {
		t.Errorf("bodies[1].Mass = %v, want %v", bodies[1].Mass, defaultMass)
	}

	if len(bonds) != 1 {
		t.Fatalf("got %d bonds, want 1", len(bonds))
	}
	if bonds[0] != (Bond{A: "samvaha", B: "bravli", Strength: 0.6}) {
		t.Errorf("bonds[0] = %+v", bonds[0])
	}
}
