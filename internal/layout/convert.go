package layout

import "github.com/vistaara/sutradhar/internal/entity"

// defaultMass keeps massless graph entities inside the 0.8-1.2x orbital
// multiplier range instead of collapsing them onto the 0.8 floor.
const defaultMass = 0.5

// FromGraph converts a tracked entity graph into layout input. Entities with
// no declared kind become standard bodies; relations become bonds.
func FromGraph(g entity.Graph) ([]Body, []Bond) {
	bodies := make([]Body, 0, len(g.Entities))
	for _, e := range g.Entities {
		kind := BodyKind(e.Kind)
		if e.Kind == "" {
			kind = KindStandard
		}
		mass := e.Mass
		if mass == 0 {
			mass = defaultMass
		}
		bodies = append(bodies, Body{
			ID:       e.ID,
			Mass:     mass,
			Kind:     kind,
			Children: e.Children,
			Color:    e.Color,
		})
	}

	bonds := make([]Bond, 0, len(g.Relations))
	for _, r := range g.Relations {
		bonds = append(bonds, Bond{A: r.Source, B: r.Target, Strength: r.Strength})
	}

	return bodies, bonds
}
