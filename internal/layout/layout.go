// Package layout positions a forest/graph of labelled bodies in 3D space,
// either by deterministic recursive orbital placement or by iterative
// force-directed relaxation. Both algorithms are pure computation over their
// inputs; rendering is someone else's problem.
package layout

// Place computes one position per reachable body. Dangling bond or child
// references and malformed child-list cycles are skipped silently: the
// layout input and the tracked entity graph are maintained independently and
// are not required to agree at any given moment.
func Place(bodies []Body, bonds []Bond, cfg Config) map[string]Vec3 {
	cfg = cfg.withDefaults()

	switch cfg.Algorithm {
	case AlgorithmForce:
		return placeForce(bodies, bonds, cfg)
	default:
		return placeOrbital(bodies, cfg)
	}
}

// roots returns the bodies not listed as any other body's child, preserving
// input order.
func roots(bodies []Body) []Body {
	child := make(map[string]bool)
	for _, b := range bodies {
		for _, c := range b.Children {
			child[c] = true
		}
	}
	var out []Body
	for _, b := range bodies {
		if !child[b.ID] {
			out = append(out, b)
		}
	}
	return out
}

// bodyIndex maps body ids to their record.
func bodyIndex(bodies []Body) map[string]Body {
	byID := make(map[string]Body, len(bodies))
	for _, b := range bodies {
		byID[b.ID] = b
	}
	return byID
}
