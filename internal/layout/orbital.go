package layout

import "math"

// placeOrbital assigns positions by recursive spiral placement: every root
// sits at the origin and children orbit their parent at golden-angle
// increments with a polar tilt out of the orbital plane. Purely a function
// of the tree structure and per-body attributes; two runs over the same
// input produce bit-identical positions.
func placeOrbital(bodies []Body, cfg Config) map[string]Vec3 {
	byID := bodyIndex(bodies)
	pos := make(map[string]Vec3, len(bodies))
	visited := make(map[string]bool, len(bodies))

	for _, root := range roots(bodies) {
		pos[root.ID] = Vec3{}
		visited[root.ID] = true
		orbitChildren(root, Vec3{}, 0, byID, pos, visited, cfg)
	}

	return pos
}

// orbitChildren places the children of parent around parentPos. offset is
// the sibling phase inherited from the parent's own index, decorrelating
// cousin angles across levels.
func orbitChildren(parent Body, parentPos Vec3, offset float64, byID map[string]Body, pos map[string]Vec3, visited map[string]bool, cfg Config) {
	n := len(parent.Children)

	for i, childID := range parent.Children {
		child, ok := byID[childID]
		if !ok {
			continue // dangling reference
		}
		if visited[childID] {
			continue // cycle or shared child; first placement wins
		}
		visited[childID] = true

		angle := (float64(i) + offset) * cfg.GoldenAngle
		tilt := (float64(i)/float64(n+1) - 0.5) * cfg.TiltRange * math.Pi
		dist := child.Kind.OrbitDistance() * (0.8 + 0.4*child.Mass)

		p := parentPos.Add(Vec3{
			X: dist * math.Cos(angle) * math.Cos(tilt),
			Y: dist * math.Sin(tilt),
			Z: dist * math.Sin(angle) * math.Cos(tilt),
		})
		pos[childID] = p

		orbitChildren(child, p, float64(i)*3, byID, pos, visited, cfg)
	}
}
