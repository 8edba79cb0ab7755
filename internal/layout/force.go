package layout

import (
	"math"
	"math/rand"
)

// softening is added to squared pair distances so that coincident bodies do
// not produce singular repulsion.
const softening = 0.01

// childSpringStrength is the spring strength of implicit parent-child edges
// when no bond specifies one.
const childSpringStrength = 1.0

// spring is one attraction edge between two body indexes.
type spring struct {
	a, b     int
	strength float64
}

// placeForce assigns positions by damped force relaxation: seeded random
// initialization inside a bounded sphere, pairwise inverse-square repulsion,
// and zero-rest-length linear springs along bonds and parent-child edges.
// Roots stay pinned at the origin for the whole run but still repel others.
func placeForce(bodies []Body, bonds []Bond, cfg Config) map[string]Vec3 {
	n := len(bodies)
	if n == 0 {
		return map[string]Vec3{}
	}

	idx := make(map[string]int, n)
	for i, b := range bodies {
		idx[b.ID] = i
	}

	pinned := make([]bool, n)
	for _, r := range roots(bodies) {
		pinned[idx[r.ID]] = true
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	pos := make([]Vec3, n)
	vel := make([]Vec3, n)
	for i := range bodies {
		if pinned[i] {
			continue
		}
		pos[i] = randomInSphere(rng, 10)
	}

	springs := buildSprings(bodies, bonds, idx)

	for it := 0; it < cfg.ForceIterations; it++ {
		force := make([]Vec3, n)

		// Pairwise repulsion, O(n^2). Fine for the tens of bodies this
		// targets.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := pos[j].Sub(pos[i])
				d2 := d.X*d.X + d.Y*d.Y + d.Z*d.Z + softening
				push := d.Scale(cfg.Repulsion / (d2 * math.Sqrt(d2)))
				force[i] = force[i].Sub(push)
				force[j] = force[j].Add(push)
			}
		}

		// Linear springs with zero rest length.
		for _, s := range springs {
			d := pos[s.b].Sub(pos[s.a])
			pull := d.Scale(cfg.Attraction * s.strength)
			force[s.a] = force[s.a].Add(pull)
			force[s.b] = force[s.b].Sub(pull)
		}

		for i := 0; i < n; i++ {
			if pinned[i] {
				continue
			}
			vel[i] = vel[i].Add(force[i]).Scale(cfg.Damping)
			pos[i] = pos[i].Add(vel[i])
		}
	}

	out := make(map[string]Vec3, n)
	for i, b := range bodies {
		out[b.ID] = pos[i]
	}
	return out
}

// buildSprings collects attraction edges from bonds and from implicit
// parent-child references, dropping any edge naming an unknown body.
func buildSprings(bodies []Body, bonds []Bond, idx map[string]int) []spring {
	var springs []spring

	for _, bond := range bonds {
		a, okA := idx[bond.A]
		b, okB := idx[bond.B]
		if !okA || !okB || a == b {
			continue
		}
		strength := bond.Strength
		if strength == 0 {
			strength = childSpringStrength
		}
		springs = append(springs, spring{a: a, b: b, strength: strength})
	}

	for _, body := range bodies {
		parent := idx[body.ID]
		for _, childID := range body.Children {
			child, ok := idx[childID]
			if !ok || child == parent {
				continue
			}
			springs = append(springs, spring{a: parent, b: child, strength: childSpringStrength})
		}
	}

	return springs
}

// randomInSphere draws a point uniformly from the volume of a sphere:
// cube-root radius scaling for uniform density, inverse-cosine polar
// sampling for a uniform direction.
func randomInSphere(rng *rand.Rand, radius float64) Vec3 {
	r := radius * math.Cbrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	phi := math.Acos(2*rng.Float64() - 1)

	sinPhi := math.Sin(phi)
	return Vec3{
		X: r * sinPhi * math.Cos(theta),
		Y: r * math.Cos(phi),
		Z: r * sinPhi * math.Sin(theta),
	}
}
