package layout

import "math"

// --- Geometry ---

// Vec3 is a point or displacement in 3D space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// --- Models ---

// BodyKind classifies bodies by visual weight.
type BodyKind string

const (
	KindCenter   BodyKind = "center"
	KindMajor    BodyKind = "major"
	KindStandard BodyKind = "standard"
	KindMinor    BodyKind = "minor"
)

// defaultOrbit is the orbital distance for unrecognized kinds.
const defaultOrbit = 4.0

// OrbitDistance returns the kind's base orbital distance from its parent.
func (k BodyKind) OrbitDistance() float64 {
	switch k {
	case KindCenter:
		return 10.0
	case KindMajor:
		return 9.0
	case KindStandard:
		return 6.0
	case KindMinor:
		return 3.5
	default:
		return defaultOrbit
	}
}

// Radius returns the kind's visual radius multiplier, for renderers.
func (k BodyKind) Radius() float64 {
	switch k {
	case KindCenter:
		return 2.5
	case KindMajor:
		return 1.6
	case KindStandard:
		return 1.0
	case KindMinor:
		return 0.6
	default:
		return 1.0
	}
}

// Body is one node of the layout input. Children declares the rooted forest
// used by orbital placement and by the implicit spring edges of
// force-directed placement. A body never listed as another body's child is a
// root and stays pinned at the origin.
type Body struct {
	ID       string   `json:"id"`
	Mass     float64  `json:"mass"`
	Kind     BodyKind `json:"kind,omitempty"`
	Children []string `json:"children,omitempty"`
	Color    string   `json:"color,omitempty"`
}

// Bond is an undirected edge between two bodies, independent of the
// parent/child forest. Strength scales force-directed attraction; a zero
// Strength means unspecified and falls back to the parent-child default,
// not to zero attraction.
type Bond struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Strength float64 `json:"strength"`
}

// --- Configuration ---

// Algorithm selects the placement strategy.
type Algorithm string

const (
	AlgorithmOrbital Algorithm = "orbital"
	AlgorithmForce   Algorithm = "force"
)

// Config holds the recognized layout options. Zero values are replaced by
// the defaults from DefaultConfig inside Place.
type Config struct {
	Algorithm       Algorithm `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	GoldenAngle     float64   `json:"goldenAngle,omitempty" yaml:"goldenAngle,omitempty"`
	TiltRange       float64   `json:"tiltRange,omitempty" yaml:"tiltRange,omitempty"`
	ForceIterations int       `json:"forceIterations,omitempty" yaml:"forceIterations,omitempty"`
	Repulsion       float64   `json:"repulsion,omitempty" yaml:"repulsion,omitempty"`
	Attraction      float64   `json:"attraction,omitempty" yaml:"attraction,omitempty"`
	Damping         float64   `json:"damping,omitempty" yaml:"damping,omitempty"`
	Seed            int64     `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// GoldenAngle is the angular increment of the orbital spiral: the irrational
// fraction of a full turn that keeps sibling angles from ever repeating.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// DefaultConfig returns the layout defaults.
func DefaultConfig() Config {
	return Config{
		Algorithm:       AlgorithmOrbital,
		GoldenAngle:     GoldenAngle,
		TiltRange:       0.5,
		ForceIterations: 200,
		Repulsion:       2.0,
		Attraction:      0.05,
		Damping:         0.85,
		Seed:            1,
	}
}

// withDefaults fills zero-valued fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Algorithm == "" {
		c.Algorithm = def.Algorithm
	}
	if c.GoldenAngle == 0 {
		c.GoldenAngle = def.GoldenAngle
	}
	if c.TiltRange == 0 {
		c.TiltRange = def.TiltRange
	}
	if c.ForceIterations == 0 {
		c.ForceIterations = def.ForceIterations
	}
	if c.Repulsion == 0 {
		c.Repulsion = def.Repulsion
	}
	if c.Attraction == 0 {
		c.Attraction = def.Attraction
	}
	if c.Damping == 0 {
		c.Damping = def.Damping
	}
	if c.Seed == 0 {
		c.Seed = def.Seed
	}
	return c
}
