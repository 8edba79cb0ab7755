package entity

// --- Models ---

// Entity is a named node in the tracked knowledge graph. Mass, Kind, Color,
// and Children are visual attributes consumed by the layout engine; the
// reconciler only cares about IDs.
type Entity struct {
	ID       string   `json:"id" yaml:"id"`
	Kind     string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Mass     float64  `json:"mass,omitempty" yaml:"mass,omitempty"`
	Color    string   `json:"color,omitempty" yaml:"color,omitempty"`
	Children []string `json:"children,omitempty" yaml:"children,omitempty"`
}

// Relation is an undirected bond between two entities. Strength affects
// visual weight and force-directed attraction.
type Relation struct {
	Source   string  `json:"source" yaml:"source"`
	Target   string  `json:"target" yaml:"target"`
	Strength float64 `json:"strength,omitempty" yaml:"strength,omitempty"`
}

// Mention links a relay message filename to an entity it references.
type Mention struct {
	EntityID string `json:"entityId"`
	Filename string `json:"filename"`
}

// Graph is the externally maintained set of entities and relations. It is
// treated as read-only ground truth for a reconciliation run.
type Graph struct {
	Entities  []Entity   `json:"entities" yaml:"entities"`
	Relations []Relation `json:"relations" yaml:"relations"`
}

// IDs returns the entity identifier set.
func (g Graph) IDs() map[string]bool {
	ids := make(map[string]bool, len(g.Entities))
	for _, e := range g.Entities {
		ids[e.ID] = true
	}
	return ids
}

// Has reports whether id is declared in the graph.
func (g Graph) Has(id string) bool {
	for _, e := range g.Entities {
		if e.ID == id {
			return true
		}
	}
	return false
}

// GraphStats holds counts for a stored graph index.
type GraphStats struct {
	EntityCount   int `json:"entityCount"`
	RelationCount int `json:"relationCount"`
	MessageCount  int `json:"messageCount"`
	MentionCount  int `json:"mentionCount"`
}
