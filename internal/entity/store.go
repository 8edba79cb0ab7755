package entity

import (
	"context"
	"io"
)

// Store is the interface for the persistent graph index backend.
// Implementations: KuzuStore (cgo builds), MemStore (everywhere, tests).
// A store holds one reconciliation run's view: the tracked graph plus the
// relay messages and the mention edges derived from them.
type Store interface {
	io.Closer

	// Schema setup, called once before any data is inserted.
	InitSchema(ctx context.Context) error

	// Write operations. Edge writes (AddRelation, AddMention) naming an
	// entity or message the store does not hold may be dropped rather than
	// rejected; KuzuStore does this, MemStore keeps them. Callers that care
	// about dangling references must check before writing.
	AddEntity(ctx context.Context, e Entity) error
	AddRelation(ctx context.Context, r Relation) error
	AddMessage(ctx context.Context, filename string) error
	AddMention(ctx context.Context, m Mention) error

	// Read operations.
	GetEntity(ctx context.Context, id string) (*Entity, error)
	ListEntities(ctx context.Context) ([]Entity, error)
	ListRelations(ctx context.Context) ([]Relation, error)
	QueryEntities(ctx context.Context, query string, limit int) ([]Entity, error)

	// MentionCounts returns the number of mention edges per entity id.
	// Entities with no mentions are absent from the map.
	MentionCounts(ctx context.Context) (map[string]int, error)

	// Stats.
	Stats(ctx context.Context) (*GraphStats, error)
}
