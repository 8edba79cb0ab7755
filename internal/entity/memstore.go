package entity

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps. Thread-safe via sync.RWMutex.
type MemStore struct {
	mu        sync.RWMutex
	entities  map[string]Entity
	messages  map[string]bool
	relations []Relation
	mentions  []Mention
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{
		entities: make(map[string]Entity),
		messages: make(map[string]bool),
	}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// AddEntity stores an entity keyed by its id. Re-adding an id overwrites it.
func (m *MemStore) AddEntity(_ context.Context, e Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entities[e.ID] = e
	return nil
}

// AddRelation appends a relation to the internal slice.
func (m *MemStore) AddRelation(_ context.Context, r Relation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.relations = append(m.relations, r)
	return nil
}

// AddMessage records a relay message filename.
func (m *MemStore) AddMessage(_ context.Context, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[filename] = true
	return nil
}

// AddMention appends a mention edge.
func (m *MemStore) AddMention(_ context.Context, mention Mention) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mentions = append(m.mentions, mention)
	return nil
}

// GetEntity returns the entity for the given id, or nil if not found.
func (m *MemStore) GetEntity(_ context.Context, id string) (*Entity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entities[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// ListEntities returns all entities sorted by id.
func (m *MemStore) ListEntities(_ context.Context) ([]Entity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entity, 0, len(m.entities))
	for _, e := range m.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListRelations returns a copy of all relations in the store.
func (m *MemStore) ListRelations(_ context.Context) ([]Relation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Relation, len(m.relations))
	copy(out, m.relations)
	return out, nil
}

// QueryEntities returns entities whose id contains query (case-insensitive),
// sorted by id, up to limit results. A limit <= 0 returns all matches.
func (m *MemStore) QueryEntities(_ context.Context, query string, limit int) ([]Entity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lowerQuery := strings.ToLower(query)
	var results []Entity
	for _, e := range m.entities {
		if strings.Contains(strings.ToLower(e.ID), lowerQuery) {
			results = append(results, e)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// MentionCounts returns the number of mention edges per entity id.
func (m *MemStore) MentionCounts(_ context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[string]int)
	for _, mn := range m.mentions {
		counts[mn.EntityID]++
	}
	return counts, nil
}

// Stats returns counts of all node and edge types in the store.
func (m *MemStore) Stats(_ context.Context) (*GraphStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &GraphStats{
		EntityCount:   len(m.entities),
		RelationCount: len(m.relations),
		MessageCount:  len(m.messages),
		MentionCount:  len(m.mentions),
	}, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}
