//go:build cgo

package entity

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kuzu "github.com/kuzudb/go-kuzu"
)

// KuzuStore implements the Store interface using KuzuDB as the graph backend.
// It requires CGO because the go-kuzu driver wraps KuzuDB's C library.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(":memory:", cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at the
// given directory path. KuzuDB creates the directory itself for new databases.
// This lets the index command persist a run that the diagram, stats, and MCP
// surfaces can query later without re-reading the relay corpus.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	// Ensure parent directory exists (KuzuDB creates the leaf directory).
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(dbPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open file database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema.
// Order matters: node tables must precede relationship tables.
// The Entity table has no children column: the parent-child forest is a
// display concern read from the graph file by the layout engine, and the
// queries this index answers (search, counts, mentions) never traverse it.
// A Kuzu round trip therefore returns entities with nil Children.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS Entity(
		id STRING,
		kind STRING,
		mass DOUBLE,
		color STRING,
		PRIMARY KEY(id)
	)`,
	`CREATE NODE TABLE IF NOT EXISTS Message(
		filename STRING,
		PRIMARY KEY(filename)
	)`,
	`CREATE REL TABLE IF NOT EXISTS RELATES_TO(FROM Entity TO Entity, strength DOUBLE)`,
	`CREATE REL TABLE IF NOT EXISTS MENTIONS(FROM Message TO Entity)`,
}

// InitSchema creates all node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// ---------- Write operations ----------

// AddEntity inserts an Entity node.
func (s *KuzuStore) AddEntity(_ context.Context, e Entity) error {
	return s.exec(
		"CREATE (e:Entity {id: $id, kind: $kind, mass: $mass, color: $color})",
		map[string]any{
			"id":    e.ID,
			"kind":  e.Kind,
			"mass":  e.Mass,
			"color": e.Color,
		},
	)
}

// AddRelation inserts a RELATES_TO edge between two entities. A relation
// naming an entity that is not in the store matches nothing and is dropped,
// consistent with the dangling-reference tolerance everywhere else.
func (s *KuzuStore) AddRelation(_ context.Context, r Relation) error {
	return s.exec(
		`MATCH (a:Entity {id: $src}), (b:Entity {id: $dst})
		 CREATE (a)-[:RELATES_TO {strength: $strength}]->(b)`,
		map[string]any{
			"src":      r.Source,
			"dst":      r.Target,
			"strength": r.Strength,
		},
	)
}

// AddMessage inserts a Message node.
func (s *KuzuStore) AddMessage(_ context.Context, filename string) error {
	return s.exec(
		"CREATE (m:Message {filename: $filename})",
		map[string]any{"filename": filename},
	)
}

// AddMention inserts a MENTIONS edge from a message to an entity.
func (s *KuzuStore) AddMention(_ context.Context, m Mention) error {
	return s.exec(
		`MATCH (msg:Message {filename: $filename}), (e:Entity {id: $id})
		 CREATE (msg)-[:MENTIONS]->(e)`,
		map[string]any{
			"filename": m.Filename,
			"id":       m.EntityID,
		},
	)
}

// ---------- Read operations ----------

// GetEntity retrieves a single Entity node by id, or returns nil if not found.
func (s *KuzuStore) GetEntity(_ context.Context, id string) (*Entity, error) {
	rows, err := s.query(
		"MATCH (e:Entity {id: $id}) RETURN e.id, e.kind, e.mass, e.color",
		map[string]any{"id": id},
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rowToEntity(rows[0]), nil
}

// ListEntities returns all Entity nodes sorted by id.
func (s *KuzuStore) ListEntities(_ context.Context) ([]Entity, error) {
	rows, err := s.query(
		"MATCH (e:Entity) RETURN e.id, e.kind, e.mass, e.color ORDER BY e.id",
		nil,
	)
	if err != nil {
		return nil, err
	}
	out := make([]Entity, 0, len(rows))
	for _, r := range rows {
		out = append(out, *rowToEntity(r))
	}
	return out, nil
}

// ListRelations returns all RELATES_TO edges.
func (s *KuzuStore) ListRelations(_ context.Context) ([]Relation, error) {
	rows, err := s.query(
		"MATCH (a:Entity)-[r:RELATES_TO]->(b:Entity) RETURN a.id, b.id, r.strength",
		nil,
	)
	if err != nil {
		return nil, err
	}
	out := make([]Relation, 0, len(rows))
	for _, r := range rows {
		out = append(out, Relation{
			Source:   toString(r[0]),
			Target:   toString(r[1]),
			Strength: toFloat64(r[2]),
		})
	}
	return out, nil
}

// QueryEntities returns entities whose id contains the query string.
func (s *KuzuStore) QueryEntities(_ context.Context, queryStr string, limit int) ([]Entity, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.query(
		`MATCH (e:Entity) WHERE e.id CONTAINS $q
		 RETURN e.id, e.kind, e.mass, e.color
		 ORDER BY e.id LIMIT $lim`,
		map[string]any{
			"q":   queryStr,
			"lim": int64(limit),
		},
	)
	if err != nil {
		return nil, err
	}
	out := make([]Entity, 0, len(rows))
	for _, r := range rows {
		out = append(out, *rowToEntity(r))
	}
	return out, nil
}

// MentionCounts returns the number of MENTIONS edges per entity id.
func (s *KuzuStore) MentionCounts(_ context.Context) (map[string]int, error) {
	rows, err := s.query(
		"MATCH (:Message)-[:MENTIONS]->(e:Entity) RETURN e.id, count(*)",
		nil,
	)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[toString(r[0])] = toInt(r[1])
	}
	return counts, nil
}

// ---------- Stats ----------

// Stats returns counts of all node and edge tables.
func (s *KuzuStore) Stats(_ context.Context) (*GraphStats, error) {
	entities, err := s.countNodes("Entity")
	if err != nil {
		return nil, err
	}
	messages, err := s.countNodes("Message")
	if err != nil {
		return nil, err
	}
	relations, err := s.countEdges("RELATES_TO")
	if err != nil {
		return nil, err
	}
	mentions, err := s.countEdges("MENTIONS")
	if err != nil {
		return nil, err
	}
	return &GraphStats{
		EntityCount:   entities,
		RelationCount: relations,
		MessageCount:  messages,
		MentionCount:  mentions,
	}, nil
}

// ---------- Internal helpers ----------

// exec runs a parameterized Cypher statement that produces no result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a parameterized Cypher statement and collects all result rows.
// Each row is a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// countNodes returns the number of rows in a node table.
func (s *KuzuStore) countNodes(table string) (int, error) {
	// Table name is a fixed internal constant, not user input.
	cypher := fmt.Sprintf("MATCH (n:%s) RETURN count(n)", table)
	rows, err := s.query(cypher, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// countEdges returns the number of edges in a relationship table.
func (s *KuzuStore) countEdges(table string) (int, error) {
	cypher := fmt.Sprintf("MATCH ()-[r:%s]->() RETURN count(r)", table)
	rows, err := s.query(cypher, nil)
	if err != nil {
		// Table may not exist yet; treat as zero.
		return 0, nil
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// rowToEntity converts a 4-column result row into an Entity.
// Column order: id, kind, mass, color.
func rowToEntity(r []any) *Entity {
	return &Entity{
		ID:    toString(r[0]),
		Kind:  toString(r[1]),
		Mass:  toFloat64(r[2]),
		Color: toString(r[3]),
	}
}

// ---------- Type coercion helpers ----------
// KuzuDB returns typed Go values (int64, float64, bool, string).
// These helpers safely coerce any -> concrete type.

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case int32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
