package mcptools

import (
	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/layout"
	"github.com/vistaara/sutradhar/internal/reconcile"
)

// --- MCP Tool Input/Output Types ---
// These structs define the JSON schema for each MCP tool.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// ReconcileReportInput is the input for the reconcile_report MCP tool.
type ReconcileReportInput struct {
	RelayDir    string `json:"relayDir,omitempty" jsonschema:"path to the relay message directory (default: configured)"`
	GraphSource string `json:"graphSource,omitempty" jsonschema:"path to the entity graph data file (default: configured)"`
}

// ReconcileReportOutput is the result of the reconcile_report MCP tool.
type ReconcileReportOutput struct {
	Summary  reconcile.Summary        `json:"summary"`
	Missing  []string                 `json:"missing,omitempty"`
	Quiet    []string                 `json:"quiet,omitempty"`
	Active   []reconcile.ActiveEntity `json:"active,omitempty"`
	Unmapped []reconcile.UnmappedTag  `json:"unmapped,omitempty"`
	Text     string                   `json:"text"`
}

// LayoutGraphInput is the input for the layout_graph MCP tool.
type LayoutGraphInput struct {
	GraphSource string `json:"graphSource,omitempty" jsonschema:"path to the entity graph data file (default: configured)"`
	Algorithm   string `json:"algorithm,omitempty" jsonschema:"placement algorithm: orbital or force (default: orbital)"`
	Iterations  int    `json:"iterations,omitempty" jsonschema:"force-directed iteration count (default: 200)"`
	Seed        int64  `json:"seed,omitempty" jsonschema:"force-directed RNG seed (default: 1)"`
}

// LayoutGraphOutput is the result of the layout_graph MCP tool.
type LayoutGraphOutput struct {
	Algorithm string                 `json:"algorithm"`
	Positions map[string]layout.Vec3 `json:"positions"`
}

// QueryEntitiesInput is the input for the query_entities MCP tool.
type QueryEntitiesInput struct {
	Query string `json:"query" jsonschema:"search query for entity ids (substring match)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default: 20)"`
}

// QueryEntitiesOutput is the result of the query_entities MCP tool.
type QueryEntitiesOutput struct {
	Entities []entity.Entity `json:"entities"`
	Total    int             `json:"total"`
}

// GraphStatsInput is the input for the graph_stats MCP tool.
type GraphStatsInput struct{}

// GraphStatsOutput is the result of the graph_stats MCP tool.
type GraphStatsOutput struct {
	Stats entity.GraphStats `json:"stats"`
}
