package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vistaara/sutradhar/internal/config"
	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/layout"
	"github.com/vistaara/sutradhar/internal/reconcile"
	"github.com/vistaara/sutradhar/internal/relay"
)

// Service holds the graph store and configured defaults used by the MCP tool
// handlers. The store carries the indexed view built at startup; the
// reconcile and layout tools re-read their sources per call so the report
// always reflects the filesystem.
type Service struct {
	store entity.Store
	cfg   *config.Config
}

// NewService creates a Service with the given store and configuration.
func NewService(store entity.Store, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Service{store: store, cfg: cfg}
}

// ReconcileReport runs the reconciler over a relay directory and an entity
// graph source and returns the drift report.
func (s *Service) ReconcileReport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReconcileReportInput,
) (*mcp.CallToolResult, ReconcileReportOutput, error) {
	relayDir := input.RelayDir
	if relayDir == "" {
		relayDir = s.cfg.RelayDir
	}
	graphSource := input.GraphSource
	if graphSource == "" {
		graphSource = s.cfg.GraphSource
	}
	if relayDir == "" || graphSource == "" {
		return nil, ReconcileReportOutput{}, fmt.Errorf("relayDir and graphSource are required (no configured defaults)")
	}

	msgs, err := relay.ReadCorpus(ctx, relayDir)
	if err != nil {
		return nil, ReconcileReportOutput{}, fmt.Errorf("read corpus: %w", err)
	}
	g, err := entity.LoadGraphFile(graphSource)
	if err != nil {
		return nil, ReconcileReportOutput{}, fmt.Errorf("load graph: %w", err)
	}

	r := reconcile.GenerateReport(msgs, g, s.cfg.TagMap(), s.cfg.Exclusions())

	return nil, ReconcileReportOutput{
		Summary:  r.Summary,
		Missing:  r.Missing,
		Quiet:    r.Quiet,
		Active:   r.Active,
		Unmapped: r.Unmapped,
		Text:     r.String(),
	}, nil
}

// LayoutGraph computes positions for the entity graph.
func (s *Service) LayoutGraph(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LayoutGraphInput,
) (*mcp.CallToolResult, LayoutGraphOutput, error) {
	graphSource := input.GraphSource
	if graphSource == "" {
		graphSource = s.cfg.GraphSource
	}
	if graphSource == "" {
		return nil, LayoutGraphOutput{}, fmt.Errorf("graphSource is required (no configured default)")
	}

	g, err := entity.LoadGraphFile(graphSource)
	if err != nil {
		return nil, LayoutGraphOutput{}, fmt.Errorf("load graph: %w", err)
	}

	cfg := s.cfg.Layout
	if input.Algorithm != "" {
		cfg.Algorithm = layout.Algorithm(input.Algorithm)
	}
	if input.Iterations > 0 {
		cfg.ForceIterations = input.Iterations
	}
	if input.Seed != 0 {
		cfg.Seed = input.Seed
	}

	bodies, bonds := layout.FromGraph(g)
	positions := layout.Place(bodies, bonds, cfg)

	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = layout.DefaultConfig().Algorithm
	}

	return nil, LayoutGraphOutput{
		Algorithm: string(algorithm),
		Positions: positions,
	}, nil
}

// QueryEntities searches the indexed store by id substring.
func (s *Service) QueryEntities(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryEntitiesInput,
) (*mcp.CallToolResult, QueryEntitiesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	entities, err := s.store.QueryEntities(ctx, input.Query, limit)
	if err != nil {
		return nil, QueryEntitiesOutput{}, fmt.Errorf("query entities: %w", err)
	}
	return nil, QueryEntitiesOutput{
		Entities: entities,
		Total:    len(entities),
	}, nil
}

// GraphStats returns counts from the indexed store.
func (s *Service) GraphStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GraphStatsInput,
) (*mcp.CallToolResult, GraphStatsOutput, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, GraphStatsOutput{}, fmt.Errorf("stats: %w", err)
	}
	return nil, GraphStatsOutput{Stats: *stats}, nil
}
