package reconcile

import (
	"context"
	"fmt"

	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/relay"
)

// IndexRun folds a reconciliation run into a graph store: the tracked
// entities and relations, the relay messages, and the mention edges derived
// from the tag map. The store ends up holding exactly the view the diagram,
// stats, and MCP surfaces query.
func IndexRun(ctx context.Context, store entity.Store, g entity.Graph, msgs []relay.Message, tags TagMap) error {
	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	for _, e := range g.Entities {
		if err := store.AddEntity(ctx, e); err != nil {
			return fmt.Errorf("add entity %s: %w", e.ID, err)
		}
	}
	for _, r := range g.Relations {
		if err := store.AddRelation(ctx, r); err != nil {
			return fmt.Errorf("add relation %s->%s: %w", r.Source, r.Target, err)
		}
	}

	for _, msg := range msgs {
		if err := store.AddMessage(ctx, msg.Filename); err != nil {
			return fmt.Errorf("add message %s: %w", msg.Filename, err)
		}
	}

	for id, files := range EntityActivity(msgs, tags) {
		// Mentions of undeclared entities are offered to the store as well.
		// MemStore keeps them; edge-typed backends like KuzuStore have no
		// node to attach them to and drop them. The drift report does not
		// depend on this either way: missing entities come straight from
		// GenerateReport, not from the index.
		for _, filename := range files {
			m := entity.Mention{EntityID: id, Filename: filename}
			if err := store.AddMention(ctx, m); err != nil {
				return fmt.Errorf("add mention %s<-%s: %w", id, filename, err)
			}
		}
	}

	return nil
}
