package reconcile

import (
	"context"
	"testing"

	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/relay"
)

func TestIndexRun(t *testing.T) {
	ctx := context.Background()
	store := entity.NewMemStore()
	t.Cleanup(func() { _ = store.Close() })

	msgs := []relay.Message{
		msg("a.md", "bravli"),
		msg("b.md", "bravli", "lost"),
	}
	tags := TagMap{
		"bravli": {"bravli"},
		"lost":   {"deluvian"},
	}

	if err := IndexRun(ctx, store, testGraph(), msgs, tags); err != nil {
		t.Fatalf("IndexRun: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.EntityCount != 4 {
		t.Errorf("EntityCount = %d, want 4", stats.EntityCount)
	}
	if stats.RelationCount != 1 {
		t.Errorf("RelationCount = %d, want 1", stats.RelationCount)
	}
	if stats.MessageCount != 2 {
		t.Errorf("MessageCount = %d, want 2", stats.MessageCount)
	}
	// Two bravli mentions plus one for the undeclared deluvian.
	if stats.MentionCount != 3 {
		t.Errorf("MentionCount = %d, want 3", stats.MentionCount)
	}

	counts, err := store.MentionCounts(ctx)
	if err != nil {
		t.Fatalf("MentionCounts: %v", err)
	}
	if counts["bravli"] != 2 {
		t.Errorf("bravli mentions = %d, want 2", counts["bravli"])
	}
	if counts["deluvian"] != 1 {
		t.Errorf("deluvian mentions = %d, want 1", counts["deluvian"])
	}

	e, err := store.GetEntity(ctx, "samvaha")
	if err != nil {
		t.Fatalf("GetEntity: %v", err)
	}
	if e == nil || e.Kind != "center" {
		t.Errorf("samvaha = %+v, want center entity", e)
	}
}
