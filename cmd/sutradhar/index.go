//go:build cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/reconcile"
	"github.com/vistaara/sutradhar/internal/relay"
)

func runIndex(args []string) error {
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	relayDir := fs.String("relay", "", "relay message directory")
	graphSource := fs.String("graph", "", "entity graph data file")
	dbPath := fs.String("db", "", "graph database directory (default: .sutradhar/graph)")
	verbose := fs.Bool("verbose", false, "enable verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *relayDir == "" {
		*relayDir = cfg.RelayDir
	}
	if *graphSource == "" {
		*graphSource = cfg.GraphSource
	}
	if *relayDir == "" || *graphSource == "" {
		return fmt.Errorf("index needs -relay and -graph (or sutradhar.yml defaults)")
	}
	if *dbPath == "" {
		*dbPath = filepath.Join(".sutradhar", "graph")
	}

	logger := newLogger(*verbose || cfg.Verbose)
	ctx := context.Background()

	msgs, err := relay.ReadCorpus(ctx, *relayDir)
	if err != nil {
		return err
	}
	g, err := entity.LoadGraphFile(*graphSource)
	if err != nil {
		return err
	}

	// Remove old index to avoid stale data.
	os.RemoveAll(*dbPath)

	store, err := entity.NewKuzuFileStore(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := reconcile.IndexRun(ctx, store, g, msgs, cfg.TagMap()); err != nil {
		return err
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		return err
	}
	logger.Info("index written", "db", *dbPath,
		"entities", stats.EntityCount, "relations", stats.RelationCount,
		"messages", stats.MessageCount, "mentions", stats.MentionCount)
	return nil
}
