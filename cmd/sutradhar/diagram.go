package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/export"
	"github.com/vistaara/sutradhar/internal/reconcile"
	"github.com/vistaara/sutradhar/internal/relay"
)

func runDiagram(args []string) error {
	fs := flag.NewFlagSet("diagram", flag.ContinueOnError)
	graphSource := fs.String("graph", "", "entity graph data file")
	relayDir := fs.String("relay", "", "relay directory for activity styling (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *graphSource == "" {
		*graphSource = cfg.GraphSource
	}
	if *relayDir == "" {
		*relayDir = cfg.RelayDir
	}
	if *graphSource == "" {
		return fmt.Errorf("diagram needs -graph (or a sutradhar.yml default)")
	}

	g, err := entity.LoadGraphFile(*graphSource)
	if err != nil {
		return err
	}

	// Activity styling is optional; a diagram without a relay corpus is
	// just the bare graph.
	var report *reconcile.Report
	if *relayDir != "" {
		msgs, err := relay.ReadCorpus(context.Background(), *relayDir)
		if err != nil {
			return err
		}
		r := reconcile.GenerateReport(msgs, g, cfg.TagMap(), cfg.Exclusions())
		report = &r
	}

	fmt.Print(export.GenerateMermaid(g, report))
	return nil
}
