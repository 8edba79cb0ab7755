package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/export"
	"github.com/vistaara/sutradhar/internal/reconcile"
	"github.com/vistaara/sutradhar/internal/relay"
)

func runReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	relayDir := fs.String("relay", "", "relay message directory")
	graphSource := fs.String("graph", "", "entity graph data file")
	asJSON := fs.Bool("json", false, "emit the report as JSON")
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
		return fmt.Errorf("report needs -relay and -graph (or sutradhar.yml defaults)")
	}

	logger := newLogger(*verbose || cfg.Verbose)

	msgs, err := relay.ReadCorpus(context.Background(), *relayDir)
	if err != nil {
		return err
	}
	logger.Debug("corpus read", "dir", *relayDir, "messages", len(msgs))

	g, err := entity.LoadGraphFile(*graphSource)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "source", *graphSource,
		"entities", len(g.Entities), "relations", len(g.Relations))

	report := reconcile.GenerateReport(msgs, g, cfg.TagMap(), cfg.Exclusions())

	if *asJSON {
		return export.WriteJSON(os.Stdout, export.NewRunExport(report, nil))
	}
	fmt.Print(report.String())
	return nil
}
