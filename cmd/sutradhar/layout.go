package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/export"
	"github.com/vistaara/sutradhar/internal/layout"
)

func runLayout(args []string) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	graphSource := fs.String("graph", "", "entity graph data file")
	algorithm := fs.String("algorithm", "", "placement algorithm: orbital or force")
	iterations := fs.Int("iterations", 0, "force-directed iteration count")
	seed := fs.Int64("seed", 0, "force-directed RNG seed")
	verbose := fs.Bool("verbose", false, "enable verbose output")
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
	if *graphSource == "" {
		return fmt.Errorf("layout needs -graph (or a sutradhar.yml default)")
	}

	logger := newLogger(*verbose || cfg.Verbose)

	g, err := entity.LoadGraphFile(*graphSource)
	if err != nil {
		return err
	}

	layoutCfg := cfg.Layout
	if *algorithm != "" {
		layoutCfg.Algorithm = layout.Algorithm(*algorithm)
	}
	if *iterations > 0 {
		layoutCfg.ForceIterations = *iterations
	}
	if *seed != 0 {
		layoutCfg.Seed = *seed
	}

	bodies, bonds := layout.FromGraph(g)
	positions := layout.Place(bodies, bonds, layoutCfg)
	logger.Debug("layout computed", "bodies", len(bodies), "bonds", len(bonds))

	return export.WriteJSON(os.Stdout, positions)
}
