package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/mcptools"
	"github.com/vistaara/sutradhar/internal/reconcile"
	"github.com/vistaara/sutradhar/internal/relay"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve-mcp", flag.ContinueOnError)
	addr := fs.String("addr", "", "listen address for HTTP transport (default: stdio)")
	verbose := fs.Bool("verbose", false, "enable verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(*verbose || cfg.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Index the configured sources once at startup so query_entities and
	// graph_stats have something to answer from. Missing configuration is
	// fine; the reconcile and layout tools take explicit paths.
	store := entity.NewMemStore()
	if cfg.RelayDir != "" && cfg.GraphSource != "" {
		msgs, err := relay.ReadCorpus(ctx, cfg.RelayDir)
		if err != nil {
			return err
		}
		g, err := entity.LoadGraphFile(cfg.GraphSource)
		if err != nil {
			return err
		}
		if err := reconcile.IndexRun(ctx, store, g, msgs, cfg.TagMap()); err != nil {
			return err
		}
		logger.Debug("startup index built",
			"entities", len(g.Entities), "messages", len(msgs))
	}

	svc := mcptools.NewService(store, cfg)

	if *addr != "" {
		logger.Info("serving MCP over HTTP", "addr", *addr)
		return mcptools.RunHTTP(ctx, svc, *addr)
	}
	logger.Debug("serving MCP over stdio")
	return mcptools.RunStdio(ctx, mcptools.NewServer(svc))
}
