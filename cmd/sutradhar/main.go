package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vistaara/sutradhar/internal/config"
)

// version is set by goreleaser at build time.
var version = "dev"

const usage = `usage: sutradhar <command> [flags]

commands:
  report     reconcile the relay corpus against the entity graph
  layout     compute 3D positions for the entity graph
  diagram    render the entity graph as a Mermaid diagram
  index      persist a reconciliation run into a graph database
  serve-mcp  expose the tools over the Model Context Protocol
  version    print version and exit
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	switch args[0] {
	case "report":
		return runReport(args[1:])
	case "layout":
		return runLayout(args[1:])
	case "diagram":
		return runDiagram(args[1:])
	case "index":
		return runIndex(args[1:])
	case "serve-mcp":
		return runServe(args[1:])
	case "version", "-version", "--version":
		fmt.Println(version)
		return nil
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// newLogger builds the console logger for CLI diagnostics. The algorithms
// themselves never log; only the command wiring does.
func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

// loadConfig reads sutradhar.yml from the working directory. A missing file
// yields a zero-value config; flags then fill in whatever they name.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
