package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewServer creates an MCP server with the relay reconciliation and graph
// layout tools registered.
func NewServer(svc *Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sutradhar",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reconcile_report",
		Description: "Parse the relay message corpus, cross-reference tags against the tracked entity graph, and return the drift report: missing, quiet, active, and unmapped sections plus summary counts.",
	}, svc.ReconcileReport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "layout_graph",
		Description: "Compute 3D positions for the entity graph using orbital (deterministic spiral) or force-directed (damped relaxation) placement.",
	}, svc.LayoutGraph)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_entities",
		Description: "Search the indexed entity graph by id substring match.",
	}, svc.QueryEntities)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "graph_stats",
		Description: "Return counts of entities, relations, messages, and mentions in the indexed graph.",
	}, svc.GraphStats)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts an HTTP server exposing the MCP tools at addr.
func RunHTTP(ctx context.Context, svc *Service, addr string) error {
	server := NewServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
