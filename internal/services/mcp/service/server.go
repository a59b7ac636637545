package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/anaitab/montyhall/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Monty Hall MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with the Monty Hall tools
// registered.
func New() *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, domain.TrialTool(), domain.TrialHandler())
	mcp.AddTool(mcpServer, domain.SimulateTool(), domain.SimulateHandler())
	mcp.AddTool(mcpServer, domain.RulesVersionTool(), domain.RulesVersionHandler())

	return &Server{mcpServer: mcpServer}
}

// Run creates a server and serves it on stdio until the context ends.
func Run(ctx context.Context) error {
	return New().Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends. Context cancellation is a clean shutdown, not an error.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
