// Package mcp parses MCP command flags and starts the stdio server.
package mcp

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/anaitab/montyhall/internal/platform/cmd"
	"github.com/anaitab/montyhall/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Transport string `env:"MONTYHALL_MCP_TRANSPORT" envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "transport type (stdio)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport != "stdio" {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx)
	})
}
