package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aretw0/fsacheck"
	"github.com/aretw0/fsacheck/internal/logging"
	"github.com/aretw0/fsacheck/pkg/adapters/mcp"
)

// MCPOptions configures the MCP server.
type MCPOptions struct {
	Transport string // "stdio" or "sse"
	Port      int    // SSE only
	Logger    *slog.Logger
}

// ServeMCP exposes the validator to MCP clients until ctx is done (SSE) or
// stdin is closed (stdio).
func ServeMCP(ctx context.Context, opts MCPOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	v := fsacheck.New(
		fsacheck.WithLogger(logger),
		fsacheck.WithHooks(createDebugHooks(logger)),
	)
	srv := mcp.NewServer(v)

	switch opts.Transport {
	case "", "stdio":
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("Starting MCP server (stdio)")
		return srv.ServeStdio()
	case "sse":
		logger.Info("Starting MCP server (SSE)", "port", opts.Port)
		if err := srv.ServeSSE(ctx, opts.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("MCP server stopped gracefully")
		return nil
	default:
		return fmt.Errorf("unknown transport %q: supported transports are stdio and sse", opts.Transport)
	}
}
