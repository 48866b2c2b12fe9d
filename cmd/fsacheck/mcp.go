package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/fsacheck/internal/cli"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts fsacheck as an MCP Server exposing the validate_fsa tool and the
fsacheck://rules resource.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cli.SignalContext(cmd.Context())
		defer stop()

		return cli.ServeMCP(ctx, cli.MCPOptions{
			Transport: cfg.MCP.Transport,
			Port:      cfg.MCP.Port,
			Logger:    logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")

	_ = viper.BindPFlag("mcp.transport", mcpCmd.Flags().Lookup("transport"))
	_ = viper.BindPFlag("mcp.port", mcpCmd.Flags().Lookup("port"))
}
