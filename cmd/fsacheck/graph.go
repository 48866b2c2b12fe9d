package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/fsacheck/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Validates the declarations and outputs a Mermaid flowchart (graph LR) of
the automaton. Unreachable states are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := cfg.Input
		if len(args) > 0 {
			input = args[0]
		}
		return cli.Graph(cmd.Context(), input, cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
