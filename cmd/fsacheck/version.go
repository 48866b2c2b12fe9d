package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/fsacheck"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fsacheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fsacheck version %s\n", strings.TrimSpace(fsacheck.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
