package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/fsacheck/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an automaton description and write the report",
	Long: `Reads the declarations (default fsa.txt, or YAML for .yaml/.yml files),
writes the report to the output file (default result.txt) and prints it.
Exits with status 1 when the automaton is rejected with a fatal error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := cfg.Input
		if len(args) > 0 {
			input = args[0]
		}
		watch, _ := cmd.Flags().GetBool("watch")
		quiet, _ := cmd.Flags().GetBool("quiet")

		ctx, stop := cli.SignalContext(cmd.Context())
		defer stop()

		return cli.Validate(ctx, cli.ValidateOptions{
			Input:  input,
			Output: cfg.Output,
			Format: cfg.Format,
			Watch:  watch,
			Quiet:  quiet,
			Logger: logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("out", "o", "result.txt", "File the report is written to")
	validateCmd.Flags().StringP("format", "f", "text", "Console output format: text or json")
	validateCmd.Flags().BoolP("watch", "w", false, "Validate again whenever the input file changes")
	validateCmd.Flags().BoolP("quiet", "q", false, "Only write the report file")

	_ = viper.BindPFlag("output", validateCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("format", validateCmd.Flags().Lookup("format"))
}
