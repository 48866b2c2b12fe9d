package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/fsacheck/internal/cli"
	"github.com/aretw0/fsacheck/internal/config"
	"github.com/aretw0/fsacheck/internal/logging"
)

var (
	cfgFile string
	cfg     config.Config
	logger  = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fsacheck",
	Short: "fsacheck validates finite-state automaton descriptions",
	Long: `fsacheck builds a finite-state automaton from five declarations
(states, alpha, init.st, fin.st, trans) and reports either a fatal error
or a completeness verdict with warnings.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// The report already carries the error text.
		if !errors.Is(err, cli.ErrRejected) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.fsacheck.yaml)")
	rootCmd.PersistentFlags().String("log-level", "off", "Log level: off, debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	logger, err = logging.FromConfig(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", "file", used)
	}
	return nil
}
