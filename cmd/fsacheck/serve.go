package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/fsacheck/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Exposes the validator over HTTP:
  POST /validate  validate a text, YAML or JSON document
  GET  /healthz   liveness probe
  GET  /metrics   Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cli.SignalContext(cmd.Context())
		defer stop()

		return cli.Serve(ctx, cli.ServeOptions{
			Port:         cfg.Serve.Port,
			MaxBodyBytes: cfg.Serve.MaxBodyBytes,
			Logger:       logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	_ = viper.BindPFlag("serve.port", serveCmd.Flags().Lookup("port"))
}
