package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aretw0/fsacheck"
	"github.com/aretw0/fsacheck/internal/logging"
	"github.com/aretw0/fsacheck/internal/metrics"
	httpadapter "github.com/aretw0/fsacheck/pkg/adapters/http"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Port         int
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// NewServeHandler wires the validator, its metrics and the HTTP adapter.
func NewServeHandler(opts ServeOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	v := fsacheck.New(
		fsacheck.WithLogger(logger),
		fsacheck.WithHooks(combineHooks(m.Hooks(), createDebugHooks(logger))),
	)

	handlerOpts := []httpadapter.Option{
		httpadapter.WithLogger(logger),
		httpadapter.WithMetrics(reg),
	}
	if opts.MaxBodyBytes > 0 {
		handlerOpts = append(handlerOpts, httpadapter.WithMaxBodyBytes(opts.MaxBodyBytes))
	}
	return httpadapter.NewHandler(v, handlerOpts...)
}

// Serve runs the HTTP server until ctx is done, then shuts it down
// gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewServeHandler(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			closeErr := srv.Close()
			return errors.Join(fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err), closeErr)
		}
		return nil
	}
}
