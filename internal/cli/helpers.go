package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/fsacheck/pkg/domain"
)

// ErrRejected is returned when a validation produced a fatal error report.
// The report itself has already been written; callers only need the exit code.
var ErrRejected = errors.New("automaton rejected")

// SignalContext returns a context that is cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "[fsacheck] "+format+"\n", args...)
}

// createDebugHooks logs every phase and report at debug level.
func createDebugHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnPhase: func(ctx context.Context, e *domain.PhaseEvent) {
			if e.Err != nil {
				logger.DebugContext(ctx, "phase failed", "phase", e.Phase, "consumed", e.Consumed, "err", e.Err)
				return
			}
			logger.DebugContext(ctx, "phase done", "phase", e.Phase, "consumed", e.Consumed)
		},
		OnReport: func(ctx context.Context, e *domain.ReportEvent) {
			logger.DebugContext(ctx, "report ready", "outcome", e.Outcome, "warnings", len(e.Warnings), "duration", e.Duration)
		},
	}
}

// combineHooks fans every event out to all hooks, in order.
func combineHooks(hooks ...domain.Hooks) domain.Hooks {
	return domain.Hooks{
		OnPhase: func(ctx context.Context, e *domain.PhaseEvent) {
			for _, h := range hooks {
				if h.OnPhase != nil {
					h.OnPhase(ctx, e)
				}
			}
		},
		OnReport: func(ctx context.Context, e *domain.ReportEvent) {
			for _, h := range hooks {
				if h.OnReport != nil {
					h.OnReport(ctx, e)
				}
			}
		},
	}
}
