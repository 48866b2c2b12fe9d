package fsacheck

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aretw0/fsacheck/internal/runtime"
	"github.com/aretw0/fsacheck/pkg/automaton"
	"github.com/aretw0/fsacheck/pkg/domain"
	"github.com/aretw0/fsacheck/pkg/ports"
	"github.com/aretw0/fsacheck/pkg/report"
)

// Validator is the high-level entry point of the library.
// It wraps the internal engine and is safe for concurrent use: every
// validation builds its own registry.
type Validator struct {
	engine *runtime.Engine
	hooks  domain.Hooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Validator.
type Option func(*Validator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(v *Validator) {
		v.hooks = hooks
	}
}

// New initializes a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}

	// Ensure logger is initialized so components can log unconditionally.
	if v.logger == nil {
		v.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	v.engine = runtime.NewEngine(
		runtime.WithLogger(v.logger),
		runtime.WithHooks(v.hooks),
	)
	return v
}

// Validate builds and analyses the automaton described by decl.
func (v *Validator) Validate(ctx context.Context, decl domain.Declarations) *report.Report {
	return v.engine.Run(ctx, decl)
}

// Inspect validates decl and also returns the automaton it built, for
// visualization and introspection tools.
func (v *Validator) Inspect(ctx context.Context, decl domain.Declarations) (*automaton.Registry, *report.Report) {
	return v.engine.Build(ctx, decl)
}

// Check reads declarations from src and validates them.
// A malformed document becomes the report; other source failures are
// returned as errors because no report can be produced for them.
func (v *Validator) Check(ctx context.Context, src ports.Source) (*report.Report, error) {
	decl, err := src.Declarations(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedInput) {
			v.logger.DebugContext(ctx, "declarations rejected", "err", err)
			return report.Failed(err), nil
		}
		return nil, err
	}
	return v.Validate(ctx, decl), nil
}

// Run checks src and writes the report to sink.
func (v *Validator) Run(ctx context.Context, src ports.Source, sink ports.Sink) (*report.Report, error) {
	rep, err := v.Check(ctx, src)
	if err != nil {
		return nil, err
	}
	if err := sink.WriteReport(ctx, rep); err != nil {
		return rep, err
	}
	v.logger.InfoContext(ctx, "report written", "outcome", rep.Outcome(), "warnings", len(rep.Warnings))
	return rep, nil
}

// Logger returns the logger the validator was configured with.
func (v *Validator) Logger() *slog.Logger {
	return v.logger
}
