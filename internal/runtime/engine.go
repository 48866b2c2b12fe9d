package runtime

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/fsacheck/pkg/automaton"
	"github.com/aretw0/fsacheck/pkg/domain"
	"github.com/aretw0/fsacheck/pkg/report"
)

// Engine drives one automaton through ingestion and analysis.
// An Engine holds no per-run state and may be reused; every call to Run
// builds a fresh registry.
type Engine struct {
	logger *slog.Logger
	hooks  domain.Hooks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.Hooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine. Without WithLogger it logs nothing.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run ingests decl and analyses the resulting automaton.
// The first fatal error aborts the run and becomes the whole report.
func (e *Engine) Run(ctx context.Context, decl domain.Declarations) *report.Report {
	_, rep := e.Build(ctx, decl)
	return rep
}

// Build is Run that also returns the registry it filled. After a fatal
// error the registry holds whatever was ingested before the failure.
func (e *Engine) Build(ctx context.Context, decl domain.Declarations) (*automaton.Registry, *report.Report) {
	start := time.Now()
	r := &run{
		engine: e,
		ctx:    ctx,
		reg:    automaton.New(),
	}

	rep := r.execute(decl)

	e.logger.DebugContext(ctx, "validation finished",
		"outcome", rep.Outcome(),
		"warnings", len(rep.Warnings),
		"states", r.reg.Size(),
		"transitions", r.reg.TransitionCount(),
	)
	if e.hooks.OnReport != nil {
		e.hooks.OnReport(ctx, &domain.ReportEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventReport},
			Outcome:   rep.Outcome(),
			Warnings:  slices.Clone(rep.Warnings),
			Duration:  time.Since(start),
		})
	}
	return r.reg, rep
}

// run is the state of a single validation.
type run struct {
	engine   *Engine
	ctx      context.Context
	reg      *automaton.Registry
	warnings []domain.Warning
}

func (r *run) execute(decl domain.Declarations) *report.Report {
	phases := []struct {
		phase  domain.Phase
		tokens []string
		ingest func([]string) error
	}{
		{domain.PhaseStates, decl.States, r.ingestStates},
		{domain.PhaseAlphabet, decl.Alphabet, r.ingestAlphabet},
		{domain.PhaseInitial, decl.Initial, r.ingestInitial},
		{domain.PhaseFinals, decl.Finals, r.ingestFinals},
		{domain.PhaseTransitions, decl.Transitions, r.ingestTransitions},
	}

	for _, p := range phases {
		err := p.ingest(p.tokens)
		r.emitPhase(p.phase, len(p.tokens), err)
		if err != nil {
			// Warnings gathered so far are discarded with the run.
			r.engine.logger.DebugContext(r.ctx, "phase failed", "phase", p.phase, "error", err)
			return report.Failed(err)
		}
		r.engine.logger.DebugContext(r.ctx, "phase ingested", "phase", p.phase, "count", len(p.tokens))
	}

	rep := r.analyse()
	r.emitPhase(domain.PhaseAnalysis, 0, nil)
	return rep
}

func (r *run) emitPhase(phase domain.Phase, consumed int, err error) {
	if r.engine.hooks.OnPhase == nil {
		return
	}
	r.engine.hooks.OnPhase(r.ctx, &domain.PhaseEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventPhase},
		Phase:     phase,
		Consumed:  consumed,
		Err:       err,
	})
}

func (r *run) warn(w domain.Warning) {
	r.engine.logger.DebugContext(r.ctx, "warning recorded", "code", w.Code())
	r.warnings = append(r.warnings, w)
}

func (r *run) ingestStates(tokens []string) error {
	if len(tokens) == 0 {
		return domain.EmptyRequiredGroup(domain.GroupStates)
	}
	for _, id := range tokens {
		if err := r.reg.AddState(id); err != nil {
			return err
		}
	}
	return nil
}

// ingestAlphabet registers the symbols and seals the registry: both
// dimensions of the transition table are known from here on.
func (r *run) ingestAlphabet(tokens []string) error {
	if len(tokens) == 0 {
		return domain.EmptyRequiredGroup(domain.GroupAlphabet)
	}
	for _, id := range tokens {
		if err := r.reg.AddSymbol(id); err != nil {
			return err
		}
	}
	r.reg.Seal()
	return nil
}

// ingestInitial applies every token, so a second one fails as
// InitialAlreadySet rather than being ignored.
func (r *run) ingestInitial(tokens []string) error {
	if len(tokens) == 0 {
		return domain.EmptyRequiredGroup(domain.GroupInitial)
	}
	for _, id := range tokens {
		if err := r.reg.SetInitial(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) ingestFinals(tokens []string) error {
	if len(tokens) == 0 {
		r.warn(domain.WarnNoAcceptingState)
		return nil
	}
	for _, id := range tokens {
		if err := r.reg.AddFinal(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) ingestTransitions(tokens []string) error {
	if len(tokens) == 0 {
		return domain.MalformedInput()
	}
	for _, token := range tokens {
		t, err := domain.ParseTransition(token)
		if err != nil {
			return err
		}
		edge, err := r.reg.AddTransition(t)
		if err != nil {
			return err
		}
		if edge.Detached {
			return domain.DisjointStates(t)
		}
		// W3 is recorded for every flagged edge.
		if edge.Nondeterministic {
			r.warn(domain.WarnNondeterministic)
		}
	}
	return nil
}
