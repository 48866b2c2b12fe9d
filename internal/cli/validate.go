package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/fsacheck"
	"github.com/aretw0/fsacheck/internal/config"
	"github.com/aretw0/fsacheck/internal/logging"
	"github.com/aretw0/fsacheck/internal/presentation/tui"
	"github.com/aretw0/fsacheck/pkg/adapters/file"
	"github.com/aretw0/fsacheck/pkg/report"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	Input  string
	Output string
	Format string // config.FormatText or config.FormatJSON
	Watch  bool
	Quiet  bool // Skip echoing the report to Stdout
	Logger *slog.Logger
	Stdout *os.File
	Stderr *os.File
}

func (o *ValidateOptions) normalize() {
	if o.Input == "" {
		o.Input = file.DefaultInput
	}
	if o.Output == "" {
		o.Output = file.DefaultOutput
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Validate reads the declarations at opts.Input, writes the report to
// opts.Output and echoes it. It returns ErrRejected when the report is a
// fatal error. In watch mode it keeps validating on every change until ctx
// is done.
func Validate(ctx context.Context, opts ValidateOptions) error {
	opts.normalize()

	v := fsacheck.New(
		fsacheck.WithLogger(opts.Logger),
		fsacheck.WithHooks(createDebugHooks(opts.Logger)),
	)
	src := file.NewSource(opts.Input)
	sink := file.NewSink(opts.Output)

	if opts.Watch {
		printSystemMessage(opts.Stderr, "Watching '%s', writing '%s'. Press Ctrl+C to stop.", opts.Input, opts.Output)
		return v.Watch(ctx, src, sink,
			func(rep *report.Report) {
				if err := present(opts, rep); err != nil {
					opts.Logger.Warn("failed to print report", "err", err)
				}
			},
			func(err error) {
				printSystemMessage(opts.Stderr, "%v", err)
			},
		)
	}

	rep, err := v.Run(ctx, src, sink)
	if err != nil {
		return err
	}
	if err := present(opts, rep); err != nil {
		return err
	}
	if !rep.OK() {
		return ErrRejected
	}
	return nil
}

func present(opts ValidateOptions, rep *report.Report) error {
	if opts.Quiet {
		return nil
	}
	if opts.Format == config.FormatJSON {
		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	}
	return tui.NewPrinter(opts.Stdout).Print(rep)
}
