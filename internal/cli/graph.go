package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fsacheck"
	"github.com/aretw0/fsacheck/internal/logging"
	"github.com/aretw0/fsacheck/internal/presentation/graph"
	"github.com/aretw0/fsacheck/internal/runtime"
	"github.com/aretw0/fsacheck/pkg/adapters/file"
)

// Graph validates the declarations at input and writes a Mermaid diagram of
// the automaton to w. Unreachable states are highlighted.
func Graph(ctx context.Context, input string, w io.Writer, logger *slog.Logger) error {
	if input == "" {
		input = file.DefaultInput
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	decl, err := file.NewSource(input).Declarations(ctx)
	if err != nil {
		return err
	}

	v := fsacheck.New(fsacheck.WithLogger(logger))
	reg, rep := v.Inspect(ctx, decl)
	if !rep.OK() {
		return fmt.Errorf("%w: %w", ErrRejected, rep.Err)
	}

	overlay := &graph.GraphOverlay{}
	visited := runtime.Reachable(reg)
	for i, id := range reg.States() {
		if !visited[i] {
			overlay.Unreachable = append(overlay.Unreachable, id)
		}
	}

	_, err = fmt.Fprint(w, graph.GenerateMermaid(reg, overlay))
	return err
}
