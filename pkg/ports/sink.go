package ports

import (
	"context"

	"github.com/aretw0/fsacheck/pkg/report"
)

// Sink accepts the terminal report of a run.
type Sink interface {
	WriteReport(ctx context.Context, rep *report.Report) error
}
