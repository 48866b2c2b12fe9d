package file

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/fsacheck/pkg/report"
)

// DefaultOutput is the report file written when no path is given.
const DefaultOutput = "result.txt"

// Sink writes the report text to a file, replacing previous content.
type Sink struct {
	Path string
}

// NewSink creates a file sink for path.
func NewSink(path string) *Sink {
	return &Sink{Path: path}
}

// WriteReport implements ports.Sink.
func (s *Sink) WriteReport(ctx context.Context, rep *report.Report) error {
	if err := os.WriteFile(s.Path, []byte(rep.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", s.Path, err)
	}
	return nil
}
