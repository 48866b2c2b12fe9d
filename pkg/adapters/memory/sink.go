package memory

import (
	"context"
	"sync"

	"github.com/aretw0/fsacheck/pkg/report"
)

// Sink keeps every report it receives.
// Safe for concurrent use.
type Sink struct {
	reports []*report.Report
	mu      sync.RWMutex
}

// NewSink creates an empty in-memory sink.
func NewSink() *Sink {
	return &Sink{}
}

// WriteReport implements ports.Sink.
func (s *Sink) WriteReport(ctx context.Context, rep *report.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, rep)
	return nil
}

// Last returns the most recent report, or nil.
func (s *Sink) Last() *report.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.reports) == 0 {
		return nil
	}
	return s.reports[len(s.reports)-1]
}

// Len returns how many reports were written.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}
