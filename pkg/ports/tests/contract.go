package tests

import (
	"context"
	"testing"

	"github.com/aretw0/fsacheck/pkg/domain"
	"github.com/aretw0/fsacheck/pkg/ports"
	"github.com/aretw0/fsacheck/pkg/report"
)

// SinkContractTest verifies that a sink stores the literal report text.
// readBack returns what the sink has persisted so far.
func SinkContractTest(t *testing.T, sink ports.Sink, readBack func() (string, error)) {
	t.Helper()
	ctx := context.Background()

	t.Run("WriteReport_Verdict", func(t *testing.T) {
		rep := &report.Report{Complete: true, Warnings: []domain.Warning{domain.WarnNoAcceptingState}}
		if err := sink.WriteReport(ctx, rep); err != nil {
			t.Fatalf("unexpected error writing report: %v", err)
		}
		got, err := readBack()
		if err != nil {
			t.Fatalf("unexpected error reading back: %v", err)
		}
		if got != rep.String() {
			t.Errorf("content mismatch. got %q, want %q", got, rep.String())
		}
	})

	t.Run("WriteReport_Error", func(t *testing.T) {
		rep := report.Failed(domain.MalformedInput())
		if err := sink.WriteReport(ctx, rep); err != nil {
			t.Fatalf("unexpected error writing report: %v", err)
		}
		got, err := readBack()
		if err != nil {
			t.Fatalf("unexpected error reading back: %v", err)
		}
		if got != "Error:\nE5: Input file is malformed" {
			t.Errorf("error report not verbatim: %q", got)
		}
	})
}

// SourceContractTest verifies that a source seeded with want returns it.
func SourceContractTest(t *testing.T, source ports.Source, want domain.Declarations) {
	t.Helper()

	t.Run("Declarations", func(t *testing.T) {
		got, err := source.Declarations(context.Background())
		if err != nil {
			t.Fatalf("unexpected error reading declarations: %v", err)
		}
		for _, label := range domain.Groups() {
			g, _ := got.Group(label)
			w, _ := want.Group(label)
			if len(g) != len(w) {
				t.Fatalf("group %s: got %v, want %v", label, g, w)
			}
			for i := range g {
				if g[i] != w[i] {
					t.Errorf("group %s[%d]: got %q, want %q", label, i, g[i], w[i])
				}
			}
		}
	})
}
