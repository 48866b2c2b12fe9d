// Package report holds the terminal outcome of a validation run and its
// renderings for files, terminals and JSON clients.
package report

import (
	"encoding/json"
	"strings"

	"github.com/aretw0/fsacheck/pkg/domain"
)

const (
	VerdictComplete   = "FSA is complete"
	VerdictIncomplete = "FSA is incomplete"
	WarningHeader     = "Warning:"
)

// Report is either a single fatal error or a verdict with warnings.
type Report struct {
	Err      error
	Complete bool
	Warnings []domain.Warning // Sorted ascending by text
}

// Failed builds the report of an aborted run.
func Failed(err error) *Report {
	return &Report{Err: err}
}

// OK reports whether the run reached a verdict.
func (r *Report) OK() bool {
	return r.Err == nil
}

// Verdict returns the completeness line, or "" for a failed run.
func (r *Report) Verdict() string {
	switch {
	case r.Err != nil:
		return ""
	case r.Complete:
		return VerdictComplete
	default:
		return VerdictIncomplete
	}
}

// String renders the report exactly as it is written to the output sink.
func (r *Report) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	var sb strings.Builder
	sb.WriteString(r.Verdict())
	sb.WriteString("\n")
	if len(r.Warnings) > 0 {
		sb.WriteString(WarningHeader)
		sb.WriteString("\n")
		for _, w := range r.Warnings {
			sb.WriteString(w.String())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Markdown renders the report for terminal display.
func (r *Report) Markdown() string {
	var sb strings.Builder
	if r.Err != nil {
		sb.WriteString("# ❌ Validation failed\n\n")
		for _, line := range strings.Split(r.Err.Error(), "\n") {
			sb.WriteString("> " + line + "\n")
		}
		return sb.String()
	}

	sb.WriteString("# ")
	if r.Complete {
		sb.WriteString("✅ ")
	} else {
		sb.WriteString("⚠️ ")
	}
	sb.WriteString(r.Verdict())
	sb.WriteString("\n")
	if len(r.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, w := range r.Warnings {
			sb.WriteString("- `" + w.Code() + "` " + strings.TrimPrefix(w.String(), w.Code()+": ") + "\n")
		}
	}
	return sb.String()
}

// Document is the JSON shape of a report.
type Document struct {
	OK       bool     `json:"ok"`
	Verdict  string   `json:"verdict,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
	Code     string   `json:"code,omitempty"`
	Kind     string   `json:"kind,omitempty"`
	Text     string   `json:"text"`
}

// Document converts the report into its JSON shape.
func (r *Report) Document() Document {
	doc := Document{
		OK:      r.OK(),
		Verdict: r.Verdict(),
		Text:    r.String(),
	}
	for _, w := range r.Warnings {
		doc.Warnings = append(doc.Warnings, w.String())
	}
	if r.Err != nil {
		doc.Error = r.Err.Error()
		if vErr, ok := domain.AsValidationError(r.Err); ok {
			doc.Code = vErr.Code
			doc.Kind = vErr.Kind.Error()
		}
	}
	return doc
}

func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Document())
}

// Outcome is a short label for metrics and logs.
func (r *Report) Outcome() string {
	if r.Err == nil {
		if r.Complete {
			return "complete"
		}
		return "incomplete"
	}
	if vErr, ok := domain.AsValidationError(r.Err); ok {
		return strings.ReplaceAll(vErr.Kind.Error(), " ", "_")
	}
	return "error"
}
