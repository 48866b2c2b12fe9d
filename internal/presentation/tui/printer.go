package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/fsacheck/pkg/report"
)

// Mode selects how a report is shown to a human.
type Mode int

const (
	ModePlain    Mode = iota // Exact sink text
	ModeColor                // Sink text with coloured verdict and errors
	ModeMarkdown             // Rendered markdown document
)

// DetectMode picks the richest mode f supports.
func DetectMode(f *os.File) Mode {
	if !IsTerminal(f) {
		return ModePlain
	}
	if termenv.NewOutput(f).Profile == termenv.Ascii {
		return ModePlain
	}
	return ModeMarkdown
}

// Printer writes reports for humans.
type Printer struct {
	Out      io.Writer
	Mode     Mode
	Profile  termenv.Profile
	Renderer func(string) (string, error)
}

// NewPrinter creates a printer for f with an auto-detected mode.
func NewPrinter(f *os.File) *Printer {
	p := &Printer{
		Out:     f,
		Mode:    DetectMode(f),
		Profile: termenv.NewOutput(f).Profile,
	}
	if p.Mode == ModeMarkdown {
		p.Renderer = NewRenderer()
	}
	return p
}

// Print writes rep in the printer's mode.
func (p *Printer) Print(rep *report.Report) error {
	var text string
	switch p.Mode {
	case ModeMarkdown:
		if p.Renderer == nil {
			p.Renderer = NewRenderer()
		}
		rendered, err := p.Renderer(rep.Markdown())
		if err != nil {
			text = Colorize(rep, p.Profile)
		} else {
			text = rendered
		}
	case ModeColor:
		text = Colorize(rep, p.Profile)
	default:
		text = rep.String()
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := fmt.Fprint(p.Out, text)
	return err
}

// Colorize returns the sink text of rep with the verdict or error lines
// coloured for profile. An Ascii profile returns the text unchanged.
func Colorize(rep *report.Report, profile termenv.Profile) string {
	lines := strings.Split(strings.TrimSuffix(rep.String(), "\n"), "\n")

	var color termenv.Color
	switch {
	case !rep.OK():
		color = profile.Color("#ef4444")
	case rep.Complete:
		color = profile.Color("#22c55e")
	default:
		color = profile.Color("#eab308")
	}

	var sb strings.Builder
	for i, line := range lines {
		switch {
		case !rep.OK():
			sb.WriteString(profile.String(line).Foreground(color).Bold().String())
		case i == 0:
			sb.WriteString(profile.String(line).Foreground(color).Bold().String())
		case line == report.WarningHeader:
			sb.WriteString(profile.String(line).Underline().String())
		default:
			sb.WriteString(profile.String(line).Foreground(profile.Color("#f59e0b")).String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
