package memory

import (
	"context"

	"github.com/aretw0/fsacheck/internal/compiler"
	"github.com/aretw0/fsacheck/pkg/domain"
)

// Source serves declarations held in memory.
type Source struct {
	decl *domain.Declarations
	name string
	data []byte
}

// NewSource serves already decoded declarations.
func NewSource(decl domain.Declarations) *Source {
	return &Source{decl: &decl}
}

// NewDocumentSource serves a raw document. name only selects the format
// (e.g. "fsa.yaml"); it is never opened.
func NewDocumentSource(name string, data []byte) *Source {
	return &Source{name: name, data: data}
}

// Declarations implements ports.Source.
func (s *Source) Declarations(ctx context.Context) (domain.Declarations, error) {
	if s.decl != nil {
		return *s.decl, nil
	}
	return compiler.Parse(s.name, s.data)
}
