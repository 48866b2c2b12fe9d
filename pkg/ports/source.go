package ports

import (
	"context"

	"github.com/aretw0/fsacheck/pkg/domain"
)

// Source produces the declarations of one automaton.
type Source interface {
	// Declarations reads and decodes the declaration groups.
	// A structural failure is returned as a domain.ErrMalformedInput error;
	// any other error means the source itself could not be read.
	Declarations(ctx context.Context) (domain.Declarations, error)
}

// Watchable is implemented by sources that can signal changes of their
// backing document.
type Watchable interface {
	// Watch returns a channel that is signaled when the source changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
