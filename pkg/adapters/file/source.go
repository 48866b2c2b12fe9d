package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/fsacheck/internal/compiler"
	"github.com/aretw0/fsacheck/pkg/domain"
)

// DefaultInput is the declaration file read when no path is given.
const DefaultInput = "fsa.txt"

// Source reads declarations from a file on disk.
// The format (bracketed text or YAML) follows the file extension.
type Source struct {
	Path string

	// Debounce coalesces bursts of file events in Watch. Zero uses 100ms.
	Debounce time.Duration
}

// NewSource creates a file source for path.
func NewSource(path string) *Source {
	return &Source{Path: path}
}

// Declarations implements ports.Source.
func (s *Source) Declarations(ctx context.Context) (domain.Declarations, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return domain.Declarations{}, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return compiler.Parse(s.Path, data)
}

// Watch implements ports.Watchable. Editors often replace files instead of
// writing them in place, so the parent directory is watched and events are
// filtered by name.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	abs, err := filepath.Abs(s.Path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	debounce := s.Debounce
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-fire:
				fire = nil
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
