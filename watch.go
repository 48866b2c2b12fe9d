package fsacheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/fsacheck/pkg/ports"
	"github.com/aretw0/fsacheck/pkg/report"
)

// Watch runs src through the validator once, then again every time src
// signals a change, until ctx is done. Each report is written to sink and
// passed to onReport when it is not nil.
//
// Failures to read the source are reported through onError and do not stop
// the loop, so a file that is briefly missing during an editor save is
// picked up again on the next change.
func (v *Validator) Watch(ctx context.Context, src ports.Source, sink ports.Sink,
	onReport func(*report.Report), onError func(error)) error {
	watchable, ok := src.(ports.Watchable)
	if !ok {
		return errors.New("source does not support watching")
	}

	changes, err := watchable.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch source: %w", err)
	}

	runOnce := func() {
		rep, err := v.Run(ctx, src, sink)
		if err != nil {
			v.logger.WarnContext(ctx, "validation run failed", "err", err)
			if onError != nil {
				onError(err)
			}
			return
		}
		if onReport != nil {
			onReport(rep)
		}
	}

	runOnce()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			v.logger.InfoContext(ctx, "change detected, validating again")
			runOnce()
		}
	}
}
