package populator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/anima-bridge/engine/core"
)

const DefaultDebounce = 250 * time.Millisecond

// Watch runs Populate every time the data file is written or created, until
// ctx is done. Bursts of events within Debounce trigger a single run.
// onReport, when set, receives the outcome of every run.
func (p *Populator) Watch(ctx context.Context, onReport func(Report, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors and ini writers often replace the file, so watch the directory.
	dir := filepath.Dir(p.store.Path())
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(p.store.Path())
	core.LogInfo("Watching %s for changes", target)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != target {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			core.LogDebug("Data file event: %s", e)
			timer.Reset(p.Debounce)

		case <-timer.C:
			report, err := p.Populate()
			if onReport != nil {
				onReport(report, err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			core.LogError(err.Error())

		case <-ctx.Done():
			return nil
		}
	}
}
