package generator

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/logger"
)

const watchDebouncePeriod = 500 * time.Millisecond

// Watcher regenerates a client's documentation whenever its module graph
// manifest changes. Rapid successive writes are debounced so an editor save
// triggers a single regeneration.
type Watcher struct {
	gen         *Generator
	clientDir   string
	outputDir   string
	serviceName string

	watcher       *fsnotify.Watcher
	mu            sync.Mutex
	debounceTimer *time.Timer
}

// NewWatcher creates a watcher for one client package. The manifest must
// exist when the watcher is created.
func NewWatcher(gen *Generator, clientDir, outputDir, serviceName string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	manifest := gen.ManifestPath(clientDir)
	if err := watcher.Add(manifest); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch manifest %s", manifest)
	}

	return &Watcher{
		gen:         gen,
		clientDir:   clientDir,
		outputDir:   outputDir,
		serviceName: serviceName,
		watcher:     watcher,
	}, nil
}

// Run generates once immediately, then blocks regenerating on manifest
// changes until ctx is cancelled. Regeneration failures are logged and
// watching continues; only the initial generation is fatal.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if _, err := w.gen.GenerateClient(w.clientDir, w.outputDir, w.serviceName); err != nil {
		return err
	}

	logger.Infow("Watching module graph manifest",
		"manifest", w.gen.ManifestPath(w.clientDir))

	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debugw("Manifest changed",
				"file", event.Name,
				"op", event.Op.String())
			w.scheduleRegenerate()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Watcher error",
				"error", err)
		}
	}
}

func (w *Watcher) scheduleRegenerate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(watchDebouncePeriod, func() {
		if _, err := w.gen.GenerateClient(w.clientDir, w.outputDir, w.serviceName); err != nil {
			logger.Errorw("Regeneration failed",
				"client", w.clientDir,
				"error", err)
		}
	})
}

func (w *Watcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}
