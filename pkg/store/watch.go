package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the persisted journal changed on disk, for example
// through another kokolog process.
type Event struct{}

// Watch streams change notifications for the journal key under basePath
// until ctx is cancelled. Callers should drain the returned channel; the
// channel is closed once ctx is done.
func Watch(ctx context.Context, basePath string) (<-chan Event, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer lags; the next refresh reads the
				// full collection anyway, and this keeps write bursts from
				// blocking the watcher goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a refresh to keep clients in
				// sync even when the change cannot be classified.
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != LogsKey {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so consumers redraw
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(send func(Event)) {
	t.mu.Lock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = false
	t.timer = nil
	t.mu.Unlock()

	if pending {
		send(Event{})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
