// Package backend watches the files a menu is built from and reports when
// they change.
package backend

import (
	"context"
	"os"
	"sync"
	"time"
)

// Event reports a change to a watched file, or a failure to stat it.
type Event struct {
	Path    string
	ModTime time.Time
	Size    int64
	Err     error
}

// Watcher polls a set of files at a fixed interval and publishes an event
// whenever one of them changes. The state seen at start is the baseline and
// is not reported.
type Watcher struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher takes the baseline of every path, then starts one poller per
// path.
func NewWatcher(interval time.Duration, paths ...string) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		w.wg.Add(1)
		go w.poll(stat(path), newThrottle(250*time.Millisecond))
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of change events. It is closed after Stop once
// every poller has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current stat completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(last Event, throttle *throttle) {
	defer w.wg.Done()

	path := last.Path
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}
		if !throttle.wait(w.ctx) {
			return
		}
		current := stat(path)
		if !changed(last, current) {
			continue
		}
		last = current
		select {
		case <-w.ctx.Done():
			return
		case w.events <- current:
		}
	}
}

func stat(path string) Event {
	info, err := os.Stat(path)
	if err != nil {
		return Event{Path: path, Err: err}
	}
	return Event{Path: path, ModTime: info.ModTime(), Size: info.Size()}
}

// changed compares two polls. A file that keeps failing the same way is not
// reported again.
func changed(prev, next Event) bool {
	if (prev.Err == nil) != (next.Err == nil) {
		return true
	}
	if next.Err != nil {
		return prev.Err.Error() != next.Err.Error()
	}
	return !prev.ModTime.Equal(next.ModTime) || prev.Size != next.Size
}
