package backend

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte("items: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := NewWatcher(10*time.Millisecond, path)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event before any change: %#v", evt)
	case <-time.After(50 * time.Millisecond):
	}

	later := time.Now().Add(time.Minute)
	if err := os.WriteFile(path, []byte("items:\n  - text: File\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	select {
	case evt := <-w.Events():
		if evt.Path != path || evt.Err != nil {
			t.Fatalf("unexpected event %#v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change event")
	}
}

func TestWatcherReportsRemoval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<ul></ul>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := NewWatcher(10*time.Millisecond, path)
	defer w.Stop()

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	select {
	case evt := <-w.Events():
		if !errors.Is(evt.Err, os.ErrNotExist) {
			t.Fatalf("expected not-exist error, got %#v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a removal event")
	}
}

func TestWatcherClosesEventsAfterStop(t *testing.T) {
	w := NewWatcher(time.Hour, "", filepath.Join(t.TempDir(), "absent"))
	w.Stop()
	w.Wait()
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("expected events channel to close")
	}
}

func TestChanged(t *testing.T) {
	now := time.Now()
	base := Event{ModTime: now, Size: 10}
	if changed(base, base) {
		t.Fatal("identical polls are not a change")
	}
	if !changed(base, Event{ModTime: now, Size: 11}) {
		t.Fatal("size change is a change")
	}
	failing := Event{Err: errors.New("gone")}
	if !changed(base, failing) || changed(failing, Event{Err: errors.New("gone")}) {
		t.Fatal("only the first failure is a change")
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	ctx := context.Background()
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	if !th.wait(ctx) || !th.wait(ctx) {
		t.Fatal("expected both calls to proceed")
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected second call to wait, took %s", elapsed)
	}
	var nilThrottle *throttle
	if !nilThrottle.wait(ctx) {
		t.Fatal("expected nil throttle to proceed")
	}
}

func TestThrottleStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	th := newThrottle(time.Hour)
	if !th.wait(ctx) {
		t.Fatal("expected first call to proceed")
	}
	cancel()
	if th.wait(ctx) {
		t.Fatal("expected cancelled wait to stop")
	}
}
