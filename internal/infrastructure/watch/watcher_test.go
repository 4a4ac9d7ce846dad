package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestBacklogWatcher_DetectsWrites(t *testing.T) {
	dir, err := os.MkdirTemp("", "handoff-watch-test")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "backlog.yaml")
	if err := os.WriteFile(path, []byte("app:\n  name: Demo\n"), 0600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	var changes atomic.Int32
	w, err := NewBacklogWatcher(path, 20*time.Millisecond, func() { changes.Add(1) })
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register, then touch the file and an
	// unrelated sibling.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("app:\n  name: Demo2\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0600); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	deadline := time.After(time.Second)
	for changes.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("no change callback within a second")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("run returned %v, want context.Canceled", err)
	}

	if got := changes.Load(); got != 1 {
		t.Errorf("callback fired %d times, want 1 (sibling writes must be ignored)", got)
	}
}
