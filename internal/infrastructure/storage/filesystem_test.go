package storage

import (
	"os"
	"testing"

	"github.com/felixgeelhaar/handoff/internal/domain/audit"
	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
	"github.com/felixgeelhaar/handoff/internal/export"
)

func newTestRepo(t *testing.T) *FilesystemRepository {
	t.Helper()
	dir, err := os.MkdirTemp("", "handoff-storage-test")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	repo := NewFilesystemRepository(dir)
	if err := repo.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return repo
}

func TestFilesystemRepository_BacklogRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	snap := &backlog.Snapshot{
		App: backlog.App{ID: "app", Name: "Demo"},
		Epics: map[string]*backlog.Epic{
			"E1": {ID: "E1", Title: "Accounts"},
		},
		Tasks: map[string]*backlog.Task{
			"T1": {ID: "T1", Title: "Add login form", Status: backlog.StatusInProgress},
		},
	}
	if err := repo.SaveBacklog(snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.LoadBacklog()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.App.Name != "Demo" {
		t.Errorf("app name = %q", loaded.App.Name)
	}
	if loaded.Tasks["T1"].Status != backlog.StatusInProgress {
		t.Errorf("task status = %q", loaded.Tasks["T1"].Status)
	}
	// Collections absent from the file come back as empty maps.
	if loaded.Features == nil || loaded.Comments == nil {
		t.Error("nil collections should be replaced with empty maps")
	}
}

func TestFilesystemRepository_LoadBacklogMissing(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.LoadBacklog(); err == nil {
		t.Fatal("expected error for missing backlog file")
	}
}

func TestFilesystemRepository_ProfileRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	// Missing profile is not an error.
	profile, err := repo.LoadProfile()
	if err != nil {
		t.Fatalf("load missing profile: %v", err)
	}
	if len(profile.TechStack) != 0 {
		t.Errorf("expected zero profile, got %+v", profile)
	}

	want := &export.ProjectProfile{TechStack: []string{"Go"}, CodeStyle: []string{"gofmt"}}
	if err := repo.SaveProfile(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.LoadProfile()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.TechStack) != 1 || got.TechStack[0] != "Go" {
		t.Errorf("unexpected profile: %+v", got)
	}
}

func TestFilesystemRepository_Events(t *testing.T) {
	repo := newTestRepo(t)

	events, err := repo.LoadEvents()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	for _, action := range []string{"export", "import"} {
		e := audit.Event{ID: action + "-1", Action: action, Actor: "cli"}
		e.Hash = e.CalculateHash()
		if err := repo.RecordEvent(e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	events, err = repo.LoadEvents()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Action != "export" || events[1].Action != "import" {
		t.Errorf("unexpected order: %s, %s", events[0].Action, events[1].Action)
	}
}

func TestFilesystemRepository_ResolvePath(t *testing.T) {
	repo := newTestRepo(t)

	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"backlog.yaml", false},
		{"", true},
		{"../escape.yaml", true},
		{"nested/file.yaml", true},
		{"/etc/passwd", true},
	}
	for _, tt := range tests {
		_, err := repo.ResolvePath(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ResolvePath(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
		}
	}
}
