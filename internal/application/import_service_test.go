package application

import (
	"testing"
)

const importJSON = `{
  "version": "1.0.0",
  "epics": [{"id": "E9", "title": "Billing"}],
  "features": [{"id": "F9", "title": "Invoices", "parentEpicId": "E9"}],
  "tasks": [{"id": "T9", "title": "Draft invoice model", "parentUserStoryId": "S9"}],
  "metadata": {"totalEpics": 1, "totalFeatures": 1, "totalUserStories": 0, "totalTasks": 1}
}`

func TestImportService_PreviewJSON(t *testing.T) {
	repo, auditSvc := newTestWorkspace(t)
	svc := NewImportService(repo, auditSvc)

	preview := svc.PreviewJSON(importJSON)
	if !preview.Valid {
		t.Fatalf("expected valid preview, errors: %v", preview.Errors)
	}
	if preview.Epics != 1 || preview.Features != 1 || preview.Tasks != 1 {
		t.Errorf("unexpected counts: %+v", preview)
	}

	bad := svc.PreviewJSON(`{"version": "1.0.0"}`)
	if bad.Valid || len(bad.Errors) == 0 {
		t.Errorf("expected invalid preview, got %+v", bad)
	}
}

func TestImportService_MergeJSON(t *testing.T) {
	repo, auditSvc := newTestWorkspace(t)
	seedBacklog(t, repo)
	svc := NewImportService(repo, auditSvc)

	preview, err := svc.MergeJSON(importJSON)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !preview.Valid {
		t.Fatalf("expected valid merge, errors: %v", preview.Errors)
	}

	snap, err := repo.LoadBacklog()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Epic("E9") == nil || snap.Task("T9") == nil {
		t.Error("imported entities not persisted")
	}
	// Pre-existing entities survive a merge.
	if snap.Epic("E1") == nil || snap.Task("T1") == nil {
		t.Error("merge should not drop existing entities")
	}

	events, err := auditSvc.GetTimeline()
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(events) != 1 || events[0].Action != "import" {
		t.Fatalf("unexpected timeline: %+v", events)
	}
}

func TestImportService_MergeJSON_OverwritesByID(t *testing.T) {
	repo, auditSvc := newTestWorkspace(t)
	seedBacklog(t, repo)
	svc := NewImportService(repo, auditSvc)

	text := `{"version": "1.0.0", "epics": [{"id": "E1", "title": "Renamed"}]}`
	if _, err := svc.MergeJSON(text); err != nil {
		t.Fatalf("merge: %v", err)
	}
	snap, err := repo.LoadBacklog()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Epic("E1").Title != "Renamed" {
		t.Errorf("epic title = %q, want Renamed", snap.Epic("E1").Title)
	}
}

func TestImportService_MergeJSON_InvalidLeavesBacklogUntouched(t *testing.T) {
	repo, auditSvc := newTestWorkspace(t)
	seedBacklog(t, repo)
	svc := NewImportService(repo, auditSvc)

	preview, err := svc.MergeJSON(`{"epics": []}`)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if preview.Valid {
		t.Fatal("expected invalid preview")
	}

	snap, err := repo.LoadBacklog()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Epics) != 1 {
		t.Errorf("invalid import must not modify the backlog: %d epics", len(snap.Epics))
	}
}

func TestImportService_MergeCSV(t *testing.T) {
	repo, auditSvc := newTestWorkspace(t)
	seedBacklog(t, repo)
	svc := NewImportService(repo, auditSvc)

	text := "Type,ID,Title,Description,Parent ID\n" +
		"task,T5,Add password reset,Email a reset link,S1\n" +
		"widget,W1,Unknown,,\n"

	preview, err := svc.MergeCSV(text)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !preview.Valid || preview.Tasks != 1 || preview.Skipped != 1 {
		t.Fatalf("unexpected preview: %+v", preview)
	}

	snap, err := repo.LoadBacklog()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	task := snap.Task("T5")
	if task == nil || task.Details != "Email a reset link" {
		t.Errorf("imported task not persisted: %+v", task)
	}
}
