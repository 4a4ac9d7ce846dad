package export

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

func testSnapshot() *backlog.Snapshot {
	return &backlog.Snapshot{
		App: backlog.App{ID: "app", Name: "Demo", Description: "A demo product"},
		Epics: map[string]*backlog.Epic{
			"E1": {ID: "E1", Title: "Accounts", Goal: "Let users manage their accounts"},
		},
		Features: map[string]*backlog.Feature{
			"F1": {ID: "F1", Title: "User auth", ParentEpicID: "E1",
				AcceptanceCriteria: []backlog.AcceptanceCriterion{{Text: "Must work"}}},
		},
		UserStories: map[string]*backlog.UserStory{
			"S1": {ID: "S1", Title: "Login", Role: "user", Action: "log in", Goal: "access my data", ParentFeatureID: "F1"},
		},
		Tasks: map[string]*backlog.Task{
			"T1": {ID: "T1", Title: "Add login form", ParentUserStoryID: "S1"},
			"T2": {ID: "T2", Title: "Wire session cookie", ParentUserStoryID: "S1", Priority: 1},
		},
	}
}

func TestResolveTask(t *testing.T) {
	snap := testSnapshot()
	ctx, err := ResolveTask(snap, "T1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ctx.Task.ID != "T1" || ctx.UserStory.ID != "S1" || ctx.Feature.ID != "F1" || ctx.Epic.ID != "E1" {
		t.Fatalf("unexpected chain: %+v", ctx)
	}
}

func TestResolveTask_NotFound(t *testing.T) {
	_, err := ResolveTask(testSnapshot(), "missing")
	if !errors.Is(err, backlog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveTask_DanglingParents(t *testing.T) {
	snap := testSnapshot()
	snap.Tasks["orphan"] = &backlog.Task{ID: "orphan", Title: "Orphan", ParentUserStoryID: "gone"}

	ctx, err := ResolveTask(snap, "orphan")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ctx.UserStory != nil || ctx.Feature != nil || ctx.Epic != nil {
		t.Fatal("dangling parents should resolve to nil, not fail")
	}
	reqs, source := ctx.Requirements()
	if source != backlog.SourceSynthesized || reqs[0] != "Implement Orphan" {
		t.Errorf("unexpected requirements: %v (%s)", reqs, source)
	}
}

func TestResolveTask_CommentOrder(t *testing.T) {
	snap := testSnapshot()
	snap.Comments = map[string][]backlog.Comment{
		backlog.CommentKey(backlog.TargetTask, "T1"):    {{ID: "c2", Body: "task note"}},
		backlog.CommentKey(backlog.TargetEpic, "E1"):    {{ID: "c1", Body: "epic note"}},
		backlog.CommentKey(backlog.TargetFeature, "F1"): {{ID: "c3", Body: "feature note"}},
	}

	ctx, err := ResolveTask(snap, "T1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(ctx.Comments) != 3 {
		t.Fatalf("expected 3 comment groups, got %d", len(ctx.Comments))
	}
	// Groups are ordered ancestor to descendant.
	if ctx.Comments[0].Label != "Accounts" || ctx.Comments[1].Label != "User auth" || ctx.Comments[2].Label != "Add login form" {
		t.Errorf("unexpected group order: %q, %q, %q",
			ctx.Comments[0].Label, ctx.Comments[1].Label, ctx.Comments[2].Label)
	}
}

func TestResolveTargets(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name       string
		targetType backlog.TargetType
		targetID   string
		wantTasks  []string
	}{
		{"single task", backlog.TargetTask, "T1", []string{"T1"}},
		{"story expands to tasks", backlog.TargetUserStory, "S1", []string{"T1", "T2"}},
		{"feature expands to tasks", backlog.TargetFeature, "F1", []string{"T1", "T2"}},
		{"epic expands to tasks", backlog.TargetEpic, "E1", []string{"T1", "T2"}},
		{"all tasks", backlog.TargetAll, "", []string{"T1", "T2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctxs, err := ResolveTargets(snap, tt.targetType, tt.targetID)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if len(ctxs) != len(tt.wantTasks) {
				t.Fatalf("got %d contexts, want %d", len(ctxs), len(tt.wantTasks))
			}
			for i, id := range tt.wantTasks {
				if ctxs[i].Task.ID != id {
					t.Errorf("context %d: task %s, want %s", i, ctxs[i].Task.ID, id)
				}
			}
		})
	}
}

func TestResolveTargets_Errors(t *testing.T) {
	snap := testSnapshot()
	snap.Features["F2"] = &backlog.Feature{ID: "F2", Title: "Empty", ParentEpicID: "E1"}

	if _, err := ResolveTargets(snap, backlog.TargetFeature, "nope"); !errors.Is(err, backlog.ErrNotFound) {
		t.Errorf("missing root: expected ErrNotFound, got %v", err)
	}
	if _, err := ResolveTargets(snap, backlog.TargetFeature, "F2"); !errors.Is(err, backlog.ErrEmptyCollection) {
		t.Errorf("childless root: expected ErrEmptyCollection, got %v", err)
	}

	_, err := ResolveTargets(&backlog.Snapshot{}, backlog.TargetAll, "")
	var ece *backlog.EmptyCollectionError
	if !errors.As(err, &ece) {
		t.Fatalf("expected EmptyCollectionError, got %v", err)
	}
	if ece.Error() != "no tasks found in the backlog" {
		t.Errorf("unexpected message: %q", ece.Error())
	}
}

func TestResolveFeature(t *testing.T) {
	snap := testSnapshot()
	fc, err := ResolveFeature(snap, "F1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if fc.Epic == nil || fc.Epic.ID != "E1" {
		t.Fatal("expected resolved epic")
	}
	if len(fc.Stories) != 1 || fc.Stories[0].Story.ID != "S1" || len(fc.Stories[0].Tasks) != 2 {
		t.Fatalf("unexpected stories: %+v", fc.Stories)
	}

	if _, err := ResolveFeature(snap, "nope"); !errors.Is(err, backlog.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
