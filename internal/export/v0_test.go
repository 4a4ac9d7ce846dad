package export

import (
	"strings"
	"testing"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

func TestRenderV0Spec(t *testing.T) {
	snap := testSnapshot()
	fc, err := ResolveFeature(snap, "F1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	out := RenderV0Spec(fc, DefaultV0Options())
	for _, want := range []string{
		"# UI Specification: User auth",
		"## Visual Spec",
		"- Must work",
		"## States",
		"## Responsive Behavior",
		"## Interactions",
		"- As a user, I want to log in, so that access my data",
		"## Accessibility",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderV0Spec_Toggles(t *testing.T) {
	snap := testSnapshot()
	fc, err := ResolveFeature(snap, "F1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	opts := DefaultV0Options()
	opts.IncludeStates = false
	opts.IncludeAccessibility = false
	out := RenderV0Spec(fc, opts)
	if strings.Contains(out, "## States") || strings.Contains(out, "## Accessibility") {
		t.Errorf("disabled sections should be omitted:\n%s", out)
	}
}

func TestRenderV0Spec_OmitsEmptyVisualSpec(t *testing.T) {
	fc := &FeatureContext{
		App:     backlog.App{Name: "Demo"},
		Feature: &backlog.Feature{ID: "F1", Title: "Bare"},
	}
	out := RenderV0Spec(fc, DefaultV0Options())
	if strings.Contains(out, "## Visual Spec") {
		t.Errorf("visual spec with no data should be omitted:\n%s", out)
	}
	if strings.Contains(out, "## Interactions") {
		t.Errorf("interactions with no stories should be omitted:\n%s", out)
	}
}

func TestRenderV0Prompt(t *testing.T) {
	snap := testSnapshot()
	fc, err := ResolveFeature(snap, "F1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	out := RenderV0Prompt(fc)
	if !strings.HasPrefix(out, "Create a `User auth` component for the Demo app.") {
		t.Fatalf("unexpected opening:\n%s", out)
	}
	if !strings.Contains(out, "Requirements:\n- Must work") {
		t.Errorf("missing feature requirements:\n%s", out)
	}
	if !strings.HasSuffix(out, v0RecommendStyle+"\n"+v0RecommendResponsive+"\n") {
		t.Errorf("missing fixed closing lines:\n%s", out)
	}
}

func TestRenderV0Prompt_NoFallback(t *testing.T) {
	// Story criteria never leak into the prompt; only the feature's own
	// criteria are used.
	snap := testSnapshot()
	snap.Features["F1"].AcceptanceCriteria = nil
	snap.UserStories["S1"].AcceptanceCriteria = []backlog.AcceptanceCriterion{{Text: "Story-only"}}

	fc, err := ResolveFeature(snap, "F1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	out := RenderV0Prompt(fc)
	if strings.Contains(out, "Requirements:") || strings.Contains(out, "Story-only") {
		t.Errorf("prompt should have no requirements block:\n%s", out)
	}
}
