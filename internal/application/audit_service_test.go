package application

import "testing"

func TestAuditService_HashChain(t *testing.T) {
	repo, svc := newTestWorkspace(t)

	for _, action := range []string{"export", "import", "task.transition"} {
		if err := svc.Log(action, "cli", map[string]any{"n": action}); err != nil {
			t.Fatalf("log %s: %v", action, err)
		}
	}

	events, err := svc.GetTimeline()
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].PrevHash != "" {
		t.Errorf("first event prev hash = %q, want empty", events[0].PrevHash)
	}
	for i := 1; i < len(events); i++ {
		if events[i].PrevHash != events[i-1].Hash {
			t.Errorf("event %d: chain broken", i)
		}
	}

	violations, err := svc.VerifyIntegrity()
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("unexpected violations: %v", violations)
	}

	// Tamper with the middle event and re-verify.
	events[1].Action = "tampered"
	for _, e := range events {
		if err := repo.RecordEvent(e); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
	}
	violations, err = svc.VerifyIntegrity()
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if len(violations) == 0 {
		t.Error("tampering should be detected")
	}
}
