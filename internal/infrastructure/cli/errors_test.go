package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantMsg  string
		wantHint string
	}{
		{
			name:     "not found",
			err:      &backlog.NotFoundError{Kind: backlog.TargetTask, ID: "T9"},
			wantMsg:  `task "T9" not found`,
			wantHint: "handoff stats",
		},
		{
			name:     "empty collection",
			err:      &backlog.EmptyCollectionError{Kind: backlog.TargetFeature, ID: "F1"},
			wantMsg:  `no tasks found for feature "F1"`,
			wantHint: "Nothing to export",
		},
		{
			name:     "invalid transition",
			err:      &backlog.TransitionError{TaskID: "T1", FromStatus: backlog.StatusDone, Event: "start"},
			wantMsg:  "cannot apply",
			wantHint: "reopen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			var cliErr *CLIError
			if !errors.As(mapped, &cliErr) {
				t.Fatalf("expected CLIError, got %T", mapped)
			}
			if !strings.Contains(cliErr.Message, tt.wantMsg) {
				t.Errorf("message %q should contain %q", cliErr.Message, tt.wantMsg)
			}
			if !strings.Contains(cliErr.Hint, tt.wantHint) {
				t.Errorf("hint %q should contain %q", cliErr.Hint, tt.wantHint)
			}
			if !errors.Is(mapped, tt.err) {
				t.Error("mapped error should unwrap to the original")
			}
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	if MapError(nil) != nil {
		t.Error("nil should map to nil")
	}
	plain := errors.New("boom")
	if MapError(plain) != plain {
		t.Error("unmapped errors should pass through unchanged")
	}
}
