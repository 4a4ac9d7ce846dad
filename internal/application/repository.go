// Package application wires the export pipeline to the workspace
// repository and the audit trail.
package application

import (
	"github.com/felixgeelhaar/handoff/internal/domain/audit"
	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
	"github.com/felixgeelhaar/handoff/internal/export"
)

// WorkspaceRepository handles persistence of handoff artifacts in the
// .handoff/ directory.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveBacklog(snap *backlog.Snapshot) error
	LoadBacklog() (*backlog.Snapshot, error)
	SaveProfile(profile *export.ProjectProfile) error
	LoadProfile() (*export.ProjectProfile, error)
	RecordEvent(event audit.Event) error
	LoadEvents() ([]audit.Event, error)
}

// AuditLogger records pipeline actions to the audit trail.
type AuditLogger interface {
	Log(action string, actor string, metadata map[string]any) error
}
