package application

import (
	"fmt"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

// TaskService is the small editing surface around task status: every
// change goes through the state machine so invalid transitions are
// rejected before anything is persisted.
type TaskService struct {
	repo  WorkspaceRepository
	audit AuditLogger
}

func NewTaskService(repo WorkspaceRepository, audit AuditLogger) *TaskService {
	return &TaskService{repo: repo, audit: audit}
}

// Transition applies an event to a task's status and persists the
// result. Returns the new status.
func (s *TaskService) Transition(taskID, event string) (backlog.TaskStatus, error) {
	snap, err := s.repo.LoadBacklog()
	if err != nil {
		return "", fmt.Errorf("load backlog: %w", err)
	}

	task := snap.Task(taskID)
	if task == nil {
		return "", &backlog.NotFoundError{Kind: backlog.TargetTask, ID: taskID}
	}

	sm, err := backlog.NewTaskStateMachine(task.EffectiveStatus(), taskID)
	if err != nil {
		return "", err
	}
	if err := sm.Transition(event); err != nil {
		return "", err
	}

	task.Status = sm.Current()
	if err := s.repo.SaveBacklog(snap); err != nil {
		return "", fmt.Errorf("save backlog: %w", err)
	}

	_ = s.audit.Log("task.transition", "cli", map[string]any{
		"task":   taskID,
		"event":  event,
		"status": string(task.Status),
	})

	return task.Status, nil
}
