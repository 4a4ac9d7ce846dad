package backlog

import "sort"

// TaskStatus is the lifecycle state of a Task. It is carried through
// CSV export/import in the Status column and only ever changed through
// the state machine in fsm.go.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusBlocked    TaskStatus = "blocked"
	StatusDone       TaskStatus = "done"
)

// transitions maps status → event → next status. Kept in sync with the
// statekit machine in fsm.go; the init check there panics on drift.
var transitions = map[TaskStatus]map[string]TaskStatus{
	StatusTodo: {
		"start": StatusInProgress,
		"block": StatusBlocked,
	},
	StatusInProgress: {
		"complete": StatusDone,
		"block":    StatusBlocked,
		"stop":     StatusTodo,
	},
	StatusBlocked: {
		"unblock": StatusTodo,
	},
	StatusDone: {
		"reopen": StatusTodo,
	},
}

// IsValid reports whether the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionWith reports whether the event is allowed from this status.
func (s TaskStatus) CanTransitionWith(event string) bool {
	_, ok := transitions[s][event]
	return ok
}

// ValidEvents returns the events allowed from this status, sorted.
func (s TaskStatus) ValidEvents() []string {
	events := make([]string, 0, len(transitions[s]))
	for e := range transitions[s] {
		events = append(events, e)
	}
	sort.Strings(events)
	return events
}

// IsComplete reports whether the task is finished.
func (s TaskStatus) IsComplete() bool {
	return s == StatusDone
}

// EffectiveStatus returns the task's status, defaulting to todo for
// tasks created before the status field existed.
func (t *Task) EffectiveStatus() TaskStatus {
	if t.Status == "" {
		return StatusTodo
	}
	return t.Status
}
