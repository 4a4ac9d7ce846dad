package backlog

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants for statekit integration. These must remain untyped
// string constants for statekit.StateID compatibility and are kept in
// sync with the TaskStatus values in status.go.
const (
	stateTodo       = "todo"
	stateInProgress = "in_progress"
	stateBlocked    = "blocked"
	stateDone       = "done"
)

func init() {
	stateMap := map[string]TaskStatus{
		stateTodo:       StatusTodo,
		stateInProgress: StatusInProgress,
		stateBlocked:    StatusBlocked,
		stateDone:       StatusDone,
	}
	for fsmState, status := range stateMap {
		if fsmState != string(status) {
			panic(fmt.Sprintf("FSM state %q does not match TaskStatus %q - constants are out of sync", fsmState, status))
		}
	}
}

// TaskContext carries state data through the machine.
type TaskContext struct {
	TaskID string
}

// TaskStateMachine validates task status transitions.
type TaskStateMachine struct {
	taskID      string
	interpreter *statekit.Interpreter[TaskContext]
}

// NewTaskStateMachine builds a machine positioned at initialStatus.
func NewTaskStateMachine(initialStatus TaskStatus, taskID string) (*TaskStateMachine, error) {
	if !initialStatus.IsValid() {
		return nil, fmt.Errorf("unknown task status %q", initialStatus)
	}

	builder := statekit.NewMachine[TaskContext]("task-machine").
		WithInitial(statekit.StateID(initialStatus)).
		WithContext(TaskContext{TaskID: taskID})

	builder.State(stateTodo).
		On("start").Target(stateInProgress).
		On("block").Target(stateBlocked).
		Done()

	builder.State(stateInProgress).
		On("complete").Target(stateDone).
		On("block").Target(stateBlocked).
		On("stop").Target(stateTodo).
		Done()

	builder.State(stateBlocked).
		On("unblock").Target(stateTodo).
		Done()

	builder.State(stateDone).
		On("reopen").Target(stateTodo).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &TaskStateMachine{taskID: taskID, interpreter: interpreter}, nil
}

// Transition attempts to apply an event, returning a TransitionError
// when the event is not valid for the current state.
func (sm *TaskStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before == after && !before.CanTransitionWith(event) {
		return &TransitionError{TaskID: sm.taskID, FromStatus: before, Event: event}
	}
	return nil
}

// Current returns the machine's current status.
func (sm *TaskStateMachine) Current() TaskStatus {
	return TaskStatus(sm.interpreter.State().Value)
}

// ValidEvents returns the events allowed from the current state.
func (sm *TaskStateMachine) ValidEvents() []string {
	return sm.Current().ValidEvents()
}
