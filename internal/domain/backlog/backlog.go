// Package backlog defines the four-level work-item hierarchy
// (Epic → Feature → UserStory → Task) together with the read-only
// snapshot model the export pipeline consumes.
package backlog

// App identifies the product the backlog belongs to.
type App struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// AcceptanceCriterion is a single ordered criterion attached to a
// Feature or UserStory.
type AcceptanceCriterion struct {
	Text string `json:"text" yaml:"text"`
}

// Epic is the top level of the hierarchy.
//
// FeatureIDs is a denormalized cache of owned features. The authoritative
// relationship is Feature.ParentEpicID; consumers must recompute children
// by filtering on parent pointers and never trust this list.
type Epic struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	Goal            string   `json:"goal" yaml:"goal"`
	SuccessCriteria string   `json:"successCriteria" yaml:"successCriteria"`
	FeatureIDs      []string `json:"featureIds,omitempty" yaml:"featureIds,omitempty"`
}

// Feature is a functional unit owned by an Epic.
type Feature struct {
	ID                 string                `json:"id" yaml:"id"`
	Title              string                `json:"title" yaml:"title"`
	Description        string                `json:"description" yaml:"description"`
	Details            string                `json:"details" yaml:"details"`
	AcceptanceCriteria []AcceptanceCriterion `json:"acceptanceCriteria,omitempty" yaml:"acceptanceCriteria,omitempty"`
	ParentEpicID       string                `json:"parentEpicId" yaml:"parentEpicId"`
	UserStoryIDs       []string              `json:"userStoryIds,omitempty" yaml:"userStoryIds,omitempty"`
}

// UserStory describes a capability from a user's point of view.
// DevelopmentOrder is used only for display ordering, not identity.
type UserStory struct {
	ID                 string                `json:"id" yaml:"id"`
	Title              string                `json:"title" yaml:"title"`
	Role               string                `json:"role" yaml:"role"`
	Action             string                `json:"action" yaml:"action"`
	Goal               string                `json:"goal" yaml:"goal"`
	Points             int                   `json:"points" yaml:"points"`
	AcceptanceCriteria []AcceptanceCriterion `json:"acceptanceCriteria,omitempty" yaml:"acceptanceCriteria,omitempty"`
	ParentFeatureID    string                `json:"parentFeatureId" yaml:"parentFeatureId"`
	TaskIDs            []string              `json:"taskIds,omitempty" yaml:"taskIds,omitempty"`
	DevelopmentOrder   int                   `json:"developmentOrder" yaml:"developmentOrder"`
}

// Task is the leaf level of the hierarchy.
//
// DependentTaskIDs lists tasks that must complete first. The list is
// informational only; the pipeline does not enforce ordering.
type Task struct {
	ID                string     `json:"id" yaml:"id"`
	Title             string     `json:"title" yaml:"title"`
	Details           string     `json:"details" yaml:"details"`
	Priority          int        `json:"priority" yaml:"priority"`
	Notes             string     `json:"notes" yaml:"notes"`
	Status            TaskStatus `json:"status,omitempty" yaml:"status,omitempty"`
	ParentUserStoryID string     `json:"parentUserStoryId" yaml:"parentUserStoryId"`
	DependentTaskIDs  []string   `json:"dependentTaskIds,omitempty" yaml:"dependentTaskIds,omitempty"`
}

// Sentence renders the story as a role/action/goal sentence.
func (s *UserStory) Sentence() string {
	if s.Role == "" && s.Action == "" && s.Goal == "" {
		return s.Title
	}
	out := "As a " + s.Role + ", I want to " + s.Action
	if s.Goal != "" {
		out += ", so that " + s.Goal
	}
	return out
}
