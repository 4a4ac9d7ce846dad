package backlog

import "sort"

// Snapshot is the read-only state the pipeline operates on. Collections
// map id → entity and may contain nil entries (deleted or half-written
// rows); consumers must go through the Present* accessors, which filter
// absent values uniformly.
//
// Comments are indexed by CommentKey(targetType, targetID).
type Snapshot struct {
	App         App                   `json:"app" yaml:"app"`
	Epics       map[string]*Epic      `json:"epics" yaml:"epics"`
	Features    map[string]*Feature   `json:"features" yaml:"features"`
	UserStories map[string]*UserStory `json:"userStories" yaml:"userStories"`
	Tasks       map[string]*Task      `json:"tasks" yaml:"tasks"`
	Comments    map[string][]Comment  `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// present returns the non-nil values of a collection.
func present[T any](m map[string]*T) []*T {
	out := make([]*T, 0, len(m))
	for _, v := range m {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

// PresentEpics returns all non-nil epics ordered by id.
func (s *Snapshot) PresentEpics() []*Epic {
	out := present(s.Epics)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PresentFeatures returns all non-nil features ordered by id.
func (s *Snapshot) PresentFeatures() []*Feature {
	out := present(s.Features)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PresentUserStories returns all non-nil stories ordered by
// (developmentOrder, id).
func (s *Snapshot) PresentUserStories() []*UserStory {
	out := present(s.UserStories)
	sort.Slice(out, func(i, j int) bool {
		if out[i].DevelopmentOrder != out[j].DevelopmentOrder {
			return out[i].DevelopmentOrder < out[j].DevelopmentOrder
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// PresentTasks returns all non-nil tasks ordered by (priority, id).
func (s *Snapshot) PresentTasks() []*Task {
	out := present(s.Tasks)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Epic looks up an epic by id, treating nil entries as absent.
func (s *Snapshot) Epic(id string) *Epic {
	if e, ok := s.Epics[id]; ok {
		return e
	}
	return nil
}

// Feature looks up a feature by id, treating nil entries as absent.
func (s *Snapshot) Feature(id string) *Feature {
	if f, ok := s.Features[id]; ok {
		return f
	}
	return nil
}

// UserStory looks up a story by id, treating nil entries as absent.
func (s *Snapshot) UserStory(id string) *UserStory {
	if u, ok := s.UserStories[id]; ok {
		return u
	}
	return nil
}

// Task looks up a task by id, treating nil entries as absent.
func (s *Snapshot) Task(id string) *Task {
	if t, ok := s.Tasks[id]; ok {
		return t
	}
	return nil
}

// CommentsFor returns the comments attached to a single target.
func (s *Snapshot) CommentsFor(targetType TargetType, targetID string) []Comment {
	return s.Comments[CommentKey(targetType, targetID)]
}

// Index groups children by parent id. Parent pointers are the sole
// source of truth; the cached forward lists on the entities are never
// consulted. An Index is built once per resolution call and discarded.
type Index struct {
	FeaturesByEpic   map[string][]*Feature
	StoriesByFeature map[string][]*UserStory
	TasksByStory     map[string][]*Task
}

// BuildIndex computes the derived child views for the whole snapshot.
func (s *Snapshot) BuildIndex() *Index {
	idx := &Index{
		FeaturesByEpic:   make(map[string][]*Feature),
		StoriesByFeature: make(map[string][]*UserStory),
		TasksByStory:     make(map[string][]*Task),
	}
	for _, f := range s.PresentFeatures() {
		idx.FeaturesByEpic[f.ParentEpicID] = append(idx.FeaturesByEpic[f.ParentEpicID], f)
	}
	for _, u := range s.PresentUserStories() {
		idx.StoriesByFeature[u.ParentFeatureID] = append(idx.StoriesByFeature[u.ParentFeatureID], u)
	}
	for _, t := range s.PresentTasks() {
		idx.TasksByStory[t.ParentUserStoryID] = append(idx.TasksByStory[t.ParentUserStoryID], t)
	}
	return idx
}
