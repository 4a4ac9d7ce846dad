// Package export resolves backlog nodes into denormalized contexts and
// renders them into assistant-specific and generic interchange formats.
package export

import (
	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

// Context is the denormalized bundle a renderer consumes: the target
// task plus its resolved ancestors and comments. Any of the ancestor
// fields may be nil when the snapshot holds a dangling parent reference;
// renderers omit the corresponding level rather than failing.
type Context struct {
	App       backlog.App
	Task      *backlog.Task
	UserStory *backlog.UserStory
	Feature   *backlog.Feature
	Epic      *backlog.Epic
	Comments  []CommentGroup
}

// CommentGroup holds the comments attached to one node of the resolved
// chain, labeled by the owning node's title. Groups are ordered
// ancestor to descendant.
type CommentGroup struct {
	Label    string
	Comments []backlog.Comment
}

// Requirements resolves the context's acceptance criteria through the
// story → feature → synthesized fallback chain.
func (c *Context) Requirements() ([]string, backlog.RequirementSource) {
	return backlog.Requirements(c.Task, c.UserStory, c.Feature)
}

// ResolveTask builds the context for a single task. The task itself
// must exist; missing ancestors are tolerated and left nil.
func ResolveTask(snap *backlog.Snapshot, taskID string) (*Context, error) {
	task := snap.Task(taskID)
	if task == nil {
		return nil, &backlog.NotFoundError{Kind: backlog.TargetTask, ID: taskID}
	}
	return resolveChain(snap, task), nil
}

// resolveChain walks the parent pointers upward from a task and gathers
// comments for every node on the chain.
func resolveChain(snap *backlog.Snapshot, task *backlog.Task) *Context {
	ctx := &Context{App: snap.App, Task: task}

	ctx.UserStory = snap.UserStory(task.ParentUserStoryID)
	if ctx.UserStory != nil {
		ctx.Feature = snap.Feature(ctx.UserStory.ParentFeatureID)
	}
	if ctx.Feature != nil {
		ctx.Epic = snap.Epic(ctx.Feature.ParentEpicID)
	}

	if ctx.Epic != nil {
		addCommentGroup(ctx, snap, backlog.TargetEpic, ctx.Epic.ID, ctx.Epic.Title)
	}
	if ctx.Feature != nil {
		addCommentGroup(ctx, snap, backlog.TargetFeature, ctx.Feature.ID, ctx.Feature.Title)
	}
	if ctx.UserStory != nil {
		addCommentGroup(ctx, snap, backlog.TargetUserStory, ctx.UserStory.ID, ctx.UserStory.Title)
	}
	addCommentGroup(ctx, snap, backlog.TargetTask, task.ID, task.Title)

	return ctx
}

func addCommentGroup(ctx *Context, snap *backlog.Snapshot, tt backlog.TargetType, id, label string) {
	comments := snap.CommentsFor(tt, id)
	if len(comments) == 0 {
		return
	}
	ctx.Comments = append(ctx.Comments, CommentGroup{Label: label, Comments: comments})
}

// ResolveTargets resolves an export target into one context per
// descendant task, in deterministic order. For a task target the result
// has exactly one element. For story/feature/epic roots and TargetAll,
// descendants are collected by filtering on parent pointers via a
// per-call index; a root with zero descendant tasks yields an
// EmptyCollectionError.
func ResolveTargets(snap *backlog.Snapshot, targetType backlog.TargetType, targetID string) ([]*Context, error) {
	if targetType == backlog.TargetTask {
		ctx, err := ResolveTask(snap, targetID)
		if err != nil {
			return nil, err
		}
		return []*Context{ctx}, nil
	}

	idx := snap.BuildIndex()
	var tasks []*backlog.Task

	switch targetType {
	case backlog.TargetUserStory:
		if snap.UserStory(targetID) == nil {
			return nil, &backlog.NotFoundError{Kind: targetType, ID: targetID}
		}
		tasks = idx.TasksByStory[targetID]
	case backlog.TargetFeature:
		feature := snap.Feature(targetID)
		if feature == nil {
			return nil, &backlog.NotFoundError{Kind: targetType, ID: targetID}
		}
		for _, story := range idx.StoriesByFeature[targetID] {
			tasks = append(tasks, idx.TasksByStory[story.ID]...)
		}
	case backlog.TargetEpic:
		epic := snap.Epic(targetID)
		if epic == nil {
			return nil, &backlog.NotFoundError{Kind: targetType, ID: targetID}
		}
		for _, feature := range idx.FeaturesByEpic[targetID] {
			for _, story := range idx.StoriesByFeature[feature.ID] {
				tasks = append(tasks, idx.TasksByStory[story.ID]...)
			}
		}
	case backlog.TargetAll:
		tasks = snap.PresentTasks()
	default:
		return nil, &backlog.NotFoundError{Kind: targetType, ID: targetID}
	}

	if len(tasks) == 0 {
		id := targetID
		if targetType == backlog.TargetAll {
			id = ""
		}
		return nil, &backlog.EmptyCollectionError{Kind: targetType, ID: id}
	}

	contexts := make([]*Context, 0, len(tasks))
	for _, t := range tasks {
		contexts = append(contexts, resolveChain(snap, t))
	}
	return contexts, nil
}

// FeatureContext is the feature-oriented bundle consumed by the Cursor
// and v0 renderers: the feature, its resolved parent epic, and its
// descendant stories and tasks computed from parent pointers.
type FeatureContext struct {
	App      backlog.App
	Epic     *backlog.Epic
	Feature  *backlog.Feature
	Stories  []StoryView
	Comments []CommentGroup
}

// StoryView pairs a story with its derived task list.
type StoryView struct {
	Story *backlog.UserStory
	Tasks []*backlog.Task
}

// ResolveFeature builds a feature-level context for feature-oriented
// renderers. The feature must exist; a missing parent epic is tolerated.
func ResolveFeature(snap *backlog.Snapshot, featureID string) (*FeatureContext, error) {
	feature := snap.Feature(featureID)
	if feature == nil {
		return nil, &backlog.NotFoundError{Kind: backlog.TargetFeature, ID: featureID}
	}

	idx := snap.BuildIndex()
	fc := &FeatureContext{App: snap.App, Feature: feature}
	fc.Epic = snap.Epic(feature.ParentEpicID)

	for _, story := range idx.StoriesByFeature[featureID] {
		fc.Stories = append(fc.Stories, StoryView{Story: story, Tasks: idx.TasksByStory[story.ID]})
	}

	appendGroup := func(tt backlog.TargetType, id, label string) {
		comments := snap.CommentsFor(tt, id)
		if len(comments) > 0 {
			fc.Comments = append(fc.Comments, CommentGroup{Label: label, Comments: comments})
		}
	}
	if fc.Epic != nil {
		appendGroup(backlog.TargetEpic, fc.Epic.ID, fc.Epic.Title)
	}
	appendGroup(backlog.TargetFeature, feature.ID, feature.Title)
	for _, sv := range fc.Stories {
		appendGroup(backlog.TargetUserStory, sv.Story.ID, sv.Story.Title)
		for _, t := range sv.Tasks {
			appendGroup(backlog.TargetTask, t.ID, t.Title)
		}
	}
	return fc, nil
}
