package backlog

import "time"

// TargetType names the entity level a comment or export target refers to.
type TargetType string

const (
	TargetEpic      TargetType = "epic"
	TargetFeature   TargetType = "feature"
	TargetUserStory TargetType = "userStory"
	TargetTask      TargetType = "task"
	// TargetAll selects every task in the snapshot as a bulk-export root.
	TargetAll TargetType = "all"
)

// CommentStatus is the review state of a comment.
type CommentStatus string

const (
	CommentOpen     CommentStatus = "open"
	CommentResolved CommentStatus = "resolved"
)

// Comment annotates a single entity. Comments are never owned by the
// entity they annotate; they live in a separate append-only collection
// indexed by CommentKey.
type Comment struct {
	ID         string        `json:"id" yaml:"id"`
	TargetType TargetType    `json:"targetType" yaml:"targetType"`
	TargetID   string        `json:"targetId" yaml:"targetId"`
	AuthorName string        `json:"authorName" yaml:"authorName"`
	Body       string        `json:"body" yaml:"body"`
	Status     CommentStatus `json:"status" yaml:"status"`
	CreatedAt  time.Time     `json:"createdAt" yaml:"createdAt"`
}

// CommentKey builds the comment-index key for a target.
func CommentKey(targetType TargetType, targetID string) string {
	return string(targetType) + ":" + targetID
}
