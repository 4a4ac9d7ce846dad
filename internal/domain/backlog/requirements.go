package backlog

// RequirementSource names the level of the hierarchy that supplied a
// task's requirements.
type RequirementSource string

const (
	// SourceUserStory means the story's own acceptance criteria were used.
	SourceUserStory RequirementSource = "userStory"
	// SourceFeature means the parent feature's criteria were used.
	SourceFeature RequirementSource = "feature"
	// SourceSynthesized means no criteria existed anywhere in the chain
	// and a single bullet was synthesized from the task itself.
	SourceSynthesized RequirementSource = "synthesized"
)

// Requirements resolves the acceptance criteria for a task through the
// fallback chain: the story's criteria first, then the feature's, then a
// single synthesized bullet referencing the task title. The ordering is
// a policy decision and determines what a generated coding-agent brief
// asks for; do not reorder it.
//
// story and feature may be nil (dangling parents degrade gracefully).
func Requirements(task *Task, story *UserStory, feature *Feature) ([]string, RequirementSource) {
	if story != nil {
		if texts := criteriaTexts(story.AcceptanceCriteria); len(texts) > 0 {
			return texts, SourceUserStory
		}
	}
	if feature != nil {
		if texts := criteriaTexts(feature.AcceptanceCriteria); len(texts) > 0 {
			return texts, SourceFeature
		}
	}
	return []string{"Implement " + task.Title}, SourceSynthesized
}

func criteriaTexts(criteria []AcceptanceCriterion) []string {
	out := make([]string, 0, len(criteria))
	for _, c := range criteria {
		if c.Text != "" {
			out = append(out, c.Text)
		}
	}
	return out
}
