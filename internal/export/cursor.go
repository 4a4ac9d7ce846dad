package export

import "github.com/felixgeelhaar/handoff/internal/domain/backlog"

// RenderCursorRules produces the project.mdc Cursor rules document:
// a fixed front-matter block, the toggleable project sections, and,
// when fc is non-nil, the current-feature section with the feature's
// stories, tasks, and comments.
//
// Heading depths follow the shared convention: project at 1, epic at 2,
// feature at 3, story at 4. Depths are never renumbered when levels are
// missing.
func RenderCursorRules(app backlog.App, profile ProjectProfile, fc *FeatureContext, opts CursorOptions) string {
	var d doc

	d.line("---")
	d.line("description: %s project rules", app.Name)
	d.line("globs:")
	d.line("alwaysApply: true")
	d.line("---")
	d.blank()

	d.heading(1, app.Name)
	if app.Description != "" {
		d.line("%s", app.Description)
		d.blank()
	}

	if opts.IncludeTechStack && len(profile.TechStack) > 0 {
		d.heading(2, "Tech Stack")
		d.bullets(profile.TechStack)
	}
	if opts.IncludeCodeStyle && len(profile.CodeStyle) > 0 {
		d.heading(2, "Code Style")
		d.bullets(profile.CodeStyle)
	}
	if opts.IncludeArchitecture && len(profile.Architecture) > 0 {
		d.heading(2, "Architecture")
		d.bullets(profile.Architecture)
	}

	if fc != nil {
		renderCurrentFeature(&d, fc)
	}

	return d.String()
}

func renderCurrentFeature(d *doc, fc *FeatureContext) {
	d.heading(3, "Current Feature: "+fc.Feature.Title)

	if fc.Feature.Description != "" {
		d.line("%s", fc.Feature.Description)
		d.blank()
	}
	if fc.Epic != nil && fc.Epic.Goal != "" {
		d.line("**Epic Goal:** %s", fc.Epic.Goal)
		d.blank()
	}

	if texts := featureCriteria(fc.Feature); len(texts) > 0 {
		d.heading(4, "Acceptance Criteria")
		d.checklist(texts)
	}

	for _, sv := range fc.Stories {
		d.heading(4, "User Story: "+sv.Story.Sentence())
		if texts := storyCriteria(sv.Story); len(texts) > 0 {
			d.checklist(texts)
		}
		if len(sv.Tasks) > 0 {
			for _, t := range sv.Tasks {
				d.line("- [ ] %s", taskChecklistLine(t))
			}
			d.blank()
		}
	}

	d.commentSection(4, fc.Comments)
}

func taskChecklistLine(t *backlog.Task) string {
	line := t.Title
	if t.Details != "" {
		line += " — " + t.Details
	}
	if t.Priority > 0 {
		line += formatPriority(t.Priority)
	}
	return line
}

func formatPriority(p int) string {
	switch p {
	case 1:
		return " (priority: high)"
	case 2:
		return " (priority: medium)"
	case 3:
		return " (priority: low)"
	default:
		return ""
	}
}

func featureCriteria(f *backlog.Feature) []string {
	texts := make([]string, 0, len(f.AcceptanceCriteria))
	for _, c := range f.AcceptanceCriteria {
		if c.Text != "" {
			texts = append(texts, c.Text)
		}
	}
	return texts
}

func storyCriteria(s *backlog.UserStory) []string {
	texts := make([]string, 0, len(s.AcceptanceCriteria))
	for _, c := range s.AcceptanceCriteria {
		if c.Text != "" {
			texts = append(texts, c.Text)
		}
	}
	return texts
}
