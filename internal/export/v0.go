package export

import "fmt"

// Fixed closing recommendations of the v0 quick prompt.
const (
	v0RecommendStyle      = "Use a clean, modern visual style with sensible spacing."
	v0RecommendResponsive = "Make it fully responsive and keyboard accessible."
)

// RenderV0Spec produces the v0-ui-spec.md document for a feature. Each
// section is independently toggleable and omitted entirely when its
// underlying data is empty.
func RenderV0Spec(fc *FeatureContext, opts V0Options) string {
	var d doc

	d.heading(1, "UI Specification: "+fc.Feature.Title)
	if fc.Feature.Description != "" {
		d.line("%s", fc.Feature.Description)
		d.blank()
	}

	if opts.IncludeVisualSpec {
		var items []string
		if fc.Feature.Details != "" {
			items = append(items, fc.Feature.Details)
		}
		items = append(items, featureCriteria(fc.Feature)...)
		if len(items) > 0 {
			d.heading(2, "Visual Spec")
			d.bullets(items)
		}
	}

	if opts.IncludeStates {
		d.heading(2, "States")
		d.bullets([]string{
			"Default: fully loaded content",
			"Loading: skeleton placeholders while data is fetched",
			"Empty: friendly call to action when no data exists",
			"Error: inline message with a retry affordance",
		})
	}

	if opts.IncludeResponsive {
		d.heading(2, "Responsive Behavior")
		d.bullets([]string{
			"Mobile: single column, stacked controls",
			"Tablet: two-column layout where content allows",
			"Desktop: full layout with persistent navigation",
		})
	}

	if opts.IncludeInteractions && len(fc.Stories) > 0 {
		d.heading(2, "Interactions")
		for _, sv := range fc.Stories {
			d.line("- %s", sv.Story.Sentence())
		}
		d.blank()
	}

	if opts.IncludeAccessibility {
		d.heading(2, "Accessibility")
		d.bullets([]string{
			"Semantic landmarks and heading order",
			"Visible focus states on all interactive elements",
			"ARIA labels for icon-only controls",
			"Color contrast meeting WCAG AA",
		})
	}

	return d.String()
}

// RenderV0Prompt produces the short natural-language quick prompt for a
// feature. Requirements come from the feature's own acceptance criteria
// only; there is no fallback to other levels. The two closing
// recommendations are fixed.
func RenderV0Prompt(fc *FeatureContext) string {
	var d doc

	d.line("Create a `%s` component for %s.", fc.Feature.Title, appNameOr(fc, "a web application"))
	d.blank()
	if fc.Feature.Description != "" {
		d.line("%s", fc.Feature.Description)
		d.blank()
	}
	if texts := featureCriteria(fc.Feature); len(texts) > 0 {
		d.line("Requirements:")
		for _, t := range texts {
			d.line("- %s", t)
		}
		d.blank()
	}
	d.line("%s", v0RecommendStyle)
	d.line("%s", v0RecommendResponsive)

	return d.String()
}

func appNameOr(fc *FeatureContext, fallback string) string {
	if fc.App.Name != "" {
		return fmt.Sprintf("the %s app", fc.App.Name)
	}
	return fallback
}
