package export

import (
	"fmt"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

// Fixed placeholders for WRAP sections with no caller-supplied content.
const (
	wrapFilesPlaceholder    = "*No files specified yet*"
	wrapPatternsPlaceholder = "*Follow existing patterns in the codebase*"
)

// RenderCopilotInstructions produces the project-level
// copilot-instructions.md document. It shares the toggleable project
// sections with the Cursor renderer but carries no per-feature context.
func RenderCopilotInstructions(app backlog.App, profile ProjectProfile, opts CopilotOptions) string {
	var d doc

	d.heading(1, app.Name+" Development Instructions")
	if app.Description != "" {
		d.line("%s", app.Description)
		d.blank()
	}

	if opts.IncludeTechStack && len(profile.TechStack) > 0 {
		d.heading(2, "Tech Stack")
		d.bullets(profile.TechStack)
	}
	if opts.IncludeConventions && len(profile.CodeStyle) > 0 {
		d.heading(2, "Conventions")
		d.bullets(profile.CodeStyle)
	}
	if opts.IncludeArchitecture && len(profile.Architecture) > 0 {
		d.heading(2, "Architecture")
		d.bullets(profile.Architecture)
	}

	return d.String()
}

// RenderWRAPIssue produces a single WRAP issue body for one task. The
// four sections are always present, titled exactly What, Requirements,
// Actual files, Patterns, in that order. A trailing Context section
// names the resolved ancestors; absent levels are omitted.
func RenderWRAPIssue(ctx *Context, opts CopilotOptions) string {
	var d doc
	d.heading(1, ctx.Task.Title)
	renderWRAPSections(&d, ctx, opts, 2)
	return d.String()
}

// RenderWRAPIssues produces the bulk WRAP document: issues numbered
// sequentially from 1, separated by horizontal rules. Numbering
// restarts per invocation.
func RenderWRAPIssues(ctxs []*Context, opts CopilotOptions) string {
	var d doc
	for i, ctx := range ctxs {
		if i > 0 {
			d.rule()
		}
		d.heading(2, fmt.Sprintf("Issue %d: %s", i+1, ctx.Task.Title))
		renderWRAPSections(&d, ctx, opts, 3)
	}
	return d.String()
}

func renderWRAPSections(d *doc, ctx *Context, opts CopilotOptions, depth int) {
	d.heading(depth, "What")
	what := ctx.Task.Details
	if what == "" {
		what = ctx.Task.Title
	}
	d.line("%s", what)
	d.blank()

	d.heading(depth, "Requirements")
	reqs, source := ctx.Requirements()
	d.checklist(reqs)
	if source == backlog.SourceSynthesized && ctx.Task.Notes != "" {
		d.line("> Note: %s", ctx.Task.Notes)
		d.blank()
	}

	d.heading(depth, "Actual files")
	if len(opts.Files) > 0 {
		d.bullets(opts.Files)
	} else {
		d.line("%s", wrapFilesPlaceholder)
		d.blank()
	}

	d.heading(depth, "Patterns")
	if len(opts.Patterns) > 0 {
		d.bullets(opts.Patterns)
	} else {
		d.line("%s", wrapPatternsPlaceholder)
		d.blank()
	}

	if ctx.Epic != nil || ctx.Feature != nil || ctx.UserStory != nil {
		d.heading(depth, "Context")
		if ctx.Epic != nil {
			d.line("**Epic:** %s", ctx.Epic.Title)
		}
		if ctx.Feature != nil {
			d.line("**Feature:** %s", ctx.Feature.Title)
		}
		if ctx.UserStory != nil {
			d.line("**User Story:** %s", ctx.UserStory.Sentence())
		}
		d.blank()
	}
}
