package export

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

// RenderDevinBrief produces the devin-task.md brief for one or more
// tasks. Bulk briefs number tasks sequentially and separate them with
// horizontal rules, restarting the numbering per invocation.
func RenderDevinBrief(ctxs []*Context, opts DevinOptions) string {
	var d doc
	if len(ctxs) == 1 {
		renderDevinTask(&d, ctxs[0], opts, 1, 0)
		return d.String()
	}
	for i, ctx := range ctxs {
		if i > 0 {
			d.rule()
		}
		renderDevinTask(&d, ctx, opts, 1, i+1)
	}
	return d.String()
}

func renderDevinTask(d *doc, ctx *Context, opts DevinOptions, depth, number int) {
	title := "Task: " + ctx.Task.Title
	if number > 0 {
		title = fmt.Sprintf("Task %d: %s", number, ctx.Task.Title)
	}
	d.heading(depth, title)

	hours := opts.EstimatedHours
	if hours <= 0 {
		hours = DefaultEstimatedHours
	}
	d.line("**Estimated hours:** %g", hours)
	d.blank()

	if ctx.Task.Details != "" {
		d.heading(depth+1, "Description")
		d.line("%s", ctx.Task.Details)
		d.blank()
	}

	d.heading(depth+1, "Acceptance Criteria")
	reqs, source := ctx.Requirements()
	d.checklist(reqs)
	if source == backlog.SourceSynthesized && ctx.Task.Notes != "" {
		d.line("> Note: %s", ctx.Task.Notes)
		d.blank()
	}

	d.heading(depth+1, "Verification")
	commands := opts.VerificationCommands
	if len(commands) == 0 {
		commands = defaultVerificationCommands
	}
	for _, c := range commands {
		d.line("- `%s`", c)
	}
	d.blank()

	if opts.IncludePlaybook {
		if tag := ClassifyTask(ctx.Task.Title); tag != "" {
			renderPlaybook(d, depth+1, tag)
		}
	}
}

// RenderLinearIssue produces the alternate Linear-importable issue for
// exactly one task: a front-matter block with title, labels, and
// priority keys, followed by the task body.
func RenderLinearIssue(ctx *Context, opts DevinOptions) string {
	var d doc

	label := ClassifyTask(ctx.Task.Title)
	priority := ctx.Task.Priority
	if priority <= 0 {
		priority = 3
	}

	d.line("---")
	d.line("title: %s", ctx.Task.Title)
	if label != "" {
		d.line("labels: [%s]", label)
	} else {
		d.line("labels: []")
	}
	d.line("priority: %d", priority)
	d.line("---")
	d.blank()

	what := ctx.Task.Details
	if what == "" {
		what = ctx.Task.Title
	}
	d.line("%s", what)
	d.blank()

	reqs, _ := ctx.Requirements()
	d.heading(2, "Acceptance Criteria")
	d.checklist(reqs)

	return d.String()
}

// RenderLinearIssues produces the bulk Linear document: issues numbered
// sequentially from 1 and separated by horizontal rules.
func RenderLinearIssues(ctxs []*Context, opts DevinOptions) string {
	var d doc
	for i, ctx := range ctxs {
		if i > 0 {
			d.rule()
		}
		d.heading(2, fmt.Sprintf("Issue %d: %s", i+1, ctx.Task.Title))
		what := ctx.Task.Details
		if what == "" {
			what = ctx.Task.Title
		}
		d.line("%s", what)
		d.blank()
		reqs, _ := ctx.Requirements()
		d.heading(3, "Acceptance Criteria")
		d.checklist(reqs)
	}
	return d.String()
}

// taskClass is one entry of the ordered classifier: the first matching
// predicate wins.
type taskClass struct {
	keywords []string
	tag      string
}

// taskClasses is evaluated in fixed priority order. Tasks matching no
// keyword get no playbook, which is not an error.
var taskClasses = []taskClass{
	{keywords: []string{"component", "ui", "page", "screen"}, tag: "frontend"},
	{keywords: []string{"api", "endpoint", "service", "database"}, tag: "backend"},
	{keywords: []string{"bug", "fix", "regression"}, tag: "bugfix"},
}

// ClassifyTask inspects a task title for keywords and returns the
// playbook tag of the first matching class, or "" when none match.
func ClassifyTask(title string) string {
	lower := strings.ToLower(title)
	for _, class := range taskClasses {
		for _, kw := range class.keywords {
			if strings.Contains(lower, kw) {
				return class.tag
			}
		}
	}
	return ""
}

var playbooks = map[string]struct {
	title string
	steps []string
}{
	"frontend": {
		title: "Playbook: Frontend Component",
		steps: []string{
			"Review existing components for naming and file placement",
			"Build the component with typed props and local state only",
			"Cover loading, empty, and error states",
			"Add unit tests for rendering and interaction",
		},
	},
	"backend": {
		title: "Playbook: Backend Endpoint",
		steps: []string{
			"Define the request/response contract first",
			"Validate input at the boundary and return structured errors",
			"Write the handler, then the persistence call, then wire them",
			"Add integration tests covering the error paths",
		},
	},
	"bugfix": {
		title: "Playbook: Bug Fix",
		steps: []string{
			"Reproduce the bug with a failing test",
			"Fix the smallest surface that makes the test pass",
			"Check sibling code paths for the same defect",
			"Keep the regression test",
		},
	},
}

func renderPlaybook(d *doc, depth int, tag string) {
	pb, ok := playbooks[tag]
	if !ok {
		return
	}
	d.heading(depth, pb.title)
	for i, step := range pb.steps {
		d.line("%d. %s", i+1, step)
	}
	d.blank()
}
