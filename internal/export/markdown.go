package export

import (
	"fmt"
	"strings"
)

// doc is a small markdown builder shared by the renderers. It keeps the
// structural rules in one place: headings at fixed depths, checklist
// items, bullet lists, and blank-line separation.
type doc struct {
	b strings.Builder
}

func (d *doc) heading(depth int, text string) {
	fmt.Fprintf(&d.b, "%s %s\n\n", strings.Repeat("#", depth), text)
}

func (d *doc) line(format string, args ...any) {
	fmt.Fprintf(&d.b, format+"\n", args...)
}

func (d *doc) blank() {
	d.b.WriteString("\n")
}

func (d *doc) bullets(items []string) {
	for _, item := range items {
		fmt.Fprintf(&d.b, "- %s\n", item)
	}
	d.blank()
}

func (d *doc) checklist(items []string) {
	for _, item := range items {
		fmt.Fprintf(&d.b, "- [ ] %s\n", item)
	}
	d.blank()
}

func (d *doc) rule() {
	d.b.WriteString("---\n\n")
}

// String returns the document with a single trailing newline.
func (d *doc) String() string {
	return strings.TrimRight(d.b.String(), "\n") + "\n"
}

// commentSection renders comment groups labeled by owning node. The
// caller is responsible for omitting the section heading when there are
// no groups.
func (d *doc) commentSection(depth int, groups []CommentGroup) {
	if len(groups) == 0 {
		return
	}
	d.heading(depth, "Comments")
	for _, g := range groups {
		d.line("**%s:**", g.Label)
		for _, c := range g.Comments {
			d.line("- %s: %s (%s)", c.AuthorName, c.Body, c.Status)
		}
		d.blank()
	}
}
