package export

import "fmt"

// Format names one of the supported export formats.
type Format string

const (
	FormatCursor   Format = "cursor"
	FormatCopilot  Format = "copilot"
	FormatWRAP     Format = "wrap"
	FormatV0       Format = "v0"
	FormatV0Prompt Format = "v0-prompt"
	FormatDevin    Format = "devin"
	FormatLinear   Format = "linear"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// filenames are the fixed per-format artifact names. Content type is
// always a text/markdown variant.
var filenames = map[Format]string{
	FormatCursor:   "project.mdc",
	FormatCopilot:  "copilot-instructions.md",
	FormatWRAP:     "wrap-issues.md",
	FormatV0:       "v0-ui-spec.md",
	FormatV0Prompt: "v0-prompt.md",
	FormatDevin:    "devin-task.md",
	FormatLinear:   "linear-issue.md",
	FormatJSON:     "backlog.json",
	FormatCSV:      "backlog.csv",
	FormatMarkdown: "backlog.md",
}

// Filename returns the fixed artifact filename for a format.
func Filename(f Format) string {
	return filenames[f]
}

// ParseFormat validates a format name supplied on the command line or
// over MCP.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := filenames[f]; !ok {
		return "", fmt.Errorf("unknown export format %q", s)
	}
	return f, nil
}

// Formats returns all format names in a fixed presentation order.
func Formats() []Format {
	return []Format{
		FormatCursor, FormatCopilot, FormatWRAP, FormatV0, FormatV0Prompt,
		FormatDevin, FormatLinear, FormatJSON, FormatCSV, FormatMarkdown,
	}
}
