package export

// ProjectProfile carries the caller-supplied project-level content used
// by the assistant-config renderers. Empty slices render as omitted
// sections, never as empty headings.
type ProjectProfile struct {
	TechStack    []string `json:"techStack,omitempty" yaml:"techStack,omitempty"`
	CodeStyle    []string `json:"codeStyle,omitempty" yaml:"codeStyle,omitempty"`
	Architecture []string `json:"architecture,omitempty" yaml:"architecture,omitempty"`
}

// CursorOptions toggles the sections of the Cursor-rules document.
// All flags default to include; use DefaultCursorOptions.
type CursorOptions struct {
	IncludeTechStack    bool
	IncludeCodeStyle    bool
	IncludeArchitecture bool
}

// DefaultCursorOptions returns options with every section included.
func DefaultCursorOptions() CursorOptions {
	return CursorOptions{
		IncludeTechStack:    true,
		IncludeCodeStyle:    true,
		IncludeArchitecture: true,
	}
}

// CopilotOptions toggles the sections of the Copilot instructions
// document and carries the caller-supplied WRAP inputs.
type CopilotOptions struct {
	IncludeTechStack    bool
	IncludeConventions  bool
	IncludeArchitecture bool
	// Files and Patterns feed the Actual files / Patterns sections of
	// WRAP issues. When empty, fixed placeholders are rendered instead.
	Files    []string
	Patterns []string
}

// DefaultCopilotOptions returns options with every section included.
func DefaultCopilotOptions() CopilotOptions {
	return CopilotOptions{
		IncludeTechStack:    true,
		IncludeConventions:  true,
		IncludeArchitecture: true,
	}
}

// V0Options toggles the sections of the v0 UI specification.
type V0Options struct {
	IncludeVisualSpec    bool
	IncludeStates        bool
	IncludeResponsive    bool
	IncludeInteractions  bool
	IncludeAccessibility bool
}

// DefaultV0Options returns options with every section included.
func DefaultV0Options() V0Options {
	return V0Options{
		IncludeVisualSpec:    true,
		IncludeStates:        true,
		IncludeResponsive:    true,
		IncludeInteractions:  true,
		IncludeAccessibility: true,
	}
}

// DefaultEstimatedHours is the Devin brief estimate used when the
// caller supplies no override.
const DefaultEstimatedHours = 4.0

// DevinOptions configures the Devin task brief.
type DevinOptions struct {
	// EstimatedHours overrides the default estimate when > 0.
	EstimatedHours float64
	// VerificationCommands overrides the format default list when non-empty.
	VerificationCommands []string
	// IncludePlaybook appends the keyword-classified playbook template.
	IncludePlaybook bool
}

// DefaultDevinOptions returns options with the default estimate and the
// playbook enabled.
func DefaultDevinOptions() DevinOptions {
	return DevinOptions{
		EstimatedHours:  DefaultEstimatedHours,
		IncludePlaybook: true,
	}
}

// defaultVerificationCommands is the Devin-format fallback when the
// caller supplies none.
var defaultVerificationCommands = []string{
	"npm run lint",
	"npm run test",
	"npm run build",
}
