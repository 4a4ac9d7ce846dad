package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/handoff/internal/application"
	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
	"github.com/felixgeelhaar/handoff/internal/export"
)

// Flag variables for the export command
var (
	exportTask      string
	exportStory     string
	exportFeature   string
	exportEpic      string
	exportAll       bool
	exportOut       string
	exportClipboard bool

	exportNoTechStack    bool
	exportNoCodeStyle    bool
	exportNoArchitecture bool

	exportFiles    []string
	exportPatterns []string

	exportHours      float64
	exportVerifyCmds []string
	exportNoPlaybook bool

	exportNoVisualSpec    bool
	exportNoStates        bool
	exportNoResponsive    bool
	exportNoInteractions  bool
	exportNoAccessibility bool

	exportTitle       string
	exportDescription string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Render the backlog into an assistant or interchange format",
	Long: `Render the backlog into an assistant or interchange format.

Formats: cursor, copilot, wrap, v0, v0-prompt, devin, linear, json, csv, markdown

Target selection (default: the whole backlog):
  --task, --story, --feature, --epic

Examples:
  handoff export wrap --task T1
  handoff export cursor --feature F1
  handoff export devin --epic E1 --hours 6
  handoff export json --out snapshot.json
  handoff export wrap --task T1 --clipboard`,
	Args: cobra.ExactArgs(1),
	RunE: runExportCmd,
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(args[0])
	if err != nil {
		return err
	}

	req := application.DefaultExportRequest(format)
	req.TargetType, req.TargetID = exportTarget()

	req.Cursor.IncludeTechStack = !exportNoTechStack
	req.Cursor.IncludeCodeStyle = !exportNoCodeStyle
	req.Cursor.IncludeArchitecture = !exportNoArchitecture
	req.Copilot.IncludeTechStack = !exportNoTechStack
	req.Copilot.IncludeConventions = !exportNoCodeStyle
	req.Copilot.IncludeArchitecture = !exportNoArchitecture
	req.Copilot.Files = exportFiles
	req.Copilot.Patterns = exportPatterns

	if exportHours > 0 {
		req.Devin.EstimatedHours = exportHours
	}
	req.Devin.VerificationCommands = exportVerifyCmds
	req.Devin.IncludePlaybook = !exportNoPlaybook

	req.V0.IncludeVisualSpec = !exportNoVisualSpec
	req.V0.IncludeStates = !exportNoStates
	req.V0.IncludeResponsive = !exportNoResponsive
	req.V0.IncludeInteractions = !exportNoInteractions
	req.V0.IncludeAccessibility = !exportNoAccessibility

	req.Title = exportTitle
	req.Description = exportDescription

	svcs := buildServices()

	if exportClipboard {
		ok, err := svcs.Export.ExportToClipboard(req)
		if err != nil {
			mapped := MapError(err)
			printHint(mapped)
			return mapped
		}
		if !ok {
			return fmt.Errorf("clipboard copy failed")
		}
		fmt.Println("Copied to clipboard.")
		return nil
	}

	path, ok, err := svcs.Export.ExportToFile(req, exportOut)
	if err != nil {
		mapped := MapError(err)
		printHint(mapped)
		return mapped
	}
	if !ok {
		return fmt.Errorf("failed to write %s", path)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// exportTarget maps the mutually exclusive target flags onto a selector.
// The first non-empty flag wins; with none set (or --all) the whole
// backlog is exported.
func exportTarget() (backlog.TargetType, string) {
	switch {
	case exportAll:
		return backlog.TargetAll, ""
	case exportTask != "":
		return backlog.TargetTask, exportTask
	case exportStory != "":
		return backlog.TargetUserStory, exportStory
	case exportFeature != "":
		return backlog.TargetFeature, exportFeature
	case exportEpic != "":
		return backlog.TargetEpic, exportEpic
	default:
		return backlog.TargetAll, ""
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportTask, "task", "", "Export a single task")
	exportCmd.Flags().StringVar(&exportStory, "story", "", "Export all tasks under a user story")
	exportCmd.Flags().StringVar(&exportFeature, "feature", "", "Export all tasks under a feature")
	exportCmd.Flags().StringVar(&exportEpic, "epic", "", "Export all tasks under an epic")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every task in the backlog (the default)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default: the fixed per-format filename)")
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Copy to the clipboard instead of saving a file")

	exportCmd.Flags().BoolVar(&exportNoTechStack, "no-tech-stack", false, "Omit the tech stack section")
	exportCmd.Flags().BoolVar(&exportNoCodeStyle, "no-code-style", false, "Omit the code style / conventions section")
	exportCmd.Flags().BoolVar(&exportNoArchitecture, "no-architecture", false, "Omit the architecture section")

	exportCmd.Flags().StringSliceVar(&exportFiles, "files", nil, "File paths for the WRAP 'Actual files' section")
	exportCmd.Flags().StringSliceVar(&exportPatterns, "patterns", nil, "Pattern descriptions for the WRAP 'Patterns' section")

	exportCmd.Flags().Float64Var(&exportHours, "hours", 0, "Estimated hours for the Devin brief (default 4)")
	exportCmd.Flags().StringSliceVar(&exportVerifyCmds, "verify-cmd", nil, "Verification commands for the Devin brief")
	exportCmd.Flags().BoolVar(&exportNoPlaybook, "no-playbook", false, "Omit the Devin playbook section")

	exportCmd.Flags().BoolVar(&exportNoVisualSpec, "no-visual-spec", false, "Omit the v0 visual spec section")
	exportCmd.Flags().BoolVar(&exportNoStates, "no-states", false, "Omit the v0 states section")
	exportCmd.Flags().BoolVar(&exportNoResponsive, "no-responsive", false, "Omit the v0 responsive section")
	exportCmd.Flags().BoolVar(&exportNoInteractions, "no-interactions", false, "Omit the v0 interactions section")
	exportCmd.Flags().BoolVar(&exportNoAccessibility, "no-accessibility", false, "Omit the v0 accessibility section")

	exportCmd.Flags().StringVar(&exportTitle, "title", "", "Title for the Markdown export")
	exportCmd.Flags().StringVar(&exportDescription, "description", "", "Description for the Markdown export")

	RootCmd.AddCommand(exportCmd)
}
