package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/handoff/internal/application"
)

var importMerge bool

var importCmd = &cobra.Command{
	Use:   "import json|csv <file>",
	Short: "Parse an exported JSON or CSV file back into the backlog",
	Long: `Parse an exported JSON or CSV file back into the backlog.

By default only a preview is printed. Pass --merge to write the parsed
entities into the stored backlog (entities sharing an id are replaced).`,
	Args: cobra.ExactArgs(2),
	RunE: runImportCmd,
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	source, file := args[0], args[1]
	if source != "json" && source != "csv" {
		return fmt.Errorf("unknown import source %q (use json or csv)", source)
	}

	// #nosec G304 -- User-supplied import path is intentional
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	svcs := buildServices()

	var preview *application.ImportPreview
	if importMerge {
		if source == "json" {
			preview, err = svcs.Import.MergeJSON(string(data))
		} else {
			preview, err = svcs.Import.MergeCSV(string(data))
		}
		if err != nil {
			return MapError(err)
		}
	} else {
		if source == "json" {
			preview = svcs.Import.PreviewJSON(string(data))
		} else {
			preview = svcs.Import.PreviewCSV(string(data))
		}
	}

	if !preview.Valid {
		fmt.Println("Import is invalid:")
		for _, e := range preview.Errors {
			fmt.Printf("  - %s\n", e)
		}
		os.Exit(1)
	}

	verb := "Would import"
	if importMerge {
		verb = "Imported"
	}
	fmt.Printf("%s %d epics, %d features, %d user stories, %d tasks\n",
		verb, preview.Epics, preview.Features, preview.UserStories, preview.Tasks)
	if preview.Skipped > 0 {
		fmt.Printf("Skipped %d rows with unknown types\n", preview.Skipped)
	}
	if !importMerge {
		fmt.Println("Pass --merge to apply.")
	}
	return nil
}

func init() {
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Write the parsed entities into the backlog")
	RootCmd.AddCommand(importCmd)
}
