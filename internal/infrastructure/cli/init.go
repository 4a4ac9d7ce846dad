package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
	"github.com/felixgeelhaar/handoff/internal/export"
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Initialize a handoff workspace in the current directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		svcs := buildServices()

		if svcs.Repo.IsInitialized() {
			return fmt.Errorf("workspace already initialized (.handoff exists)")
		}
		if err := svcs.Repo.Initialize(); err != nil {
			return err
		}

		snap := &backlog.Snapshot{
			App: backlog.App{
				ID:   strings.ToLower(strings.ReplaceAll(name, " ", "-")),
				Name: name,
			},
			Epics:       map[string]*backlog.Epic{},
			Features:    map[string]*backlog.Feature{},
			UserStories: map[string]*backlog.UserStory{},
			Tasks:       map[string]*backlog.Task{},
			Comments:    map[string][]backlog.Comment{},
		}
		if err := svcs.Repo.SaveBacklog(snap); err != nil {
			return err
		}
		if err := svcs.Repo.SaveProfile(&export.ProjectProfile{}); err != nil {
			return err
		}

		_ = svcs.Audit.Log("init", "cli", map[string]any{"name": name})

		fmt.Printf("Initialized handoff workspace for %q\n", name)
		fmt.Println("Edit .handoff/backlog.yaml to add epics, features, stories, and tasks.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
