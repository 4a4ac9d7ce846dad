package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var statsJSON bool

// Styles
var statsHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var statsLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
var statsValueStyle = lipgloss.NewStyle().Bold(true)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show backlog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs := buildServices()
		stats, err := svcs.Export.Statistics()
		if err != nil {
			return MapError(err)
		}

		if statsJSON {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println(statsHeaderStyle.Render("Backlog"))
		row := func(label string, value string) {
			fmt.Printf("%s %s\n", statsLabelStyle.Render(fmt.Sprintf("%-28s", label)), statsValueStyle.Render(value))
		}
		row("Epics", fmt.Sprintf("%d", stats.TotalEpics))
		row("Features", fmt.Sprintf("%d", stats.TotalFeatures))
		row("User stories", fmt.Sprintf("%d", stats.TotalUserStories))
		row("Tasks", fmt.Sprintf("%d", stats.TotalTasks))
		row("Features with stories", fmt.Sprintf("%d", stats.FeaturesWithStories))
		row("Features with tasks", fmt.Sprintf("%d", stats.FeaturesWithTasks))
		row("Tasks with criteria", fmt.Sprintf("%d", stats.TasksWithCriteria))
		row("Avg tasks per story", fmt.Sprintf("%.2f", stats.AvgTasksPerStory))
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(statsCmd)
}
