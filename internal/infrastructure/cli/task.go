package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage task status",
}

var taskTransitionCmd = &cobra.Command{
	Use:   "transition <task-id> <event>",
	Short: "Apply a status event to a task (start, complete, block, unblock, stop, reopen)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs := buildServices()
		status, err := svcs.Task.Transition(args[0], args[1])
		if err != nil {
			mapped := MapError(err)
			printHint(mapped)
			return mapped
		}
		fmt.Printf("Task %s is now %s\n", args[0], status)
		return nil
	},
}

func init() {
	taskCmd.AddCommand(taskTransitionCmd)
	RootCmd.AddCommand(taskCmd)
}
