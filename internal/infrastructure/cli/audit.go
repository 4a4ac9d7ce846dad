package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the export/import audit trail",
}

var auditTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "List recorded export and import runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs := buildServices()
		events, err := svcs.Audit.GetTimeline()
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No events recorded yet.")
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %-16s %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.ID)
		}
		return nil
	},
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the audit trail hash chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs := buildServices()
		violations, err := svcs.Audit.VerifyIntegrity()
		if err != nil {
			return err
		}
		if len(violations) == 0 {
			fmt.Println("Audit trail intact.")
			return nil
		}
		for _, v := range violations {
			fmt.Println(v)
		}
		return fmt.Errorf("%d integrity violations", len(violations))
	},
}

func init() {
	auditCmd.AddCommand(auditTimelineCmd)
	auditCmd.AddCommand(auditVerifyCmd)
	RootCmd.AddCommand(auditCmd)
}
