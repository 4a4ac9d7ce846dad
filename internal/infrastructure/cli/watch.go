package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/handoff/internal/application"
	"github.com/felixgeelhaar/handoff/internal/export"
	"github.com/felixgeelhaar/handoff/internal/infrastructure/watch"
)

var (
	watchFormat   string
	watchOut      string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render an export whenever the backlog changes",
	Long: `Re-render an export whenever the backlog file changes on disk.

The chosen format is rendered once at startup and again after every
change, debounced so editor save bursts produce one render.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(watchFormat)
		if err != nil {
			return err
		}

		svcs := buildServices()
		req := application.DefaultExportRequest(format)

		render := func() {
			path, ok, err := svcs.Export.ExportToFile(req, watchOut)
			if err != nil {
				fmt.Printf("render failed: %v\n", MapError(err))
				return
			}
			if ok {
				fmt.Printf("Wrote %s\n", path)
			}
		}
		render()

		watcher, err := watch.NewBacklogWatcher(svcs.Repo.BacklogPath(), watchDebounce, render)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Watching %s (Ctrl-C to stop)\n", svcs.Repo.BacklogPath())
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "markdown", "Export format to re-render")
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Output path (default: the fixed per-format filename)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Debounce window for change bursts")
	RootCmd.AddCommand(watchCmd)
}
