package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/storage"
	"github.com/Dallionking/milestone/internal/tui/styles"
	"github.com/Dallionking/milestone/internal/tui/views"
)

var (
	statusJSON  bool
	statusWatch bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print a snapshot of the board",
	Long: `Print completed sales, progress, revenue and milestones.

Flags:
  --json    output the snapshot as JSON
  --watch   re-print whenever the stored board changes (ctrl+c to stop)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, disk, err := openStore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := printStatus(out, store); err != nil {
			return err
		}
		if !statusWatch {
			return nil
		}
		if disk == nil {
			return errors.New("--watch needs a persistent store (drop --ephemeral)")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchStatus(ctx, out, disk)
	},
}

// statusSnapshot is the --json shape.
type statusSnapshot struct {
	Completed  int               `json:"completed"`
	Total      int               `json:"total"`
	Percentage float64           `json:"percentage"`
	Revenue    int               `json:"revenue"`
	Remaining  int               `json:"remaining"`
	DarkMode   bool              `json:"dark_mode"`
	Milestones []milestoneStatus `json:"milestones"`
}

type milestoneStatus struct {
	Label   string `json:"label"`
	At      int    `json:"at"`
	Reached bool   `json:"reached"`
}

func newStatusSnapshot(store *checklist.Store) statusSnapshot {
	m := store.Metrics()
	s := statusSnapshot{
		Completed:  m.Completed,
		Total:      checklist.TotalItems,
		Percentage: m.Percentage,
		Revenue:    m.Revenue,
		Remaining:  m.Remaining,
		DarkMode:   store.DarkMode(),
	}
	for _, ms := range checklist.Milestones() {
		s.Milestones = append(s.Milestones, milestoneStatus{
			Label:   ms.Label,
			At:      ms.Position,
			Reached: ms.Reached(m.Completed),
		})
	}
	return s
}

func printStatus(out io.Writer, store *checklist.Store) error {
	if statusJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newStatusSnapshot(store))
	}

	fmt.Fprintln(out, views.RenderSummary(store.Metrics(), store.DarkMode(), 50))
	fmt.Fprintln(out)
	return nil
}

// watchStatus re-reads the store and prints a fresh snapshot after every
// change event until ctx is cancelled.
func watchStatus(ctx context.Context, out io.Writer, disk *storage.DiskKV) error {
	w, err := storage.NewWatcher(disk, logger)
	if err != nil {
		return fmt.Errorf("watching data directory: %w", err)
	}
	defer w.Close()

	if !statusJSON {
		fmt.Fprintln(out, styles.Dim("  watching for changes, ctrl+c to stop"))
	}

	for ev := range w.Watch(ctx) {
		logger.Debug("store changed", zap.String("key", ev.Key))
		store := storage.NewBridge(disk, logger).OpenStore(cfg.DarkByDefault())
		if err := printStatus(out, store); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output status as JSON")
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "re-print on every change")
	rootCmd.AddCommand(statusCmd)
}
