package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/tui/styles"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <n>...",
	Short: "Toggle one or more sales by number (1-1000)",
	Long: `Flip the sold state of each listed sale, in order.

Every number is checked before anything changes, so a typo leaves the
board untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		indexes, err := parseItems(args)
		if err != nil {
			return err
		}

		store, _, err := openStore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, idx := range indexes {
			res := store.Toggle(idx)
			checked := store.Checklist().Checked(idx)
			logger.Debug("toggled", zap.Int("item", idx+1), zap.Bool("checked", checked))

			state := styles.Dim("open")
			if checked {
				state = styles.Green("sold")
			}
			fmt.Fprintf(out, "  Sale #%-4d %s\n", idx+1, state)
			if res.Celebrate {
				fmt.Fprintln(out, "  "+styles.Gold(celebrationLine(store.Metrics().Completed)))
			}
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, metricsLine(store.Metrics()))
		return nil
	},
}

// parseItems converts 1-based item numbers to indexes.
func parseItems(args []string) ([]int, error) {
	indexes := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("parsing item %q: %w", a, err)
		}
		idx, err := checklist.IndexForItem(n)
		if err != nil {
			return nil, fmt.Errorf("parsing item %q: %w", a, err)
		}
		indexes = append(indexes, idx)
	}
	return indexes, nil
}

func celebrationLine(completed int) string {
	if completed >= checklist.TotalItems {
		return "🎉 All 1000 sales! 🎉"
	}
	return fmt.Sprintf("🎉 %d sales! 🎉", completed)
}

func metricsLine(m checklist.Metrics) string {
	return fmt.Sprintf("  %s %s  %s %s  %s %s",
		styles.Label.Render("SOLD"), styles.Value.Render(fmt.Sprintf("%d/%d", m.Completed, checklist.TotalItems)),
		styles.Label.Render("PROGRESS"), styles.Value.Render(fmt.Sprintf("%.1f%%", m.Percentage)),
		styles.Label.Render("REVENUE"), styles.RevenueText.Render(styles.Dollars(m.Revenue)),
	)
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
