package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dallionking/milestone/internal/tui/styles"
)

// --- reset ---

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Uncheck every sale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		before := store.Metrics().Completed
		store.Reset()
		logger.Info("progress reset", zap.Int("cleared", before))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles.StatusBadge("ok")+" "+fmt.Sprintf("Cleared %d sales", before))
		fmt.Fprintln(out, metricsLine(store.Metrics()))
		return nil
	},
}

// --- complete-all ---

var completeAllCmd = &cobra.Command{
	Use:   "complete-all",
	Short: "Mark all 1000 sales as sold",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		res := store.CompleteAll()
		logger.Info("all items completed")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles.StatusBadge("ok")+" All sales marked sold")
		if res.Celebrate {
			fmt.Fprintln(out, "  "+styles.Gold(celebrationLine(store.Metrics().Completed)))
		}
		fmt.Fprintln(out, metricsLine(store.Metrics()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(completeAllCmd)
}
