package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/milestone/internal/health"
)

var doctorCategory string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the config, saved board and terminal",
	Long: `Run read-only checks against the effective configuration, the stored
board in the data directory and the current terminal. Exits non-zero when
any check fails; warnings are reported but do not fail.

Flags:
  --category   run only one group: config, storage or terminal`,
	Annotations: map[string]string{skipSetup: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if doctorCategory != "" && !slices.Contains(health.Categories(), doctorCategory) {
			return fmt.Errorf("unknown category %q (want one of %s)",
				doctorCategory, strings.Join(health.Categories(), ", "))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		checker := health.NewChecker(cfg, viper.ConfigFileUsed())
		var report *health.Report
		if doctorCategory != "" {
			report = checker.RunCategory(ctx, doctorCategory)
		} else {
			report = checker.RunAll(ctx)
		}
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Healthy {
			return errors.New("health check failed")
		}
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorCategory, "category", "", "run only the checks in one category")
	rootCmd.AddCommand(doctorCmd)
}
