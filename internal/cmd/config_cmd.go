package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/milestone/internal/config"
	"github.com/Dallionking/milestone/internal/tui/styles"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the configuration assembled from config.json, MILESTONE_*
environment variables and flags, followed by any validation problems.`,
	Annotations: map[string]string{skipSetup: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if configJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		}

		source := viper.ConfigFileUsed()
		if source == "" {
			source = "(defaults)"
		}

		fmt.Fprintln(out, styles.Title.Render("Configuration"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Label.Render("SOURCE")+"        "+styles.Value.Render(source))
		fmt.Fprintln(out, styles.Label.Render("DATA DIR")+"      "+styles.Value.Render(cfg.DataDir))
		fmt.Fprintln(out, styles.Label.Render("THEME")+"         "+styles.Value.Render(cfg.Theme.Default))
		fmt.Fprintln(out, styles.Label.Render("COLUMNS")+"       "+styles.Value.Render(columnsLabel(cfg.Grid.Columns)))
		fmt.Fprintln(out, styles.Label.Render("CELEBRATION")+"   "+styles.Value.Render(cfg.CelebrationDuration().String()))
		fmt.Fprintln(out, styles.Label.Render("LOG FILE")+"      "+styles.Value.Render(cfg.Log.File))
		fmt.Fprintln(out, styles.Label.Render("LOG LEVEL")+"     "+styles.Value.Render(cfg.Log.Level))
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Divider(50))
		fmt.Fprintln(out)

		errs := config.Validate(cfg)
		if len(errs) == 0 {
			fmt.Fprintln(out, styles.StatusBadge("ok")+" "+styles.Dim("configuration is valid"))
			return nil
		}
		for _, e := range errs {
			fmt.Fprintln(out, styles.StatusBadge("error")+" "+e.Error())
		}
		return fmt.Errorf("config has %d problem(s)", len(errs))
	},
}

func columnsLabel(n int) string {
	if n == 0 {
		return "auto"
	}
	return fmt.Sprintf("%d", n)
}

func init() {
	configCmd.Flags().BoolVar(&configJSON, "json", false, "print the configuration as JSON")
	rootCmd.AddCommand(configCmd)
}
