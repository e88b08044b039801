package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dallionking/milestone/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the board theme",
	Long:      `Without an argument, print the stored theme. With one, store the new theme.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			switch args[0] {
			case "dark":
				store.SetTheme(true)
			case "light":
				store.SetTheme(false)
			case "toggle":
				store.ToggleTheme()
			}
			logger.Info("theme changed", zap.Bool("dark", store.DarkMode()))
		}

		name := "light"
		if store.DarkMode() {
			name = "dark"
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Label.Render("THEME")+"  "+styles.Value.Render(name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
