package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaeze/nairamart/prefs"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change client settings",
}

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|system]",
	Short:     "Show or set the theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "system"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 0 {
			theme, err := a.prefs.Theme()
			if err != nil {
				return fmt.Errorf("reading theme: %w", err)
			}
			cmd.Printf("theme: %s\n", theme)
			return nil
		}

		theme := prefs.Theme(args[0])
		switch theme {
		case prefs.ThemeLight, prefs.ThemeDark, prefs.ThemeSystem:
		default:
			return fmt.Errorf("unknown theme %q (expected light, dark or system)", args[0])
		}
		if err := a.prefs.SetTheme(theme); err != nil {
			return fmt.Errorf("saving theme: %w", err)
		}
		cmd.Printf("theme set to %s\n", theme)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(themeCmd)
}
