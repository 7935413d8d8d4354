package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the storefront",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		// Best-effort server round trip; the local session always clears.
		a.session.Logout(cmd.Context())
		if err := a.prefs.ClearSavedLogin(); err != nil {
			a.logger.Warn("failed to clear saved login", "error", err)
		}
		cmd.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
