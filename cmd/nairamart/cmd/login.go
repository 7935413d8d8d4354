package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginUsername string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the storefront",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		username := loginUsername
		if username == "" {
			if username, err = promptLine(cmd, "Username: "); err != nil {
				return err
			}
		}
		password, err := promptPassword(cmd, "Password: ")
		if err != nil {
			return err
		}
		defer password.Destroy()

		if err := a.session.Login(cmd.Context(), username, password.String()); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		state := a.session.Current()
		if state.User != nil {
			if err := a.prefs.SetSavedLogin(*state.User); err != nil {
				a.logger.Warn("failed to persist login", "error", err)
			}
		}
		cmd.Printf("Logged in as %s\n", username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username (prompted when omitted)")
}
