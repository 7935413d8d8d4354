package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	registerUsername string
	registerEmail    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a storefront account",
	Long: `Creates an account on the backend. Registration does not log you
in; run "nairamart login" afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		username := registerUsername
		if username == "" {
			if username, err = promptLine(cmd, "Username: "); err != nil {
				return err
			}
		}
		email := registerEmail
		if email == "" {
			if email, err = promptLine(cmd, "Email: "); err != nil {
				return err
			}
		}
		password, err := promptPassword(cmd, "Password: ")
		if err != nil {
			return err
		}
		defer password.Destroy()

		if err := a.session.Register(cmd.Context(), username, email, password.String()); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		cmd.Printf("Account %s created. Run `nairamart login` to sign in.\n", username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Username (prompted when omitted)")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address (prompted when omitted)")
}
