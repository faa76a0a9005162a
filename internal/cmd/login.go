package cmd

import (
	"fmt"

	"github.com/smartmail/go-assistant-client/internal/utils"
	"github.com/smartmail/go-assistant-client/session"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session token",
	Long: `Sign in to the backend with your email and password.

On success the issued token is validated and persisted locally, so other
commands can run without signing in again.

Examples:
  mailassist login --email admin@example.com --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.manager.Login(cmd.Context(), email, password); err != nil {
			// Single generic message, whatever the cause.
			return session.LoginFailedErr
		}

		if a.manager.State() != session.StateAuthenticated {
			return fmt.Errorf("signed in, but the session could not be validated; please try again")
		}

		user := utils.Value(a.manager.User())
		fmt.Printf("Logged in as %s\n", user.DisplayName())
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	rootCmd.AddCommand(loginCmd)
}
