package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		user, err := a.requireUser(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s>\n", user.DisplayName(), user.Email)
		if user.ID != "" {
			fmt.Printf("id: %s\n", user.ID)
		}
		if user.OutlookProfile != "" {
			fmt.Printf("mailbox: %s\n", user.OutlookProfile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
