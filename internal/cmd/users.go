package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(cmd.Context()); err != nil {
			return err
		}

		list, err := a.client.Users(cmd.Context())
		if err != nil {
			return err
		}

		for _, user := range list {
			fmt.Printf("%-36s  %-24s  %s\n", user.ID, user.Name, user.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
