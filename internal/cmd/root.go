package cmd

import (
	"context"
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/smartmail/go-assistant-client/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mailassist",
	Short: "Smart Email Assistant command line client",
	Long: `mailassist signs in to a Smart Email Assistant backend, lists synced
emails, triggers mailbox syncs, and manages AI provider and user settings.

The session token is persisted locally, so signing in once is enough until
the token expires or 'mailassist logout' is run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		displayAppName(config.New().GetAppName())
		return cmd.Help()
	},
}

// ExecuteContext runs the root command
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func displayAppName(appName string) {
	myFigure := figure.NewFigure(appName, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
