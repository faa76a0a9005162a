package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var emailsCmd = &cobra.Command{
	Use:   "emails",
	Short: "List synced emails",
	Long: `List the most recently synced emails, newest first.

Examples:
  mailassist emails
  mailassist emails --unread`,
	RunE: func(cmd *cobra.Command, args []string) error {
		unreadOnly, _ := cmd.Flags().GetBool("unread")

		a, err := newApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(cmd.Context()); err != nil {
			return err
		}

		list, err := a.client.Emails(cmd.Context())
		if err != nil {
			return err
		}

		shown := 0
		for _, email := range list {
			if unreadOnly && email.IsRead {
				continue
			}
			marker := " "
			if !email.IsRead {
				marker = "*"
			}
			if email.IsFlagged {
				marker += "!"
			}
			received := ""
			if email.ReceivedAt != nil {
				received = email.ReceivedAt.Format("2006-01-02 15:04")
			}
			fmt.Printf("%-2s %-16s  %-28.28s  %s\n", marker, received, email.Sender, email.Subject)
			shown++
		}
		if shown == 0 {
			fmt.Println("No emails. Run 'mailassist sync' to pull new mail.")
		}
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull new mail from the linked mailbox",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(cmd.Context()); err != nil {
			return err
		}

		message, err := a.client.SyncEmails(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	emailsCmd.Flags().Bool("unread", false, "only show unread emails")
	rootCmd.AddCommand(emailsCmd)
	rootCmd.AddCommand(syncCmd)
}
