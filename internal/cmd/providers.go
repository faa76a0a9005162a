package cmd

import (
	"fmt"

	"github.com/smartmail/go-assistant-client/api"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage AI provider settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured AI providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(cmd.Context()); err != nil {
			return err
		}

		providers, err := a.client.AIProviders(cmd.Context())
		if err != nil {
			return err
		}
		if len(providers) == 0 {
			fmt.Println("No AI providers configured.")
			return nil
		}

		for _, provider := range providers {
			status := "inactive"
			if provider.IsActive {
				status = "active"
			}
			fmt.Printf("%-10s  priority %d  %s\n", provider.Name, provider.Priority, status)
		}
		return nil
	},
}

var providersSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Add or update an AI provider",
	Long: `Add an AI provider, or update its API key and priority if a provider
with the same name already exists.

Examples:
  mailassist providers set --name groq --api-key gsk_...
  mailassist providers set --name openai --api-key sk-... --priority 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		apiKey, _ := cmd.Flags().GetString("api-key")
		priority, _ := cmd.Flags().GetInt("priority")
		active, _ := cmd.Flags().GetBool("active")

		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if apiKey == "" {
			return fmt.Errorf("--api-key is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(cmd.Context()); err != nil {
			return err
		}

		message, err := a.client.UpsertAIProvider(cmd.Context(), api.AIProviderUpsert{
			Name:     name,
			APIKey:   apiKey,
			Priority: priority,
			IsActive: active,
		})
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	providersSetCmd.Flags().String("name", "", "provider name (groq, openai, gemini)")
	providersSetCmd.Flags().String("api-key", "", "provider API key")
	providersSetCmd.Flags().Int("priority", 1, "provider priority (lower tried first)")
	providersSetCmd.Flags().Bool("active", true, "whether the provider is active")

	providersCmd.AddCommand(providersListCmd)
	providersCmd.AddCommand(providersSetCmd)
	rootCmd.AddCommand(providersCmd)
}
