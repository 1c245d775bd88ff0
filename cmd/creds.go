package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var credsCmd = &cobra.Command{
	Use:   "creds",
	Short: "Credential utilities",
}

var credsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured credentials against the API",
	Args:  cobra.NoArgs,
	RunE:  checkCredentials,
}

func init() {
	credsCmd.AddCommand(credsCheckCmd)
	rootCmd.AddCommand(credsCmd)
}

func checkCredentials(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	resolved, err := client.Credentials.Resolve()
	if err != nil {
		return err
	}

	channels, err := client.ListChannels(context.Background())
	if err != nil {
		return fmt.Errorf("credential check failed: %w", err)
	}

	fmt.Printf("ok: authenticated via %s, account has %d channel(s)\n", resolved.Type, len(channels))
	return nil
}
