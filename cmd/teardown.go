package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sendseven/internal/config"
	"sendseven/internal/statedata"
	"sendseven/internal/trigger"
)

var teardownCmd = &cobra.Command{
	Use:   "teardown <workflow>",
	Short: "Delete the webhook subscription registered for a workflow",
	Args:  cobra.ExactArgs(1),
	RunE:  teardownWebhook,
}

func init() {
	rootCmd.AddCommand(teardownCmd)
}

func teardownWebhook(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	client, err := newClient()
	if err != nil {
		return err
	}

	store, err := statedata.Open(cfg.StatePath)
	if err != nil {
		return err
	}

	lifecycle := trigger.NewLifecycle(client, store)
	if err := lifecycle.Delete(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Printf("webhook subscription for workflow %s removed\n", args[0])
	return nil
}
