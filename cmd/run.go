package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sendseven/internal/node"
	"sendseven/internal/types"
)

var (
	paramsJSON     string
	itemsJSON      string
	continueOnFail bool
)

var runCmd = &cobra.Command{
	Use:   "run <resource> <operation>",
	Short: "Execute an operation over a batch of input items",
	Args:  cobra.ExactArgs(2),
	RunE:  runOperation,
}

func init() {
	runCmd.Flags().StringVar(&paramsJSON, "params", "{}", "JSON operation parameters (supports ${{ item.x }} and ${{ env.X }})")
	runCmd.Flags().StringVar(&itemsJSON, "items", "[{}]", "JSON array of input items")
	runCmd.Flags().BoolVar(&continueOnFail, "continue-on-fail", false, "record item failures and keep processing")
	rootCmd.AddCommand(runCmd)
}

func runOperation(cmd *cobra.Command, args []string) error {
	registry, err := defaultRegistry()
	if err != nil {
		return err
	}

	var params map[string]any
	if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
		return fmt.Errorf("parsing --params: %w", err)
	}

	var items []types.Item
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return fmt.Errorf("parsing --items: %w", err)
	}

	runner := node.NewRunner(registry)
	runner.ContinueOnFail = continueOnFail

	result, err := runner.Run(context.Background(), args[0], args[1], params, items)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
