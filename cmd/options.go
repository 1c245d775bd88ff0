package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sendseven/internal/node"
)

var optionsCmd = &cobra.Command{
	Use:   "options <source>",
	Short: "Load dynamic dropdown options (channels, tags, templates, teammates)",
	Args:  cobra.ExactArgs(1),
	RunE:  loadOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func loadOptions(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	opts := &node.Options{Client: client}
	options, err := opts.Load(context.Background(), args[0])
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(options)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUE")
	for _, opt := range options {
		fmt.Fprintf(w, "%s\t%s\n", opt.Name, opt.Value)
	}
	return w.Flush()
}
