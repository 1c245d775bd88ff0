package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List all available resources and their operations",
	Args:  cobra.NoArgs,
	RunE:  listResources,
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
}

func listResources(cmd *cobra.Command, args []string) error {
	registry, err := defaultRegistry()
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		type opSummary struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		summary := make(map[string][]opSummary)
		for _, name := range registry.List() {
			res, _ := registry.Get(name)
			for _, op := range res.Operations() {
				summary[name] = append(summary[name], opSummary{Name: op.Name, Description: op.Description})
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RESOURCE\tOPERATION\tDESCRIPTION")
	for _, name := range registry.List() {
		res, _ := registry.Get(name)
		for _, op := range res.Operations() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, op.Name, op.Description)
		}
	}
	return w.Flush()
}
