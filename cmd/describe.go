package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <resource>",
	Short: "Show the operations and parameter schemas of a resource",
	Args:  cobra.ExactArgs(1),
	RunE:  describeResource,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func describeResource(cmd *cobra.Command, args []string) error {
	registry, err := defaultRegistry()
	if err != nil {
		return err
	}

	res, ok := registry.Get(args[0])
	if !ok {
		return fmt.Errorf("resource %q not found (try 'sendseven resources')", args[0])
	}

	ops := res.Operations()

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ops)
	}

	fmt.Printf("Resource: %s\n", res.Name())
	for _, op := range ops {
		fmt.Printf("\n%s — %s\n", op.Name, op.Description)
		if len(op.Params) == 0 {
			continue
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  PARAM\tTYPE\tREQUIRED\tDESCRIPTION")
		for name, field := range op.Params {
			fmt.Fprintf(w, "  %s\t%s\t%v\t%s\n", name, field.Type, field.Required, field.Description)
		}
		w.Flush()
	}
	return nil
}
