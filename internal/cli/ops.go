package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List every operation with its operands and in-place form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "OP\tGROUP\tINPUTS\tOUTPUTS\tFUNC\tIN-PLACE")
			for _, op := range catalog {
				if group != "" && op.group != group {
					continue
				}
				inPlace := op.inPlace
				if inPlace == "" {
					inPlace = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					op.name, op.group,
					strings.Join(op.inputs, ","), strings.Join(op.outputs, ","),
					op.fn, inPlace)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "only list one group (arithmetic|exponential|trig|hyperbolic|binary)")

	return cmd
}
