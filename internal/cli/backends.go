package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vforce/internal/cpu"
	"github.com/cwbudde/algo-vforce/vforce"
)

// NewBackendsCommand creates the backends command.
func NewBackendsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered backends and the one serving calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackends(cmd)
		},
	}
}

func runBackends(cmd *cobra.Command) error {
	f := cpu.DetectFeatures()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "platform: %s/%s  accelerate linked: %t  %s set: %t\n",
		f.OS, f.Architecture, f.HasAccelerate, cpu.NoNativeEnv, f.ForceGeneric)
	fmt.Fprintf(out, "features: %s\n\n", f.SIMD())

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLEVEL\tPRIORITY\tSUPPORTED\tCOMPLETE\tSELECTED")
	for _, b := range vforce.Backends() {
		selected := ""
		if b.Selected {
			selected = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%t\t%s\n",
			b.Name, b.Level, b.Priority, b.Supported, b.Complete, selected)
	}
	return tw.Flush()
}
