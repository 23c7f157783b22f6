// Package cli implements the vvinfo command line tool.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vforce/vforce"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Backend string
	Verbose bool
}

// NewRootCommand creates the root command for vvinfo.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "vvinfo",
		Short: "Inspect and exercise vforce vector math backends",
		Long: `vvinfo lists the vector math backends linked into this binary and runs
single vforce operations on values given on the command line.

Negative values must follow a "--" argument, e.g.
  vvinfo eval atan2 -- -1,1 -1,-1`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if opts.Verbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(level).
				With().Timestamp().Logger()
			vforce.SetLogger(logger)

			if opts.Backend == "" {
				vforce.ResetBackend()
				return nil
			}
			return vforce.UseBackend(opts.Backend)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.Backend, "backend", "b", "", "force a backend by name (default: best available)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log backend selection and chunking to stderr")

	cmd.AddCommand(NewBackendsCommand(opts))
	cmd.AddCommand(NewOpsCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))

	return cmd
}
