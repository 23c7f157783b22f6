package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vforce/vforce"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	Precision int
	InPlace   bool
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval <op> <values> [<values>]",
		Short: "Run one operation on comma-separated values",
		Long: `Run one operation on comma-separated values and print the result.

Binary operations take two value lists of equal length. Operations with two
outputs (sincos, cosisin) print one labelled line per output.`,
		Example: `  vvinfo eval sin 0.5,1,2,3.5
  vvinfo eval pow 2,3,4,5 3,2,0.5,1
  vvinfo eval --precision 32 --in-place sqrt 2,4`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := lookupOperation(args[0])
			if err != nil {
				return err
			}
			if got, want := len(args)-1, len(op.inputs); got != want {
				return fmt.Errorf("%s takes %d value list(s) (%s), got %d",
					op.name, want, strings.Join(op.inputs, ", "), got)
			}

			switch opts.Precision {
			case 64:
				return runEval(cmd.OutOrStdout(), op.eval64, op.outputs, args[1:], 64, opts.InPlace)
			case 32:
				return runEval(cmd.OutOrStdout(), op.eval32, op.outputs, args[1:], 32, opts.InPlace)
			default:
				return fmt.Errorf("invalid precision %d: must be 32 or 64", opts.Precision)
			}
		},
	}

	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", 64, "element width in bits (32|64)")
	cmd.Flags().BoolVar(&opts.InPlace, "in-place", false, "use the in-place variant")

	return cmd
}

func runEval[F vforce.Float](w io.Writer, eval evalFunc[F], outputs, lists []string, bits int, inPlace bool) error {
	inputs := make([][]F, len(lists))
	for i, list := range lists {
		values, err := parseValues[F](list, bits)
		if err != nil {
			return err
		}
		inputs[i] = values
	}

	results, err := eval(inputs, inPlace)
	if err != nil {
		return err
	}
	writeResults(w, outputs, results, bits)
	return nil
}

func parseValues[F vforce.Float](list string, bits int) ([]F, error) {
	fields := strings.Split(list, ",")
	values := make([]F, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, bits)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", field, err)
		}
		values = append(values, F(v))
	}
	return values, nil
}

func formatValues[F vforce.Float](values []F, bits int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, bits)
	}
	return strings.Join(parts, ",")
}

func writeResults[F vforce.Float](w io.Writer, names []string, results [][]F, bits int) {
	if len(results) == 1 {
		fmt.Fprintln(w, formatValues(results[0], bits))
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "%s: %s\n", names[i], formatValues(r, bits))
	}
}
