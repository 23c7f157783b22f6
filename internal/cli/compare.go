package cli

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vforce/internal/native/arch/generic"
	"github.com/cwbudde/algo-vforce/internal/testutil"
	"github.com/cwbudde/algo-vforce/vforce"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	Samples   int
	Precision int
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{}

	cmd := &cobra.Command{
		Use:   "compare <op>",
		Short: "Compare the active backend against the pure Go kernels",
		Long: `Run one operation on a deterministic ramp over its domain, once on the
active backend and once on the generic backend, and print the largest
absolute difference per output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := lookupOperation(args[0])
			if err != nil {
				return err
			}
			if opts.Samples < 1 {
				return fmt.Errorf("invalid sample count %d", opts.Samples)
			}

			var report *comparison
			switch opts.Precision {
			case 64:
				report, err = compareBackends(op, op.eval64, opts.Samples)
			case 32:
				report, err = compareBackends(op, op.eval32, opts.Samples)
			default:
				return fmt.Errorf("invalid precision %d: must be 32 or 64", opts.Precision)
			}
			if err != nil {
				return err
			}
			return report.write(cmd, op, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Samples, "samples", "n", 1024, "number of sample points")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", 64, "element width in bits (32|64)")

	return cmd
}

type comparison struct {
	backend string
	maxDiff []float64
	// unitDev is the largest deviation of |re + i*im| from 1, for cosisin.
	unitDev float64
}

func compareBackends[F vforce.Float](op *operation, eval evalFunc[F], samples int) (*comparison, error) {
	inputs := make([][]F, len(op.domain))
	for i, d := range op.domain {
		inputs[i] = testutil.Ramp[F](d[0], d[1], samples)
	}

	active := vforce.Backend()
	got, err := eval(inputs, false)
	if err != nil {
		return nil, err
	}

	if err := vforce.UseBackend(generic.Name); err != nil {
		return nil, err
	}
	defer func() { _ = vforce.UseBackend(active) }()

	want, err := eval(inputs, false)
	if err != nil {
		return nil, err
	}

	report := &comparison{backend: active}
	diff := make([]float64, samples)
	for i := range got {
		g, w := testutil.Widen(got[i]), testutil.Widen(want[i])
		vecmath.ScaleBlock(diff, w, -1)
		vecmath.AddBlockInPlace(diff, g)
		report.maxDiff = append(report.maxDiff, maxDisagreement(diff, g, w))
	}

	if op.name == "cosisin" {
		mag := make([]float64, samples)
		vecmath.Magnitude(mag, testutil.Widen(got[0]), testutil.Widen(got[1]))
		for _, m := range mag {
			report.unitDev = math.Max(report.unitDev, math.Abs(m-1))
		}
	}
	return report, nil
}

func (c *comparison) write(cmd *cobra.Command, op *operation, opts *CompareOptions) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s vs %s, %d samples, float%d\n\n", op.name, c.backend, generic.Name, opts.Samples, opts.Precision)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OUTPUT\tMAX-ABS-DIFF")
	for i, d := range c.maxDiff {
		fmt.Fprintf(tw, "%s\t%g\n", op.outputs[i], d)
	}
	if op.name == "cosisin" {
		fmt.Fprintf(tw, "|re+i*im|-1\t%g\n", c.unitDev)
	}
	return tw.Flush()
}

// maxDisagreement returns the largest |got - want|. A NaN difference counts
// as agreement only when both sides hold NaN or the same infinity; any other
// NaN difference is reported as +Inf.
func maxDisagreement(diff, got, want []float64) float64 {
	m := 0.0
	for i, d := range diff {
		if math.IsNaN(d) {
			if testutil.SameFloat(got[i], want[i]) {
				continue
			}
			return math.Inf(1)
		}
		m = math.Max(m, math.Abs(d))
	}
	return m
}
