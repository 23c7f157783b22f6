package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vforce/internal/native"
	"github.com/cwbudde/algo-vforce/vforce"
)

func TestEvalGolden(t *testing.T) {
	g := newGoldie(t)

	tests := []struct {
		name string
		args []string
	}{
		{"eval_sqrt", []string{"eval", "sqrt", "4,9,2"}},
		{"eval_pow", []string{"eval", "pow", "2,3,4,5", "3,2,0.5,1"}},
		{"eval_sincos", []string{"eval", "sincos", "0,-0"}},
		{"eval_cosisin", []string{"eval", "cosisin", "0"}},
		{"eval_div_float32", []string{"eval", "--precision", "32", "div", "1,2", "3,8"}},
		{"eval_floor_in_place", []string{"eval", "--in-place", "floor", "--", "-1.5,2.5"}},
		{"eval_atan2_special", []string{"eval", "atan2", "--", "0,-0,1", "-0,-0,-inf"}},
		{"eval_nint", []string{"eval", "nint", "--", "0.5,1.5,2.5,-2.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--backend", "generic"}, tt.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown op", []string{"eval", "gamma", "1"}, `unknown operation "gamma"`},
		{"missing operand", []string{"eval", "pow", "1,2"}, "pow takes 2 value list(s)"},
		{"extra operand", []string{"eval", "sin", "1", "2"}, "sin takes 1 value list(s)"},
		{"bad value", []string{"eval", "sin", "1,abc"}, `invalid value "abc"`},
		{"bad precision", []string{"eval", "--precision", "16", "sin", "1"}, "invalid precision 16"},
		{"cosisin in place", []string{"eval", "--in-place", "cosisin", "1"}, "no in-place form"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEvalLengthMismatch(t *testing.T) {
	_, err := execute(t, "eval", "div", "1,2,3", "1,2")
	require.ErrorIs(t, err, vforce.ErrLengthMismatch)
	require.Contains(t, err.Error(), "denominator")
}

func TestCatalogCoversEveryRoutine(t *testing.T) {
	want := map[string]bool{native.SinCosName: true, native.CosISinName: true}
	for op := native.UnaryOp(0); op < native.NumUnaryOps; op++ {
		want[op.String()] = true
	}
	for op := native.BinaryOp(0); op < native.NumBinaryOps; op++ {
		want[op.String()] = true
	}

	require.Len(t, catalog, len(want))
	for _, op := range catalog {
		require.True(t, want[op.name], "catalog entry %q is not a native routine", op.name)
		require.Len(t, op.domain, len(op.inputs), op.name)
		require.NotNil(t, op.eval64, op.name)
		require.NotNil(t, op.eval32, op.name)
	}
}

func TestParseValues(t *testing.T) {
	values, err := parseValues[float64](" 1, -0.5 ,inf,,NaN", 64)
	require.NoError(t, err)
	require.Len(t, values, 4)
	require.Equal(t, 1.0, values[0])
	require.Equal(t, -0.5, values[1])
	require.Equal(t, "+Inf,NaN", formatValues(values[2:], 64))

	f32, err := parseValues[float32]("0.1", 32)
	require.NoError(t, err)
	require.Equal(t, "0.1", formatValues(f32, 32))
}
