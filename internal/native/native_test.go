package native

import (
	"slices"
	"testing"
)

func TestOpNamesAreUnique(t *testing.T) {
	seen := map[string]bool{SinCosName: true, CosISinName: true}
	for op := UnaryOp(0); op < NumUnaryOps; op++ {
		name := op.String()
		if name == "" || seen[name] {
			t.Fatalf("unary op %d has empty or duplicate name %q", int(op), name)
		}
		seen[name] = true
	}
	for op := BinaryOp(0); op < NumBinaryOps; op++ {
		name := op.String()
		if name == "" || seen[name] {
			t.Fatalf("binary op %d has empty or duplicate name %q", int(op), name)
		}
		seen[name] = true
	}
	if len(seen) != 40 {
		t.Fatalf("expected 40 routines, got %d", len(seen))
	}
}

func TestOpStringOutOfRange(t *testing.T) {
	if got := NumUnaryOps.String(); got != "UnaryOp(31)" {
		t.Errorf("NumUnaryOps.String() = %q", got)
	}
	if got := BinaryOp(-1).String(); got != "BinaryOp(-1)" {
		t.Errorf("BinaryOp(-1).String() = %q", got)
	}
}

func TestTableMissing(t *testing.T) {
	var tbl Table[float64]
	missing := tbl.Missing()
	if len(missing) != 40 {
		t.Fatalf("empty table: expected 40 missing routines, got %d", len(missing))
	}

	for op := range tbl.Unary {
		tbl.Unary[op] = func(out, x *float64, n int32) {}
	}
	for op := range tbl.Binary {
		tbl.Binary[op] = func(out, a, b *float64, n int32) {}
	}
	tbl.SinCos = func(s, c, x *float64, n int32) {}

	missing = tbl.Missing()
	if !slices.Equal(missing, []string{CosISinName}) {
		t.Fatalf("expected only %q missing, got %v", CosISinName, missing)
	}

	var nilTable *Table[float32]
	if len(nilTable.Missing()) != 1 {
		t.Fatal("nil table should report itself as missing")
	}
}
