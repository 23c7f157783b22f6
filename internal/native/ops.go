package native

import "fmt"

// UnaryOp identifies a one-input, one-output routine.
type UnaryOp int

// Unary routines, in the order of the vForce header.
const (
	OpCeil UnaryOp = iota
	OpFloor
	OpFabs
	OpInt
	OpNint
	OpRsqrt
	OpSqrt
	OpRec
	OpExp
	OpExp2
	OpExpm1
	OpLog
	OpLog1p
	OpLog2
	OpLog10
	OpLogb
	OpSin
	OpSinpi
	OpCos
	OpCospi
	OpTan
	OpTanpi
	OpAsin
	OpAcos
	OpAtan
	OpSinh
	OpCosh
	OpTanh
	OpAsinh
	OpAcosh
	OpAtanh

	NumUnaryOps
)

var unaryNames = [NumUnaryOps]string{
	OpCeil:  "ceil",
	OpFloor: "floor",
	OpFabs:  "fabs",
	OpInt:   "int",
	OpNint:  "nint",
	OpRsqrt: "rsqrt",
	OpSqrt:  "sqrt",
	OpRec:   "rec",
	OpExp:   "exp",
	OpExp2:  "exp2",
	OpExpm1: "expm1",
	OpLog:   "log",
	OpLog1p: "log1p",
	OpLog2:  "log2",
	OpLog10: "log10",
	OpLogb:  "logb",
	OpSin:   "sin",
	OpSinpi: "sinpi",
	OpCos:   "cos",
	OpCospi: "cospi",
	OpTan:   "tan",
	OpTanpi: "tanpi",
	OpAsin:  "asin",
	OpAcos:  "acos",
	OpAtan:  "atan",
	OpSinh:  "sinh",
	OpCosh:  "cosh",
	OpTanh:  "tanh",
	OpAsinh: "asinh",
	OpAcosh: "acosh",
	OpAtanh: "atanh",
}

func (op UnaryOp) String() string {
	if op < 0 || op >= NumUnaryOps {
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
	return unaryNames[op]
}

// BinaryOp identifies a two-input, one-output routine.
// The first operand is the one overwritten by in-place variants.
type BinaryOp int

// Binary routines.
const (
	OpPow BinaryOp = iota
	OpDiv
	OpCopysign
	OpFmod
	OpRemainder
	OpNextafter
	OpAtan2

	NumBinaryOps
)

var binaryNames = [NumBinaryOps]string{
	OpPow:       "pow",
	OpDiv:       "div",
	OpCopysign:  "copysign",
	OpFmod:      "fmod",
	OpRemainder: "remainder",
	OpNextafter: "nextafter",
	OpAtan2:     "atan2",
}

func (op BinaryOp) String() string {
	if op < 0 || op >= NumBinaryOps {
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
	return binaryNames[op]
}

// Names of the two special-shape routines.
const (
	SinCosName  = "sincos"
	CosISinName = "cosisin"
)
