package ast

import (
	"fmt"

	"github.com/you-not-fish/minipl/internal/types"
)

// Operator is a resolved Mini-PL operator.
type Operator int

const (
	OpInvalid Operator = iota

	OpAdd   // +
	OpSub   // -
	OpMul   // *
	OpDiv   // /
	OpLess  // <
	OpEqual // =
	OpAnd   // &
	OpNot   // ! (unary)

	opCount
)

type opInfo struct {
	name     string
	operands types.Set
	result   types.BasicKind // Invalid: same as operand
	unary    bool
}

var opTable = [...]opInfo{
	OpInvalid: {name: "OpInvalid"},
	OpAdd:     {name: "+", operands: types.NewSet(types.Int, types.String)},
	OpSub:     {name: "-", operands: types.NewSet(types.Int)},
	OpMul:     {name: "*", operands: types.NewSet(types.Int)},
	OpDiv:     {name: "/", operands: types.NewSet(types.Int)},
	OpLess:    {name: "<", operands: types.NewSet(types.Int), result: types.Bool},
	OpEqual:   {name: "=", operands: types.NewSet(types.Int, types.String, types.Bool), result: types.Bool},
	OpAnd:     {name: "&", operands: types.NewSet(types.Bool), result: types.Bool},
	OpNot:     {name: "!", operands: types.NewSet(types.Bool), result: types.Bool, unary: true},
}

func (op Operator) String() string {
	if op >= 0 && op < opCount {
		return opTable[op].name
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// IsUnary reports whether op takes a single operand.
func (op Operator) IsUnary() bool {
	return op > OpInvalid && op < opCount && opTable[op].unary
}

// IsComparison reports whether op yields bool from operands of any
// type. Such operators do not fold across more than two operands.
func (op Operator) IsComparison() bool {
	return op == OpLess || op == OpEqual
}

// Operands returns the set of operand types op accepts.
func (op Operator) Operands() types.Set {
	if op > OpInvalid && op < opCount {
		return opTable[op].operands
	}
	return 0
}

// Result returns the type of applying op to operands of type operand.
// It returns nil if op does not accept operand.
func (op Operator) Result(operand *types.Basic) *types.Basic {
	if !op.Operands().Contains(operand) {
		return nil
	}
	if k := opTable[op].result; k != types.Invalid {
		return types.Typ[k]
	}
	return operand
}

// LookupBinary returns the binary operator spelled lit, or OpInvalid.
func LookupBinary(lit string) Operator {
	for op := OpAdd; op < opCount; op++ {
		if !opTable[op].unary && opTable[op].name == lit {
			return op
		}
	}
	return OpInvalid
}
