package eval

import (
	"github.com/you-not-fish/minipl/internal/ast"
)

// eval evaluates an expression. The result's kind always matches the
// expression's static type; a mismatch is an internal error.
func (in *Interpreter) eval(x ast.Expr) (Value, error) {
	v, err := in.evalExpr(x)
	if err != nil {
		return nil, err
	}
	if k, ok := kindOf(x.Type()); !ok || k != v.Kind() {
		return nil, internalErrorf(x.Start().Pos, "%T of type %v produced %s value", x, x.Type(), v.Kind())
	}
	return v, nil
}

func (in *Interpreter) evalExpr(x ast.Expr) (Value, error) {
	switch x := x.(type) {
	case *ast.IntLit:
		return IntValue{Val: x.Value}, nil

	case *ast.StringLit:
		return StringValue{Val: x.Value}, nil

	case *ast.BoolLit:
		return BoolValue{Val: x.Value}, nil

	case *ast.VarRef:
		return in.store.Get(x.Tok.Pos, x.Name)

	case *ast.UnaryExpr:
		v, err := in.eval(x.X)
		if err != nil {
			return nil, err
		}
		b, ok := v.(BoolValue)
		if x.Op != ast.OpNot || !ok {
			return nil, internalErrorf(x.Tok.Pos, "cannot apply %s to %s", x.Op, v.Kind())
		}
		return BoolValue{Val: !b.Val}, nil

	case *ast.BinaryExpr:
		return in.binary(x)
	}
	return nil, internalErrorf(x.Start().Pos, "unknown expression %T", x)
}

// binary folds the operands left to right: a op b op c is (a op b) op c.
func (in *Interpreter) binary(x *ast.BinaryExpr) (Value, error) {
	if len(x.Operands) < 2 {
		return nil, internalErrorf(x.Tok.Pos, "%s with %d operands", x.Op, len(x.Operands))
	}
	acc, err := in.eval(x.Operands[0])
	if err != nil {
		return nil, err
	}
	for _, y := range x.Operands[1:] {
		right, err := in.eval(y)
		if err != nil {
			return nil, err
		}
		acc, err = in.apply(x, y, acc, right)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// apply computes left op right for one step of a fold; y is the right
// operand's expression.
func (in *Interpreter) apply(x *ast.BinaryExpr, y ast.Expr, left, right Value) (Value, error) {
	switch l := left.(type) {
	case IntValue:
		r, ok := right.(IntValue)
		if !ok {
			break
		}
		switch x.Op {
		case ast.OpAdd:
			return IntValue{Val: l.Val + r.Val}, nil
		case ast.OpSub:
			return IntValue{Val: l.Val - r.Val}, nil
		case ast.OpMul:
			return IntValue{Val: l.Val * r.Val}, nil
		case ast.OpDiv:
			if r.Val == 0 {
				return nil, runtimeErrorf(y.Start().Pos, "division by zero")
			}
			return IntValue{Val: l.Val / r.Val}, nil
		case ast.OpLess:
			return BoolValue{Val: l.Val < r.Val}, nil
		case ast.OpEqual:
			return BoolValue{Val: l.Val == r.Val}, nil
		}

	case StringValue:
		r, ok := right.(StringValue)
		if !ok {
			break
		}
		switch x.Op {
		case ast.OpAdd:
			return StringValue{Val: l.Val + r.Val}, nil
		case ast.OpEqual:
			return BoolValue{Val: l.Val == r.Val}, nil
		}

	case BoolValue:
		r, ok := right.(BoolValue)
		if !ok {
			break
		}
		switch x.Op {
		case ast.OpEqual:
			return BoolValue{Val: l.Val == r.Val}, nil
		case ast.OpAnd:
			return BoolValue{Val: l.Val && r.Val}, nil
		}
	}
	return nil, internalErrorf(x.Tok.Pos, "cannot apply %s to %s and %s", x.Op, left.Kind(), right.Kind())
}

// evalInt evaluates an expression of static type int.
func (in *Interpreter) evalInt(x ast.Expr) (int64, error) {
	v, err := in.eval(x)
	if err != nil {
		return 0, err
	}
	n, ok := v.(IntValue)
	if !ok {
		return 0, internalErrorf(x.Start().Pos, "expected int, got %s", v.Kind())
	}
	return n.Val, nil
}
