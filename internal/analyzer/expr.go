package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// exprAt analyzes child i of b, which must be an expression branch.
func (c *Checker) exprAt(b *syntax.Branch, i int) (ast.Expr, error) {
	x := b.Branch(i)
	if x == nil || x.Tag != syntax.Expression {
		return nil, c.invalidTree(b.Pos(), "child %d is not an expression", i)
	}
	return c.expr(x)
}

// expr analyzes an expression branch at any precedence level.
// Levels with a single child defer to the next tighter level.
func (c *Checker) expr(b *syntax.Branch) (ast.Expr, error) {
	switch b.Tag {
	case syntax.Expression:
		return c.sub(b, 0)

	case syntax.Expr6, syntax.Expr5, syntax.Expr4, syntax.Expr3, syntax.Expr2:
		if b.Len() > 1 {
			return c.binary(b)
		}
		return c.sub(b, 0)

	case syntax.Expr1:
		if b.Len() > 1 {
			return c.unary(b)
		}
		return c.sub(b, 0)

	case syntax.Expr0:
		return c.operand(b)
	}
	return nil, c.invalidTree(b.Pos(), "%s is not an expression", b.Tag)
}

func (c *Checker) sub(b *syntax.Branch, i int) (ast.Expr, error) {
	x := b.Branch(i)
	if x == nil {
		return nil, c.invalidTree(b.Pos(), "%s child %d is not a branch", b.Tag, i)
	}
	return c.expr(x)
}

// binary analyzes operand (op operand)+.
//
// A run of the same operator becomes one BinaryExpr with all of its
// operands. When the operator changes within a level (1 + 2 - 3), the
// expression so far becomes the first operand of the next run, keeping
// left associativity. Comparisons always take exactly two operands, so
// 1 = 1 = true is (1 = 1) = true.
func (c *Checker) binary(b *syntax.Branch) (ast.Expr, error) {
	first, err := c.sub(b, 0)
	if err != nil {
		return nil, err
	}

	var (
		op       ast.Operator
		operands = []ast.Expr{first}
	)
	for i := 1; i+1 < b.Len(); i += 2 {
		l := b.Leaf(i)
		if l == nil || l.Tok.Kind != syntax.BinaryOp {
			return nil, c.invalidTree(b.Pos(), "%s child %d is not an operator", b.Tag, i)
		}
		next := ast.LookupBinary(l.Tok.Lit)
		if next == ast.OpInvalid {
			return nil, c.invalidTree(l.Tok.Pos, "unknown operator %s", l.Tok.Lit)
		}
		if op != ast.OpInvalid && (next != op || op.IsComparison()) {
			x, err := c.apply(op, operands)
			if err != nil {
				return nil, err
			}
			operands = []ast.Expr{x}
		}
		op = next

		y, err := c.sub(b, i+1)
		if err != nil {
			return nil, err
		}
		operands = append(operands, y)
	}
	return c.apply(op, operands)
}

// apply types one application of op to operands.
func (c *Checker) apply(op ast.Operator, operands []ast.Expr) (ast.Expr, error) {
	// Distinct operand types, each with the first operand that has it.
	var seen []ast.Expr
	for _, x := range operands {
		dup := false
		for _, s := range seen {
			if types.Identical(s.Type(), x.Type()) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, x)
		}
	}
	if len(seen) > 1 {
		list := make([]string, len(seen))
		for i, x := range seen {
			list[i] = fmt.Sprintf("%s (at %s)", x.Type(), x.Start().Pos)
		}
		return nil, c.errorf(operands[0].Start().Pos, "mismatched operand types for %s: %s", op, strings.Join(list, ", "))
	}

	operand := operands[0].Type()
	result := op.Result(operand)
	if result == nil {
		return nil, c.errorf(operands[0].Start().Pos, "operator %s not defined on %s (want %s)", op, operand, typeList(op.Operands()))
	}
	return &ast.BinaryExpr{
		Tok:      operands[0].Start(),
		Typ:      result,
		Op:       op,
		Operands: operands,
	}, nil
}

// unary analyzes '!' e1.
func (c *Checker) unary(b *syntax.Branch) (ast.Expr, error) {
	l := b.Leaf(0)
	if l == nil || !l.Tok.Is(syntax.UnaryOp, "!") {
		return nil, c.invalidTree(b.Pos(), "unary expression without operator")
	}
	x, err := c.sub(b, 1)
	if err != nil {
		return nil, err
	}
	result := ast.OpNot.Result(x.Type())
	if result == nil {
		return nil, c.errorf(x.Start().Pos, "operator %s not defined on %s (want %s)", ast.OpNot, x.Type(), typeList(ast.OpNot.Operands()))
	}
	return &ast.UnaryExpr{Tok: l.Tok, Typ: result, Op: ast.OpNot, X: x}, nil
}

// operand analyzes NUMBER | STRING | IDENT | BOOL | '(' expr ')'.
func (c *Checker) operand(b *syntax.Branch) (ast.Expr, error) {
	l := b.Leaf(0)
	if l == nil {
		return nil, c.invalidTree(b.Pos(), "operand does not start with a token")
	}
	tok := l.Tok

	switch tok.Kind {
	case syntax.Number:
		v, err := strconv.ParseInt(tok.Lit, 10, 64)
		if err != nil {
			return nil, c.errorf(tok.Pos, "integer literal %s out of range", tok.Lit)
		}
		return &ast.IntLit{Tok: tok, Value: v}, nil

	case syntax.String:
		return &ast.StringLit{Tok: tok, Value: tok.Lit}, nil

	case syntax.Bool:
		return &ast.BoolLit{Tok: tok, Value: tok.Lit == "true"}, nil

	case syntax.Name:
		return c.varRef(l)

	case syntax.Lparen:
		return c.sub(b, 1)
	}
	return nil, c.invalidTree(tok.Pos, "unexpected operand %s", tok)
}

// varRef resolves a variable read, which requires the variable to be
// initialized.
func (c *Checker) varRef(id *syntax.Leaf) (ast.Expr, error) {
	v, err := c.resolve(id)
	if err != nil {
		return nil, err
	}
	if !v.Initialized() {
		return nil, c.errorf(id.Tok.Pos, "variable %s read before initialized", v.Name())
	}
	return &ast.VarRef{Tok: id.Tok, Typ: v.Type(), Name: v.Name()}, nil
}

// typeList spells the members of s as "int or string".
func typeList(s types.Set) string {
	var names []string
	for _, t := range s.Types() {
		names = append(names, t.String())
	}
	return strings.Join(names, " or ")
}
