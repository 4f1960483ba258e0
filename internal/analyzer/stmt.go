package analyzer

import (
	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// stmt analyzes a statement branch. The statement kind is decided by its
// first token.
func (c *Checker) stmt(b *syntax.Branch) (ast.Stmt, error) {
	first := b.Leaf(0)
	if first == nil {
		return nil, c.invalidTree(b.Pos(), "statement does not start with a token")
	}
	c.trace.Debug("Analyzing statement", "kind", first.Tok.Lit, "pos", first.Tok.Pos)

	if first.Tok.Kind == syntax.Name {
		return c.assignment(b)
	}
	switch {
	case first.Tok.IsKeyword(syntax.KwVar):
		return c.declaration(b)
	case first.Tok.IsKeyword(syntax.KwFor):
		return c.forLoop(b)
	case first.Tok.IsKeyword(syntax.KwRead):
		return c.read(b)
	case first.Tok.IsKeyword(syntax.KwPrint):
		return c.print(b)
	case first.Tok.IsKeyword(syntax.KwAssert):
		return c.assert(b)
	}
	return nil, c.invalidTree(b.Pos(), "unexpected statement start %s", first.Tok)
}

// assignment: IDENT ':=' expr
func (c *Checker) assignment(b *syntax.Branch) (ast.Stmt, error) {
	id, err := c.ident(b, 0)
	if err != nil {
		return nil, err
	}
	v, err := c.resolve(id)
	if err != nil {
		return nil, err
	}
	x, err := c.exprAt(b, 2)
	if err != nil {
		return nil, err
	}
	if !types.Identical(x.Type(), v.Type()) {
		return nil, c.errorf(x.Start().Pos, "cannot assign %s value to %s (type %s)", x.Type(), v.Name(), v.Type())
	}
	v.SetInitialized()
	return &ast.Assignment{Tok: id.Tok, Name: v.Name(), Typ: v.Type(), Value: x}, nil
}

// forLoop: 'for' IDENT 'in' expr '..' expr 'do' (statement ';')+ 'end' 'for'
//
// The loop variable counts as initialized from the start of the loop,
// including inside its own bounds.
func (c *Checker) forLoop(b *syntax.Branch) (ast.Stmt, error) {
	if b.Len() < 11 {
		return nil, c.invalidTree(b.Pos(), "for statement has %d children", b.Len())
	}
	id, err := c.ident(b, 1)
	if err != nil {
		return nil, err
	}
	v, err := c.resolve(id)
	if err != nil {
		return nil, err
	}
	if !types.IsIntegerType(v.Type()) {
		return nil, c.errorf(id.Tok.Pos, "loop variable %s has type %s, want int", v.Name(), v.Type())
	}
	v.SetInitialized()

	lo, err := c.exprAt(b, 3)
	if err != nil {
		return nil, err
	}
	if !types.IsIntegerType(lo.Type()) {
		return nil, c.errorf(lo.Start().Pos, "loop start has type %s, want int", lo.Type())
	}
	hi, err := c.exprAt(b, 5)
	if err != nil {
		return nil, err
	}
	if !types.IsIntegerType(hi.Type()) {
		return nil, c.errorf(hi.Start().Pos, "loop end has type %s, want int", hi.Type())
	}

	body, err := c.stmtList(b.Children[7 : b.Len()-2])
	if err != nil {
		return nil, err
	}
	return &ast.ForLoop{
		Tok:  b.Leaf(0).Tok,
		Var:  &ast.VarRef{Tok: id.Tok, Typ: v.Type(), Name: v.Name()},
		Lo:   lo,
		Hi:   hi,
		Body: body,
	}, nil
}

// read: 'read' IDENT
func (c *Checker) read(b *syntax.Branch) (ast.Stmt, error) {
	id, err := c.ident(b, 1)
	if err != nil {
		return nil, err
	}
	v, err := c.resolve(id)
	if err != nil {
		return nil, err
	}
	v.SetInitialized()
	return &ast.Read{Tok: b.Leaf(0).Tok, Name: v.Name(), Typ: v.Type()}, nil
}

// print: 'print' expr
func (c *Checker) print(b *syntax.Branch) (ast.Stmt, error) {
	x, err := c.exprAt(b, 1)
	if err != nil {
		return nil, err
	}
	return &ast.Print{Tok: b.Leaf(0).Tok, X: x}, nil
}

// assert: 'assert' '(' expr ')'
func (c *Checker) assert(b *syntax.Branch) (ast.Stmt, error) {
	tok := b.Leaf(0).Tok
	x, err := c.exprAt(b, 2)
	if err != nil {
		return nil, err
	}
	if !types.IsBooleanType(x.Type()) {
		return nil, c.errorf(x.Start().Pos, "assert on line %d needs a bool expression, found %s", tok.Pos.Line(), x.Type())
	}
	return &ast.Assert{Tok: tok, X: x}, nil
}
