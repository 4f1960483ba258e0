package analyzer

import (
	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// declaration: 'var' IDENT ':' type [':=' expr]
//
// Four children make a bare declaration, six carry an initializer. The
// initializer is analyzed before the name is entered, so it cannot refer
// to the variable being declared.
func (c *Checker) declaration(b *syntax.Branch) (ast.Stmt, error) {
	id, err := c.ident(b, 1)
	if err != nil {
		return nil, err
	}
	typ, err := c.typ(b.Branch(3))
	if err != nil {
		return nil, err
	}
	decl := ast.Declaration{Tok: b.Leaf(0).Tok, Name: id.Tok.Lit, Typ: typ}
	v := types.NewVar(id.Tok.Pos, id.Tok.Lit, typ)

	switch b.Len() {
	case 4:
		if err := c.declare(id, v); err != nil {
			return nil, err
		}
		return &decl, nil

	case 6:
		init, err := c.exprAt(b, 5)
		if err != nil {
			return nil, err
		}
		if !types.Identical(init.Type(), typ) {
			return nil, c.errorf(id.Tok.Pos, "cannot assign %s value to %s (type %s)", init.Type(), id.Tok.Lit, typ)
		}
		if err := c.declare(id, v); err != nil {
			return nil, err
		}
		v.SetInitialized()
		return &ast.DeclarationWithInit{Declaration: decl, Init: init}, nil
	}
	return nil, c.invalidTree(b.Pos(), "declaration has %d children", b.Len())
}
