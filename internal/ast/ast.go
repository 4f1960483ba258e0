// Package ast defines the typed abstract syntax tree produced by semantic
// analysis and executed by the evaluator.
//
// Every expression carries its static type, fixed when the tree is built.
// Every node carries the token at which it starts, for diagnostics.
package ast

import (
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// Node is implemented by all AST nodes.
type Node interface {
	// Start returns the token at which the node begins.
	Start() syntax.Token
	aNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	// Type returns the static type of the expression.
	Type() *types.Basic
	aExpr()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Expressions

type (
	// BinaryExpr applies one operator across two or more operands,
	// folding left to right: a & b & c is (a & b) & c.
	BinaryExpr struct {
		Tok      syntax.Token
		Typ      *types.Basic
		Op       Operator
		Operands []Expr
	}

	// UnaryExpr is !X.
	UnaryExpr struct {
		Tok syntax.Token
		Typ *types.Basic
		Op  Operator
		X   Expr
	}

	IntLit struct {
		Tok   syntax.Token
		Value int64
	}

	// StringLit holds the literal text as written; print performs the
	// \n substitution.
	StringLit struct {
		Tok   syntax.Token
		Value string
	}

	BoolLit struct {
		Tok   syntax.Token
		Value bool
	}

	// VarRef reads a variable.
	VarRef struct {
		Tok  syntax.Token
		Typ  *types.Basic
		Name string
	}
)

func (x *BinaryExpr) Start() syntax.Token { return x.Tok }
func (x *UnaryExpr) Start() syntax.Token  { return x.Tok }
func (x *IntLit) Start() syntax.Token     { return x.Tok }
func (x *StringLit) Start() syntax.Token  { return x.Tok }
func (x *BoolLit) Start() syntax.Token    { return x.Tok }
func (x *VarRef) Start() syntax.Token     { return x.Tok }

func (x *BinaryExpr) Type() *types.Basic { return x.Typ }
func (x *UnaryExpr) Type() *types.Basic  { return x.Typ }
func (*IntLit) Type() *types.Basic       { return types.Typ[types.Int] }
func (*StringLit) Type() *types.Basic    { return types.Typ[types.String] }
func (*BoolLit) Type() *types.Basic      { return types.Typ[types.Bool] }
func (x *VarRef) Type() *types.Basic     { return x.Typ }

func (*BinaryExpr) aNode() {}
func (*UnaryExpr) aNode()  {}
func (*IntLit) aNode()     {}
func (*StringLit) aNode()  {}
func (*BoolLit) aNode()    {}
func (*VarRef) aNode()     {}

func (*BinaryExpr) aExpr() {}
func (*UnaryExpr) aExpr()  {}
func (*IntLit) aExpr()     {}
func (*StringLit) aExpr()  {}
func (*BoolLit) aExpr()    {}
func (*VarRef) aExpr()     {}

// ----------------------------------------------------------------------------
// Statements

type (
	// Declaration is var Name : Typ.
	Declaration struct {
		Tok  syntax.Token
		Name string
		Typ  *types.Basic
	}

	// DeclarationWithInit is var Name : Typ := Init.
	DeclarationWithInit struct {
		Declaration
		Init Expr
	}

	// Assignment is Name := Value. Typ is the target's declared type.
	Assignment struct {
		Tok   syntax.Token
		Name  string
		Typ   *types.Basic
		Value Expr
	}

	// ForLoop is for Var in Lo..Hi do Body end for.
	ForLoop struct {
		Tok  syntax.Token
		Var  *VarRef
		Lo   Expr
		Hi   Expr
		Body []Stmt
	}

	// Read reads one line of input into Name, parsed as Typ.
	Read struct {
		Tok  syntax.Token
		Name string
		Typ  *types.Basic
	}

	Print struct {
		Tok syntax.Token
		X   Expr
	}

	Assert struct {
		Tok syntax.Token
		X   Expr
	}
)

func (s *Declaration) Start() syntax.Token { return s.Tok }
func (s *Assignment) Start() syntax.Token  { return s.Tok }
func (s *ForLoop) Start() syntax.Token     { return s.Tok }
func (s *Read) Start() syntax.Token        { return s.Tok }
func (s *Print) Start() syntax.Token       { return s.Tok }
func (s *Assert) Start() syntax.Token      { return s.Tok }

func (*Declaration) aNode() {}
func (*Assignment) aNode()  {}
func (*ForLoop) aNode()     {}
func (*Read) aNode()        {}
func (*Print) aNode()       {}
func (*Assert) aNode()      {}

func (*Declaration) aStmt() {}
func (*Assignment) aStmt()  {}
func (*ForLoop) aStmt()     {}
func (*Read) aStmt()        {}
func (*Print) aStmt()       {}
func (*Assert) aStmt()      {}

// Program is an analyzed Mini-PL program.
type Program struct {
	Stmts []Stmt
}
