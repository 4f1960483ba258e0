package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes the AST of a program to w.
//
// Format:
//
//	Program
//	  DeclarationWithInit x int 1:1
//	    IntLit 7 <int> 1:17
//	  Print 2:1
//	    BinaryExpr / <int> 2:7
//	      VarRef x <int> 2:7
//	      IntLit 2 <int> 2:11
func Fprint(w io.Writer, prog *Program) error {
	p := &printer{w: w}
	p.printf("Program\n")
	p.indent++
	for _, s := range prog.Stmts {
		p.stmt(s)
	}
	return p.err
}

// FprintNode writes a single statement or expression subtree to w.
func FprintNode(w io.Writer, n Node) error {
	p := &printer{w: w}
	switch n := n.(type) {
	case Stmt:
		p.stmt(n)
	case Expr:
		p.expr(n)
	}
	return p.err
}

type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) stmt(s Stmt) {
	pos := s.Start().Pos
	switch s := s.(type) {
	case *Declaration:
		p.printf("Declaration %s %s %s\n", s.Name, s.Typ, pos)

	case *DeclarationWithInit:
		p.printf("DeclarationWithInit %s %s %s\n", s.Name, s.Typ, pos)
		p.sub(s.Init)

	case *Assignment:
		p.printf("Assignment %s %s\n", s.Name, pos)
		p.sub(s.Value)

	case *ForLoop:
		p.printf("ForLoop %s %s\n", s.Var.Name, pos)
		p.indent++
		p.printf("From:\n")
		p.sub(s.Lo)
		p.printf("To:\n")
		p.sub(s.Hi)
		p.printf("Body:\n")
		p.indent++
		for _, b := range s.Body {
			p.stmt(b)
		}
		p.indent -= 2

	case *Read:
		p.printf("Read %s %s %s\n", s.Name, s.Typ, pos)

	case *Print:
		p.printf("Print %s\n", pos)
		p.sub(s.X)

	case *Assert:
		p.printf("Assert %s\n", pos)
		p.sub(s.X)

	default:
		p.printf("<unknown statement %T>\n", s)
	}
}

func (p *printer) sub(x Expr) {
	p.indent++
	p.expr(x)
	p.indent--
}

func (p *printer) expr(x Expr) {
	if x == nil {
		p.printf("<nil>\n")
		return
	}
	pos := x.Start().Pos
	switch x := x.(type) {
	case *BinaryExpr:
		p.printf("BinaryExpr %s <%s> %s\n", x.Op, x.Typ, pos)
		p.indent++
		for _, y := range x.Operands {
			p.expr(y)
		}
		p.indent--

	case *UnaryExpr:
		p.printf("UnaryExpr %s <%s> %s\n", x.Op, x.Typ, pos)
		p.sub(x.X)

	case *IntLit:
		p.printf("IntLit %d <int> %s\n", x.Value, pos)

	case *StringLit:
		p.printf("StringLit %s <string> %s\n", strconv.Quote(x.Value), pos)

	case *BoolLit:
		p.printf("BoolLit %t <bool> %s\n", x.Value, pos)

	case *VarRef:
		p.printf("VarRef %s <%s> %s\n", x.Name, x.Typ, pos)

	default:
		p.printf("<unknown expression %T>\n", x)
	}
}
