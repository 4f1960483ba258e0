package ast

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/minipl/internal/types"
)

// Verify checks the type-safety invariants of an analyzed program:
// every expression has a type, operator applications are well typed,
// and every write stores a value of the target's declared type.
// It returns an error describing all violations found, or nil if valid.
func Verify(prog *Program) error {
	v := &verifier{decls: make(map[string]*types.Basic)}
	for _, s := range prog.Stmts {
		v.stmt(s)
	}
	return combineErrors(v.errs)
}

type verifier struct {
	decls map[string]*types.Basic
	errs  []string
}

func (v *verifier) add(n Node, format string, args ...interface{}) {
	v.errs = append(v.errs, n.Start().Pos.String()+": "+fmt.Sprintf(format, args...))
}

// declare records a declaration. A name may only be declared by one
// declaration type.
func (v *verifier) declare(s *Declaration) {
	if s.Typ == nil {
		v.add(s, "declaration of %s has no type", s.Name)
		return
	}
	if prev, ok := v.decls[s.Name]; ok && prev != s.Typ {
		v.add(s, "%s redeclared as %s, was %s", s.Name, s.Typ, prev)
	}
	v.decls[s.Name] = s.Typ
}

// target checks a write of typ to name.
func (v *verifier) target(n Node, name string, typ *types.Basic) {
	declared, ok := v.decls[name]
	if !ok {
		v.add(n, "write to undeclared variable %s", name)
		return
	}
	if declared != typ {
		v.add(n, "%s has type %s, written as %s", name, declared, typ)
	}
}

func (v *verifier) stmt(s Stmt) {
	switch s := s.(type) {
	case *Declaration:
		v.declare(s)

	case *DeclarationWithInit:
		v.declare(&s.Declaration)
		if t := v.expr(s.Init); t != nil && t != s.Typ {
			v.add(s, "initializer of %s has type %s, want %s", s.Name, t, s.Typ)
		}

	case *Assignment:
		v.target(s, s.Name, s.Typ)
		if t := v.expr(s.Value); t != nil && t != s.Typ {
			v.add(s, "assignment to %s has type %s, want %s", s.Name, t, s.Typ)
		}

	case *ForLoop:
		if s.Var == nil {
			v.add(s, "loop has no variable")
			return
		}
		v.target(s, s.Var.Name, s.Var.Typ)
		v.wantInt(s.Var, v.expr(s.Var), "loop variable")
		v.wantInt(s, v.expr(s.Lo), "lower bound")
		v.wantInt(s, v.expr(s.Hi), "upper bound")
		if len(s.Body) == 0 {
			v.add(s, "loop has an empty body")
		}
		for _, b := range s.Body {
			v.stmt(b)
		}

	case *Read:
		v.target(s, s.Name, s.Typ)

	case *Print:
		v.expr(s.X)

	case *Assert:
		if t := v.expr(s.X); t != nil && !types.IsBooleanType(t) {
			v.add(s, "assertion has type %s, want bool", t)
		}

	default:
		v.errs = append(v.errs, fmt.Sprintf("unknown statement %T", s))
	}
}

func (v *verifier) wantInt(n Node, t *types.Basic, what string) {
	if t != nil && !types.IsIntegerType(t) {
		v.add(n, "%s has type %s, want int", what, t)
	}
}

// expr checks x and returns its static type, or nil if x is malformed.
func (v *verifier) expr(x Expr) *types.Basic {
	if x == nil {
		v.errs = append(v.errs, "nil expression")
		return nil
	}
	t := x.Type()
	if t == nil {
		v.add(x, "%T has no type", x)
		return nil
	}

	switch x := x.(type) {
	case *BinaryExpr:
		if x.Op.IsUnary() || x.Op == OpInvalid {
			v.add(x, "binary expression with operator %s", x.Op)
		}
		if len(x.Operands) < 2 {
			v.add(x, "binary expression has %d operands, want at least 2", len(x.Operands))
		}
		var operand *types.Basic
		for i, y := range x.Operands {
			yt := v.expr(y)
			if yt == nil {
				continue
			}
			if operand == nil {
				operand = yt
			} else if yt != operand {
				v.add(y, "operand %d has type %s, want %s", i, yt, operand)
			}
		}
		if operand != nil {
			if want := x.Op.Result(operand); want != t {
				v.add(x, "%s applied to %s has type %s, want %v", x.Op, operand, t, want)
			}
		}

	case *UnaryExpr:
		if !x.Op.IsUnary() {
			v.add(x, "unary expression with operator %s", x.Op)
		}
		if yt := v.expr(x.X); yt != nil {
			if want := x.Op.Result(yt); want != t {
				v.add(x, "%s applied to %s has type %s, want %v", x.Op, yt, t, want)
			}
		}

	case *VarRef:
		if declared, ok := v.decls[x.Name]; !ok {
			v.add(x, "reference to undeclared variable %s", x.Name)
		} else if declared != t {
			v.add(x, "reference to %s has type %s, declared %s", x.Name, t, declared)
		}
	}
	return t
}

// combineErrors turns a list of error strings into a single error.
func combineErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("ast verification failed:\n  %s", strings.Join(errs, "\n  "))
}
