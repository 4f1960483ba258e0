package analyzer

import (
	"github.com/inconshreveable/log15"

	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// Checker is the semantic analyzer. It owns the symbol table for the
// duration of one Analyze call.
type Checker struct {
	conf  *Config
	info  *Info
	syms  *types.SymbolTable
	trace log15.Logger
}

func newChecker(conf *Config, info *Info) *Checker {
	trace := conf.Trace
	if trace == nil {
		trace = log15.New()
		trace.SetHandler(log15.DiscardHandler())
	}
	return &Checker{
		conf:  conf,
		info:  info,
		syms:  types.NewSymbolTable(),
		trace: trace,
	}
}

// program analyzes the root branch: (statement ';')+.
func (c *Checker) program(tree *syntax.Branch) (*ast.Program, error) {
	if tree == nil {
		return nil, c.invalidTree(syntax.Pos{}, "no program")
	}
	if tree.Tag != syntax.Program {
		return nil, c.invalidTree(tree.Pos(), "root is %s, not program", tree.Tag)
	}
	stmts, err := c.stmtList(tree.Children)
	if err != nil {
		return nil, err
	}
	c.trace.Debug("Analysis done", "stmts", len(stmts), "vars", c.syms.Len(), "symbols", c.syms)
	return &ast.Program{Stmts: stmts}, nil
}

// stmtList analyzes the statement branches among nodes, in order,
// skipping separators.
func (c *Checker) stmtList(nodes []syntax.Node) ([]ast.Stmt, error) {
	var list []ast.Stmt
	for _, n := range nodes {
		b, ok := n.(*syntax.Branch)
		if !ok || b.Tag != syntax.Statement {
			continue
		}
		s, err := c.stmt(b)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

// declare enters v into the symbol table.
func (c *Checker) declare(id *syntax.Leaf, v *types.Var) error {
	if prev := c.syms.Insert(v); prev != nil {
		return c.errorf(id.Tok.Pos, "%s redeclared, previous declaration at %s", id.Tok.Lit, prev.Pos())
	}
	if c.info != nil {
		c.info.Defs[id] = v
	}
	return nil
}

// resolve looks up the variable named by id.
func (c *Checker) resolve(id *syntax.Leaf) (*types.Var, error) {
	v := c.syms.Lookup(id.Tok.Lit)
	if v == nil {
		return nil, c.errorf(id.Tok.Pos, "undeclared variable %s", id.Tok.Lit)
	}
	if c.info != nil {
		c.info.Uses[id] = v
	}
	return v, nil
}

// ident returns child i of b, which must be an identifier leaf.
func (c *Checker) ident(b *syntax.Branch, i int) (*syntax.Leaf, error) {
	l := b.Leaf(i)
	if l == nil || l.Tok.Kind != syntax.Name {
		return nil, c.invalidTree(b.Pos(), "child %d of statement is not an identifier", i)
	}
	return l, nil
}
