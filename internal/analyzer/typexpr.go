package analyzer

import (
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// typ resolves a type branch to its basic type.
func (c *Checker) typ(b *syntax.Branch) (*types.Basic, error) {
	if b == nil || b.Tag != syntax.Type {
		return nil, c.invalidTree(syntax.Pos{}, "missing type")
	}
	l := b.Leaf(0)
	if l == nil {
		return nil, c.invalidTree(b.Pos(), "type is not a token")
	}
	t := types.LookupType(l.Tok.Lit)
	if t == nil {
		return nil, c.errorf(l.Tok.Pos, "unknown type %s", l.Tok.Lit)
	}
	return t, nil
}
