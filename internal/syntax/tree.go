package syntax

import "fmt"

// NonTerminal tags a Branch with the grammar rule that produced it.
type NonTerminal uint8

const (
	Program NonTerminal = iota
	Statement
	Expression
	Expr6 // &
	Expr5 // =
	Expr4 // <
	Expr3 // + -
	Expr2 // * /
	Expr1 // !
	Expr0 // operand
	Type

	nonTerminalCount
)

var nonTerminalNames = [...]string{
	Program:    "program",
	Statement:  "statement",
	Expression: "expression",
	Expr6:      "expression6",
	Expr5:      "expression5",
	Expr4:      "expression4",
	Expr3:      "expression3",
	Expr2:      "expression2",
	Expr1:      "expression1",
	Expr0:      "expression0",
	Type:       "type",
}

func (nt NonTerminal) String() string {
	if nt < nonTerminalCount {
		return nonTerminalNames[nt]
	}
	return fmt.Sprintf("NonTerminal(%d)", nt)
}

// Node is a parse tree node: either a *Branch or a *Leaf.
type Node interface {
	Pos() Pos
	aNode()
}

// Branch is an interior node. Its children appear in source order and
// include punctuation leaves.
type Branch struct {
	Tag      NonTerminal
	Children []Node
}

// Leaf wraps exactly one token.
type Leaf struct {
	Tok Token
}

func (*Branch) aNode() {}
func (*Leaf) aNode()   {}

// Pos returns the position of the first token under b.
func (b *Branch) Pos() Pos { return FirstToken(b).Pos }

func (l *Leaf) Pos() Pos { return l.Tok.Pos }

// Len returns the number of children.
func (b *Branch) Len() int { return len(b.Children) }

// Leaf returns child i if it is a leaf, or nil.
func (b *Branch) Leaf(i int) *Leaf {
	if i < 0 || i >= len(b.Children) {
		return nil
	}
	l, _ := b.Children[i].(*Leaf)
	return l
}

// Branch returns child i if it is a branch, or nil.
func (b *Branch) Branch(i int) *Branch {
	if i < 0 || i >= len(b.Children) {
		return nil
	}
	c, _ := b.Children[i].(*Branch)
	return c
}

// FirstToken returns the leftmost token under n.
func FirstToken(n Node) Token {
	for {
		switch x := n.(type) {
		case *Leaf:
			if x == nil {
				return Token{}
			}
			return x.Tok
		case *Branch:
			if x == nil || len(x.Children) == 0 {
				return Token{}
			}
			n = x.Children[0]
		default:
			return Token{}
		}
	}
}
