package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of the parse tree to w.
// Branches print their tag, leaves print kind, literal and position.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.print(node)
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

func (p *printer) print(node Node) {
	switch n := node.(type) {
	case *Branch:
		if n == nil {
			return
		}
		p.printf("%s\n", n.Tag)
		p.indent++
		for _, c := range n.Children {
			p.print(c)
		}
		p.indent--

	case *Leaf:
		if n == nil {
			return
		}
		p.printf("%s %s %s\n", n.Tok.Kind, n.Tok, n.Tok.Pos)
	}
}
