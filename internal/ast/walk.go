package ast

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(n Node) bool

// Walk traverses the statements of prog in depth-first order.
func Walk(prog *Program, v Visitor) {
	for _, s := range prog.Stmts {
		WalkNode(s, v)
	}
}

// WalkNode traverses the subtree rooted at n.
func WalkNode(n Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}

	switch n := n.(type) {
	case *DeclarationWithInit:
		WalkNode(n.Init, v)

	case *Assignment:
		WalkNode(n.Value, v)

	case *ForLoop:
		WalkNode(n.Var, v)
		WalkNode(n.Lo, v)
		WalkNode(n.Hi, v)
		for _, s := range n.Body {
			WalkNode(s, v)
		}

	case *Print:
		WalkNode(n.X, v)

	case *Assert:
		WalkNode(n.X, v)

	case *BinaryExpr:
		for _, x := range n.Operands {
			WalkNode(x, v)
		}

	case *UnaryExpr:
		WalkNode(n.X, v)
	}
}

// Inspect calls f for every node of prog.
func Inspect(prog *Program, f func(Node)) {
	Walk(prog, func(n Node) bool {
		f(n)
		return true
	})
}
