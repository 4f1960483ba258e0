package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a parse tree in depth-first order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}
	if b, ok := node.(*Branch); ok {
		for _, c := range b.Children {
			Walk(c, v)
		}
	}
}

// Inspect is like Walk but visits every node.
func Inspect(node Node, f func(Node)) {
	Walk(node, func(n Node) bool {
		f(n)
		return true
	})
}

// Leaves returns the tokens of all leaves under node, in source order.
func Leaves(node Node) []Token {
	var toks []Token
	Inspect(node, func(n Node) {
		if l, ok := n.(*Leaf); ok {
			toks = append(toks, l.Tok)
		}
	})
	return toks
}
