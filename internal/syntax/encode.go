package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the parse tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toMap(node))
}

// FprintYAML writes a YAML representation of the parse tree to w.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toMap(node)); err != nil {
		return err
	}
	return enc.Close()
}

func toMap(node Node) interface{} {
	switch n := node.(type) {
	case *Branch:
		if n == nil {
			return nil
		}
		children := make([]interface{}, len(n.Children))
		for i, c := range n.Children {
			children[i] = toMap(c)
		}
		return map[string]interface{}{
			"tag":      n.Tag.String(),
			"children": children,
		}

	case *Leaf:
		if n == nil {
			return nil
		}
		return map[string]interface{}{
			"kind": n.Tok.Kind.String(),
			"lit":  n.Tok.Lit,
			"pos":  n.Tok.Pos.String(),
		}
	}
	return nil
}
