package ast

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the program to w.
func FprintJSON(w io.Writer, prog *Program) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(programMap(prog))
}

// FprintYAML writes a YAML representation of the program to w.
func FprintYAML(w io.Writer, prog *Program) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(programMap(prog)); err != nil {
		return err
	}
	return enc.Close()
}

func programMap(prog *Program) map[string]interface{} {
	return map[string]interface{}{
		"node":  "Program",
		"stmts": stmtList(prog.Stmts),
	}
}

func stmtList(list []Stmt) []interface{} {
	out := make([]interface{}, len(list))
	for i, s := range list {
		out[i] = toMap(s)
	}
	return out
}

func toMap(n Node) interface{} {
	if n == nil {
		return nil
	}
	m := map[string]interface{}{
		"pos": n.Start().Pos.String(),
	}
	if x, ok := n.(Expr); ok && x.Type() != nil {
		m["type"] = x.Type().String()
	}

	switch n := n.(type) {
	case *Declaration:
		m["node"] = "Declaration"
		m["name"] = n.Name
		m["vartype"] = n.Typ.String()

	case *DeclarationWithInit:
		m["node"] = "DeclarationWithInit"
		m["name"] = n.Name
		m["vartype"] = n.Typ.String()
		m["init"] = toMap(n.Init)

	case *Assignment:
		m["node"] = "Assignment"
		m["name"] = n.Name
		m["value"] = toMap(n.Value)

	case *ForLoop:
		m["node"] = "ForLoop"
		m["var"] = n.Var.Name
		m["from"] = toMap(n.Lo)
		m["to"] = toMap(n.Hi)
		m["body"] = stmtList(n.Body)

	case *Read:
		m["node"] = "Read"
		m["name"] = n.Name

	case *Print:
		m["node"] = "Print"
		m["expr"] = toMap(n.X)

	case *Assert:
		m["node"] = "Assert"
		m["expr"] = toMap(n.X)

	case *BinaryExpr:
		m["node"] = "BinaryExpr"
		m["op"] = n.Op.String()
		operands := make([]interface{}, len(n.Operands))
		for i, x := range n.Operands {
			operands[i] = toMap(x)
		}
		m["operands"] = operands

	case *UnaryExpr:
		m["node"] = "UnaryExpr"
		m["op"] = n.Op.String()
		m["operand"] = toMap(n.X)

	case *IntLit:
		m["node"] = "IntLit"
		m["value"] = n.Value

	case *StringLit:
		m["node"] = "StringLit"
		m["value"] = n.Value

	case *BoolLit:
		m["node"] = "BoolLit"
		m["value"] = n.Value

	case *VarRef:
		m["node"] = "VarRef"
		m["name"] = n.Name
	}
	return m
}
