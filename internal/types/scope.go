package types

import (
	"fmt"
	"sort"
	"strings"
)

// SymbolTable is the single flat namespace of a program.
// Loop bodies do not open a new scope.
type SymbolTable struct {
	elems map[string]*Var
	order []*Var // declaration order
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{elems: make(map[string]*Var)}
}

// Lookup returns the variable with the given name, or nil.
func (s *SymbolTable) Lookup(name string) *Var {
	return s.elems[name]
}

// Insert adds v to the table.
// If a variable with the same name already exists, Insert returns it and
// leaves the table unchanged. Otherwise it returns nil.
func (s *SymbolTable) Insert(v *Var) *Var {
	if existing := s.elems[v.name]; existing != nil {
		return existing
	}
	s.elems[v.name] = v
	s.order = append(s.order, v)
	return nil
}

// Vars returns the variables in declaration order.
func (s *SymbolTable) Vars() []*Var {
	return s.order
}

// Names returns the names of all variables, sorted alphabetically.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of variables.
func (s *SymbolTable) Len() int {
	return len(s.elems)
}

// String returns a string representation of the table for debugging.
func (s *SymbolTable) String() string {
	var buf strings.Builder
	buf.WriteString("symbols {\n")
	for _, name := range s.Names() {
		v := s.elems[name]
		init := ""
		if v.initialized {
			init = " (initialized)"
		}
		fmt.Fprintf(&buf, "  %s: %s%s\n", name, v.typ, init)
	}
	buf.WriteString("}\n")
	return buf.String()
}
