package eval

import (
	"sort"

	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/syntax"
)

// Store is the variable store: one flat namespace of tagged values.
type Store struct {
	slots map[string]*slot
}

type slot struct {
	val  Value
	decl *ast.Declaration // declaration that created the slot
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{slots: make(map[string]*slot)}
}

// Declare creates the slot for d holding v.
//
// Loop bodies re-execute their declarations; a second execution of the
// same declaration resets the slot. Any other redeclaration is an
// internal error.
func (s *Store) Declare(d *ast.Declaration, v Value) error {
	if sl, ok := s.slots[d.Name]; ok && sl.decl != d {
		return internalErrorf(d.Tok.Pos, "redeclaration of %s, first declared at %s", d.Name, sl.decl.Tok.Pos)
	}
	s.slots[d.Name] = &slot{val: v, decl: d}
	return nil
}

// Get returns the value of name.
func (s *Store) Get(pos syntax.Pos, name string) (Value, error) {
	sl, ok := s.slots[name]
	if !ok {
		return nil, internalErrorf(pos, "read of undeclared variable %s", name)
	}
	return sl.val, nil
}

// Set stores v in the existing slot for name. The slot keeps its tag.
func (s *Store) Set(pos syntax.Pos, name string, v Value) error {
	sl, ok := s.slots[name]
	if !ok {
		return internalErrorf(pos, "write to undeclared variable %s", name)
	}
	if sl.val.Kind() != v.Kind() {
		return internalErrorf(pos, "cannot store %s value in %s variable %s", v.Kind(), sl.val.Kind(), name)
	}
	sl.val = v
	return nil
}

// Names returns the declared names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.slots))
	for name := range s.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
