package types

import "github.com/you-not-fish/minipl/internal/syntax"

// Var is a declared variable: the single kind of symbol in Mini-PL.
type Var struct {
	name        string
	typ         *Basic
	pos         syntax.Pos // declaring identifier
	initialized bool
}

// NewVar creates a new, uninitialized variable.
func NewVar(pos syntax.Pos, name string, typ *Basic) *Var {
	return &Var{name: name, typ: typ, pos: pos}
}

func (v *Var) Name() string    { return v.name }
func (v *Var) Type() *Basic    { return v.typ }
func (v *Var) Pos() syntax.Pos { return v.pos }

// Initialized reports whether a write to v has been observed.
func (v *Var) Initialized() bool {
	return v.initialized
}

// SetInitialized marks v as written. Initialization is never undone.
func (v *Var) SetInitialized() {
	v.initialized = true
}

func (v *Var) String() string {
	return v.name + ": " + v.typ.String()
}
