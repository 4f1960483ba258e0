package eval

import (
	"fmt"
	"strconv"

	"github.com/you-not-fish/minipl/internal/types"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a runtime value. Values are immutable and copied freely.
type Value interface {
	Kind() Kind
	// String returns the text print writes for the value.
	String() string
}

type (
	IntValue    struct{ Val int64 }
	StringValue struct{ Val string }
	BoolValue   struct{ Val bool }
)

func (IntValue) Kind() Kind    { return KindInt }
func (StringValue) Kind() Kind { return KindString }
func (BoolValue) Kind() Kind   { return KindBool }

func (v IntValue) String() string    { return strconv.FormatInt(v.Val, 10) }
func (v StringValue) String() string { return v.Val }
func (v BoolValue) String() string   { return strconv.FormatBool(v.Val) }

// kindOf returns the runtime kind that represents static type t.
func kindOf(t *types.Basic) (Kind, bool) {
	switch {
	case types.IsIntegerType(t):
		return KindInt, true
	case types.IsStringType(t):
		return KindString, true
	case types.IsBooleanType(t):
		return KindBool, true
	}
	return 0, false
}

// Zero returns the value a declared variable of type t starts with.
func Zero(t *types.Basic) (Value, bool) {
	k, ok := kindOf(t)
	if !ok {
		return nil, false
	}
	switch k {
	case KindInt:
		return IntValue{}, true
	case KindString:
		return StringValue{}, true
	}
	return BoolValue{}, true
}
