package types

// Identical reports whether x and y are the same type.
// Basic types are singletons, so identity is pointer equality.
func Identical(x, y Type) bool {
	return x == y
}

// IsIntegerType reports whether t is int.
func IsIntegerType(t Type) bool {
	return hasInfo(t, IsInteger)
}

// IsStringType reports whether t is string.
func IsStringType(t Type) bool {
	return hasInfo(t, IsString)
}

// IsBooleanType reports whether t is bool.
func IsBooleanType(t Type) bool {
	return hasInfo(t, IsBoolean)
}

func hasInfo(t Type, info BasicInfo) bool {
	b, ok := t.(*Basic)
	return ok && b != nil && b.info&info != 0
}

// Set is a set of basic kinds, used for operator operand rules.
type Set uint8

// NewSet returns the set of the given kinds.
func NewSet(kinds ...BasicKind) Set {
	var s Set
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

// Contains reports whether t is a basic type whose kind is in s.
func (s Set) Contains(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b != nil && s&(1<<uint(b.kind)) != 0
}

// Types returns the members of s in kind order.
func (s Set) Types() []*Basic {
	var list []*Basic
	for _, t := range Typ {
		if t != nil && s.Contains(t) {
			list = append(list, t)
		}
	}
	return list
}
