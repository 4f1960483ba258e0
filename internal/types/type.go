// Package types declares the static types and symbols of Mini-PL.
// It has no dependency on the tree representations.
package types

// Type is the interface implemented by all types.
type Type interface {
	// String returns the type's source spelling.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
