package types

// BasicKind identifies one of the Mini-PL types. It indexes Typ.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Int
	String
	Bool
)

// BasicInfo is a set of flags that the predicates test.
type BasicInfo int

const (
	IsInteger BasicInfo = 1 << iota
	IsString
	IsBoolean
)

// Basic represents one of the three Mini-PL types.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

func (b *Basic) Kind() BasicKind { return b.kind }
func (b *Basic) Info() BasicInfo { return b.info }

// Name returns the type's keyword: int, string or bool.
func (b *Basic) Name() string   { return b.name }
func (b *Basic) String() string { return b.name }

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] is nil, representing an invalid type.
var Typ = []*Basic{
	Invalid: nil,
	Int:     {kind: Int, info: IsInteger, name: "int"},
	String:  {kind: String, info: IsString, name: "string"},
	Bool:    {kind: Bool, info: IsBoolean, name: "bool"},
}
