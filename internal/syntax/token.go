// Package syntax implements lexical and syntactic analysis for Mini-PL.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind is the lexical class of a token.
type Kind uint8

const (
	EOF     Kind = iota // end of input
	Unknown             // unrecognized character; never leaves Tokenize

	Lparen   // (
	Rparen   // )
	Assign   // :=
	BinaryOp // + - * / < = &
	UnaryOp  // !
	Colon    // :
	Semi     // ;
	Name     // identifier
	Number   // decimal integer literal
	Keyword  // reserved word
	String   // string literal
	Bool     // true, false
	Range    // ..

	kindCount
)

var kindNames = [...]string{
	EOF:      "EOF",
	Unknown:  "UNKNOWN",
	Lparen:   "LPAREN",
	Rparen:   "RPAREN",
	Assign:   "ASSIGN",
	BinaryOp: "BINARY_OP",
	UnaryOp:  "UNARY_OP",
	Colon:    "COLON",
	Semi:     "SEMI",
	Name:     "NAME",
	Number:   "NUMBER",
	Keyword:  "KEYWORD",
	String:   "STRING",
	Bool:     "BOOL",
	Range:    "RANGE",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a lexical token. Tokens are immutable values.
type Token struct {
	Kind Kind
	Lit  string // source text; string literals exclude the quotes
	Pos  Pos    // position of the first character
}

// String describes t for diagnostics.
func (t Token) String() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return strconv.Quote(t.Lit)
}

// Is reports whether t has the given kind and literal text.
func (t Token) Is(kind Kind, lit string) bool {
	return t.Kind == kind && t.Lit == lit
}

// IsKeyword reports whether t is the reserved word kw.
func (t Token) IsKeyword(kw string) bool {
	return t.Is(Keyword, kw)
}

// Reserved words.
const (
	KwVar    = "var"
	KwFor    = "for"
	KwEnd    = "end"
	KwIn     = "in"
	KwDo     = "do"
	KwRead   = "read"
	KwPrint  = "print"
	KwInt    = "int"
	KwString = "string"
	KwBool   = "bool"
	KwAssert = "assert"
)

var keywords = map[string]bool{
	KwVar:    true,
	KwFor:    true,
	KwEnd:    true,
	KwIn:     true,
	KwDo:     true,
	KwRead:   true,
	KwPrint:  true,
	KwInt:    true,
	KwString: true,
	KwBool:   true,
	KwAssert: true,
}

// LookupKind classifies an identifier-shaped word: reserved words are
// Keyword, true and false are Bool, everything else is Name.
func LookupKind(ident string) Kind {
	switch {
	case keywords[ident]:
		return Keyword
	case ident == "true" || ident == "false":
		return Bool
	}
	return Name
}
