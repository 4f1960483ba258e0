package syntax

import (
	"fmt"
	"strings"
)

// Error is a single lexical problem at a source position.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ScanError reports every lexical error found in one file.
type ScanError struct {
	List []*Error
}

func (e *ScanError) Error() string {
	switch len(e.List) {
	case 0:
		return "no errors"
	case 1:
		return e.List[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d lexical errors:", len(e.List))
	for _, err := range e.List {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}

// SyntaxError represents a syntax error. Tok is the offending token.
type SyntaxError struct {
	Pos Pos
	Tok Token
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}
