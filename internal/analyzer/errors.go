// Package analyzer implements semantic analysis for Mini-PL: name
// resolution in a single flat symbol table, static typing, definite
// initialization, and lowering of the parse tree into a typed AST.
package analyzer

import (
	"fmt"

	"github.com/you-not-fish/minipl/internal/syntax"
)

// SemanticError represents a semantic error.
type SemanticError struct {
	Pos syntax.Pos
	Msg string
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is a function called for each semantic error.
type ErrorHandler func(pos syntax.Pos, msg string)

// errorf builds the error that stops analysis.
func (c *Checker) errorf(pos syntax.Pos, format string, args ...interface{}) error {
	err := &SemanticError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
	if c.conf.Error != nil {
		c.conf.Error(err.Pos, err.Msg)
	}
	return err
}

// invalidTree reports a parse tree shape the parser never produces.
func (c *Checker) invalidTree(pos syntax.Pos, format string, args ...interface{}) error {
	return c.errorf(pos, "invalid parse tree: "+format, args...)
}
