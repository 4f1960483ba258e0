// Package eval executes analyzed Mini-PL programs by walking the typed AST.
package eval

import (
	"fmt"

	"github.com/go-stack/stack"

	"github.com/you-not-fish/minipl/internal/syntax"
)

// RuntimeError is a failure of a well-typed program during execution:
// unparsable or exhausted input, or division by zero.
type RuntimeError struct {
	Pos syntax.Pos
	Msg string
	Err error // underlying cause, if any
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// AssertionError reports an assert statement whose expression was false.
type AssertionError struct {
	Pos syntax.Pos
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("Assert on line %d failed.", e.Pos.Line())
}

// InternalError reports a broken interpreter invariant, such as a store
// whose tag disagrees with the static type. It never results from a
// program the analyzer accepted.
type InternalError struct {
	Pos  syntax.Pos
	Msg  string
	Call stack.Call // Go call site that detected the violation
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: internal error: %s (detected at %+v)", e.Pos, e.Msg, e.Call)
}

func runtimeErrorf(pos syntax.Pos, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// internalErrorf records the caller of internalErrorf as the call site.
func internalErrorf(pos syntax.Pos, format string, args ...interface{}) *InternalError {
	return &InternalError{
		Pos:  pos,
		Msg:  fmt.Sprintf(format, args...),
		Call: stack.Caller(1),
	}
}
