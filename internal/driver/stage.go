package driver

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/minipl/internal/analyzer"
	"github.com/you-not-fish/minipl/internal/eval"
	"github.com/you-not-fish/minipl/internal/syntax"
)

// Stage names a step of the interpreter pipeline.
type Stage int

const (
	StageInput Stage = iota
	StageScan
	StageParse
	StageSemantic
	StageVerify
	StageExec
)

var stageNames = [...]string{
	StageInput:    "input",
	StageScan:     "scanning",
	StageParse:    "parsing",
	StageSemantic: "semantic",
	StageVerify:   "verification",
	StageExec:     "execution",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// StageError tags a failure with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Process exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 1
	ExitIO        = 2
	ExitLexical   = 3
	ExitParse     = 4
	ExitSemantic  = 5
	ExitRuntime   = 6
	ExitAssertion = 7
	ExitInternal  = 70
)

// ExitCode maps an error returned by Run to the process exit status.
// Errors of no known kind are I/O or configuration failures.
func ExitCode(err error) int {
	var (
		scanErr      *syntax.ScanError
		syntaxErr    *syntax.SyntaxError
		semanticErr  *analyzer.SemanticError
		runtimeErr   *eval.RuntimeError
		assertionErr *eval.AssertionError
		internalErr  *eval.InternalError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &scanErr):
		return ExitLexical
	case errors.As(err, &syntaxErr):
		return ExitParse
	case errors.As(err, &semanticErr):
		return ExitSemantic
	case errors.As(err, &internalErr):
		return ExitInternal
	case errors.As(err, &assertionErr):
		return ExitAssertion
	case errors.As(err, &runtimeErr):
		return ExitRuntime
	}
	return ExitIO
}
