package analyzer

import (
	"github.com/inconshreveable/log15"

	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// Config specifies the configuration for semantic analysis.
type Config struct {
	// Error is called for the semantic error that stops analysis.
	// If nil, the error is only returned.
	Error ErrorHandler

	// Trace receives a debug record per analyzed statement.
	// If nil, nothing is logged.
	Trace log15.Logger
}

// Info holds the results of semantic analysis.
type Info struct {
	// Symbols is the program's symbol table as it stands when analysis
	// ends, including initialization state.
	Symbols *types.SymbolTable

	// Defs maps declaring identifiers to the variables they declare.
	Defs map[*syntax.Leaf]*types.Var

	// Uses maps every other identifier (reads, assignment targets, read
	// targets, loop variables) to the variable it refers to.
	Uses map[*syntax.Leaf]*types.Var
}

// Analyze checks a parse tree produced by syntax.Parse and lowers it into
// a typed AST. Analysis stops at the first error, which is returned as a
// *SemanticError.
func Analyze(tree *syntax.Branch, conf *Config, info *Info) (*ast.Program, error) {
	if conf == nil {
		conf = &Config{}
	}
	if info != nil {
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Leaf]*types.Var)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Leaf]*types.Var)
		}
	}

	c := newChecker(conf, info)
	prog, err := c.program(tree)
	if info != nil {
		info.Symbols = c.syms
	}
	if err != nil {
		return nil, err
	}
	return prog, nil
}
