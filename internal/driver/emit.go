package driver

import (
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// dumpConfig prints trees without pointer addresses so dumps of the same
// program are identical across runs.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (s *state) emit(e Emit) error {
	w := s.opts.Output
	switch e {
	case EmitTokens:
		return writeTokens(w, s.toks)
	case EmitParseTree:
		return s.writeTree(w)
	case EmitAST:
		return s.writeAST(w)
	case EmitSymbols:
		return writeSymbols(w, s.info.Symbols)
	}
	return errors.Errorf("nothing to emit for %v", e)
}

func (s *state) writeTree(w io.Writer) error {
	switch s.opts.ASTFormat {
	case "text":
		return syntax.Fprint(w, s.tree)
	case "json":
		return syntax.FprintJSON(w, s.tree)
	case "yaml":
		return syntax.FprintYAML(w, s.tree)
	case "dump":
		dumpConfig.Fdump(w, s.tree)
		return nil
	}
	return errors.Errorf("unknown format %q", s.opts.ASTFormat)
}

func (s *state) writeAST(w io.Writer) error {
	switch s.opts.ASTFormat {
	case "text":
		return ast.Fprint(w, s.prog)
	case "json":
		return ast.FprintJSON(w, s.prog)
	case "yaml":
		return ast.FprintYAML(w, s.prog)
	case "dump":
		dumpConfig.Fdump(w, s.prog)
		return nil
	}
	return errors.Errorf("unknown format %q", s.opts.ASTFormat)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

// writeTokens prints one row per token, including the final EOF.
func writeTokens(w io.Writer, toks []syntax.Token) error {
	table := newTable(w, "POSITION", "KIND", "LITERAL")
	for _, tok := range toks {
		table.Append([]string{tok.Pos.String(), tok.Kind.String(), strconv.Quote(tok.Lit)})
	}
	table.Render()
	return nil
}

// writeSymbols prints the symbol table in declaration order.
func writeSymbols(w io.Writer, syms *types.SymbolTable) error {
	if syms == nil {
		return errors.New("no symbol table")
	}
	table := newTable(w, "NAME", "TYPE", "INITIALIZED", "DECLARED AT")
	for _, v := range syms.Vars() {
		table.Append([]string{v.Name(), v.Type().String(), strconv.FormatBool(v.Initialized()), v.Pos().String()})
	}
	table.Render()
	return nil
}
