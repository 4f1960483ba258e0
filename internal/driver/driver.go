// Package driver runs the Mini-PL pipeline: decoding, scanning, parsing,
// semantic analysis, verification and execution.
package driver

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/you-not-fish/minipl/internal/analyzer"
	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/console"
	"github.com/you-not-fish/minipl/internal/eval"
	"github.com/you-not-fish/minipl/internal/syntax"
)

// Options describes one interpreter run.
type Options struct {
	Filename string
	Source   io.Reader // program text, UTF-8 with an optional BOM

	Input  console.LineReader // lines for read statements
	Output io.Writer          // print output and emitted dumps

	// Logger receives stage timings at debug level. If nil, nothing is
	// logged.
	Logger log15.Logger

	Emit      Emit
	ASTFormat string // text, json, yaml or dump; empty means text

	// Verify checks the typed AST before it is emitted or executed.
	Verify bool

	// Trace sends per-statement records of the analyzer and the
	// evaluator to Logger.
	Trace bool
}

// state carries the products of the stages run so far.
type state struct {
	opts *Options
	log  log15.Logger

	src  []byte
	toks []syntax.Token
	tree *syntax.Branch
	info *analyzer.Info
	prog *ast.Program
}

// pass is one pipeline step.
type pass struct {
	Stage Stage
	Fn    func(s *state) error
}

var pipeline = []pass{
	{StageInput, (*state).decode},
	{StageScan, (*state).scan},
	{StageParse, (*state).parse},
	{StageSemantic, (*state).analyze},
	{StageVerify, (*state).verify},
	{StageExec, (*state).execute},
}

// Run executes the pipeline described by opts. It stops after the stage
// whose product opts.Emit names and prints that product instead of
// running the program. Failures are returned as *StageError.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log15.New()
		logger.SetHandler(log15.DiscardHandler())
	}
	if opts.ASTFormat == "" {
		opts.ASTFormat = "text"
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	s := &state{opts: &opts, log: logger}

	for _, p := range pipeline {
		if p.Stage == StageExec && opts.Emit != EmitNone {
			break
		}
		start := time.Now()
		err := p.Fn(s)
		logger.Debug("Stage done", "stage", p.Stage, "elapsed", time.Since(start), "err", err)
		if err != nil {
			return &StageError{Stage: p.Stage, Err: err}
		}

		if opts.Emit != EmitNone && opts.Emit.after() == p.Stage {
			if err := s.emit(opts.Emit); err != nil {
				return &StageError{Stage: p.Stage, Err: err}
			}
			return nil
		}
	}
	return nil
}

// decode reads the whole source, dropping a UTF-8 byte order mark.
func (s *state) decode() error {
	if s.opts.Source == nil {
		return errors.New("no source")
	}
	r := transform.NewReader(s.opts.Source, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	src, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "cannot read %s", s.opts.Filename)
	}
	s.src = src
	return nil
}

func (s *state) scan() (err error) {
	s.toks, err = syntax.Tokenize(s.opts.Filename, bytes.NewReader(s.src))
	return err
}

func (s *state) parse() (err error) {
	s.tree, err = syntax.Parse(s.toks)
	return err
}

func (s *state) analyze() (err error) {
	conf := &analyzer.Config{}
	if s.opts.Trace {
		conf.Trace = s.log.New("stage", StageSemantic)
	}
	s.info = &analyzer.Info{}
	s.prog, err = analyzer.Analyze(s.tree, conf, s.info)
	return err
}

func (s *state) verify() error {
	if !s.opts.Verify {
		return nil
	}
	return eval.Check(s.prog)
}

func (s *state) execute() error {
	conf := &eval.Config{
		Input:  s.opts.Input,
		Output: s.opts.Output,
	}
	if s.opts.Trace {
		conf.Logger = s.log.New("stage", StageExec)
	}
	return eval.Run(s.prog, conf)
}

// Emit selects an intermediate product to print instead of running the
// program.
type Emit int

const (
	EmitNone Emit = iota
	EmitTokens
	EmitParseTree
	EmitAST
	EmitSymbols
)

var emitNames = [...]string{
	EmitNone:      "",
	EmitTokens:    "tokens",
	EmitParseTree: "parse-tree",
	EmitAST:       "ast",
	EmitSymbols:   "symbols",
}

func (e Emit) String() string {
	if e >= 0 && int(e) < len(emitNames) {
		return emitNames[e]
	}
	return fmt.Sprintf("Emit(%d)", int(e))
}

// after returns the stage that produces e's output.
func (e Emit) after() Stage {
	switch e {
	case EmitTokens:
		return StageScan
	case EmitParseTree:
		return StageParse
	case EmitAST, EmitSymbols:
		return StageVerify
	}
	return StageExec
}

// ParseEmit returns the Emit named s. The empty string is EmitNone.
func ParseEmit(s string) (Emit, error) {
	for i, name := range emitNames {
		if s == name {
			return Emit(i), nil
		}
	}
	return EmitNone, errors.Errorf("unknown emit mode %q, want tokens, parse-tree, ast or symbols", s)
}
