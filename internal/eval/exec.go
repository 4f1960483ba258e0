package eval

import (
	"io"
	"strconv"
	"strings"

	"github.com/inconshreveable/log15"

	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/console"
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// Config specifies the environment a program runs in.
type Config struct {
	// Input supplies lines to read statements. If nil, every read fails
	// with "unexpected end of input".
	Input console.LineReader

	// Output receives print output. If nil, output is discarded.
	Output io.Writer

	// Logger receives a debug record per executed statement.
	// If nil, nothing is logged.
	Logger log15.Logger

	// Verify runs ast.Verify before execution.
	Verify bool
}

// Interpreter executes one program. It owns the variable store.
type Interpreter struct {
	conf  *Config
	store *Store
	log   log15.Logger
}

// New returns an interpreter with an empty store.
func New(conf *Config) *Interpreter {
	if conf == nil {
		conf = &Config{}
	}
	logger := conf.Logger
	if logger == nil {
		logger = log15.New()
		logger.SetHandler(log15.DiscardHandler())
	}
	return &Interpreter{conf: conf, store: NewStore(), log: logger}
}

// Run executes prog with a fresh interpreter.
// The error, if any, is a *RuntimeError, *AssertionError or *InternalError.
func Run(prog *ast.Program, conf *Config) error {
	return New(conf).Run(prog)
}

// Store returns the interpreter's variable store.
func (in *Interpreter) Store() *Store {
	return in.store
}

// Run executes the statements of prog in order, stopping at the first
// failure.
func (in *Interpreter) Run(prog *ast.Program) error {
	if in.conf.Verify {
		if err := Check(prog); err != nil {
			return err
		}
	}
	return in.execList(prog.Stmts)
}

// Check runs ast.Verify on prog and reports a violation as an
// *InternalError.
func Check(prog *ast.Program) error {
	if err := ast.Verify(prog); err != nil {
		return internalErrorf(firstPos(prog), "%v", err)
	}
	return nil
}

func firstPos(prog *ast.Program) syntax.Pos {
	if len(prog.Stmts) > 0 {
		return prog.Stmts[0].Start().Pos
	}
	return syntax.Pos{}
}

func (in *Interpreter) execList(list []ast.Stmt) error {
	for _, s := range list {
		if err := in.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(s ast.Stmt) error {
	in.log.Debug("Executing statement", "stmt", stmtName(s), "pos", s.Start().Pos)

	switch s := s.(type) {
	case *ast.Declaration:
		return in.declare(s)

	case *ast.DeclarationWithInit:
		if err := in.declare(&s.Declaration); err != nil {
			return err
		}
		v, err := in.eval(s.Init)
		if err != nil {
			return err
		}
		return in.store.Set(s.Tok.Pos, s.Name, v)

	case *ast.Assignment:
		v, err := in.eval(s.Value)
		if err != nil {
			return err
		}
		return in.store.Set(s.Tok.Pos, s.Name, v)

	case *ast.ForLoop:
		return in.forLoop(s)

	case *ast.Read:
		return in.read(s)

	case *ast.Print:
		v, err := in.eval(s.X)
		if err != nil {
			return err
		}
		return in.print(s.Tok.Pos, v)

	case *ast.Assert:
		v, err := in.eval(s.X)
		if err != nil {
			return err
		}
		b, ok := v.(BoolValue)
		if !ok {
			return internalErrorf(s.Tok.Pos, "assertion evaluated to %s", v.Kind())
		}
		if !b.Val {
			return &AssertionError{Pos: s.Tok.Pos}
		}
		return nil
	}
	return internalErrorf(s.Start().Pos, "unknown statement %T", s)
}

func (in *Interpreter) declare(d *ast.Declaration) error {
	zero, ok := Zero(d.Typ)
	if !ok {
		return internalErrorf(d.Tok.Pos, "declaration of %s has no type", d.Name)
	}
	return in.store.Declare(d, zero)
}

// forLoop evaluates the bounds once, then counts from Lo to Hi
// inclusive, upward when Lo <= Hi and downward otherwise. The loop
// variable is stored before every iteration; after the loop it holds one
// step past Hi.
func (in *Interpreter) forLoop(s *ast.ForLoop) error {
	lo, err := in.evalInt(s.Lo)
	if err != nil {
		return err
	}
	hi, err := in.evalInt(s.Hi)
	if err != nil {
		return err
	}

	step := int64(1)
	if lo > hi {
		step = -1
	}
	name, pos := s.Var.Name, s.Var.Tok.Pos
	for i := lo; ; i += step {
		if err := in.store.Set(pos, name, IntValue{Val: i}); err != nil {
			return err
		}
		if err := in.execList(s.Body); err != nil {
			return err
		}
		if i == hi {
			return in.store.Set(pos, name, IntValue{Val: i + step})
		}
	}
}

// read parses one input line according to the target's declared type.
func (in *Interpreter) read(s *ast.Read) error {
	pos := s.Tok.Pos
	if in.conf.Input == nil {
		return runtimeErrorf(pos, "unexpected end of input")
	}
	line, err := in.conf.Input.ReadLine()
	if err != nil {
		if err == io.EOF {
			return runtimeErrorf(pos, "unexpected end of input")
		}
		return &RuntimeError{Pos: pos, Msg: "read failed: " + err.Error(), Err: err}
	}

	var v Value
	switch {
	case types.IsIntegerType(s.Typ):
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return &RuntimeError{Pos: pos, Msg: "cannot parse " + strconv.Quote(line) + " as int", Err: err}
		}
		v = IntValue{Val: n}
	case types.IsBooleanType(s.Typ):
		b, ok := parseBool(line)
		if !ok {
			return runtimeErrorf(pos, "cannot parse %q as bool", line)
		}
		v = BoolValue{Val: b}
	case types.IsStringType(s.Typ):
		v = StringValue{Val: line}
	default:
		return internalErrorf(pos, "read into %s of type %v", s.Name, s.Typ)
	}
	return in.store.Set(pos, s.Name, v)
}

// parseBool accepts only the words true and false, in any letter case.
func parseBool(line string) (bool, bool) {
	switch s := strings.TrimSpace(line); {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	}
	return false, false
}

// print writes v without a trailing newline. In strings the two
// characters \n become a newline.
func (in *Interpreter) print(pos syntax.Pos, v Value) error {
	if in.conf.Output == nil {
		return nil
	}
	text := v.String()
	if v.Kind() == KindString {
		text = strings.ReplaceAll(text, `\n`, "\n")
	}
	if _, err := io.WriteString(in.conf.Output, text); err != nil {
		return &RuntimeError{Pos: pos, Msg: "write failed: " + err.Error(), Err: err}
	}
	return nil
}

func stmtName(s ast.Stmt) string {
	switch s.(type) {
	case *ast.Declaration:
		return "declaration"
	case *ast.DeclarationWithInit:
		return "declaration"
	case *ast.Assignment:
		return "assignment"
	case *ast.ForLoop:
		return "for"
	case *ast.Read:
		return "read"
	case *ast.Print:
		return "print"
	case *ast.Assert:
		return "assert"
	}
	return "unknown"
}
