package eval

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/minipl/internal/analyzer"
	"github.com/you-not-fish/minipl/internal/ast"
	"github.com/you-not-fish/minipl/internal/console"
	"github.com/you-not-fish/minipl/internal/syntax"
	"github.com/you-not-fish/minipl/internal/types"
)

// compile parses and analyzes src, failing the test on any error.
func compile(t *testing.T, src string) *ast.Program {
	t.Helper()
	tree, err := syntax.ParseFile("test.mpl", strings.NewReader(src))
	require.NoError(t, err, "parse")
	prog, err := analyzer.Analyze(tree, nil, nil)
	require.NoError(t, err, "analyze")
	return prog
}

// runSource runs src with the given standard input and returns what it
// printed.
func runSource(t *testing.T, src, stdin string) (string, error) {
	t.Helper()
	prog := compile(t, src)
	var out bytes.Buffer
	err := Run(prog, &Config{
		Input:  console.NewReader(strings.NewReader(stdin)),
		Output: &out,
		Verify: true,
	})
	return out.String(), err
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		stdin string
		want  string
	}{
		{"int arithmetic", `print 1 + 2 * 3;`, "", "7"},
		{"left fold", `print 1 + 2 - 3 + 4;`, "", "4"},
		{"parens", `print (1 + 2) * 3;`, "", "9"},
		{"truncating division", `print 7 / 2;`, "", "3"},
		{"string concat", `print "ab" + "cd";`, "", "abcd"},
		{"newline escape", `print "a\nb";`, "", "a\nb"},
		{"no trailing newline", `print 1; print 2;`, "", "12"},
		{"bool output", `print 1 < 2;`, "", "true"},
		{"chained and", `print true & true & false;`, "", "false"},
		{"not", `print !(1 = 2);`, "", "true"},
		{"string equal", `print "x" = "x";`, "", "true"},
		{"bool equal", `print (1 = 1) = true;`, "", "true"},
		{"zero values", `var n : int; var s : string; var b : bool; read n; print n;`, "0\n", "0"},
		{
			"declaration with init",
			`var x : int := 5; var s : string := "v"; print x; print s;`,
			"", "5v",
		},
		{
			"assignment",
			`var x : int := 1; x := x + 41; print x;`,
			"", "42",
		},
		{
			"overflow wraps",
			`var x : int := 9223372036854775807; print x + 1;`,
			"", "-9223372036854775808",
		},
		{
			"single iteration loop",
			`var i : int; for i in 3..3 do print i; end for;`,
			"", "3",
		},
		{
			"descending loop",
			`var i : int; for i in 5..1 do print i; end for;`,
			"", "54321",
		},
		{
			"loop variable after loop",
			`var i : int; for i in 1..3 do print i; end for; print i;`,
			"", "1234",
		},
		{
			"loop variable after descending loop",
			`var i : int; for i in 3..1 do print i; end for; print i;`,
			"", "3210",
		},
		{
			"bounds evaluated once",
			`var n : int := 3; var i : int; for i in 1..n do n := 10; print i; end for;`,
			"", "123",
		},
		{
			"declaration in loop resets",
			`var i : int; for i in 1..3 do var x : int := 0; x := x + i; print x; end for;`,
			"", "123",
		},
		{
			"nested loops",
			`var i : int; var j : int; for i in 1..2 do for j in 1..2 do print i * j; end for; end for;`,
			"", "1224",
		},
		{"read int", `var n : int; read n; print n * 2;`, " 21 \n", "42"},
		{"read bool", `var b : bool; read b; print b;`, "true\n", "true"},
		{"read bool any case", `var b : bool; read b; print b;`, "TRUE\n", "true"},
		{"read bool mixed case", `var b : bool; read b; print b;`, " fAlSe\n", "false"},
		{"read string verbatim", `var s : string; read s; print s;`, "  hello world\n", "  hello world"},
		{"read unterminated line", `var s : string; read s; print s;`, "end", "end"},
		{
			"read several lines",
			`var a : int; var b : int; read a; read b; print a + b;`,
			"1\r\n2\n", "3",
		},
		{"assert true", `assert (1 = 1); print "ok";`, "", "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runSource(t, tt.src, tt.stdin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		stdin   string
		wantOut string
		wantMsg string
	}{
		{"division by zero", `print "x"; print 1 / 0;`, "", "x", "1:22: division by zero"},
		{"division by zero variable", `var z : int; read z; print 4 / z;`, "0\n", "", "division by zero"},
		{"eof", `var n : int; read n;`, "", "", "1:14: unexpected end of input"},
		{"second read at eof", `var n : int; read n; read n;`, "1\n", "", "1:22: unexpected end of input"},
		{"bad int", `var n : int; read n;`, "abc\n", "", `cannot parse "abc" as int`},
		{"int out of range", `var n : int; read n;`, "99999999999999999999\n", "", "as int"},
		{"bad bool", `var b : bool; read b;`, "yes\n", "", `cannot parse "yes" as bool`},
		{"bool as digit", `var b : bool; read b;`, "1\n", "", `cannot parse "1" as bool`},
		{"bool as zero", `var b : bool; read b;`, "0\n", "", `cannot parse "0" as bool`},
		{"bool as letter", `var b : bool; read b;`, "t\n", "", `cannot parse "t" as bool`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runSource(t, tt.src, tt.stdin)
			var rerr *RuntimeError
			require.True(t, errors.As(err, &rerr), "got %T %v, want *RuntimeError", err, err)
			assert.Contains(t, rerr.Error(), tt.wantMsg)
			assert.Equal(t, tt.wantOut, got)
		})
	}
}

func TestReadParseErrorWrapsCause(t *testing.T) {
	_, err := runSource(t, `var n : int; read n;`, "x\n")
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "x", numErr.Num)
}

func TestReadWithoutInput(t *testing.T) {
	prog := compile(t, `var n : int; read n;`)
	err := Run(prog, nil)
	var rerr *RuntimeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "unexpected end of input", rerr.Msg)
}

type failingReader struct{ err error }

func (r failingReader) ReadLine() (string, error) { return "", r.err }

func TestReadInterrupted(t *testing.T) {
	prog := compile(t, `var s : string; read s;`)
	err := Run(prog, &Config{Input: failingReader{console.ErrInterrupted}})
	var rerr *RuntimeError
	require.True(t, errors.As(err, &rerr))
	assert.True(t, errors.Is(err, console.ErrInterrupted))
}

func TestAssertionFailure(t *testing.T) {
	src := "print \"before\";\nvar x : int := 2;\nassert (x = 3);\nprint \"after\";"
	got, err := runSource(t, src, "")
	var aerr *AssertionError
	require.True(t, errors.As(err, &aerr), "got %T %v", err, err)
	assert.Equal(t, "Assert on line 3 failed.", aerr.Error())
	assert.Equal(t, "before", got)
}

func TestAssertInsideLoopStopsLoop(t *testing.T) {
	got, err := runSource(t, `var i : int; for i in 1..5 do print i; assert (i < 3); end for;`, "")
	var aerr *AssertionError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, "123", got)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrintWriteFailure(t *testing.T) {
	prog := compile(t, `print 1;`)
	err := Run(prog, &Config{Output: failingWriter{}})
	var rerr *RuntimeError
	require.True(t, errors.As(err, &rerr))
	assert.Contains(t, rerr.Msg, "disk full")
}

func TestNilOutputDiscards(t *testing.T) {
	prog := compile(t, `print "x";`)
	assert.NoError(t, Run(prog, &Config{}))
}

func TestStoreAfterRun(t *testing.T) {
	prog := compile(t, `var x : int := 1; var s : string; var i : int; for i in 1..2 do x := x * 10; end for;`)
	in := New(nil)
	require.NoError(t, in.Run(prog))

	assert.Equal(t, []string{"i", "s", "x"}, in.Store().Names())
	x, err := in.Store().Get(syntax.Pos{}, "x")
	require.NoError(t, err)
	assert.Equal(t, IntValue{Val: 100}, x)
	i, err := in.Store().Get(syntax.Pos{}, "i")
	require.NoError(t, err)
	assert.Equal(t, IntValue{Val: 3}, i)
	s, err := in.Store().Get(syntax.Pos{}, "s")
	require.NoError(t, err)
	assert.Equal(t, StringValue{}, s)
}

func TestLoggerRecordsStatements(t *testing.T) {
	prog := compile(t, `var i : int; for i in 1..2 do print i; end for;`)
	var stmts []string
	logger := log15.New()
	logger.SetHandler(log15.FuncHandler(func(r *log15.Record) error {
		for i := 0; i+1 < len(r.Ctx); i += 2 {
			if r.Ctx[i] == "stmt" {
				stmts = append(stmts, r.Ctx[i+1].(string))
			}
		}
		return nil
	}))
	require.NoError(t, Run(prog, &Config{Logger: logger}))
	assert.Equal(t, []string{"declaration", "for", "print", "print"}, stmts)
}

func tok(line, col int, kind syntax.Kind, lit string) syntax.Token {
	return syntax.Token{Kind: kind, Lit: lit, Pos: syntax.NewPos("test.mpl", line, col)}
}

func TestStoreDeclare(t *testing.T) {
	intT := types.Typ[types.Int]
	d1 := &ast.Declaration{Tok: tok(1, 1, syntax.Keyword, "var"), Name: "x", Typ: intT}
	d2 := &ast.Declaration{Tok: tok(2, 1, syntax.Keyword, "var"), Name: "x", Typ: intT}

	s := NewStore()
	require.NoError(t, s.Declare(d1, IntValue{Val: 0}))
	require.NoError(t, s.Set(d1.Tok.Pos, "x", IntValue{Val: 7}))

	// Re-executing the same declaration resets the slot.
	require.NoError(t, s.Declare(d1, IntValue{Val: 0}))
	v, err := s.Get(d1.Tok.Pos, "x")
	require.NoError(t, err)
	assert.Equal(t, IntValue{Val: 0}, v)

	err = s.Declare(d2, IntValue{Val: 0})
	var ierr *InternalError
	require.True(t, errors.As(err, &ierr))
	assert.Contains(t, ierr.Msg, "redeclaration of x")
}

func TestStoreTagMismatch(t *testing.T) {
	d := &ast.Declaration{Tok: tok(1, 1, syntax.Keyword, "var"), Name: "x", Typ: types.Typ[types.Int]}
	s := NewStore()
	require.NoError(t, s.Declare(d, IntValue{}))

	err := s.Set(d.Tok.Pos, "x", StringValue{Val: "no"})
	var ierr *InternalError
	require.True(t, errors.As(err, &ierr))
	assert.Contains(t, ierr.Error(), "cannot store string value in int variable x")

	_, err = s.Get(d.Tok.Pos, "y")
	require.True(t, errors.As(err, &ierr))
	err = s.Set(d.Tok.Pos, "y", IntValue{})
	require.True(t, errors.As(err, &ierr))
}

// illTyped prints "a" - 1, which the analyzer would reject.
func illTyped() *ast.Program {
	str := &ast.StringLit{Tok: tok(1, 7, syntax.String, "a"), Value: "a"}
	one := &ast.IntLit{Tok: tok(1, 13, syntax.Number, "1"), Value: 1}
	return &ast.Program{Stmts: []ast.Stmt{
		&ast.Print{
			Tok: tok(1, 1, syntax.Keyword, "print"),
			X: &ast.BinaryExpr{
				Tok:      str.Tok,
				Typ:      types.Typ[types.Int],
				Op:       ast.OpSub,
				Operands: []ast.Expr{str, one},
			},
		},
	}}
}

func TestVerifyRejectsIllTypedProgram(t *testing.T) {
	var out bytes.Buffer
	err := Run(illTyped(), &Config{Output: &out, Verify: true})
	var ierr *InternalError
	require.True(t, errors.As(err, &ierr), "got %T %v", err, err)
	assert.Contains(t, ierr.Msg, "ast verification failed")
	assert.Empty(t, out.String())
}

func TestEvalDetectsIllTypedProgram(t *testing.T) {
	err := Run(illTyped(), &Config{})
	var ierr *InternalError
	require.True(t, errors.As(err, &ierr), "got %T %v", err, err)
	assert.Contains(t, ierr.Msg, "cannot apply - to string and int")
	assert.Contains(t, ierr.Error(), "internal error")
}

func TestZero(t *testing.T) {
	for _, tt := range []struct {
		typ  *types.Basic
		want Value
	}{
		{types.Typ[types.Int], IntValue{}},
		{types.Typ[types.String], StringValue{}},
		{types.Typ[types.Bool], BoolValue{}},
	} {
		got, ok := Zero(tt.typ)
		if !ok || got != tt.want {
			t.Errorf("Zero(%v) = %v, %v, want %v", tt.typ, got, ok, tt.want)
		}
	}
	if _, ok := Zero(types.Typ[types.Invalid]); ok {
		t.Error("Zero(invalid) succeeded")
	}
}

func TestValueString(t *testing.T) {
	for _, tt := range []struct {
		v    Value
		want string
	}{
		{IntValue{Val: -12}, "-12"},
		{StringValue{Val: `a\nb`}, `a\nb`},
		{BoolValue{Val: true}, "true"},
		{BoolValue{}, "false"},
	} {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}
