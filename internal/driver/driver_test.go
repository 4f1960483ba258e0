package driver

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/minipl/internal/console"
	"github.com/you-not-fish/minipl/internal/eval"
)

func run(t *testing.T, src, stdin string, opts Options) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts.Filename = "test.mpl"
	opts.Source = strings.NewReader(src)
	opts.Input = console.NewReader(strings.NewReader(stdin))
	opts.Output = &out
	err := Run(opts)
	return out.String(), err
}

func TestRunProgram(t *testing.T) {
	src := `
var nTimes : int := 0;
print "How many times?";
read nTimes;
var x : int;
for x in 0..nTimes-1 do
	print x;
	print " : Hello, World!\n";
end for;
assert (x = nTimes);
`
	got, err := run(t, src, "3\n", Options{Verify: true})
	require.NoError(t, err)
	want := "How many times?0 : Hello, World!\n1 : Hello, World!\n2 : Hello, World!\n"
	assert.Equal(t, want, got)
}

func TestRunStripsBOM(t *testing.T) {
	got, err := run(t, "\xef\xbb\xbfprint 1;", "", Options{})
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestStageErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		stdin    string
		stage    Stage
		exitCode int
		want     string
	}{
		{"lexical", "print 1 $;\nprint 2 ~;", "", StageScan, ExitLexical, "2 lexical errors"},
		{"parse", "print 1", "", StageParse, ExitParse, "expected"},
		{"semantic", "var a : int;\nprint a;", "", StageSemantic, ExitSemantic, "read before initialized"},
		{
			"mismatched assert",
			`var a : int := 1; var b : string := "x"; assert (a = b);`,
			"", StageSemantic, ExitSemantic, "int",
		},
		{"division by zero", "print 1 / 0;", "", StageExec, ExitRuntime, "division by zero"},
		{"end of input", "var n : int; read n;", "", StageExec, ExitRuntime, "unexpected end of input"},
		{"assertion", "assert (1 = 2);", "", StageExec, ExitAssertion, "Assert on line 1 failed."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.src, tt.stdin, Options{})
			require.Error(t, err)
			var stageErr *StageError
			require.True(t, errors.As(err, &stageErr), "got %T", err)
			assert.Equal(t, tt.stage, stageErr.Stage)
			assert.Equal(t, tt.exitCode, ExitCode(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMismatchedAssertNamesBothTypes(t *testing.T) {
	_, err := run(t, `var a : int := 1; var b : string := "x"; assert (a = b);`, "", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "int")
	assert.Contains(t, err.Error(), "string")
}

func TestOutputBeforeFailureIsKept(t *testing.T) {
	got, err := run(t, `print "a"; print 1 / 0; print "b";`, "", Options{})
	require.Error(t, err)
	assert.Equal(t, "a", got)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("cannot open"), ExitIO},
		{&StageError{Stage: StageInput, Err: errors.New("read failed")}, ExitIO},
		{&StageError{Stage: StageVerify, Err: &eval.InternalError{Msg: "bad"}}, ExitInternal},
		{&eval.AssertionError{}, ExitAssertion},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestEmitDoesNotExecute(t *testing.T) {
	src := `var x : int := 2; print x * 3; assert (x = 3);`
	for _, e := range []Emit{EmitTokens, EmitParseTree, EmitAST, EmitSymbols} {
		t.Run(e.String(), func(t *testing.T) {
			got, err := run(t, src, "", Options{Emit: e})
			require.NoError(t, err, "the failing assert must not run")
			assert.NotEmpty(t, got)
		})
	}
}

func TestEmitTokens(t *testing.T) {
	got, err := run(t, `print "hi";`, "", Options{Emit: EmitTokens})
	require.NoError(t, err)
	assert.Contains(t, got, "POSITION")
	assert.Contains(t, got, "KEYWORD")
	assert.Contains(t, got, `"print"`)
	assert.Contains(t, got, "STRING")
	assert.Contains(t, got, "EOF")
}

func TestEmitSymbols(t *testing.T) {
	got, err := run(t, "var x : int := 1;\nvar s : string;", "", Options{Emit: EmitSymbols})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 4, "header, separator and two rows:\n%s", got)
	assert.Contains(t, lines[0], "DECLARED AT")
	assert.Regexp(t, `x\s+\|\s+int\s+\|\s+true\s+\|\s+test.mpl:1:5`, lines[2])
	assert.Regexp(t, `s\s+\|\s+string\s+\|\s+false`, lines[3])
}

func TestEmitFormats(t *testing.T) {
	src := `var x : int := 1 + 2; print x;`
	for _, e := range []Emit{EmitParseTree, EmitAST} {
		t.Run(e.String()+"/json", func(t *testing.T) {
			got, err := run(t, src, "", Options{Emit: e, ASTFormat: "json"})
			require.NoError(t, err)
			assert.True(t, json.Valid([]byte(got)), "invalid JSON:\n%s", got)
		})
		t.Run(e.String()+"/yaml", func(t *testing.T) {
			got, err := run(t, src, "", Options{Emit: e, ASTFormat: "yaml"})
			require.NoError(t, err)
			var v interface{}
			assert.NoError(t, yaml.Unmarshal([]byte(got), &v))
		})
		t.Run(e.String()+"/dump", func(t *testing.T) {
			first, err := run(t, src, "", Options{Emit: e, ASTFormat: "dump"})
			require.NoError(t, err)
			second, err := run(t, src, "", Options{Emit: e, ASTFormat: "dump"})
			require.NoError(t, err)
			assert.Equal(t, first, second)
			assert.Contains(t, first, "Tok:")
		})
		t.Run(e.String()+"/bad", func(t *testing.T) {
			_, err := run(t, src, "", Options{Emit: e, ASTFormat: "xml"})
			assert.Error(t, err)
		})
	}

	got, err := run(t, src, "", Options{Emit: EmitParseTree})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "program"), "got:\n%s", got)

	got, err = run(t, src, "", Options{Emit: EmitAST})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Program\n"), "got:\n%s", got)
	assert.Contains(t, got, "BinaryExpr + <int>")
}

func TestParseEmit(t *testing.T) {
	for _, name := range []string{"", "tokens", "parse-tree", "ast", "symbols"} {
		e, err := ParseEmit(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.String())
	}
	_, err := ParseEmit("ssa")
	assert.Error(t, err)
}

func TestTraceLogsStages(t *testing.T) {
	var stages []string
	var stmts int
	logger := log15.New()
	logger.SetHandler(log15.FuncHandler(func(r *log15.Record) error {
		switch r.Msg {
		case "Stage done":
			stages = append(stages, r.Ctx[1].(Stage).String())
		case "Executing statement":
			stmts++
		}
		return nil
	}))
	_, err := run(t, `print 1; print 2;`, "", Options{Logger: logger, Trace: true, Verify: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"input", "scanning", "parsing", "semantic", "verification", "execution"}, stages)
	assert.Equal(t, 2, stmts)
}

func TestReport(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&StageError{Stage: StageParse, Err: errors.New("test.mpl:1:8: expected \";\"")}, "parsing error: test.mpl:1:8: expected \";\"\n"},
		{&StageError{Stage: StageExec, Err: &eval.AssertionError{}}, "Assert on line 0 failed.\n"},
		{errors.New("cannot open x.mpl"), "error: cannot open x.mpl\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Report(&buf, tt.err, false)
		if got := buf.String(); got != tt.want {
			t.Errorf("Report(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}

	var buf bytes.Buffer
	Report(&buf, &StageError{Stage: StageScan, Err: errors.New("x")}, true)
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestRunWithoutOutput(t *testing.T) {
	err := Run(Options{
		Filename: "test.mpl",
		Source:   strings.NewReader(`print "discarded"; var x : int := 2; assert (x = 2);`),
	})
	assert.NoError(t, err)

	err = Run(Options{Filename: "test.mpl"})
	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, StageInput, stageErr.Stage)
	assert.Equal(t, ExitIO, ExitCode(err))
}
