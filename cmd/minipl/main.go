// Package main implements the Mini-PL interpreter entry point.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"

	"github.com/you-not-fish/minipl/internal/config"
	"github.com/you-not-fish/minipl/internal/console"
	"github.com/you-not-fish/minipl/internal/driver"
)

// Version information
const Version = "0.1.0-dev"

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	emitFlag = cli.StringFlag{
		Name:  "emit",
		Usage: "Print an intermediate product instead of running (tokens, parse-tree, ast, symbols)",
	}
	astFormatFlag = cli.StringFlag{
		Name:  "ast-format",
		Usage: "Tree output format (text, json, yaml, dump)",
	}
	verifyFlag = cli.BoolFlag{
		Name:  "verify",
		Usage: "Check the typed AST before running it",
	}
	traceFlag = cli.BoolFlag{
		Name:  "trace",
		Usage: "Log stage timings and every executed statement",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored error output",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug",
	}
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := driver.ExitOK

	app := cli.NewApp()
	app.Name = "minipl"
	app.Usage = "the Mini-PL interpreter"
	app.ArgsUsage = "<file.mpl>"
	app.Version = Version
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		configFileFlag,
		emitFlag,
		astFormatFlag,
		verifyFlag,
		traceFlag,
		noColorFlag,
		verbosityFlag,
	}
	app.Action = func(ctx *cli.Context) error {
		code = runFile(ctx, stdin, stdout, stderr)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "dumpconfig",
			Usage:     "Show configuration values",
			ArgsUsage: " ",
			Action: func(ctx *cli.Context) error {
				code = dumpConfig(ctx, stdout, stderr)
				return nil
			},
		},
	}

	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return driver.ExitUsage
	}
	return code
}

func runFile(ctx *cli.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	if ctx.NArg() != 1 {
		fmt.Fprintln(stderr, "error: expected exactly one input file")
		fmt.Fprintln(stderr, "usage: minipl [options] <file.mpl>")
		return driver.ExitUsage
	}
	filename := ctx.Args().First()

	cfg, code := makeConfig(ctx, stderr)
	if code != driver.ExitOK {
		return code
	}
	emit, err := driver.ParseEmit(ctx.GlobalString(emitFlag.Name))
	if err != nil {
		driver.Report(stderr, err, false)
		return driver.ExitUsage
	}

	errOut, colored := colorWriter(stderr, cfg.Log.Color)
	logger := newLogger(errOut, cfg.Log.Verbosity, colored)

	f, err := os.Open(filename)
	if err != nil {
		driver.Report(errOut, err, colored)
		return driver.ExitIO
	}
	defer f.Close()

	var input console.LineReader
	output := stdout
	if isTerminal(stdin) && emit == driver.EmitNone {
		out := console.NewOutput(stdout)
		term := console.NewTerminal(cfg.Run.Prompt, out)
		defer term.Close()
		input, output = term, out
	} else {
		input = console.NewReader(stdin)
	}

	err = driver.Run(driver.Options{
		Filename:  filename,
		Source:    f,
		Input:     input,
		Output:    output,
		Logger:    logger,
		Emit:      emit,
		ASTFormat: cfg.Run.ASTFormat,
		Verify:    cfg.Run.Verify,
		Trace:     ctx.GlobalBool(traceFlag.Name),
	})
	if err != nil {
		driver.Report(errOut, err, colored)
	}
	return driver.ExitCode(err)
}

// makeConfig loads the defaults, then the config file, then flag
// overrides. A bad file is an I/O error; a bad flag value is a usage
// error.
func makeConfig(ctx *cli.Context, stderr io.Writer) (config.Config, int) {
	cfg := config.Defaults
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := config.Load(file, &cfg); err != nil {
			driver.Report(stderr, err, false)
			return cfg, driver.ExitIO
		}
	}

	if ctx.GlobalIsSet(astFormatFlag.Name) {
		cfg.Run.ASTFormat = ctx.GlobalString(astFormatFlag.Name)
	}
	if ctx.GlobalBool(verifyFlag.Name) {
		cfg.Run.Verify = true
	}
	if ctx.GlobalIsSet(verbosityFlag.Name) {
		cfg.Log.Verbosity = ctx.GlobalInt(verbosityFlag.Name)
	}
	if ctx.GlobalBool(traceFlag.Name) {
		cfg.Log.Verbosity = config.MaxVerbosity
	}
	if ctx.GlobalBool(noColorFlag.Name) {
		cfg.Log.Color = "never"
	}
	if err := cfg.Validate(); err != nil {
		driver.Report(stderr, err, false)
		return cfg, driver.ExitUsage
	}
	return cfg, driver.ExitOK
}

func dumpConfig(ctx *cli.Context, stdout, stderr io.Writer) int {
	cfg, code := makeConfig(ctx, stderr)
	if code != driver.ExitOK {
		return code
	}
	if err := config.Dump(stdout, &cfg); err != nil {
		driver.Report(stderr, err, false)
		return driver.ExitIO
	}
	return driver.ExitOK
}

func newLogger(w io.Writer, verbosity int, colored bool) log15.Logger {
	format := log15.LogfmtFormat()
	if colored {
		format = log15.TerminalFormat()
	}
	logger := log15.New()
	logger.SetHandler(log15.LvlFilterHandler(log15.Lvl(verbosity), log15.StreamHandler(w, format)))
	return logger
}

// colorWriter decides whether error output is colored and returns the
// writer to use for it.
func colorWriter(w io.Writer, mode string) (io.Writer, bool) {
	f, isFile := w.(*os.File)
	switch mode {
	case "never":
		return w, false
	case "always":
		if isFile {
			return colorable.NewColorable(f), true
		}
		return w, true
	}
	if isFile && isTerminal(f) {
		return colorable.NewColorable(f), true
	}
	return w, false
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
