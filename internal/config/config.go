// Package config loads the interpreter's TOML configuration file.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
)

// Config is the contents of a configuration file.
type Config struct {
	Run RunConfig
	Log LogConfig
}

// RunConfig controls program execution and dumps.
type RunConfig struct {
	Prompt    string // appended to pending output when read prompts on a terminal
	Verify    bool   // check the typed AST before executing it
	ASTFormat string // text, json, yaml or dump
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Verbosity int    // 0 (crit) to 4 (debug)
	Color     string // auto, always or never
}

// Defaults holds the settings used when no file is given.
var Defaults = Config{
	Run: RunConfig{
		Prompt:    "",
		ASTFormat: "text",
	},
	Log: LogConfig{
		Verbosity: 2,
		Color:     "auto",
	},
}

// ASTFormats lists the accepted values of Run.ASTFormat.
var ASTFormats = []string{"text", "json", "yaml", "dump"}

// ColorModes lists the accepted values of Log.Color.
var ColorModes = []string{"auto", "always", "never"}

// MaxVerbosity is the most detailed log level.
const MaxVerbosity = 4

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// Load reads file on top of the values already in cfg.
func Load(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, "cannot open config")
	}
	defer f.Close()

	if err := Decode(f, cfg); err != nil {
		// Add file name to errors that have a line number.
		if _, ok := errors.Cause(err).(*toml.LineError); ok {
			return errors.New(file + ", " + err.Error())
		}
		return errors.Wrap(err, file)
	}
	return nil
}

// Decode reads TOML from r into cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	if err := tomlSettings.NewDecoder(bufio.NewReader(r)).Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks that every setting has an accepted value.
func (c *Config) Validate() error {
	if !oneOf(c.Run.ASTFormat, ASTFormats) {
		return errors.Errorf("invalid Run.ASTFormat %q, want one of %v", c.Run.ASTFormat, ASTFormats)
	}
	if !oneOf(c.Log.Color, ColorModes) {
		return errors.Errorf("invalid Log.Color %q, want one of %v", c.Log.Color, ColorModes)
	}
	if c.Log.Verbosity < 0 || c.Log.Verbosity > MaxVerbosity {
		return errors.Errorf("invalid Log.Verbosity %d, want 0 to %d", c.Log.Verbosity, MaxVerbosity)
	}
	return nil
}

// Dump writes cfg as TOML.
func Dump(w io.Writer, cfg *Config) error {
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "cannot encode config")
	}
	_, err = w.Write(out)
	return err
}

func oneOf(s string, list []string) bool {
	for _, v := range list {
		if s == v {
			return true
		}
	}
	return false
}
