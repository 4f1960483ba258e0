package console

import (
	"errors"
	"io"

	"github.com/peterh/liner"
)

// prompter is the part of liner.State a Terminal uses.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// Terminal is an interactive LineReader with line editing and history.
// It must be closed to restore the terminal mode.
type Terminal struct {
	state  prompter
	prompt string
	out    *Output
}

// NewTerminal puts the terminal into line-editing mode. The line editor
// redraws the whole line, so the prompt of every ReadLine is the text out
// holds after its last newline followed by prompt. out may be nil.
func NewTerminal(prompt string, out *Output) *Terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return newTerminal(state, prompt, out)
}

func newTerminal(state prompter, prompt string, out *Output) *Terminal {
	return &Terminal{state: state, prompt: prompt, out: out}
}

// ReadLine prompts for one line. Ctrl-D yields io.EOF, Ctrl-C yields
// ErrInterrupted.
func (t *Terminal) ReadLine() (string, error) {
	prompt := t.prompt
	if t.out != nil {
		prompt = t.out.Pending() + prompt
		// The line editor ends the line when input is accepted.
		defer t.out.Clear()
	}
	line, err := t.state.Prompt(prompt)
	switch {
	case err == nil:
		if line != "" {
			t.state.AppendHistory(line)
		}
		return line, nil
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case errors.Is(err, liner.ErrPromptAborted):
		return "", ErrInterrupted
	}
	return "", err
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	return t.state.Close()
}
