// Package console provides line-oriented input for the read statement.
package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrInterrupted is returned by an interactive reader when the user
// aborts the prompt with Ctrl-C.
var ErrInterrupted = errors.New("input interrupted")

// LineReader yields one line of input per call, without its line
// terminator. It returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// Reader is a LineReader over any io.Reader.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a LineReader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line with its trailing "\n" or "\r\n"
// removed. A final line without a terminator is returned as is.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
