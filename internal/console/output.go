package console

import (
	"bytes"
	"io"
)

// Output is an io.Writer that remembers the text written since the last
// newline. An interactive read redraws that text as its prompt.
type Output struct {
	w    io.Writer
	tail []byte
}

// NewOutput returns an Output writing to w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Write(p []byte) (int, error) {
	n, err := o.w.Write(p)
	written := p[:n]
	if i := bytes.LastIndexByte(written, '\n'); i >= 0 {
		o.tail = append(o.tail[:0], written[i+1:]...)
	} else {
		o.tail = append(o.tail, written...)
	}
	return n, err
}

// Pending returns the unterminated last line of output.
func (o *Output) Pending() string {
	return string(o.tail)
}

// Clear forgets the pending line, once something else ended it.
func (o *Output) Clear() {
	o.tail = o.tail[:0]
}
