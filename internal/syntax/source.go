package syntax

import (
	"io"
	"unicode"
	"unicode/utf8"
)

// source is a character reader with position tracking.
// The whole input is read into memory up front.
type source struct {
	buf []byte

	filename string
	line     int // line of ch (1-based)
	col      int // column of ch (1-based, in characters)

	ch   rune // current character, -1 at EOF
	offs int  // byte offset of the character after ch

	errh func(pos Pos, msg string)
}

// newSource reads src completely and positions the reader on the first
// character. errh receives every problem found; it may be nil.
func newSource(filename string, src io.Reader, errh func(pos Pos, msg string)) *source {
	s := &source{
		filename: filename,
		line:     1,
		col:      0, // first nextch moves to column 1
		ch:       -1,
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.errorAt(s.pos(), "error reading source: "+err.Error())
		return s
	}

	s.nextch()
	return s
}

// nextch advances to the next character.
//
// (line, col) always describe s.ch after nextch returns; the line counter
// moves when the previous character was a newline.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.errorAt(s.pos(), "invalid UTF-8 encoding")
	}
	s.ch = r
	s.offs += width
}

// peek returns the character after s.ch without consuming anything.
func (s *source) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.buf[s.offs:])
	return r
}

func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

func (s *source) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos, msg)
	}
}

func isLetter(r rune) bool {
	return r >= 0 && unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentPart reports whether r may continue an identifier.
func isIdentPart(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
