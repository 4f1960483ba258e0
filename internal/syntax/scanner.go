package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner splits Mini-PL source into tokens.
//
// Unrecognized characters produce Unknown tokens and an error report;
// scanning continues so that every problem in the file is seen.
type Scanner struct {
	source

	tok    Token
	litBuf strings.Builder
}

// NewScanner creates a Scanner over src. errh is called for each lexical
// error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(pos Pos, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next advances to the next token. After EOF, Next keeps returning EOF.
func (s *Scanner) Next() {
redo:
	s.skipWhitespace()

	pos := s.pos()
	switch {
	case s.ch < 0:
		s.tok = Token{Kind: EOF, Pos: pos}

	case isLetter(s.ch):
		s.scanIdent(pos)

	case isDigit(s.ch):
		s.scanNumber(pos)

	case s.ch == '"':
		s.scanString(pos)

	default:
		if s.scanOperator(pos) {
			goto redo
		}
	}
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tok.Pos
}

// Literal returns the current token's text.
func (s *Scanner) Literal() string {
	return s.tok.Lit
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

func (s *Scanner) scanIdent(pos Pos) {
	s.litBuf.Reset()
	for isIdentPart(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	lit := s.litBuf.String()
	s.tok = Token{Kind: LookupKind(lit), Lit: lit, Pos: pos}
}

func (s *Scanner) scanNumber(pos Pos) {
	s.litBuf.Reset()
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.tok = Token{Kind: Number, Lit: s.litBuf.String(), Pos: pos}
}

// scanString scans a string literal. The content is kept verbatim:
// backslash sequences are not decoded here.
func (s *Scanner) scanString(pos Pos) {
	s.nextch() // opening "
	s.litBuf.Reset()
	for s.ch != '"' {
		if s.ch < 0 {
			s.errorAt(pos, "string not terminated")
			s.tok = Token{Kind: String, Lit: s.litBuf.String(), Pos: pos}
			return
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.nextch() // closing "
	s.tok = Token{Kind: String, Lit: s.litBuf.String(), Pos: pos}
}

// scanOperator scans an operator or delimiter.
// It reports true if a comment was skipped and the caller should rescan.
func (s *Scanner) scanOperator(pos Pos) bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+', '-', '*', '<', '=', '&':
		s.tok = Token{Kind: BinaryOp, Lit: string(ch), Pos: pos}
	case '/':
		switch s.ch {
		case '/':
			s.skipLineComment()
			return true
		case '*':
			s.skipBlockComment(pos)
			return true
		}
		s.tok = Token{Kind: BinaryOp, Lit: "/", Pos: pos}
	case '!':
		s.tok = Token{Kind: UnaryOp, Lit: "!", Pos: pos}
	case ':':
		if s.ch == '=' {
			s.nextch()
			s.tok = Token{Kind: Assign, Lit: ":=", Pos: pos}
		} else {
			s.tok = Token{Kind: Colon, Lit: ":", Pos: pos}
		}
	case ';':
		s.tok = Token{Kind: Semi, Lit: ";", Pos: pos}
	case '(':
		s.tok = Token{Kind: Lparen, Lit: "(", Pos: pos}
	case ')':
		s.tok = Token{Kind: Rparen, Lit: ")", Pos: pos}
	case '.':
		if s.ch == '.' {
			s.nextch()
			s.tok = Token{Kind: Range, Lit: "..", Pos: pos}
			break
		}
		s.unknown(pos, ch)
	default:
		s.unknown(pos, ch)
	}
	return false
}

func (s *Scanner) unknown(pos Pos, ch rune) {
	s.errorAt(pos, fmt.Sprintf("unknown token %q", string(ch)))
	s.tok = Token{Kind: Unknown, Lit: string(ch), Pos: pos}
}

// skipLineComment skips from the second '/' to the end of the line.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// skipBlockComment skips a /* ... */ comment. Block comments nest.
func (s *Scanner) skipBlockComment(pos Pos) {
	s.nextch() // '*'
	depth := 1
	for depth > 0 {
		switch {
		case s.ch < 0:
			s.errorAt(pos, "comment not terminated")
			return
		case s.ch == '/' && s.peek() == '*':
			s.nextch()
			s.nextch()
			depth++
		case s.ch == '*' && s.peek() == '/':
			s.nextch()
			s.nextch()
			depth--
		default:
			s.nextch()
		}
	}
}

// Tokenize scans all of src and returns its tokens, terminated by an EOF
// token. If any lexical error occurs, Tokenize returns a *ScanError listing
// all of them and no tokens.
func Tokenize(filename string, src io.Reader) ([]Token, error) {
	var errs []*Error
	errh := func(pos Pos, msg string) {
		errs = append(errs, &Error{Pos: pos, Msg: msg})
	}

	s := NewScanner(filename, src, errh)
	var toks []Token
	for {
		s.Next()
		toks = append(toks, s.tok)
		if s.tok.Kind == EOF {
			break
		}
	}

	if len(errs) > 0 {
		return nil, &ScanError{List: errs}
	}
	return toks, nil
}
