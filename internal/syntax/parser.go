package syntax

import (
	"fmt"
	"io"
)

// Parser builds a parse tree from a token sequence.
//
// Parsing is recursive descent with one token of lookahead. The first
// error stops the parse; no partial tree is returned.
type Parser struct {
	toks []Token
	next int // index of the lookahead token

	tok Token // current (lookahead) token
	err *SyntaxError
}

// NewParser creates a Parser over toks. A missing EOF terminator is
// synthesized.
func NewParser(toks []Token) *Parser {
	p := &Parser{toks: toks}
	p.advance()
	return p
}

// Parse parses a complete program.
func (p *Parser) Parse() (*Branch, error) {
	prog := p.program()
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

// Parse parses toks as a complete program.
func Parse(toks []Token) (*Branch, error) {
	return NewParser(toks).Parse()
}

// ParseFile scans and parses src. Lexical errors are returned as a
// *ScanError, grammar errors as a *SyntaxError.
func ParseFile(filename string, src io.Reader) (*Branch, error) {
	toks, err := Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// ----------------------------------------------------------------------------
// Token navigation

// advance moves to the next token. Past the end of the slice the parser
// sees EOF at the last known position.
func (p *Parser) advance() {
	if p.next < len(p.toks) {
		p.tok = p.toks[p.next]
		p.next++
		return
	}
	p.tok = Token{Kind: EOF, Pos: p.tok.Pos}
}

// consume returns the current token as a leaf and advances.
func (p *Parser) consume() *Leaf {
	l := &Leaf{Tok: p.tok}
	p.advance()
	return l
}

// want consumes a token of the given kind, or records an error.
func (p *Parser) want(kind Kind, what string) *Leaf {
	if p.err != nil {
		return nil
	}
	if p.tok.Kind != kind {
		p.syntaxError("expected " + what)
		return nil
	}
	return p.consume()
}

// wantKeyword consumes the reserved word kw, or records an error.
func (p *Parser) wantKeyword(kw string) *Leaf {
	if p.err != nil {
		return nil
	}
	if !p.tok.IsKeyword(kw) {
		p.syntaxError(fmt.Sprintf("expected %q", kw))
		return nil
	}
	return p.consume()
}

func (p *Parser) isOp(kind Kind, ops ...string) bool {
	if p.tok.Kind != kind {
		return false
	}
	for _, op := range ops {
		if p.tok.Lit == op {
			return true
		}
	}
	return false
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError records the first error at the current token.
func (p *Parser) syntaxError(msg string) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Pos: p.tok.Pos,
		Tok: p.tok,
		Msg: fmt.Sprintf("%s, found %s", msg, p.tok),
	}
}

// branch builds a node; once an error is recorded nodes are discarded.
func (p *Parser) branch(tag NonTerminal, children ...Node) *Branch {
	if p.err != nil {
		return nil
	}
	return &Branch{Tag: tag, Children: children}
}

// ----------------------------------------------------------------------------
// Statements

// program := (statement ';')+ EOF
func (p *Parser) program() *Branch {
	var children []Node
	for {
		children = p.statementSemi(children)
		if p.err != nil || p.tok.Kind == EOF {
			break
		}
	}
	return p.branch(Program, children...)
}

// statementSemi appends "statement ;" to list.
func (p *Parser) statementSemi(list []Node) []Node {
	s := p.statement()
	semi := p.want(Semi, `";"`)
	if p.err != nil {
		return list
	}
	return append(list, s, semi)
}

func (p *Parser) statement() *Branch {
	switch {
	case p.tok.Kind == Name:
		return p.assignment()
	case p.tok.IsKeyword(KwVar):
		return p.declaration()
	case p.tok.IsKeyword(KwFor):
		return p.forStmt()
	case p.tok.IsKeyword(KwRead):
		return p.readStmt()
	case p.tok.IsKeyword(KwPrint):
		return p.printStmt()
	case p.tok.IsKeyword(KwAssert):
		return p.assertStmt()
	}
	p.syntaxError("expected statement")
	return nil
}

// declaration := 'var' IDENT ':' type [':=' expr]
func (p *Parser) declaration() *Branch {
	children := []Node{
		p.wantKeyword(KwVar),
		p.want(Name, "variable name"),
		p.want(Colon, `":"`),
		p.typ(),
	}
	if p.err == nil && p.tok.Kind == Assign {
		children = append(children, p.consume(), p.expr())
	}
	return p.branch(Statement, children...)
}

// assignment := IDENT ':=' expr
func (p *Parser) assignment() *Branch {
	return p.branch(Statement,
		p.want(Name, "variable name"),
		p.want(Assign, `":="`),
		p.expr(),
	)
}

// for := 'for' IDENT 'in' expr '..' expr 'do' (statement ';')+ 'end' 'for'
func (p *Parser) forStmt() *Branch {
	children := []Node{
		p.wantKeyword(KwFor),
		p.want(Name, "loop variable"),
		p.wantKeyword(KwIn),
		p.expr(),
		p.want(Range, `".."`),
		p.expr(),
		p.wantKeyword(KwDo),
	}
	for p.err == nil {
		children = p.statementSemi(children)
		if p.tok.IsKeyword(KwEnd) {
			break
		}
	}
	children = append(children, p.wantKeyword(KwEnd), p.wantKeyword(KwFor))
	return p.branch(Statement, children...)
}

// read := 'read' IDENT
func (p *Parser) readStmt() *Branch {
	return p.branch(Statement,
		p.wantKeyword(KwRead),
		p.want(Name, "variable name"),
	)
}

// print := 'print' expr
func (p *Parser) printStmt() *Branch {
	return p.branch(Statement,
		p.wantKeyword(KwPrint),
		p.expr(),
	)
}

// assert := 'assert' '(' expr ')'
func (p *Parser) assertStmt() *Branch {
	return p.branch(Statement,
		p.wantKeyword(KwAssert),
		p.want(Lparen, `"("`),
		p.expr(),
		p.want(Rparen, `")"`),
	)
}

// type := 'int' | 'string' | 'bool'
func (p *Parser) typ() *Branch {
	if p.err != nil {
		return nil
	}
	switch {
	case p.tok.IsKeyword(KwInt), p.tok.IsKeyword(KwString), p.tok.IsKeyword(KwBool):
		return p.branch(Type, p.consume())
	}
	p.syntaxError("expected type")
	return nil
}

// ----------------------------------------------------------------------------
// Expressions

// binaryLevels lists the binary precedence levels from loosest to
// tightest, with the operators each accepts.
var binaryLevels = [...]struct {
	tag NonTerminal
	ops []string
}{
	{Expr6, []string{"&"}},
	{Expr5, []string{"="}},
	{Expr4, []string{"<"}},
	{Expr3, []string{"+", "-"}},
	{Expr2, []string{"*", "/"}},
}

// expr := e6
func (p *Parser) expr() *Branch {
	if p.err != nil {
		return nil
	}
	return p.branch(Expression, p.binary(0))
}

// binary parses binaryLevels[level]: operand (op operand)*.
// Past the last level it continues with the unary level.
func (p *Parser) binary(level int) *Branch {
	if level == len(binaryLevels) {
		return p.unary()
	}
	lv := binaryLevels[level]
	children := []Node{p.binary(level + 1)}
	for p.err == nil && p.isOp(BinaryOp, lv.ops...) {
		children = append(children, p.consume(), p.binary(level+1))
	}
	return p.branch(lv.tag, children...)
}

// e1 := '!' e1 | e0
func (p *Parser) unary() *Branch {
	if p.err != nil {
		return nil
	}
	if p.isOp(UnaryOp, "!") {
		op := p.consume()
		return p.branch(Expr1, op, p.unary())
	}
	return p.branch(Expr1, p.operand())
}

// e0 := NUMBER | STRING | IDENT | BOOL | '(' expr ')'
func (p *Parser) operand() *Branch {
	if p.err != nil {
		return nil
	}
	switch p.tok.Kind {
	case Number, String, Name, Bool:
		return p.branch(Expr0, p.consume())
	case Lparen:
		lparen := p.consume()
		x := p.expr()
		return p.branch(Expr0, lparen, x, p.want(Rparen, `")"`))
	}
	p.syntaxError("expected expression")
	return nil
}
