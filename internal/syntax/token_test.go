package syntax

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Unknown, "UNKNOWN"},
		{Lparen, "LPAREN"},
		{Rparen, "RPAREN"},
		{Assign, "ASSIGN"},
		{BinaryOp, "BINARY_OP"},
		{UnaryOp, "UNARY_OP"},
		{Colon, "COLON"},
		{Semi, "SEMI"},
		{Name, "NAME"},
		{Number, "NUMBER"},
		{Keyword, "KEYWORD"},
		{String, "STRING"},
		{Bool, "BOOL"},
		{Range, "RANGE"},
		{Kind(200), "Kind(200)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: EOF}, "end of input"},
		{Token{Kind: Name, Lit: "x"}, `"x"`},
		{Token{Kind: String, Lit: `a\nb`}, `"a\\nb"`},
		{Token{Kind: Assign, Lit: ":="}, `":="`},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLookupKind(t *testing.T) {
	for _, kw := range []string{"var", "for", "end", "in", "do", "read", "print", "int", "string", "bool", "assert"} {
		if got := LookupKind(kw); got != Keyword {
			t.Errorf("LookupKind(%q) = %v, want KEYWORD", kw, got)
		}
	}
	for _, b := range []string{"true", "false"} {
		if got := LookupKind(b); got != Bool {
			t.Errorf("LookupKind(%q) = %v, want BOOL", b, got)
		}
	}
	for _, n := range []string{"x", "Var", "printer", "ä", "true_"} {
		if got := LookupKind(n); got != Name {
			t.Errorf("LookupKind(%q) = %v, want NAME", n, got)
		}
	}
}

func TestTokenIs(t *testing.T) {
	tok := Token{Kind: Keyword, Lit: "for"}
	if !tok.IsKeyword(KwFor) {
		t.Error("IsKeyword(for) = false, want true")
	}
	if tok.IsKeyword(KwEnd) {
		t.Error("IsKeyword(end) = true, want false")
	}
	name := Token{Kind: Name, Lit: "for"}
	if name.IsKeyword(KwFor) {
		t.Error("name token reported as keyword")
	}
}
