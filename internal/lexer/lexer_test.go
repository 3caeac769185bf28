package lexer

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/token"
)

func TestScanTokensBasic(t *testing.T) {
	src := `var x = 1 + 2.5; // comment
print x == "hi";`
	l := New(src)
	tokens := l.ScanTokens()

	var types []token.Type
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}

	want := []token.Type{
		token.VAR, token.IDENT, token.EQUAL, token.NUMBER, token.PLUS, token.NUMBER, token.SEMICOLON,
		token.PRINT, token.IDENT, token.EQUAL_EQUAL, token.STRING, token.SEMICOLON,
		token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i, tt := range want {
		if types[i] != tt {
			t.Errorf("token %d: got %v, want %v", i, types[i], tt)
		}
	}
}

func TestScanTwoCharOperators(t *testing.T) {
	l := New("!= == <= >= ! = < >")
	tokens := l.ScanTokens()
	want := []token.Type{
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.BANG, token.EQUAL, token.LESS, token.GREATER, token.EOF,
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	l := New("class classy")
	tokens := l.ScanTokens()
	if tokens[0].Type != token.CLASS {
		t.Errorf("expected CLASS, got %v", tokens[0].Type)
	}
	if tokens[1].Type != token.IDENT {
		t.Errorf("expected IDENT for 'classy', got %v", tokens[1].Type)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	l.ScanTokens()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexer error, got %v", l.Errors())
	}
}

func TestNumberLiteralValue(t *testing.T) {
	l := New("3.14")
	tokens := l.ScanTokens()
	if tokens[0].Literal.(float64) != 3.14 {
		t.Errorf("got %v, want 3.14", tokens[0].Literal)
	}
}
