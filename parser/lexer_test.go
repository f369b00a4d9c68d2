package parser

import (
	"strings"
	"testing"
)

func TestLexer_Tokens(t *testing.T) {
	src := `S -> "a" B | epsilon ;`
	lex := newLexer(strings.NewReader(src))

	want := []tokenKind{
		tokenKindID, tokenKindArrow, tokenKindString, tokenKindID,
		tokenKindOr, tokenKindEpsilon, tokenKindSemicolon, tokenKindEOF,
	}
	for i, w := range want {
		tok, err := lex.next()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.kind != w {
			t.Fatalf("token %d: want %v, got %v", i, w, tok.kind)
		}
	}
}

func TestLexer_StringLiteralIsVerbatim(t *testing.T) {
	lex := newLexer(strings.NewReader(`"hello world"`))
	tok, err := lex.next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.kind != tokenKindString || tok.text != "hello world" {
		t.Fatalf("want string %q, got kind %v text %q", "hello world", tok.kind, tok.text)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lex := newLexer(strings.NewReader(`"abc`))
	if _, err := lex.next(); err == nil {
		t.Fatalf("expected an error for an unterminated string literal")
	}
}

func TestLexer_LoneMinusIsUnknown(t *testing.T) {
	lex := newLexer(strings.NewReader(`-`))
	tok, err := lex.next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.kind != tokenKindUnknown {
		t.Fatalf("expected an unknown token for a lone '-', got %v", tok.kind)
	}
}

func TestLexer_TracksLineAndColumn(t *testing.T) {
	lex := newLexer(strings.NewReader("S\n  -> \"a\" ;"))
	_, err := lex.next() // S
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, err := lex.next() // ->
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.pos.Line != 2 || tok.pos.Column != 3 {
		t.Fatalf("expected arrow at line 2 column 3, got %+v", tok.pos)
	}
}
