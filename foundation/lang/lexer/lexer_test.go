// File: lexer_test.go
// Title: Monkey Lexer Unit Tests
// Description: Tests cover every token kind, two-character operators, the
//              full sample program, illegal input, positions and the end of
//              input behaviour.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test suite

package lexer

import (
	"testing"

	"github.com/msto63/monkey/foundation/lang/token"
)

type expectedToken struct {
	typ     token.Type
	literal string
}

func assertTokens(t *testing.T, input string, expected []expectedToken) {
	t.Helper()
	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want.typ {
			t.Fatalf("token[%d] type = %s, want %s (literal %q)", i, tok.Type.Name(), want.typ.Name(), tok.Literal)
		}
		if tok.Literal != want.literal {
			t.Fatalf("token[%d] literal = %q, want %q", i, tok.Literal, want.literal)
		}
	}
}

func TestNextToken_Delimiters(t *testing.T) {
	assertTokens(t, "=+(){},;", []expectedToken{
		{token.ASSIGN, "="},
		{token.PLUS, "+"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.COMMA, ","},
		{token.SEMICOLON, ";"},
		{token.EOF, token.EOFLiteral},
	})
}

func TestNextToken_TwoCharOperators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []expectedToken
	}{
		{"equal", "==", []expectedToken{{token.EQ, "=="}, {token.EOF, token.EOFLiteral}}},
		{"not equal", "!=", []expectedToken{{token.NOT_EQ, "!="}, {token.EOF, token.EOFLiteral}}},
		{"assign then int", "=5", []expectedToken{{token.ASSIGN, "="}, {token.INT, "5"}}},
		{"bang then ident", "!x", []expectedToken{{token.BANG, "!"}, {token.IDENT, "x"}}},
		{"separated", "= =", []expectedToken{{token.ASSIGN, "="}, {token.ASSIGN, "="}}},
		{"triple", "===", []expectedToken{{token.EQ, "=="}, {token.ASSIGN, "="}}},
		{"bang equal equal", "!==", []expectedToken{{token.NOT_EQ, "!="}, {token.ASSIGN, "="}}},
		{"double bang", "!!", []expectedToken{{token.BANG, "!"}, {token.BANG, "!"}}},
		{"trailing bang", "!", []expectedToken{{token.BANG, "!"}, {token.EOF, token.EOFLiteral}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`

	assertTokens(t, input, []expectedToken{
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.LET, "let"},
		{token.IDENT, "ten"},
		{token.ASSIGN, "="},
		{token.INT, "10"},
		{token.SEMICOLON, ";"},
		{token.LET, "let"},
		{token.IDENT, "add"},
		{token.ASSIGN, "="},
		{token.FUNCTION, "fn"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.SEMICOLON, ";"},
		{token.LET, "let"},
		{token.IDENT, "result"},
		{token.ASSIGN, "="},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.COMMA, ","},
		{token.IDENT, "ten"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.BANG, "!"},
		{token.MINUS, "-"},
		{token.SLASH, "/"},
		{token.ASTERISK, "*"},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.INT, "5"},
		{token.LT, "<"},
		{token.INT, "10"},
		{token.GT, ">"},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.INT, "5"},
		{token.LT, "<"},
		{token.INT, "10"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.TRUE, "true"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.FALSE, "false"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.INT, "10"},
		{token.EQ, "=="},
		{token.INT, "10"},
		{token.SEMICOLON, ";"},
		{token.INT, "10"},
		{token.NOT_EQ, "!="},
		{token.INT, "9"},
		{token.SEMICOLON, ";"},
		{token.EOF, token.EOFLiteral},
	})
}

func TestNextToken_IdentifiersAndIntegers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []expectedToken
	}{
		{"underscore identifier", "_foo_bar", []expectedToken{{token.IDENT, "_foo_bar"}}},
		{"keyword prefix", "letter", []expectedToken{{token.IDENT, "letter"}}},
		{"keyword case", "LET", []expectedToken{{token.IDENT, "LET"}}},
		{"digits split identifier", "abc123", []expectedToken{{token.IDENT, "abc"}, {token.INT, "123"}}},
		{"integer then identifier", "12ab", []expectedToken{{token.INT, "12"}, {token.IDENT, "ab"}}},
		{"huge integer stays text", "99999999999999999999", []expectedToken{{token.INT, "99999999999999999999"}}},
		{"leading zeros", "007", []expectedToken{{token.INT, "007"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestNextToken_Illegal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []expectedToken
	}{
		{"at sign", "@", []expectedToken{{token.ILLEGAL, "@"}, {token.EOF, token.EOFLiteral}}},
		{"continues after illegal", "a $ b", []expectedToken{{token.IDENT, "a"}, {token.ILLEGAL, "$"}, {token.IDENT, "b"}}},
		{"string quote", `"x"`, []expectedToken{{token.ILLEGAL, `"`}, {token.IDENT, "x"}, {token.ILLEGAL, `"`}}},
		{"multi byte", "é=1", []expectedToken{{token.ILLEGAL, "é"}, {token.ASSIGN, "="}, {token.INT, "1"}}},
		{"emoji", "🙈;", []expectedToken{{token.ILLEGAL, "🙈"}, {token.SEMICOLON, ";"}}},
		{"invalid utf8", "\xff1", []expectedToken{{token.ILLEGAL, "\xff"}, {token.INT, "1"}}},
		{"embedded nul", "a\x00b", []expectedToken{{token.IDENT, "a"}, {token.ILLEGAL, "\x00"}, {token.IDENT, "b"}, {token.EOF, token.EOFLiteral}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestNextToken_EOFIsIdempotent(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "x", "let"} {
		l := New(input)
		l.Tokenize()

		first := l.NextToken()
		for i := 0; i < 5; i++ {
			tok := l.NextToken()
			if tok != first {
				t.Fatalf("input %q: call %d = %+v, want %+v", input, i, tok, first)
			}
			if tok.Type != token.EOF || tok.Literal != token.EOFLiteral {
				t.Fatalf("input %q: got %s after end of input", input, tok)
			}
		}
	}
}

func TestNextToken_Positions(t *testing.T) {
	input := "let x = 10;\n  y == 5\r\n!z"

	expected := []token.Position{
		{Offset: 0, Line: 1, Column: 1},   // let
		{Offset: 4, Line: 1, Column: 5},   // x
		{Offset: 6, Line: 1, Column: 7},   // =
		{Offset: 8, Line: 1, Column: 9},   // 10
		{Offset: 10, Line: 1, Column: 11}, // ;
		{Offset: 14, Line: 2, Column: 3},  // y
		{Offset: 16, Line: 2, Column: 5},  // ==
		{Offset: 19, Line: 2, Column: 8},  // 5
		{Offset: 22, Line: 3, Column: 1},  // !
		{Offset: 23, Line: 3, Column: 2},  // z
		{Offset: 24, Line: 3, Column: 3},  // EOF
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Pos != want {
			t.Errorf("token[%d] %s pos = %+v, want %+v", i, tok, tok.Pos, want)
		}
	}
}

func TestNextToken_EOFAfterNewline(t *testing.T) {
	l := New("x\n")
	l.NextToken()
	eof := l.NextToken()
	want := token.Position{Offset: 2, Line: 2, Column: 1}
	if eof.Pos != want {
		t.Errorf("EOF pos = %+v, want %+v", eof.Pos, want)
	}
}

func TestTokenize(t *testing.T) {
	l := New("let a = 1;")
	tokens := l.Tokenize()

	if len(tokens) != 6 {
		t.Fatalf("Tokenize() returned %d tokens, want 6", len(tokens))
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		t.Error("last token must be EOF")
	}
	if l.Input() != "let a = 1;" {
		t.Errorf("Input() = %q", l.Input())
	}

	empty := New("").Tokenize()
	if len(empty) != 1 || empty[0].Type != token.EOF {
		t.Errorf("Tokenize(\"\") = %v", empty)
	}
}

func BenchmarkNextToken(b *testing.B) {
	input := `let add = fn(x, y) { x + y; }; let result = add(5, 10); if (result > 10) { return true; } else { return false; }`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := New(input)
		for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		}
	}
}
