package lexer

import (
	"testing"
)

// TestTokenTypes tests tokenization of each token kind
func TestTokenTypes(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"a", TOKEN_LITERAL},
		{"4", TOKEN_LITERAL},
		{"!", TOKEN_LITERAL},
		{" ", TOKEN_LITERAL},
		{"é", TOKEN_LITERAL},
		{"😎", TOKEN_LITERAL},
		{".", TOKEN_DOT},
		{"*", TOKEN_STAR},
		{"+", TOKEN_PLUS},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := New(tt.input)
			tokens, errors := lexer.ScanTokens()

			if len(errors) > 0 {
				t.Fatalf("Unexpected errors: %v", errors)
			}

			if len(tokens) != 2 { // token + EOF
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}

			if tokens[0].Type != tt.expected {
				t.Errorf("Expected token type %v, got %v", tt.expected, tokens[0].Type)
			}
		})
	}
}

func TestTokenStream(t *testing.T) {
	tokens, errors := New("a*4.+hi").ScanTokens()

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}

	expected := []struct {
		typ     TokenType
		lexeme  string
		literal rune
		column  int
	}{
		{TOKEN_LITERAL, "a", 'a', 1},
		{TOKEN_STAR, "*", 0, 2},
		{TOKEN_LITERAL, "4", '4', 3},
		{TOKEN_DOT, ".", 0, 4},
		{TOKEN_PLUS, "+", 0, 5},
		{TOKEN_LITERAL, "h", 'h', 6},
		{TOKEN_LITERAL, "i", 'i', 7},
		{TOKEN_EOF, "", 0, 8},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, want := range expected {
		tok := tokens[i]
		if tok.Type != want.typ {
			t.Errorf("Token %d: expected type %v, got %v", i, want.typ, tok.Type)
		}
		if tok.Lexeme != want.lexeme {
			t.Errorf("Token %d: expected lexeme %q, got %q", i, want.lexeme, tok.Lexeme)
		}
		if tok.Literal != want.literal {
			t.Errorf("Token %d: expected literal %q, got %q", i, want.literal, tok.Literal)
		}
		if tok.Column != want.column {
			t.Errorf("Token %d: expected column %d, got %d", i, want.column, tok.Column)
		}
	}
}

func TestEmptyPattern(t *testing.T) {
	tokens, errors := New("").ScanTokens()

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	if len(tokens) != 1 || tokens[0].Type != TOKEN_EOF {
		t.Fatalf("Expected only EOF, got %v", tokens)
	}
}

// TestUnicodeColumns verifies columns count runes, not bytes
func TestUnicodeColumns(t *testing.T) {
	tokens, errors := New("😎*x").ScanTokens()

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	if tokens[1].Type != TOKEN_STAR || tokens[1].Column != 2 {
		t.Errorf("Expected STAR at column 2, got %v at %d", tokens[1].Type, tokens[1].Column)
	}
	if tokens[2].Type != TOKEN_LITERAL || tokens[2].Column != 3 {
		t.Errorf("Expected LITERAL at column 3, got %v at %d", tokens[2].Type, tokens[2].Column)
	}
}

func TestControlCharacters(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		column int
	}{
		{"nul", "a\x00b", 2},
		{"tab", "\tb", 1},
		{"newline", "ab\n", 3},
		{"delete", "a\x7f", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errors := New(tt.input).ScanTokens()

			if len(errors) != 1 {
				t.Fatalf("Expected 1 error, got %d", len(errors))
			}
			if errors[0].Column != tt.column {
				t.Errorf("Expected error at column %d, got %d", tt.column, errors[0].Column)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tokens, _ := New("a").ScanTokens()
	if got := tokens[0].String(); got != "LITERAL(a) [1]" {
		t.Errorf("Unexpected token string: %q", got)
	}
}
