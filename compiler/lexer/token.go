package lexer

import "fmt"

// TokenType represents the type of token in the pattern language
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota

	// Consumable atoms
	TOKEN_LITERAL // any admitted character
	TOKEN_DOT     // . wildcard

	// Postfix quantifiers
	TOKEN_STAR // * zero or more
	TOKEN_PLUS // + one or more
)

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_LITERAL:
		return "LITERAL"
	case TOKEN_DOT:
		return "DOT"
	case TOKEN_STAR:
		return "STAR"
	case TOKEN_PLUS:
		return "PLUS"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single lexical token
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal rune // For TOKEN_LITERAL, the character to match
	Column  int  // 1-based rune position in the pattern
	Start   int  // Rune offset where token starts
	End     int  // Rune offset where token ends (exclusive)
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%s) [%d]", t.Type, t.Lexeme, t.Column)
}

// LexError represents a lexical analysis error
type LexError struct {
	Message string
	Column  int
}

// Error implements the error interface
func (e LexError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column, e.Message)
}
