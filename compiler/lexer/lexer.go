package lexer

import (
	"fmt"
	"unicode"
)

// Lexer tokenizes a pattern expression
type Lexer struct {
	source  []rune // Pattern as runes for Unicode support
	start   int    // Start position of current token
	current int    // Current position in source
	tokens  []Token
	errors  []LexError
}

// New creates a new Lexer for the given pattern
func New(pattern string) *Lexer {
	return &Lexer{
		source: []rune(pattern),
		tokens: make([]Token, 0, len(pattern)+1),
		errors: make([]LexError, 0),
	}
}

// ScanTokens scans all tokens from the pattern and returns them with any
// errors. The returned slice always ends with an EOF token.
func (l *Lexer) ScanTokens() ([]Token, []LexError) {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Type:   TOKEN_EOF,
		Lexeme: "",
		Column: l.current + 1,
		Start:  l.current,
		End:    l.current,
	})

	return l.tokens, l.errors
}

// scanToken scans a single token. Every admitted character is exactly one
// token; there is no escaping, so the three reserved characters can never
// be matched literally.
func (l *Lexer) scanToken() {
	r := l.advance()

	switch {
	case r == '.':
		l.addToken(TOKEN_DOT, 0)
	case r == '*':
		l.addToken(TOKEN_STAR, 0)
	case r == '+':
		l.addToken(TOKEN_PLUS, 0)
	case unicode.IsControl(r):
		l.addError(fmt.Sprintf("unsupported character %q in pattern", r))
	default:
		l.addToken(TOKEN_LITERAL, r)
	}
}

func (l *Lexer) advance() rune {
	r := l.source[l.current]
	l.current++
	return r
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) addToken(t TokenType, literal rune) {
	l.tokens = append(l.tokens, Token{
		Type:    t,
		Lexeme:  string(l.source[l.start:l.current]),
		Literal: literal,
		Column:  l.start + 1,
		Start:   l.start,
		End:     l.current,
	})
}

func (l *Lexer) addError(message string) {
	l.errors = append(l.errors, LexError{
		Message: message,
		Column:  l.start + 1,
	})
}
