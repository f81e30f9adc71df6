package errors

// Error code constants organized by phase
// E001-E099: Lexer errors
// E100-E199: Compiler errors

const (
	// Lexer errors (E001-E099)
	ErrInvalidCharacter = "E002"

	// Compiler errors (E100-E199)
	ErrDanglingQuantifier = "E100"
)
