package lexer

import (
	"fmt"
)

// Token is a leaf of the tree: a symbol, a string or a comment, kept exactly
// as it appeared in the input. Strings keep their quotes and escapes,
// comments keep both markers. Lists use a token too, to record where their
// opening parenthesis was.
type Token struct {
	tt     TokenType
	lexeme string

	line int
	col  int
}

// NewToken creates a token that starts at the given line and column
func NewToken(tt TokenType, lexeme string, line int, col int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// Type returns the type of the token
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the first byte of the token
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the verbatim bytes of the token. Escapes are not decoded.
func (t Token) Text() string {
	return t.lexeme
}

// Is reports whether the token is of type tt
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
