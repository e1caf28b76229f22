package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds reported by the Reader
var (
	ErrInvalidCapacity    = errors.New("invalid token capacity")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnbalancedClose    = errors.New("unbalanced close")
	ErrUnclosedList       = errors.New("unfinished S-expression")
	ErrUnterminatedString = errors.New("unfinished string")
	ErrUnterminatedToken  = errors.New("unfinished token")
	ErrTruncatedToken     = errors.New("token exceeds capacity")
	ErrClosed             = errors.New("reader is finished")
)

// Error is a failure tied to a position of the input
type Error struct {
	Err error

	Line int
	Col  int

	// Content holds the partial token, if any.
	Content string
}

func (e *Error) Error() string {
	if e.Content != "" {
		return fmt.Sprintf("%v: `%s`, col: %d, line: %d", e.Err, displayContent(e.Content), e.Col, e.Line)
	}
	return fmt.Sprintf("%v, col: %d, line: %d", e.Err, e.Col, e.Line)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var contentReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\t", `\t`,
	"\x00", `\u{0000}`,
)

func displayContent(s string) string {
	return contentReplacer.Replace(s)
}
