package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		In  byte
		Out ByteClass
	}{
		{' ', ClassSpace},
		{'\t', ClassSpace},
		{'\n', ClassNewLine},
		{'"', ClassQuote},
		{'\\', ClassEscape},
		{';', ClassComment},
		{'(', ClassOpenList},
		{')', ClassCloseList},
		{'a', ClassOrdinary},
		{'0', ClassOrdinary},
		{'\r', ClassOrdinary},
		{'[', ClassOrdinary},
		{0, ClassOrdinary},
		{0xff, ClassOrdinary},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, Classify(testCases[i].In), "byte %q", testCases[i].In)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "open_list", ClassOpenList.String())
	assert.Equal(t, "ordinary", ByteClass(200).String())

	assert.Equal(t, "comment", TokenComment.String())
	assert.Equal(t, "invalid", TokenType(200).String())
}

func TestToken(t *testing.T) {
	tok := NewToken(TokenString, `"a b"`, 3, 7)

	line, col := tok.Pos()
	assert.Equal(t, 3, line)
	assert.Equal(t, 7, col)
	assert.Equal(t, `"a b"`, tok.Text())
	assert.True(t, tok.Is(TokenString))
	assert.False(t, tok.Is(TokenSymbol))
	assert.Equal(t, `(:string "\"a b\"" [3 7])`, tok.String())
}
