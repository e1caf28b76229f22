package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexpr-stream/lexer"
)

func sampleTree(t *testing.T) *Tree {
	tree := NewTree()

	_, err := tree.PushToken(tree.Root(), lexer.NewToken(lexer.TokenComment, ";; head", 1, 1))
	require.NoError(t, err)

	list, err := tree.PushList(tree.Root(), lexer.NewToken(lexer.TokenOpenList, "(", 2, 1))
	require.NoError(t, err)

	_, err = tree.PushToken(list, lexer.NewToken(lexer.TokenSymbol, "foo", 2, 2))
	require.NoError(t, err)

	inner, err := tree.PushList(list, lexer.NewToken(lexer.TokenOpenList, "(", 2, 6))
	require.NoError(t, err)
	require.NoError(t, tree.Seal(inner))

	_, err = tree.PushToken(list, lexer.NewToken(lexer.TokenString, `"a<b"`, 2, 9))
	require.NoError(t, err)

	_, err = tree.PushToken(list, lexer.NewToken(lexer.TokenComment, ";; tail", 2, 15))
	require.NoError(t, err)

	require.NoError(t, tree.Seal(list))
	return tree
}

func TestEncode(t *testing.T) {
	tree := sampleTree(t)
	assert.Equal(t, ";; head\n(foo () \"a<b\" ;; tail\n)\n", string(Encode(tree)))

	assert.Equal(t, "", string(Encode(NewTree())))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, sampleTree(t))

	expected := `(root): ((:open_list "" [1 1]))
    (comment): ";; head" ((:comment ";; head" [1 1]))
    (list): ((:open_list "(" [2 1]))
        (symbol): "foo" ((:symbol "foo" [2 2]))
        (list): ((:open_list "(" [2 6]))
        (string): "\"a<b\"" ((:string "\"a<b\"" [2 9]))
        (comment): ";; tail" ((:comment ";; tail" [2 15]))
`
	assert.Equal(t, expected, buf.String())
}

func TestFprintXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintXML(&buf, sampleTree(t)))

	expected := `<root line="1" col="1">
  <comment line="1" col="1">;; head</comment>
  <list line="2" col="1">
    <symbol line="2" col="2">foo</symbol>
    <list line="2" col="6">
    </list>
    <string line="2" col="9">&#34;a&lt;b&#34;</string>
    <comment line="2" col="15">;; tail</comment>
  </list>
</root>
`
	assert.Equal(t, expected, buf.String())
}
