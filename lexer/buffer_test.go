package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferAppend(t *testing.T) {
	b := NewBuffer(4)
	assert.True(t, b.Empty())
	assert.Equal(t, 4, b.Cap())

	_, ok := b.Last()
	assert.False(t, ok)

	for _, c := range []byte("abc") {
		assert.True(t, b.Append(c))
	}
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, []byte("abc"), b.Bytes())
	assert.Equal(t, 3, b.Len())

	last, ok := b.Last()
	assert.True(t, ok)
	assert.Equal(t, byte('c'), last)

	b.Reset()
	assert.True(t, b.Empty())
	assert.Equal(t, "", b.String())
}

func TestBufferTruncation(t *testing.T) {
	b := NewBuffer(4)

	for _, c := range []byte("abcdef") {
		b.Append(c)
	}
	assert.Equal(t, "abcd", b.String())
	assert.Equal(t, 2, b.Dropped())
	assert.False(t, b.Empty())

	last, ok := b.Last()
	assert.True(t, ok)
	assert.Equal(t, byte('f'), last)

	b.Unappend()
	assert.Equal(t, 1, b.Dropped())
	assert.Equal(t, "abcd", b.String())

	b.Reset()
	assert.Equal(t, 0, b.Dropped())

	long := strings.Repeat("x", 10)
	for i := range long {
		b.Append(long[i])
	}
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 6, b.Dropped())
}

func TestBufferUnappend(t *testing.T) {
	b := NewBuffer(8)

	b.Unappend()
	assert.True(t, b.Empty())

	b.Append('a')
	b.Append(';')
	b.Unappend()
	assert.Equal(t, "a", b.String())

	last, ok := b.Last()
	assert.True(t, ok)
	assert.Equal(t, byte('a'), last)

	b.Unappend()
	assert.True(t, b.Empty())
}
