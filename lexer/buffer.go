package lexer

// Buffer holds the raw bytes of the token being read. Its capacity is fixed
// at creation time; bytes written past it are dropped and counted.
type Buffer struct {
	buf  []byte
	n    int
	last byte

	dropped int
}

// NewBuffer creates a token buffer that can hold up to capacity bytes
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		buf: make([]byte, capacity),
	}
}

// Append adds a byte to the buffer. It returns false if the buffer was full
// and the byte was dropped.
func (b *Buffer) Append(c byte) bool {
	b.last = c
	if b.n == len(b.buf) {
		b.dropped++
		return false
	}
	b.buf[b.n] = c
	b.n++
	return true
}

// Unappend removes the most recently appended byte.
func (b *Buffer) Unappend() {
	if b.dropped > 0 {
		b.dropped--
		return
	}
	if b.n == 0 {
		return
	}
	b.n--
	if b.n > 0 {
		b.last = b.buf[b.n-1]
	} else {
		b.last = 0
	}
}

// Last returns the most recently appended byte, including one that was
// dropped for lack of space.
func (b *Buffer) Last() (byte, bool) {
	if b.Empty() {
		return 0, false
	}
	return b.last, true
}

// Empty returns true if nothing was appended since the last reset
func (b *Buffer) Empty() bool {
	return b.n == 0 && b.dropped == 0
}

// Len returns the number of bytes held by the buffer
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the maximum number of bytes the buffer can hold
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Dropped returns how many bytes of the current token did not fit
func (b *Buffer) Dropped() int {
	return b.dropped
}

// Bytes returns the buffered bytes. The slice is only valid until the next
// call to Append or Reset.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

func (b *Buffer) String() string {
	return string(b.buf[:b.n])
}

// Reset empties the buffer
func (b *Buffer) Reset() {
	b.n = 0
	b.last = 0
	b.dropped = 0
}
