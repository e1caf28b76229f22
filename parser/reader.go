package parser

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/xiam/sexpr-stream/ast"
	"github.com/xiam/sexpr-stream/internal/logging"
	"github.com/xiam/sexpr-stream/lexer"
)

// Token capacity limits, in bytes
const (
	DefaultCapacity = 2048
	MinCapacity     = 128
)

// Option configures a Reader
type Option func(*Reader)

// WithLogger sets the logger used to report reader activity
func WithLogger(logger *log.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTruncationError makes Feed fail with ErrTruncatedToken when a token
// does not fit in the buffer, instead of truncating it.
func WithTruncationError() Option {
	return func(r *Reader) {
		r.failOnTruncate = true
	}
}

// Reader builds a tree out of S-expressions fed in chunks of any size.
// A Reader is not safe for concurrent use.
type Reader struct {
	tree  *ast.Tree
	stack []ast.NodeID

	insideString      bool
	insideWhitespace  bool
	insideLineComment bool

	line int
	col  int

	startLine int
	startCol  int

	token     *lexer.Buffer
	truncated int
	dropped   int

	failOnTruncate bool
	logger         *log.Logger

	err      error
	finished bool
}

// New creates a Reader whose tokens can be up to capacity bytes long
func New(capacity int, opts ...Option) (*Reader, error) {
	if capacity < MinCapacity {
		return nil, fmt.Errorf("%w: %d is below the minimum of %d bytes", ErrInvalidCapacity, capacity, MinCapacity)
	}

	tree := ast.NewTree()
	r := &Reader{
		tree:      tree,
		stack:     []ast.NodeID{tree.Root()},
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
		token:     lexer.NewBuffer(capacity),
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewDefault creates a Reader with DefaultCapacity
func NewDefault(opts ...Option) *Reader {
	r, _ := New(DefaultCapacity, opts...)
	return r
}

// Feed reads a chunk of input. Once Feed fails the reader is unusable and
// every later call returns the same error.
func (r *Reader) Feed(chunk []byte) error {
	_, err := r.feed(chunk)
	return err
}

// Write implements io.Writer on top of Feed
func (r *Reader) Write(p []byte) (int, error) {
	return r.feed(p)
}

func (r *Reader) feed(chunk []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.finished {
		return 0, ErrClosed
	}

	for i, b := range chunk {
		if err := r.step(b); err != nil {
			r.err = err
			return i, err
		}
		if b == lexer.NewLine {
			r.line++
			r.col = 1
		} else {
			r.col++
		}
	}
	return len(chunk), nil
}

// Finish flushes any trailing comment and returns the tree. When strict is
// true, the input must have ended with every list closed, every string
// terminated and no pending token. The tree is returned even on error.
func (r *Reader) Finish(strict bool) (*ast.Tree, error) {
	if r.err != nil {
		return r.tree, r.err
	}
	if r.finished {
		return r.tree, ErrClosed
	}

	if r.insideWhitespace || r.insideLineComment {
		if err := r.flush(); err != nil {
			r.err = err
			return r.tree, err
		}
	}

	if strict {
		if err := r.validate(); err != nil {
			r.err = err
			return r.tree, err
		}
	}

	r.finished = true
	r.logger.Debug("finished",
		logging.FieldStrict, strict,
		logging.FieldForms, len(r.tree.Forms()),
		logging.FieldNodes, r.tree.Len(),
	)
	return r.tree, nil
}

func (r *Reader) validate() error {
	if len(r.stack) != 1 {
		line, col := r.tree.Node(r.current()).Pos()
		return &Error{Err: ErrUnclosedList, Line: line, Col: col}
	}
	if r.insideString {
		return &Error{Err: ErrUnterminatedString, Line: r.startLine, Col: r.startCol, Content: r.token.String()}
	}
	if !r.token.Empty() {
		return &Error{Err: ErrUnterminatedToken, Line: r.startLine, Col: r.startCol, Content: r.token.String()}
	}
	return nil
}

// Pos returns the line and column of the next byte to be read
func (r *Reader) Pos() (int, int) {
	return r.line, r.col
}

// Depth returns the number of lists that are currently open
func (r *Reader) Depth() int {
	return len(r.stack) - 1
}

// Truncated returns how many tokens were cut short because they did not fit
// in the buffer
func (r *Reader) Truncated() int {
	return r.truncated
}

// Dropped returns how many bytes were discarded by truncation
func (r *Reader) Dropped() int {
	return r.dropped
}

func (r *Reader) current() ast.NodeID {
	return r.stack[len(r.stack)-1]
}

func (r *Reader) step(b byte) error {
	switch lexer.Classify(b) {
	case lexer.ClassNewLine:
		if r.insideLineComment {
			if err := r.flush(); err != nil {
				return err
			}
		}
		return r.whitespace(b)

	case lexer.ClassSpace:
		return r.whitespace(b)

	case lexer.ClassComment:
		if r.insideLineComment {
			break
		}
		if last, ok := r.token.Last(); ok && last == lexer.CommentMark {
			return r.startComment(b)
		}

	case lexer.ClassQuote:
		if !r.insideString && !r.insideLineComment {
			if err := r.flush(); err != nil {
				return err
			}
			r.insideString = true
			return r.append(b)
		}
		if r.insideString {
			if last, _ := r.token.Last(); last != lexer.Escape {
				if err := r.append(b); err != nil {
					return err
				}
				return r.flush()
			}
		}

	case lexer.ClassOpenList:
		if !r.insideString && !r.insideLineComment {
			if err := r.flush(); err != nil {
				return err
			}
			return r.pushList()
		}

	case lexer.ClassCloseList:
		if !r.insideString && !r.insideLineComment {
			if err := r.flush(); err != nil {
				return err
			}
			return r.popList()
		}
	}

	return r.ordinary(b)
}

// whitespace ends the pending token, unless the byte belongs to a string or
// a comment.
func (r *Reader) whitespace(b byte) error {
	if r.insideString || r.insideLineComment {
		return r.append(b)
	}
	if !r.insideWhitespace {
		if err := r.flush(); err != nil {
			return err
		}
		r.insideWhitespace = true
	}
	return nil
}

func (r *Reader) ordinary(b byte) error {
	if !r.insideString && !r.insideLineComment && r.insideWhitespace {
		if err := r.flush(); err != nil {
			return err
		}
	}
	return r.append(b)
}

// startComment is called on the second of two consecutive comment markers.
// The first marker moves from the pending token to the comment.
func (r *Reader) startComment(b byte) error {
	r.unappend()
	if err := r.flush(); err != nil {
		return err
	}
	r.insideLineComment = true

	if err := r.append(lexer.CommentMark); err != nil {
		return err
	}
	r.startLine, r.startCol = r.line, r.col-1
	return r.append(b)
}

func (r *Reader) append(b byte) error {
	if r.token.Empty() {
		r.startLine, r.startCol = r.line, r.col
	}
	if r.token.Append(b) {
		return nil
	}

	r.dropped++
	// A single dropped byte may still be a comment marker that startComment
	// takes back, so the token only counts as truncated from the second one
	// or when it is flushed.
	if r.token.Dropped() == 2 {
		return r.truncate()
	}
	return nil
}

func (r *Reader) truncate() error {
	r.truncated++
	r.logger.Warn("token truncated",
		logging.FieldLine, r.startLine,
		logging.FieldCol, r.startCol,
		logging.FieldCapacity, r.token.Cap(),
		logging.FieldBytes, r.token.Len(),
	)
	if r.failOnTruncate {
		return &Error{Err: ErrTruncatedToken, Line: r.startLine, Col: r.startCol, Content: r.token.String()}
	}
	return nil
}

func (r *Reader) unappend() {
	if r.token.Dropped() > 0 {
		r.dropped--
	}
	r.token.Unappend()
}

// flush emits the pending token, if any, into the current list.
func (r *Reader) flush() error {
	tt := lexer.TokenSymbol
	switch {
	case r.insideString:
		tt = lexer.TokenString
	case r.insideLineComment:
		tt = lexer.TokenComment
	}

	r.insideString = false
	r.insideWhitespace = false
	r.insideLineComment = false

	if r.token.Empty() {
		return nil
	}
	if r.token.Dropped() == 1 {
		if err := r.truncate(); err != nil {
			return err
		}
	}

	tok := lexer.NewToken(tt, r.token.String(), r.startLine, r.startCol)
	if _, err := r.tree.PushToken(r.current(), tok); err != nil {
		return err
	}
	r.token.Reset()
	return nil
}

func (r *Reader) pushList() error {
	tok := lexer.NewToken(lexer.TokenOpenList, string(lexer.ListStart), r.line, r.col)
	id, err := r.tree.PushList(r.current(), tok)
	if err != nil {
		return err
	}
	r.stack = append(r.stack, id)

	r.logger.Debug("open list",
		logging.FieldLine, r.line,
		logging.FieldCol, r.col,
		logging.FieldDepth, r.Depth(),
	)
	return nil
}

func (r *Reader) popList() error {
	if len(r.stack) == 1 {
		return &Error{Err: ErrUnbalancedClose, Line: r.line, Col: r.col}
	}
	if err := r.tree.Seal(r.current()); err != nil {
		return err
	}
	r.stack = r.stack[:len(r.stack)-1]

	r.logger.Debug("close list",
		logging.FieldLine, r.line,
		logging.FieldCol, r.col,
		logging.FieldDepth, r.Depth(),
	)
	return nil
}
