// Package sexpr reads S-expressions into a tree of lists and tokens that
// keep the line and column where they started.
//
// Input is consumed in chunks, so a document does not need to be held in
// memory at once:
//
//	tree, err := sexpr.NewReader(f).Parse()
//
// Tokens are kept verbatim: strings keep their quotes and escapes, and line
// comments (introduced by ";;") are part of the tree.
package sexpr

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/xiam/sexpr-stream/ast"
	"github.com/xiam/sexpr-stream/parser"
)

// DefaultChunkSize is the number of bytes read from the source at a time
const DefaultChunkSize = 4096

type config struct {
	capacity  int
	chunkSize int
	strict    bool
	logger    *log.Logger

	truncationError bool
}

// Option configures a Reader
type Option func(*config)

// WithCapacity sets the maximum length of a single token, in bytes
func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

// WithChunkSize sets how many bytes are read from the source at a time
func WithChunkSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithLenient skips the end of input checks: open lists, strings and
// pending tokens are accepted.
func WithLenient() Option {
	return func(c *config) {
		c.strict = false
	}
}

// WithLogger sets the logger passed down to the parser
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTruncationError rejects tokens longer than the capacity
func WithTruncationError() Option {
	return func(c *config) {
		c.truncationError = true
	}
}

// Reader parses S-expressions from an io.Reader
type Reader struct {
	r   io.Reader
	cfg config

	p *parser.Reader
}

// Parse parses a complete document held in memory
func Parse(in []byte, opts ...Option) (*ast.Tree, error) {
	return NewReader(bytes.NewReader(in), opts...).Parse()
}

// ParseString is like Parse but takes a string
func ParseString(in string, opts ...Option) (*ast.Tree, error) {
	return NewReader(strings.NewReader(in), opts...).Parse()
}

// NewReader creates a Reader that consumes r
func NewReader(r io.Reader, opts ...Option) *Reader {
	cfg := config{
		capacity:  parser.DefaultCapacity,
		chunkSize: DefaultChunkSize,
		strict:    true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Reader{r: r, cfg: cfg}
}

// Parse reads the source until EOF and returns the resulting tree
func (r *Reader) Parse() (*ast.Tree, error) {
	var popts []parser.Option
	if r.cfg.logger != nil {
		popts = append(popts, parser.WithLogger(r.cfg.logger))
	}
	if r.cfg.truncationError {
		popts = append(popts, parser.WithTruncationError())
	}

	p, err := parser.New(r.cfg.capacity, popts...)
	if err != nil {
		return nil, err
	}
	r.p = p

	buf := make([]byte, r.cfg.chunkSize)
	for {
		n, err := r.r.Read(buf)
		if n > 0 {
			if ferr := p.Feed(buf[:n]); ferr != nil {
				return nil, ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", parser.ErrInvalidInput, err)
		}
	}

	tree, err := p.Finish(r.cfg.strict)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// Truncated returns how many tokens were cut short by the last call to Parse
func (r *Reader) Truncated() int {
	if r.p == nil {
		return 0
	}
	return r.p.Truncated()
}

// Dropped returns how many bytes truncation discarded during the last call
// to Parse
func (r *Reader) Dropped() int {
	if r.p == nil {
		return 0
	}
	return r.p.Dropped()
}
