package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	sexpr "github.com/xiam/sexpr-stream"
	"github.com/xiam/sexpr-stream/ast"
	"github.com/xiam/sexpr-stream/internal/logging"
	"github.com/xiam/sexpr-stream/parser"
)

const stdinPath = "-"

type parseOptions struct {
	capacity        int
	chunkSize       int
	lenient         bool
	truncationError bool
	format          string
}

func newParseCommand(color *string) *cobra.Command {
	opts := parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse S-expressions and print the tree",
		Long: `Parse reads every file in order, or standard input when no file is given
or the file is "-", and prints the tree built out of each of them.

Output formats:
  text    indented tree with positions
  tokens  flat list of tokens in source order
  sexpr   canonical S-expression text
  xml     nested XML elements
  yaml    YAML document
  dump    debug dump with every token`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts, *color)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.capacity, "capacity", "c", parser.DefaultCapacity,
		"maximum length of a single token, in bytes")
	flags.IntVar(&opts.chunkSize, "chunk-size", sexpr.DefaultChunkSize,
		"number of bytes read at a time")
	flags.BoolVar(&opts.lenient, "lenient", false,
		"accept unclosed lists, strings and pending tokens at the end of input")
	flags.BoolVar(&opts.truncationError, "truncation-error", false,
		"fail on tokens longer than the capacity instead of truncating them")
	flags.StringVarP(&opts.format, "format", "f", formatText,
		"output format: "+strings.Join(formats, ", "))

	return cmd
}

func runParse(cmd *cobra.Command, paths []string, opts parseOptions, color string) error {
	if !validFormat(opts.format) {
		return fmt.Errorf("%w: unknown format %q", ErrUsage, opts.format)
	}
	if opts.chunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrUsage, opts.chunkSize)
	}
	if len(paths) == 0 {
		paths = []string{stdinPath}
	}

	logger := logging.FromContext(cmd.Context())
	logger.Debug("parsing",
		logging.FieldFiles, len(paths),
		logging.FieldCapacity, opts.capacity,
		logging.FieldChunkSize, opts.chunkSize,
		logging.FieldFormat, opts.format,
	)

	out := cmd.OutOrStdout()
	st := newStyles(out, color)

	for _, path := range paths {
		tree, err := parseInput(cmd, path, opts, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := render(out, opts.format, tree, st); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	return nil
}

func parseInput(cmd *cobra.Command, path string, opts parseOptions, logger *log.Logger) (*ast.Tree, error) {
	var in io.Reader
	if path == stdinPath {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		defer f.Close()
		in = f
	}

	ropts := []sexpr.Option{
		sexpr.WithCapacity(opts.capacity),
		sexpr.WithChunkSize(opts.chunkSize),
		sexpr.WithLogger(logger.With(logging.FieldPath, path)),
	}
	if opts.lenient {
		ropts = append(ropts, sexpr.WithLenient())
	}
	if opts.truncationError {
		ropts = append(ropts, sexpr.WithTruncationError())
	}

	r := sexpr.NewReader(in, ropts...)
	tree, err := r.Parse()
	switch {
	case errors.Is(err, parser.ErrInvalidCapacity):
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	case errors.Is(err, parser.ErrInvalidInput):
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	case err != nil:
		return nil, err
	}

	if n := r.Truncated(); n > 0 {
		logger.Warn("tokens were truncated",
			logging.FieldPath, path,
			logging.FieldTokens, n,
			logging.FieldDropped, r.Dropped(),
			logging.FieldCapacity, opts.capacity,
		)
	}
	logger.Debug("parsed",
		logging.FieldPath, path,
		logging.FieldForms, len(tree.Forms()),
		logging.FieldNodes, tree.Len(),
	)
	return tree, nil
}
