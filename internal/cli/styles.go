package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/xiam/sexpr-stream/ast"
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// styles contains the renderers used by the text and tokens formats.
type styles struct {
	Symbol   lipgloss.Style
	String   lipgloss.Style
	Comment  lipgloss.Style
	List     lipgloss.Style
	Position lipgloss.Style
}

// newStyles creates styles for w with the given color mode.
func newStyles(w io.Writer, mode string) *styles {
	if !isColorEnabled(mode, w) {
		plain := lipgloss.NewStyle()
		return &styles{
			Symbol:   plain,
			String:   plain,
			Comment:  plain,
			List:     plain,
			Position: plain,
		}
	}

	renderer := lipgloss.NewRenderer(w)
	if mode == colorAlways {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	return &styles{
		Symbol:   renderer.NewStyle().Foreground(lipgloss.Color("12")),
		String:   renderer.NewStyle().Foreground(lipgloss.Color("10")),
		Comment:  renderer.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		List:     renderer.NewStyle().Bold(true),
		Position: renderer.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s *styles) forNode(nt ast.NodeType) lipgloss.Style {
	switch nt {
	case ast.NodeTypeString:
		return s.String
	case ast.NodeTypeComment:
		return s.Comment
	case ast.NodeTypeList, ast.NodeTypeRoot:
		return s.List
	}
	return s.Symbol
}

// isColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func isColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
