package cli

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xiam/sexpr-stream/ast"
)

// Output formats accepted by --format.
const (
	formatText   = "text"
	formatTokens = "tokens"
	formatSexpr  = "sexpr"
	formatXML    = "xml"
	formatYAML   = "yaml"
	formatDump   = "dump"
)

var formats = []string{formatText, formatTokens, formatSexpr, formatXML, formatYAML, formatDump}

func validFormat(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

func render(w io.Writer, format string, tree *ast.Tree, st *styles) error {
	switch format {
	case formatTokens:
		return renderTokens(w, tree, st)
	case formatSexpr:
		_, err := w.Write(ast.Encode(tree))
		return err
	case formatXML:
		return ast.FprintXML(w, tree)
	case formatYAML:
		return renderYAML(w, tree)
	case formatDump:
		ast.Fprint(w, tree)
		return nil
	}
	return renderText(w, tree, st)
}

var lineBreaks = strings.NewReplacer("\n", `\n`, "\t", `\t`)

func renderText(w io.Writer, tree *ast.Tree, st *styles) error {
	return renderTextLevel(w, tree, tree.Root(), 0, st)
}

func renderTextLevel(w io.Writer, tree *ast.Tree, id ast.NodeID, level int, st *styles) error {
	indent := strings.Repeat("    ", level)
	for _, child := range tree.Children(id) {
		n := tree.Node(child)
		line, col := n.Pos()
		pos := st.Position.Render(fmt.Sprintf("%d:%d", line, col))
		name := st.forNode(n.Type()).Render(n.Type().String())

		if n.IsList() {
			if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, name, pos); err != nil {
				return err
			}
			if err := renderTextLevel(w, tree, child, level+1, st); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s %s %s\n", indent, name, pos, lineBreaks.Replace(n.Text())); err != nil {
			return err
		}
	}
	return nil
}

func renderTokens(w io.Writer, tree *ast.Tree, st *styles) error {
	i := 0
	var walk func(id ast.NodeID) error
	walk = func(id ast.NodeID) error {
		for _, child := range tree.Children(id) {
			n := tree.Node(child)
			tok := n.Token()
			line, col := tok.Pos()

			kind := st.forNode(n.Type()).Render(tok.Type().String())
			if _, err := fmt.Fprintf(w, "token[%d] (type: %s, line: %d, col: %d) -> %q\n", i, kind, line, col, tok.Text()); err != nil {
				return err
			}
			i++

			if n.IsList() {
				if err := walk(child); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(tree.Root())
}

type yamlNode struct {
	Type     string      `yaml:"type"`
	Text     string      `yaml:"text,omitempty"`
	Line     int         `yaml:"line"`
	Col      int         `yaml:"col"`
	Children []*yamlNode `yaml:"children,omitempty"`
}

func toYAMLNodes(tree *ast.Tree, id ast.NodeID) []*yamlNode {
	children := tree.Children(id)
	nodes := make([]*yamlNode, 0, len(children))
	for _, child := range children {
		n := tree.Node(child)
		line, col := n.Pos()
		node := &yamlNode{
			Type: n.Type().String(),
			Line: line,
			Col:  col,
		}
		if n.IsList() {
			node.Children = toYAMLNodes(tree, child)
		} else {
			node.Text = n.Text()
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func renderYAML(w io.Writer, tree *ast.Tree) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(toYAMLNodes(tree, tree.Root())); err != nil {
		return err
	}
	return encoder.Close()
}
