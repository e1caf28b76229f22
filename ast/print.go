package ast

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Fprint writes a human-readable representation of a tree to w
func Fprint(w io.Writer, t *Tree) {
	printLevel(w, t, RootID, 0)
}

func printLevel(w io.Writer, t *Tree, id NodeID, level int) {
	n := t.nodes[id]
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())

	if n.IsList() {
		fmt.Fprintf(w, "(%v)\n", n.Token())
		for _, child := range n.children {
			printLevel(w, t, child, level+1)
		}
		return
	}
	fmt.Fprintf(w, "%q (%v)\n", n.Text(), n.Token())
}

// FprintXML writes the tree to w as nested XML-like elements
func FprintXML(w io.Writer, t *Tree) error {
	return printXMLLevel(w, t, RootID, 0)
}

func printXMLLevel(w io.Writer, t *Tree, id NodeID, level int) error {
	n := t.nodes[id]
	indent := strings.Repeat("  ", level)
	line, col := n.Pos()

	if n.IsList() {
		if _, err := fmt.Fprintf(w, "%s<%s line=\"%d\" col=\"%d\">\n", indent, n.Type(), line, col); err != nil {
			return err
		}
		for _, child := range n.children {
			if err := printXMLLevel(w, t, child, level+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s</%s>\n", indent, n.Type())
		return err
	}

	var text bytes.Buffer
	if err := xml.EscapeText(&text, []byte(n.Text())); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s<%s line=\"%d\" col=\"%d\">%s</%s>\n", indent, n.Type(), line, col, text.String(), n.Type())
	return err
}

// Encode transforms a tree into text that reads back into an equal tree.
// Tokens are written verbatim, lists as space separated children between
// parentheses. Every top-level form and every comment is followed by a
// newline.
func Encode(t *Tree) []byte {
	var buf bytes.Buffer
	for _, child := range t.nodes[RootID].children {
		encodeNode(&buf, t, child)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func encodeChildren(buf *bytes.Buffer, t *Tree, children []NodeID) {
	prevComment := false
	for i, child := range children {
		if i > 0 && !prevComment {
			buf.WriteByte(' ')
		}
		encodeNode(buf, t, child)
		prevComment = t.nodes[child].nt == NodeTypeComment
		if prevComment {
			buf.WriteByte('\n')
		}
	}
}

func encodeNode(buf *bytes.Buffer, t *Tree, id NodeID) {
	n := t.nodes[id]
	if n.IsValue() {
		buf.WriteString(n.Text())
		return
	}
	buf.WriteByte('(')
	encodeChildren(buf, t, n.children)
	buf.WriteByte(')')
}
