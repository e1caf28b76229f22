package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/sexpr-stream/lexer"
)

// Errors returned when building a tree
var (
	ErrNoSuchNode = errors.New("no such node")
	ErrNotAList   = errors.New("nodes of type value can't accept children")
	ErrSealed     = errors.New("list is closed")
)

// NodeID identifies a node within its Tree
type NodeID int

// RootID is the identifier of the root node of every tree
const RootID NodeID = 0

// Node represents a leaf or a list of the AST
type Node struct {
	nt  NodeType
	tok lexer.Token

	parent   NodeID
	children []NodeID
	sealed   bool
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Token returns the token associated to the node. For lists this is the
// position of the opening parenthesis.
func (n Node) Token() lexer.Token {
	return n.tok
}

// Pos returns the line and column where the node starts
func (n Node) Pos() (int, int) {
	return n.tok.Pos()
}

// Text returns the raw text of a value node
func (n Node) Text() string {
	return n.tok.Text()
}

// Parent returns the identifier of the enclosing list, or -1 for the root
func (n Node) Parent() NodeID {
	return n.parent
}

// Children returns the identifiers of all the children of the node. The
// returned slice must not be modified.
func (n Node) Children() []NodeID {
	return n.children
}

// Len returns the number of children of the node
func (n Node) Len() int {
	return len(n.children)
}

// IsValue returns true if the node is a token
func (n Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsList returns true if the node can hold children
func (n Node) IsList() bool {
	return n.nt&nodeTypeVector > 0
}

// IsSealed returns true once a list was closed
func (n Node) IsSealed() bool {
	return n.sealed
}

func (n Node) String() string {
	if n.IsList() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.tok.Text())
}

// Tree owns every node of a parsed input. Nodes refer to each other by
// NodeID; the root is always RootID.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree holding an empty root
func NewTree() *Tree {
	return &Tree{
		nodes: []Node{
			{
				nt:     NodeTypeRoot,
				tok:    lexer.NewToken(lexer.TokenOpenList, "", 1, 1),
				parent: -1,
			},
		},
	}
}

// Root returns the identifier of the root node
func (t *Tree) Root() NodeID {
	return RootID
}

// Len returns the number of nodes in the tree, root included
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given identifier
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Lookup is like Node but reports whether the identifier is valid
func (t *Tree) Lookup(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Children returns the children of the given node
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].children
}

// Forms returns the top-level forms
func (t *Tree) Forms() []NodeID {
	return t.nodes[RootID].children
}

// PushToken appends a token to an open list and returns its identifier
func (t *Tree) PushToken(parent NodeID, tok lexer.Token) (NodeID, error) {
	nt := NodeTypeSymbol
	switch {
	case tok.Is(lexer.TokenString):
		nt = NodeTypeString
	case tok.Is(lexer.TokenComment):
		nt = NodeTypeComment
	}
	return t.push(parent, Node{nt: nt, tok: tok})
}

// PushList appends a new, open list to an open list and returns its
// identifier
func (t *Tree) PushList(parent NodeID, tok lexer.Token) (NodeID, error) {
	return t.push(parent, Node{nt: NodeTypeList, tok: tok})
}

func (t *Tree) push(parent NodeID, node Node) (NodeID, error) {
	p, ok := t.Lookup(parent)
	if !ok {
		return -1, ErrNoSuchNode
	}
	if !p.IsList() {
		return -1, ErrNotAList
	}
	if p.sealed {
		return -1, ErrSealed
	}

	id := NodeID(len(t.nodes))
	node.parent = parent
	t.nodes = append(t.nodes, node)
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id, nil
}

// Seal closes a list; no children can be added to it afterwards
func (t *Tree) Seal(id NodeID) error {
	n, ok := t.Lookup(id)
	if !ok {
		return ErrNoSuchNode
	}
	if !n.IsList() {
		return ErrNotAList
	}
	t.nodes[id].sealed = true
	return nil
}

// Equal returns true if both trees hold the same forms, regardless of the
// source positions
func Equal(a, b *Tree) bool {
	return equalNodes(a, RootID, b, RootID)
}

func equalNodes(a *Tree, ida NodeID, b *Tree, idb NodeID) bool {
	na, nb := a.nodes[ida], b.nodes[idb]
	if na.nt != nb.nt {
		return false
	}
	if na.IsValue() {
		return na.tok.Text() == nb.tok.Text()
	}
	if len(na.children) != len(nb.children) {
		return false
	}
	for i := range na.children {
		if !equalNodes(a, na.children[i], b, nb.children[i]) {
			return false
		}
	}
	return true
}
