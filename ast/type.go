package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeSymbol  = nodeTypeValue | 1
	NodeTypeString  = nodeTypeValue | 2
	NodeTypeComment = nodeTypeValue | 4

	NodeTypeList = nodeTypeVector | 1
	NodeTypeRoot = nodeTypeVector | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeSymbol:  "symbol",
	NodeTypeString:  "string",
	NodeTypeComment: "comment",
	NodeTypeList:    "list",
	NodeTypeRoot:    "root",
}
