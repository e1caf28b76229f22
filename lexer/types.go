package lexer

// ByteClass represents the lexical role of a single input byte
type ByteClass uint8

// List of byte classes
const (
	ClassOrdinary  ByteClass = iota
	ClassSpace               // Space or tab: " \t"
	ClassNewLine             // Newline: "\n"
	ClassQuote               // Double quote: '"'
	ClassEscape              // Backslash: "\"
	ClassComment             // Semicolon: ";", two in a row start a line comment
	ClassOpenList            // Open parenthesis: "("
	ClassCloseList           // Close parenthesis: ")"
)

// Delimiter bytes
const (
	ListStart   = '('
	ListEnd     = ')'
	Quote       = '"'
	Escape      = '\\'
	CommentMark = ';'
	NewLine     = '\n'
)

var classValues = map[ByteClass][]byte{
	ClassSpace:     []byte(" \t"),
	ClassNewLine:   []byte{NewLine},
	ClassQuote:     []byte{Quote},
	ClassEscape:    []byte{Escape},
	ClassComment:   []byte{CommentMark},
	ClassOpenList:  []byte{ListStart},
	ClassCloseList: []byte{ListEnd},
}

var classNames = map[ByteClass]string{
	ClassOrdinary:  "ordinary",
	ClassSpace:     "space",
	ClassNewLine:   "newline",
	ClassQuote:     "quote",
	ClassEscape:    "escape",
	ClassComment:   "comment",
	ClassOpenList:  "open_list",
	ClassCloseList: "close_list",
}

var classTable [256]ByteClass

func init() {
	for class, values := range classValues {
		for _, b := range values {
			classTable[b] = class
		}
	}
}

func (c ByteClass) String() string {
	if v, ok := classNames[c]; ok {
		return v
	}
	return classNames[ClassOrdinary]
}

// Classify returns the class of the given byte
func Classify(b byte) ByteClass {
	return classTable[b]
}

// TokenType tells leaves apart from each other and from lists
type TokenType uint8

// Token types
const (
	TokenInvalid  TokenType = iota
	TokenSymbol             // Bare token: foo, 42, +
	TokenString             // Quoted string, quotes included: "foo"
	TokenComment            // Line comment, markers included: ;; foo
	TokenOpenList           // Position of an opening parenthesis
)

var tokenNames = map[TokenType]string{
	TokenInvalid:  "invalid",
	TokenSymbol:   "symbol",
	TokenString:   "string",
	TokenComment:  "comment",
	TokenOpenList: "open_list",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}
