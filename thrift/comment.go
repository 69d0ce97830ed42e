package thrift

// Comment is implemented by LineComment and BlockComment. Comments are
// first-class AST nodes, not discarded trivia: the lexer emits them as
// tokens and the parser attaches each to the declaration it precedes.
type Comment interface {
	commentNode()
}

// LineComment is a `//` or `#` comment, content trimmed of its leading
// marker and surrounding whitespace.
type LineComment struct {
	Value string
}

// BlockComment is a `/* ... */` comment split on newlines, one element per
// source line with a leading `*` and surrounding whitespace trimmed.
type BlockComment struct {
	Lines []string
}

func (LineComment) commentNode()  {}
func (BlockComment) commentNode() {}
