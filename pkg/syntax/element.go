package syntax

// SyntaxElement is either a *SyntaxNode or a *SyntaxToken.
type SyntaxElement interface {
	RawKind() RawKind
	Kind() Kind
	TextRange() TextRange
	Parent() *SyntaxNode
	Index() int
	isElement()
}

func (*SyntaxNode) isElement()  {}
func (*SyntaxToken) isElement() {}

// AsNode returns el as a node.
func AsNode(el SyntaxElement) (*SyntaxNode, bool) {
	n, ok := el.(*SyntaxNode)
	return n, ok
}

// AsToken returns el as a token.
func AsToken(el SyntaxElement) (*SyntaxToken, bool) {
	t, ok := el.(*SyntaxToken)
	return t, ok
}

// elementAt builds the red element for slot i of parent, or nil for an empty slot.
func elementAt(parent *SyntaxNode, i int) SyntaxElement {
	offset := parent.offset + parent.green.offsets[i]
	switch g := parent.green.children[i].(type) {
	case *GreenNode:
		return &SyntaxNode{green: g, offset: offset, parent: parent, index: i, lang: parent.lang}
	case *GreenToken:
		return &SyntaxToken{green: g, offset: offset, parent: parent, index: i}
	}
	return nil
}
