package syntax

import (
	"fmt"
	"iter"
)

// SyntaxNode is a positioned view of a green node. Nodes are created on
// demand during traversal; two views of the same position compare Equal.
type SyntaxNode struct {
	green  *GreenNode
	offset int
	parent *SyntaxNode
	index  int
	lang   Language
}

// NewRoot wraps green as the root of a tree in lang.
func NewRoot(lang Language, green *GreenNode) *SyntaxNode {
	return &SyntaxNode{green: green, lang: lang}
}

// RawKind returns the stored kind.
func (n *SyntaxNode) RawKind() RawKind {
	return n.green.kind
}

// Kind returns the typed kind. Trees are only built from validated kinds,
// so a failure here is a broken invariant and panics.
func (n *SyntaxNode) Kind() Kind {
	k, err := n.lang.FromRaw(n.green.kind)
	if err != nil {
		panic(fmt.Sprintf("syntax: node holds invalid kind: %v", err))
	}
	return k
}

// Is reports whether the node is of any of kinds.
func (n *SyntaxNode) Is(kinds ...RawKind) bool {
	for _, k := range kinds {
		if n.green.kind == k {
			return true
		}
	}
	return false
}

// Language returns the language of the tree.
func (n *SyntaxNode) Language() Language {
	return n.lang
}

// Green returns the underlying green node.
func (n *SyntaxNode) Green() *GreenNode {
	return n.green
}

// Parent returns the parent node, or nil for the root.
func (n *SyntaxNode) Parent() *SyntaxNode {
	return n.parent
}

// Index returns the slot index of the node in its parent.
func (n *SyntaxNode) Index() int {
	return n.index
}

// Root returns the root of the tree.
func (n *SyntaxNode) Root() *SyntaxNode {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// TextRange returns the absolute range of the node, trivia included.
func (n *SyntaxNode) TextRange() TextRange {
	return TextRange{Start: n.offset, End: n.offset + n.green.textLen}
}

// TextTrimmedRange excludes the leading trivia of the first token and the
// trailing trivia of the last token.
func (n *SyntaxNode) TextTrimmedRange() TextRange {
	r := n.TextRange()
	first, last := n.FirstToken(), n.LastToken()
	if first == nil {
		return r
	}
	start := first.offset + first.green.leadingLen
	end := last.offset + last.green.TextLen() - last.green.trailingLen
	if end < start {
		return EmptyRangeAt(start)
	}
	return TextRange{Start: start, End: end}
}

// Text returns the full text of the node.
func (n *SyntaxNode) Text() string {
	return n.green.Text()
}

// TextTrimmed returns the text without outer trivia.
func (n *SyntaxNode) TextTrimmed() string {
	r := n.TextTrimmedRange().Shift(-n.offset)
	return r.Slice(n.green.Text())
}

// String returns the full text of the node.
func (n *SyntaxNode) String() string {
	return n.Text()
}

// Equal reports whether both views refer to the same green node at the same offset.
func (n *SyntaxNode) Equal(other *SyntaxNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.green == other.green && n.offset == other.offset
}

// SlotCount returns the number of slots, empty ones included.
func (n *SyntaxNode) SlotCount() int {
	return len(n.green.children)
}

// Slot returns the element in slot i, or nil if the slot is empty or out of range.
func (n *SyntaxNode) Slot(i int) SyntaxElement {
	if i < 0 || i >= len(n.green.children) {
		return nil
	}
	return elementAt(n, i)
}

// Slots iterates every slot with its index. Empty slots yield nil.
func (n *SyntaxNode) Slots() iter.Seq2[int, SyntaxElement] {
	return func(yield func(int, SyntaxElement) bool) {
		for i := range n.green.children {
			if !yield(i, elementAt(n, i)) {
				return
			}
		}
	}
}

// Children iterates the child nodes, skipping tokens and empty slots.
func (n *SyntaxNode) Children() iter.Seq[*SyntaxNode] {
	return func(yield func(*SyntaxNode) bool) {
		for i, child := range n.green.children {
			if g, ok := child.(*GreenNode); ok {
				c := &SyntaxNode{green: g, offset: n.offset + n.green.offsets[i], parent: n, index: i, lang: n.lang}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// ChildrenWithTokens iterates child nodes and tokens, skipping empty slots.
func (n *SyntaxNode) ChildrenWithTokens() iter.Seq[SyntaxElement] {
	return func(yield func(SyntaxElement) bool) {
		for i, child := range n.green.children {
			if child == nil {
				continue
			}
			if !yield(elementAt(n, i)) {
				return
			}
		}
	}
}

// FirstChild returns the first child node.
func (n *SyntaxNode) FirstChild() *SyntaxNode {
	for c := range n.Children() {
		return c
	}
	return nil
}

// LastChild returns the last child node.
func (n *SyntaxNode) LastChild() *SyntaxNode {
	for i := len(n.green.children) - 1; i >= 0; i-- {
		if _, ok := n.green.children[i].(*GreenNode); ok {
			node, _ := elementAt(n, i).(*SyntaxNode)
			return node
		}
	}
	return nil
}

// FirstToken returns the first token in the subtree.
func (n *SyntaxNode) FirstToken() *SyntaxToken {
	for i, child := range n.green.children {
		switch child.(type) {
		case *GreenToken:
			tok, _ := elementAt(n, i).(*SyntaxToken)
			return tok
		case *GreenNode:
			node, _ := elementAt(n, i).(*SyntaxNode)
			if tok := node.FirstToken(); tok != nil {
				return tok
			}
		}
	}
	return nil
}

// LastToken returns the last token in the subtree.
func (n *SyntaxNode) LastToken() *SyntaxToken {
	for i := len(n.green.children) - 1; i >= 0; i-- {
		switch n.green.children[i].(type) {
		case *GreenToken:
			tok, _ := elementAt(n, i).(*SyntaxToken)
			return tok
		case *GreenNode:
			node, _ := elementAt(n, i).(*SyntaxNode)
			if tok := node.LastToken(); tok != nil {
				return tok
			}
		}
	}
	return nil
}

// NextSibling returns the next sibling node.
func (n *SyntaxNode) NextSibling() *SyntaxNode {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.green.children
	for i := n.index + 1; i < len(siblings); i++ {
		if _, ok := siblings[i].(*GreenNode); ok {
			node, _ := elementAt(n.parent, i).(*SyntaxNode)
			return node
		}
	}
	return nil
}

// PrevSibling returns the previous sibling node.
func (n *SyntaxNode) PrevSibling() *SyntaxNode {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.green.children
	for i := n.index - 1; i >= 0; i-- {
		if _, ok := siblings[i].(*GreenNode); ok {
			node, _ := elementAt(n.parent, i).(*SyntaxNode)
			return node
		}
	}
	return nil
}

// NextSiblingOrToken returns the next non-empty sibling element.
func (n *SyntaxNode) NextSiblingOrToken() SyntaxElement {
	return nextElement(n.parent, n.index)
}

// PrevSiblingOrToken returns the previous non-empty sibling element.
func (n *SyntaxNode) PrevSiblingOrToken() SyntaxElement {
	return prevElement(n.parent, n.index)
}

func nextElement(parent *SyntaxNode, index int) SyntaxElement {
	if parent == nil {
		return nil
	}
	for i := index + 1; i < len(parent.green.children); i++ {
		if parent.green.children[i] != nil {
			return elementAt(parent, i)
		}
	}
	return nil
}

func prevElement(parent *SyntaxNode, index int) SyntaxElement {
	if parent == nil {
		return nil
	}
	for i := index - 1; i >= 0; i-- {
		if parent.green.children[i] != nil {
			return elementAt(parent, i)
		}
	}
	return nil
}

// TokenAtOffset returns the token whose range contains offset. An offset at
// the end of the node returns the last token.
func (n *SyntaxNode) TokenAtOffset(offset int) *SyntaxToken {
	r := n.TextRange()
	if offset < r.Start || offset > r.End {
		return nil
	}
	if offset == r.End {
		return n.LastToken()
	}
	node := n
	for {
		var next SyntaxElement
		for el := range node.ChildrenWithTokens() {
			if el.TextRange().Contains(offset) {
				next = el
				break
			}
		}
		switch el := next.(type) {
		case *SyntaxToken:
			return el
		case *SyntaxNode:
			node = el
		default:
			return nil
		}
	}
}

// CoveringElement returns the deepest element whose range contains r.
func (n *SyntaxNode) CoveringElement(r TextRange) SyntaxElement {
	if !n.TextRange().ContainsRange(r) {
		return nil
	}
	var current SyntaxElement = n
	for {
		node, ok := current.(*SyntaxNode)
		if !ok {
			return current
		}
		var next SyntaxElement
		for el := range node.ChildrenWithTokens() {
			er := el.TextRange()
			if er.ContainsRange(r) && (!r.IsEmpty() || er.Contains(r.Start)) {
				next = el
				break
			}
		}
		if next == nil {
			return current
		}
		current = next
	}
}
