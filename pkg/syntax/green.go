package syntax

import (
	"fmt"
	"hash/fnv"
	"slices"
)

// GreenElement is either a *GreenNode or a *GreenToken. A nil GreenElement
// inside a node's children is an empty slot.
type GreenElement interface {
	Kind() RawKind
	TextLen() int
	Hash() uint64
	isGreen()
}

// GreenToken is an immutable token with its leading and trailing trivia.
type GreenToken struct {
	kind        RawKind
	text        string
	leading     []TriviaPiece
	trailing    []TriviaPiece
	leadingLen  int
	trailingLen int
	hash        uint64
}

// NewGreenToken creates a token whose full text is text. The trivia pieces
// cover the start and end of text; it panics when they overlap or exceed it.
func NewGreenToken(kind RawKind, text string, leading, trailing []TriviaPiece) *GreenToken {
	leadingLen := triviaLen(leading)
	trailingLen := triviaLen(trailing)
	if leadingLen+trailingLen > len(text) {
		panic(fmt.Sprintf("syntax: trivia of token %d (%d+%d bytes) exceeds its text (%d bytes)",
			kind, leadingLen, trailingLen, len(text)))
	}
	tok := &GreenToken{
		kind:        kind,
		text:        text,
		leading:     slices.Clip(leading),
		trailing:    slices.Clip(trailing),
		leadingLen:  leadingLen,
		trailingLen: trailingLen,
	}
	tok.hash = tok.computeHash()
	return tok
}

func (*GreenToken) isGreen() {}

// Kind returns the raw kind.
func (t *GreenToken) Kind() RawKind {
	return t.kind
}

// TextLen returns the length of the full text, trivia included.
func (t *GreenToken) TextLen() int {
	return len(t.text)
}

// Text returns the token text including trivia.
func (t *GreenToken) Text() string {
	return t.text
}

// TextTrimmed returns the token text without trivia.
func (t *GreenToken) TextTrimmed() string {
	return t.text[t.leadingLen : len(t.text)-t.trailingLen]
}

// LeadingTrivia returns the leading trivia pieces. The slice must not be modified.
func (t *GreenToken) LeadingTrivia() []TriviaPiece {
	return t.leading
}

// TrailingTrivia returns the trailing trivia pieces. The slice must not be modified.
func (t *GreenToken) TrailingTrivia() []TriviaPiece {
	return t.trailing
}

// LeadingLen returns the byte length of the leading trivia.
func (t *GreenToken) LeadingLen() int {
	return t.leadingLen
}

// TrailingLen returns the byte length of the trailing trivia.
func (t *GreenToken) TrailingLen() int {
	return t.trailingLen
}

// Hash returns the structural hash of the token.
func (t *GreenToken) Hash() uint64 {
	return t.hash
}

// Equal reports structural equality.
func (t *GreenToken) Equal(other *GreenToken) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.kind == other.kind && t.text == other.text &&
		slices.Equal(t.leading, other.leading) && slices.Equal(t.trailing, other.trailing)
}

// WithText returns a copy of the token with a new core text, keeping trivia.
func (t *GreenToken) WithText(text string) *GreenToken {
	full := t.text[:t.leadingLen] + text + t.text[len(t.text)-t.trailingLen:]
	return NewGreenToken(t.kind, full, t.leading, t.trailing)
}

func (t *GreenToken) computeHash() uint64 {
	h := fnv.New64a()
	var buf [2]byte
	buf[0], buf[1] = byte(t.kind), byte(t.kind>>8)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(t.text))
	for _, pieces := range [][]TriviaPiece{t.leading, t.trailing} {
		for _, p := range pieces {
			_, _ = fmt.Fprintf(h, "|%d:%d", p.Kind, p.Length)
		}
		_, _ = h.Write([]byte{0xff})
	}
	return h.Sum64()
}

// GreenNode is an immutable interior node. Children are positioned by
// relative offset only; a green node knows nothing about its parent.
type GreenNode struct {
	kind     RawKind
	children []GreenElement
	offsets  []int
	textLen  int
	hash     uint64
}

// NewGreenNode creates a node. Nil entries in children are empty slots.
func NewGreenNode(kind RawKind, children []GreenElement) *GreenNode {
	node := &GreenNode{
		kind:     kind,
		children: slices.Clip(children),
		offsets:  make([]int, len(children)),
	}
	h := fnv.New64a()
	var buf [2]byte
	buf[0], buf[1] = byte(kind), byte(kind>>8)
	_, _ = h.Write(buf[:])
	for i, child := range children {
		node.offsets[i] = node.textLen
		if child == nil {
			_, _ = h.Write([]byte{0})
			continue
		}
		node.textLen += child.TextLen()
		var word [8]byte
		ch := child.Hash()
		for b := range word {
			word[b] = byte(ch >> (8 * b))
		}
		_, _ = h.Write(word[:])
	}
	node.hash = h.Sum64()
	return node
}

func (*GreenNode) isGreen() {}

// Kind returns the raw kind.
func (n *GreenNode) Kind() RawKind {
	return n.kind
}

// TextLen returns the total text length of the subtree, trivia included.
func (n *GreenNode) TextLen() int {
	return n.textLen
}

// Hash returns the structural hash of the subtree.
func (n *GreenNode) Hash() uint64 {
	return n.hash
}

// SlotCount returns the number of slots, empty ones included.
func (n *GreenNode) SlotCount() int {
	return len(n.children)
}

// Slot returns the element in slot i, or nil for an empty slot.
func (n *GreenNode) Slot(i int) GreenElement {
	return n.children[i]
}

// SlotOffset returns the offset of slot i relative to the node start.
func (n *GreenNode) SlotOffset(i int) int {
	return n.offsets[i]
}

// Children returns a copy of the slots.
func (n *GreenNode) Children() []GreenElement {
	return slices.Clone(n.children)
}

// Text reconstructs the full text of the subtree.
func (n *GreenNode) Text() string {
	buf := make([]byte, 0, n.textLen)
	return string(n.appendText(buf))
}

func (n *GreenNode) appendText(buf []byte) []byte {
	for _, child := range n.children {
		switch c := child.(type) {
		case *GreenToken:
			buf = append(buf, c.text...)
		case *GreenNode:
			buf = c.appendText(buf)
		}
	}
	return buf
}

// Equal reports structural equality: same kind and pairwise equal slots.
func (n *GreenNode) Equal(other *GreenNode) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.kind != other.kind || n.textLen != other.textLen || n.hash != other.hash ||
		len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !GreenEqual(n.children[i], other.children[i]) {
			return false
		}
	}
	return true
}

// GreenEqual compares two green elements structurally. Two empty slots are equal.
func GreenEqual(a, b GreenElement) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *GreenToken:
		y, ok := b.(*GreenToken)
		return ok && x.Equal(y)
	case *GreenNode:
		y, ok := b.(*GreenNode)
		return ok && x.Equal(y)
	}
	return false
}

// ReplaceChild returns a new node with slot i replaced. Other slots are shared.
func (n *GreenNode) ReplaceChild(i int, child GreenElement) *GreenNode {
	children := slices.Clone(n.children)
	children[i] = child
	return NewGreenNode(n.kind, children)
}

// SpliceChildren returns a new node with slots [start, end) replaced by replacement.
func (n *GreenNode) SpliceChildren(start, end int, replacement ...GreenElement) *GreenNode {
	children := make([]GreenElement, 0, len(n.children)-(end-start)+len(replacement))
	children = append(children, n.children[:start]...)
	children = append(children, replacement...)
	children = append(children, n.children[end:]...)
	return NewGreenNode(n.kind, children)
}

// WithChildren returns a node of the same kind with new children.
func (n *GreenNode) WithChildren(children []GreenElement) *GreenNode {
	return NewGreenNode(n.kind, children)
}

// WithKind returns a node of a different kind with the same children.
func (n *GreenNode) WithKind(kind RawKind) *GreenNode {
	return NewGreenNode(kind, n.children)
}
