package syntax

import "fmt"

// Checkpoint records a position in the builder's child list so that a node
// can later be started around children that were already added.
type Checkpoint struct {
	depth    int
	children int
}

type builderFrame struct {
	kind  RawKind
	first int
}

// TreeBuilder assembles a green tree from start/token/finish calls.
// Unbalanced calls are programming errors and panic.
type TreeBuilder struct {
	lang     Language
	cache    *NodeCache
	parents  []builderFrame
	children []GreenElement
}

// NewTreeBuilder creates a builder for lang. The cache may be nil.
func NewTreeBuilder(lang Language, cache *NodeCache) *TreeBuilder {
	return &TreeBuilder{lang: lang, cache: cache}
}

// Language returns the builder's language.
func (b *TreeBuilder) Language() Language {
	return b.lang
}

func (b *TreeBuilder) checkKind(kind RawKind) {
	if kind == Tombstone {
		panic("syntax: TOMBSTONE cannot be added to a tree")
	}
	if _, err := b.lang.FromRaw(kind); err != nil {
		panic(fmt.Sprintf("syntax: %v", err))
	}
}

// StartNode opens a node of kind.
func (b *TreeBuilder) StartNode(kind RawKind) {
	b.checkKind(kind)
	b.parents = append(b.parents, builderFrame{kind: kind, first: len(b.children)})
}

// Token adds a token whose full text is text. Trivia pieces cover its start
// and end.
func (b *TreeBuilder) Token(kind RawKind, text string, leading, trailing []TriviaPiece) {
	b.checkKind(kind)
	tok := NewGreenToken(kind, text, leading, trailing)
	if b.cache != nil {
		tok = b.cache.Token(tok)
	}
	b.children = append(b.children, tok)
}

// EmptySlot adds an empty slot to the current node.
func (b *TreeBuilder) EmptySlot() {
	b.children = append(b.children, nil)
}

// AddNode adds an already built green node as a child.
func (b *TreeBuilder) AddNode(node *GreenNode) {
	if node == nil {
		b.EmptySlot()
		return
	}
	b.children = append(b.children, node)
}

// FinishNode closes the most recently started node.
func (b *TreeBuilder) FinishNode() {
	if len(b.parents) == 0 {
		panic("syntax: FinishNode without a matching StartNode")
	}
	frame := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	children := make([]GreenElement, len(b.children)-frame.first)
	copy(children, b.children[frame.first:])
	node := NewGreenNode(frame.kind, children)
	if b.cache != nil {
		node = b.cache.Node(node)
	}
	b.children = append(b.children[:frame.first], node)
}

// Checkpoint returns the current position for a later StartNodeAt.
func (b *TreeBuilder) Checkpoint() Checkpoint {
	return Checkpoint{depth: len(b.parents), children: len(b.children)}
}

// StartNodeAt opens a node of kind that adopts every child added since cp.
func (b *TreeBuilder) StartNodeAt(cp Checkpoint, kind RawKind) {
	if cp.depth != len(b.parents) {
		panic("syntax: checkpoint used at a different nesting depth")
	}
	if cp.children > len(b.children) {
		panic("syntax: checkpoint is ahead of the builder")
	}
	b.checkKind(kind)
	b.parents = append(b.parents, builderFrame{kind: kind, first: cp.children})
}

// Finish returns the single finished root node.
func (b *TreeBuilder) Finish() *GreenNode {
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("syntax: Finish with %d unclosed nodes", len(b.parents)))
	}
	if len(b.children) != 1 {
		panic(fmt.Sprintf("syntax: Finish with %d top-level elements, want 1", len(b.children)))
	}
	root, ok := b.children[0].(*GreenNode)
	if !ok {
		panic("syntax: Finish with a token at the top level")
	}
	return root
}

// FinishRoot returns the root as a red node bound to the builder's language.
func (b *TreeBuilder) FinishRoot() *SyntaxNode {
	return NewRoot(b.lang, b.Finish())
}
