package syntax

import (
	"errors"
	"fmt"
	"iter"
)

// AstNode is implemented by every typed wrapper over a syntax node.
type AstNode interface {
	Syntax() *SyntaxNode
}

// ErrMissingRequiredChild is matched by every *MissingRequiredChildError.
var ErrMissingRequiredChild = errors.New("missing required child")

// MissingRequiredChildError reports an absent required slot.
type MissingRequiredChildError struct {
	// Parent is the kind of the node whose slot is missing.
	Parent Kind
	// Slot is the fixed slot index that was requested.
	Slot int
	// Range is the range of the parent node.
	Range TextRange
}

func (e *MissingRequiredChildError) Error() string {
	return fmt.Sprintf("%s@%s: slot %d: %s", e.Parent, e.Range, e.Slot, ErrMissingRequiredChild)
}

// Unwrap returns ErrMissingRequiredChild.
func (e *MissingRequiredChildError) Unwrap() error {
	return ErrMissingRequiredChild
}

func missing(n *SyntaxNode, slot int) error {
	return &MissingRequiredChildError{Parent: n.Kind(), Slot: slot, Range: n.TextRange()}
}

// OptionalNode returns the node in slot, or nil.
func OptionalNode(n *SyntaxNode, slot int) *SyntaxNode {
	node, _ := n.Slot(slot).(*SyntaxNode)
	return node
}

// RequiredNode returns the node in slot or a *MissingRequiredChildError.
func RequiredNode(n *SyntaxNode, slot int) (*SyntaxNode, error) {
	if node := OptionalNode(n, slot); node != nil {
		return node, nil
	}
	return nil, missing(n, slot)
}

// OptionalToken returns the token in slot, or nil.
func OptionalToken(n *SyntaxNode, slot int) *SyntaxToken {
	tok, _ := n.Slot(slot).(*SyntaxToken)
	return tok
}

// RequiredToken returns the token in slot or a *MissingRequiredChildError.
func RequiredToken(n *SyntaxNode, slot int) (*SyntaxToken, error) {
	if tok := OptionalToken(n, slot); tok != nil {
		return tok, nil
	}
	return nil, missing(n, slot)
}

// Required casts the node in slot with cast. A bogus or absent child is
// reported as missing.
func Required[T any](n *SyntaxNode, slot int, cast func(*SyntaxNode) (T, bool)) (T, error) {
	var zero T
	node := OptionalNode(n, slot)
	if node == nil {
		return zero, missing(n, slot)
	}
	v, ok := cast(node)
	if !ok {
		return zero, missing(n, slot)
	}
	return v, nil
}

// Optional casts the node in slot with cast.
func Optional[T any](n *SyntaxNode, slot int, cast func(*SyntaxNode) (T, bool)) (T, bool) {
	var zero T
	node := OptionalNode(n, slot)
	if node == nil {
		return zero, false
	}
	return cast(node)
}

// FindNode returns the first child node of any of kinds.
func FindNode(n *SyntaxNode, kinds ...RawKind) *SyntaxNode {
	for c := range n.Children() {
		if c.Is(kinds...) {
			return c
		}
	}
	return nil
}

// FindToken returns the first child token of any of kinds.
func FindToken(n *SyntaxNode, kinds ...RawKind) *SyntaxToken {
	for el := range n.ChildrenWithTokens() {
		if tok, ok := el.(*SyntaxToken); ok && tok.Is(kinds...) {
			return tok
		}
	}
	return nil
}

// CastFunc is the cast constructor of a typed node.
type CastFunc[T any] func(*SyntaxNode) (T, bool)

// AstNodeList is a typed view over a list node.
type AstNodeList[T any] struct {
	node *SyntaxNode
	cast CastFunc[T]
}

// NewAstNodeList wraps a list node.
func NewAstNodeList[T any](node *SyntaxNode, cast CastFunc[T]) AstNodeList[T] {
	return AstNodeList[T]{node: node, cast: cast}
}

// Syntax returns the list node.
func (l AstNodeList[T]) Syntax() *SyntaxNode {
	return l.node
}

// Len returns the number of child nodes.
func (l AstNodeList[T]) Len() int {
	if l.node == nil {
		return 0
	}
	n := 0
	for range l.node.Children() {
		n++
	}
	return n
}

// IsEmpty reports whether the list has no child nodes.
func (l AstNodeList[T]) IsEmpty() bool {
	return l.node == nil || l.node.FirstChild() == nil
}

// All yields every child that casts to T. Children of other kinds, such as
// bogus nodes, are skipped.
func (l AstNodeList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.node == nil {
			return
		}
		for c := range l.node.Children() {
			if v, ok := l.cast(c); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Nodes yields every child node, castable or not.
func (l AstNodeList[T]) Nodes() iter.Seq[*SyntaxNode] {
	return func(yield func(*SyntaxNode) bool) {
		if l.node == nil {
			return
		}
		for c := range l.node.Children() {
			if !yield(c) {
				return
			}
		}
	}
}

// SeparatedElement is one element of a separated list.
type SeparatedElement[T any] struct {
	// Node is the element node. It is nil when the element slot is empty.
	Node *SyntaxNode
	// Separator is the separator following the element, if any.
	Separator *SyntaxToken
	cast      CastFunc[T]
}

// Value casts the element.
func (e SeparatedElement[T]) Value() (T, bool) {
	var zero T
	if e.Node == nil {
		return zero, false
	}
	return e.cast(e.Node)
}

// AstSeparatedList is a typed view over a list whose elements alternate
// with separator tokens, such as JSON members separated by commas.
type AstSeparatedList[T any] struct {
	node *SyntaxNode
	cast CastFunc[T]
}

// NewAstSeparatedList wraps a separated list node.
func NewAstSeparatedList[T any](node *SyntaxNode, cast CastFunc[T]) AstSeparatedList[T] {
	return AstSeparatedList[T]{node: node, cast: cast}
}

// Syntax returns the list node.
func (l AstSeparatedList[T]) Syntax() *SyntaxNode {
	return l.node
}

// Elements yields each element with its trailing separator.
func (l AstSeparatedList[T]) Elements() iter.Seq[SeparatedElement[T]] {
	return func(yield func(SeparatedElement[T]) bool) {
		if l.node == nil {
			return
		}
		var cur *SeparatedElement[T]
		for _, el := range l.node.Slots() {
			switch e := el.(type) {
			case *SyntaxToken:
				if cur == nil {
					cur = &SeparatedElement[T]{cast: l.cast}
				}
				cur.Separator = e
				if !yield(*cur) {
					return
				}
				cur = nil
			case *SyntaxNode:
				if cur != nil && !yield(*cur) {
					return
				}
				cur = &SeparatedElement[T]{Node: e, cast: l.cast}
			}
		}
		if cur != nil {
			yield(*cur)
		}
	}
}

// All yields every element that casts to T.
func (l AstSeparatedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for el := range l.Elements() {
			if v, ok := el.Value(); ok && !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of elements.
func (l AstSeparatedList[T]) Len() int {
	n := 0
	for range l.Elements() {
		n++
	}
	return n
}

// TrailingSeparator returns the separator after the last element, if any.
func (l AstSeparatedList[T]) TrailingSeparator() *SyntaxToken {
	var last SeparatedElement[T]
	for el := range l.Elements() {
		last = el
	}
	if last.Node == nil {
		return nil
	}
	return last.Separator
}
