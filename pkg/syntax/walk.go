package syntax

import "iter"

// WalkEventKind distinguishes entering and leaving an element.
type WalkEventKind uint8

// Walk event kinds.
const (
	Enter WalkEventKind = iota
	Leave
)

// WalkEvent is yielded by Preorder.
type WalkEvent struct {
	Kind WalkEventKind
	Node *SyntaxNode
}

// Preorder yields an Enter event for every node in the subtree, including n,
// followed by a matching Leave event once its children are done.
func (n *SyntaxNode) Preorder() iter.Seq[WalkEvent] {
	return func(yield func(WalkEvent) bool) {
		preorder(n, yield)
	}
}

func preorder(n *SyntaxNode, yield func(WalkEvent) bool) bool {
	if !yield(WalkEvent{Kind: Enter, Node: n}) {
		return false
	}
	for c := range n.Children() {
		if !preorder(c, yield) {
			return false
		}
	}
	return yield(WalkEvent{Kind: Leave, Node: n})
}

// Descendants yields n and every node below it in preorder.
func (n *SyntaxNode) Descendants() iter.Seq[*SyntaxNode] {
	return func(yield func(*SyntaxNode) bool) {
		for ev := range n.Preorder() {
			if ev.Kind == Enter && !yield(ev.Node) {
				return
			}
		}
	}
}

// DescendantTokens yields every token of the subtree in source order.
func (n *SyntaxNode) DescendantTokens() iter.Seq[*SyntaxToken] {
	return func(yield func(*SyntaxToken) bool) {
		descendantTokens(n, yield)
	}
}

func descendantTokens(n *SyntaxNode, yield func(*SyntaxToken) bool) bool {
	for el := range n.ChildrenWithTokens() {
		switch e := el.(type) {
		case *SyntaxToken:
			if !yield(e) {
				return false
			}
		case *SyntaxNode:
			if !descendantTokens(e, yield) {
				return false
			}
		}
	}
	return true
}

// Ancestors yields n followed by each of its ancestors up to the root.
func (n *SyntaxNode) Ancestors() iter.Seq[*SyntaxNode] {
	return func(yield func(*SyntaxNode) bool) {
		for cur := n; cur != nil; cur = cur.parent {
			if !yield(cur) {
				return
			}
		}
	}
}

// FindAll returns every node in the subtree matching pred, in preorder.
func FindAll(n *SyntaxNode, pred func(*SyntaxNode) bool) []*SyntaxNode {
	var out []*SyntaxNode
	for d := range n.Descendants() {
		if pred(d) {
			out = append(out, d)
		}
	}
	return out
}

// FindFirst returns the first node in preorder matching pred.
func FindFirst(n *SyntaxNode, pred func(*SyntaxNode) bool) *SyntaxNode {
	for d := range n.Descendants() {
		if pred(d) {
			return d
		}
	}
	return nil
}

// KindPredicate matches nodes of any of kinds.
func KindPredicate(kinds ...RawKind) func(*SyntaxNode) bool {
	return func(n *SyntaxNode) bool {
		return n.Is(kinds...)
	}
}
