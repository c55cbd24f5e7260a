package syntax

// ValidateGreen checks that every kind in the subtree belongs to lang.
func ValidateGreen(lang Language, g GreenElement) error {
	switch e := g.(type) {
	case *GreenToken:
		_, err := lang.FromRaw(e.kind)
		return err
	case *GreenNode:
		if _, err := lang.FromRaw(e.kind); err != nil {
			return err
		}
		for _, child := range e.children {
			if child == nil {
				continue
			}
			if err := ValidateGreen(lang, child); err != nil {
				return err
			}
		}
	}
	return nil
}

// rebuildSpine replaces slot index of parent with g and walks up to the
// root. Only the nodes on the path are recreated; every other subtree is
// shared with the old tree.
func rebuildSpine(parent *SyntaxNode, index int, g GreenElement) *GreenNode {
	node := parent.green.ReplaceChild(index, g)
	for cur := parent; cur.parent != nil; cur = cur.parent {
		node = cur.parent.green.ReplaceChild(cur.index, node)
	}
	return node
}

// ReplaceWith returns the root of a new tree in which n is replaced by green.
// The receiver's tree is left untouched.
func (n *SyntaxNode) ReplaceWith(green *GreenNode) (*SyntaxNode, error) {
	if err := ValidateGreen(n.lang, green); err != nil {
		return nil, err
	}
	if n.parent == nil {
		return NewRoot(n.lang, green), nil
	}
	return NewRoot(n.lang, rebuildSpine(n.parent, n.index, green)), nil
}

// SpliceSlots returns the root of a new tree in which slots [start, end) of
// n are replaced by replacement.
func (n *SyntaxNode) SpliceSlots(start, end int, replacement ...GreenElement) (*SyntaxNode, error) {
	for _, el := range replacement {
		if el == nil {
			continue
		}
		if err := ValidateGreen(n.lang, el); err != nil {
			return nil, err
		}
	}
	green := n.green.SpliceChildren(start, end, replacement...)
	if n.parent == nil {
		return NewRoot(n.lang, green), nil
	}
	return NewRoot(n.lang, rebuildSpine(n.parent, n.index, green)), nil
}

// Detach returns the node as the root of its own tree.
func (n *SyntaxNode) Detach() *SyntaxNode {
	return NewRoot(n.lang, n.green)
}

// ReplaceWithText returns the root of a new tree in which the token's core
// text is replaced. Its trivia is kept.
func (t *SyntaxToken) ReplaceWithText(text string) *SyntaxNode {
	return NewRoot(t.parent.lang, rebuildSpine(t.parent, t.index, t.green.WithText(text)))
}

// ReplaceWith returns the root of a new tree in which the token is replaced.
func (t *SyntaxToken) ReplaceWith(green *GreenToken) (*SyntaxNode, error) {
	if err := ValidateGreen(t.parent.lang, green); err != nil {
		return nil, err
	}
	return NewRoot(t.parent.lang, rebuildSpine(t.parent, t.index, green)), nil
}
