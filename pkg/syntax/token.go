package syntax

import (
	"fmt"
	"iter"
)

// SyntaxToken is a positioned view of a green token.
type SyntaxToken struct {
	green  *GreenToken
	offset int
	parent *SyntaxNode
	index  int
}

// RawKind returns the stored kind.
func (t *SyntaxToken) RawKind() RawKind {
	return t.green.kind
}

// Kind returns the typed kind.
func (t *SyntaxToken) Kind() Kind {
	k, err := t.parent.lang.FromRaw(t.green.kind)
	if err != nil {
		panic(fmt.Sprintf("syntax: token holds invalid kind: %v", err))
	}
	return k
}

// Is reports whether the token is of any of kinds.
func (t *SyntaxToken) Is(kinds ...RawKind) bool {
	for _, k := range kinds {
		if t.green.kind == k {
			return true
		}
	}
	return false
}

// Green returns the underlying green token.
func (t *SyntaxToken) Green() *GreenToken {
	return t.green
}

// Parent returns the node containing the token.
func (t *SyntaxToken) Parent() *SyntaxNode {
	return t.parent
}

// Index returns the slot index of the token in its parent.
func (t *SyntaxToken) Index() int {
	return t.index
}

// Text returns the token text including trivia.
func (t *SyntaxToken) Text() string {
	return t.green.text
}

// TextTrimmed returns the token text without trivia.
func (t *SyntaxToken) TextTrimmed() string {
	return t.green.TextTrimmed()
}

// String returns the trimmed text.
func (t *SyntaxToken) String() string {
	return t.TextTrimmed()
}

// TextRange returns the absolute range including trivia.
func (t *SyntaxToken) TextRange() TextRange {
	return TextRange{Start: t.offset, End: t.offset + len(t.green.text)}
}

// TextTrimmedRange returns the absolute range of the token without trivia.
func (t *SyntaxToken) TextTrimmedRange() TextRange {
	return TextRange{
		Start: t.offset + t.green.leadingLen,
		End:   t.offset + len(t.green.text) - t.green.trailingLen,
	}
}

// Equal reports whether both views refer to the same green token at the same offset.
func (t *SyntaxToken) Equal(other *SyntaxToken) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.green == other.green && t.offset == other.offset
}

func (t *SyntaxToken) pieces(pieces []TriviaPiece, start int) []SyntaxTriviaPiece {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]SyntaxTriviaPiece, 0, len(pieces))
	rel := start
	for _, p := range pieces {
		out = append(out, SyntaxTriviaPiece{
			Kind:  p.Kind,
			Range: TextRange{Start: t.offset + rel, End: t.offset + rel + p.Length},
			text:  t.green.text[rel : rel+p.Length],
		})
		rel += p.Length
	}
	return out
}

// LeadingTrivia returns the positioned leading trivia pieces.
func (t *SyntaxToken) LeadingTrivia() []SyntaxTriviaPiece {
	return t.pieces(t.green.leading, 0)
}

// TrailingTrivia returns the positioned trailing trivia pieces.
func (t *SyntaxToken) TrailingTrivia() []SyntaxTriviaPiece {
	return t.pieces(t.green.trailing, len(t.green.text)-t.green.trailingLen)
}

// HasLeadingComments reports whether the leading trivia contains a comment.
func (t *SyntaxToken) HasLeadingComments() bool {
	for _, p := range t.green.leading {
		if p.Kind.IsComment() {
			return true
		}
	}
	return false
}

// HasTrailingComments reports whether the trailing trivia contains a comment.
func (t *SyntaxToken) HasTrailingComments() bool {
	for _, p := range t.green.trailing {
		if p.Kind.IsComment() {
			return true
		}
	}
	return false
}

// HasLeadingNewline reports whether a line break precedes the token.
func (t *SyntaxToken) HasLeadingNewline() bool {
	for _, p := range t.green.leading {
		if p.Kind == TriviaNewline {
			return true
		}
	}
	return false
}

// NextToken returns the next token in the tree.
func (t *SyntaxToken) NextToken() *SyntaxToken {
	parent, index := t.parent, t.index
	for parent != nil {
		for i := index + 1; i < len(parent.green.children); i++ {
			switch el := elementAt(parent, i).(type) {
			case *SyntaxToken:
				return el
			case *SyntaxNode:
				if tok := el.FirstToken(); tok != nil {
					return tok
				}
			}
		}
		parent, index = parent.parent, parent.index
	}
	return nil
}

// PrevToken returns the previous token in the tree.
func (t *SyntaxToken) PrevToken() *SyntaxToken {
	parent, index := t.parent, t.index
	for parent != nil {
		for i := index - 1; i >= 0; i-- {
			switch el := elementAt(parent, i).(type) {
			case *SyntaxToken:
				return el
			case *SyntaxNode:
				if tok := el.LastToken(); tok != nil {
					return tok
				}
			}
		}
		parent, index = parent.parent, parent.index
	}
	return nil
}

// NextSiblingOrToken returns the next non-empty sibling element.
func (t *SyntaxToken) NextSiblingOrToken() SyntaxElement {
	return nextElement(t.parent, t.index)
}

// PrevSiblingOrToken returns the previous non-empty sibling element.
func (t *SyntaxToken) PrevSiblingOrToken() SyntaxElement {
	return prevElement(t.parent, t.index)
}

// Ancestors iterates the parent chain, starting at the token's parent.
func (t *SyntaxToken) Ancestors() iter.Seq[*SyntaxNode] {
	return t.parent.Ancestors()
}
