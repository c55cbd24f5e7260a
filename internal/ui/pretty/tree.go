package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gocst/pkg/syntax"
)

// FormatTree renders a syntax tree in the same layout as syntax.Dump with
// kinds, ranges, token text and trivia styled. Bogus nodes stand out.
func (s *Styles) FormatTree(root *syntax.SyntaxNode) string {
	var builder strings.Builder
	s.writeNode(&builder, root, root.Index(), 0)
	return builder.String()
}

func (s *Styles) writeNode(builder *strings.Builder, n *syntax.SyntaxNode, slot, depth int) {
	indent := strings.Repeat("  ", depth)
	kind := s.NodeKind
	if n.Kind().IsBogus() {
		kind = s.Bogus
	}
	fmt.Fprintf(builder, "%s%d: %s%s\n", indent, slot, kind.Render(n.Kind().String()), s.formatRange(n.TextRange()))

	for i, el := range n.Slots() {
		switch e := el.(type) {
		case nil:
			fmt.Fprintf(builder, "%s  %d: %s\n", indent, i, s.Dim.Render("(empty)"))
		case *syntax.SyntaxToken:
			fmt.Fprintf(builder, "%s  %d: %s\n", indent, i, s.formatToken(e))
		case *syntax.SyntaxNode:
			s.writeNode(builder, e, i, depth+1)
		}
	}
}

func (s *Styles) formatToken(t *syntax.SyntaxToken) string {
	return fmt.Sprintf("%s%s %s %s %s",
		s.TokenKind.Render(t.Kind().String()),
		s.formatRange(t.TextTrimmedRange()),
		s.TokenText.Render(strconv.Quote(t.TextTrimmed())),
		s.formatTrivia(t.LeadingTrivia()),
		s.formatTrivia(t.TrailingTrivia()),
	)
}

func (s *Styles) formatRange(r syntax.TextRange) string {
	return s.Range.Render(fmt.Sprintf("@%d..%d", r.Start, r.End))
}

func (s *Styles) formatTrivia(pieces []syntax.SyntaxTriviaPiece) string {
	parts := make([]string, 0, len(pieces))
	for _, p := range pieces {
		parts = append(parts, fmt.Sprintf("%s(%s)", p.Kind, strconv.Quote(p.Text())))
	}
	return s.Trivia.Render("[" + strings.Join(parts, ", ") + "]")
}
