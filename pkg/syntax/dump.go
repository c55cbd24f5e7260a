package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump renders the subtree in the debug format used by snapshot tests:
//
//	0: CSS_ROOT@0..5
//	  0: CSS_RULE_LIST@0..4
//	  ...
//	  1: EOF@5..5 "" [Newline("\n")] []
func Dump(n *SyntaxNode) string {
	var sb strings.Builder
	_ = DumpTo(&sb, n)
	return sb.String()
}

// DumpTo writes the debug dump of n to w.
func DumpTo(w io.Writer, n *SyntaxNode) error {
	return dumpNode(w, n, n.index, 0)
}

func dumpNode(w io.Writer, n *SyntaxNode, slot, depth int) error {
	indent := strings.Repeat("  ", depth)
	r := n.TextRange()
	if _, err := fmt.Fprintf(w, "%s%d: %s@%d..%d\n", indent, slot, n.Kind(), r.Start, r.End); err != nil {
		return err
	}
	for i, el := range n.Slots() {
		var err error
		switch e := el.(type) {
		case nil:
			_, err = fmt.Fprintf(w, "%s  %d: (empty)\n", indent, i)
		case *SyntaxToken:
			_, err = fmt.Fprintf(w, "%s  %d: %s\n", indent, i, FormatToken(e))
		case *SyntaxNode:
			err = dumpNode(w, e, i, depth+1)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatToken renders a token as KIND@start..end "text" [leading] [trailing].
func FormatToken(t *SyntaxToken) string {
	r := t.TextTrimmedRange()
	return fmt.Sprintf("%s@%d..%d %s %s %s", t.Kind(), r.Start, r.End,
		strconv.Quote(t.TextTrimmed()), formatTrivia(t.LeadingTrivia()), formatTrivia(t.TrailingTrivia()))
}

func formatTrivia(pieces []SyntaxTriviaPiece) string {
	parts := make([]string, 0, len(pieces))
	for _, p := range pieces {
		parts = append(parts, fmt.Sprintf("%s(%s)", p.Kind, strconv.Quote(p.Text())))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ExportedElement is a serializable form of a tree element.
type ExportedElement struct {
	Kind     string            `json:"kind"`
	Start    int               `json:"start"`
	End      int               `json:"end"`
	Text     string            `json:"text,omitempty"`
	Leading  []ExportedTrivia  `json:"leading,omitempty"`
	Trailing []ExportedTrivia  `json:"trailing,omitempty"`
	Empty    bool              `json:"empty,omitempty"`
	Children []ExportedElement `json:"children,omitempty"`
}

// ExportedTrivia is a serializable trivia piece.
type ExportedTrivia struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Export converts the subtree into plain data for encoding.
func Export(n *SyntaxNode) ExportedElement {
	r := n.TextRange()
	out := ExportedElement{Kind: n.Kind().String(), Start: r.Start, End: r.End}
	for _, el := range n.Slots() {
		switch e := el.(type) {
		case nil:
			out.Children = append(out.Children, ExportedElement{Kind: "EMPTY", Start: -1, End: -1, Empty: true})
		case *SyntaxToken:
			tr := e.TextTrimmedRange()
			out.Children = append(out.Children, ExportedElement{
				Kind:     e.Kind().String(),
				Start:    tr.Start,
				End:      tr.End,
				Text:     e.TextTrimmed(),
				Leading:  exportTrivia(e.LeadingTrivia()),
				Trailing: exportTrivia(e.TrailingTrivia()),
			})
		case *SyntaxNode:
			out.Children = append(out.Children, Export(e))
		}
	}
	return out
}

func exportTrivia(pieces []SyntaxTriviaPiece) []ExportedTrivia {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]ExportedTrivia, len(pieces))
	for i, p := range pieces {
		out[i] = ExportedTrivia{Kind: p.Kind.String(), Text: p.Text()}
	}
	return out
}
