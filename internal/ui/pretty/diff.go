package pretty

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContextRunes bounds how much unchanged text is shown around a change.
const diffContextRunes = 20

// FormatTextDiff renders the difference between the source text and the
// text reconstructed from a tree. Insertions and deletions are styled and
// long unchanged stretches are elided.
func (s *Styles) FormatTextDiff(path, want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render(fmt.Sprintf("--- %s (source)", path)) + "\n")
	builder.WriteString(s.DiffHeader.Render(fmt.Sprintf("+++ %s (tree text)", path)) + "\n")

	for i, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			builder.WriteString(s.DiffAdd.Render(visible(d.Text)))
		case diffmatchpatch.DiffDelete:
			builder.WriteString(s.DiffRemove.Render(visible(d.Text)))
		case diffmatchpatch.DiffEqual:
			builder.WriteString(s.Dim.Render(elide(d.Text, i == 0, i == len(diffs)-1)))
		}
	}
	builder.WriteString("\n")

	return builder.String()
}

// elide shortens unchanged text, keeping only the runes adjacent to the
// neighbouring changes.
func elide(text string, first, last bool) string {
	runes := []rune(text)
	if len(runes) <= 2*diffContextRunes {
		return text
	}
	head := string(runes[:diffContextRunes])
	tail := string(runes[len(runes)-diffContextRunes:])
	switch {
	case first && last:
		return text
	case first:
		return "…" + tail
	case last:
		return head + "…"
	default:
		return head + "…" + tail
	}
}

// visible makes whitespace-only changes readable.
func visible(text string) string {
	if strings.TrimSpace(text) != "" {
		return text
	}
	return strings.NewReplacer(" ", "·", "\t", "→", "\n", "↵\n", "\r", "␍").Replace(text)
}
