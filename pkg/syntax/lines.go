package syntax

import (
	"sort"

	"github.com/rivo/uniseg"
)

// Line describes one line of source text.
type Line struct {
	// Start is the byte offset of the first byte of the line.
	Start int
	// NewlineStart is the offset of the line terminator, or the line end if there is none.
	NewlineStart int
	// End is the offset just past the line terminator.
	End int
}

// Position is a 1-based line and column. Columns count bytes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if both values are positive.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// LineIndex maps byte offsets to line and column positions.
type LineIndex struct {
	text  string
	lines []Line
}

// NewLineIndex builds the index for text. LF and CRLF endings are recognized.
func NewLineIndex(text string) *LineIndex {
	idx := &LineIndex{text: text}
	lineStart := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		newlineStart := i
		if i > 0 && text[i-1] == '\r' {
			newlineStart = i - 1
		}
		idx.lines = append(idx.lines, Line{Start: lineStart, NewlineStart: newlineStart, End: i + 1})
		lineStart = i + 1
	}
	idx.lines = append(idx.lines, Line{Start: lineStart, NewlineStart: len(text), End: len(text)})
	return idx
}

// LineCount returns the number of lines. Text ending in a newline has an
// empty final line.
func (idx *LineIndex) LineCount() int {
	return len(idx.lines)
}

// Line returns the 0-based line i.
func (idx *LineIndex) Line(i int) Line {
	return idx.lines[i]
}

// LineNumber returns the 0-based index of the line containing offset.
func (idx *LineIndex) LineNumber(offset int) int {
	if offset <= 0 {
		return 0
	}
	i := sort.Search(len(idx.lines), func(i int) bool {
		return idx.lines[i].End > offset
	})
	if i >= len(idx.lines) {
		i = len(idx.lines) - 1
	}
	return i
}

// Position converts a byte offset to a 1-based position. Offsets past the
// end clamp to the end of the text.
func (idx *LineIndex) Position(offset int) Position {
	offset = max(0, min(offset, len(idx.text)))
	i := idx.LineNumber(offset)
	return Position{Line: i + 1, Column: offset - idx.lines[i].Start + 1}
}

// Offset converts a 1-based position to a byte offset.
func (idx *LineIndex) Offset(pos Position) (int, bool) {
	if pos.Line < 1 || pos.Line > len(idx.lines) || pos.Column < 1 {
		return 0, false
	}
	line := idx.lines[pos.Line-1]
	offset := line.Start + pos.Column - 1
	if offset > line.End {
		return 0, false
	}
	return offset, true
}

// LineText returns the text of the 1-based line, without its terminator.
func (idx *LineIndex) LineText(line int) string {
	if line < 1 || line > len(idx.lines) {
		return ""
	}
	l := idx.lines[line-1]
	return idx.text[l.Start:l.NewlineStart]
}

// DisplayColumn returns the 1-based terminal column of offset, counting
// the display width of grapheme clusters rather than bytes.
func (idx *LineIndex) DisplayColumn(offset int) int {
	offset = max(0, min(offset, len(idx.text)))
	line := idx.lines[idx.LineNumber(offset)]
	end := min(offset, line.NewlineStart)
	return uniseg.StringWidth(idx.text[line.Start:end]) + 1
}
