package syntax

import "fmt"

// TextRange is a half-open byte range [Start, End) in source text.
type TextRange struct {
	Start int
	End   int
}

// NewTextRange creates a range, panicking if end precedes start.
func NewTextRange(start, end int) TextRange {
	if end < start {
		panic(fmt.Sprintf("syntax: invalid text range %d..%d", start, end))
	}
	return TextRange{Start: start, End: end}
}

// EmptyRangeAt returns the empty range at offset.
func EmptyRangeAt(offset int) TextRange {
	return TextRange{Start: offset, End: offset}
}

// Len returns the length of the range in bytes.
func (r TextRange) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if offset is within the range (end exclusive).
func (r TextRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsInclusive returns true if offset is within the range, counting the end.
func (r TextRange) ContainsInclusive(offset int) bool {
	return offset >= r.Start && offset <= r.End
}

// ContainsRange returns true if other lies entirely within r.
func (r TextRange) ContainsRange(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Intersect returns the overlap of two ranges, or false when they are disjoint.
func (r TextRange) Intersect(other TextRange) (TextRange, bool) {
	start := max(r.Start, other.Start)
	end := min(r.End, other.End)
	if end < start {
		return TextRange{}, false
	}
	return TextRange{Start: start, End: end}, true
}

// Cover returns the smallest range containing both ranges.
func (r TextRange) Cover(other TextRange) TextRange {
	return TextRange{Start: min(r.Start, other.Start), End: max(r.End, other.End)}
}

// Shift returns the range moved by delta bytes.
func (r TextRange) Shift(delta int) TextRange {
	return TextRange{Start: r.Start + delta, End: r.End + delta}
}

// Slice returns the part of text covered by the range.
func (r TextRange) Slice(text string) string {
	return text[r.Start:r.End]
}

// String formats the range as "start..end".
func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
