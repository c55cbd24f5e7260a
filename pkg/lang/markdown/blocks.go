package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/gocst/pkg/syntax"
)

// block is a top-level block located on source lines.
type block struct {
	kind Kind
	// first is the 0-based line the block starts on.
	first int
}

// placer finds the first and last source line of goldmark blocks. goldmark
// records line segments for leaf content only, so fences, thematic breaks
// and empty containers are located by scanning for the next non-blank line.
type placer struct {
	src   string
	lines *syntax.LineIndex
}

// topLevel returns the document's blocks in source order with strictly
// increasing first lines.
func (pl *placer) topLevel(doc ast.Node) []block {
	var blocks []block
	last := -1
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		first, end := pl.place(child, last)
		if first < 0 || first >= pl.lines.LineCount() {
			continue
		}
		if len(blocks) == 0 || first > blocks[len(blocks)-1].first {
			blocks = append(blocks, block{kind: pl.kindOf(child, first), first: first})
		}
		last = max(last, end)
	}
	return blocks
}

// place returns the first and last line of n. prev is the last line used
// by earlier blocks.
func (pl *placer) place(n ast.Node, prev int) (int, int) {
	switch b := n.(type) {
	case *ast.FencedCodeBlock:
		return pl.placeFenced(b, prev)
	case *ast.ThematicBreak:
		line := pl.nextNonBlank(prev)
		return line, line
	case *ast.Heading:
		first, last, ok := pl.segmentLines(n)
		if !ok {
			line := pl.nextNonBlank(prev)
			return line, line
		}
		if !pl.isATX(first) {
			last++
		}
		return first, last
	case *ast.HTMLBlock:
		first, last, ok := pl.segmentLines(n)
		if b.HasClosure() {
			closure := pl.lines.LineNumber(b.ClosureLine.Start)
			if !ok {
				first = closure
			}
			last = closure
			ok = true
		}
		if !ok {
			line := pl.nextNonBlank(prev)
			return line, line
		}
		return first, last
	}

	if n.Type() == ast.TypeBlock && n.FirstChild() != nil && n.FirstChild().Type() == ast.TypeBlock {
		first, last := -1, prev
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			f, l := pl.place(child, last)
			if first < 0 {
				first = f
			}
			last = max(last, l)
		}
		if first >= 0 {
			return first, last
		}
	}
	if first, last, ok := pl.segmentLines(n); ok {
		return first, last
	}
	line := pl.nextNonBlank(prev)
	return line, line
}

// placeFenced locates a fenced code block. Content lines follow the
// opening fence directly; the closing fence, if any, follows the content.
func (pl *placer) placeFenced(b *ast.FencedCodeBlock, prev int) (int, int) {
	first, last, ok := pl.segmentLines(b)
	if ok {
		first--
	} else {
		first = pl.nextNonBlank(prev)
		last = first
	}
	if first < 0 || first >= pl.lines.LineCount() {
		return first, last
	}
	open := strings.TrimLeft(pl.lineText(first), " \t>")
	if last+1 < pl.lines.LineCount() && isClosingFence(open, pl.lineText(last+1)) {
		last++
	}
	return first, last
}

// segmentLines returns the lines spanned by n's own line segments.
func (pl *placer) segmentLines(n ast.Node) (int, int, bool) {
	if n.Type() != ast.TypeBlock {
		return 0, 0, false
	}
	segs := n.Lines()
	if segs == nil || segs.Len() == 0 {
		return 0, 0, false
	}
	first := pl.lines.LineNumber(segs.At(0).Start)
	lastSeg := segs.At(segs.Len() - 1)
	end := lastSeg.Stop
	if end > lastSeg.Start {
		end--
	}
	return first, pl.lines.LineNumber(end), true
}

// nextNonBlank returns the first non-blank line after prev, or LineCount.
func (pl *placer) nextNonBlank(prev int) int {
	for i := prev + 1; i < pl.lines.LineCount(); i++ {
		if strings.TrimSpace(pl.lineText(i)) != "" {
			return i
		}
	}
	return pl.lines.LineCount()
}

func (pl *placer) lineText(i int) string {
	line := pl.lines.Line(i)
	return pl.src[line.Start:line.NewlineStart]
}

func (pl *placer) isATX(line int) bool {
	text := strings.TrimLeft(pl.lineText(line), " \t>")
	text = strings.TrimLeft(text, "-*+0123456789.) \t")
	return strings.HasPrefix(text, "#")
}

func (pl *placer) kindOf(n ast.Node, first int) Kind {
	switch b := n.(type) {
	case *ast.Heading:
		if pl.isATX(first) {
			return KindHeader
		}
		return KindSetextHeader
	case *ast.Paragraph, *ast.TextBlock:
		// goldmark swaps a paragraph made only of link reference
		// definitions for an empty text block.
		if n.Lines().Len() == 0 {
			return KindBogus
		}
		return KindParagraph
	case *ast.FencedCodeBlock:
		return KindFencedCodeBlock
	case *ast.CodeBlock:
		return KindIndentCodeBlock
	case *ast.ThematicBreak:
		return KindThematicBreak
	case *ast.Blockquote:
		return KindQuote
	case *ast.List:
		if b.IsOrdered() {
			return KindOrderedList
		}
		return KindBulletList
	case *ast.HTMLBlock:
		return KindHTMLBlock
	case *east.Table:
		return KindTable
	}
	return KindBogus
}

// isClosingFence reports whether line closes a fence opened by open.
func isClosingFence(open, line string) bool {
	char, n := fenceOf(open)
	if n == 0 {
		return false
	}
	closing := strings.TrimSpace(line)
	closing = strings.TrimLeft(closing, "> \t")
	c, m := fenceOf(closing)
	return c == char && m >= n && strings.TrimSpace(closing[m:]) == ""
}

// fenceOf returns the fence character and run length at the start of s.
func fenceOf(s string) (byte, int) {
	if s == "" || s[0] != '`' && s[0] != '~' {
		return 0, 0
	}
	n := 0
	for n < len(s) && s[n] == s[0] {
		n++
	}
	const minFence = 3
	if n < minFence {
		return 0, 0
	}
	return s[0], n
}
