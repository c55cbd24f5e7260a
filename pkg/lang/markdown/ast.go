package markdown

import (
	"strings"

	"github.com/yaklabco/gocst/pkg/syntax"
)

type node struct {
	n *syntax.SyntaxNode
}

// Syntax returns the wrapped syntax node.
func (x node) Syntax() *syntax.SyntaxNode { return x.n }

func kindOf(n *syntax.SyntaxNode) Kind {
	if n == nil || n.Language() != Language {
		return KindTombstone
	}
	return Kind(n.RawKind())
}

// Lines returns the line tokens of a block in source order.
func (x node) Lines() []*syntax.SyntaxToken {
	list := syntax.OptionalNode(x.n, 0)
	if list == nil {
		return nil
	}
	var out []*syntax.SyntaxToken
	for _, el := range list.Slots() {
		if tok, ok := el.(*syntax.SyntaxToken); ok {
			out = append(out, tok)
		}
	}
	return out
}

func (x node) firstLine() string {
	lines := x.Lines()
	if len(lines) == 0 {
		return ""
	}
	return lines[0].TextTrimmed()
}

// Document is the root: [MD_BLOCK_LIST, EOF].
type Document struct{ node }

// CanCastDocument reports whether k can be viewed as a Document.
func CanCastDocument(k Kind) bool { return k == KindDocument }

// CastDocument views n as a Document, reporting false for any other kind.
func CastDocument(n *syntax.SyntaxNode) (Document, bool) {
	if !CanCastDocument(kindOf(n)) {
		return Document{}, false
	}
	return Document{node{n}}, true
}

// Blocks iterates over the top-level blocks, skipping bogus ones.
func (d Document) Blocks() syntax.AstNodeList[AnyBlock] {
	return syntax.NewAstNodeList(syntax.OptionalNode(d.n, 0), CastAnyBlock)
}

// AnyBlock is a typed block. Blocks without a dedicated type are Block.
type AnyBlock interface {
	syntax.AstNode
	Lines() []*syntax.SyntaxToken
	isBlock()
}

func (Block) isBlock()           {}
func (Header) isBlock()          {}
func (SetextHeader) isBlock()    {}
func (Paragraph) isBlock()       {}
func (FencedCodeBlock) isBlock() {}

// CanCastAnyBlock reports whether k can be viewed as an AnyBlock.
func CanCastAnyBlock(k Kind) bool { return k.IsBlock() && !k.IsBogus() }

// CastAnyBlock views n as an AnyBlock, reporting false for any other kind.
func CastAnyBlock(n *syntax.SyntaxNode) (AnyBlock, bool) {
	switch k := kindOf(n); {
	case k == KindHeader:
		return Header{node{n}}, true
	case k == KindSetextHeader:
		return SetextHeader{node{n}}, true
	case k == KindParagraph:
		return Paragraph{node{n}}, true
	case k == KindFencedCodeBlock:
		return FencedCodeBlock{node{n}}, true
	case CanCastAnyBlock(k):
		return Block{node{n}}, true
	}
	return nil, false
}

// Block is any block kind without a dedicated wrapper.
type Block struct{ node }

// Kind returns the block kind.
func (b Block) Kind() Kind { return kindOf(b.n) }

// Header is an ATX heading such as "## Title".
type Header struct{ node }

// CanCastHeader reports whether k can be viewed as a Header.
func CanCastHeader(k Kind) bool { return k == KindHeader }

// CastHeader views n as a Header, reporting false for any other kind.
func CastHeader(n *syntax.SyntaxNode) (Header, bool) {
	if !CanCastHeader(kindOf(n)) {
		return Header{}, false
	}
	return Header{node{n}}, true
}

// Level returns the number of opening hashes.
func (h Header) Level() int {
	line := h.firstLine()
	return len(line) - len(strings.TrimLeft(line, "#"))
}

// Content returns the heading text without hashes or a closing sequence.
func (h Header) Content() string {
	line := strings.TrimLeft(h.firstLine(), "#")
	line = strings.TrimSpace(line)
	if trimmed := strings.TrimRight(line, "#"); trimmed != line {
		if trimmed == "" || strings.HasSuffix(trimmed, " ") || strings.HasSuffix(trimmed, "\t") {
			line = strings.TrimSpace(trimmed)
		}
	}
	return line
}

// SetextHeader is a heading underlined with '=' or '-'.
type SetextHeader struct{ node }

// CanCastSetextHeader reports whether k can be viewed as a SetextHeader.
func CanCastSetextHeader(k Kind) bool { return k == KindSetextHeader }

// CastSetextHeader views n as a SetextHeader, reporting false for any other kind.
func CastSetextHeader(n *syntax.SyntaxNode) (SetextHeader, bool) {
	if !CanCastSetextHeader(kindOf(n)) {
		return SetextHeader{}, false
	}
	return SetextHeader{node{n}}, true
}

// Level is 1 for '=' underlines and 2 for '-'.
func (h SetextHeader) Level() int {
	for _, tok := range h.Lines() {
		if isUnderline(tok.TextTrimmed(), '=') {
			return 1
		}
	}
	return 2
}

// Content returns the text lines above the underline joined by spaces.
func (h SetextHeader) Content() string {
	var parts []string
	for _, tok := range h.Lines() {
		text := tok.TextTrimmed()
		if isUnderline(text, '=') || isUnderline(text, '-') {
			break
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

func isUnderline(s string, c byte) bool {
	return s != "" && strings.Trim(s, string(c)) == ""
}

// Paragraph is a run of text lines.
type Paragraph struct{ node }

// CanCastParagraph reports whether k can be viewed as a Paragraph.
func CanCastParagraph(k Kind) bool { return k == KindParagraph }

// CastParagraph views n as a Paragraph, reporting false for any other kind.
func CastParagraph(n *syntax.SyntaxNode) (Paragraph, bool) {
	if !CanCastParagraph(kindOf(n)) {
		return Paragraph{}, false
	}
	return Paragraph{node{n}}, true
}

// Text returns the lines joined by newlines.
func (p Paragraph) Text() string {
	var parts []string
	for _, tok := range p.Lines() {
		parts = append(parts, tok.TextTrimmed())
	}
	return strings.Join(parts, "\n")
}

// FencedCodeBlock is a ``` or ~~~ fenced block.
type FencedCodeBlock struct{ node }

// CanCastFencedCodeBlock reports whether k can be viewed as a FencedCodeBlock.
func CanCastFencedCodeBlock(k Kind) bool { return k == KindFencedCodeBlock }

// CastFencedCodeBlock views n as a FencedCodeBlock, reporting false for any other kind.
func CastFencedCodeBlock(n *syntax.SyntaxNode) (FencedCodeBlock, bool) {
	if !CanCastFencedCodeBlock(kindOf(n)) {
		return FencedCodeBlock{}, false
	}
	return FencedCodeBlock{node{n}}, true
}

// Fence returns the opening fence line token.
func (c FencedCodeBlock) Fence() *syntax.SyntaxToken {
	lines := c.Lines()
	if len(lines) == 0 {
		return nil
	}
	return lines[0]
}

// Info returns the info string after the opening fence.
func (c FencedCodeBlock) Info() string {
	line := strings.TrimLeft(c.firstLine(), "> \t")
	_, n := fenceOf(line)
	return strings.TrimSpace(line[n:])
}

// Language returns the first word of the info string.
func (c FencedCodeBlock) Language() string {
	info := c.Info()
	if i := strings.IndexAny(info, " \t{"); i >= 0 {
		info = info[:i]
	}
	return info
}
