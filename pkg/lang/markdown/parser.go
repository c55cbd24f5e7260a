package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// Flavor identifies the Markdown flavor used for block discovery.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser builds lossless Markdown trees. goldmark decides where blocks
// start; the tree keeps every source byte.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a parser for flavor. Unknown flavors fall back to CommonMark.
func New(flavor string) *Parser {
	if flavor != FlavorGFM {
		flavor = FlavorCommonMark
	}
	var opts []goldmark.Option
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.Table))
	}
	return &Parser{flavor: flavor, md: goldmark.New(opts...)}
}

// Flavor returns the configured flavor.
func (mp *Parser) Flavor() string {
	return mp.flavor
}

var defaultParser = New(FlavorCommonMark)

// Parse parses src as CommonMark.
func Parse(src string) *syntax.Parse {
	return defaultParser.Parse(src, nil)
}

// Parse builds MD_DOCUMENT > [MD_BLOCK_LIST, EOF]. Every block is
// [MD_LINE_LIST] and runs from its first line to the line before the next
// block; blank lines are trivia. Non-blank lines ahead of the first block,
// such as link reference definitions, form an MD_BOGUS block.
func (mp *Parser) Parse(src string, cache *syntax.NodeCache) *syntax.Parse {
	lines := syntax.NewLineIndex(src)
	doc := mp.md.Parser().Parse(text.NewReader([]byte(src)), gmparser.WithContext(gmparser.NewContext()))
	pl := &placer{src: src, lines: lines}
	blocks := pl.topLevel(doc)

	p := parser.New(Language, src, lexLines(src, lines))
	root := p.Start()
	list := p.Start()
	if len(blocks) == 0 {
		blocks = []block{{kind: KindBogus, first: lines.LineCount()}}
	}
	leadingEnd := len(src)
	if blocks[0].first < lines.LineCount() {
		leadingEnd = lines.Line(blocks[0].first).Start
	}
	if !p.AtEOF() && p.CurRange().Start < leadingEnd {
		buildBlock(p, KindBogus, leadingEnd)
	}
	for i, b := range blocks {
		if b.first >= lines.LineCount() {
			break
		}
		end := len(src)
		if i+1 < len(blocks) && blocks[i+1].first < lines.LineCount() {
			end = lines.Line(blocks[i+1].first).Start
		}
		if !p.AtEOF() && p.CurRange().Start < end {
			buildBlock(p, b.kind, end)
		}
	}
	list.Complete(p, KindBlockList)
	p.Bump(KindEOF)
	root.Complete(p, KindDocument)
	return p.Build(cache)
}

// buildBlock wraps every line token starting before end.
func buildBlock(p *parser.Parser[Kind], kind Kind, end int) {
	m := p.Start()
	lines := p.Start()
	for !p.AtEOF() && p.CurRange().Start < end {
		p.Bump(KindTextual)
	}
	lines.Complete(p, KindLineList)
	m.Complete(p, kind)
}
