package grit

import (
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// Parse builds a token-level tree: GRIT_ROOT > [GRIT_TOKEN_LIST, EOF].
// Error tokens are wrapped in GRIT_BOGUS nodes next to their lexer
// diagnostics. Grit has no grammar here, only a lossless token tree.
func Parse(src string) *syntax.Parse {
	return ParseWithCache(src, nil)
}

// ParseWithCache is Parse with green node deduplication through cache.
func ParseWithCache(src string, cache *syntax.NodeCache) *syntax.Parse {
	tokens, diags := lex(src)
	p := parser.New(Language, src, tokens)
	for _, d := range diags {
		p.Error(d)
	}

	root := p.Start()
	list := p.Start()
	var progress parser.Progress
	for !p.AtEOF() {
		progress.AssertProgressing(p)
		if p.At(KindErrorToken) {
			m := p.Start()
			p.Bump(KindErrorToken)
			m.Complete(p, KindBogus)
			continue
		}
		p.BumpAny()
	}
	list.Complete(p, KindTokenList)
	p.Bump(KindEOF)
	root.Complete(p, KindRoot)
	return p.Build(cache)
}
