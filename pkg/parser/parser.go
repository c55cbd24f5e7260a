package parser

import (
	"fmt"

	"github.com/yaklabco/gocst/pkg/syntax"
)

// Diagnostic categories produced by the shared infrastructure.
const (
	CategorySyntax = "syntax"
	CategoryLexer  = "lexer"
)

// Parser drives a recursive-descent parse over a token source and records
// events and diagnostics.
type Parser[K Kind] struct {
	lang    syntax.Language
	source  *TokenSource[K]
	events  []Event[K]
	diags   Diagnostics
	lastEnd int
}

// New creates a parser for lang over the lexed tokens of src.
func New[K Kind](lang syntax.Language, src string, tokens []LexedToken[K]) *Parser[K] {
	return &Parser[K]{lang: lang, source: NewTokenSource(src, tokens)}
}

// Language returns the parser's language.
func (p *Parser[K]) Language() syntax.Language {
	return p.lang
}

// Source returns the source text.
func (p *Parser[K]) Source() string {
	return p.source.Source()
}

// TokenSource returns the underlying token source.
func (p *Parser[K]) TokenSource() *TokenSource[K] {
	return p.source
}

// TokenPos returns the position of the current non-trivia token. It only
// grows as the parser consumes input.
func (p *Parser[K]) TokenPos() int {
	return p.source.Position()
}

// Cur returns the kind of the current token.
func (p *Parser[K]) Cur() K {
	return p.source.Current().Kind
}

// At reports whether the current token is of kind k.
func (p *Parser[K]) At(k K) bool {
	return p.Cur() == k
}

// AtTS reports whether the current token is in ts.
func (p *Parser[K]) AtTS(ts TokenSet[K]) bool {
	return ts.Contains(p.Cur())
}

// AtEOF reports whether all input has been consumed.
func (p *Parser[K]) AtEOF() bool {
	return p.At(K(syntax.EOF))
}

// Nth returns the kind of the n-th token after the current one.
func (p *Parser[K]) Nth(n int) K {
	return p.source.Nth(n).Kind
}

// NthAt reports whether the n-th token after the current one is of kind k.
func (p *Parser[K]) NthAt(n int, k K) bool {
	return p.Nth(n) == k
}

// CurRange returns the range of the current token.
func (p *Parser[K]) CurRange() syntax.TextRange {
	return p.source.Current().Range()
}

// CurText returns the text of the current token.
func (p *Parser[K]) CurText() string {
	return p.source.Current().Range().Slice(p.source.Source())
}

// NthText returns the text of the n-th token after the current one.
func (p *Parser[K]) NthText(n int) string {
	return p.source.Nth(n).Range().Slice(p.source.Source())
}

// HasPrecedingLineBreak reports whether a newline precedes the current token.
func (p *Parser[K]) HasPrecedingLineBreak() bool {
	return p.source.HasPrecedingLineBreak()
}

// HasPrecedingTrivia reports whether any trivia precedes the current token.
func (p *Parser[K]) HasPrecedingTrivia() bool {
	return p.source.HasPrecedingTrivia()
}

// PrevEnd returns the end offset of the last consumed token.
func (p *Parser[K]) PrevEnd() int {
	return p.lastEnd
}

// Bump consumes the current token, which must be of kind k.
func (p *Parser[K]) Bump(k K) {
	if !p.At(k) {
		panic(fmt.Sprintf("parser: Bump(%s) at %s", k, p.Cur()))
	}
	if k == K(syntax.EOF) {
		p.BumpEOF()
		return
	}
	p.BumpAny()
}

// BumpAny consumes the current token whatever its kind. At EOF it does nothing.
func (p *Parser[K]) BumpAny() {
	if p.AtEOF() {
		return
	}
	p.BumpRemap(p.Cur())
}

// BumpRemap consumes the current token, recording it as kind k. Keywords
// lexed as identifiers are remapped this way.
func (p *Parser[K]) BumpRemap(k K) {
	tok := p.source.Current()
	p.events = append(p.events, Event[K]{Kind: EventToken, NodeKind: k, TokenIndex: p.source.CurrentIndex()})
	p.lastEnd = tok.End
	p.source.Advance()
}

// BumpEOF consumes the EOF token. It must be called exactly once by the
// root production.
func (p *Parser[K]) BumpEOF() {
	if !p.AtEOF() {
		panic(fmt.Sprintf("parser: BumpEOF at %s", p.Cur()))
	}
	p.events = append(p.events, Event[K]{Kind: EventToken, NodeKind: K(syntax.EOF), TokenIndex: p.source.CurrentIndex()})
}

// Skip turns the current token into skipped trivia. The text stays in the
// tree but belongs to no node.
func (p *Parser[K]) Skip() {
	p.source.SkipAsTrivia()
}

// Eat consumes the current token if it is of kind k.
func (p *Parser[K]) Eat(k K) bool {
	if !p.At(k) {
		return false
	}
	p.Bump(k)
	return true
}

// Expect consumes a token of kind k or reports it as missing. A missing
// token leaves an empty slot. The diagnostic is an empty range at the end
// of the previous token, which keeps it inside the enclosing node.
func (p *Parser[K]) Expect(k K) bool {
	if p.Eat(k) {
		return true
	}
	p.Missing()
	d := p.ExpectedError(describeKind(k))
	d.Range = syntax.EmptyRangeAt(p.lastEnd)
	p.Error(d)
	return false
}

// Missing records an empty slot in the current node.
func (p *Parser[K]) Missing() {
	p.events = append(p.events, Event[K]{Kind: EventMissing})
}

// Start opens a node. The returned marker must be completed or abandoned.
func (p *Parser[K]) Start() Marker[K] {
	pos := len(p.events)
	p.events = append(p.events, Event[K]{Kind: EventStart, NodeKind: K(syntax.Tombstone)})
	return Marker[K]{pos: pos, start: p.CurRange().Start}
}

// Error records a diagnostic.
func (p *Parser[K]) Error(d syntax.Diagnostic) {
	if d.Category == "" {
		d.Category = CategorySyntax
	}
	p.diags.Add(d)
}

// ErrorAt records a syntax diagnostic for r.
func (p *Parser[K]) ErrorAt(r syntax.TextRange, format string, args ...any) {
	p.Error(syntax.Diagnostic{Range: r, Message: fmt.Sprintf(format, args...)})
}

// ExpectedError builds an "expected X" diagnostic for the current
// position: the range of the current token, or an empty range after the
// previous token when the parser is at EOF.
func (p *Parser[K]) ExpectedError(what string) syntax.Diagnostic {
	if p.AtEOF() {
		return syntax.Diagnostic{
			Range:   syntax.EmptyRangeAt(p.lastEnd),
			Message: fmt.Sprintf("expected %s but instead the file ends", what),
		}
	}
	return syntax.Diagnostic{
		Range:   p.CurRange(),
		Message: fmt.Sprintf("expected %s but instead found '%s'", what, p.CurText()),
	}
}

// Finish returns the recorded events and diagnostics.
func (p *Parser[K]) Finish() ([]Event[K], []syntax.Diagnostic) {
	return p.events, p.diags.Sorted()
}

// Build replays the events into a lossless tree. The cache may be nil.
func (p *Parser[K]) Build(cache *syntax.NodeCache) *syntax.Parse {
	events, diags := p.Finish()
	sink := NewLosslessTreeSink(p.lang, p.source.Source(), p.source.Tokens(), cache)
	ProcessEvents(sink, events)
	return &syntax.Parse{Root: sink.Finish(), Diagnostics: diags}
}

func describeKind(k syntax.Kind) string {
	if name, ok := k.Name(); ok && name != k.String() {
		return "'" + name + "'"
	}
	return k.String()
}
