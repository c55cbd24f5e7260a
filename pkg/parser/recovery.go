package parser

import (
	"errors"
	"fmt"
)

// Recovery errors. Both mean that nothing could be consumed and the caller
// must decide how to continue.
var (
	ErrRecoveryAtEOF           = errors.New("recovery: at end of file")
	ErrRecoveryAtRecoveryToken = errors.New("recovery: at recovery token")
)

// ParseRecoveryTokenSet recovers by wrapping every token up to the next
// recovery token in a bogus node.
type ParseRecoveryTokenSet[K Kind] struct {
	// BogusKind is the kind of the node wrapping the skipped tokens.
	BogusKind K
	// Recovery lists the kinds at which recovery stops.
	Recovery TokenSet[K]
	// LineBreak also stops recovery at a token preceded by a newline.
	LineBreak bool
}

// NewRecovery creates a recovery set.
func NewRecovery[K Kind](bogus K, recovery TokenSet[K]) ParseRecoveryTokenSet[K] {
	return ParseRecoveryTokenSet[K]{BogusKind: bogus, Recovery: recovery}
}

// EnableRecoveryOnLineBreak returns a copy that also stops at line breaks.
func (r ParseRecoveryTokenSet[K]) EnableRecoveryOnLineBreak() ParseRecoveryTokenSet[K] {
	r.LineBreak = true
	return r
}

func (r ParseRecoveryTokenSet[K]) isAtRecovered(p *Parser[K]) bool {
	return p.AtTS(r.Recovery) || (r.LineBreak && p.HasPrecedingLineBreak())
}

// Recover consumes at least one token into a bogus node, stopping at EOF
// or a recovery token.
func (r ParseRecoveryTokenSet[K]) Recover(p *Parser[K]) (CompletedMarker[K], error) {
	if p.AtEOF() {
		return CompletedMarker[K]{}, ErrRecoveryAtEOF
	}
	if r.isAtRecovered(p) {
		return CompletedMarker[K]{}, ErrRecoveryAtRecoveryToken
	}
	m := p.Start()
	p.BumpAny()
	for !p.AtEOF() && !r.isAtRecovered(p) {
		p.BumpAny()
	}
	return m.Complete(p, r.BogusKind), nil
}

// Progress guards parse loops against running forever.
type Progress struct {
	pos     int
	started bool
}

// AssertProgressing panics if the parser has not consumed a token since
// the previous call. Call it at the top of every loop iteration.
func (pp *Progress) AssertProgressing(p interface{ TokenPos() int }) {
	pos := p.TokenPos()
	if pp.started && pos <= pp.pos {
		panic(fmt.Sprintf("parser: no progress at token %d", pos))
	}
	pp.pos = pos
	pp.started = true
}
