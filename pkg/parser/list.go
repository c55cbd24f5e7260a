package parser

import "github.com/yaklabco/gocst/pkg/syntax"

// NodeList describes a homogeneous list production.
type NodeList[K Kind] struct {
	// Kind is the list node kind.
	Kind K
	// Element parses one element. It returns false without consuming
	// anything when the current token cannot start an element.
	Element func(p *Parser[K]) bool
	// AtEnd reports whether the list is finished.
	AtEnd func(p *Parser[K]) bool
	// Recovery wraps tokens that cannot start an element.
	Recovery ParseRecoveryTokenSet[K]
	// Expected describes an element for diagnostics, e.g. "a rule".
	Expected string
}

// ParseNodeList parses elements until the list ends, recovering from
// tokens that cannot start an element.
func ParseNodeList[K Kind](p *Parser[K], l NodeList[K]) CompletedMarker[K] {
	m := p.Start()
	var progress Progress
	for !p.AtEOF() && !l.AtEnd(p) {
		progress.AssertProgressing(p)
		if l.Element(p) {
			continue
		}
		if !recoverElement(p, l.Recovery, l.Expected) {
			break
		}
	}
	return m.Complete(p, l.Kind)
}

func recoverElement[K Kind](p *Parser[K], r ParseRecoveryTokenSet[K], expected string) bool {
	diag := p.ExpectedError(expected)
	bogus, err := r.Recover(p)
	if err != nil {
		return false
	}
	diag.Range = bogus.Range()
	p.Error(diag)
	return true
}

// SeparatedList describes a list whose elements are separated by a token.
type SeparatedList[K Kind] struct {
	NodeList[K]
	// Separator is the separator token kind.
	Separator K
	// AllowTrailing permits a separator after the last element.
	AllowTrailing bool
}

// SeparatedListResult reports separator problems so that the caller can
// turn its enclosing node into a bogus node.
type SeparatedListResult struct {
	TrailingSeparator bool
	MissingSeparator  bool
	MissingElement    bool
	Recovered         bool
}

// HasErrors reports whether any problem was found.
func (r SeparatedListResult) HasErrors() bool {
	return r.MissingSeparator || r.MissingElement || r.Recovered
}

// ParseSeparatedList parses elements separated by l.Separator.
func ParseSeparatedList[K Kind](p *Parser[K], l SeparatedList[K]) (CompletedMarker[K], SeparatedListResult) {
	m := p.Start()
	var res SeparatedListResult
	var progress Progress
	for !p.AtEOF() && !l.AtEnd(p) {
		progress.AssertProgressing(p)
		if !l.Element(p) {
			if p.At(l.Separator) {
				p.Error(p.ExpectedError(l.Expected))
				p.Bump(l.Separator)
				res.MissingElement = true
				continue
			}
			if !recoverElement(p, l.Recovery, l.Expected) {
				break
			}
			res.Recovered = true
		}
		if p.AtEOF() || l.AtEnd(p) {
			break
		}
		if p.At(l.Separator) {
			sep := p.CurRange()
			p.Bump(l.Separator)
			if l.AtEnd(p) {
				res.TrailingSeparator = true
				if !l.AllowTrailing {
					p.ErrorAt(sep, "trailing %s is not allowed", describeKind(l.Separator))
					res.Recovered = true
				}
			}
			continue
		}
		// Tokens that follow an element without a separator are wrapped in
		// a bogus node rather than parsed as the next element.
		res.MissingSeparator = true
		diag := p.ExpectedError(describeKind(l.Separator))
		if _, err := l.Recovery.Recover(p); err != nil {
			diag.Range = syntax.EmptyRangeAt(p.PrevEnd())
			p.Error(diag)
			break
		}
		p.Error(diag)
	}
	return m.Complete(p, l.Kind), res
}
