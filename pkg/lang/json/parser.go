package json

import (
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

type jsonParser = parser.Parser[Kind]

var (
	valueStart = parser.NewTokenSet(
		KindString, KindNumber, KindTrueKw, KindFalseKw, KindNullKw,
		KindLBrack, KindLCurly, KindIdent, KindErrorToken,
	)
	arrayRecovery  = parser.NewTokenSet(KindComma, KindRBrack, KindRCurly)
	memberRecovery = parser.NewTokenSet(KindComma, KindRCurly, KindRBrack)
)

// Parse parses a JSON document. Comments are accepted as trivia.
func Parse(src string) *syntax.Parse {
	return ParseWithCache(src, nil)
}

// ParseWithCache parses a JSON document, deduplicating green nodes through cache.
func ParseWithCache(src string, cache *syntax.NodeCache) *syntax.Parse {
	tokens, lexDiags := lex(src)
	p := parser.New(Language, src, tokens)
	for _, d := range lexDiags {
		p.Error(d)
	}
	parseRoot(p)
	return p.Build(cache)
}

// parseRoot builds [value?, EOF]. Input after the first value is folded
// into a bogus value together with it.
func parseRoot(p *jsonParser) {
	m := p.Start()
	switch {
	case p.AtEOF():
		p.Missing()
	case p.AtTS(valueStart):
		value := parseValue(p)
		if !p.AtEOF() {
			junk := p.CurRange().Start
			bogus := value.Precede(p)
			for !p.AtEOF() {
				p.BumpAny()
			}
			bogus.Complete(p, KindBogusValue)
			p.ErrorAt(syntax.TextRange{Start: junk, End: p.PrevEnd()}, "end of file expected")
		}
	default:
		d := p.ExpectedError("a JSON value")
		bogus := p.Start()
		for !p.AtEOF() {
			p.BumpAny()
		}
		bogus.Complete(p, KindBogusValue)
		p.Error(d)
	}
	p.Bump(KindEOF)
	m.Complete(p, KindRoot)
}

// tryValue parses a value if one starts here.
func tryValue(p *jsonParser) bool {
	if !p.AtTS(valueStart) {
		return false
	}
	parseValue(p)
	return true
}

// parseValue parses the value at the current token, which must be in valueStart.
func parseValue(p *jsonParser) parser.CompletedMarker[Kind] {
	switch p.Cur() {
	case KindLBrack:
		return parseArray(p)
	case KindLCurly:
		return parseObject(p)
	case KindString:
		return bumpAs(p, KindStringValue)
	case KindNumber:
		return bumpAs(p, KindNumberValue)
	case KindTrueKw, KindFalseKw:
		return bumpAs(p, KindBooleanValue)
	case KindNullKw:
		return bumpAs(p, KindNullValue)
	case KindIdent:
		p.ErrorAt(p.CurRange(), "'%s' is not a valid JSON value", p.CurText())
		return bumpAs(p, KindBogusValue)
	default:
		return bumpAs(p, KindBogusValue)
	}
}

func bumpAs(p *jsonParser, kind Kind) parser.CompletedMarker[Kind] {
	m := p.Start()
	p.BumpAny()
	return m.Complete(p, kind)
}

// parseArray parses [ELEMENT_LIST] delimited by brackets.
func parseArray(p *jsonParser) parser.CompletedMarker[Kind] {
	m := p.Start()
	p.Bump(KindLBrack)
	_, res := parser.ParseSeparatedList(p, parser.SeparatedList[Kind]{
		NodeList: parser.NodeList[Kind]{
			Kind:     KindArrayElementList,
			Element:  tryValue,
			AtEnd:    func(p *jsonParser) bool { return p.At(KindRBrack) },
			Recovery: parser.NewRecovery(KindBogusValue, arrayRecovery),
			Expected: "an array element",
		},
		Separator: KindComma,
	})
	closed := p.Expect(KindRBrack)
	if res.HasErrors() || !closed {
		return m.Complete(p, KindBogusValue)
	}
	return m.Complete(p, KindArrayValue)
}

// parseObject parses {MEMBER_LIST} delimited by braces.
func parseObject(p *jsonParser) parser.CompletedMarker[Kind] {
	m := p.Start()
	p.Bump(KindLCurly)
	_, res := parser.ParseSeparatedList(p, parser.SeparatedList[Kind]{
		NodeList: parser.NodeList[Kind]{
			Kind:     KindMemberList,
			Element:  parseMember,
			AtEnd:    func(p *jsonParser) bool { return p.At(KindRCurly) },
			Recovery: parser.NewRecovery(KindBogus, memberRecovery),
			Expected: "a property",
		},
		Separator: KindComma,
	})
	closed := p.Expect(KindRCurly)
	if res.HasErrors() || !closed {
		return m.Complete(p, KindBogusValue)
	}
	return m.Complete(p, KindObjectValue)
}

// parseMember parses [MEMBER_NAME, :, value]. Unquoted names become a
// bogus member name; a missing colon or value makes the member bogus.
func parseMember(p *jsonParser) bool {
	if !p.At(KindString) && !p.At(KindIdent) {
		return false
	}
	m := p.Start()
	if p.At(KindString) {
		bumpAs(p, KindMemberName)
	} else {
		p.ErrorAt(p.CurRange(), "property names must be double-quoted strings")
		bumpAs(p, KindBogusMemberName)
	}

	ok := p.Expect(KindColon)
	if p.AtTS(valueStart) {
		parseValue(p)
	} else {
		p.Missing()
		d := p.ExpectedError("a value")
		d.Range = syntax.EmptyRangeAt(p.PrevEnd())
		p.Error(d)
		ok = false
	}
	if !ok {
		m.Complete(p, KindBogus)
		return true
	}
	m.Complete(p, KindMember)
	return true
}
