package css

import (
	"strings"

	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

type cssParser = parser.Parser[Kind]

var (
	selectorStart = parser.NewTokenSet(
		KindIdent, KindDot, KindHash, KindStar, KindColon, KindColon2, KindLBrack, KindAmp,
	)
	ruleStart        = selectorStart.With(KindAtKeyword)
	subSelectorStart = parser.NewTokenSet(KindDot, KindHash, KindColon, KindColon2, KindLBrack)
	combinators      = parser.NewTokenSet(KindGt, KindPlus, KindTilde)
	attributeMatcher = parser.NewTokenSet(KindEq, KindTildeEq, KindPipeEq, KindCaretEq, KindDollarEq, KindStarEq)
	blockBoundary    = parser.NewTokenSet(KindLCurly, KindRCurly, KindSemicolon)

	valueStart = parser.NewTokenSet(
		KindIdent, KindNumber, KindDimension, KindPercentage, KindString, KindHash,
		KindLParen, KindErrorToken,
	)
	valueDelimiter = parser.NewTokenSet(
		KindComma, KindSlash, KindPlus, KindMinus, KindStar, KindEq, KindGt, KindTilde,
		KindDot, KindPipe, KindAmp, KindLBrack, KindRBrack,
	)
)

// Pseudo-classes and pseudo-elements whose arguments are selectors.
var selectorArgumentPseudos = map[string]bool{
	"not": true, "is": true, "where": true, "has": true, "matches": true,
	"-webkit-any": true, "-moz-any": true, "host": true, "host-context": true,
	"current": true, "past": true, "future": true, "slotted": true, "cue": true,
}

// Parse parses a stylesheet. The tree always covers the whole input.
func Parse(src string) *syntax.Parse {
	return ParseWithCache(src, nil)
}

// ParseWithCache parses a stylesheet, deduplicating green nodes through cache.
func ParseWithCache(src string, cache *syntax.NodeCache) *syntax.Parse {
	tokens := Lex(src)
	p := parser.New(Language, src, tokens)
	reportLexErrors(p, tokens)
	parseRoot(p)
	return p.Build(cache)
}

// reportLexErrors records one lexer diagnostic per error token. The
// grammar wraps every error token in a bogus node.
func reportLexErrors(p *cssParser, tokens []parser.LexedToken[Kind]) {
	for _, tok := range tokens {
		if tok.Kind != KindErrorToken {
			continue
		}
		text := tok.Range().Slice(p.Source())
		var msg string
		switch {
		case strings.HasPrefix(text, "/*"):
			msg = "unterminated block comment"
		case strings.HasPrefix(text, `"`), strings.HasPrefix(text, "'"):
			msg = "unterminated string literal"
		case text == "@":
			msg = "expected an at-rule name after '@'"
		case text == "#":
			msg = "expected a name after '#'"
		default:
			msg = "unexpected character '" + text + "'"
		}
		p.Error(syntax.Diagnostic{Range: tok.Range(), Message: msg, Category: parser.CategoryLexer})
	}
}

// expectedHere reports a missing construct at the end of the previous token.
func expectedHere(p *cssParser, what string) {
	d := p.ExpectedError(what)
	d.Range = syntax.EmptyRangeAt(p.PrevEnd())
	p.Error(d)
}

func bumpAs(p *cssParser, kind Kind) {
	m := p.Start()
	p.BumpAny()
	m.Complete(p, kind)
}

// adjacentToNext reports whether the next token follows the current one
// without trivia in between.
func adjacentToNext(p *cssParser) bool {
	return p.TokenSource().Nth(1).Start == p.CurRange().End
}

// skipUntil consumes tokens into the open node until one in stop.
func skipUntil(p *cssParser, stop parser.TokenSet[Kind]) {
	for !p.AtEOF() && !p.AtTS(stop) {
		p.BumpAny()
	}
}

func parseRoot(p *cssParser) {
	m := p.Start()
	parseRuleList(p, func(*cssParser) bool { return false }, ruleStart)
	p.Bump(KindEOF)
	m.Complete(p, KindRoot)
}

func parseRuleList(p *cssParser, atEnd func(*cssParser) bool, recovery parser.TokenSet[Kind]) {
	parser.ParseNodeList(p, parser.NodeList[Kind]{
		Kind:     KindRuleList,
		Element:  parseRule,
		AtEnd:    atEnd,
		Recovery: parser.NewRecovery(KindBogusRule, recovery),
		Expected: "a qualified rule or an at-rule",
	})
}

func atRCurly(p *cssParser) bool {
	return p.At(KindRCurly)
}

func parseRule(p *cssParser) bool {
	switch {
	case p.At(KindAtKeyword):
		parseAtRule(p)
	case p.AtTS(selectorStart):
		parseQualifiedRule(p)
	default:
		return false
	}
	return true
}

func parseQualifiedRule(p *cssParser) {
	m := p.Start()
	ok := parseSelectorList(p, func(p *cssParser) bool { return p.AtTS(blockBoundary) }, blockBoundary.With(KindComma))
	if !p.At(KindLCurly) {
		p.Missing()
		expectedHere(p, "'{'")
		m.Complete(p, KindBogusRule)
		return
	}
	parseDeclarationBlock(p)
	if !ok {
		m.Complete(p, KindBogusRule)
		return
	}
	m.Complete(p, KindQualifiedRule)
}

// parseSelectorList parses a comma-separated selector list. It reports
// false when the list had to be turned into a bogus selector.
func parseSelectorList(p *cssParser, atEnd func(*cssParser) bool, recovery parser.TokenSet[Kind]) bool {
	list, res := parser.ParseSeparatedList(p, parser.SeparatedList[Kind]{
		NodeList: parser.NodeList[Kind]{
			Kind:     KindSelectorList,
			Element:  parseSelector,
			AtEnd:    atEnd,
			Recovery: parser.NewRecovery(KindBogusSelector, recovery),
			Expected: "a selector",
		},
		Separator: KindComma,
	})
	if res.HasErrors() {
		list.ChangeToBogus(p)
		return false
	}
	return true
}

// parseSelector parses a complex selector, nesting combinators to the left:
// `a > b c` is ((a > b) c).
func parseSelector(p *cssParser) bool {
	if !p.AtTS(selectorStart) {
		return false
	}
	left := parseCompoundSelector(p)
	for {
		explicit := p.AtTS(combinators)
		if !explicit && !(p.AtTS(selectorStart) && p.HasPrecedingTrivia()) {
			return true
		}
		m := left.Precede(p)
		if explicit {
			p.BumpAny()
		} else {
			// Descendant combinator.
			p.Missing()
		}
		if !p.AtTS(selectorStart) {
			expectedHere(p, "a compound selector")
			m.Complete(p, KindBogusSelector)
			return true
		}
		parseCompoundSelector(p)
		left = m.Complete(p, KindComplexSelector)
	}
}

func parseCompoundSelector(p *cssParser) parser.CompletedMarker[Kind] {
	m := p.Start()
	hasSimple := true
	switch {
	case p.At(KindIdent):
		bumpAs(p, KindTypeSelector)
	case p.At(KindStar):
		bumpAs(p, KindUniversalSelector)
	case p.At(KindAmp):
		bumpAs(p, KindNestingSelector)
	default:
		hasSimple = false
		p.Missing()
	}
	parseSubSelectorList(p, !hasSimple)
	return m.Complete(p, KindCompoundSelector)
}

func parseSubSelectorList(p *cssParser, leading bool) {
	first := leading
	parser.ParseNodeList(p, parser.NodeList[Kind]{
		Kind: KindSubSelectorList,
		Element: func(p *cssParser) bool {
			first = false
			return parseSubSelector(p)
		},
		AtEnd: func(p *cssParser) bool {
			return !p.AtTS(subSelectorStart) || (!first && p.HasPrecedingTrivia())
		},
		Recovery: parser.NewRecovery(KindBogusSubSelector, selectorStart),
		Expected: "a sub-selector",
	})
}

func parseSubSelector(p *cssParser) bool {
	switch p.Cur() {
	case KindDot:
		parseClassSelector(p)
	case KindHash:
		bumpAs(p, KindIDSelector)
	case KindLBrack:
		parseAttributeSelector(p)
	case KindColon:
		parsePseudoClass(p)
	case KindColon2:
		parsePseudoElement(p)
	default:
		return false
	}
	return true
}

// eatAdjacentIdent consumes an identifier that directly follows the
// previous token.
func eatAdjacentIdent(p *cssParser) bool {
	if !p.At(KindIdent) || p.HasPrecedingTrivia() {
		p.Missing()
		expectedHere(p, "an identifier")
		return false
	}
	p.Bump(KindIdent)
	return true
}

func parseClassSelector(p *cssParser) {
	m := p.Start()
	p.Bump(KindDot)
	if !eatAdjacentIdent(p) {
		m.Complete(p, KindBogusSubSelector)
		return
	}
	m.Complete(p, KindClassSelector)
}

var attributeRecovery = parser.NewTokenSet(KindRBrack).Union(blockBoundary).With(KindComma)

func parseAttributeSelector(p *cssParser) {
	m := p.Start()
	p.Bump(KindLBrack)
	ok := p.Expect(KindIdent)
	if ok && p.AtTS(attributeMatcher) {
		mm := p.Start()
		p.BumpAny()
		if p.At(KindIdent) || p.At(KindString) {
			p.BumpAny()
		} else {
			p.Missing()
			expectedHere(p, "an identifier or a string")
			ok = false
		}
		// Case-sensitivity modifier.
		if ok && p.At(KindIdent) && (strings.EqualFold(p.CurText(), "i") || strings.EqualFold(p.CurText(), "s")) {
			p.Bump(KindIdent)
		} else {
			p.Missing()
		}
		if ok {
			mm.Complete(p, KindAttributeMatcher)
		} else {
			mm.Complete(p, KindBogusSubSelector)
		}
	} else if ok {
		p.Missing()
	}
	if ok && p.Expect(KindRBrack) {
		m.Complete(p, KindAttributeSelector)
		return
	}
	skipUntil(p, attributeRecovery)
	p.Eat(KindRBrack)
	m.Complete(p, KindBogusSubSelector)
}

// atAdjacentParen reports whether the current token is a '(' that directly
// follows the previous token.
func atAdjacentParen(p *cssParser) bool {
	return p.At(KindLParen) && !p.HasPrecedingTrivia()
}

func parsePseudoClass(p *cssParser) {
	m := p.Start()
	p.Bump(KindColon)
	name := p.CurText()
	if !eatAdjacentIdent(p) {
		m.Complete(p, KindBogusPseudoClass)
		return
	}
	if !atAdjacentParen(p) {
		m.Complete(p, KindPseudoClassSelector)
		return
	}
	if parsePseudoArguments(p, name) {
		m.Complete(p, KindPseudoClassFunctionSelector)
		return
	}
	m.Complete(p, KindBogusPseudoClass)
}

func parsePseudoElement(p *cssParser) {
	m := p.Start()
	p.Bump(KindColon2)
	name := p.CurText()
	if !eatAdjacentIdent(p) {
		m.Complete(p, KindBogusSubSelector)
		return
	}
	if !atAdjacentParen(p) {
		m.Complete(p, KindPseudoElementSelector)
		return
	}
	if parsePseudoArguments(p, name) {
		m.Complete(p, KindPseudoElementFunctionSelector)
		return
	}
	m.Complete(p, KindBogusSubSelector)
}

// parsePseudoArguments parses `( ... )` after the pseudo selector name.
func parsePseudoArguments(p *cssParser, name string) bool {
	p.Bump(KindLParen)
	ok := true
	if selectorArgumentPseudos[strings.ToLower(name)] {
		atEnd := func(p *cssParser) bool { return p.At(KindRParen) || p.AtTS(blockBoundary) }
		empty := p.At(KindRParen)
		ok = parseSelectorList(p, atEnd, blockBoundary.With(KindRParen, KindComma))
		if empty {
			expectedHere(p, "a selector")
			ok = false
		}
	} else {
		parseComponentValueList(p, valueParenthesized)
	}
	return p.Expect(KindRParen) && ok
}

func parseDeclarationBlock(p *cssParser) {
	m := p.Start()
	p.Bump(KindLCurly)
	parseDeclarationList(p)
	if !p.Expect(KindRCurly) {
		m.Complete(p, KindBogusBlock)
		return
	}
	m.Complete(p, KindDeclarationBlock)
}

// parseTolerantDeclarationBlock parses a declaration block whose '{' may
// be missing. It reports whether the '{' was present.
func parseTolerantDeclarationBlock(p *cssParser) bool {
	m := p.Start()
	opened := p.Eat(KindLCurly)
	if !opened {
		p.Missing()
		p.Error(p.ExpectedError("'{'"))
	}
	parseDeclarationList(p)
	closed := p.Expect(KindRCurly)
	if opened && closed {
		m.Complete(p, KindDeclarationBlock)
	} else {
		m.Complete(p, KindBogusBlock)
	}
	return opened
}

func parseDeclarationList(p *cssParser) {
	parser.ParseNodeList(p, parser.NodeList[Kind]{
		Kind:     KindDeclarationList,
		Element:  parseDeclarationItem,
		AtEnd:    atRCurly,
		Recovery: parser.NewRecovery(KindBogusDeclarationItem, parser.NewTokenSet(KindSemicolon, KindRCurly)),
		Expected: "a declaration, an at-rule or a nested rule",
	})
}

func parseDeclarationItem(p *cssParser) bool {
	switch {
	case p.At(KindSemicolon):
		bumpAs(p, KindEmptyDeclaration)
	case p.At(KindIdent) && p.NthAt(1, KindColon) && !looksLikeNestedRule(p):
		parseDeclaration(p)
	case p.At(KindAtKeyword):
		parseAtRule(p)
	case p.AtTS(selectorStart):
		parseQualifiedRule(p)
	default:
		return false
	}
	return true
}

// looksLikeNestedRule reports whether `ident:` starts a nested rule such as
// `a:hover { }` rather than a declaration: a '{' comes before any ';' or '}'.
func looksLikeNestedRule(p *cssParser) bool {
	for n := 2; ; n++ {
		switch p.Nth(n) {
		case KindLCurly:
			return true
		case KindSemicolon, KindRCurly, KindEOF:
			return false
		}
	}
}

func parseDeclaration(p *cssParser) {
	m := p.Start()
	property := p.CurText()
	p.Bump(KindIdent)
	p.Bump(KindColon)
	ok := true
	values := parseComponentValueList(p, valueDeclaration)
	if values.IsEmpty() && !strings.HasPrefix(property, "--") {
		expectedHere(p, "a value")
		ok = false
	}
	if p.At(KindBang) {
		im := p.Start()
		p.Bump(KindBang)
		if p.At(KindIdent) && strings.EqualFold(p.CurText(), "important") {
			p.BumpRemap(KindImportantKw)
			im.Complete(p, KindImportant)
		} else {
			p.Missing()
			expectedHere(p, "'important'")
			im.Complete(p, KindBogusDeclarationItem)
		}
	} else {
		p.Missing()
	}
	if !p.Eat(KindSemicolon) {
		p.Missing()
		if !p.At(KindRCurly) && !p.AtEOF() {
			expectedHere(p, "';'")
			ok = false
		}
	}
	if ok {
		m.Complete(p, KindDeclaration)
	} else {
		m.Complete(p, KindBogusDeclarationItem)
	}
}

type valueContext uint8

const (
	valueDeclaration valueContext = iota
	valuePrelude
	valueParenthesized
	valueBlock
)

func atComponentValue(p *cssParser, ctx valueContext) bool {
	if p.AtTS(valueStart) || p.AtTS(valueDelimiter) {
		return true
	}
	switch ctx {
	case valuePrelude, valueParenthesized:
		return p.At(KindColon) || p.At(KindColon2)
	case valueBlock:
		return !p.At(KindRCurly)
	}
	return false
}

func parseComponentValueList(p *cssParser, ctx valueContext) parser.CompletedMarker[Kind] {
	return parser.ParseNodeList(p, parser.NodeList[Kind]{
		Kind: KindComponentValueList,
		Element: func(p *cssParser) bool {
			parseComponentValue(p, ctx)
			return true
		},
		AtEnd:    func(p *cssParser) bool { return !atComponentValue(p, ctx) },
		Recovery: parser.NewRecovery(KindBogusPropertyValue, blockBoundary),
		Expected: "a value",
	})
}

func parseComponentValue(p *cssParser, ctx valueContext) {
	switch p.Cur() {
	case KindIdent:
		if adjacentToNext(p) && p.NthAt(1, KindLParen) {
			m := p.Start()
			p.Bump(KindIdent)
			parseParenthesizedTail(p, m, KindFunction)
			return
		}
		bumpAs(p, KindIdentifier)
	case KindNumber:
		bumpAs(p, KindNumberValue)
	case KindDimension:
		bumpAs(p, KindDimensionValue)
	case KindPercentage:
		bumpAs(p, KindPercentageValue)
	case KindString:
		bumpAs(p, KindStringValue)
	case KindHash:
		bumpAs(p, KindColor)
	case KindLParen:
		parseParenthesizedTail(p, p.Start(), KindParenthesizedValue)
	case KindErrorToken:
		bumpAs(p, KindBogusPropertyValue)
	case KindLCurly:
		if ctx == valueBlock {
			parseUnknownBlock(p)
			return
		}
		bumpAs(p, KindDelimiter)
	default:
		bumpAs(p, KindDelimiter)
	}
}

func parseParenthesizedTail(p *cssParser, m parser.Marker[Kind], kind Kind) {
	p.Bump(KindLParen)
	parseComponentValueList(p, valueParenthesized)
	if !p.Expect(KindRParen) {
		kind = KindBogusPropertyValue
	}
	m.Complete(p, kind)
}

func parseAtRule(p *cssParser) {
	name := strings.ToLower(strings.TrimPrefix(p.CurText(), "@"))
	switch name {
	case "keyframes", "-webkit-keyframes", "-moz-keyframes", "-o-keyframes":
		parseKeyframesAtRule(p)
	case "media":
		parseMediaAtRule(p)
	case "charset":
		parseCharsetAtRule(p)
	case "import":
		parseImportAtRule(p)
	default:
		parseUnknownAtRule(p)
	}
}

func parseKeyframesAtRule(p *cssParser) {
	m := p.Start()
	p.Bump(KindAtKeyword)
	ok := true
	if p.At(KindIdent) || p.At(KindString) {
		p.BumpAny()
	} else {
		p.Missing()
		expectedHere(p, "a keyframes name")
		ok = false
	}

	b := p.Start()
	opened := p.Expect(KindLCurly)
	parser.ParseNodeList(p, parser.NodeList[Kind]{
		Kind:     KindKeyframesItemList,
		Element:  parseKeyframesItem,
		AtEnd:    atRCurly,
		Recovery: parser.NewRecovery(KindBogusKeyframesItem, parser.NewTokenSet(KindRCurly, KindIdent, KindPercentage)),
		Expected: "a keyframes selector",
	})
	closed := p.Expect(KindRCurly)
	if opened && closed {
		b.Complete(p, KindKeyframesBlock)
	} else {
		b.Complete(p, KindBogusBlock)
	}

	if ok && opened && closed {
		m.Complete(p, KindKeyframesAtRule)
		return
	}
	m.Complete(p, KindBogusAtRule)
}

func atKeyframesSelectorListEnd(p *cssParser) bool {
	if p.At(KindIdent) {
		// `from color: red` without '{': the declaration starts here.
		return p.NthAt(1, KindColon)
	}
	return !p.At(KindPercentage) && !p.At(KindComma)
}

func parseKeyframesItem(p *cssParser) bool {
	if !p.At(KindIdent) && !p.At(KindPercentage) {
		return false
	}
	m := p.Start()
	list, res := parser.ParseSeparatedList(p, parser.SeparatedList[Kind]{
		NodeList: parser.NodeList[Kind]{
			Kind:     KindKeyframesSelectorList,
			Element:  parseKeyframesSelector,
			AtEnd:    atKeyframesSelectorListEnd,
			Recovery: parser.NewRecovery(KindBogusKeyframesItem, blockBoundary.With(KindComma)),
			Expected: "'from', 'to' or a percentage",
		},
		Separator: KindComma,
	})
	ok := !res.HasErrors()
	if !ok {
		list.ChangeToBogus(p)
	} else if list.IsEmpty() {
		p.Error(p.ExpectedError("'from', 'to' or a percentage"))
		ok = false
	}
	if !parseTolerantDeclarationBlock(p) {
		ok = false
	}
	if ok {
		m.Complete(p, KindKeyframesItem)
	} else {
		m.Complete(p, KindBogusKeyframesItem)
	}
	return true
}

func parseKeyframesSelector(p *cssParser) bool {
	m := p.Start()
	switch {
	case p.At(KindPercentage):
		p.Bump(KindPercentage)
	case p.At(KindIdent) && strings.EqualFold(p.CurText(), "from"):
		p.BumpRemap(KindFromKw)
	case p.At(KindIdent) && strings.EqualFold(p.CurText(), "to"):
		p.BumpRemap(KindToKw)
	case p.At(KindIdent):
		p.Error(p.ExpectedError("'from', 'to' or a percentage"))
		p.Bump(KindIdent)
		m.Complete(p, KindBogusKeyframesItem)
		return true
	default:
		m.Abandon(p)
		return false
	}
	m.Complete(p, KindKeyframesSelector)
	return true
}

func parseMediaAtRule(p *cssParser) {
	m := p.Start()
	p.Bump(KindAtKeyword)
	parseComponentValueList(p, valuePrelude)
	if !p.At(KindLCurly) {
		p.Missing()
		expectedHere(p, "'{'")
		p.Eat(KindSemicolon)
		m.Complete(p, KindBogusAtRule)
		return
	}
	b := p.Start()
	p.Bump(KindLCurly)
	parseRuleList(p, atRCurly, ruleStart.With(KindRCurly))
	if !p.Expect(KindRCurly) {
		b.Complete(p, KindBogusBlock)
	} else {
		b.Complete(p, KindRuleBlock)
	}
	m.Complete(p, KindMediaAtRule)
}

func parseCharsetAtRule(p *cssParser) {
	m := p.Start()
	p.Bump(KindAtKeyword)
	ok := p.Expect(KindString)
	if ok {
		ok = p.Expect(KindSemicolon)
	}
	if !ok {
		skipUntil(p, blockBoundary)
		p.Eat(KindSemicolon)
		m.Complete(p, KindBogusAtRule)
		return
	}
	m.Complete(p, KindCharsetAtRule)
}

func parseImportAtRule(p *cssParser) {
	m := p.Start()
	p.Bump(KindAtKeyword)
	ok := true
	if parseComponentValueList(p, valuePrelude).IsEmpty() {
		expectedHere(p, "a url or a string")
		ok = false
	}
	if !p.Expect(KindSemicolon) {
		ok = false
	}
	if ok {
		m.Complete(p, KindImportAtRule)
	} else {
		m.Complete(p, KindBogusAtRule)
	}
}

func parseUnknownAtRule(p *cssParser) {
	m := p.Start()
	p.Bump(KindAtKeyword)
	parseComponentValueList(p, valuePrelude)
	if p.At(KindLCurly) {
		kind := KindUnknownAtRule
		if !parseUnknownBlock(p) {
			kind = KindBogusAtRule
		}
		p.Missing()
		m.Complete(p, kind)
		return
	}
	p.Missing()
	if p.Eat(KindSemicolon) {
		m.Complete(p, KindUnknownAtRule)
		return
	}
	p.Missing()
	if p.At(KindRCurly) || p.AtEOF() {
		m.Complete(p, KindUnknownAtRule)
		return
	}
	expectedHere(p, "'{' or ';'")
	m.Complete(p, KindBogusAtRule)
}

// parseUnknownBlock parses a block of arbitrary component values. It
// reports false when the block is not closed.
func parseUnknownBlock(p *cssParser) bool {
	m := p.Start()
	p.Bump(KindLCurly)
	parseComponentValueList(p, valueBlock)
	if !p.Expect(KindRCurly) {
		m.Complete(p, KindBogusBlock)
		return false
	}
	m.Complete(p, KindUnknownBlock)
	return true
}
