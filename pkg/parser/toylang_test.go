package parser_test

import (
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// toy is a small bracketed-list language:
//
//	root  = array* EOF
//	array = '[' list ']'
//	list  = name (',' name)*
type toyKind uint16

const (
	kTombstone toyKind = iota
	kEOF
	kWhitespace
	kNewline
	kComment
	kIdent
	kComma
	kLBrack
	kRBrack
	kError
	kRoot
	kArrayList
	kArray
	kList
	kName
	kBogus
	kBogusArray
	kLast
)

var toyKinds = syntax.NewKindTable("toy", []syntax.KindSpec{
	kTombstone:  {Name: "TOMBSTONE"},
	kEOF:        {Name: "EOF", Flags: syntax.FlagToken},
	kWhitespace: {Name: "WHITESPACE", Flags: syntax.FlagToken | syntax.FlagTrivia},
	kNewline:    {Name: "NEWLINE", Flags: syntax.FlagToken | syntax.FlagTrivia},
	kComment:    {Name: "COMMENT", Flags: syntax.FlagToken | syntax.FlagTrivia},
	kIdent:      {Name: "IDENT", Flags: syntax.FlagToken},
	kComma:      {Name: "COMMA", Text: ",", Flags: syntax.FlagToken},
	kLBrack:     {Name: "L_BRACK", Text: "[", Flags: syntax.FlagToken},
	kRBrack:     {Name: "R_BRACK", Text: "]", Flags: syntax.FlagToken},
	kError:      {Name: "ERROR_TOKEN", Flags: syntax.FlagToken},
	kRoot:       {Name: "ROOT", Flags: syntax.FlagRoot},
	kArrayList:  {Name: "ARRAY_LIST", Flags: syntax.FlagList},
	kArray:      {Name: "ARRAY"},
	kList:       {Name: "LIST", Flags: syntax.FlagList},
	kName:       {Name: "NAME"},
	kBogus:      {Name: "BOGUS", Flags: syntax.FlagBogus},
	kBogusArray: {Name: "BOGUS_ARRAY", Flags: syntax.FlagBogus},
	kLast:       {Name: "__LAST"},
})

func (k toyKind) ToRaw() syntax.RawKind { return syntax.RawKind(k) }
func (k toyKind) IsTrivia() bool        { return toyKinds.Has(syntax.RawKind(k), syntax.FlagTrivia) }
func (k toyKind) IsList() bool          { return toyKinds.Has(syntax.RawKind(k), syntax.FlagList) }
func (k toyKind) IsBogus() bool         { return toyKinds.Has(syntax.RawKind(k), syntax.FlagBogus) }
func (k toyKind) IsRoot() bool          { return toyKinds.Has(syntax.RawKind(k), syntax.FlagRoot) }
func (k toyKind) String() string        { return toyKinds.String(syntax.RawKind(k)) }
func (k toyKind) Name() (string, bool)  { return toyKinds.Name(syntax.RawKind(k)) }

type toyLanguage struct{}

func (toyLanguage) Name() string         { return "toy" }
func (toyLanguage) Root() syntax.RawKind { return syntax.RawKind(kRoot) }
func (toyLanguage) Last() syntax.RawKind { return syntax.RawKind(kLast) }

func (toyLanguage) FromRaw(raw syntax.RawKind) (syntax.Kind, error) {
	if err := toyKinds.Check(raw); err != nil {
		return nil, err
	}
	return toyKind(raw), nil
}

func (toyLanguage) ToBogus(raw syntax.RawKind) syntax.RawKind {
	if toyKind(raw) == kArray {
		return syntax.RawKind(kBogusArray)
	}
	return syntax.RawKind(kBogus)
}

func lexToy(src string) []parser.LexedToken[toyKind] {
	var out []parser.LexedToken[toyKind]
	emit := func(k toyKind, start, end int, trivia syntax.TriviaPieceKind) {
		out = append(out, parser.LexedToken[toyKind]{Kind: k, Start: start, End: end, Trivia: trivia})
	}
	for i := 0; i < len(src); {
		c := src[i]
		start := i
		switch {
		case c == '\n':
			i++
			emit(kNewline, start, i, syntax.TriviaNewline)
		case c == ' ' || c == '\t':
			for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
				i++
			}
			emit(kWhitespace, start, i, syntax.TriviaWhitespace)
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			emit(kComment, start, i, syntax.TriviaSingleLineComment)
		case c == ',':
			i++
			emit(kComma, start, i, 0)
		case c == '[':
			i++
			emit(kLBrack, start, i, 0)
		case c == ']':
			i++
			emit(kRBrack, start, i, 0)
		case c >= 'a' && c <= 'z':
			for i < len(src) && src[i] >= 'a' && src[i] <= 'z' {
				i++
			}
			emit(kIdent, start, i, 0)
		default:
			i++
			emit(kError, start, i, 0)
		}
	}
	return out
}

func parseToy(src string) *syntax.Parse {
	p := parser.New(syntax.Language(toyLanguage{}), src, lexToy(src))
	root := p.Start()
	parser.ParseNodeList(p, parser.NodeList[toyKind]{
		Kind:     kArrayList,
		Element:  parseArray,
		AtEnd:    func(*parser.Parser[toyKind]) bool { return false },
		Recovery: parser.NewRecovery(kBogus, parser.NewTokenSet(kLBrack)),
		Expected: "an array",
	})
	p.Expect(kEOF)
	root.Complete(p, kRoot)
	return p.Build(nil)
}

func parseArray(p *parser.Parser[toyKind]) bool {
	if !p.At(kLBrack) {
		return false
	}
	m := p.Start()
	p.Bump(kLBrack)
	_, res := parser.ParseSeparatedList(p, parser.SeparatedList[toyKind]{
		NodeList: parser.NodeList[toyKind]{
			Kind:     kList,
			Element:  parseName,
			AtEnd:    func(p *parser.Parser[toyKind]) bool { return p.At(kRBrack) || p.At(kLBrack) },
			Recovery: parser.NewRecovery(kBogus, parser.NewTokenSet(kComma, kRBrack, kLBrack)),
			Expected: "a name",
		},
		Separator: kComma,
	})
	closed := p.Expect(kRBrack)
	cm := m.Complete(p, kArray)
	if res.HasErrors() || res.TrailingSeparator || !closed {
		cm.ChangeToBogus(p)
	}
	return true
}

func parseName(p *parser.Parser[toyKind]) bool {
	if !p.At(kIdent) {
		return false
	}
	m := p.Start()
	p.Bump(kIdent)
	m.Complete(p, kName)
	return true
}
