package syntax

// A minimal language used by the package tests:
//
//	ROOT [CALL, EOF]
//	CALL [IDENT, L_PAREN, ARGS, R_PAREN]
//	ARGS separated list of NAME
//	NAME [IDENT]
type testKind uint16

const (
	tTombstone testKind = iota
	tEOF
	tWhitespace
	tNewline
	tIdent
	tComma
	tLParen
	tRParen
	tRoot
	tCall
	tArgs
	tName
	tBogus
	tLast
)

var testKinds = NewKindTable("test", []KindSpec{
	tTombstone:  {Name: "TOMBSTONE"},
	tEOF:        {Name: "EOF", Flags: FlagToken},
	tWhitespace: {Name: "WHITESPACE", Flags: FlagToken | FlagTrivia},
	tNewline:    {Name: "NEWLINE", Flags: FlagToken | FlagTrivia},
	tIdent:      {Name: "IDENT", Flags: FlagToken},
	tComma:      {Name: "COMMA", Text: ",", Flags: FlagToken},
	tLParen:     {Name: "L_PAREN", Text: "(", Flags: FlagToken},
	tRParen:     {Name: "R_PAREN", Text: ")", Flags: FlagToken},
	tRoot:       {Name: "ROOT", Flags: FlagRoot},
	tCall:       {Name: "CALL"},
	tArgs:       {Name: "ARGS", Flags: FlagList},
	tName:       {Name: "NAME"},
	tBogus:      {Name: "BOGUS", Flags: FlagBogus},
	tLast:       {Name: "__LAST"},
})

func (k testKind) ToRaw() RawKind            { return RawKind(k) }
func (k testKind) IsTrivia() bool            { return testKinds.Has(RawKind(k), FlagTrivia) }
func (k testKind) IsList() bool              { return testKinds.Has(RawKind(k), FlagList) }
func (k testKind) IsBogus() bool             { return testKinds.Has(RawKind(k), FlagBogus) }
func (k testKind) IsRoot() bool              { return testKinds.Has(RawKind(k), FlagRoot) }
func (k testKind) String() string            { return testKinds.String(RawKind(k)) }
func (k testKind) Name() (string, bool)      { return testKinds.Name(RawKind(k)) }
func (testLanguage) Name() string            { return "test" }
func (testLanguage) Root() RawKind           { return RawKind(tRoot) }
func (testLanguage) Last() RawKind           { return RawKind(tLast) }
func (testLanguage) ToBogus(RawKind) RawKind { return RawKind(tBogus) }

type testLanguage struct{}

func (testLanguage) FromRaw(raw RawKind) (Kind, error) {
	if err := testKinds.Check(raw); err != nil {
		return nil, err
	}
	return testKind(raw), nil
}

var testLang Language = testLanguage{}

// buildCall builds the tree for "f(a, b)\n".
func buildCall(cache *NodeCache) *SyntaxNode {
	b := NewTreeBuilder(testLang, cache)
	b.StartNode(RawKind(tRoot))
	b.StartNode(RawKind(tCall))
	b.Token(RawKind(tIdent), "f", nil, nil)
	b.Token(RawKind(tLParen), "(", nil, nil)
	b.StartNode(RawKind(tArgs))
	b.StartNode(RawKind(tName))
	b.Token(RawKind(tIdent), "a", nil, nil)
	b.FinishNode()
	b.Token(RawKind(tComma), ", ", nil, []TriviaPiece{{Kind: TriviaWhitespace, Length: 1}})
	b.StartNode(RawKind(tName))
	b.Token(RawKind(tIdent), "b", nil, nil)
	b.FinishNode()
	b.FinishNode()
	b.Token(RawKind(tRParen), ")", nil, nil)
	b.FinishNode()
	b.Token(RawKind(tEOF), "\n", []TriviaPiece{{Kind: TriviaNewline, Length: 1}}, nil)
	b.FinishNode()
	return b.FinishRoot()
}
