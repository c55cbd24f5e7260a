package markdown

import "github.com/yaklabco/gocst/pkg/syntax"

// Kind is a Markdown syntax kind.
type Kind uint16

const (
	KindTombstone Kind = iota
	KindEOF
	KindWhitespace
	KindNewline
	KindTextual

	KindDocument
	KindBlockList
	KindLineList
	KindHeader
	KindSetextHeader
	KindParagraph
	KindFencedCodeBlock
	KindIndentCodeBlock
	KindThematicBreak
	KindQuote
	KindBulletList
	KindOrderedList
	KindHTMLBlock
	KindTable
	KindBogus

	kindLast
)

var kinds = syntax.NewKindTable("markdown", []syntax.KindSpec{
	KindTombstone:  {Name: "TOMBSTONE"},
	KindEOF:        {Name: "EOF", Flags: syntax.FlagToken},
	KindWhitespace: {Name: "WHITESPACE", Flags: syntax.FlagToken | syntax.FlagTrivia},
	KindNewline:    {Name: "NEWLINE", Flags: syntax.FlagToken | syntax.FlagTrivia},
	KindTextual:    {Name: "MD_TEXTUAL_LITERAL", Flags: syntax.FlagToken},

	KindDocument:        {Name: "MD_DOCUMENT", Flags: syntax.FlagRoot},
	KindBlockList:       {Name: "MD_BLOCK_LIST", Flags: syntax.FlagList},
	KindLineList:        {Name: "MD_LINE_LIST", Flags: syntax.FlagList},
	KindHeader:          {Name: "MD_HEADER"},
	KindSetextHeader:    {Name: "MD_SETEXT_HEADER"},
	KindParagraph:       {Name: "MD_PARAGRAPH"},
	KindFencedCodeBlock: {Name: "MD_FENCED_CODE_BLOCK"},
	KindIndentCodeBlock: {Name: "MD_INDENT_CODE_BLOCK"},
	KindThematicBreak:   {Name: "MD_THEMATIC_BREAK"},
	KindQuote:           {Name: "MD_QUOTE"},
	KindBulletList:      {Name: "MD_BULLET_LIST"},
	KindOrderedList:     {Name: "MD_ORDERED_LIST"},
	KindHTMLBlock:       {Name: "MD_HTML_BLOCK"},
	KindTable:           {Name: "MD_TABLE"},
	KindBogus:           {Name: "MD_BOGUS", Flags: syntax.FlagBogus},

	kindLast: {Name: "__LAST"},
})

// KindLast is the __LAST sentinel.
const KindLast = kindLast

// ToRaw returns the storage form of the kind.
func (k Kind) ToRaw() syntax.RawKind { return syntax.RawKind(k) }

// IsTrivia reports whether the kind is trivia.
func (k Kind) IsTrivia() bool { return kinds.Has(k.ToRaw(), syntax.FlagTrivia) }

// IsList reports whether the kind is a list node.
func (k Kind) IsList() bool { return kinds.Has(k.ToRaw(), syntax.FlagList) }

// IsBogus reports whether the kind is a recovery node.
func (k Kind) IsBogus() bool { return kinds.Has(k.ToRaw(), syntax.FlagBogus) }

// IsRoot reports whether the kind is the root kind.
func (k Kind) IsRoot() bool { return kinds.Has(k.ToRaw(), syntax.FlagRoot) }

// IsToken reports whether the kind is a token kind.
func (k Kind) IsToken() bool { return kinds.Has(k.ToRaw(), syntax.FlagToken) }

// String returns the debug name of the kind.
func (k Kind) String() string { return kinds.String(k.ToRaw()) }

// Name returns the fixed text of punctuation and keywords, the debug name otherwise.
func (k Kind) Name() (string, bool) { return kinds.Name(k.ToRaw()) }

// IsBlock reports whether k is a block kind, bogus included.
func (k Kind) IsBlock() bool { return k >= KindHeader && k <= KindBogus }

// ToBogus returns MD_BOGUS for every kind.
func (k Kind) ToBogus() Kind { return KindBogus }

// KindFromRaw converts a raw kind, rejecting values past __LAST.
func KindFromRaw(raw syntax.RawKind) (Kind, error) {
	if err := kinds.Check(raw); err != nil {
		return KindTombstone, err
	}
	return Kind(raw), nil
}

type language struct{}

// Language is CommonMark Markdown with optional GFM tables.
var Language syntax.Language = language{}

// Name returns the language name used by the registry.
func (language) Name() string { return "markdown" }

// FromRaw converts a raw kind, rejecting values outside the kind table.
func (language) FromRaw(raw syntax.RawKind) (syntax.Kind, error) {
	k, err := KindFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// ToBogus returns the bogus kind that replaces raw during recovery.
func (language) ToBogus(syntax.RawKind) syntax.RawKind { return KindBogus.ToRaw() }

// Root returns the root node kind.
func (language) Root() syntax.RawKind { return KindDocument.ToRaw() }

// Last returns the __LAST sentinel.
func (language) Last() syntax.RawKind { return kindLast.ToRaw() }
