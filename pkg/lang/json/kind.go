package json

import "github.com/yaklabco/gocst/pkg/syntax"

// Kind is a JSON syntax kind.
type Kind uint16

const (
	KindTombstone Kind = iota
	KindEOF
	KindWhitespace
	KindNewline
	KindComment
	KindLCurly
	KindRCurly
	KindLBrack
	KindRBrack
	KindColon
	KindComma
	KindString
	KindNumber
	KindTrueKw
	KindFalseKw
	KindNullKw
	KindIdent
	KindErrorToken

	KindRoot
	KindStringValue
	KindNumberValue
	KindBooleanValue
	KindNullValue
	KindArrayValue
	KindArrayElementList
	KindObjectValue
	KindMemberList
	KindMember
	KindMemberName

	KindBogus
	KindBogusValue
	KindBogusMemberName

	kindLast
)

var kinds = syntax.NewKindTable("json", []syntax.KindSpec{
	KindTombstone:  {Name: "TOMBSTONE"},
	KindEOF:        {Name: "EOF", Flags: syntax.FlagToken},
	KindWhitespace: {Name: "WHITESPACE", Flags: syntax.FlagToken | syntax.FlagTrivia},
	KindNewline:    {Name: "NEWLINE", Flags: syntax.FlagToken | syntax.FlagTrivia},
	KindComment:    {Name: "COMMENT", Flags: syntax.FlagToken | syntax.FlagTrivia},
	KindLCurly:     {Name: "L_CURLY", Text: "{", Flags: syntax.FlagToken},
	KindRCurly:     {Name: "R_CURLY", Text: "}", Flags: syntax.FlagToken},
	KindLBrack:     {Name: "L_BRACK", Text: "[", Flags: syntax.FlagToken},
	KindRBrack:     {Name: "R_BRACK", Text: "]", Flags: syntax.FlagToken},
	KindColon:      {Name: "COLON", Text: ":", Flags: syntax.FlagToken},
	KindComma:      {Name: "COMMA", Text: ",", Flags: syntax.FlagToken},
	KindString:     {Name: "JSON_STRING_LITERAL", Flags: syntax.FlagToken},
	KindNumber:     {Name: "JSON_NUMBER_LITERAL", Flags: syntax.FlagToken},
	KindTrueKw:     {Name: "TRUE_KW", Text: "true", Flags: syntax.FlagToken},
	KindFalseKw:    {Name: "FALSE_KW", Text: "false", Flags: syntax.FlagToken},
	KindNullKw:     {Name: "NULL_KW", Text: "null", Flags: syntax.FlagToken},
	KindIdent:      {Name: "IDENT", Flags: syntax.FlagToken},
	KindErrorToken: {Name: "ERROR_TOKEN", Flags: syntax.FlagToken},

	KindRoot:             {Name: "JSON_ROOT", Flags: syntax.FlagRoot},
	KindStringValue:      {Name: "JSON_STRING_VALUE"},
	KindNumberValue:      {Name: "JSON_NUMBER_VALUE"},
	KindBooleanValue:     {Name: "JSON_BOOLEAN_VALUE"},
	KindNullValue:        {Name: "JSON_NULL_VALUE"},
	KindArrayValue:       {Name: "JSON_ARRAY_VALUE"},
	KindArrayElementList: {Name: "JSON_ARRAY_ELEMENT_LIST", Flags: syntax.FlagList},
	KindObjectValue:      {Name: "JSON_OBJECT_VALUE"},
	KindMemberList:       {Name: "JSON_MEMBER_LIST", Flags: syntax.FlagList},
	KindMember:           {Name: "JSON_MEMBER"},
	KindMemberName:       {Name: "JSON_MEMBER_NAME"},

	KindBogus:           {Name: "JSON_BOGUS", Flags: syntax.FlagBogus},
	KindBogusValue:      {Name: "JSON_BOGUS_VALUE", Flags: syntax.FlagBogus},
	KindBogusMemberName: {Name: "JSON_BOGUS_MEMBER_NAME", Flags: syntax.FlagBogus},

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

// IsValue reports whether k is one of the value node kinds.
func (k Kind) IsValue() bool {
	switch k {
	case KindStringValue, KindNumberValue, KindBooleanValue, KindNullValue, KindArrayValue, KindObjectValue:
		return true
	}
	return false
}

// ToBogus returns the bogus kind that replaces k during recovery.
func (k Kind) ToBogus() Kind {
	switch {
	case k.IsBogus():
		return k
	case k.IsValue(), k == KindArrayElementList, k == KindMemberList:
		return KindBogusValue
	case k == KindMemberName:
		return KindBogusMemberName
	}
	return KindBogus
}

// KindFromRaw converts a raw kind, rejecting values past __LAST.
func KindFromRaw(raw syntax.RawKind) (Kind, error) {
	if err := kinds.Check(raw); err != nil {
		return KindTombstone, err
	}
	return Kind(raw), nil
}

type language struct{}

// Language is the JSON language.
var Language syntax.Language = language{}

// Name returns the language name used by the registry.
func (language) Name() string { return "json" }

// FromRaw converts a raw kind, rejecting values outside the kind table.
func (language) FromRaw(raw syntax.RawKind) (syntax.Kind, error) {
	k, err := KindFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// ToBogus returns the bogus kind that replaces raw during recovery.
func (language) ToBogus(raw syntax.RawKind) syntax.RawKind { return Kind(raw).ToBogus().ToRaw() }

// Root returns the root node kind.
func (language) Root() syntax.RawKind { return KindRoot.ToRaw() }

// Last returns the __LAST sentinel.
func (language) Last() syntax.RawKind { return kindLast.ToRaw() }
