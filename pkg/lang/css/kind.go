package css

import "github.com/yaklabco/gocst/pkg/syntax"

// Kind is a CSS syntax kind.
type Kind uint16

// Token kinds.
const (
	KindTombstone Kind = iota
	KindEOF
	KindWhitespace
	KindNewline
	KindComment
	KindIdent
	KindAtKeyword
	KindHash
	KindString
	KindNumber
	KindDimension
	KindPercentage
	KindLCurly
	KindRCurly
	KindLParen
	KindRParen
	KindLBrack
	KindRBrack
	KindColon
	KindColon2
	KindSemicolon
	KindComma
	KindDot
	KindStar
	KindPlus
	KindMinus
	KindGt
	KindTilde
	KindAmp
	KindBang
	KindSlash
	KindPipe
	KindEq
	KindTildeEq
	KindPipeEq
	KindCaretEq
	KindDollarEq
	KindStarEq
	KindImportantKw
	KindFromKw
	KindToKw
	KindErrorToken

	// Nodes.
	KindRoot
	KindRuleList
	KindQualifiedRule
	KindSelectorList
	KindComplexSelector
	KindCompoundSelector
	KindSubSelectorList
	KindTypeSelector
	KindUniversalSelector
	KindNestingSelector
	KindClassSelector
	KindIDSelector
	KindAttributeSelector
	KindAttributeMatcher
	KindPseudoClassSelector
	KindPseudoClassFunctionSelector
	KindPseudoElementSelector
	KindPseudoElementFunctionSelector
	KindDeclarationBlock
	KindDeclarationList
	KindDeclaration
	KindEmptyDeclaration
	KindImportant
	KindComponentValueList
	KindIdentifier
	KindNumberValue
	KindDimensionValue
	KindPercentageValue
	KindStringValue
	KindColor
	KindFunction
	KindParenthesizedValue
	KindDelimiter
	KindRuleBlock
	KindKeyframesAtRule
	KindKeyframesBlock
	KindKeyframesItemList
	KindKeyframesItem
	KindKeyframesSelectorList
	KindKeyframesSelector
	KindMediaAtRule
	KindCharsetAtRule
	KindImportAtRule
	KindUnknownAtRule
	KindUnknownBlock

	// Bogus nodes.
	KindBogus
	KindBogusRule
	KindBogusSelector
	KindBogusSubSelector
	KindBogusPseudoClass
	KindBogusDeclarationItem
	KindBogusPropertyValue
	KindBogusAtRule
	KindBogusKeyframesItem
	KindBogusBlock

	kindLast
)

const (
	flagToken  = syntax.FlagToken
	flagTrivia = syntax.FlagToken | syntax.FlagTrivia
	flagList   = syntax.FlagList
	flagBogus  = syntax.FlagBogus
	flagRoot   = syntax.FlagRoot
)

var kinds = syntax.NewKindTable("css", []syntax.KindSpec{
	KindTombstone:   {Name: "TOMBSTONE"},
	KindEOF:         {Name: "EOF", Flags: flagToken},
	KindWhitespace:  {Name: "WHITESPACE", Flags: flagTrivia},
	KindNewline:     {Name: "NEWLINE", Flags: flagTrivia},
	KindComment:     {Name: "COMMENT", Flags: flagTrivia},
	KindIdent:       {Name: "IDENT", Flags: flagToken},
	KindAtKeyword:   {Name: "AT_KEYWORD", Flags: flagToken},
	KindHash:        {Name: "HASH", Flags: flagToken},
	KindString:      {Name: "CSS_STRING_LITERAL", Flags: flagToken},
	KindNumber:      {Name: "CSS_NUMBER_LITERAL", Flags: flagToken},
	KindDimension:   {Name: "CSS_DIMENSION_LITERAL", Flags: flagToken},
	KindPercentage:  {Name: "CSS_PERCENTAGE_LITERAL", Flags: flagToken},
	KindLCurly:      {Name: "L_CURLY", Text: "{", Flags: flagToken},
	KindRCurly:      {Name: "R_CURLY", Text: "}", Flags: flagToken},
	KindLParen:      {Name: "L_PAREN", Text: "(", Flags: flagToken},
	KindRParen:      {Name: "R_PAREN", Text: ")", Flags: flagToken},
	KindLBrack:      {Name: "L_BRACK", Text: "[", Flags: flagToken},
	KindRBrack:      {Name: "R_BRACK", Text: "]", Flags: flagToken},
	KindColon:       {Name: "COLON", Text: ":", Flags: flagToken},
	KindColon2:      {Name: "COLON2", Text: "::", Flags: flagToken},
	KindSemicolon:   {Name: "SEMICOLON", Text: ";", Flags: flagToken},
	KindComma:       {Name: "COMMA", Text: ",", Flags: flagToken},
	KindDot:         {Name: "DOT", Text: ".", Flags: flagToken},
	KindStar:        {Name: "STAR", Text: "*", Flags: flagToken},
	KindPlus:        {Name: "PLUS", Text: "+", Flags: flagToken},
	KindMinus:       {Name: "MINUS", Text: "-", Flags: flagToken},
	KindGt:          {Name: "R_ANGLE", Text: ">", Flags: flagToken},
	KindTilde:       {Name: "TILDE", Text: "~", Flags: flagToken},
	KindAmp:         {Name: "AMP", Text: "&", Flags: flagToken},
	KindBang:        {Name: "BANG", Text: "!", Flags: flagToken},
	KindSlash:       {Name: "SLASH", Text: "/", Flags: flagToken},
	KindPipe:        {Name: "PIPE", Text: "|", Flags: flagToken},
	KindEq:          {Name: "EQ", Text: "=", Flags: flagToken},
	KindTildeEq:     {Name: "TILDE_EQ", Text: "~=", Flags: flagToken},
	KindPipeEq:      {Name: "PIPE_EQ", Text: "|=", Flags: flagToken},
	KindCaretEq:     {Name: "CARET_EQ", Text: "^=", Flags: flagToken},
	KindDollarEq:    {Name: "DOLLAR_EQ", Text: "$=", Flags: flagToken},
	KindStarEq:      {Name: "STAR_EQ", Text: "*=", Flags: flagToken},
	KindImportantKw: {Name: "IMPORTANT_KW", Text: "important", Flags: flagToken},
	KindFromKw:      {Name: "FROM_KW", Text: "from", Flags: flagToken},
	KindToKw:        {Name: "TO_KW", Text: "to", Flags: flagToken},
	KindErrorToken:  {Name: "ERROR_TOKEN", Flags: flagToken},

	KindRoot:                          {Name: "CSS_ROOT", Flags: flagRoot},
	KindRuleList:                      {Name: "CSS_RULE_LIST", Flags: flagList},
	KindQualifiedRule:                 {Name: "CSS_QUALIFIED_RULE"},
	KindSelectorList:                  {Name: "CSS_SELECTOR_LIST", Flags: flagList},
	KindComplexSelector:               {Name: "CSS_COMPLEX_SELECTOR"},
	KindCompoundSelector:              {Name: "CSS_COMPOUND_SELECTOR"},
	KindSubSelectorList:               {Name: "CSS_SUB_SELECTOR_LIST", Flags: flagList},
	KindTypeSelector:                  {Name: "CSS_TYPE_SELECTOR"},
	KindUniversalSelector:             {Name: "CSS_UNIVERSAL_SELECTOR"},
	KindNestingSelector:               {Name: "CSS_NESTED_SELECTOR"},
	KindClassSelector:                 {Name: "CSS_CLASS_SELECTOR"},
	KindIDSelector:                    {Name: "CSS_ID_SELECTOR"},
	KindAttributeSelector:             {Name: "CSS_ATTRIBUTE_SELECTOR"},
	KindAttributeMatcher:              {Name: "CSS_ATTRIBUTE_MATCHER"},
	KindPseudoClassSelector:           {Name: "CSS_PSEUDO_CLASS_SELECTOR"},
	KindPseudoClassFunctionSelector:   {Name: "CSS_PSEUDO_CLASS_FUNCTION_SELECTOR"},
	KindPseudoElementSelector:         {Name: "CSS_PSEUDO_ELEMENT_SELECTOR"},
	KindPseudoElementFunctionSelector: {Name: "CSS_PSEUDO_ELEMENT_FUNCTION_SELECTOR"},
	KindDeclarationBlock:              {Name: "CSS_DECLARATION_BLOCK"},
	KindDeclarationList:               {Name: "CSS_DECLARATION_LIST", Flags: flagList},
	KindDeclaration:                   {Name: "CSS_DECLARATION"},
	KindEmptyDeclaration:              {Name: "CSS_EMPTY_DECLARATION"},
	KindImportant:                     {Name: "CSS_DECLARATION_IMPORTANT"},
	KindComponentValueList:            {Name: "CSS_COMPONENT_VALUE_LIST", Flags: flagList},
	KindIdentifier:                    {Name: "CSS_IDENTIFIER"},
	KindNumberValue:                   {Name: "CSS_NUMBER"},
	KindDimensionValue:                {Name: "CSS_DIMENSION"},
	KindPercentageValue:               {Name: "CSS_PERCENTAGE"},
	KindStringValue:                   {Name: "CSS_STRING"},
	KindColor:                         {Name: "CSS_COLOR"},
	KindFunction:                      {Name: "CSS_FUNCTION"},
	KindParenthesizedValue:            {Name: "CSS_PARENTHESIZED_VALUE"},
	KindDelimiter:                     {Name: "CSS_GENERIC_DELIMITER"},
	KindRuleBlock:                     {Name: "CSS_RULE_BLOCK"},
	KindKeyframesAtRule:               {Name: "CSS_KEYFRAMES_AT_RULE"},
	KindKeyframesBlock:                {Name: "CSS_KEYFRAMES_BLOCK"},
	KindKeyframesItemList:             {Name: "CSS_KEYFRAMES_ITEM_LIST", Flags: flagList},
	KindKeyframesItem:                 {Name: "CSS_KEYFRAMES_ITEM"},
	KindKeyframesSelectorList:         {Name: "CSS_KEYFRAMES_SELECTOR_LIST", Flags: flagList},
	KindKeyframesSelector:             {Name: "CSS_KEYFRAMES_SELECTOR"},
	KindMediaAtRule:                   {Name: "CSS_MEDIA_AT_RULE"},
	KindCharsetAtRule:                 {Name: "CSS_CHARSET_AT_RULE"},
	KindImportAtRule:                  {Name: "CSS_IMPORT_AT_RULE"},
	KindUnknownAtRule:                 {Name: "CSS_UNKNOWN_AT_RULE"},
	KindUnknownBlock:                  {Name: "CSS_UNKNOWN_BLOCK"},

	KindBogus:                {Name: "CSS_BOGUS", Flags: flagBogus},
	KindBogusRule:            {Name: "CSS_BOGUS_RULE", Flags: flagBogus},
	KindBogusSelector:        {Name: "CSS_BOGUS_SELECTOR", Flags: flagBogus},
	KindBogusSubSelector:     {Name: "CSS_BOGUS_SUB_SELECTOR", Flags: flagBogus},
	KindBogusPseudoClass:     {Name: "CSS_BOGUS_PSEUDO_CLASS", Flags: flagBogus},
	KindBogusDeclarationItem: {Name: "CSS_BOGUS_DECLARATION_ITEM", Flags: flagBogus},
	KindBogusPropertyValue:   {Name: "CSS_BOGUS_PROPERTY_VALUE", Flags: flagBogus},
	KindBogusAtRule:          {Name: "CSS_BOGUS_AT_RULE", Flags: flagBogus},
	KindBogusKeyframesItem:   {Name: "CSS_BOGUS_KEYFRAMES_ITEM", Flags: flagBogus},
	KindBogusBlock:           {Name: "CSS_BOGUS_BLOCK", Flags: flagBogus},

	kindLast: {Name: "__LAST"},
})

// ToRaw returns the storage form of the kind.
func (k Kind) ToRaw() syntax.RawKind { return syntax.RawKind(k) }

// IsTrivia reports whether the kind is whitespace, a newline or a comment.
func (k Kind) IsTrivia() bool { return kinds.Has(syntax.RawKind(k), syntax.FlagTrivia) }

// IsList reports whether the kind is a list node.
func (k Kind) IsList() bool { return kinds.Has(syntax.RawKind(k), syntax.FlagList) }

// IsBogus reports whether the kind is a recovery node.
func (k Kind) IsBogus() bool { return kinds.Has(syntax.RawKind(k), syntax.FlagBogus) }

// IsRoot reports whether the kind is CSS_ROOT.
func (k Kind) IsRoot() bool { return kinds.Has(syntax.RawKind(k), syntax.FlagRoot) }

// IsToken reports whether the kind is a token kind.
func (k Kind) IsToken() bool { return kinds.Has(syntax.RawKind(k), syntax.FlagToken) }

// String returns the debug name of the kind.
func (k Kind) String() string { return kinds.String(syntax.RawKind(k)) }

// Name returns the fixed text of punctuation and keywords, the debug name otherwise.
func (k Kind) Name() (string, bool) { return kinds.Name(syntax.RawKind(k)) }

// ToBogus returns the bogus kind that replaces k during recovery.
func (k Kind) ToBogus() Kind {
	if k.IsBogus() {
		return k
	}
	switch k {
	case KindQualifiedRule:
		return KindBogusRule
	case KindComplexSelector, KindCompoundSelector, KindTypeSelector, KindUniversalSelector,
		KindNestingSelector, KindSelectorList:
		return KindBogusSelector
	case KindClassSelector, KindIDSelector, KindAttributeSelector, KindAttributeMatcher,
		KindPseudoElementSelector, KindPseudoElementFunctionSelector:
		return KindBogusSubSelector
	case KindPseudoClassSelector, KindPseudoClassFunctionSelector:
		return KindBogusPseudoClass
	case KindDeclaration, KindEmptyDeclaration, KindImportant:
		return KindBogusDeclarationItem
	case KindComponentValueList, KindIdentifier, KindNumberValue, KindDimensionValue,
		KindPercentageValue, KindStringValue, KindColor, KindFunction, KindParenthesizedValue,
		KindDelimiter:
		return KindBogusPropertyValue
	case KindKeyframesAtRule, KindMediaAtRule, KindCharsetAtRule, KindImportAtRule, KindUnknownAtRule:
		return KindBogusAtRule
	case KindKeyframesItem, KindKeyframesSelector, KindKeyframesSelectorList:
		return KindBogusKeyframesItem
	case KindDeclarationBlock, KindRuleBlock, KindKeyframesBlock, KindUnknownBlock:
		return KindBogusBlock
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

// KindLast is the __LAST sentinel.
const KindLast = kindLast

type language struct{}

// Language is the CSS language.
var Language syntax.Language = language{}

// Name returns the language name used by the registry.
func (language) Name() string { return "css" }

// FromRaw converts a raw kind, rejecting values outside the kind table.
func (language) FromRaw(raw syntax.RawKind) (syntax.Kind, error) {
	k, err := KindFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// ToBogus returns the bogus kind that replaces raw during recovery.
func (language) ToBogus(raw syntax.RawKind) syntax.RawKind {
	return Kind(raw).ToBogus().ToRaw()
}

// Root returns the root node kind.
func (language) Root() syntax.RawKind { return KindRoot.ToRaw() }

// Last returns the __LAST sentinel.
func (language) Last() syntax.RawKind { return kindLast.ToRaw() }
