package grit

import "github.com/yaklabco/gocst/pkg/syntax"

// Kind is a Grit syntax kind.
type Kind uint16

const (
	KindTombstone Kind = iota
	KindEOF
	KindWhitespace
	KindNewline
	KindComment
	KindIdent
	KindVariable
	KindString
	KindSnippet
	KindRegex
	KindSnippetRegex
	KindInt
	KindNegativeInt
	KindDouble
	KindErrorToken

	KindLParen
	KindRParen
	KindLCurly
	KindRCurly
	KindLBrack
	KindRBrack
	KindComma
	KindDot
	KindDot3
	KindSemicolon
	KindColon
	KindEq
	KindEq2
	KindNeq
	KindFatArrow
	KindPlusEq
	KindLt
	KindLtEq
	KindGt
	KindGtEq
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindPercent
	KindBang
	KindAmp2
	KindPipe2

	KindAndKw
	KindOrKw
	KindNotKw
	KindMaybeKw
	KindIfKw
	KindElseKw
	KindWhereKw
	KindContainsKw
	KindUntilKw
	KindIncludesKw
	KindAsKw
	KindWithinKw
	KindBubbleKw
	KindSomeKw
	KindEveryKw
	KindAnyKw
	KindMultifileKw
	KindSequentialKw
	KindPrivateKw
	KindPatternKw
	KindPredicateKw
	KindFunctionKw
	KindReturnKw
	KindLikeKw
	KindLimitKw
	KindEngineKw
	KindLanguageKw
	KindUndefinedKw
	KindTrueKw
	KindFalseKw

	KindRoot
	KindTokenList
	KindBogus

	kindLast
)

var kinds = syntax.NewKindTable("grit", []syntax.KindSpec{
	KindTombstone:    {Name: "TOMBSTONE"},
	KindEOF:          {Name: "EOF", Flags: syntax.FlagToken},
	KindWhitespace:   {Name: "WHITESPACE", Flags: syntax.FlagToken | syntax.FlagTrivia},
	KindNewline:      {Name: "NEWLINE", Flags: syntax.FlagToken | syntax.FlagTrivia},
	KindComment:      {Name: "COMMENT", Flags: syntax.FlagToken | syntax.FlagTrivia},
	KindIdent:        {Name: "GRIT_NAME", Flags: syntax.FlagToken},
	KindVariable:     {Name: "GRIT_VARIABLE", Flags: syntax.FlagToken},
	KindString:       {Name: "GRIT_STRING", Flags: syntax.FlagToken},
	KindSnippet:      {Name: "GRIT_BACKTICK_SNIPPET", Flags: syntax.FlagToken},
	KindRegex:        {Name: "GRIT_REGEX", Flags: syntax.FlagToken},
	KindSnippetRegex: {Name: "GRIT_SNIPPET_REGEX", Flags: syntax.FlagToken},
	KindInt:          {Name: "GRIT_INT", Flags: syntax.FlagToken},
	KindNegativeInt:  {Name: "GRIT_NEGATIVE_INT", Flags: syntax.FlagToken},
	KindDouble:       {Name: "GRIT_DOUBLE", Flags: syntax.FlagToken},
	KindErrorToken:   {Name: "ERROR_TOKEN", Flags: syntax.FlagToken},

	KindLParen:    {Name: "L_PAREN", Text: "(", Flags: syntax.FlagToken},
	KindRParen:    {Name: "R_PAREN", Text: ")", Flags: syntax.FlagToken},
	KindLCurly:    {Name: "L_CURLY", Text: "{", Flags: syntax.FlagToken},
	KindRCurly:    {Name: "R_CURLY", Text: "}", Flags: syntax.FlagToken},
	KindLBrack:    {Name: "L_BRACK", Text: "[", Flags: syntax.FlagToken},
	KindRBrack:    {Name: "R_BRACK", Text: "]", Flags: syntax.FlagToken},
	KindComma:     {Name: "COMMA", Text: ",", Flags: syntax.FlagToken},
	KindDot:       {Name: "DOT", Text: ".", Flags: syntax.FlagToken},
	KindDot3:      {Name: "DOT3", Text: "...", Flags: syntax.FlagToken},
	KindSemicolon: {Name: "SEMICOLON", Text: ";", Flags: syntax.FlagToken},
	KindColon:     {Name: "COLON", Text: ":", Flags: syntax.FlagToken},
	KindEq:        {Name: "EQ", Text: "=", Flags: syntax.FlagToken},
	KindEq2:       {Name: "EQ2", Text: "==", Flags: syntax.FlagToken},
	KindNeq:       {Name: "NEQ", Text: "!=", Flags: syntax.FlagToken},
	KindFatArrow:  {Name: "FAT_ARROW", Text: "=>", Flags: syntax.FlagToken},
	KindPlusEq:    {Name: "PLUS_EQ", Text: "+=", Flags: syntax.FlagToken},
	KindLt:        {Name: "LT", Text: "<", Flags: syntax.FlagToken},
	KindLtEq:      {Name: "LTEQ", Text: "<=", Flags: syntax.FlagToken},
	KindGt:        {Name: "GT", Text: ">", Flags: syntax.FlagToken},
	KindGtEq:      {Name: "GTEQ", Text: ">=", Flags: syntax.FlagToken},
	KindPlus:      {Name: "PLUS", Text: "+", Flags: syntax.FlagToken},
	KindMinus:     {Name: "MINUS", Text: "-", Flags: syntax.FlagToken},
	KindStar:      {Name: "STAR", Text: "*", Flags: syntax.FlagToken},
	KindSlash:     {Name: "SLASH", Text: "/", Flags: syntax.FlagToken},
	KindPercent:   {Name: "PERCENT", Text: "%", Flags: syntax.FlagToken},
	KindBang:      {Name: "BANG", Text: "!", Flags: syntax.FlagToken},
	KindAmp2:      {Name: "AMP2", Text: "&&", Flags: syntax.FlagToken},
	KindPipe2:     {Name: "PIPE2", Text: "||", Flags: syntax.FlagToken},

	KindAndKw:        {Name: "AND_KW", Text: "and", Flags: syntax.FlagToken},
	KindOrKw:         {Name: "OR_KW", Text: "or", Flags: syntax.FlagToken},
	KindNotKw:        {Name: "NOT_KW", Text: "not", Flags: syntax.FlagToken},
	KindMaybeKw:      {Name: "MAYBE_KW", Text: "maybe", Flags: syntax.FlagToken},
	KindIfKw:         {Name: "IF_KW", Text: "if", Flags: syntax.FlagToken},
	KindElseKw:       {Name: "ELSE_KW", Text: "else", Flags: syntax.FlagToken},
	KindWhereKw:      {Name: "WHERE_KW", Text: "where", Flags: syntax.FlagToken},
	KindContainsKw:   {Name: "CONTAINS_KW", Text: "contains", Flags: syntax.FlagToken},
	KindUntilKw:      {Name: "UNTIL_KW", Text: "until", Flags: syntax.FlagToken},
	KindIncludesKw:   {Name: "INCLUDES_KW", Text: "includes", Flags: syntax.FlagToken},
	KindAsKw:         {Name: "AS_KW", Text: "as", Flags: syntax.FlagToken},
	KindWithinKw:     {Name: "WITHIN_KW", Text: "within", Flags: syntax.FlagToken},
	KindBubbleKw:     {Name: "BUBBLE_KW", Text: "bubble", Flags: syntax.FlagToken},
	KindSomeKw:       {Name: "SOME_KW", Text: "some", Flags: syntax.FlagToken},
	KindEveryKw:      {Name: "EVERY_KW", Text: "every", Flags: syntax.FlagToken},
	KindAnyKw:        {Name: "ANY_KW", Text: "any", Flags: syntax.FlagToken},
	KindMultifileKw:  {Name: "MULTIFILE_KW", Text: "multifile", Flags: syntax.FlagToken},
	KindSequentialKw: {Name: "SEQUENTIAL_KW", Text: "sequential", Flags: syntax.FlagToken},
	KindPrivateKw:    {Name: "PRIVATE_KW", Text: "private", Flags: syntax.FlagToken},
	KindPatternKw:    {Name: "PATTERN_KW", Text: "pattern", Flags: syntax.FlagToken},
	KindPredicateKw:  {Name: "PREDICATE_KW", Text: "predicate", Flags: syntax.FlagToken},
	KindFunctionKw:   {Name: "FUNCTION_KW", Text: "function", Flags: syntax.FlagToken},
	KindReturnKw:     {Name: "RETURN_KW", Text: "return", Flags: syntax.FlagToken},
	KindLikeKw:       {Name: "LIKE_KW", Text: "like", Flags: syntax.FlagToken},
	KindLimitKw:      {Name: "LIMIT_KW", Text: "limit", Flags: syntax.FlagToken},
	KindEngineKw:     {Name: "ENGINE_KW", Text: "engine", Flags: syntax.FlagToken},
	KindLanguageKw:   {Name: "LANGUAGE_KW", Text: "language", Flags: syntax.FlagToken},
	KindUndefinedKw:  {Name: "UNDEFINED_KW", Text: "undefined", Flags: syntax.FlagToken},
	KindTrueKw:       {Name: "TRUE_KW", Text: "true", Flags: syntax.FlagToken},
	KindFalseKw:      {Name: "FALSE_KW", Text: "false", Flags: syntax.FlagToken},

	KindRoot:      {Name: "GRIT_ROOT", Flags: syntax.FlagRoot},
	KindTokenList: {Name: "GRIT_TOKEN_LIST", Flags: syntax.FlagList},
	KindBogus:     {Name: "GRIT_BOGUS", Flags: syntax.FlagBogus},

	kindLast: {Name: "__LAST"},
})

// KindLast is the __LAST sentinel.
const KindLast = kindLast

var keywords = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := KindAndKw; k <= KindFalseKw; k++ {
		m[kinds.Spec(k.ToRaw()).Text] = k
	}
	return m
}()

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

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k >= KindAndKw && k <= KindFalseKw }

// ToBogus returns GRIT_BOGUS for every kind.
func (k Kind) ToBogus() Kind { return KindBogus }

// KindFromRaw converts a raw kind, rejecting values past __LAST.
func KindFromRaw(raw syntax.RawKind) (Kind, error) {
	if err := kinds.Check(raw); err != nil {
		return KindTombstone, err
	}
	return Kind(raw), nil
}

type language struct{}

// Language is the Grit pattern language.
var Language syntax.Language = language{}

// Name returns the language name used by the registry.
func (language) Name() string { return "grit" }

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
func (language) Root() syntax.RawKind { return KindRoot.ToRaw() }

// Last returns the __LAST sentinel.
func (language) Last() syntax.RawKind { return kindLast.ToRaw() }
