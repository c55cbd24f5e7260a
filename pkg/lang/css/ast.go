package css

import (
	"strings"

	"github.com/yaklabco/gocst/pkg/syntax"
)

// node is embedded by every typed wrapper.
type node struct {
	n *syntax.SyntaxNode
}

// Syntax returns the wrapped syntax node.
func (x node) Syntax() *syntax.SyntaxNode { return x.n }

// IntoSyntax returns the wrapped syntax node, giving up the typed view.
func (x node) IntoSyntax() *syntax.SyntaxNode { return x.n }

// kindOf returns the CSS kind of n, or KindTombstone for nodes of other
// languages.
func kindOf(n *syntax.SyntaxNode) Kind {
	if n == nil || n.Language() != Language {
		return KindTombstone
	}
	return Kind(n.RawKind())
}

func tokenText(t *syntax.SyntaxToken) string {
	if t == nil {
		return ""
	}
	return t.TextTrimmed()
}

// Root is the stylesheet: [CSS_RULE_LIST, EOF].
type Root struct{ node }

// CanCastRoot reports whether k can be viewed as a Root.
func CanCastRoot(k Kind) bool { return k == KindRoot }

// CastRoot views n as a Root, reporting false for any other kind.
func CastRoot(n *syntax.SyntaxNode) (Root, bool) {
	if !CanCastRoot(kindOf(n)) {
		return Root{}, false
	}
	return Root{node{n}}, true
}

// Rules returns the top-level rule list.
func (r Root) Rules() (RuleList, error) {
	return syntax.Required(r.n, 0, CastRuleList)
}

// EOF returns the end-of-file token, which carries the trailing trivia.
func (r Root) EOF() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(r.n, 1)
}

// RuleList is a list of rules.
type RuleList struct{ node }

// CanCastRuleList reports whether k can be viewed as a RuleList.
func CanCastRuleList(k Kind) bool { return k == KindRuleList }

// CastRuleList views n as a RuleList, reporting false for any other kind.
func CastRuleList(n *syntax.SyntaxNode) (RuleList, bool) {
	if !CanCastRuleList(kindOf(n)) {
		return RuleList{}, false
	}
	return RuleList{node{n}}, true
}

// Rules iterates over the rules. Bogus rules are skipped.
func (l RuleList) Rules() syntax.AstNodeList[AnyRule] {
	return syntax.NewAstNodeList(l.n, CastAnyRule)
}

// AnyRule is a QualifiedRule or one of the at-rules.
type AnyRule interface {
	syntax.AstNode
	isRule()
}

func (QualifiedRule) isRule()   {}
func (KeyframesAtRule) isRule() {}
func (MediaAtRule) isRule()     {}
func (CharsetAtRule) isRule()   {}
func (ImportAtRule) isRule()    {}
func (UnknownAtRule) isRule()   {}

// CanCastAnyRule reports whether k can be viewed as an AnyRule.
func CanCastAnyRule(k Kind) bool {
	return k == KindQualifiedRule || CanCastAnyAtRule(k)
}

// CastAnyRule views n as an AnyRule, reporting false for any other kind.
func CastAnyRule(n *syntax.SyntaxNode) (AnyRule, bool) {
	if kindOf(n) == KindQualifiedRule {
		return QualifiedRule{node{n}}, true
	}
	if at, ok := CastAnyAtRule(n); ok {
		return at, true
	}
	return nil, false
}

// QualifiedRule is `selectors { declarations }`:
// [CSS_SELECTOR_LIST, CSS_DECLARATION_BLOCK].
type QualifiedRule struct{ node }

// CanCastQualifiedRule reports whether k can be viewed as a QualifiedRule.
func CanCastQualifiedRule(k Kind) bool { return k == KindQualifiedRule }

// CastQualifiedRule views n as a QualifiedRule, reporting false for any other kind.
func CastQualifiedRule(n *syntax.SyntaxNode) (QualifiedRule, bool) {
	if !CanCastQualifiedRule(kindOf(n)) {
		return QualifiedRule{}, false
	}
	return QualifiedRule{node{n}}, true
}

// Selectors returns the prelude selector list.
func (r QualifiedRule) Selectors() (SelectorList, error) {
	return syntax.Required(r.n, 0, CastSelectorList)
}

// Block returns the declaration block.
func (r QualifiedRule) Block() (DeclarationBlock, error) {
	return syntax.Required(r.n, 1, CastDeclarationBlock)
}

// SelectorList is a comma-separated list of selectors.
type SelectorList struct{ node }

// CanCastSelectorList reports whether k can be viewed as a SelectorList.
func CanCastSelectorList(k Kind) bool { return k == KindSelectorList }

// CastSelectorList views n as a SelectorList, reporting false for any other kind.
func CastSelectorList(n *syntax.SyntaxNode) (SelectorList, bool) {
	if !CanCastSelectorList(kindOf(n)) {
		return SelectorList{}, false
	}
	return SelectorList{node{n}}, true
}

// Selectors returns the selectors with their separating commas.
func (l SelectorList) Selectors() syntax.AstSeparatedList[AnySelector] {
	return syntax.NewAstSeparatedList(l.n, CastAnySelector)
}

// AnySelector is a CompoundSelector or a ComplexSelector.
type AnySelector interface {
	syntax.AstNode
	isSelector()
}

func (CompoundSelector) isSelector() {}
func (ComplexSelector) isSelector()  {}

// CanCastAnySelector reports whether k can be viewed as an AnySelector.
func CanCastAnySelector(k Kind) bool {
	return k == KindCompoundSelector || k == KindComplexSelector
}

// CastAnySelector views n as an AnySelector, reporting false for any other kind.
func CastAnySelector(n *syntax.SyntaxNode) (AnySelector, bool) {
	switch kindOf(n) {
	case KindCompoundSelector:
		return CompoundSelector{node{n}}, true
	case KindComplexSelector:
		return ComplexSelector{node{n}}, true
	}
	return nil, false
}

// ComplexSelector joins two selectors with a combinator:
// [left, combinator?, CSS_COMPOUND_SELECTOR]. An empty combinator slot is
// the descendant combinator.
type ComplexSelector struct{ node }

// CanCastComplexSelector reports whether k can be viewed as a ComplexSelector.
func CanCastComplexSelector(k Kind) bool { return k == KindComplexSelector }

// CastComplexSelector views n as a ComplexSelector, reporting false for any other kind.
func CastComplexSelector(n *syntax.SyntaxNode) (ComplexSelector, bool) {
	if !CanCastComplexSelector(kindOf(n)) {
		return ComplexSelector{}, false
	}
	return ComplexSelector{node{n}}, true
}

// Left returns the selector before the combinator.
func (s ComplexSelector) Left() (AnySelector, error) {
	return syntax.Required(s.n, 0, CastAnySelector)
}

// Combinator returns '>', '+' or '~', or nil for the descendant combinator.
func (s ComplexSelector) Combinator() *syntax.SyntaxToken {
	return syntax.OptionalToken(s.n, 1)
}

// Right returns the compound selector after the combinator.
func (s ComplexSelector) Right() (CompoundSelector, error) {
	return syntax.Required(s.n, 2, CastCompoundSelector)
}

// CompoundSelector is [simple selector?, CSS_SUB_SELECTOR_LIST].
type CompoundSelector struct{ node }

// CanCastCompoundSelector reports whether k can be viewed as a CompoundSelector.
func CanCastCompoundSelector(k Kind) bool { return k == KindCompoundSelector }

// CastCompoundSelector views n as a CompoundSelector, reporting false for any other kind.
func CastCompoundSelector(n *syntax.SyntaxNode) (CompoundSelector, bool) {
	if !CanCastCompoundSelector(kindOf(n)) {
		return CompoundSelector{}, false
	}
	return CompoundSelector{node{n}}, true
}

// Simple returns the type, universal or nesting selector, if any.
func (s CompoundSelector) Simple() *syntax.SyntaxNode {
	return syntax.OptionalNode(s.n, 0)
}

// TypeSelector returns the element name selector, if any.
func (s CompoundSelector) TypeSelector() (TypeSelector, bool) {
	return syntax.Optional(s.n, 0, CastTypeSelector)
}

// SubSelectors iterates over the class, id, attribute and pseudo parts.
func (s CompoundSelector) SubSelectors() syntax.AstNodeList[AnySubSelector] {
	return syntax.NewAstNodeList(syntax.OptionalNode(s.n, 1), CastAnySubSelector)
}

// TypeSelector is an element name: [IDENT].
type TypeSelector struct{ node }

// CanCastTypeSelector reports whether k can be viewed as a TypeSelector.
func CanCastTypeSelector(k Kind) bool { return k == KindTypeSelector }

// CastTypeSelector views n as a TypeSelector, reporting false for any other kind.
func CastTypeSelector(n *syntax.SyntaxNode) (TypeSelector, bool) {
	if !CanCastTypeSelector(kindOf(n)) {
		return TypeSelector{}, false
	}
	return TypeSelector{node{n}}, true
}

// Name returns the element name token.
func (s TypeSelector) Name() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(s.n, 0)
}

// AnySubSelector is a class, id, attribute or pseudo selector.
type AnySubSelector interface {
	syntax.AstNode
	isSubSelector()
}

func (ClassSelector) isSubSelector()               {}
func (IDSelector) isSubSelector()                  {}
func (AttributeSelector) isSubSelector()           {}
func (PseudoClassSelector) isSubSelector()         {}
func (PseudoClassFunctionSelector) isSubSelector() {}
func (PseudoElementSelector) isSubSelector()       {}

// CanCastAnySubSelector reports whether k can be viewed as an AnySubSelector.
func CanCastAnySubSelector(k Kind) bool {
	switch k {
	case KindClassSelector, KindIDSelector, KindAttributeSelector, KindPseudoClassSelector,
		KindPseudoClassFunctionSelector, KindPseudoElementSelector, KindPseudoElementFunctionSelector:
		return true
	}
	return false
}

// CastAnySubSelector views n as an AnySubSelector, reporting false for any other kind.
func CastAnySubSelector(n *syntax.SyntaxNode) (AnySubSelector, bool) {
	switch kindOf(n) {
	case KindClassSelector:
		return ClassSelector{node{n}}, true
	case KindIDSelector:
		return IDSelector{node{n}}, true
	case KindAttributeSelector:
		return AttributeSelector{node{n}}, true
	case KindPseudoClassSelector:
		return PseudoClassSelector{node{n}}, true
	case KindPseudoClassFunctionSelector:
		return PseudoClassFunctionSelector{node{n}}, true
	case KindPseudoElementSelector, KindPseudoElementFunctionSelector:
		return PseudoElementSelector{node{n}}, true
	}
	return nil, false
}

// ClassSelector is [DOT, IDENT].
type ClassSelector struct{ node }

// CanCastClassSelector reports whether k can be viewed as a ClassSelector.
func CanCastClassSelector(k Kind) bool { return k == KindClassSelector }

// CastClassSelector views n as a ClassSelector, reporting false for any other kind.
func CastClassSelector(n *syntax.SyntaxNode) (ClassSelector, bool) {
	if !CanCastClassSelector(kindOf(n)) {
		return ClassSelector{}, false
	}
	return ClassSelector{node{n}}, true
}

// Name returns the class name without the dot.
func (s ClassSelector) Name() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(s.n, 1)
}

// IDSelector is [HASH].
type IDSelector struct{ node }

// CanCastIDSelector reports whether k can be viewed as an IDSelector.
func CanCastIDSelector(k Kind) bool { return k == KindIDSelector }

// CastIDSelector views n as an IDSelector, reporting false for any other kind.
func CastIDSelector(n *syntax.SyntaxNode) (IDSelector, bool) {
	if !CanCastIDSelector(kindOf(n)) {
		return IDSelector{}, false
	}
	return IDSelector{node{n}}, true
}

// Name returns the id without the leading '#'.
func (s IDSelector) Name() (string, error) {
	tok, err := syntax.RequiredToken(s.n, 0)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(tok.TextTrimmed(), "#"), nil
}

// AttributeSelector is [L_BRACK, IDENT, CSS_ATTRIBUTE_MATCHER?, R_BRACK].
type AttributeSelector struct{ node }

// CanCastAttributeSelector reports whether k can be viewed as an AttributeSelector.
func CanCastAttributeSelector(k Kind) bool { return k == KindAttributeSelector }

// CastAttributeSelector views n as an AttributeSelector, reporting false for any other kind.
func CastAttributeSelector(n *syntax.SyntaxNode) (AttributeSelector, bool) {
	if !CanCastAttributeSelector(kindOf(n)) {
		return AttributeSelector{}, false
	}
	return AttributeSelector{node{n}}, true
}

// Name returns the attribute name token.
func (s AttributeSelector) Name() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(s.n, 1)
}

// Operator returns the matcher operator such as '=' or '^=', or nil.
func (s AttributeSelector) Operator() *syntax.SyntaxToken {
	if m := syntax.OptionalNode(s.n, 2); m != nil {
		return syntax.OptionalToken(m, 0)
	}
	return nil
}

// Value returns the matched identifier or string, or nil.
func (s AttributeSelector) Value() *syntax.SyntaxToken {
	if m := syntax.OptionalNode(s.n, 2); m != nil {
		return syntax.OptionalToken(m, 1)
	}
	return nil
}

// PseudoClassSelector is [COLON, IDENT].
type PseudoClassSelector struct{ node }

// CanCastPseudoClassSelector reports whether k can be viewed as a PseudoClassSelector.
func CanCastPseudoClassSelector(k Kind) bool { return k == KindPseudoClassSelector }

// CastPseudoClassSelector views n as a PseudoClassSelector, reporting false for any other kind.
func CastPseudoClassSelector(n *syntax.SyntaxNode) (PseudoClassSelector, bool) {
	if !CanCastPseudoClassSelector(kindOf(n)) {
		return PseudoClassSelector{}, false
	}
	return PseudoClassSelector{node{n}}, true
}

// Name returns the pseudo-class name without the colon.
func (s PseudoClassSelector) Name() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(s.n, 1)
}

// NameRange returns the range of the name alone, without the colon or trivia.
func (s PseudoClassSelector) NameRange() (syntax.TextRange, error) {
	return nameRange(s.n, 1)
}

func nameRange(n *syntax.SyntaxNode, slot int) (syntax.TextRange, error) {
	tok, err := syntax.RequiredToken(n, slot)
	if err != nil {
		return syntax.TextRange{}, err
	}
	return tok.TextTrimmedRange(), nil
}

// PseudoClassFunctionSelector is [COLON, IDENT, L_PAREN, arguments, R_PAREN].
// The arguments are a selector list or a component value list.
type PseudoClassFunctionSelector struct{ node }

// CanCastPseudoClassFunctionSelector reports whether k can be viewed as a PseudoClassFunctionSelector.
func CanCastPseudoClassFunctionSelector(k Kind) bool { return k == KindPseudoClassFunctionSelector }

// CastPseudoClassFunctionSelector views n as a PseudoClassFunctionSelector, reporting false for any other kind.
func CastPseudoClassFunctionSelector(n *syntax.SyntaxNode) (PseudoClassFunctionSelector, bool) {
	if !CanCastPseudoClassFunctionSelector(kindOf(n)) {
		return PseudoClassFunctionSelector{}, false
	}
	return PseudoClassFunctionSelector{node{n}}, true
}

// Name returns the function name without the colon.
func (s PseudoClassFunctionSelector) Name() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(s.n, 1)
}

// NameRange returns the trimmed range of the function name.
func (s PseudoClassFunctionSelector) NameRange() (syntax.TextRange, error) {
	return nameRange(s.n, 1)
}

// Selectors returns the argument when it is a selector list.
func (s PseudoClassFunctionSelector) Selectors() (SelectorList, bool) {
	return syntax.Optional(s.n, 3, CastSelectorList)
}

// Arguments returns the node between the parentheses.
func (s PseudoClassFunctionSelector) Arguments() (*syntax.SyntaxNode, error) {
	return syntax.RequiredNode(s.n, 3)
}

// PseudoElementSelector is [COLON2, IDENT] or its function form
// [COLON2, IDENT, L_PAREN, arguments, R_PAREN].
type PseudoElementSelector struct{ node }

// CanCastPseudoElementSelector reports whether k can be viewed as a PseudoElementSelector.
func CanCastPseudoElementSelector(k Kind) bool {
	return k == KindPseudoElementSelector || k == KindPseudoElementFunctionSelector
}

// CastPseudoElementSelector views n as a PseudoElementSelector, reporting false for any other kind.
func CastPseudoElementSelector(n *syntax.SyntaxNode) (PseudoElementSelector, bool) {
	if !CanCastPseudoElementSelector(kindOf(n)) {
		return PseudoElementSelector{}, false
	}
	return PseudoElementSelector{node{n}}, true
}

// Name returns the pseudo-element name without the colons.
func (s PseudoElementSelector) Name() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(s.n, 1)
}

// NameRange returns the trimmed range of the name.
func (s PseudoElementSelector) NameRange() (syntax.TextRange, error) {
	return nameRange(s.n, 1)
}

// IsFunction reports whether the selector takes arguments.
func (s PseudoElementSelector) IsFunction() bool {
	return kindOf(s.n) == KindPseudoElementFunctionSelector
}

// DeclarationBlock is [L_CURLY, CSS_DECLARATION_LIST, R_CURLY].
type DeclarationBlock struct{ node }

// CanCastDeclarationBlock reports whether k can be viewed as a DeclarationBlock.
func CanCastDeclarationBlock(k Kind) bool { return k == KindDeclarationBlock }

// CastDeclarationBlock views n as a DeclarationBlock, reporting false for any other kind.
func CastDeclarationBlock(n *syntax.SyntaxNode) (DeclarationBlock, bool) {
	if !CanCastDeclarationBlock(kindOf(n)) {
		return DeclarationBlock{}, false
	}
	return DeclarationBlock{node{n}}, true
}

// LCurly returns the opening brace.
func (b DeclarationBlock) LCurly() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(b.n, 0)
}

// RCurly returns the closing brace, which recovery may leave missing.
func (b DeclarationBlock) RCurly() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(b.n, 2)
}

// Items returns every item node of the block, including empty
// declarations, nested rules and bogus items.
func (b DeclarationBlock) Items() syntax.AstNodeList[*syntax.SyntaxNode] {
	return syntax.NewAstNodeList(syntax.OptionalNode(b.n, 1), func(n *syntax.SyntaxNode) (*syntax.SyntaxNode, bool) {
		return n, true
	})
}

// Declarations iterates over the declarations. Bogus items are skipped.
func (b DeclarationBlock) Declarations() syntax.AstNodeList[Declaration] {
	return syntax.NewAstNodeList(syntax.OptionalNode(b.n, 1), CastDeclaration)
}

// Rules returns the nested rules of the block.
func (b DeclarationBlock) Rules() syntax.AstNodeList[AnyRule] {
	return syntax.NewAstNodeList(syntax.OptionalNode(b.n, 1), CastAnyRule)
}

// IsEmpty reports whether the block holds nothing but trivia.
func (b DeclarationBlock) IsEmpty() bool {
	list := syntax.OptionalNode(b.n, 1)
	return list == nil || list.FirstChild() == nil
}

// Declaration is `property: value !important;`:
// [IDENT, COLON, CSS_COMPONENT_VALUE_LIST, CSS_DECLARATION_IMPORTANT?, SEMICOLON?].
type Declaration struct{ node }

// CanCastDeclaration reports whether k can be viewed as a Declaration.
func CanCastDeclaration(k Kind) bool { return k == KindDeclaration }

// CastDeclaration views n as a Declaration, reporting false for any other kind.
func CastDeclaration(n *syntax.SyntaxNode) (Declaration, bool) {
	if !CanCastDeclaration(kindOf(n)) {
		return Declaration{}, false
	}
	return Declaration{node{n}}, true
}

// Property returns the property name token.
func (d Declaration) Property() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(d.n, 0)
}

// PropertyName returns the property name in lower case. Custom properties
// keep their case.
func (d Declaration) PropertyName() string {
	name := tokenText(syntax.OptionalToken(d.n, 0))
	if strings.HasPrefix(name, "--") {
		return name
	}
	return strings.ToLower(name)
}

// Value returns the component values after the colon.
func (d Declaration) Value() (ComponentValueList, error) {
	return syntax.Required(d.n, 2, CastComponentValueList)
}

// Important returns the !important flag, if present.
func (d Declaration) Important() (Important, bool) {
	return syntax.Optional(d.n, 3, CastImportant)
}

// Semicolon returns the terminating semicolon, or nil.
func (d Declaration) Semicolon() *syntax.SyntaxToken {
	return syntax.OptionalToken(d.n, 4)
}

// Important is [BANG, IMPORTANT_KW].
type Important struct{ node }

// CanCastImportant reports whether k can be viewed as an Important.
func CanCastImportant(k Kind) bool { return k == KindImportant }

// CastImportant views n as an Important, reporting false for any other kind.
func CastImportant(n *syntax.SyntaxNode) (Important, bool) {
	if !CanCastImportant(kindOf(n)) {
		return Important{}, false
	}
	return Important{node{n}}, true
}

// ComponentValueList is a sequence of values such as `1px solid red`.
type ComponentValueList struct{ node }

// CanCastComponentValueList reports whether k can be viewed as a ComponentValueList.
func CanCastComponentValueList(k Kind) bool { return k == KindComponentValueList }

// CastComponentValueList views n as a ComponentValueList, reporting false for any other kind.
func CastComponentValueList(n *syntax.SyntaxNode) (ComponentValueList, bool) {
	if !CanCastComponentValueList(kindOf(n)) {
		return ComponentValueList{}, false
	}
	return ComponentValueList{node{n}}, true
}

// Values yields the value nodes, bogus values included.
func (l ComponentValueList) Values() syntax.AstNodeList[*syntax.SyntaxNode] {
	return syntax.NewAstNodeList(l.n, func(n *syntax.SyntaxNode) (*syntax.SyntaxNode, bool) {
		return n, true
	})
}

// AnyAtRule is one of the at-rules.
type AnyAtRule interface {
	AnyRule
	Keyword() (*syntax.SyntaxToken, error)
}

// CanCastAnyAtRule reports whether k can be viewed as an AnyAtRule.
func CanCastAnyAtRule(k Kind) bool {
	switch k {
	case KindKeyframesAtRule, KindMediaAtRule, KindCharsetAtRule, KindImportAtRule, KindUnknownAtRule:
		return true
	}
	return false
}

// CastAnyAtRule views n as an AnyAtRule, reporting false for any other kind.
func CastAnyAtRule(n *syntax.SyntaxNode) (AnyAtRule, bool) {
	switch kindOf(n) {
	case KindKeyframesAtRule:
		return KeyframesAtRule{atRule{node{n}}}, true
	case KindMediaAtRule:
		return MediaAtRule{atRule{node{n}}}, true
	case KindCharsetAtRule:
		return CharsetAtRule{atRule{node{n}}}, true
	case KindImportAtRule:
		return ImportAtRule{atRule{node{n}}}, true
	case KindUnknownAtRule:
		return UnknownAtRule{atRule{node{n}}}, true
	}
	return nil, false
}

// atRule holds the accessors shared by every at-rule. The at-keyword is
// always slot 0.
type atRule struct{ node }

// Keyword returns the at-keyword token, e.g. `@media`.
func (a atRule) Keyword() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(a.n, 0)
}

// KeywordName returns the lower-cased at-rule name without '@'.
func (a atRule) KeywordName() string {
	return strings.ToLower(strings.TrimPrefix(tokenText(syntax.OptionalToken(a.n, 0)), "@"))
}

// AtRule is a kind-agnostic view over any at-rule, bogus ones included.
type AtRule struct{ atRule }

// CanCastAtRule reports whether k can be viewed as an AtRule.
func CanCastAtRule(k Kind) bool {
	return CanCastAnyAtRule(k) || k == KindBogusAtRule
}

// CastAtRule views n as an AtRule, reporting false for any other kind.
func CastAtRule(n *syntax.SyntaxNode) (AtRule, bool) {
	if !CanCastAtRule(kindOf(n)) {
		return AtRule{}, false
	}
	return AtRule{atRule{node{n}}}, true
}

// Specific returns the typed at-rule, or false for a bogus at-rule.
func (a AtRule) Specific() (AnyAtRule, bool) {
	return CastAnyAtRule(a.n)
}

// KeyframesAtRule is [AT_KEYWORD, name, CSS_KEYFRAMES_BLOCK].
type KeyframesAtRule struct{ atRule }

// CanCastKeyframesAtRule reports whether k can be viewed as a KeyframesAtRule.
func CanCastKeyframesAtRule(k Kind) bool { return k == KindKeyframesAtRule }

// CastKeyframesAtRule views n as a KeyframesAtRule, reporting false for any other kind.
func CastKeyframesAtRule(n *syntax.SyntaxNode) (KeyframesAtRule, bool) {
	if !CanCastKeyframesAtRule(kindOf(n)) {
		return KeyframesAtRule{}, false
	}
	return KeyframesAtRule{atRule{node{n}}}, true
}

// Name returns the animation name, an identifier or a string.
func (r KeyframesAtRule) Name() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(r.n, 1)
}

// Block returns the braces holding the keyframe items.
func (r KeyframesAtRule) Block() (KeyframesBlock, error) {
	return syntax.Required(r.n, 2, CastKeyframesBlock)
}

// KeyframesBlock is [L_CURLY, CSS_KEYFRAMES_ITEM_LIST, R_CURLY].
type KeyframesBlock struct{ node }

// CanCastKeyframesBlock reports whether k can be viewed as a KeyframesBlock.
func CanCastKeyframesBlock(k Kind) bool { return k == KindKeyframesBlock }

// CastKeyframesBlock views n as a KeyframesBlock, reporting false for any other kind.
func CastKeyframesBlock(n *syntax.SyntaxNode) (KeyframesBlock, bool) {
	if !CanCastKeyframesBlock(kindOf(n)) {
		return KeyframesBlock{}, false
	}
	return KeyframesBlock{node{n}}, true
}

// Items iterates over the keyframe items.
func (b KeyframesBlock) Items() syntax.AstNodeList[KeyframesItem] {
	return syntax.NewAstNodeList(syntax.OptionalNode(b.n, 1), CastKeyframesItem)
}

// KeyframesItem is [CSS_KEYFRAMES_SELECTOR_LIST, CSS_DECLARATION_BLOCK].
type KeyframesItem struct{ node }

// CanCastKeyframesItem reports whether k can be viewed as a KeyframesItem.
func CanCastKeyframesItem(k Kind) bool { return k == KindKeyframesItem }

// CastKeyframesItem views n as a KeyframesItem, reporting false for any other kind.
func CastKeyframesItem(n *syntax.SyntaxNode) (KeyframesItem, bool) {
	if !CanCastKeyframesItem(kindOf(n)) {
		return KeyframesItem{}, false
	}
	return KeyframesItem{node{n}}, true
}

// Selectors returns the `from`, `to` and percentage selectors.
func (i KeyframesItem) Selectors() []*syntax.SyntaxToken {
	list := syntax.OptionalNode(i.n, 0)
	if list == nil {
		return nil
	}
	var out []*syntax.SyntaxToken
	for c := range list.Children() {
		if kindOf(c) == KindKeyframesSelector {
			if tok := syntax.OptionalToken(c, 0); tok != nil {
				out = append(out, tok)
			}
		}
	}
	return out
}

// Block returns the declarations of the keyframe.
func (i KeyframesItem) Block() (DeclarationBlock, error) {
	return syntax.Required(i.n, 1, CastDeclarationBlock)
}

// MediaAtRule is [AT_KEYWORD, CSS_COMPONENT_VALUE_LIST, CSS_RULE_BLOCK].
type MediaAtRule struct{ atRule }

// CanCastMediaAtRule reports whether k can be viewed as a MediaAtRule.
func CanCastMediaAtRule(k Kind) bool { return k == KindMediaAtRule }

// CastMediaAtRule views n as a MediaAtRule, reporting false for any other kind.
func CastMediaAtRule(n *syntax.SyntaxNode) (MediaAtRule, bool) {
	if !CanCastMediaAtRule(kindOf(n)) {
		return MediaAtRule{}, false
	}
	return MediaAtRule{atRule{node{n}}}, true
}

// Query returns the media query prelude.
func (r MediaAtRule) Query() (ComponentValueList, error) {
	return syntax.Required(r.n, 1, CastComponentValueList)
}

// Rules returns the rules inside the block. The block itself may be bogus
// when its closing brace is missing.
func (r MediaAtRule) Rules() (RuleList, error) {
	block, err := syntax.RequiredNode(r.n, 2)
	if err != nil {
		return RuleList{}, err
	}
	return syntax.Required(block, 1, CastRuleList)
}

// CharsetAtRule is [AT_KEYWORD, CSS_STRING_LITERAL, SEMICOLON].
type CharsetAtRule struct{ atRule }

// CanCastCharsetAtRule reports whether k can be viewed as a CharsetAtRule.
func CanCastCharsetAtRule(k Kind) bool { return k == KindCharsetAtRule }

// CastCharsetAtRule views n as a CharsetAtRule, reporting false for any other kind.
func CastCharsetAtRule(n *syntax.SyntaxNode) (CharsetAtRule, bool) {
	if !CanCastCharsetAtRule(kindOf(n)) {
		return CharsetAtRule{}, false
	}
	return CharsetAtRule{atRule{node{n}}}, true
}

// Encoding returns the string naming the encoding.
func (r CharsetAtRule) Encoding() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(r.n, 1)
}

// ImportAtRule is [AT_KEYWORD, CSS_COMPONENT_VALUE_LIST, SEMICOLON].
type ImportAtRule struct{ atRule }

// CanCastImportAtRule reports whether k can be viewed as an ImportAtRule.
func CanCastImportAtRule(k Kind) bool { return k == KindImportAtRule }

// CastImportAtRule views n as an ImportAtRule, reporting false for any other kind.
func CastImportAtRule(n *syntax.SyntaxNode) (ImportAtRule, bool) {
	if !CanCastImportAtRule(kindOf(n)) {
		return ImportAtRule{}, false
	}
	return ImportAtRule{atRule{node{n}}}, true
}

// Target returns the URL or string and any trailing media list.
func (r ImportAtRule) Target() (ComponentValueList, error) {
	return syntax.Required(r.n, 1, CastComponentValueList)
}

// UnknownAtRule is [AT_KEYWORD, CSS_COMPONENT_VALUE_LIST, CSS_UNKNOWN_BLOCK?, SEMICOLON?].
type UnknownAtRule struct{ atRule }

// CanCastUnknownAtRule reports whether k can be viewed as an UnknownAtRule.
func CanCastUnknownAtRule(k Kind) bool { return k == KindUnknownAtRule }

// CastUnknownAtRule views n as an UnknownAtRule, reporting false for any other kind.
func CastUnknownAtRule(n *syntax.SyntaxNode) (UnknownAtRule, bool) {
	if !CanCastUnknownAtRule(kindOf(n)) {
		return UnknownAtRule{}, false
	}
	return UnknownAtRule{atRule{node{n}}}, true
}

// Prelude returns the values between the at-keyword and the block.
func (r UnknownAtRule) Prelude() (ComponentValueList, error) {
	return syntax.Required(r.n, 1, CastComponentValueList)
}

// Block returns the braced block, or nil for statement at-rules.
func (r UnknownAtRule) Block() *syntax.SyntaxNode {
	return syntax.OptionalNode(r.n, 2)
}
