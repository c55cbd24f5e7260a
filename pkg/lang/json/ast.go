package json

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/yaklabco/gocst/pkg/syntax"
)

// ErrInvalidString is returned when a literal cannot be decoded as a string.
var ErrInvalidString = errors.New("invalid JSON string literal")

type node struct {
	n *syntax.SyntaxNode
}

// Syntax returns the wrapped syntax node.
func (x node) Syntax() *syntax.SyntaxNode { return x.n }

// IntoSyntax returns the wrapped syntax node, giving up the typed view.
func (x node) IntoSyntax() *syntax.SyntaxNode { return x.n }

func kindOf(n *syntax.SyntaxNode) Kind {
	if n == nil || n.Language() != Language {
		return KindTombstone
	}
	return Kind(n.RawKind())
}

// literal returns the trimmed text of the single token of a scalar node.
func literal(n *syntax.SyntaxNode) string {
	tok := syntax.OptionalToken(n, 0)
	if tok == nil {
		return ""
	}
	return tok.TextTrimmed()
}

// Root is the document: [value?, EOF].
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

// Value returns the top-level value. An empty document and a bogus value
// both report a missing child.
func (r Root) Value() (AnyValue, error) {
	return syntax.Required(r.n, 0, CastAnyValue)
}

// EOF returns the end-of-file token.
func (r Root) EOF() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(r.n, 1)
}

// AnyValue is one of the six JSON value types.
type AnyValue interface {
	syntax.AstNode
	isValue()
}

func (ObjectValue) isValue()  {}
func (ArrayValue) isValue()   {}
func (StringValue) isValue()  {}
func (NumberValue) isValue()  {}
func (BooleanValue) isValue() {}
func (NullValue) isValue()    {}

// CanCastAnyValue reports whether k can be viewed as an AnyValue.
func CanCastAnyValue(k Kind) bool { return k.IsValue() }

// CastAnyValue views n as an AnyValue, reporting false for any other kind.
func CastAnyValue(n *syntax.SyntaxNode) (AnyValue, bool) {
	switch kindOf(n) {
	case KindObjectValue:
		return ObjectValue{node{n}}, true
	case KindArrayValue:
		return ArrayValue{node{n}}, true
	case KindStringValue:
		return StringValue{node{n}}, true
	case KindNumberValue:
		return NumberValue{node{n}}, true
	case KindBooleanValue:
		return BooleanValue{node{n}}, true
	case KindNullValue:
		return NullValue{node{n}}, true
	}
	return nil, false
}

// ObjectValue is `{ members }`: [{, JSON_MEMBER_LIST, }].
type ObjectValue struct{ node }

// CanCastObjectValue reports whether k can be viewed as an ObjectValue.
func CanCastObjectValue(k Kind) bool { return k == KindObjectValue }

// CastObjectValue views n as an ObjectValue, reporting false for any other kind.
func CastObjectValue(n *syntax.SyntaxNode) (ObjectValue, bool) {
	if !CanCastObjectValue(kindOf(n)) {
		return ObjectValue{}, false
	}
	return ObjectValue{node{n}}, true
}

// Members returns the members with their separating commas. Bogus members
// are skipped by All but still appear in Elements.
func (o ObjectValue) Members() syntax.AstSeparatedList[Member] {
	return syntax.NewAstSeparatedList(syntax.OptionalNode(o.n, 1), CastMember)
}

// Lookup returns the last member whose decoded name is key.
func (o ObjectValue) Lookup(key string) (Member, bool) {
	var found Member
	ok := false
	for m := range o.Members().All() {
		name, err := m.Name()
		if err != nil {
			continue
		}
		if s, err := name.InnerString(); err == nil && s == key {
			found, ok = m, true
		}
	}
	return found, ok
}

// ArrayValue is `[ elements ]`: [[, JSON_ARRAY_ELEMENT_LIST, ]].
type ArrayValue struct{ node }

// CanCastArrayValue reports whether k can be viewed as an ArrayValue.
func CanCastArrayValue(k Kind) bool { return k == KindArrayValue }

// CastArrayValue views n as an ArrayValue, reporting false for any other kind.
func CastArrayValue(n *syntax.SyntaxNode) (ArrayValue, bool) {
	if !CanCastArrayValue(kindOf(n)) {
		return ArrayValue{}, false
	}
	return ArrayValue{node{n}}, true
}

// Elements returns the values with their separating commas.
func (a ArrayValue) Elements() syntax.AstSeparatedList[AnyValue] {
	return syntax.NewAstSeparatedList(syntax.OptionalNode(a.n, 1), CastAnyValue)
}

// Member is `"name": value`: [JSON_MEMBER_NAME, :, value].
type Member struct{ node }

// CanCastMember reports whether k can be viewed as a Member.
func CanCastMember(k Kind) bool { return k == KindMember }

// CastMember views n as a Member, reporting false for any other kind.
func CastMember(n *syntax.SyntaxNode) (Member, bool) {
	if !CanCastMember(kindOf(n)) {
		return Member{}, false
	}
	return Member{node{n}}, true
}

// Name returns the member name.
func (m Member) Name() (MemberName, error) {
	return syntax.Required(m.n, 0, CastMemberName)
}

// Colon returns the separator between name and value.
func (m Member) Colon() (*syntax.SyntaxToken, error) {
	return syntax.RequiredToken(m.n, 1)
}

// Value returns the member value.
func (m Member) Value() (AnyValue, error) {
	return syntax.Required(m.n, 2, CastAnyValue)
}

// MemberName is the quoted name of a member.
type MemberName struct{ node }

// CanCastMemberName reports whether k can be viewed as a MemberName.
func CanCastMemberName(k Kind) bool { return k == KindMemberName }

// CastMemberName views n as a MemberName, reporting false for any other kind.
func CastMemberName(n *syntax.SyntaxNode) (MemberName, bool) {
	if !CanCastMemberName(kindOf(n)) {
		return MemberName{}, false
	}
	return MemberName{node{n}}, true
}

// Raw returns the name as written, quotes included.
func (m MemberName) Raw() string { return literal(m.n) }

// InnerString returns the decoded name.
func (m MemberName) InnerString() (string, error) {
	return decodeString(m.Raw())
}

// StringValue is a string literal: [JSON_STRING_LITERAL].
type StringValue struct{ node }

// CanCastStringValue reports whether k can be viewed as a StringValue.
func CanCastStringValue(k Kind) bool { return k == KindStringValue }

// CastStringValue views n as a StringValue, reporting false for any other kind.
func CastStringValue(n *syntax.SyntaxNode) (StringValue, bool) {
	if !CanCastStringValue(kindOf(n)) {
		return StringValue{}, false
	}
	return StringValue{node{n}}, true
}

// Raw returns the literal as written, quotes included.
func (s StringValue) Raw() string { return literal(s.n) }

// InnerString returns the decoded string.
func (s StringValue) InnerString() (string, error) {
	return decodeString(s.Raw())
}

// NumberValue is a number literal: [JSON_NUMBER_LITERAL].
type NumberValue struct{ node }

// CanCastNumberValue reports whether k can be viewed as a NumberValue.
func CanCastNumberValue(k Kind) bool { return k == KindNumberValue }

// CastNumberValue views n as a NumberValue, reporting false for any other kind.
func CastNumberValue(n *syntax.SyntaxNode) (NumberValue, bool) {
	if !CanCastNumberValue(kindOf(n)) {
		return NumberValue{}, false
	}
	return NumberValue{node{n}}, true
}

// Raw returns the literal as written.
func (v NumberValue) Raw() string { return literal(v.n) }

// Float returns the number as a float64.
func (v NumberValue) Float() float64 {
	return gjson.Parse(v.Raw()).Float()
}

// BooleanValue is `true` or `false`.
type BooleanValue struct{ node }

// CanCastBooleanValue reports whether k can be viewed as a BooleanValue.
func CanCastBooleanValue(k Kind) bool { return k == KindBooleanValue }

// CastBooleanValue views n as a BooleanValue, reporting false for any other kind.
func CastBooleanValue(n *syntax.SyntaxNode) (BooleanValue, bool) {
	if !CanCastBooleanValue(kindOf(n)) {
		return BooleanValue{}, false
	}
	return BooleanValue{node{n}}, true
}

// Value reports whether the literal is true.
func (b BooleanValue) Value() bool { return literal(b.n) == "true" }

// NullValue is `null`.
type NullValue struct{ node }

// CanCastNullValue reports whether k can be viewed as a NullValue.
func CanCastNullValue(k Kind) bool { return k == KindNullValue }

// CastNullValue views n as a NullValue, reporting false for any other kind.
func CastNullValue(n *syntax.SyntaxNode) (NullValue, bool) {
	if !CanCastNullValue(kindOf(n)) {
		return NullValue{}, false
	}
	return NullValue{node{n}}, true
}

// decodeString unquotes a string literal that the lexer already validated.
func decodeString(raw string) (string, error) {
	res := gjson.Parse(raw)
	if res.Type != gjson.String {
		return "", fmt.Errorf("%w: %q", ErrInvalidString, raw)
	}
	return res.String(), nil
}
