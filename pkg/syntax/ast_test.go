package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameNode struct {
	node *SyntaxNode
}

func canCastName(kind RawKind) bool { return kind == RawKind(tName) }

func castName(n *SyntaxNode) (nameNode, bool) {
	if n == nil || !canCastName(n.RawKind()) {
		return nameNode{}, false
	}
	return nameNode{node: n}, true
}

func (n nameNode) Syntax() *SyntaxNode { return n.node }

func (n nameNode) Ident() (*SyntaxToken, error) { return RequiredToken(n.node, 0) }

func TestCastSoundness(t *testing.T) {
	t.Parallel()

	root := buildCall(nil)
	for node := range root.Descendants() {
		got, ok := castName(node)
		assert.Equal(t, canCastName(node.RawKind()), ok)
		if ok {
			assert.True(t, got.Syntax().Equal(node))
		}
	}
}

func TestRequiredNode_Missing(t *testing.T) {
	t.Parallel()

	root := buildCall(nil)
	call := root.FirstChild()

	_, err := RequiredNode(call, 0)
	require.Error(t, err, "slot 0 holds a token")
	assert.True(t, errors.Is(err, ErrMissingRequiredChild))

	var missing *MissingRequiredChildError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 0, missing.Slot)
	assert.Equal(t, "CALL", missing.Parent.String())
	assert.Contains(t, err.Error(), "CALL@0..7")

	node, err := RequiredNode(call, 2)
	require.NoError(t, err)
	assert.Equal(t, RawKind(tArgs), node.RawKind())
	assert.Nil(t, OptionalNode(call, 99))
}

func TestRequired_CastFailure(t *testing.T) {
	t.Parallel()

	root := buildCall(nil)
	_, err := Required(root, 0, castName)
	assert.True(t, errors.Is(err, ErrMissingRequiredChild), "CALL is not a NAME")

	args := FindNode(root.FirstChild(), RawKind(tArgs))
	name, err := Required(args, 0, castName)
	require.NoError(t, err)
	ident, err := name.Ident()
	require.NoError(t, err)
	assert.Equal(t, "a", ident.TextTrimmed())

	_, ok := Optional(args, 1, castName)
	assert.False(t, ok)
}

func TestFindToken(t *testing.T) {
	t.Parallel()

	call := buildCall(nil).FirstChild()
	tok := FindToken(call, RawKind(tRParen), RawKind(tLParen))
	require.NotNil(t, tok)
	assert.Equal(t, "(", tok.TextTrimmed())
	assert.Nil(t, FindToken(call, RawKind(tComma)))
}

func TestAstNodeList(t *testing.T) {
	t.Parallel()

	args := FindNode(buildCall(nil).FirstChild(), RawKind(tArgs))
	list := NewAstNodeList(args, castName)

	assert.Equal(t, 2, list.Len())
	assert.False(t, list.IsEmpty())

	var texts []string
	for name := range list.All() {
		texts = append(texts, name.Syntax().Text())
	}
	assert.Equal(t, []string{"a", "b"}, texts)

	empty := NewAstNodeList[nameNode](nil, castName)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
}

func TestAstSeparatedList(t *testing.T) {
	t.Parallel()

	args := FindNode(buildCall(nil).FirstChild(), RawKind(tArgs))
	list := NewAstSeparatedList(args, castName)

	var elems []SeparatedElement[nameNode]
	for el := range list.Elements() {
		elems = append(elems, el)
	}
	require.Len(t, elems, 2)
	require.NotNil(t, elems[0].Separator)
	assert.Equal(t, ",", elems[0].Separator.TextTrimmed())
	assert.Nil(t, elems[1].Separator)
	assert.Nil(t, list.TrailingSeparator())
	assert.Equal(t, 2, list.Len())
}

func TestAstSeparatedList_TrailingSeparator(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder(testLang, nil)
	b.StartNode(RawKind(tArgs))
	b.StartNode(RawKind(tName))
	b.Token(RawKind(tIdent), "a", nil, nil)
	b.FinishNode()
	b.Token(RawKind(tComma), ",", nil, nil)
	b.FinishNode()
	list := NewAstSeparatedList(b.FinishRoot(), castName)

	sep := list.TrailingSeparator()
	require.NotNil(t, sep)
	assert.Equal(t, TextRange{Start: 1, End: 2}, sep.TextRange())
}
