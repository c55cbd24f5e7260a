package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntaxNode_ReplaceWith_SharesUntouchedSubtrees(t *testing.T) {
	t.Parallel()

	root := buildCall(nil)
	args := FindNode(root.FirstChild(), RawKind(tArgs))
	first := args.FirstChild()

	replacement := NewGreenNode(RawKind(tName), []GreenElement{NewGreenToken(RawKind(tIdent), "xyz", nil, nil)})
	newRoot, err := first.ReplaceWith(replacement)
	require.NoError(t, err)

	assert.Equal(t, "f(xyz, b)\n", newRoot.Text())
	assert.Equal(t, "f(a, b)\n", root.Text(), "the old tree is unchanged")

	oldArgs := args.Green()
	newArgs := FindNode(newRoot.FirstChild(), RawKind(tArgs)).Green()
	assert.Same(t, oldArgs.Slot(1), newArgs.Slot(1), "separator is shared")
	assert.Same(t, oldArgs.Slot(2), newArgs.Slot(2), "second element is shared")
	assert.Same(t, root.Green().Slot(1), newRoot.Green().Slot(1), "EOF is shared")
	assert.NotSame(t, root.Green(), newRoot.Green())
}

func TestSyntaxNode_ReplaceWith_RejectsForeignKinds(t *testing.T) {
	t.Parallel()

	root := buildCall(nil)
	bad := NewGreenNode(RawKind(tLast)+3, nil)

	_, err := root.FirstChild().ReplaceWith(bad)
	assert.True(t, errors.Is(err, ErrKindOutOfRange))
}

func TestSyntaxNode_ReplaceRoot(t *testing.T) {
	t.Parallel()

	root := buildCall(nil)
	replacement := NewGreenNode(RawKind(tRoot), []GreenElement{NewGreenToken(RawKind(tEOF), "", nil, nil)})
	newRoot, err := root.ReplaceWith(replacement)
	require.NoError(t, err)
	assert.Same(t, replacement, newRoot.Green())
}

func TestSyntaxNode_SpliceSlots(t *testing.T) {
	t.Parallel()

	root := buildCall(nil)
	args := FindNode(root.FirstChild(), RawKind(tArgs))

	newRoot, err := args.SpliceSlots(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "f(a)\n", newRoot.Text())
}

func TestSyntaxNode_Detach(t *testing.T) {
	t.Parallel()

	root := buildCall(nil)
	args := FindNode(root.FirstChild(), RawKind(tArgs))
	detached := args.Detach()

	assert.Nil(t, detached.Parent())
	assert.Equal(t, TextRange{Start: 0, End: 4}, detached.TextRange())
	assert.Same(t, args.Green(), detached.Green())
}

func TestSyntaxToken_ReplaceWithText(t *testing.T) {
	t.Parallel()

	root := buildCall(nil)
	comma := root.TokenAtOffset(3)
	newRoot := comma.ReplaceWithText(";")

	assert.Equal(t, "f(a; b)\n", newRoot.Text())
	tok := newRoot.TokenAtOffset(3)
	require.NotNil(t, tok)
	assert.Equal(t, " ", tok.TrailingTrivia()[0].Text())
}
