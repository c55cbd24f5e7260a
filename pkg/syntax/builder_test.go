package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeBuilder_Checkpoint(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder(testLang, nil)
	b.StartNode(RawKind(tRoot))
	cp := b.Checkpoint()
	b.Token(RawKind(tIdent), "f", nil, nil)
	b.Token(RawKind(tLParen), "(", nil, nil)
	b.StartNodeAt(cp, RawKind(tCall))
	b.Token(RawKind(tRParen), ")", nil, nil)
	b.FinishNode()
	b.Token(RawKind(tEOF), "", nil, nil)
	b.FinishNode()

	root := b.FinishRoot()
	call := root.FirstChild()
	require.NotNil(t, call)
	assert.Equal(t, RawKind(tCall), call.RawKind())
	assert.Equal(t, 3, call.SlotCount())
	assert.Equal(t, "f()", call.Text())
}

func TestTreeBuilder_Panics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *TreeBuilder)
	}{
		{
			name:  "finish node without start",
			build: func(b *TreeBuilder) { b.FinishNode() },
		},
		{
			name: "unclosed node",
			build: func(b *TreeBuilder) {
				b.StartNode(RawKind(tRoot))
				b.Finish()
			},
		},
		{
			name: "two roots",
			build: func(b *TreeBuilder) {
				b.StartNode(RawKind(tRoot))
				b.FinishNode()
				b.StartNode(RawKind(tRoot))
				b.FinishNode()
				b.Finish()
			},
		},
		{
			name: "top level token",
			build: func(b *TreeBuilder) {
				b.Token(RawKind(tIdent), "x", nil, nil)
				b.Finish()
			},
		},
		{
			name:  "tombstone",
			build: func(b *TreeBuilder) { b.StartNode(Tombstone) },
		},
		{
			name:  "out of range kind",
			build: func(b *TreeBuilder) { b.StartNode(RawKind(tLast) + 1) },
		},
		{
			name: "checkpoint at other depth",
			build: func(b *TreeBuilder) {
				cp := b.Checkpoint()
				b.StartNode(RawKind(tRoot))
				b.StartNodeAt(cp, RawKind(tCall))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Panics(t, func() { tt.build(NewTreeBuilder(testLang, nil)) })
		})
	}
}

func TestTreeBuilder_TextIsVerbatim(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder(testLang, nil)
	b.StartNode(RawKind(tRoot))
	b.Token(RawKind(tIdent), "\téX\r\n", []TriviaPiece{{Kind: TriviaWhitespace, Length: 1}},
		[]TriviaPiece{{Kind: TriviaNewline, Length: 2}})
	b.FinishNode()

	root := b.FinishRoot()
	assert.Equal(t, "\téX\r\n", root.Text())
	assert.Equal(t, "éX", root.FirstToken().TextTrimmed())
}
