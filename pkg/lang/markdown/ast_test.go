package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/lang/markdown"
)

func TestDocumentBlocks(t *testing.T) {
	t.Parallel()

	src := "# One #\n\nTwo\n---\n\n```go title=x\nfmt.Println()\n```\n\nsome\ntext\n\n- item\n"
	doc, ok := markdown.CastDocument(markdown.Parse(src).Root)
	require.True(t, ok)

	var blocks []markdown.AnyBlock
	for b := range doc.Blocks().All() {
		blocks = append(blocks, b)
	}
	require.Len(t, blocks, 5)

	h, ok := blocks[0].(markdown.Header)
	require.True(t, ok)
	assert.Equal(t, 1, h.Level())
	assert.Equal(t, "One", h.Content())

	sh, ok := blocks[1].(markdown.SetextHeader)
	require.True(t, ok)
	assert.Equal(t, 2, sh.Level())
	assert.Equal(t, "Two", sh.Content())

	code, ok := blocks[2].(markdown.FencedCodeBlock)
	require.True(t, ok)
	assert.Equal(t, "go title=x", code.Info())
	assert.Equal(t, "go", code.Language())
	assert.Equal(t, "```go title=x", code.Fence().TextTrimmed())
	assert.Len(t, code.Lines(), 3)

	para, ok := blocks[3].(markdown.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "some\ntext", para.Text())

	list, ok := blocks[4].(markdown.Block)
	require.True(t, ok)
	assert.Equal(t, markdown.KindBulletList, list.Kind())
}

func TestHeader_Content(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src     string
		level   int
		content string
	}{
		{"# a", 1, "a"},
		{"###   spaced   ", 3, "spaced"},
		{"## closed ##", 2, "closed"},
		{"## hash#", 2, "hash#"},
		{"#", 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			doc, ok := markdown.CastDocument(markdown.Parse(tt.src).Root)
			require.True(t, ok)
			var h markdown.Header
			for b := range doc.Blocks().All() {
				h, ok = b.(markdown.Header)
				break
			}
			require.True(t, ok)
			assert.Equal(t, tt.level, h.Level())
			assert.Equal(t, tt.content, h.Content())
		})
	}
}

func TestCastBlock_RejectsBogus(t *testing.T) {
	t.Parallel()

	result := markdown.Parse("[ref]: /x\n\ntext\n")
	doc, _ := markdown.CastDocument(result.Root)
	typed := 0
	for range doc.Blocks().All() {
		typed++
	}
	assert.Equal(t, 1, typed)
	assert.Equal(t, 2, doc.Blocks().Len())

	list := result.Root.FirstChild()
	bogus := list.FirstChild()
	require.NotNil(t, bogus)
	assert.True(t, bogus.Kind().IsBogus())
	_, ok := markdown.CastAnyBlock(bogus)
	assert.False(t, ok)
}
