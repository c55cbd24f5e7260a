package markdown_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/lang/markdown"
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

func blockKinds(t *testing.T, result *syntax.Parse) []markdown.Kind {
	t.Helper()

	list := result.Root.FirstChild()
	require.NotNil(t, list)
	var out []markdown.Kind
	for b := range list.Children() {
		out = append(out, markdown.Kind(b.RawKind()))
	}
	return out
}

func TestParse_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []markdown.Kind
	}{
		{"empty", "", nil},
		{"blank lines", "\n\n  \n", nil},
		{"atx heading", "# Title\n", []markdown.Kind{markdown.KindHeader}},
		{"setext heading", "Title\n=====\n\ntext\n", []markdown.Kind{markdown.KindSetextHeader, markdown.KindParagraph}},
		{"paragraph then break", "a\nb\n\n***\n", []markdown.Kind{markdown.KindParagraph, markdown.KindThematicBreak}},
		{"adjacent breaks", "***\n---\n", []markdown.Kind{markdown.KindThematicBreak, markdown.KindThematicBreak}},
		{"fenced code", "```go\nx := 1\n\n```\ntext\n", []markdown.Kind{markdown.KindFencedCodeBlock, markdown.KindParagraph}},
		{"empty fence", "```\n```\n# H\n", []markdown.Kind{markdown.KindFencedCodeBlock, markdown.KindHeader}},
		{"indented code", "    code\n\npara\n", []markdown.Kind{markdown.KindIndentCodeBlock, markdown.KindParagraph}},
		{"lists", "- a\n- b\n\n1. one\n", []markdown.Kind{markdown.KindBulletList, markdown.KindOrderedList}},
		{"quote", "> quoted\n> more\n\nafter\n", []markdown.Kind{markdown.KindQuote, markdown.KindParagraph}},
		{"html", "<div>\nhi\n</div>\n", []markdown.Kind{markdown.KindHTMLBlock}},
		{"link reference first", "[a]: /url\n\ntext\n", []markdown.Kind{markdown.KindBogus, markdown.KindParagraph}},
		{"link reference before text", "[a]: /url\ntext\n", []markdown.Kind{markdown.KindBogus, markdown.KindParagraph}},
		{"link reference between blocks", "para\n\n[a]: /url\n[b]: /other\n\n# H\n",
			[]markdown.Kind{markdown.KindParagraph, markdown.KindBogus, markdown.KindHeader}},
		{"crlf", "# A\r\n\r\nb\r\n", []markdown.Kind{markdown.KindHeader, markdown.KindParagraph}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := markdown.Parse(tt.src)
			assert.Equal(t, tt.src, result.Root.Text())
			assert.Empty(t, result.Diagnostics)
			assert.Equal(t, tt.want, blockKinds(t, result))
		})
	}
}

func TestParse_GFMTable(t *testing.T) {
	t.Parallel()

	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	result := markdown.New(markdown.FlavorGFM).Parse(src, nil)
	assert.Equal(t, src, result.Root.Text())
	assert.Equal(t, []markdown.Kind{markdown.KindTable}, blockKinds(t, result))

	plain := markdown.Parse(src)
	assert.Equal(t, []markdown.Kind{markdown.KindParagraph}, blockKinds(t, plain))
}

func TestParse_Dump(t *testing.T) {
	t.Parallel()

	want := `0: MD_DOCUMENT@0..14
  0: MD_BLOCK_LIST@0..13
    0: MD_HEADER@0..5
      0: MD_LINE_LIST@0..5
        0: MD_TEXTUAL_LITERAL@0..4 "# Hi" [] [Whitespace(" ")]
    1: MD_PARAGRAPH@5..13
      0: MD_LINE_LIST@5..13
        0: MD_TEXTUAL_LITERAL@9..13 "text" [Newline("\n"), Newline("\n"), Whitespace("  ")] []
  1: EOF@14..14 "" [Newline("\n")] []
`
	got := syntax.Dump(markdown.Parse("# Hi \n\n  text\n").Root)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ShareNodes(t *testing.T) {
	t.Parallel()

	cache := syntax.NewNodeCache()
	src := "a\n\nb\n\nb\n"
	result := markdown.New(markdown.FlavorCommonMark).Parse(src, cache)
	assert.Equal(t, src, result.Root.Text())
	assert.Positive(t, cache.Hits())
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"", "# a\n", "a\n===\n", "```\nx\n", "- a\n  - b\n", "> # q\n> ```\n> c\n", "[x]: y\n", "\r\n\t#\r",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, src string) {
		result := markdown.Parse(src)
		if got := result.Root.Text(); got != src {
			t.Fatalf("round trip mismatch: %q != %q", got, src)
		}
		if err := parser.CheckBogusContainment(result); err != nil {
			t.Fatal(err)
		}
	})
}
