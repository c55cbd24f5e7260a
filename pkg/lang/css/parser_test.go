package css_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/lang/css"
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

var wellFormed = []string{
	"",
	"a {}",
	"a:hover { color: red }",
	"a, b > c ~ d + e f { margin: 0 auto; padding: 1px 2px !important; }",
	".foo#bar[data-x='1' i]::before { content: \"x\"; }",
	"li:nth-child(2n + 1) {}",
	":not(.a, .b):is(p) {}",
	"*, & .child { --custom: ; }",
	"@charset \"utf-8\";",
	"@import url(\"x.css\") screen;",
	"@media (min-width: 100px) and print { a { color: blue } }",
	"@keyframes spin { from { transform: rotate(0deg) } 50%, 75% { opacity: .5 } to {} }",
	"@font-face { font-family: x; src: url(a.woff) }",
	"@layer base;",
	"a { b { c: d } &:hover { e: f } }",
	"/* header */\na {\n  color: #fff; /* trailing */\n}\n",
	"a { width: calc(100% - 2 * 3px); grid-area: 1 / 2 / 3; }",
}

var malformed = []string{
	"a {",
	"a",
	"a { color: }",
	"a { color red; }",
	"a { color: red !nope; }",
	"a, {}",
	"a > {}",
	"a. {}",
	"a: {}",
	"a[ {}",
	"a[x= ] {}",
	":not() {}",
	"}",
	"a { $ }",
	"a { color: r^d }",
	"@charset;",
	"@import;",
	"@media screen",
	"@keyframes {}",
	"@keyframes name from color: red; }",
	"@keyframes x { middle {} }",
	"@keyframes x { 10% color: red; } }",
	"\"unterminated\na {}",
	"/* unterminated",
	"@ {}",
	"a { b: (c; }",
	"@foo bar ) baz",
	"a { @foo { x }",
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, src := range append(append([]string{}, wellFormed...), malformed...) {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			result := css.Parse(src)
			assert.Equal(t, src, result.Root.Text())
			assert.NoError(t, parser.CheckBogusContainment(result))
		})
	}
}

func TestParse_WellFormed(t *testing.T) {
	t.Parallel()

	for _, src := range wellFormed {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			result := css.Parse(src)
			assert.Empty(t, result.Diagnostics)
			for n := range result.Root.Descendants() {
				if n.Kind().IsBogus() {
					t.Errorf("unexpected bogus node %s in %q", n, src)
				}
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	for _, src := range malformed {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			result := css.Parse(src)
			require.True(t, result.HasErrors(), "expected diagnostics")
			bogus := syntax.FindFirst(result.Root, func(n *syntax.SyntaxNode) bool {
				return n.Kind().IsBogus()
			})
			assert.NotNil(t, bogus, "expected a bogus node")
		})
	}
}

func TestParse_Dump(t *testing.T) {
	t.Parallel()

	want := `0: CSS_ROOT@0..22
  0: CSS_RULE_LIST@0..22
    0: CSS_QUALIFIED_RULE@0..22
      0: CSS_SELECTOR_LIST@0..8
        0: CSS_COMPOUND_SELECTOR@0..8
          0: CSS_TYPE_SELECTOR@0..1
            0: IDENT@0..1 "a" [] []
          1: CSS_SUB_SELECTOR_LIST@1..8
            0: CSS_PSEUDO_CLASS_SELECTOR@1..8
              0: COLON@1..2 ":" [] []
              1: IDENT@2..7 "hover" [] [Whitespace(" ")]
      1: CSS_DECLARATION_BLOCK@8..22
        0: L_CURLY@8..9 "{" [] [Whitespace(" ")]
        1: CSS_DECLARATION_LIST@10..21
          0: CSS_DECLARATION@10..21
            0: IDENT@10..15 "color" [] []
            1: COLON@15..16 ":" [] [Whitespace(" ")]
            2: CSS_COMPONENT_VALUE_LIST@17..21
              0: CSS_IDENTIFIER@17..21
                0: IDENT@17..20 "red" [] [Whitespace(" ")]
            3: (empty)
            4: (empty)
        2: R_CURLY@21..22 "}" [] []
  1: EOF@22..22 "" [] []
`
	got := syntax.Dump(css.Parse("a:hover { color: red }").Root)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_KeyframesMissingOpeningBrace(t *testing.T) {
	t.Parallel()

	src := "@keyframes name from color: red; }"
	result := css.Parse(src)

	require.True(t, result.HasErrors())
	rules := result.Root.FirstChild()
	require.NotNil(t, rules)
	atRule := rules.FirstChild()
	require.NotNil(t, atRule)
	assert.Equal(t, css.KindBogusAtRule, css.Kind(atRule.RawKind()))
	assert.Nil(t, atRule.NextSibling(), "the closing brace must not start another rule")

	closing := strings.LastIndex(src, "}")
	assert.True(t, atRule.TextRange().ContainsRange(syntax.TextRange{Start: closing, End: closing + 1}))
	assert.Equal(t, src, atRule.Text())
	assert.NoError(t, parser.CheckBogusContainment(result))
}

func TestParse_UnknownPseudoClassIsWellFormed(t *testing.T) {
	t.Parallel()

	result := css.Parse("a:unknown {}")
	assert.False(t, result.HasErrors())

	pseudo := syntax.FindFirst(result.Root, syntax.KindPredicate(css.KindPseudoClassSelector.ToRaw()))
	require.NotNil(t, pseudo)
	sel, ok := css.CastPseudoClassSelector(pseudo)
	require.True(t, ok)
	r, err := sel.NameRange()
	require.NoError(t, err)
	assert.Equal(t, syntax.TextRange{Start: 2, End: 9}, r)
}

func TestParse_Diagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		message  string
		category string
		rng      syntax.TextRange
	}{
		{
			name:     "missing block",
			src:      "a",
			message:  "expected '{' but instead the file ends",
			category: parser.CategorySyntax,
			rng:      syntax.TextRange{Start: 1, End: 1},
		},
		{
			name:     "unterminated comment",
			src:      "/* x",
			message:  "unterminated block comment",
			category: parser.CategoryLexer,
			rng:      syntax.TextRange{Start: 0, End: 4},
		},
		{
			name:     "missing class name",
			src:      "a. {}",
			message:  "expected an identifier but instead found '{'",
			category: parser.CategorySyntax,
			rng:      syntax.TextRange{Start: 2, End: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := css.Parse(tt.src)
			require.NotEmpty(t, result.Diagnostics)
			d := result.Diagnostics[0]
			assert.Equal(t, tt.message, d.Message)
			assert.Equal(t, tt.category, d.Category)
			assert.Equal(t, tt.rng, d.Range)
		})
	}
}

func TestParse_DiagnosticsOrdered(t *testing.T) {
	t.Parallel()

	result := css.Parse("a { color: } b. {} c")
	require.GreaterOrEqual(t, len(result.Diagnostics), 3)
	for i := 1; i < len(result.Diagnostics); i++ {
		assert.LessOrEqual(t, result.Diagnostics[i-1].Range.Start, result.Diagnostics[i].Range.Start)
	}
}

func TestParseWithCache_SharesNodes(t *testing.T) {
	t.Parallel()

	cache := syntax.NewNodeCache()
	src := "a { color: red } b { color: red }"
	result := css.ParseWithCache(src, cache)

	assert.Equal(t, src, result.Root.Text())
	assert.Positive(t, cache.Hits())
}

func FuzzParse(f *testing.F) {
	for _, seed := range append(append([]string{}, wellFormed...), malformed...) {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, src string) {
		result := css.Parse(src)
		if got := result.Root.Text(); got != src {
			t.Fatalf("round trip mismatch: %q != %q", got, src)
		}
		if err := parser.CheckBogusContainment(result); err != nil {
			t.Fatal(err)
		}
	})
}
