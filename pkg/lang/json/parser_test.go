package json_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/lang/json"
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

var wellFormed = []string{
	"",
	"  \n",
	"null",
	`{"a": 1, "b": [true, false, null], "c": {"d": "e"}}`,
	"[]",
	"{}",
	"// leading\n[1, /* inline */ 2]\n",
	`-0.5e10`,
	`"é\n"`,
}

var malformed = []string{
	"[1, 2,]",
	"[1 2]",
	"[,]",
	"{a: 1}",
	`{"a" 1}`,
	`{"a": }`,
	`{"a": 1,}`,
	`{"a": 1`,
	"[1, }",
	"{1: 2}",
	"1 2",
	"]",
	"nope",
	"'x'",
	`{"a": [1}`,
	"/* open",
	`["\q"]`,
	`{"a": 1]`,
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, src := range append(append([]string{}, wellFormed...), malformed...) {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			result := json.Parse(src)
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

			result := json.Parse(src)
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

			result := json.Parse(src)
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

	want := `0: JSON_ROOT@0..10
  0: JSON_OBJECT_VALUE@0..10
    0: L_CURLY@0..1 "{" [] []
    1: JSON_MEMBER_LIST@1..9
      0: JSON_MEMBER@1..9
        0: JSON_MEMBER_NAME@1..4
          0: JSON_STRING_LITERAL@1..4 "\"a\"" [] []
        1: COLON@4..5 ":" [] [Whitespace(" ")]
        2: JSON_ARRAY_VALUE@6..9
          0: L_BRACK@6..7 "[" [] []
          1: JSON_ARRAY_ELEMENT_LIST@7..8
            0: JSON_NUMBER_VALUE@7..8
              0: JSON_NUMBER_LITERAL@7..8 "1" [] []
          2: R_BRACK@8..9 "]" [] []
    2: R_CURLY@9..10 "}" [] []
  1: EOF@10..10 "" [] []
`
	got := syntax.Dump(json.Parse(`{"a": [1]}`).Root)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
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
			name:     "trailing comma",
			src:      "[1,]",
			message:  "trailing ',' is not allowed",
			category: parser.CategorySyntax,
			rng:      syntax.TextRange{Start: 2, End: 3},
		},
		{
			name:     "unquoted key",
			src:      "{a: 1}",
			message:  "property names must be double-quoted strings",
			category: parser.CategorySyntax,
			rng:      syntax.TextRange{Start: 1, End: 2},
		},
		{
			name:     "trailing junk",
			src:      "1 2 3",
			message:  "end of file expected",
			category: parser.CategorySyntax,
			rng:      syntax.TextRange{Start: 2, End: 5},
		},
		{
			name:     "single quotes",
			src:      "'a'",
			message:  "JSON strings must use double quotes",
			category: parser.CategoryLexer,
			rng:      syntax.TextRange{Start: 0, End: 3},
		},
		{
			name:     "missing value",
			src:      `{"a":}`,
			message:  "expected a value but instead found '}'",
			category: parser.CategorySyntax,
			rng:      syntax.TextRange{Start: 5, End: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := json.Parse(tt.src)
			require.NotEmpty(t, result.Diagnostics)
			d := result.Diagnostics[0]
			assert.Equal(t, tt.message, d.Message)
			assert.Equal(t, tt.category, d.Category)
			assert.Equal(t, tt.rng, d.Range)
		})
	}
}

func TestParse_TrailingJunkWrapsValue(t *testing.T) {
	t.Parallel()

	result := json.Parse("[1] x")
	value := result.Root.FirstChild()
	require.NotNil(t, value)
	assert.Equal(t, json.KindBogusValue, json.Kind(value.RawKind()))
	assert.Equal(t, "[1] x", value.Text())
	assert.Equal(t, json.KindArrayValue, json.Kind(value.FirstChild().RawKind()))
}

func FuzzParse(f *testing.F) {
	for _, seed := range append(append([]string{}, wellFormed...), malformed...) {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, src string) {
		result := json.Parse(src)
		if got := result.Root.Text(); got != src {
			t.Fatalf("round trip mismatch: %q != %q", got, src)
		}
		if err := parser.CheckBogusContainment(result); err != nil {
			t.Fatal(err)
		}
	})
}
