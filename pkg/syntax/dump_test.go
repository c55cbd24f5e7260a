package syntax

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	t.Parallel()

	want := `0: ROOT@0..8
  0: CALL@0..7
    0: IDENT@0..1 "f" [] []
    1: L_PAREN@1..2 "(" [] []
    2: ARGS@2..6
      0: NAME@2..3
        0: IDENT@2..3 "a" [] []
      1: COMMA@3..4 "," [] [Whitespace(" ")]
      2: NAME@5..6
        0: IDENT@5..6 "b" [] []
    3: R_PAREN@6..7 ")" [] []
  1: EOF@8..8 "" [Newline("\n")] []
`
	if diff := cmp.Diff(want, Dump(buildCall(nil))); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDump_EmptySlot(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder(testLang, nil)
	b.StartNode(RawKind(tRoot))
	b.EmptySlot()
	b.Token(RawKind(tEOF), "", nil, nil)
	b.FinishNode()

	assert.Equal(t, "0: ROOT@0..0\n  0: (empty)\n  1: EOF@0..0 \"\" [] []\n", Dump(b.FinishRoot()))
}

func TestExport(t *testing.T) {
	t.Parallel()

	exported := Export(buildCall(nil))
	data, err := json.Marshal(exported)
	require.NoError(t, err)

	var decoded ExportedElement
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ROOT", decoded.Kind)
	require.Len(t, decoded.Children, 2)
	eof := decoded.Children[1]
	assert.Equal(t, "EOF", eof.Kind)
	assert.Equal(t, []ExportedTrivia{{Kind: "Newline", Text: "\n"}}, eof.Leading)
}
