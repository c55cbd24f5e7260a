package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "none", src: `{"a": 1, "b": 2}`, want: nil},
		{name: "duplicate", src: `{"a": 1, "b": 2, "a": 3}`, want: []string{`"a"`}},
		{name: "escaped", src: `{"a": 1, "\u0061": 2}`, want: []string{`"\u0061"`}},
		{name: "nested objects are separate", src: `{"a": {"a": 1}}`, want: nil},
		{name: "inside array", src: `[{"x": 1, "x": 2}]`, want: []string{`"x"`}},
		{name: "three times", src: `{"k": 1, "k": 2, "k": 3}`, want: []string{`"k"`, `"k"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintWith(t, "JSON001", "a.json", tt.src, nil)
			assert.Equal(t, tt.want, nilIfEmpty(ranges(tt.src, diags)))
		})
	}
}

func TestDuplicateKeys_Message(t *testing.T) {
	t.Parallel()

	src := "{\n  \"a\": 1,\n  \"a\": 2\n}\n"
	diags := lintWith(t, "JSON001", "a.json", src, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, `Duplicate key "a", first defined on line 2`, diags[0].Message)
	assert.Equal(t, 3, diags[0].StartLine)
}
