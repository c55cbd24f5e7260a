package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/syntax"
)

func TestUnknownPseudoClass_FlagsNameToken(t *testing.T) {
	t.Parallel()

	diags := lintWith(t, "CSS001", "a.css", "a:unknown {}", nil)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, syntax.TextRange{Start: 2, End: 9}, d.Range)
	assert.Equal(t, "no-unknown-pseudo-class", d.RuleName)
	assert.Equal(t, config.SeverityError, d.Severity)
	assert.Equal(t, 1, d.StartLine)
	assert.Equal(t, 3, d.StartColumn)
}

func TestUnknownPseudoClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		options map[string]any
		want    []string
	}{
		{name: "known", src: "a:hover, b:FOCUS-visible {}", want: nil},
		{name: "function", src: ":is(a):nope(b) {}", want: []string{"nope"}},
		{name: "nested in argument", src: ":not(:bogus) {}", want: []string{"bogus"}},
		{name: "vendor prefix", src: "input:-moz-focusring {}", want: nil},
		{name: "legacy pseudo-element", src: "p:before {}", want: nil},
		{name: "pseudo-element ignored", src: "p::made-up {}", want: nil},
		{name: "ignore option", src: "a:local {} b:other {}", options: map[string]any{"ignore": []any{"local"}}, want: []string{"other"}},
		{name: "inside media", src: "@media print { a:printed {} }", want: []string{"printed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintWith(t, "CSS001", "a.css", tt.src, tt.options)
			assert.Equal(t, tt.want, nilIfEmpty(ranges(tt.src, diags)))
		})
	}
}

func TestEmptyBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "empty", src: "a {}", want: []string{"{}"}},
		{name: "whitespace and comment", src: "a {\n  /* nothing */\n}", want: []string{"{\n  /* nothing */\n}"}},
		{name: "declarations", src: "a { color: red }", want: nil},
		{name: "keyframe step", src: "@keyframes k { to {} }", want: []string{"{}"}},
		{name: "unclosed block", src: "a {", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintWith(t, "CSS002", "a.css", tt.src, nil)
			assert.Equal(t, tt.want, nilIfEmpty(ranges(tt.src, diags)))
		})
	}
}

func TestDuplicateProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		options map[string]any
		want    int
	}{
		{name: "same value", src: "a { color: red; color: red }", want: 1},
		{name: "case insensitive", src: "a { color: red; COLOR: red }", want: 1},
		{name: "fallback allowed", src: "a { display: -webkit-box; display: flex }", want: 0},
		{name: "fallback rejected", src: "a { display: box; display: flex }", options: map[string]any{"allow_fallbacks": false}, want: 1},
		{name: "separate blocks", src: "a { color: red } b { color: red }", want: 0},
		{name: "custom property case", src: "a { --x: 1; --X: 1 }", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := lintWith(t, "CSS003", "a.css", tt.src, tt.options)
			assert.Len(t, diags, tt.want)
		})
	}
}

func TestImportant(t *testing.T) {
	t.Parallel()

	src := "a { color: red !important; margin: 0 }"
	diags := lintWith(t, "CSS004", "a.css", src, nil)
	assert.Equal(t, []string{"!important"}, ranges(src, diags))
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
