package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/internal/cli"
	"github.com/yaklabco/gocst/pkg/lang/css"
	"github.com/yaklabco/gocst/pkg/syntax"
)

func TestParse_TextMatchesDump(t *testing.T) {
	t.Parallel()

	src := "a:hover { color: red }"
	file := writeFile(t, t.TempDir(), "a.css", src)

	stdout, _, err := execute(t, "parse", "--config", isolatedConfig(t, ""), "--format", "text", file)
	require.NoError(t, err)
	assert.Equal(t, syntax.Dump(css.Parse(src).Root), stdout)
}

func TestParse_TreeFormat(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "data.json", "{\"a\": [1, 2]}\n")

	stdout, _, err := execute(t, "parse", "--config", isolatedConfig(t, ""), "--color", "never", file)
	require.NoError(t, err)
	assert.Contains(t, stdout, "JSON_ROOT@0..")
}

func TestParse_JSONFormat(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "broken.css", "a { color: }")

	stdout, stderr, err := execute(t, "parse", "--config", isolatedConfig(t, ""),
		"--color", "never", "--format", "json", file)
	require.Error(t, err)
	assert.Equal(t, cli.ExitLintErrors, cli.ExitCodeFromError(err))

	var output struct {
		Language    string                 `json:"language"`
		Tree        syntax.ExportedElement `json:"tree"`
		Diagnostics []struct {
			Category string `json:"category"`
			Line     int    `json:"line"`
			Column   int    `json:"column"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	assert.Equal(t, "css", output.Language)
	assert.Equal(t, "CSS_ROOT", output.Tree.Kind)
	assert.Equal(t, 12, output.Tree.End)
	require.NotEmpty(t, output.Diagnostics)
	assert.Equal(t, 1, output.Diagnostics[0].Line)
	assert.Contains(t, stderr, "parse/")
}

func TestParse_Stdin(t *testing.T) {
	t.Parallel()

	src := "`foo($x)` => `bar($x)`"
	stdout, _, err := executeWithInput(t, bytes.NewBufferString(src),
		"parse", "--config", isolatedConfig(t, ""), "--format", "json", "--language", "grit", "-")
	require.NoError(t, err)

	var output struct {
		Language string                 `json:"language"`
		Tree     syntax.ExportedElement `json:"tree"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	assert.Equal(t, "grit", output.Language)
	assert.Equal(t, len(src), output.Tree.End)
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "a.css", "a {}")

	tests := []struct {
		name string
		args []string
	}{
		{name: "no file", args: []string{"parse"}},
		{name: "two files", args: []string{"parse", file, file}},
		{name: "unknown format", args: []string{"parse", "--format", "xml", file}},
		{name: "stdin without language", args: []string{"parse", "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
		})
	}
}

func TestParse_UnknownLanguage(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "a.css", "a {}")

	_, _, err := execute(t, "parse", "--config", isolatedConfig(t, ""), "--language", "cobol", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language")
}
