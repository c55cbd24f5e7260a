package runner_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/languages"
	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/lint/rules"
	"github.com/yaklabco/gocst/pkg/runner"
)

func newRunner(t *testing.T) *runner.Runner {
	t.Helper()

	reg, err := rules.NewRegistry()
	require.NoError(t, err)
	return runner.New(lint.NewEngine(languages.Builtin(languages.Options{}), reg))
}

func TestRunner_Extensions(t *testing.T) {
	t.Parallel()

	exts := newRunner(t).Extensions()
	for _, want := range []string{".css", ".json", ".jsonc", ".grit", ".md", ".markdown"} {
		assert.Contains(t, exts, want)
	}
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := newRunner(t).Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
}

func TestRunner_Run_MixedLanguages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"ok.css":       "a { color: red }\n",
		"empty.css":    "a {}\n",
		"dup.json":     `{"a": 1, "a": 2}`,
		"broken.json":  `{"a": 1,}`,
		"doc.md":       "# Title\n\n### Skipped\n",
		"pattern.grit": "`console.log($x)`\n",
	})

	result, err := newRunner(t).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Jobs:       2,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 6, result.Stats.FilesDiscovered)
	assert.Equal(t, 6, result.Stats.FilesProcessed)
	assert.Zero(t, result.Stats.FilesErrored)
	assert.Equal(t, 2, result.Stats.FilesByLanguage[languages.CSS])
	assert.Equal(t, 2, result.Stats.FilesByLanguage[languages.JSON])
	assert.Positive(t, result.Stats.BytesParsed)
	assert.Positive(t, result.Stats.ParseDiagnostics)
	assert.True(t, result.HasFailures())

	byFile := make(map[string][]string)
	for _, f := range result.Files {
		require.NoError(t, f.Error)
		for _, d := range f.Result.Diagnostics {
			byFile[filepath.Base(f.Path)] = append(byFile[filepath.Base(f.Path)], d.RuleID)
		}
	}
	assert.Empty(t, byFile["ok.css"])
	assert.Contains(t, byFile["empty.css"], "CSS002")
	assert.Contains(t, byFile["dup.json"], "JSON001")
	assert.Contains(t, byFile["broken.json"], "parse/syntax")
	assert.Contains(t, byFile["doc.md"], "MD001")

	paths := make([]string, len(result.Files))
	for i, f := range result.Files {
		paths[i] = f.Path
	}
	assert.True(t, slices.IsSorted(paths), "outcomes must be ordered by path")
}

func TestRunner_Run_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := make(map[string]string)
	for i := range 20 {
		files[fmt.Sprintf("f%02d.css", i)] = "a {}\nb { color: red; color: blue }\n"
	}
	writeTree(t, dir, files)

	r := newRunner(t)
	run := func(jobs int) *runner.Result {
		result, err := r.Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Jobs:       jobs,
			Config:     config.NewConfig(),
		})
		require.NoError(t, err)
		return result
	}

	serial, parallel := run(1), run(8)
	require.Len(t, parallel.Files, len(serial.Files))
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
		assert.Equal(t, serial.Files[i].Result.Diagnostics, parallel.Files[i].Result.Diagnostics)
	}
	assert.Equal(t, serial.Stats.DiagnosticsTotal, parallel.Stats.DiagnosticsTotal)
}

func TestRunner_Run_UnreadableLanguage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"notes.xyz": "\x00\x01\x02"})

	result, err := newRunner(t).Run(context.Background(), runner.Options{
		Paths:      []string{"notes.xyz"},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.ErrorIs(t, result.Files[0].Error, lint.ErrParseFailure)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.True(t, result.HasErrors())
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.css": "a {}"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(t).Run(ctx, runner.Options{WorkingDir: dir})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_OrderAndLimit(t *testing.T) {
	t.Parallel()

	paths := []string{"c", "a", "b", "d", "e"}
	var active, peak atomic.Int32

	outcomes, err := runner.Process(context.Background(), paths, 2, func(_ context.Context, path string) (string, error) {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		if path == "b" {
			return "", errors.New("boom")
		}
		return path + "!", nil
	})
	require.NoError(t, err)

	require.Len(t, outcomes, len(paths))
	for i, o := range outcomes {
		assert.Equal(t, paths[i], o.Path)
		assert.True(t, o.Done)
	}
	assert.Equal(t, "c!", outcomes[0].Value)
	assert.EqualError(t, outcomes[2].Err, "boom")
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestResult_Predicates(t *testing.T) {
	t.Parallel()

	var nilResult *runner.Result
	assert.False(t, nilResult.HasFailures())
	assert.False(t, nilResult.HasIssues())

	r := &runner.Result{Stats: runner.Stats{
		DiagnosticsTotal:      1,
		DiagnosticsBySeverity: map[string]int{"warning": 1},
	}}
	assert.True(t, r.HasIssues())
	assert.True(t, r.HasWarnings())
	assert.False(t, r.HasFailures())
}
