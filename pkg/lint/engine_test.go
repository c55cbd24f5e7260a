package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lang/css"
	"github.com/yaklabco/gocst/pkg/languages"
	"github.com/yaklabco/gocst/pkg/lint"
)

// funcRule is a test rule backed by a function.
type funcRule struct {
	lint.BaseRule
	enabled bool
	apply   func(*lint.RuleContext) ([]lint.Diagnostic, error)
}

func (r *funcRule) DefaultEnabled() bool { return r.enabled }

func (r *funcRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	return r.apply(ctx)
}

func newFuncRule(id, name, language string, apply func(*lint.RuleContext) ([]lint.Diagnostic, error)) *funcRule {
	return &funcRule{
		BaseRule: lint.NewBaseRule(id, name, language, "test rule", nil),
		enabled:  true,
		apply:    apply,
	}
}

func newEngine(t *testing.T, rules ...lint.Rule) *lint.Engine {
	t.Helper()

	reg := lint.NewRegistry()
	for _, r := range rules {
		require.NoError(t, reg.Register(r))
	}
	return lint.NewEngine(languages.Builtin(languages.Options{}), reg)
}

func TestEngine_LintFile_Clean(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	result, err := engine.LintFile(context.Background(), "a.css", []byte("a { color: red }"), config.NewConfig())
	require.NoError(t, err)

	assert.Equal(t, "css", result.File.Language)
	assert.Equal(t, "a.css", result.File.Path)
	assert.False(t, result.HasIssues())
}

func TestEngine_LintFile_ParseDiagnostics(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	result, err := engine.LintFile(context.Background(), "a.json", []byte(`{"a": 1,}`), config.NewConfig())
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)

	d := result.Diagnostics[0]
	assert.Equal(t, "parse/syntax", d.RuleID)
	assert.Equal(t, config.SeverityError, d.Severity)
	assert.True(t, d.IsParseError())
	assert.Equal(t, 1, d.StartLine)
	assert.Equal(t, 8, d.StartColumn)
}

func TestEngine_LintFile_UnknownLanguage(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	_, err := engine.LintFile(context.Background(), "main.go", []byte("package main\n"), nil)
	require.ErrorIs(t, err, lint.ErrParseFailure)
	require.ErrorIs(t, err, languages.ErrUnknownLanguage)
}

func TestEngine_LintFile_RunsOnlyMatchingLanguage(t *testing.T) {
	t.Parallel()

	var ran []string
	record := func(id string) func(*lint.RuleContext) ([]lint.Diagnostic, error) {
		return func(*lint.RuleContext) ([]lint.Diagnostic, error) {
			ran = append(ran, id)
			return nil, nil
		}
	}

	engine := newEngine(t,
		newFuncRule("CSS900", "css-rule", "css", record("CSS900")),
		newFuncRule("JSON900", "json-rule", "json", record("JSON900")),
		newFuncRule("GEN900", "any-rule", "", record("GEN900")),
	)

	_, err := engine.LintFile(context.Background(), "a.css", []byte("a {}"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"CSS900", "GEN900"}, ran)
}

func TestEngine_LintFile_FillsRuleFieldsAndSorts(t *testing.T) {
	t.Parallel()

	rule := newFuncRule("CSS900", "flag-rules", "css", func(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
		var out []lint.Diagnostic
		nodes := ctx.Nodes(css.KindQualifiedRule.ToRaw())
		for i := len(nodes) - 1; i >= 0; i-- {
			out = append(out, ctx.Report(nodes[i].TextTrimmedRange(), "rule").Build())
		}
		return out, nil
	})

	engine := newEngine(t, rule)
	src := "a {}\nb {}\n"
	result, err := engine.LintFile(context.Background(), "x.css", []byte(src), config.NewConfig())
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 2)

	first, second := result.Diagnostics[0], result.Diagnostics[1]
	assert.Equal(t, "CSS900", first.RuleID)
	assert.Equal(t, "flag-rules", first.RuleName)
	assert.Equal(t, "x.css", first.FilePath)
	assert.Equal(t, config.SeverityWarning, first.Severity)
	assert.Equal(t, 1, first.StartLine)
	assert.Equal(t, 2, second.StartLine)
	assert.Equal(t, 1, second.StartColumn)
	assert.Equal(t, 5, second.EndColumn)
}

func TestEngine_LintFile_RuleErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	engine := newEngine(t, newFuncRule("CSS900", "broken", "css", func(*lint.RuleContext) ([]lint.Diagnostic, error) {
		return nil, boom
	}))

	result, err := engine.LintFile(context.Background(), "a.css", []byte("a {}"), nil)
	require.NoError(t, err)
	assert.ErrorIs(t, result.RuleErrors["CSS900"], boom)
}

func TestEngine_LintFile_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := newEngine(t)
	_, err := engine.LintFile(ctx, "a.css", []byte("a {}"), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_LintFile_SeverityOverride(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, newFuncRule("CSS900", "always", "css", func(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
		return []lint.Diagnostic{ctx.Report(ctx.Root.TextTrimmedRange(), "x").Build()}, nil
	}))

	severity := "error"
	cfg := config.NewConfig()
	cfg.Rules["CSS900"] = config.RuleConfig{Severity: &severity}

	result, err := engine.LintFile(context.Background(), "a.css", []byte("a {}"), cfg)
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, config.SeverityError, result.Diagnostics[0].Severity)
	assert.Equal(t, 1, result.CountBySeverity(config.SeverityError))
}
