package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/languages"
	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/lint/rules"
)

// lintWith runs only ruleID against src and returns its diagnostics.
// Parse diagnostics are dropped.
func lintWith(t *testing.T, ruleID, path, src string, options map[string]any) []lint.Diagnostic {
	t.Helper()

	reg, err := rules.NewRegistry()
	require.NoError(t, err)

	cfg := config.NewConfig()
	cfg.EnableRules = []string{ruleID}
	for _, id := range reg.IDs() {
		if id != ruleID {
			cfg.DisableRules = append(cfg.DisableRules, id)
		}
	}
	if options != nil {
		cfg.Rules[ruleID] = config.RuleConfig{Options: options}
	}

	engine := lint.NewEngine(languages.Builtin(languages.Options{MarkdownFlavor: "gfm"}), reg)
	result, err := engine.LintFile(context.Background(), path, []byte(src), cfg)
	require.NoError(t, err)
	require.Empty(t, result.RuleErrors)

	var out []lint.Diagnostic
	for _, d := range result.Diagnostics {
		if !d.IsParseError() {
			out = append(out, d)
		}
	}
	return out
}

// ranges returns the source text covered by each diagnostic.
func ranges(src string, diags []lint.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Range.Slice(src))
	}
	return out
}
