package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocst/pkg/config"
)

func TestFormatRuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   config.RuleFormat
		ruleID   string
		ruleName string
		want     string
	}{
		{"name format", config.RuleFormatName, "CSS002", "no-empty-block", "no-empty-block"},
		{"id format", config.RuleFormatID, "CSS002", "no-empty-block", "CSS002"},
		{"combined format", config.RuleFormatCombined, "CSS002", "no-empty-block", "CSS002/no-empty-block"},
		{"name format empty name", config.RuleFormatName, "parse/syntax", "", "parse/syntax"},
		{"default to name", config.RuleFormat(""), "CSS002", "no-empty-block", "no-empty-block"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := config.FormatRuleID(tt.format, tt.ruleID, tt.ruleName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity(t *testing.T) {
	t.Parallel()

	assert.True(t, config.SeverityInfo.IsValid())
	assert.False(t, config.Severity("fatal").IsValid())
	assert.Greater(t, config.SeverityError.Rank(), config.SeverityWarning.Rank())
	assert.Greater(t, config.SeverityWarning.Rank(), config.SeverityInfo.Rank())
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.RuleFormatName, cfg.RuleFormat)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.FlavorCommonMark, cfg.Markdown.Flavor)
	assert.NotNil(t, cfg.Rules)
}
