package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listedRule struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Severity string `json:"severity"`
	Enabled  bool   `json:"enabled"`
}

func listRules(t *testing.T, args ...string) map[string]listedRule {
	t.Helper()

	stdout, _, err := execute(t, append([]string{"rules", "--format", "json"}, args...)...)
	require.NoError(t, err)

	var rules []listedRule
	require.NoError(t, json.Unmarshal([]byte(stdout), &rules))

	byID := make(map[string]listedRule, len(rules))
	for _, r := range rules {
		byID[r.ID] = r
	}
	return byID
}

func TestRules_JSON(t *testing.T) {
	t.Parallel()

	rules := listRules(t, "--config", isolatedConfig(t, ""))

	require.Contains(t, rules, "CSS001")
	assert.Equal(t, "no-unknown-pseudo-class", rules["CSS001"].Name)
	assert.Equal(t, "css", rules["CSS001"].Language)
	assert.Equal(t, "error", rules["CSS001"].Severity)
	assert.True(t, rules["CSS001"].Enabled)

	require.Contains(t, rules, "CSS004")
	assert.False(t, rules["CSS004"].Enabled)

	require.Contains(t, rules, "GEN001")
	assert.Empty(t, rules["GEN001"].Language)
}

func TestRules_ReflectConfig(t *testing.T) {
	t.Parallel()

	cfg := isolatedConfig(t, `
rules:
  no-important:
    enabled: true
    severity: error
  CSS002:
    enabled: false
`)
	rules := listRules(t, "--config", cfg)

	assert.True(t, rules["CSS004"].Enabled)
	assert.Equal(t, "error", rules["CSS004"].Severity)
	assert.False(t, rules["CSS002"].Enabled)
}

func TestRules_LanguageFilter(t *testing.T) {
	t.Parallel()

	rules := listRules(t, "--config", isolatedConfig(t, ""), "--language", "json")

	assert.Contains(t, rules, "JSON001")
	assert.Contains(t, rules, "GEN001", "rules without a language apply everywhere")
	assert.NotContains(t, rules, "CSS001")
	assert.NotContains(t, rules, "MD001")
}

func TestRules_Table(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "rules", "--config", isolatedConfig(t, ""), "--color", "never", "--rule-format", "combined")
	require.NoError(t, err)

	assert.Contains(t, stdout, "RULE")
	assert.Contains(t, stdout, "SEVERITY")
	assert.Contains(t, stdout, "CSS002/no-empty-block")
	assert.Contains(t, stdout, "MD001/heading-increment")
}
