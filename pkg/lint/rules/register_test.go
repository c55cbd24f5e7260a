package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/lint/rules"
)

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	require.NoError(t, rules.RegisterAll(reg))
	assert.Equal(t,
		[]string{"CSS001", "CSS002", "CSS003", "CSS004", "GEN001", "JSON001", "MD001", "MD002"},
		reg.IDs())

	require.Error(t, rules.RegisterAll(reg), "registering twice must fail")
}

func TestRegisterAliases(t *testing.T) {
	t.Parallel()

	reg, err := rules.NewRegistry()
	require.NoError(t, err)

	id, _, ok := reg.Resolve("block-no-empty")
	require.True(t, ok)
	assert.Equal(t, "CSS002", id)

	id, _, ok = reg.Resolve("MD040")
	require.True(t, ok)
	assert.Equal(t, "MD002", id)
}

func TestRuleMetadata(t *testing.T) {
	t.Parallel()

	seenNames := make(map[string]bool)
	for _, rule := range rules.All() {
		t.Run(rule.ID(), func(t *testing.T) {
			assert.NotEmpty(t, rule.Name())
			assert.NotEmpty(t, rule.Description())
			assert.NotEmpty(t, rule.Tags())
			assert.True(t, rule.DefaultSeverity().IsValid())
		})
		assert.False(t, seenNames[rule.Name()], "duplicate name %s", rule.Name())
		seenNames[rule.Name()] = true
	}
}
