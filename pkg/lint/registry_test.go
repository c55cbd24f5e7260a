package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/config"
)

// mockRule for testing.
type mockRule struct {
	id       string
	name     string
	language string
	enabled  bool
}

func (m *mockRule) ID() string                               { return m.id }
func (m *mockRule) Name() string                             { return m.name }
func (m *mockRule) Description() string                      { return "mock" }
func (m *mockRule) Language() string                         { return m.language }
func (m *mockRule) DefaultEnabled() bool                     { return m.enabled }
func (m *mockRule) DefaultSeverity() config.Severity         { return config.SeverityWarning }
func (m *mockRule) Tags() []string                           { return nil }
func (m *mockRule) Apply(*RuleContext) ([]Diagnostic, error) { return nil, nil }

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(&mockRule{id: "CSS002", name: "no-empty-block", language: "css"}))
	reg.RegisterAlias("block-no-empty", "CSS002")

	tests := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{"CSS002", "CSS002", true},
		{"no-empty-block", "CSS002", true},
		{"block-no-empty", "CSS002", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			id, _, ok := reg.Resolve(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}

	_, ok := reg.GetByName("CSS002")
	assert.False(t, ok, "GetByName must not match IDs")
	_, ok = reg.Get("no-empty-block")
	assert.True(t, ok)
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(&mockRule{id: "CSS001", name: "a"}))
	require.Error(t, reg.Register(&mockRule{id: "CSS001", name: "b"}))
	require.Error(t, reg.Register(&mockRule{id: "CSS009", name: "a"}))
}

func TestRegistry_ForLanguage(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, r := range []*mockRule{
		{id: "JSON001", name: "j", language: "json"},
		{id: "CSS001", name: "c", language: "css"},
		{id: "GEN001", name: "g"},
	} {
		require.NoError(t, reg.Register(r))
	}

	var ids []string
	for _, r := range reg.ForLanguage("css") {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"CSS001", "GEN001"}, ids)
	assert.Equal(t, []string{"CSS001", "GEN001", "JSON001"}, reg.IDs())
}

func TestResolveRules(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(&mockRule{id: "CSS001", name: "on", language: "css", enabled: true}))
	require.NoError(t, reg.Register(&mockRule{id: "CSS004", name: "off", language: "css"}))

	ids := func(rules []ResolvedRule) []string {
		var out []string
		for _, rr := range rules {
			out = append(out, rr.Rule.ID())
		}
		return out
	}

	assert.Equal(t, []string{"CSS001"}, ids(ResolveRules(reg, "css", nil)))

	enabled := true
	cfg := config.NewConfig()
	cfg.Rules["CSS004"] = config.RuleConfig{Enabled: &enabled}
	assert.Equal(t, []string{"CSS001", "CSS004"}, ids(ResolveRules(reg, "css", cfg)))

	cfg.DisableRules = []string{"CSS004"}
	assert.Equal(t, []string{"CSS001"}, ids(ResolveRules(reg, "css", cfg)))

	cfg = config.NewConfig()
	cfg.EnableRules = []string{"CSS004"}
	assert.Equal(t, []string{"CSS001", "CSS004"}, ids(ResolveRules(reg, "css", cfg)))
	assert.Empty(t, ResolveRules(reg, "json", cfg))
}
