package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/lint/rules"
)

func testRegistry(t *testing.T) *lint.Registry {
	t.Helper()

	reg, err := rules.NewRegistry()
	if err != nil {
		t.Fatalf("rules.NewRegistry() error = %v", err)
	}
	return reg
}

func isolatedOptions(t *testing.T, dir string) LoadOptions {
	t.Helper()

	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		NonInteractive:     true,
		Rules:              testRegistry(t),
		Languages:          []string{"css", "grit", "json", "markdown"},
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolatedOptions(t, t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.Markdown.Flavor != config.FlavorCommonMark {
		t.Errorf("expected flavor %q, got %q", config.FlavorCommonMark, result.Config.Markdown.Flavor)
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("expected format %q, got %q", config.FormatText, result.Config.Format)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gocst.yml"), `
markdown:
  flavor: gfm
languages:
  .pcss: css
rules:
  CSS002:
    enabled: false
`)

	result, err := Load(context.Background(), isolatedOptions(t, tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Markdown.Flavor != config.FlavorGFM {
		t.Errorf("expected flavor %q, got %q", config.FlavorGFM, result.Config.Markdown.Flavor)
	}
	if got := result.Config.Languages[".pcss"]; got != "css" {
		t.Errorf("expected .pcss mapped to css, got %q", got)
	}
	rule, ok := result.Config.Rules["CSS002"]
	if !ok || rule.Enabled == nil || *rule.Enabled {
		t.Errorf("expected CSS002 disabled, got %+v", rule)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected one loaded file, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(root, ".gocst.yaml"), "severity_default: error\n")

	result, err := Load(context.Background(), isolatedOptions(t, nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected severity_default error, got %q", result.Config.SeverityDefault)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfig(t, filepath.Join(outer, ".gocst.yml"), "ignore: [\"x\"]\n")
	repo := filepath.Join(outer, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if got != "" {
		t.Errorf("expected search to stop at the repository root, found %q", got)
	}
}

func TestLoad_ExplicitConfigOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gocst.yml"), "severity_default: info\n")
	explicit := filepath.Join(tmpDir, "custom.yaml")
	writeConfig(t, explicit, "severity_default: error\n")

	opts := isolatedOptions(t, tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected explicit severity to win, got %q", result.Config.SeverityDefault)
	}
	if !slices.Equal(result.LoadedFrom, []string{filepath.Join(tmpDir, ".gocst.yml"), explicit}) {
		t.Errorf("unexpected load order %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gocst.yml"), "markdown:\n  flavor: gfm\n")

	opts := isolatedOptions(t, tmpDir)
	opts.CLIConfig = &config.Config{
		Markdown:    config.MarkdownConfig{Flavor: config.FlavorCommonMark},
		Format:      config.FormatJSON,
		Jobs:        4,
		EnableRules: []string{"no-important"},
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Markdown.Flavor != config.FlavorCommonMark {
		t.Errorf("expected CLI flavor to win, got %q", result.Config.Markdown.Flavor)
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
	if result.Config.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", result.Config.Jobs)
	}
	if !slices.Equal(result.Config.EnableRules, []string{"CSS004"}) {
		t.Errorf("expected enable rules normalized to IDs, got %v", result.Config.EnableRules)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad flavor", "markdown:\n  flavor: wiki\n", "markdown.flavor"},
		{"bad severity", "severity_default: fatal\n", "severity_default"},
		{"bad rule severity", "rules:\n  CSS001:\n    severity: loud\n", "rules.CSS001.severity"},
		{"unknown language", "languages:\n  .scss: sass\n", "languages..scss"},
		{"bad glob", "ignore:\n  - \"a/[b\"\n", "ignore[0]"},
		{"unknown key", "colour: red\n", "colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			writeConfig(t, filepath.Join(tmpDir, ".gocst.yml"), tt.content)

			_, err := Load(context.Background(), isolatedOptions(t, tmpDir))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_UnknownRuleWarns(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gocst.yml"), "rules:\n  NOPE001:\n    enabled: true\n")

	result, err := Load(context.Background(), isolatedOptions(t, tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "NOPE001") {
		t.Errorf("expected one unknown-rule warning, got %v", result.Warnings)
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolatedOptions(t, t.TempDir()))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoader_NormalizesRuleKeys(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gocst.yml"), `
rules:
  no-empty-block:
    enabled: false
  declaration-no-important:
    enabled: true
  JSON001:
    severity: warning
`)

	result, err := Load(context.Background(), isolatedOptions(t, tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, id := range []string{"CSS002", "CSS004", "JSON001"} {
		if _, ok := result.Config.Rules[id]; !ok {
			t.Errorf("expected rule %s after normalization, got keys %v", id, keys(result.Config.Rules))
		}
	}
	if _, ok := result.Config.Rules["no-empty-block"]; ok {
		t.Error("rule name key should have been replaced by its ID")
	}
}

func TestLoader_WarnsDuplicateRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gocst.yml"), `
rules:
  CSS002:
    enabled: true
  no-empty-block:
    enabled: false
`)

	result, err := Load(context.Background(), isolatedOptions(t, tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate rule configuration") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected duplicate warning, got %v", result.Warnings)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	enabled, disabled := true, false
	sevErr := "error"

	base := &config.Config{
		Languages: map[string]string{".pcss": "css"},
		Rules: map[string]config.RuleConfig{
			"CSS003": {Enabled: &enabled, Options: map[string]any{"allow_fallbacks": true}},
		},
		Ignore: []string{"vendor/**"},
	}
	override := &config.Config{
		Languages: map[string]string{".mdx": "markdown"},
		Rules: map[string]config.RuleConfig{
			"CSS003": {Severity: &sevErr, Options: map[string]any{"extra": 1}},
			"CSS004": {Enabled: &disabled},
		},
		Strict: true,
	}

	got := MergeAll(base, override)

	if len(got.Languages) != 2 {
		t.Errorf("expected merged languages, got %v", got.Languages)
	}
	css003 := got.Rules["CSS003"]
	if css003.Enabled == nil || !*css003.Enabled || css003.Severity == nil || *css003.Severity != "error" {
		t.Errorf("expected deep-merged CSS003, got %+v", css003)
	}
	if len(css003.Options) != 2 {
		t.Errorf("expected merged options, got %v", css003.Options)
	}
	if len(base.Rules["CSS003"].Options) != 1 {
		t.Error("merge must not mutate the base options")
	}
	if !slices.Equal(got.Ignore, []string{"vendor/**"}) {
		t.Errorf("nil override slice should keep base, got %v", got.Ignore)
	}
	if !got.Strict {
		t.Error("expected strict to be set")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"GOCST_MARKDOWN_FLAVOR": "gfm",
		"GOCST_JOBS":            "3",
		"GOCST_IGNORE":          "a/**, b/*.css ,",
		"GOCST_STRICT":          "1",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := config.NewConfig()
	if err := loadFromLookup(cfg, lookup); err != nil {
		t.Fatalf("loadFromLookup() error = %v", err)
	}

	if cfg.Markdown.Flavor != config.FlavorGFM {
		t.Errorf("expected flavor gfm, got %q", cfg.Markdown.Flavor)
	}
	if cfg.Jobs != 3 {
		t.Errorf("expected jobs 3, got %d", cfg.Jobs)
	}
	if !slices.Equal(cfg.Ignore, []string{"a/**", "b/*.css"}) {
		t.Errorf("unexpected ignore %v", cfg.Ignore)
	}
	if !cfg.Strict {
		t.Error("expected strict")
	}
}

func TestLoadFromEnv_InvalidValue(t *testing.T) {
	t.Parallel()

	lookup := func(key string) (string, bool) {
		if key == "GOCST_JOBS" {
			return "many", true
		}
		return "", false
	}

	err := loadFromLookup(config.NewConfig(), lookup)
	if err == nil || !strings.Contains(err.Error(), "GOCST_JOBS") {
		t.Errorf("expected GOCST_JOBS error, got %v", err)
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if _, ok := vars["GOCST_FORMAT"]; !ok {
		t.Errorf("expected GOCST_FORMAT in %v", vars)
	}
	if got := GetEnvVarName("jobs"); got != "GOCST_JOBS" {
		t.Errorf("GetEnvVarName(jobs) = %q", got)
	}
}

func TestWriteFile_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gocst.yml")
	if err := WriteFile(path, []byte("a"), false); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFile(path, []byte("b"), false); err == nil {
		t.Error("expected error when file exists")
	}
	if err := WriteFile(path, []byte("c"), true); err != nil {
		t.Errorf("forced write: %v", err)
	}
}

func keys(m map[string]config.RuleConfig) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
