// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lint"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// NonInteractive suppresses hints meant for a human at a terminal.
	NonInteractive bool

	// Rules resolves rule names to IDs and flags unknown rules.
	Rules *lint.Registry

	// Languages lists the registered language names accepted in the
	// languages section.
	Languages []string

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOCST_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gocst.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gocst/config.yaml)
//  6. System config (/etc/gocst/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		layerCfg, err := LoadFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, layerCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	if opts.Rules != nil {
		normalizeRuleKeys(cfg, opts.Rules, result)
	}

	validator := Validator{Rules: opts.Rules, Languages: opts.Languages}
	validation := validator.Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	if len(result.LoadedFrom) == 0 && !opts.NonInteractive && isInteractive() {
		result.Warnings = append(result.Warnings,
			"no .gocst.yml found; run 'gocst init' to create one")
	}

	result.Config = cfg
	return result, nil
}

// LoadFile reads a single YAML configuration file.
func LoadFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// WriteFile writes content to path unless a file already exists there and
// force is false.
func WriteFile(path string, content []byte, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// normalizeRuleKeys converts rule names and aliases to canonical IDs in the
// config, so users may write "no-empty-block" instead of "CSS002".
// When a rule is configured under two keys the last one wins with a warning.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if len(cfg.Rules) > 0 {
		normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
		seenIDs := make(map[string]string)

		for key, ruleCfg := range cfg.Rules {
			canonicalID, _, found := registry.Resolve(key)
			if !found {
				normalized[key] = ruleCfg
				continue
			}

			if originalKey, exists := seenIDs[canonicalID]; exists {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using last value",
						originalKey, key, canonicalID))
			}

			seenIDs[canonicalID] = key
			normalized[canonicalID] = ruleCfg
		}

		cfg.Rules = normalized
	}

	cfg.EnableRules = canonicalKeys(registry, cfg.EnableRules)
	cfg.DisableRules = canonicalKeys(registry, cfg.DisableRules)
}

func canonicalKeys(registry *lint.Registry, keys []string) []string {
	if keys == nil {
		return nil
	}
	out := make([]string, len(keys))
	for i, key := range keys {
		if id, _, found := registry.Resolve(key); found {
			out[i] = id
		} else {
			out[i] = key
		}
	}
	return out
}
