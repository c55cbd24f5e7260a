package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gocst/internal/configloader"
	"github.com/yaklabco/gocst/internal/logging"
	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/languages"
	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/lint/rules"
)

// session holds everything a command needs after configuration is resolved.
type session struct {
	ctx       context.Context
	logger    *log.Logger
	workDir   string
	config    *config.Config
	languages *languages.Registry
	rules     *lint.Registry
}

// newSession loads configuration for cmd, applying cliCfg on top, and
// builds the language and rule registries from it.
func newSession(cmd *cobra.Command, cliCfg *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, withExitCode(ExitIOError, fmt.Errorf("get working directory: %w", err))
	}

	ruleRegistry, err := rules.NewRegistry()
	if err != nil {
		return nil, withExitCode(ExitInternalError, fmt.Errorf("register rules: %w", err))
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Rules:        ruleRegistry,
		Languages:    languages.Builtin(languages.Options{}).Names(),
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, withExitCode(ExitConfigError, fmt.Errorf("load configuration: %w", err))
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldConfigFiles, loadResult.LoadedFrom,
		logging.FieldFlavor, cfg.Markdown.Flavor,
		logging.FieldJobs, cfg.Jobs,
	)

	langs := languages.Builtin(languages.Options{MarkdownFlavor: string(cfg.Markdown.Flavor)})
	for ext, name := range cfg.Languages {
		if err := langs.MapExtension(ext, name); err != nil {
			return nil, withExitCode(ExitConfigError, err)
		}
	}

	return &session{
		ctx:       ctx,
		logger:    logger,
		workDir:   workDir,
		config:    cfg,
		languages: langs,
		rules:     ruleRegistry,
	}, nil
}

// colorMode returns the value of the persistent --color flag.
func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil || mode == "" {
		return "auto"
	}
	return mode
}
