package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocst/internal/configloader"
	"github.com/yaklabco/gocst/internal/logging"
	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lint/rules"
)

// defaultConfigFile is the file name written by init.
const defaultConfigFile = ".gocst.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gocst configuration file",
		Long: `Create a new .gocst.yml configuration file in the current directory
with sensible defaults. The file can be customized to map extra extensions
to languages, enable or disable rules and change severities.

Examples:
  gocst init                      Create minimal .gocst.yml
  gocst init --full               Create full config with all rules documented
  gocst init --output custom.yml  Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all rules documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.Default()

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("resolve path: %w", err))
	}

	opts := config.TemplateOptions{Full: flags.full}
	if flags.full {
		registry, err := rules.NewRegistry()
		if err != nil {
			return fmt.Errorf("register rules: %w", err)
		}
		for _, rule := range registry.Rules() {
			opts.Rules = append(opts.Rules, config.RuleInfo{
				ID:          rule.ID(),
				Name:        rule.Name(),
				Language:    rule.Language(),
				Description: rule.Description(),
				Enabled:     rule.DefaultEnabled(),
				Severity:    rule.DefaultSeverity(),
				Tags:        rule.Tags(),
			})
		}
	}

	if err := configloader.WriteFile(absPath, config.GenerateTemplate(opts), flags.force); err != nil {
		return withExitCode(ExitIOError, err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	if flags.full {
		logger.Info("full template includes all rules with documentation")
	}
	logger.Info("run 'gocst rules' to see all available rules")

	return nil
}
