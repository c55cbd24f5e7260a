package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocst/internal/logging"
	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/reporter"
	"github.com/yaklabco/gocst/pkg/runner"
)

type lintFlags struct {
	format     string
	flavor     string
	ruleFormat string
	jobs       int
	ignore     []string
	enable     []string
	disable    []string
	strict     bool
	noContext  bool
	noSummary  bool
	compact    bool
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Parse and lint CSS, JSON, Grit and Markdown files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Parse every supported file into a lossless syntax tree and run the
lint rules registered for its language. Syntax errors are reported as
diagnostics alongside rule findings.

By default, lints every .css, .json, .jsonc, .grit, .md and .markdown file
under the current directory. Specify paths to lint specific files or
directories; explicitly named files are linted whatever their extension.

Examples:
  gocst lint                         # Lint current directory
  gocst lint styles/                 # Lint a directory
  gocst lint site.css package.json   # Lint single files
  gocst lint --format json           # Output as JSON for CI
  gocst lint --disable no-important  # Turn off a rule by name or ID
  gocst lint --strict                # Treat warnings as errors`

// cliConfig maps explicitly set flags onto a config layer.
func (f *lintFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(f.ruleFormat)
	}
	if changed("markdown-flavor") {
		cfg.Markdown.Flavor = config.MarkdownFlavor(f.flavor)
	}
	if changed("jobs") {
		cfg.Jobs = f.jobs
	}
	cfg.Ignore = f.ignore
	cfg.EnableRules = f.enable
	cfg.DisableRules = f.disable
	cfg.Strict = f.strict

	return cfg
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	if cmd.Flags().Changed("format") {
		if _, err := reporter.ParseFormat(flags.format); err != nil {
			return withExitCode(ExitInvalidUsage, err)
		}
	}

	sess, err := newSession(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}
	cfg := sess.config

	lintRunner := runner.New(lint.NewEngine(sess.languages, sess.rules))
	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   sess.workDir,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	sess.logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(sess.ctx, runOpts)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("lint run failed: %w", err))
	}

	sess.logger.Debug("lint run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
		logging.FieldDuration, result.Stats.Duration,
	)
	for _, outcome := range result.Files {
		if outcome.Error != nil {
			sess.logger.Error("file failed", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
		}
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowContext: !flags.noContext,
		ShowSummary: !flags.noSummary,
		GroupByFile: true,
		Compact:     flags.compact,
		RuleFormat:  cfg.RuleFormat,
		WorkingDir:  sess.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(sess.ctx, result); err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("report results: %w", err))
	}

	if code := ExitCodeFromResult(result, cfg.Strict); code != ExitSuccess {
		return withExitCode(code, ErrLintIssuesFound)
	}

	return nil
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = number of CPUs)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().StringVar(&flags.flavor, "markdown-flavor", "commonmark", "Markdown flavor: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
}
