package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocst/internal/logging"
	"github.com/yaklabco/gocst/internal/ui/pretty"
	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/runner"
)

type checkFlags struct {
	jobs   int
	ignore []string
	flavor string
}

// checkResult is the round-trip verdict for one file.
type checkResult struct {
	Language    string
	Source      string
	TreeText    string
	Diagnostics int
	Bogus       int

	// Containment is set when a parse error is not covered by a bogus node.
	Containment error
}

func (r checkResult) lossless() bool {
	return r.Source == r.TreeText
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Verify that syntax trees reproduce their source exactly",
		Long: `Parse every supported file and verify that the text of the resulting
tree is byte-for-byte identical to the input, and that every parse error
lies inside a bogus node. Differences are printed as a diff.

Examples:
  gocst check                  # Check the current directory
  gocst check testdata/ -j 8   # Check a corpus with eight workers`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = number of CPUs)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.flavor, "markdown-flavor", "commonmark", "Markdown flavor: commonmark, gfm")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	cliCfg := &config.Config{Ignore: flags.ignore}
	if cmd.Flags().Changed("jobs") {
		cliCfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("markdown-flavor") {
		cliCfg.Markdown.Flavor = config.MarkdownFlavor(flags.flavor)
	}
	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	files, err := runner.Discover(sess.ctx, runner.Options{
		Paths:        args,
		WorkingDir:   sess.workDir,
		Extensions:   sess.extensions(),
		ExcludeGlobs: sess.config.Ignore,
	})
	if err != nil {
		return withExitCode(ExitIOError, err)
	}
	sess.logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	outcomes, err := runner.Process(sess.ctx, files, sess.config.Jobs, sess.checkFile)
	if err != nil {
		return withExitCode(ExitInternalError, err)
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))

	var mismatches, uncontained, failed int
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			failed++
			sess.logger.Error("check failed", logging.FieldPath, o.Path, logging.FieldError, o.Err)
		case !o.Value.lossless():
			mismatches++
			if _, err := io.WriteString(out, styles.FormatTextDiff(o.Path, o.Value.Source, o.Value.TreeText)); err != nil {
				return withExitCode(ExitIOError, err)
			}
		case o.Value.Containment != nil:
			uncontained++
			if _, err := fmt.Fprintf(out, "%s %s\n", styles.FilePath.Render(o.Path), o.Value.Containment); err != nil {
				return withExitCode(ExitIOError, err)
			}
		}
	}

	sess.logger.Debug("check finished",
		logging.FieldFilesProcessed, len(outcomes),
		logging.FieldMismatches, mismatches,
	)

	failures := mismatches + uncontained
	status := styles.Success.Render(fmt.Sprintf("All %d %s round-trip losslessly", len(outcomes),
		plural(len(outcomes), "file", "files")))
	if failures > 0 || failed > 0 {
		status = styles.Failure.Render(fmt.Sprintf("%d of %d %s failed the round-trip check",
			failures+failed, len(outcomes), plural(len(outcomes), "file", "files")))
	}
	if _, err := fmt.Fprintln(out, status); err != nil {
		return withExitCode(ExitIOError, err)
	}

	switch {
	case failures > 0:
		return withExitCode(ExitLintErrors, ErrCheckFailed)
	case failed > 0:
		return withExitCode(ExitIOError, ErrCheckFailed)
	}
	return nil
}

// checkFile parses one file and compares the tree text with the source.
func (s *session) checkFile(ctx context.Context, path string) (checkResult, error) {
	ctx = logging.ForFile(ctx, path)
	content, err := os.ReadFile(path)
	if err != nil {
		return checkResult{}, fmt.Errorf("read file: %w", err)
	}

	language, result, err := s.languages.Parse(ctx, path, content)
	if err != nil {
		return checkResult{}, err
	}

	res := checkResult{
		Language:    language,
		Source:      string(content),
		TreeText:    result.Text(),
		Diagnostics: len(result.Diagnostics),
		Containment: parser.CheckBogusContainment(result),
	}
	for n := range result.Root.Descendants() {
		if n.Kind().IsBogus() {
			res.Bogus++
		}
	}

	logging.FromContext(ctx).Debug("checked file",
		logging.FieldLanguage, language,
		logging.FieldBytes, len(content),
		logging.FieldDiagnostics, res.Diagnostics,
		logging.FieldBogusNodes, res.Bogus,
	)
	return res, nil
}

// extensions returns every extension with a registered language.
func (s *session) extensions() []string {
	var exts []string
	for _, name := range s.languages.Names() {
		exts = append(exts, s.languages.Extensions(name)...)
	}
	slices.Sort(exts)
	return exts
}
