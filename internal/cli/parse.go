package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocst/internal/logging"
	"github.com/yaklabco/gocst/internal/ui/pretty"
	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// Output formats of the parse command.
const (
	parseFormatTree = "tree"
	parseFormatText = "text"
	parseFormatJSON = "json"
)

type parseFlags struct {
	format   string
	language string
	flavor   string
}

// parseOutput is the JSON document written by "parse --format json".
type parseOutput struct {
	Path        string                 `json:"path"`
	Language    string                 `json:"language"`
	Tree        syntax.ExportedElement `json:"tree"`
	Diagnostics []parseDiagnostic      `json:"diagnostics"`
}

type parseDiagnostic struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Hint     string `json:"hint,omitempty"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the syntax tree of a file",
		Long: `Parse a single file and print its lossless syntax tree. Every slot of
every node is shown, including empty ones, with byte ranges and the trivia
attached to each token. Parse errors are written to stderr.

Use "-" as the file to read from stdin; --language is then required.

Examples:
  gocst parse site.css                   # Styled tree
  gocst parse --format text site.css     # Plain tree for snapshots
  gocst parse --format json data.json    # Machine-readable tree
  echo 'a{' | gocst parse -l css -       # Parse stdin`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", parseFormatTree, "output format: tree, text, json")
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "parse as this language instead of detecting it")
	cmd.Flags().StringVar(&flags.flavor, "markdown-flavor", "commonmark", "Markdown flavor: commonmark, gfm")

	return cmd
}

func runParse(cmd *cobra.Command, path string, flags *parseFlags) error {
	switch flags.format {
	case parseFormatTree, parseFormatText, parseFormatJSON:
	default:
		return withExitCode(ExitInvalidUsage,
			fmt.Errorf("unknown format %q; valid formats: tree, text, json", flags.format))
	}
	if path == "-" && flags.language == "" {
		return withExitCode(ExitInvalidUsage, errors.New("--language is required when reading stdin"))
	}

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("markdown-flavor") {
		cliCfg.Markdown.Flavor = config.MarkdownFlavor(flags.flavor)
	}
	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	content, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return withExitCode(ExitIOError, err)
	}

	start := time.Now()
	language, result, err := sess.parse(path, content, flags.language)
	if err != nil {
		return withExitCode(ExitLintErrors, err)
	}
	sess.logger.Debug("parsed file",
		logging.FieldPath, path,
		logging.FieldLanguage, language,
		logging.FieldBytes, len(content),
		logging.FieldDiagnostics, len(result.Diagnostics),
		logging.FieldDuration, time.Since(start),
	)

	file := lint.NewSourceFile(path, language, result)
	out := cmd.OutOrStdout()

	switch flags.format {
	case parseFormatJSON:
		err = writeParseJSON(out, file)
	case parseFormatText:
		err = syntax.DumpTo(out, result.Root)
	default:
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
		_, err = io.WriteString(out, styles.FormatTree(result.Root))
	}
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write tree: %w", err))
	}

	if !result.HasErrors() {
		return nil
	}

	errOut := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), errOut))
	for _, diag := range lint.ParseDiagnostics(file) {
		if _, err := io.WriteString(errOut, styles.FormatDiagnostic(&diag, nil, sess.config.RuleFormat)); err != nil {
			return withExitCode(ExitIOError, fmt.Errorf("write diagnostics: %w", err))
		}
	}
	return withExitCode(ExitLintErrors, fmt.Errorf("%s: %d syntax %s", path, len(result.Diagnostics),
		plural(len(result.Diagnostics), "error", "errors")))
}

// parse parses content as language, or as the detected language when
// language is empty.
func (s *session) parse(path string, content []byte, language string) (string, *syntax.Parse, error) {
	if language == "" {
		return s.languages.Parse(s.ctx, path, content)
	}
	p, err := s.languages.Parser(language)
	if err != nil {
		return "", nil, err
	}
	result, err := p.Parse(s.ctx, path, content)
	if err != nil {
		return language, nil, fmt.Errorf("parse %s as %s: %w", path, language, err)
	}
	return language, result, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return content, nil
}

func writeParseJSON(w io.Writer, file *lint.SourceFile) error {
	output := parseOutput{
		Path:        file.Path,
		Language:    file.Language,
		Tree:        syntax.Export(file.Root()),
		Diagnostics: make([]parseDiagnostic, 0, len(file.Parse.Diagnostics)),
	}
	for _, d := range file.Parse.Diagnostics {
		pos := file.Lines.Position(d.Range.Start)
		output.Diagnostics = append(output.Diagnostics, parseDiagnostic{
			Category: d.Category,
			Message:  d.Message,
			Hint:     d.Hint,
			Start:    d.Range.Start,
			End:      d.Range.End,
			Line:     pos.Line,
			Column:   pos.Column,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}
	return nil
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
