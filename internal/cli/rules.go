package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocst/internal/ui/pretty"
	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
	language   string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Language    string   `json:"language,omitempty"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, languages, severity and
whether they are enabled once configuration is applied.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "only list rules for this language")

	return cmd
}

func runRules(cmd *cobra.Command, flags *rulesFlags) error {
	if flags.format != "text" && flags.format != formatJSON {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("unknown format %q; valid formats: text, json", flags.format))
	}

	sess, err := newSession(cmd, &config.Config{})
	if err != nil {
		return err
	}

	infos := sess.ruleInfos(flags.language)
	out := cmd.OutOrStdout()

	if flags.format == formatJSON {
		return outputRulesJSON(out, infos)
	}

	if len(infos) == 0 {
		_, err := fmt.Fprintln(out, "no rules registered")
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
	table := pretty.NewTable(styles, pretty.TerminalWidth(out),
		"RULE", "LANGUAGE", "SEVERITY", "ENABLED", "DESCRIPTION")
	for _, info := range infos {
		enabled := "yes"
		if !info.Enabled {
			enabled = "-"
		}
		language := info.Language
		if language == "" {
			language = "*"
		}
		table.AddRow(!info.Enabled,
			config.FormatRuleID(config.RuleFormat(flags.ruleFormat), info.ID, info.Name),
			language,
			info.Severity,
			enabled,
			info.Description,
		)
	}

	_, err = io.WriteString(out, table.Render())
	return err
}

// ruleInfos describes every registered rule, resolved against the loaded
// configuration. A non-empty language keeps only rules that apply to it.
func (s *session) ruleInfos(language string) []ruleInfo {
	resolved := make(map[string]lint.ResolvedRule)
	for _, name := range s.languages.Names() {
		for _, rr := range lint.ResolveRules(s.rules, name, s.config) {
			resolved[rr.Rule.ID()] = rr
		}
	}

	rules := s.rules.Rules()
	if language != "" {
		rules = s.rules.ForLanguage(strings.ToLower(language))
	}

	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		info := ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Language:    rule.Language(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Tags:        rule.Tags(),
		}
		if rr, ok := resolved[rule.ID()]; ok {
			info.Enabled = true
			info.Severity = string(rr.Severity)
		}
		infos = append(infos, info)
	}
	return infos
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, infos []ruleInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
