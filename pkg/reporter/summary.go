package reporter

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/yaklabco/gocst/internal/ui/pretty"
	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/runner"
)

// RuleCount aggregates diagnostics for one rule.
type RuleCount struct {
	RuleID   string
	RuleName string
	Issues   int
	Errors   int
	Warnings int
}

// FileCount aggregates diagnostics for one file.
type FileCount struct {
	Path     string
	Language string
	Issues   int
	Errors   int
	Warnings int
}

// Aggregate counts diagnostics by rule and by file. Both slices are sorted
// by descending issue count, then by identifier.
func Aggregate(result *runner.Result) ([]RuleCount, []FileCount) {
	if result == nil {
		return nil, nil
	}

	byRule := make(map[string]*RuleCount)
	var files []FileCount

	for _, file := range result.Files {
		if file.Result == nil || len(file.Result.Diagnostics) == 0 {
			continue
		}
		fc := FileCount{Path: file.Path, Language: file.Result.File.Language}
		for _, diag := range file.Result.Diagnostics {
			rc, ok := byRule[diag.RuleID]
			if !ok {
				rc = &RuleCount{RuleID: diag.RuleID, RuleName: diag.RuleName}
				byRule[diag.RuleID] = rc
			}
			rc.Issues++
			fc.Issues++
			switch diag.Severity {
			case config.SeverityError:
				rc.Errors++
				fc.Errors++
			case config.SeverityWarning:
				rc.Warnings++
				fc.Warnings++
			}
		}
		files = append(files, fc)
	}

	rules := make([]RuleCount, 0, len(byRule))
	for _, rc := range byRule {
		rules = append(rules, *rc)
	}
	slices.SortFunc(rules, func(a, b RuleCount) int {
		return cmp.Or(cmp.Compare(b.Issues, a.Issues), cmp.Compare(a.RuleID, b.RuleID))
	})
	slices.SortFunc(files, func(a, b FileCount) int {
		return cmp.Or(cmp.Compare(b.Issues, a.Issues), cmp.Compare(a.Path, b.Path))
	})

	return rules, files
}

// SummaryReporter formats results as aggregated tables.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		width:  pretty.TerminalWidth(opts.Writer),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		return 0, nil
	}

	rules, files := Aggregate(result)

	if len(rules) > 0 {
		fmt.Fprintln(r.bw, r.styles.Bold.Render("Rules"))
		table := pretty.NewTable(r.styles, r.width, "RULE", "COUNT", "ERRORS", "WARNINGS")
		for _, rc := range rules {
			name := config.FormatRuleID(r.opts.RuleFormat, rc.RuleID, rc.RuleName)
			table.AddRow(false, name, strconv.Itoa(rc.Issues), strconv.Itoa(rc.Errors), strconv.Itoa(rc.Warnings))
		}
		fmt.Fprint(r.bw, table.Render())
		fmt.Fprintln(r.bw)

		fmt.Fprintln(r.bw, r.styles.Bold.Render("Files"))
		table = pretty.NewTable(r.styles, r.width, "COUNT", "ERRORS", "WARNINGS", "LANGUAGE", "FILE")
		for _, fc := range files {
			table.AddRow(false, strconv.Itoa(fc.Issues), strconv.Itoa(fc.Errors), strconv.Itoa(fc.Warnings),
				fc.Language, r.opts.displayPath(fc.Path))
		}
		fmt.Fprint(r.bw, table.Render())
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))

	return result.Stats.DiagnosticsTotal, nil
}
