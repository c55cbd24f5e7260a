package lint

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/languages"
)

// ErrParseFailure indicates a file could not be parsed at all: its language
// is unknown or parsing was cancelled. Malformed input is not a failure; it
// produces parse diagnostics instead.
var ErrParseFailure = errors.New("parse failure")

// parseRulePrefix prefixes the rule ID of diagnostics converted from the parser.
const parseRulePrefix = "parse/"

// FileResult contains the results of linting a single file.
type FileResult struct {
	// File is the parsed file.
	File *SourceFile

	// Diagnostics contains all issues found, sorted by offset.
	Diagnostics []Diagnostic

	// RuleErrors contains any errors from rule execution.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// CountBySeverity returns the number of diagnostics with severity s.
func (fr *FileResult) CountBySeverity(s config.Severity) int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.Severity == s {
			count++
		}
	}
	return count
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Languages detects file languages and parses them.
	Languages *languages.Registry

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given language and rule registries.
func NewEngine(langs *languages.Registry, registry *Registry) *Engine {
	return &Engine{
		Languages: langs,
		Registry:  registry,
	}
}

// LintFile parses and lints a single file.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	language, parsed, err := e.Languages.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	file := NewSourceFile(path, language, parsed)
	result := &FileResult{
		File:        file,
		Diagnostics: ParseDiagnostics(file),
		RuleErrors:  make(map[string]error),
	}

	resolved := ResolveRules(e.Registry, language, cfg)

	// One index per file, shared by every rule.
	index := NewKindIndex(file.Root())

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, file, cfg, rr.Config)
		ruleCtx.Registry = e.Registry
		ruleCtx.rule = rr.Rule
		ruleCtx.index = index

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			diags[i].Severity = rr.Severity
			if diags[i].FilePath == "" {
				diags[i].FilePath = path
			}
			if diags[i].RuleID == "" {
				diags[i].RuleID = rr.Rule.ID()
			}
			if diags[i].RuleName == "" {
				diags[i].RuleName = rr.Rule.Name()
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	SortDiagnostics(result.Diagnostics)
	return result, nil
}

// ParseDiagnostics converts the parser diagnostics of file into lint
// diagnostics with rule ID "parse/<category>" and severity error.
func ParseDiagnostics(file *SourceFile) []Diagnostic {
	out := make([]Diagnostic, 0, len(file.Parse.Diagnostics))
	for _, d := range file.Parse.Diagnostics {
		out = append(out, NewDiagnostic(parseRulePrefix+d.Category, file, d.Range, d.Message).
			WithSeverity(config.SeverityError).
			WithSuggestion(d.Hint).
			Build())
	}
	return out
}

// SortDiagnostics orders diagnostics by start offset, then end offset, then
// rule ID. The sort is stable so rule output order breaks remaining ties.
func SortDiagnostics(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Range.Start, b.Range.Start),
			cmp.Compare(a.Range.End, b.Range.End),
			cmp.Compare(a.RuleID, b.RuleID),
		)
	})
}
