// Package lint provides the rule engine, diagnostics and rule registry for gocst.
package lint

import (
	"strings"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// Diagnostic represents a single issue found in a file.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	// Parse errors use "parse/<category>".
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "no-empty-block").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Range is the byte range of the issue in the file.
	Range syntax.TextRange

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based byte column where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based byte column where the issue ends.
	EndColumn int

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string
}

// IsParseError reports whether the diagnostic came from the parser.
func (d *Diagnostic) IsParseError() bool {
	return strings.HasPrefix(d.RuleID, parseRulePrefix)
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "CSS001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Language returns the registered language name the rule applies to,
	// or "" for rules that run on every language.
	Language() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["selectors"]).
	Tags() []string

	// Apply executes the rule against the given context and returns diagnostics.
	//
	// Rules must:
	//   - Return diagnostics for each violation found.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
