package lint

import (
	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic for ruleID at rng in file.
// Line and column fields are derived from the file's line index.
func NewDiagnostic(ruleID string, file *SourceFile, rng syntax.TextRange, message string) *DiagnosticBuilder {
	diag := Diagnostic{
		RuleID:  ruleID,
		Message: message,
		Range:   rng,
	}
	if file != nil {
		diag.FilePath = file.Path
		start := file.Lines.Position(rng.Start)
		end := file.Lines.Position(rng.End)
		diag.StartLine, diag.StartColumn = start.Line, start.Column
		diag.EndLine, diag.EndColumn = end.Line, end.Column
	}
	return &DiagnosticBuilder{diag: diag}
}

// NewNodeDiagnostic starts a diagnostic covering the trimmed range of n.
func NewNodeDiagnostic(ruleID string, file *SourceFile, n *syntax.SyntaxNode, message string) *DiagnosticBuilder {
	return NewDiagnostic(ruleID, file, n.TextTrimmedRange(), message)
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithRuleName sets the human-readable rule name.
func (b *DiagnosticBuilder) WithRuleName(name string) *DiagnosticBuilder {
	b.diag.RuleName = name
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
