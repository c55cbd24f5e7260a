package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lint"
)

// SourceContext is the source line shown under a diagnostic.
type SourceContext struct {
	// Line is the text of the diagnostic's first line.
	Line string

	// Column is the 1-based display column of the diagnostic start.
	Column int

	// Width is the display width to underline; values below 1 draw a
	// single caret.
	Width int
}

// FormatDiagnostic formats a single diagnostic for terminal output.
// A nil source omits the context lines.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, source *SourceContext, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(diag.FilePath),
		diag.StartLine,
		diag.StartColumn,
	)

	ruleIdentifier := diag.RuleID
	if !diag.IsParseError() {
		ruleIdentifier = config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)
	}

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.RuleID.Render("("+ruleIdentifier+")"),
	)

	if source != nil {
		builder.WriteString(s.FormatSourceContext(*source))
	}

	if diag.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(diag.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker under
// the reported range.
func (s *Styles) FormatSourceContext(src SourceContext) string {
	const indent = "        "

	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(src.Line) + "\n")

	if src.Column > 0 {
		marker := "^"
		if src.Width > 1 {
			marker += strings.Repeat("~", src.Width-1)
		}
		builder.WriteString(indent + strings.Repeat(" ", src.Column-1) + s.Caret.Render(marker) + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path, language string, issueCount int) string {
	header := s.FilePath.Render(path)
	if language != "" {
		header += s.Dim.Render(" [" + language + "]")
	}
	if issueCount > 0 {
		noun := "issues"
		if issueCount == 1 {
			noun = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, noun))
	}
	return header
}
