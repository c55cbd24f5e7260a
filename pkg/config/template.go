package config

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every rule. A minimal template only shows the layout.
	Full bool

	// Rules describes the rules to document in a full template.
	Rules []RuleInfo
}

// RuleInfo contains rule metadata for template generation. The caller
// supplies it so this package does not depend on the lint registry.
type RuleInfo struct {
	ID          string
	Name        string
	Language    string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
}

const templateHeader = `# gocst configuration
# Place this file at the project root as .gocst.yml.

# Map extra file extensions to a built-in language.
# languages:
#   .pcss: css
#   .mdx: markdown

markdown:
  # Block grammar for Markdown files: commonmark or gfm
  flavor: commonmark

# Default severity for rules without one: error, warning, or info
# severity_default: warning

# File patterns to skip (doublestar globs)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`

// GenerateTemplate creates a commented configuration file.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer
	buf.WriteString(templateHeader)

	if !opts.Full {
		buf.WriteString(`
# Rule-specific configuration
# rules:
#   CSS004:
#     enabled: true
#     severity: error
`)
		return buf.Bytes()
	}

	rules := slices.Clone(opts.Rules)
	slices.SortFunc(rules, func(a, b RuleInfo) int { return strings.Compare(a.ID, b.ID) })

	buf.WriteString("\nrules:\n")
	for _, rule := range rules {
		fmt.Fprintf(&buf, "\n  # %s: %s (%s)\n", rule.ID, rule.Name, rule.Language)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)
	}

	return buf.Bytes()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}
