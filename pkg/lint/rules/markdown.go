package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gocst/pkg/lang/markdown"
	"github.com/yaklabco/gocst/pkg/languages"
	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// HeadingIncrementRule checks that heading levels increment by one.
type HeadingIncrementRule struct {
	lint.BaseRule
}

// NewHeadingIncrementRule creates a new heading increment rule.
func NewHeadingIncrementRule() *HeadingIncrementRule {
	return &HeadingIncrementRule{
		BaseRule: lint.NewBaseRule(
			"MD001",
			"heading-increment",
			languages.Markdown,
			"Heading levels should only increment by one level at a time",
			[]string{"headings"},
		),
	}
}

// Apply checks that heading levels increment by at most one.
func (r *HeadingIncrementRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	var prevLevel int

	for _, n := range ctx.Nodes(markdown.KindHeader.ToRaw(), markdown.KindSetextHeader.ToRaw()) {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		level := headingLevel(n)
		if level == 0 {
			continue
		}

		// First heading can be any level.
		if prevLevel > 0 && level > prevLevel+1 {
			diags = append(diags, ctx.Report(n.TextTrimmedRange(),
				fmt.Sprintf("Heading level jumped from H%d to H%d", prevLevel, level)).
				WithSuggestion(fmt.Sprintf("Use H%d instead", prevLevel+1)).
				Build())
		}

		prevLevel = level
	}

	return diags, nil
}

func headingLevel(n *syntax.SyntaxNode) int {
	if h, ok := markdown.CastHeader(n); ok {
		return h.Level()
	}
	if h, ok := markdown.CastSetextHeader(n); ok {
		return h.Level()
	}
	return 0
}

// FencedCodeLanguageRule checks that fenced code blocks name a language.
type FencedCodeLanguageRule struct {
	lint.BaseRule
}

// NewFencedCodeLanguageRule creates the MD002 rule.
func NewFencedCodeLanguageRule() *FencedCodeLanguageRule {
	return &FencedCodeLanguageRule{
		BaseRule: lint.NewBaseRule(
			"MD002",
			"fenced-code-language",
			languages.Markdown,
			"Fenced code blocks should have a language specified",
			[]string{"code", "language"},
		),
	}
}

// Apply reports the opening fence of every block without an info string.
// When the body looks like a known language the suggestion names it.
func (r *FencedCodeLanguageRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for _, n := range ctx.Nodes(markdown.KindFencedCodeBlock.ToRaw()) {
		block, ok := markdown.CastFencedCodeBlock(n)
		if !ok || block.Language() != "" {
			continue
		}
		fence := block.Fence()
		if fence == nil {
			continue
		}

		b := ctx.Report(fence.TextTrimmedRange(), "Fenced code block has no language")
		if lang := languages.DetectSnippet([]byte(codeBody(block))); lang != "" {
			b.WithSuggestion(fmt.Sprintf("Add a language after the fence, e.g. %s%s", fenceMarker(fence), lang))
		} else {
			b.WithSuggestion("Add a language after the opening fence")
		}
		diags = append(diags, b.Build())
	}

	return diags, nil
}

// codeBody joins the lines between the fences.
func codeBody(block markdown.FencedCodeBlock) string {
	lines := block.Lines()
	if len(lines) < 2 {
		return ""
	}
	body := lines[1:]
	marker := fenceMarker(lines[0])
	if last := strings.TrimLeft(body[len(body)-1].TextTrimmed(), "> \t"); marker != "" && strings.HasPrefix(last, marker) {
		body = body[:len(body)-1]
	}

	var sb strings.Builder
	for _, tok := range body {
		sb.WriteString(tok.TextTrimmed())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// fenceMarker returns the run of backticks or tildes that opens the fence.
func fenceMarker(fence *syntax.SyntaxToken) string {
	line := strings.TrimLeft(fence.TextTrimmed(), "> \t")
	if line == "" || (line[0] != '`' && line[0] != '~') {
		return ""
	}
	end := 0
	for end < len(line) && line[end] == line[0] {
		end++
	}
	return line[:end]
}
