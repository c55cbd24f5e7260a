package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lang/css"
	"github.com/yaklabco/gocst/pkg/languages"
	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// knownPseudoClasses lists the standard pseudo-classes, plus the legacy
// pseudo-elements that may still be written with a single colon.
var knownPseudoClasses = map[string]bool{
	"active": true, "any-link": true, "autofill": true, "blank": true,
	"checked": true, "current": true, "default": true, "defined": true,
	"dir": true, "disabled": true, "empty": true, "enabled": true,
	"first": true, "first-child": true, "first-of-type": true, "focus": true,
	"focus-visible": true, "focus-within": true, "fullscreen": true, "future": true,
	"has": true, "host": true, "host-context": true, "hover": true,
	"in-range": true, "indeterminate": true, "invalid": true, "is": true,
	"lang": true, "last-child": true, "last-of-type": true, "left": true,
	"link": true, "local-link": true, "modal": true, "not": true,
	"nth-child": true, "nth-col": true, "nth-last-child": true, "nth-last-col": true,
	"nth-last-of-type": true, "nth-of-type": true, "only-child": true, "only-of-type": true,
	"optional": true, "out-of-range": true, "past": true, "paused": true,
	"picture-in-picture": true, "placeholder-shown": true, "playing": true, "popover-open": true,
	"read-only": true, "read-write": true, "required": true, "right": true,
	"root": true, "scope": true, "state": true, "target": true,
	"target-within": true, "user-invalid": true, "user-valid": true, "valid": true,
	"visited": true, "where": true,
	// Legacy single-colon pseudo-elements.
	"after": true, "before": true, "first-letter": true, "first-line": true,
}

// namedSelector is a pseudo selector with a name token.
type namedSelector interface {
	Name() (*syntax.SyntaxToken, error)
	NameRange() (syntax.TextRange, error)
}

// UnknownPseudoClassRule flags pseudo-classes that no browser defines.
type UnknownPseudoClassRule struct {
	lint.BaseRule
}

// NewUnknownPseudoClassRule creates the CSS001 rule.
func NewUnknownPseudoClassRule() *UnknownPseudoClassRule {
	return &UnknownPseudoClassRule{
		BaseRule: lint.NewBaseRule(
			"CSS001",
			"no-unknown-pseudo-class",
			languages.CSS,
			"Disallow pseudo-class selectors that are not defined by CSS",
			[]string{"selectors"},
		),
	}
}

// DefaultSeverity returns error.
func (r *UnknownPseudoClassRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply reports the name token of every unknown pseudo-class.
//
// Options:
//   - ignore: pseudo-class names to accept in addition to the standard ones.
func (r *UnknownPseudoClassRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	ignore := ctx.OptionStringSlice("ignore", nil)

	var diags []lint.Diagnostic
	check := func(name *syntax.SyntaxToken, rng syntax.TextRange) {
		text := strings.ToLower(name.TextTrimmed())
		if knownPseudoClasses[text] || strings.HasPrefix(text, "-") || slices.Contains(ignore, text) {
			return
		}
		diags = append(diags, ctx.Report(rng, fmt.Sprintf("Unexpected unknown pseudo-class ':%s'", name.TextTrimmed())).Build())
	}

	for _, n := range ctx.Nodes(css.KindPseudoClassSelector.ToRaw(), css.KindPseudoClassFunctionSelector.ToRaw()) {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		sel, ok := css.CastAnySubSelector(n)
		if !ok {
			continue
		}
		pseudo, ok := sel.(namedSelector)
		if !ok {
			continue
		}
		name, err := pseudo.Name()
		if err != nil {
			continue
		}
		rng, _ := pseudo.NameRange()
		check(name, rng)
	}

	return diags, nil
}

// EmptyBlockRule flags declaration blocks with nothing in them.
type EmptyBlockRule struct {
	lint.BaseRule
}

// NewEmptyBlockRule creates the CSS002 rule.
func NewEmptyBlockRule() *EmptyBlockRule {
	return &EmptyBlockRule{
		BaseRule: lint.NewBaseRule(
			"CSS002",
			"no-empty-block",
			languages.CSS,
			"Disallow empty declaration blocks",
			[]string{"blocks"},
		),
	}
}

// Apply reports every closed block that contains only trivia.
func (r *EmptyBlockRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for _, n := range ctx.Nodes(css.KindDeclarationBlock.ToRaw()) {
		block, ok := css.CastDeclarationBlock(n)
		if !ok || !block.IsEmpty() {
			continue
		}
		if _, err := block.RCurly(); err != nil {
			continue
		}
		diags = append(diags, ctx.Report(n.TextTrimmedRange(), "Unexpected empty block").
			WithSuggestion("Remove the rule or add declarations").
			Build())
	}

	return diags, nil
}

// DuplicatePropertiesRule flags a property declared twice in one block.
type DuplicatePropertiesRule struct {
	lint.BaseRule
}

// NewDuplicatePropertiesRule creates the CSS003 rule.
func NewDuplicatePropertiesRule() *DuplicatePropertiesRule {
	return &DuplicatePropertiesRule{
		BaseRule: lint.NewBaseRule(
			"CSS003",
			"no-duplicate-properties",
			languages.CSS,
			"Disallow duplicate properties within a declaration block",
			[]string{"declarations"},
		),
	}
}

// Apply reports every declaration whose property already appeared earlier
// in the same block.
//
// Options:
//   - allow_fallbacks: accept a repeated property when the values differ,
//     as in `display: -webkit-box; display: flex`. Defaults to true.
func (r *DuplicatePropertiesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	allowFallbacks := ctx.OptionBool("allow_fallbacks", true)

	var diags []lint.Diagnostic
	for _, n := range ctx.Nodes(css.KindDeclarationBlock.ToRaw()) {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		block, ok := css.CastDeclarationBlock(n)
		if !ok {
			continue
		}

		seen := make(map[string][]string)
		for decl := range block.Declarations().All() {
			prop, err := decl.Property()
			if err != nil {
				continue
			}
			name := decl.PropertyName()
			value := declarationValue(decl)

			previous, dup := seen[name]
			seen[name] = append(previous, value)
			if !dup || (allowFallbacks && !slices.Contains(previous, value)) {
				continue
			}

			diags = append(diags, ctx.Report(prop.TextTrimmedRange(),
				fmt.Sprintf("Unexpected duplicate property '%s'", name)).
				WithSuggestion("Remove the earlier declaration").
				Build())
		}
	}

	return diags, nil
}

func declarationValue(decl css.Declaration) string {
	value, err := decl.Value()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value.Syntax().TextTrimmed())
}

// ImportantRule flags !important annotations.
type ImportantRule struct {
	lint.BaseRule
}

// NewImportantRule creates the CSS004 rule.
func NewImportantRule() *ImportantRule {
	return &ImportantRule{
		BaseRule: lint.NewBaseRule(
			"CSS004",
			"no-important",
			languages.CSS,
			"Disallow !important in declarations",
			[]string{"declarations", "specificity"},
		),
	}
}

// DefaultEnabled returns false.
func (r *ImportantRule) DefaultEnabled() bool {
	return false
}

// Apply reports every !important annotation.
func (r *ImportantRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	for _, n := range ctx.Nodes(css.KindImportant.ToRaw()) {
		diags = append(diags, ctx.Report(n.TextTrimmedRange(), "Unexpected !important").Build())
	}
	return diags, nil
}
