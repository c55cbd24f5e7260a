package rules

import (
	"fmt"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lang/json"
	"github.com/yaklabco/gocst/pkg/languages"
	"github.com/yaklabco/gocst/pkg/lint"
)

// DuplicateKeysRule flags object members whose key repeats an earlier one.
type DuplicateKeysRule struct {
	lint.BaseRule
}

// NewDuplicateKeysRule creates the JSON001 rule.
func NewDuplicateKeysRule() *DuplicateKeysRule {
	return &DuplicateKeysRule{
		BaseRule: lint.NewBaseRule(
			"JSON001",
			"no-duplicate-keys",
			languages.JSON,
			"Disallow duplicate keys in an object",
			[]string{"objects"},
		),
	}
}

// DefaultSeverity returns error.
func (r *DuplicateKeysRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply compares decoded keys, so "a" and "\u0061" are duplicates.
func (r *DuplicateKeysRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for _, n := range ctx.Nodes(json.KindObjectValue.ToRaw()) {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		obj, ok := json.CastObjectValue(n)
		if !ok {
			continue
		}

		firstLine := make(map[string]int)
		for member := range obj.Members().All() {
			name, err := member.Name()
			if err != nil {
				continue
			}
			key, err := name.InnerString()
			if err != nil {
				key = name.Raw()
			}

			rng := name.Syntax().TextTrimmedRange()
			line := ctx.File.Lines.Position(rng.Start).Line
			first, dup := firstLine[key]
			if !dup {
				firstLine[key] = line
				continue
			}

			diags = append(diags, ctx.Report(rng,
				fmt.Sprintf("Duplicate key %q, first defined on line %d", key, first)).
				WithSuggestion("Remove or rename one of the members").
				Build())
		}
	}

	return diags, nil
}
