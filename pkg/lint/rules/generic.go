package rules

import (
	"fmt"

	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// BogusNodesRule reports every subtree the parser could not give a
// structured shape. It runs on every language.
type BogusNodesRule struct {
	lint.BaseRule
}

// NewBogusNodesRule creates the GEN001 rule.
func NewBogusNodesRule() *BogusNodesRule {
	return &BogusNodesRule{
		BaseRule: lint.NewBaseRule(
			"GEN001",
			"no-bogus-nodes",
			"",
			"Report regions the parser recovered from as bogus nodes",
			[]string{"parser"},
		),
	}
}

// DefaultEnabled returns false. Parse errors are already reported; this
// rule exists for grammar development.
func (r *BogusNodesRule) DefaultEnabled() bool {
	return false
}

// Apply reports outermost bogus nodes only.
func (r *BogusNodesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for n := range ctx.Root.Descendants() {
		if !n.Kind().IsBogus() || hasBogusAncestor(n) {
			continue
		}
		diags = append(diags, ctx.Report(n.TextTrimmedRange(), fmt.Sprintf("Bogus %s node", n.Kind())).Build())
	}
	return diags, nil
}

func hasBogusAncestor(n *syntax.SyntaxNode) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind().IsBogus() {
			return true
		}
	}
	return false
}
