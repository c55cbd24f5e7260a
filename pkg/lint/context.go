package lint

import (
	"context"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// SourceFile is a parsed file shared by every rule run against it.
type SourceFile struct {
	// Path is the file path as given to the engine.
	Path string

	// Language is the registered language name.
	Language string

	// Text is the file content.
	Text string

	// Lines maps byte offsets to line and column positions.
	Lines *syntax.LineIndex

	// Parse holds the tree and the parser diagnostics.
	Parse *syntax.Parse
}

// NewSourceFile wraps a parse result.
func NewSourceFile(path, language string, result *syntax.Parse) *SourceFile {
	text := result.Text()
	return &SourceFile{
		Path:     path,
		Language: language,
		Text:     text,
		Lines:    syntax.NewLineIndex(text),
		Parse:    result,
	}
}

// Root returns the root of the tree.
func (f *SourceFile) Root() *syntax.SyntaxNode {
	return f.Parse.Root
}

// RuleContext provides all context needed by a rule to perform linting.
//
// RuleContext stores context.Context as a field (Ctx) rather than passing it
// as a method parameter. It is a short-lived parameter object created per
// rule invocation.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the parsed source file.
	File *SourceFile

	// Root is the tree root (convenience alias for File.Root()).
	Root *syntax.SyntaxNode

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry

	// rule is the rule being run, used by Report.
	rule Rule

	// index is shared by all rules run against File.
	index *KindIndex
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *SourceFile,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	var root *syntax.SyntaxNode
	if file != nil {
		root = file.Root()
	}

	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		Root:       root,
		Config:     cfg,
		RuleConfig: ruleCfg,
		index:      NewKindIndex(root),
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Nodes returns every node of the given kinds in preorder. The slice is
// shared between rules and must not be mutated.
func (rc *RuleContext) Nodes(kinds ...syntax.RawKind) []*syntax.SyntaxNode {
	return rc.index.Nodes(kinds...)
}

// Report starts a diagnostic for the running rule at rng.
func (rc *RuleContext) Report(rng syntax.TextRange, message string) *DiagnosticBuilder {
	id := ""
	if rc.rule != nil {
		id = rc.rule.ID()
	}
	return NewDiagnostic(id, rc.File, rng, message)
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// YAML decodes sequences as []any.
	if iface, ok := v.([]any); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
