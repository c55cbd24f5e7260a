package rules

import (
	"errors"

	"github.com/yaklabco/gocst/pkg/lint"
)

// All returns a new instance of every built-in rule.
func All() []lint.Rule {
	return []lint.Rule{
		NewUnknownPseudoClassRule(),  // CSS001
		NewEmptyBlockRule(),          // CSS002
		NewDuplicatePropertiesRule(), // CSS003
		NewImportantRule(),           // CSS004
		NewDuplicateKeysRule(),       // JSON001
		NewHeadingIncrementRule(),    // MD001
		NewFencedCodeLanguageRule(),  // MD002
		NewBogusNodesRule(),          // GEN001
	}
}

// RegisterAll registers all built-in rules and their aliases with the
// given registry.
func RegisterAll(registry *lint.Registry) error {
	var errs []error
	for _, rule := range All() {
		if err := registry.Register(rule); err != nil {
			errs = append(errs, err)
		}
	}
	RegisterAliases(registry)
	return errors.Join(errs...)
}

// RegisterAliases maps the stylelint and markdownlint names of equivalent
// checks to the built-in rules.
func RegisterAliases(registry *lint.Registry) {
	registry.RegisterAlias("selector-pseudo-class-no-unknown", "CSS001")
	registry.RegisterAlias("block-no-empty", "CSS002")
	registry.RegisterAlias("declaration-block-no-duplicate-properties", "CSS003")
	registry.RegisterAlias("declaration-no-important", "CSS004")
	registry.RegisterAlias("MD040", "MD002")
}

// NewRegistry returns a registry holding every built-in rule.
func NewRegistry() (*lint.Registry, error) {
	reg := lint.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
