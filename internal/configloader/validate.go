package configloader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.CSS001.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validator checks a configuration against the registered rules and languages.
// A nil Rules registry or empty Languages list skips the matching check.
type Validator struct {
	Rules     *lint.Registry
	Languages []string
}

// Validate checks a configuration for errors and warnings.
func (v Validator) Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Markdown.Flavor != "" && !IsValidFlavor(cfg.Markdown.Flavor) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "markdown.flavor",
			Value:   cfg.Markdown.Flavor,
			Message: fmt.Sprintf("invalid flavor %q; must be one of: commonmark, gfm", cfg.Markdown.Flavor),
		})
	}

	if cfg.SeverityDefault != "" && !IsValidSeverity(cfg.SeverityDefault) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "severity_default",
			Value:   cfg.SeverityDefault,
			Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, summary", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	v.validateLanguages(cfg, result)
	v.validateRules(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// ValidateFile validates a configuration and tags every finding with filePath.
func (v Validator) ValidateFile(cfg *config.Config, filePath string) *ValidationResult {
	result := v.Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

func (v Validator) validateLanguages(cfg *config.Config, result *ValidationResult) {
	for ext, name := range cfg.Languages {
		field := "languages." + ext
		if ext == "" || ext == "." {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   ext,
				Message: "extension must not be empty",
			})
			continue
		}
		if len(v.Languages) > 0 && !slices.Contains(v.Languages, name) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   name,
				Message: fmt.Sprintf("unknown language %q; must be one of: %s", name, strings.Join(v.Languages, ", ")),
			})
		}
	}
}

func (v Validator) validateRules(cfg *config.Config, result *ValidationResult) {
	for ruleID, ruleCfg := range cfg.Rules {
		if v.Rules != nil {
			if _, exists := v.Rules.Get(ruleID); !exists {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   "rules." + ruleID,
					Value:   ruleID,
					Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleID),
				})
			}
		}

		if ruleCfg.Severity != nil && !IsValidSeverity(*ruleCfg.Severity) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rules." + ruleID + ".severity",
				Value:   *ruleCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", *ruleCfg.Severity),
			})
		}
	}

	if v.Rules == nil {
		return
	}
	for _, key := range slices.Concat(cfg.EnableRules, cfg.DisableRules) {
		if _, exists := v.Rules.Get(key); !exists {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules",
				Value:   key,
				Message: fmt.Sprintf("unknown rule %q on the command line", key),
			})
		}
	}
}

func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			})
		}
	}
}

// IsValidSeverity returns true if the severity string is valid.
func IsValidSeverity(s string) bool {
	return config.Severity(s).IsValid()
}

// IsValidFlavor returns true if the Markdown flavor is valid.
func IsValidFlavor(f config.MarkdownFlavor) bool {
	return f == config.FlavorCommonMark || f == config.FlavorGFM
}
