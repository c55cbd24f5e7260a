// Package rules provides the built-in lint rules for gocst.
//
// Rules are grouped by the language they inspect:
//
//   - CSS001 no-unknown-pseudo-class
//   - CSS002 no-empty-block
//   - CSS003 no-duplicate-properties
//   - CSS004 no-important (disabled by default)
//   - JSON001 no-duplicate-keys
//   - MD001 heading-increment
//   - MD002 fenced-code-language
//   - GEN001 no-bogus-nodes (disabled by default, every language)
//
// Rules read the typed AST of their language and never re-parse text.
package rules
