package syntax

import "fmt"

// Diagnostic is a parse error reported alongside a tree. Diagnostics are
// never stored in the tree itself.
type Diagnostic struct {
	// Range is the source span the diagnostic refers to.
	Range TextRange
	// Message is a human readable description.
	Message string
	// Category groups related diagnostics, e.g. "syntax" or "lexer".
	Category string
	// Hint is an optional suggestion for fixing the problem.
	Hint string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s] %s", d.Range, d.Category, d.Message)
}

// Parse is the result of parsing one source text: a lossless tree plus the
// diagnostics collected while building it, ordered by start offset.
type Parse struct {
	Root        *SyntaxNode
	Diagnostics []Diagnostic
}

// HasErrors reports whether any diagnostic was produced.
func (p *Parse) HasErrors() bool {
	return len(p.Diagnostics) > 0
}

// Text returns the reconstructed source text.
func (p *Parse) Text() string {
	return p.Root.Text()
}

// Language returns the language of the tree.
func (p *Parse) Language() Language {
	return p.Root.Language()
}
