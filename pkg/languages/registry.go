// Package languages maps file paths to the language parsers that build
// lossless syntax trees for them.
package languages

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/gocst/pkg/lang/css"
	"github.com/yaklabco/gocst/pkg/lang/grit"
	"github.com/yaklabco/gocst/pkg/lang/json"
	"github.com/yaklabco/gocst/pkg/lang/markdown"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// Registered language names.
const (
	CSS      = "css"
	JSON     = "json"
	Grit     = "grit"
	Markdown = "markdown"
)

// ErrUnknownLanguage is returned when no parser is registered for a name
// or a file cannot be mapped to a language.
var ErrUnknownLanguage = errors.New("unknown language")

// Parser builds a syntax tree for one language.
//
// Implementations must be deterministic, safe for concurrent use and free
// of I/O; path is only used for diagnostics.
type Parser interface {
	// Language returns the language whose kinds the tree uses.
	Language() syntax.Language

	// Parse parses content. Malformed input still yields a tree; errors are
	// reserved for cancellation.
	Parse(ctx context.Context, path string, content []byte) (*syntax.Parse, error)
}

// ParseFunc adapts a plain parse function to Parser.
type ParseFunc struct {
	Lang syntax.Language
	Fn   func(src string) *syntax.Parse
}

// Language returns the wrapped language.
func (f ParseFunc) Language() syntax.Language { return f.Lang }

// Parse checks ctx and calls the wrapped function.
func (f ParseFunc) Parse(ctx context.Context, _ string, content []byte) (*syntax.Parse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}
	return f.Fn(string(content)), nil
}

// Registry maps language names and file extensions to parsers. It is
// built once at startup and read-only afterwards.
type Registry struct {
	parsers    map[string]Parser
	extensions map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers:    make(map[string]Parser),
		extensions: make(map[string]string),
	}
}

// Register adds a parser for name, claiming the given extensions
// (with leading dot). A later registration replaces an earlier one.
func (r *Registry) Register(name string, p Parser, extensions ...string) {
	r.parsers[name] = p
	for _, ext := range extensions {
		r.extensions[strings.ToLower(ext)] = name
	}
}

// MapExtension routes ext to an already registered language.
func (r *Registry) MapExtension(ext, name string) error {
	if _, ok := r.parsers[name]; !ok {
		return fmt.Errorf("map %s: %w: %q", ext, ErrUnknownLanguage, name)
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	r.extensions[strings.ToLower(ext)] = name
	return nil
}

// Parser returns the parser registered for name.
func (r *Registry) Parser(name string) (Parser, error) {
	p, ok := r.parsers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return p, nil
}

// Names returns the registered language names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Extensions returns the extensions claimed by name in sorted order.
func (r *Registry) Extensions(name string) []string {
	var exts []string
	for ext, n := range r.extensions {
		if n == name {
			exts = append(exts, ext)
		}
	}
	slices.Sort(exts)
	return exts
}

// Supports reports whether path has a registered extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Parse detects the language of path and parses content.
func (r *Registry) Parse(ctx context.Context, path string, content []byte) (string, *syntax.Parse, error) {
	name, err := r.Detect(path, content)
	if err != nil {
		return "", nil, err
	}
	p, err := r.Parser(name)
	if err != nil {
		return "", nil, err
	}
	result, err := p.Parse(ctx, path, content)
	if err != nil {
		return name, nil, fmt.Errorf("parse %s as %s: %w", path, name, err)
	}
	return name, result, nil
}

// Options configures the builtin registry.
type Options struct {
	// MarkdownFlavor is "commonmark" or "gfm".
	MarkdownFlavor string
}

// Builtin returns a registry with every bundled language.
func Builtin(opts Options) *Registry {
	r := NewRegistry()
	r.Register(CSS, ParseFunc{Lang: css.Language, Fn: css.Parse}, ".css")
	r.Register(JSON, ParseFunc{Lang: json.Language, Fn: json.Parse}, ".json", ".jsonc")
	r.Register(Grit, ParseFunc{Lang: grit.Language, Fn: grit.Parse}, ".grit")
	md := markdown.New(opts.MarkdownFlavor)
	r.Register(Markdown, ParseFunc{
		Lang: markdown.Language,
		Fn:   func(src string) *syntax.Parse { return md.Parse(src, nil) },
	}, ".md", ".markdown")
	return r
}
