package languages

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// enryNames maps go-enry language names to registered names.
var enryNames = map[string]string{
	"css":                CSS,
	"json":               JSON,
	"json with comments": JSON,
	"json5":              JSON,
	"markdown":           Markdown,
	"gritql":             Grit,
}

// Detect returns the language of path. Registered extensions win; other
// files are classified by go-enry from their name and content.
func (r *Registry) Detect(path string, content []byte) (string, error) {
	if name, ok := r.extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return name, nil
	}
	lang := enry.GetLanguage(filepath.Base(path), content)
	if name, ok := enryNames[strings.ToLower(lang)]; ok {
		if _, registered := r.parsers[name]; registered {
			return name, nil
		}
	}
	return "", fmt.Errorf("detect %s: %w", path, ErrUnknownLanguage)
}

// fenceNames maps go-enry names to the short tags used on code fences.
var fenceNames = map[string]string{
	"Shell":      "bash",
	"JavaScript": "javascript",
	"TypeScript": "typescript",
	"C++":        "cpp",
}

// snippetCandidates bounds the classifier to common fence languages.
var snippetCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// DetectSnippet guesses the language of a code snippet for a fence info
// string. It returns "" when no confident guess exists.
func DetectSnippet(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return ""
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}
	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case (trimmed[0] == '{' || trimmed[0] == '[') && bytes.Contains(trimmed, []byte(`"`)):
		return "json"
	case bytes.HasPrefix(bytes.ToLower(trimmed), []byte("<!doctype html")):
		return "html"
	}
	if lang, safe := enry.GetLanguageByClassifier(content, snippetCandidates); safe && lang != "" {
		return fenceTag(lang)
	}
	return ""
}

func fenceTag(lang string) string {
	if tag, ok := fenceNames[lang]; ok {
		return tag
	}
	return strings.ToLower(lang)
}
