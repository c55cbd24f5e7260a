package syntax

import (
	"errors"
	"fmt"
)

// RawKind is the language-independent storage form of a syntax kind.
type RawKind uint16

// Reserved raw kinds shared by every language.
const (
	// Tombstone marks an abandoned or replaced slot; it never appears in a finished tree.
	Tombstone RawKind = 0
	// EOF is the end-of-file token kind.
	EOF RawKind = 1
)

// ErrKindOutOfRange is returned when a raw kind exceeds a language's last kind.
var ErrKindOutOfRange = errors.New("syntax kind out of range")

// Kind is implemented by every per-language kind type.
type Kind interface {
	// ToRaw returns the storage form of the kind.
	ToRaw() RawKind

	// IsTrivia reports whether the kind is whitespace, a newline or a comment.
	IsTrivia() bool

	// IsList reports whether the kind is a homogeneous list node.
	IsList() bool

	// IsBogus reports whether the kind is an error-recovery node.
	IsBogus() bool

	// IsRoot reports whether the kind is the language's root node.
	IsRoot() bool

	// String returns the debug name, e.g. "CSS_QUALIFIED_RULE".
	String() string

	// Name returns the canonical textual form of the kind: the fixed text of
	// punctuation and keywords, the debug name otherwise. It returns false
	// only for the technical sentinels TOMBSTONE and __LAST.
	Name() (string, bool)
}

// Language binds raw kinds stored in the green tree to a typed kind set.
type Language interface {
	// Name returns the language name, e.g. "css".
	Name() string

	// FromRaw converts a raw kind, failing with ErrKindOutOfRange.
	FromRaw(raw RawKind) (Kind, error)

	// ToBogus maps a kind to its canonical bogus replacement.
	ToBogus(raw RawKind) RawKind

	// Root returns the single root kind.
	Root() RawKind

	// Last returns the __LAST sentinel.
	Last() RawKind
}

// KindFlags classifies a kind.
type KindFlags uint8

// Kind classification flags.
const (
	FlagTrivia KindFlags = 1 << iota
	FlagList
	FlagBogus
	FlagRoot
	FlagToken
)

// KindSpec describes one kind in a KindTable. The index of the spec in the
// table is its raw value.
type KindSpec struct {
	// Name is the debug name.
	Name string
	// Text is the fixed source text of punctuation and keywords.
	Text string
	// Flags classifies the kind.
	Flags KindFlags
}

// KindTable is the data behind a language's kind enumeration. Entry 0 must
// be TOMBSTONE, entry 1 EOF and the final entry __LAST.
type KindTable struct {
	language string
	specs    []KindSpec
	byName   map[string]RawKind
	root     RawKind
}

// NewKindTable validates specs and returns the table. It panics when the
// reserved entries are misplaced or the table does not have exactly one root.
func NewKindTable(language string, specs []KindSpec) *KindTable {
	if len(specs) < 3 {
		panic(fmt.Sprintf("syntax: %s kind table needs at least TOMBSTONE, EOF and __LAST", language))
	}
	if specs[Tombstone].Name != "TOMBSTONE" || specs[EOF].Name != "EOF" || specs[len(specs)-1].Name != "__LAST" {
		panic(fmt.Sprintf("syntax: %s kind table has misplaced reserved kinds", language))
	}
	if len(specs)-1 > int(^RawKind(0)) {
		panic(fmt.Sprintf("syntax: %s kind table exceeds raw kind range", language))
	}

	table := &KindTable{
		language: language,
		specs:    specs,
		byName:   make(map[string]RawKind, len(specs)),
	}
	roots := 0
	for i, spec := range specs {
		if _, dup := table.byName[spec.Name]; dup {
			panic(fmt.Sprintf("syntax: %s kind table has duplicate kind %s", language, spec.Name))
		}
		table.byName[spec.Name] = RawKind(i)
		if spec.Flags&FlagRoot != 0 {
			roots++
			table.root = RawKind(i)
		}
	}
	if roots != 1 {
		panic(fmt.Sprintf("syntax: %s kind table has %d root kinds, want 1", language, roots))
	}
	return table
}

// Language returns the language name the table belongs to.
func (t *KindTable) Language() string {
	return t.language
}

// Last returns the __LAST sentinel.
func (t *KindTable) Last() RawKind {
	return RawKind(len(t.specs) - 1)
}

// Root returns the root kind.
func (t *KindTable) Root() RawKind {
	return t.root
}

// Check returns ErrKindOutOfRange when raw exceeds __LAST.
func (t *KindTable) Check(raw RawKind) error {
	if raw > t.Last() {
		return fmt.Errorf("%s: raw kind %d exceeds __LAST (%d): %w", t.language, raw, t.Last(), ErrKindOutOfRange)
	}
	return nil
}

// Spec returns the spec of raw. Out of range kinds yield a zero spec.
func (t *KindTable) Spec(raw RawKind) KindSpec {
	if raw > t.Last() {
		return KindSpec{}
	}
	return t.specs[raw]
}

// Has reports whether raw carries every flag in flags.
func (t *KindTable) Has(raw RawKind, flags KindFlags) bool {
	return t.Spec(raw).Flags&flags == flags
}

// String returns the debug name of raw.
func (t *KindTable) String(raw RawKind) string {
	if raw > t.Last() {
		return fmt.Sprintf("%s_KIND(%d)", t.language, raw)
	}
	return t.specs[raw].Name
}

// Name returns the canonical textual form of raw.
func (t *KindTable) Name(raw RawKind) (string, bool) {
	if raw == Tombstone || raw >= t.Last() {
		return "", false
	}
	spec := t.specs[raw]
	if spec.Text != "" {
		return spec.Text, true
	}
	return spec.Name, true
}

// Lookup finds a kind by debug name.
func (t *KindTable) Lookup(name string) (RawKind, bool) {
	raw, ok := t.byName[name]
	return raw, ok
}

// Len returns the number of kinds, including the sentinels.
func (t *KindTable) Len() int {
	return len(t.specs)
}
