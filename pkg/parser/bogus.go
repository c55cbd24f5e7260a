package parser

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gocst/pkg/syntax"
)

// ErrUncontainedDiagnostic is returned by CheckBogusContainment.
var ErrUncontainedDiagnostic = errors.New("diagnostic not contained by a bogus node")

// CheckBogusContainment verifies that every diagnostic of a parse lies
// inside a bogus node, so that malformed input never surfaces as
// well-formed structure.
func CheckBogusContainment(parse *syntax.Parse) error {
	var bogus []syntax.TextRange
	for n := range parse.Root.Descendants() {
		if n.Kind().IsBogus() {
			bogus = append(bogus, n.TextRange())
		}
	}

	var errs []error
	for _, d := range parse.Diagnostics {
		contained := false
		for _, r := range bogus {
			if r.ContainsRange(d.Range) {
				contained = true
				break
			}
		}
		if !contained {
			errs = append(errs, fmt.Errorf("%s: %w", d, ErrUncontainedDiagnostic))
		}
	}
	return errors.Join(errs...)
}
