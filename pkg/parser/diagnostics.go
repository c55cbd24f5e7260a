package parser

import (
	"github.com/tidwall/btree"

	"github.com/yaklabco/gocst/pkg/syntax"
)

// Diagnostics collects diagnostics ordered by start offset. Diagnostics
// with equal starts keep their insertion order. A zero value is ready to use.
type Diagnostics struct {
	tree btree.Map[uint64, syntax.Diagnostic]
	seq  uint32
}

// Add records d.
func (ds *Diagnostics) Add(d syntax.Diagnostic) {
	key := uint64(max(d.Range.Start, 0))<<32 | uint64(ds.seq)
	ds.seq++
	ds.tree.Set(key, d)
}

// Len returns the number of diagnostics.
func (ds *Diagnostics) Len() int {
	return ds.tree.Len()
}

// Sorted returns the diagnostics ordered by start offset.
func (ds *Diagnostics) Sorted() []syntax.Diagnostic {
	out := make([]syntax.Diagnostic, 0, ds.tree.Len())
	iter := ds.tree.Iter()
	for more := iter.First(); more; more = iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// From returns the diagnostics starting at or after offset, in order.
func (ds *Diagnostics) From(offset int) []syntax.Diagnostic {
	var out []syntax.Diagnostic
	iter := ds.tree.Iter()
	for more := iter.Seek(uint64(max(offset, 0)) << 32); more; more = iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}
