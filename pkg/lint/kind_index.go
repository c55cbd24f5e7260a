package lint

import "github.com/yaklabco/gocst/pkg/syntax"

// KindIndex groups the nodes of one tree by raw kind.
//
// Rules usually look for a handful of kinds. Walking the tree once per file
// and sharing the buckets keeps the cost at O(nodes) instead of
// O(rules × nodes).
//
// The index is built lazily on the first lookup. It is not safe for
// concurrent use; each file gets its own index and rules for one file run
// sequentially.
type KindIndex struct {
	root   *syntax.SyntaxNode
	byKind map[syntax.RawKind][]*syntax.SyntaxNode
}

// NewKindIndex creates an index over root. A nil root yields an empty index.
func NewKindIndex(root *syntax.SyntaxNode) *KindIndex {
	return &KindIndex{root: root}
}

func (ki *KindIndex) build() {
	if ki.byKind != nil {
		return
	}
	ki.byKind = make(map[syntax.RawKind][]*syntax.SyntaxNode)
	if ki.root == nil {
		return
	}
	for n := range ki.root.Descendants() {
		ki.byKind[n.RawKind()] = append(ki.byKind[n.RawKind()], n)
	}
}

// Nodes returns the nodes of the given kinds in preorder. With a single
// kind the returned slice is the shared bucket: do not mutate it.
func (ki *KindIndex) Nodes(kinds ...syntax.RawKind) []*syntax.SyntaxNode {
	ki.build()
	if len(kinds) == 1 {
		return ki.byKind[kinds[0]]
	}
	if ki.root == nil {
		return nil
	}

	want := make(map[syntax.RawKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []*syntax.SyntaxNode
	for n := range ki.root.Descendants() {
		if want[n.RawKind()] {
			out = append(out, n)
		}
	}
	return out
}

// Count returns the number of nodes of kind.
func (ki *KindIndex) Count(kind syntax.RawKind) int {
	ki.build()
	return len(ki.byKind[kind])
}
