package parser

import (
	"fmt"

	"github.com/yaklabco/gocst/pkg/syntax"
)

// Marker is an open node. It must be completed or abandoned.
type Marker[K Kind] struct {
	pos   int
	start int
}

// Complete closes the node as kind.
func (m Marker[K]) Complete(p *Parser[K], kind K) CompletedMarker[K] {
	if kind == K(syntax.Tombstone) {
		panic("parser: cannot complete a node as TOMBSTONE")
	}
	p.events[m.pos].NodeKind = kind
	p.events = append(p.events, Event[K]{Kind: EventFinish})
	end := max(p.lastEnd, m.start)
	return CompletedMarker[K]{pos: m.pos, finish: len(p.events) - 1, start: m.start, end: end, kind: kind}
}

// Abandon discards the node. Its children are adopted by the enclosing node.
func (m Marker[K]) Abandon(p *Parser[K]) {
	if m.pos == len(p.events)-1 && p.events[m.pos].ForwardParent == 0 {
		p.events = p.events[:m.pos]
		return
	}
	p.events[m.pos].NodeKind = K(syntax.Tombstone)
}

// Start returns the offset at which the marker was opened.
func (m Marker[K]) Start() int {
	return m.start
}

// CompletedMarker is a closed node that can still be wrapped or re-kinded.
type CompletedMarker[K Kind] struct {
	pos    int
	finish int
	start  int
	end    int
	kind   K
}

// Kind returns the kind the node was completed with.
func (cm CompletedMarker[K]) Kind() K {
	return cm.kind
}

// Range returns the range of the node's tokens, excluding outer trivia.
func (cm CompletedMarker[K]) Range() syntax.TextRange {
	if cm.end < cm.start {
		return syntax.EmptyRangeAt(cm.start)
	}
	return syntax.TextRange{Start: cm.start, End: cm.end}
}

// IsEmpty reports whether the node consumed no tokens.
func (cm CompletedMarker[K]) IsEmpty() bool {
	return cm.end <= cm.start
}

// Precede opens a new node that will become the parent of this one.
func (cm CompletedMarker[K]) Precede(p *Parser[K]) Marker[K] {
	m := p.Start()
	if p.events[cm.pos].ForwardParent != 0 {
		panic(fmt.Sprintf("parser: node %s already has a forward parent", cm.kind))
	}
	p.events[cm.pos].ForwardParent = m.pos - cm.pos
	m.start = cm.start
	return m
}

// ChangeKind re-kinds the completed node.
func (cm CompletedMarker[K]) ChangeKind(p *Parser[K], kind K) CompletedMarker[K] {
	p.events[cm.pos].NodeKind = kind
	cm.kind = kind
	return cm
}

// ChangeToBogus re-kinds the node to its language's bogus replacement.
func (cm CompletedMarker[K]) ChangeToBogus(p *Parser[K]) CompletedMarker[K] {
	return cm.ChangeKind(p, K(p.lang.ToBogus(cm.kind.ToRaw())))
}
