package parser

import (
	"fmt"

	"github.com/yaklabco/gocst/pkg/syntax"
)

// LosslessTreeSink builds a green tree from parser events and attaches
// trivia to tokens. Leading trivia is all trivia before a token; trailing
// trivia runs up to, but not including, the next newline. EOF takes every
// remaining piece as leading trivia.
type LosslessTreeSink[K Kind] struct {
	builder *syntax.TreeBuilder
	src     string
	tokens  []LexedToken[K]
	cursor  int
}

// NewLosslessTreeSink creates a sink over the lexed tokens of src.
func NewLosslessTreeSink[K Kind](lang syntax.Language, src string, tokens []LexedToken[K], cache *syntax.NodeCache) *LosslessTreeSink[K] {
	return &LosslessTreeSink[K]{builder: syntax.NewTreeBuilder(lang, cache), src: src, tokens: tokens}
}

// StartNode opens a node.
func (s *LosslessTreeSink[K]) StartNode(kind K) {
	s.builder.StartNode(kind.ToRaw())
}

// FinishNode closes the current node.
func (s *LosslessTreeSink[K]) FinishNode() {
	s.builder.FinishNode()
}

// Missing adds an empty slot.
func (s *LosslessTreeSink[K]) Missing() {
	s.builder.EmptySlot()
}

// Token adds the lexed token at index as kind, with its trivia.
func (s *LosslessTreeSink[K]) Token(kind K, index int) {
	var leading, trailing []syntax.TriviaPiece
	for i := s.cursor; i < index; i++ {
		t := s.tokens[i]
		if !t.IsTrivia() {
			panic(fmt.Sprintf("parser: token %s at %d was never consumed", t.Kind, t.Start))
		}
		leading = append(leading, syntax.TriviaPiece{Kind: t.Trivia, Length: t.End - t.Start})
	}

	tok := s.tokens[index]
	next := index + 1
	if kind != K(syntax.EOF) {
		for next < len(s.tokens) && s.tokens[next].IsTrivia() && s.tokens[next].Trivia != syntax.TriviaNewline {
			t := s.tokens[next]
			trailing = append(trailing, syntax.TriviaPiece{Kind: t.Trivia, Length: t.End - t.Start})
			next++
		}
	}

	start, end := tok.Start, tok.End
	if index > s.cursor {
		start = s.tokens[s.cursor].Start
	}
	if next > index+1 {
		end = s.tokens[next-1].End
	}
	s.builder.Token(kind.ToRaw(), s.src[start:end], leading, trailing)
	s.cursor = next
}

// Finish returns the root. It panics when input was left unconsumed.
func (s *LosslessTreeSink[K]) Finish() *syntax.SyntaxNode {
	if s.cursor != len(s.tokens) {
		panic(fmt.Sprintf("parser: %d tokens left unconsumed", len(s.tokens)-s.cursor))
	}
	return s.builder.FinishRoot()
}

// ProcessEvents replays events into the sink, resolving forward parents.
// The events are modified in place.
func ProcessEvents[K Kind](s *LosslessTreeSink[K], events []Event[K]) {
	tombstone := K(syntax.Tombstone)
	var parents []K
	for i := range events {
		ev := events[i]
		switch ev.Kind {
		case EventStart:
			if ev.NodeKind == tombstone && ev.ForwardParent == 0 {
				continue
			}
			parents = append(parents[:0], ev.NodeKind)
			idx, fp := i, ev.ForwardParent
			events[i].NodeKind, events[i].ForwardParent = tombstone, 0
			for fp != 0 {
				idx += fp
				fwd := events[idx]
				parents = append(parents, fwd.NodeKind)
				fp = fwd.ForwardParent
				events[idx].NodeKind, events[idx].ForwardParent = tombstone, 0
			}
			for j := len(parents) - 1; j >= 0; j-- {
				if parents[j] != tombstone {
					s.StartNode(parents[j])
				}
			}
		case EventFinish:
			s.FinishNode()
		case EventToken:
			s.Token(ev.NodeKind, ev.TokenIndex)
		case EventMissing:
			s.Missing()
		}
	}
}
