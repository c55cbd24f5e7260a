package parser

import "github.com/yaklabco/gocst/pkg/syntax"

// Kind is the constraint satisfied by every language's kind type.
type Kind interface {
	~uint16
	syntax.Kind
}

// LexedToken is one lexeme produced by a language lexer. Lexers emit
// trivia as tokens too and classify them through Trivia.
type LexedToken[K Kind] struct {
	Kind  K
	Start int
	End   int
	// Trivia is non-zero when the token is trivia.
	Trivia syntax.TriviaPieceKind
}

// Range returns the byte range of the token.
func (t LexedToken[K]) Range() syntax.TextRange {
	return syntax.TextRange{Start: t.Start, End: t.End}
}

// IsTrivia reports whether the token is trivia.
func (t LexedToken[K]) IsTrivia() bool {
	return t.Trivia != 0
}

// TokenSource gives the parser a view of the non-trivia tokens while
// keeping every lexed token for the tree sink.
type TokenSource[K Kind] struct {
	src       string
	tokens    []LexedToken[K]
	nonTrivia []int
	pos       int
}

// NewTokenSource creates a source over tokens, which must cover src
// contiguously. An EOF token is appended when the lexer did not emit one.
func NewTokenSource[K Kind](src string, tokens []LexedToken[K]) *TokenSource[K] {
	eof := K(syntax.EOF)
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != eof {
		tokens = append(tokens, LexedToken[K]{Kind: eof, Start: len(src), End: len(src)})
	}
	ts := &TokenSource[K]{src: src, tokens: tokens}
	for i, tok := range tokens {
		if !tok.IsTrivia() {
			ts.nonTrivia = append(ts.nonTrivia, i)
		}
	}
	return ts
}

// Source returns the source text.
func (ts *TokenSource[K]) Source() string {
	return ts.src
}

// Tokens returns every lexed token, trivia included.
func (ts *TokenSource[K]) Tokens() []LexedToken[K] {
	return ts.tokens
}

// Position returns the index of the current non-trivia token.
func (ts *TokenSource[K]) Position() int {
	return ts.pos
}

func (ts *TokenSource[K]) index(n int) int {
	i := ts.pos + n
	if i >= len(ts.nonTrivia) {
		i = len(ts.nonTrivia) - 1
	}
	return ts.nonTrivia[i]
}

// Current returns the current token.
func (ts *TokenSource[K]) Current() LexedToken[K] {
	return ts.tokens[ts.index(0)]
}

// CurrentIndex returns the index of the current token in Tokens.
func (ts *TokenSource[K]) CurrentIndex() int {
	return ts.index(0)
}

// Nth returns the n-th non-trivia token after the current one. Looking
// past the end yields EOF.
func (ts *TokenSource[K]) Nth(n int) LexedToken[K] {
	return ts.tokens[ts.index(n)]
}

// Advance moves to the next non-trivia token. It stays on EOF.
func (ts *TokenSource[K]) Advance() {
	if ts.pos < len(ts.nonTrivia)-1 {
		ts.pos++
	}
}

// SkipAsTrivia turns the current token into skipped trivia and advances.
// EOF cannot be skipped.
func (ts *TokenSource[K]) SkipAsTrivia() {
	if ts.pos >= len(ts.nonTrivia)-1 {
		return
	}
	ts.tokens[ts.nonTrivia[ts.pos]].Trivia = syntax.TriviaSkipped
	ts.pos++
}

// HasPrecedingLineBreak reports whether a newline separates the current
// token from the previous non-trivia token.
func (ts *TokenSource[K]) HasPrecedingLineBreak() bool {
	cur := ts.index(0)
	for i := cur - 1; i >= 0 && ts.tokens[i].IsTrivia(); i-- {
		if ts.tokens[i].Trivia == syntax.TriviaNewline {
			return true
		}
	}
	return false
}

// HasPrecedingTrivia reports whether any trivia precedes the current token.
func (ts *TokenSource[K]) HasPrecedingTrivia() bool {
	cur := ts.index(0)
	return cur > 0 && ts.tokens[cur-1].IsTrivia()
}
