package syntax

// TriviaPieceKind classifies a piece of trivia.
type TriviaPieceKind uint8

// Trivia piece kinds.
const (
	TriviaNewline TriviaPieceKind = iota + 1
	TriviaWhitespace
	TriviaSingleLineComment
	TriviaMultiLineComment
	// TriviaSkipped is source text the parser skipped. It is kept so that the
	// tree stays lossless.
	TriviaSkipped
)

var triviaNames = map[TriviaPieceKind]string{
	TriviaNewline:           "Newline",
	TriviaWhitespace:        "Whitespace",
	TriviaSingleLineComment: "SingleLineComment",
	TriviaMultiLineComment:  "MultiLineComment",
	TriviaSkipped:           "Skipped",
}

func (k TriviaPieceKind) String() string {
	if name, ok := triviaNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsComment reports whether the piece is a comment.
func (k TriviaPieceKind) IsComment() bool {
	return k == TriviaSingleLineComment || k == TriviaMultiLineComment
}

// TriviaPiece is one run of trivia stored on a green token.
type TriviaPiece struct {
	Kind   TriviaPieceKind
	Length int
}

func triviaLen(pieces []TriviaPiece) int {
	n := 0
	for _, p := range pieces {
		n += p.Length
	}
	return n
}

// SyntaxTriviaPiece is a trivia piece positioned in the source.
type SyntaxTriviaPiece struct {
	Kind  TriviaPieceKind
	Range TextRange
	text  string
}

// Text returns the source text of the piece.
func (p SyntaxTriviaPiece) Text() string {
	return p.text
}

// IsComment reports whether the piece is a comment.
func (p SyntaxTriviaPiece) IsComment() bool {
	return p.Kind.IsComment()
}

// IsNewline reports whether the piece is a line break.
func (p SyntaxTriviaPiece) IsNewline() bool {
	return p.Kind == TriviaNewline
}
