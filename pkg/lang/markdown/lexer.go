package markdown

import (
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// Lex splits src into one MD_TEXTUAL_LITERAL token per non-blank line.
// Indentation, trailing blanks and line breaks become trivia.
func Lex(src string) []parser.LexedToken[Kind] {
	return lexLines(src, syntax.NewLineIndex(src))
}

func lexLines(src string, lines *syntax.LineIndex) []parser.LexedToken[Kind] {
	tokens := make([]parser.LexedToken[Kind], 0, lines.LineCount()*2)
	emit := func(kind Kind, start, end int, trivia syntax.TriviaPieceKind) {
		if end > start {
			tokens = append(tokens, parser.LexedToken[Kind]{Kind: kind, Start: start, End: end, Trivia: trivia})
		}
	}
	for i := range lines.LineCount() {
		line := lines.Line(i)
		textStart := line.Start
		for textStart < line.NewlineStart && isBlank(src[textStart]) {
			textStart++
		}
		textEnd := line.NewlineStart
		for textEnd > textStart && isBlank(src[textEnd-1]) {
			textEnd--
		}
		emit(KindWhitespace, line.Start, textStart, syntax.TriviaWhitespace)
		emit(KindTextual, textStart, textEnd, 0)
		emit(KindWhitespace, textEnd, line.NewlineStart, syntax.TriviaWhitespace)
		emit(KindNewline, line.NewlineStart, line.End, syntax.TriviaNewline)
	}
	return tokens
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }
