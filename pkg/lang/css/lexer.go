package css

import (
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// lexer performs a single-pass tokenization of CSS source.
// It produces a contiguous, non-overlapping token stream covering [0, len(src)).
// Malformed lexemes become ERROR_TOKEN; the lexer never reports diagnostics.
type lexer struct {
	src    string
	tokens []parser.LexedToken[Kind]
	pos    int
}

// Lex tokenizes src, trivia included.
func Lex(src string) []parser.LexedToken[Kind] {
	const initialCapacityDivisor = 3
	l := &lexer{
		src:    src,
		tokens: make([]parser.LexedToken[Kind], 0, len(src)/initialCapacityDivisor),
	}
	for l.pos < len(l.src) {
		l.next()
	}
	return l.tokens
}

func (l *lexer) peek(n int) byte {
	if l.pos+n < len(l.src) {
		return l.src[l.pos+n]
	}
	return 0
}

func (l *lexer) next() {
	c := l.src[l.pos]
	switch {
	case c == '\n' || c == '\r':
		l.consumeNewline()
	case c == ' ' || c == '\t' || c == '\f':
		l.consumeWhitespace()
	case c == '/' && l.peek(1) == '*':
		l.consumeComment()
	case c == '"' || c == '\'':
		l.consumeString(c)
	case isDigit(c), c == '.' && isDigit(l.peek(1)):
		l.consumeNumeric()
	case (c == '+' || c == '-') && (isDigit(l.peek(1)) || l.peek(1) == '.' && isDigit(l.peek(2))):
		l.consumeNumeric()
	case l.startsIdent(0):
		start := l.pos
		l.consumeName()
		l.emit(KindIdent, start, l.pos, 0)
	case c == '@':
		l.consumePrefixed(KindAtKeyword, l.startsIdent(1))
	case c == '#':
		l.consumePrefixed(KindHash, isNameByte(l.peek(1)) || l.peek(1) == '\\')
	case c == ':':
		if l.peek(1) == ':' {
			l.emitN(KindColon2, 2)
		} else {
			l.emitN(KindColon, 1)
		}
	default:
		l.consumePunctuation(c)
	}
}

func (l *lexer) consumePunctuation(c byte) {
	if l.peek(1) == '=' {
		switch c {
		case '~':
			l.emitN(KindTildeEq, 2)
			return
		case '|':
			l.emitN(KindPipeEq, 2)
			return
		case '^':
			l.emitN(KindCaretEq, 2)
			return
		case '$':
			l.emitN(KindDollarEq, 2)
			return
		case '*':
			l.emitN(KindStarEq, 2)
			return
		}
	}
	kind, ok := punctuation[c]
	if !ok {
		l.consumeError()
		return
	}
	l.emitN(kind, 1)
}

var punctuation = map[byte]Kind{
	'{': KindLCurly,
	'}': KindRCurly,
	'(': KindLParen,
	')': KindRParen,
	'[': KindLBrack,
	']': KindRBrack,
	';': KindSemicolon,
	',': KindComma,
	'.': KindDot,
	'*': KindStar,
	'+': KindPlus,
	'-': KindMinus,
	'>': KindGt,
	'~': KindTilde,
	'&': KindAmp,
	'!': KindBang,
	'/': KindSlash,
	'|': KindPipe,
	'=': KindEq,
}

func (l *lexer) consumeNewline() {
	start := l.pos
	if l.src[l.pos] == '\r' && l.peek(1) == '\n' {
		l.pos++
	}
	l.pos++
	l.emit(KindNewline, start, l.pos, syntax.TriviaNewline)
}

func (l *lexer) consumeWhitespace() {
	start := l.pos
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t' || l.src[l.pos] == '\f') {
		l.pos++
	}
	l.emit(KindWhitespace, start, l.pos, syntax.TriviaWhitespace)
}

// consumeComment consumes a /* */ comment. An unterminated comment runs to
// the end of input and becomes an error token.
func (l *lexer) consumeComment() {
	start := l.pos
	l.pos += 2
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peek(1) == '/' {
			l.pos += 2
			l.emit(KindComment, start, l.pos, syntax.TriviaMultiLineComment)
			return
		}
		l.pos++
	}
	l.emit(KindErrorToken, start, l.pos, 0)
}

// consumeString consumes a quoted string. A string cut short by a newline
// or the end of input becomes an error token that stops before the newline.
func (l *lexer) consumeString(quote byte) {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case quote:
			l.pos++
			l.emit(KindString, start, l.pos, 0)
			return
		case '\\':
			l.pos++
			if l.pos < len(l.src) {
				if l.src[l.pos] == '\r' && l.peek(1) == '\n' {
					l.pos++
				}
				l.pos++
			}
		case '\n', '\r':
			l.emit(KindErrorToken, start, l.pos, 0)
			return
		default:
			l.pos++
		}
	}
	l.emit(KindErrorToken, start, l.pos, 0)
}

func (l *lexer) consumeNumeric() {
	start := l.pos
	if l.src[l.pos] == '+' || l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if e := l.peek(0); (e == 'e' || e == 'E') &&
		(isDigit(l.peek(1)) || (l.peek(1) == '+' || l.peek(1) == '-') && isDigit(l.peek(2))) {
		l.pos += 2
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}

	switch {
	case l.peek(0) == '%' && l.pos < len(l.src):
		l.pos++
		l.emit(KindPercentage, start, l.pos, 0)
	case l.startsIdent(0):
		l.consumeName()
		l.emit(KindDimension, start, l.pos, 0)
	default:
		l.emit(KindNumber, start, l.pos, 0)
	}
}

// consumePrefixed consumes '@name' or '#name'. Without a name the prefix
// byte alone is an error token.
func (l *lexer) consumePrefixed(kind Kind, hasName bool) {
	start := l.pos
	l.pos++
	if !hasName {
		l.emit(KindErrorToken, start, l.pos, 0)
		return
	}
	l.consumeName()
	l.emit(kind, start, l.pos, 0)
}

func (l *lexer) consumeName() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case isNameByte(c):
			l.pos++
		case c == '\\' && l.pos+1 < len(l.src) && l.src[l.pos+1] != '\n' && l.src[l.pos+1] != '\r':
			l.pos += 2
		default:
			return
		}
	}
}

func (l *lexer) consumeError() {
	start := l.pos
	l.pos++
	// Keep multi-byte characters in one token.
	for l.pos < len(l.src) && l.src[l.pos]&0xC0 == 0x80 {
		l.pos++
	}
	l.emit(KindErrorToken, start, l.pos, 0)
}

// startsIdent reports whether an identifier starts n bytes ahead.
func (l *lexer) startsIdent(n int) bool {
	c := l.peek(n)
	switch {
	case isNameStart(c):
		return true
	case c == '-':
		next := l.peek(n + 1)
		return isNameStart(next) || next == '-' || next == '\\' && l.peek(n+2) != '\n' && l.peek(n+2) != 0
	case c == '\\':
		next := l.peek(n + 1)
		return next != '\n' && next != '\r' && next != 0
	}
	return false
}

func (l *lexer) emitN(kind Kind, n int) {
	l.emit(kind, l.pos, l.pos+n, 0)
	l.pos += n
}

func (l *lexer) emit(kind Kind, start, end int, trivia syntax.TriviaPieceKind) {
	l.tokens = append(l.tokens, parser.LexedToken[Kind]{Kind: kind, Start: start, End: end, Trivia: trivia})
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isNameStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_' || b >= 0x80
}

func isNameByte(b byte) bool {
	return isNameStart(b) || isDigit(b) || b == '-'
}
