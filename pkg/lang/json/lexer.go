package json

import (
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// lexer tokenizes JSON with comments. Anything that is not valid JSON
// becomes an ERROR_TOKEN paired with a lexer diagnostic.
type lexer struct {
	src    string
	tokens []parser.LexedToken[Kind]
	diags  []syntax.Diagnostic
	pos    int
}

// Lex tokenizes src, trivia included.
func Lex(src string) []parser.LexedToken[Kind] {
	tokens, _ := lex(src)
	return tokens
}

func lex(src string) ([]parser.LexedToken[Kind], []syntax.Diagnostic) {
	const initialCapacityDivisor = 2
	l := &lexer{
		src:    src,
		tokens: make([]parser.LexedToken[Kind], 0, len(src)/initialCapacityDivisor),
	}
	for l.pos < len(l.src) {
		l.next()
	}
	return l.tokens, l.diags
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
		start := l.pos
		if c == '\r' && l.peek(1) == '\n' {
			l.pos++
		}
		l.pos++
		l.emit(KindNewline, start, syntax.TriviaNewline)
	case c == ' ' || c == '\t':
		start := l.pos
		for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
			l.pos++
		}
		l.emit(KindWhitespace, start, syntax.TriviaWhitespace)
	case c == '/' && l.peek(1) == '/':
		start := l.pos
		for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
			l.pos++
		}
		l.emit(KindComment, start, syntax.TriviaSingleLineComment)
	case c == '/' && l.peek(1) == '*':
		l.consumeBlockComment()
	case c == '"' || c == '\'':
		l.consumeString(c)
	case c == '-' || isDigit(c):
		l.consumeNumber()
	case isWordStart(c):
		start := l.pos
		for l.pos < len(l.src) && isWordByte(l.src[l.pos]) {
			l.pos++
		}
		l.emit(keywordKind(l.src[start:l.pos]), start, 0)
	default:
		if kind, ok := punctuation[c]; ok {
			l.pos++
			l.emit(kind, l.pos-1, 0)
			return
		}
		start := l.pos
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos]&0xC0 == 0x80 {
			l.pos++
		}
		l.errorToken(start, "unexpected character '"+l.src[start:l.pos]+"'")
	}
}

var punctuation = map[byte]Kind{
	'{': KindLCurly,
	'}': KindRCurly,
	'[': KindLBrack,
	']': KindRBrack,
	':': KindColon,
	',': KindComma,
}

func keywordKind(word string) Kind {
	switch word {
	case "true":
		return KindTrueKw
	case "false":
		return KindFalseKw
	case "null":
		return KindNullKw
	}
	return KindIdent
}

func (l *lexer) consumeBlockComment() {
	start := l.pos
	l.pos += 2
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peek(1) == '/' {
			l.pos += 2
			l.emit(KindComment, start, syntax.TriviaMultiLineComment)
			return
		}
		l.pos++
	}
	l.errorToken(start, "unterminated block comment")
}

// consumeString consumes a string literal. Single quotes, raw control
// characters and bad escapes turn the whole literal into an error token;
// a literal cut short by a newline stops before it.
func (l *lexer) consumeString(quote byte) {
	start := l.pos
	l.pos++
	msg := ""
	if quote == '\'' {
		msg = "JSON strings must use double quotes"
	}
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == quote:
			l.pos++
			if msg != "" {
				l.errorToken(start, msg)
				return
			}
			l.emit(KindString, start, 0)
			return
		case c == '\n' || c == '\r':
			l.errorToken(start, "unterminated string literal")
			return
		case c == '\\':
			if n := l.escapeLen(); n > 0 {
				l.pos += n
				continue
			}
			if msg == "" {
				msg = "invalid escape sequence"
			}
			l.pos++
		case c < 0x20:
			if msg == "" {
				msg = "control characters must be escaped"
			}
			l.pos++
		default:
			l.pos++
		}
	}
	l.errorToken(start, "unterminated string literal")
}

// escapeLen returns the length of the valid escape at the current
// backslash, or 0.
func (l *lexer) escapeLen() int {
	switch l.peek(1) {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 2
	case 'u':
		for i := 2; i < 6; i++ {
			if !isHex(l.peek(i)) {
				return 0
			}
		}
		return 6
	}
	return 0
}

// consumeNumber consumes the longest run that could belong to a number
// and checks it against the JSON number grammar.
func (l *lexer) consumeNumber() {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isWordByte(c) || c == '.' || (c == '+' || c == '-') && (l.src[l.pos-1] == 'e' || l.src[l.pos-1] == 'E') {
			l.pos++
			continue
		}
		break
	}
	if !validNumber(l.src[start:l.pos]) {
		l.errorToken(start, "invalid number literal '"+l.src[start:l.pos]+"'")
		return
	}
	l.emit(KindNumber, start, 0)
}

// validNumber matches -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?.
func validNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

func (l *lexer) errorToken(start int, msg string) {
	l.emit(KindErrorToken, start, 0)
	l.diags = append(l.diags, syntax.Diagnostic{
		Range:    syntax.TextRange{Start: start, End: l.pos},
		Message:  msg,
		Category: parser.CategoryLexer,
	})
}

func (l *lexer) emit(kind Kind, start int, trivia syntax.TriviaPieceKind) {
	l.tokens = append(l.tokens, parser.LexedToken[Kind]{Kind: kind, Start: start, End: l.pos, Trivia: trivia})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func isWordStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_' || b == '$'
}

func isWordByte(b byte) bool { return isWordStart(b) || isDigit(b) }
