package grit

import (
	"github.com/yaklabco/gocst/pkg/parser"
	"github.com/yaklabco/gocst/pkg/syntax"
)

// lexer tokenizes Grit patterns. Every construct is consumed by a flat
// loop so that adversarial input cannot drive it into deep recursion.
type lexer struct {
	src    string
	tokens []parser.LexedToken[Kind]
	diags  []syntax.Diagnostic
	pos    int
}

// Lex tokenizes src, trivia included. The token ranges always cover src
// contiguously.
func Lex(src string) []parser.LexedToken[Kind] {
	tokens, _ := lex(src)
	return tokens
}

func lex(src string) ([]parser.LexedToken[Kind], []syntax.Diagnostic) {
	l := &lexer{src: src}
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
	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == '\n' || c == '\r':
		if c == '\r' && l.peek(1) == '\n' {
			l.pos++
		}
		l.pos++
		l.emit(KindNewline, start, syntax.TriviaNewline)
	case c == ' ' || c == '\t':
		for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
			l.pos++
		}
		l.emit(KindWhitespace, start, syntax.TriviaWhitespace)
	case c == '/' && l.peek(1) == '/':
		for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
			l.pos++
		}
		l.emit(KindComment, start, syntax.TriviaSingleLineComment)
	case c == '/' && l.peek(1) == '*':
		l.pos += 2
		for l.pos < len(l.src) && (l.src[l.pos] != '*' || l.peek(1) != '/') {
			l.pos++
		}
		if l.pos >= len(l.src) {
			l.errorToken(start, "unterminated block comment")
			return
		}
		l.pos += 2
		l.emit(KindComment, start, syntax.TriviaMultiLineComment)
	case c == 'r' && (l.peek(1) == '"' || l.peek(1) == '`'):
		l.pos++
		l.consumeQuoted(start, KindRegex, KindSnippetRegex)
	case c == '"' || c == '`':
		l.consumeQuoted(start, KindString, KindSnippet)
	case c == '$':
		l.consumeVariable(start)
	case isDigit(c), c == '-' && isDigit(l.peek(1)):
		l.consumeNumber(start)
	case isNameStart(c):
		for l.pos < len(l.src) && isNameByte(l.src[l.pos]) {
			l.pos++
		}
		kind, ok := keywords[l.src[start:l.pos]]
		if !ok {
			kind = KindIdent
		}
		l.emit(kind, start, 0)
	default:
		l.consumePunctuation(start, c)
	}
}

// consumeQuoted consumes a double-quoted string or a backtick snippet.
// Strings end at a newline when unterminated; snippets may span lines.
func (l *lexer) consumeQuoted(start int, str, snippet Kind) {
	quote := l.src[l.pos]
	kind := str
	if quote == '`' {
		kind = snippet
	}
	l.pos++
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == quote:
			l.pos++
			l.emit(kind, start, 0)
			return
		case c == '\\' && l.pos+1 < len(l.src):
			l.pos += 2
		case quote == '"' && (c == '\n' || c == '\r'):
			l.errorToken(start, "unterminated string literal")
			return
		default:
			l.pos++
		}
	}
	if quote == '`' {
		l.errorToken(start, "unterminated code snippet")
		return
	}
	l.errorToken(start, "unterminated string literal")
}

// consumeVariable consumes $name, $_ or $... .
func (l *lexer) consumeVariable(start int) {
	l.pos++
	switch {
	case l.peek(0) == '.' && l.peek(1) == '.' && l.peek(2) == '.':
		l.pos += 3
	case isNameStart(l.peek(0)):
		for l.pos < len(l.src) && isNameByte(l.src[l.pos]) {
			l.pos++
		}
	default:
		l.errorToken(start, "expected a variable name after '$'")
		return
	}
	l.emit(KindVariable, start, 0)
}

func (l *lexer) consumeNumber(start int) {
	kind := KindInt
	if l.src[l.pos] == '-' {
		kind = KindNegativeInt
		l.pos++
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		kind = KindDouble
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	l.emit(kind, start, 0)
}

var twoByte = map[string]Kind{
	"==": KindEq2,
	"!=": KindNeq,
	"=>": KindFatArrow,
	"+=": KindPlusEq,
	"<=": KindLtEq,
	">=": KindGtEq,
	"&&": KindAmp2,
	"||": KindPipe2,
}

var oneByte = map[byte]Kind{
	'(': KindLParen,
	')': KindRParen,
	'{': KindLCurly,
	'}': KindRCurly,
	'[': KindLBrack,
	']': KindRBrack,
	',': KindComma,
	'.': KindDot,
	';': KindSemicolon,
	':': KindColon,
	'=': KindEq,
	'<': KindLt,
	'>': KindGt,
	'+': KindPlus,
	'-': KindMinus,
	'*': KindStar,
	'/': KindSlash,
	'%': KindPercent,
	'!': KindBang,
}

func (l *lexer) consumePunctuation(start int, c byte) {
	if c == '.' && l.peek(1) == '.' && l.peek(2) == '.' {
		l.pos += 3
		l.emit(KindDot3, start, 0)
		return
	}
	if l.pos+2 <= len(l.src) {
		if kind, ok := twoByte[l.src[l.pos:l.pos+2]]; ok {
			l.pos += 2
			l.emit(kind, start, 0)
			return
		}
	}
	if kind, ok := oneByte[c]; ok {
		l.pos++
		l.emit(kind, start, 0)
		return
	}
	l.pos++
	for l.pos < len(l.src) && l.src[l.pos]&0xC0 == 0x80 {
		l.pos++
	}
	l.errorToken(start, "unexpected character '"+l.src[start:l.pos]+"'")
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

func isNameStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func isNameByte(b byte) bool { return isNameStart(b) || isDigit(b) }
