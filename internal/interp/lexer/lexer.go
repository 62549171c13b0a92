package lexer

import (
	"unicode"

	"github.com/arnavsurve/mica/internal/interp/token"
)

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	// Comments run to the end of the line; the newline itself still
	// produces an EOL token so comment-only lines stay statements.
	if l.ch == '#' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
	}

	switch l.ch {
	case '\n':
		l.readChar()
		return token.Token{Type: token.TokenEOL, Literal: "\n"}
	case '(':
		return l.single(token.TokenLParen)
	case ')':
		return l.single(token.TokenRParen)
	case ',':
		return l.single(token.TokenComma)
	case '+':
		return l.single(token.TokenPlus)
	case '-':
		return l.single(token.TokenMinus)
	case '*':
		return l.single(token.TokenAsterisk)
	case '/':
		return l.single(token.TokenSlash)
	case '%':
		return l.single(token.TokenPercent)
	case '=':
		if l.peekChar() == '=' {
			return l.double(token.TokenEq)
		}
		return l.single(token.TokenAssign)
	case '!':
		if l.peekChar() == '=' {
			return l.double(token.TokenNotEq)
		}
		return l.single(token.TokenBang)
	case '<':
		if l.peekChar() == '=' {
			return l.double(token.TokenLe)
		}
		return l.single(token.TokenLt)
	case '>':
		if l.peekChar() == '=' {
			return l.double(token.TokenGe)
		}
		return l.single(token.TokenGt)
	case 0:
		return token.Token{Type: token.TokenEOF, Literal: ""}
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(ident), Literal: ident}
		} else if isDigit(l.ch) {
			return l.readInteger()
		}
		return l.single(token.TokenIllegal)
	}
}

func (l *Lexer) single(tt token.TokenType) token.Token {
	tok := token.Token{Type: tt, Literal: string(l.ch)}
	l.readChar()
	return tok
}

func (l *Lexer) double(tt token.TokenType) token.Token {
	ch := l.ch
	l.readChar()
	literal := string(ch) + string(l.ch)
	l.readChar()
	return token.Token{Type: tt, Literal: literal}
}

func (l *Lexer) skipWhitespace() {
	// Newlines are significant; everything else is not.
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readInteger() token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.TokenInt, Literal: l.input[start:l.position]}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
