package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pogyomo/mlisp/parser/token"
)

// identRunes are the non-alphanumeric runes permitted in identifiers.
const identRunes = "+-*/=<>"

// Lexer produces a stream of tokens from source text.
type Lexer struct {
	scanner *token.Scanner
}

// New initializes and returns a Lexer that reads runes from scanner.
func New(scanner *token.Scanner) *Lexer {
	return &Lexer{scanner: scanner}
}

// NextToken scans and returns the next token in the stream.  After the
// source text is exhausted NextToken returns EOF tokens forever.
func (lex *Lexer) NextToken() *token.Token {
	if err := lex.skipWhitespace(); err != nil {
		return lex.emitEOF(err)
	}
	c, err := lex.scanner.ScanRune()
	if err != nil {
		return lex.emitEOF(err)
	}
	switch {
	case c == '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case c == ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case c == '\'':
		return lex.scanner.EmitToken(token.QUOTE)
	case c == '`':
		return lex.scanner.EmitToken(token.BACKQUOTE)
	case c == ',':
		return lex.scanner.EmitToken(token.COMMA)
	case c == '@':
		return lex.scanner.EmitToken(token.ATMARK)
	case c == '"':
		return lex.scanString()
	case isDigit(c):
		return lex.scanNumber()
	case isIdentRune(c):
		return lex.scanSymbol()
	default:
		return lex.errorf("unexpected character: %q", c)
	}
}

// scanString scans the remainder of a double quoted string.  There is no
// escape syntax; a double quote always terminates the string.
func (lex *Lexer) scanString() *token.Token {
	for {
		c, err := lex.scanner.ScanRune()
		if err != nil {
			return lex.errorf("unterminated string literal")
		}
		if c == '"' {
			return lex.scanner.EmitToken(token.STRING)
		}
	}
}

// scanNumber scans the remainder of an integer or float literal.  A float
// requires at least one digit after the decimal point.
func (lex *Lexer) scanNumber() *token.Token {
	lex.scanWhile(isDigit)
	c, err := lex.scanner.Peek()
	if err != nil || c != '.' {
		return lex.scanner.EmitToken(token.INT)
	}
	lex.scanner.ScanRune()
	if !lex.scanWhile(isDigit) {
		return lex.errorf("invalid floating point literal: %s", lex.scanner.Text())
	}
	return lex.scanner.EmitToken(token.FLOAT)
}

func (lex *Lexer) scanSymbol() *token.Token {
	lex.scanWhile(func(c rune) bool { return isIdentRune(c) || isDigit(c) })
	return lex.scanner.EmitToken(token.SYMBOL)
}

// scanWhile consumes runes as long as they satisfy fn, reporting whether any
// rune was consumed.
func (lex *Lexer) scanWhile(fn func(rune) bool) bool {
	scanned := false
	for {
		c, err := lex.scanner.Peek()
		if err != nil || !fn(c) {
			return scanned
		}
		lex.scanner.ScanRune()
		scanned = true
	}
}

func (lex *Lexer) skipWhitespace() error {
	for {
		c, err := lex.scanner.Peek()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(c) {
			return nil
		}
		if _, err := lex.scanner.ScanRune(); err != nil {
			return err
		}
		lex.scanner.Ignore()
	}
}

func (lex *Lexer) emitEOF(err error) *token.Token {
	if err == io.EOF {
		return lex.scanner.EmitToken(token.EOF)
	}
	return lex.errorf("%s", err)
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	tok := lex.scanner.EmitToken(token.ERROR)
	tok.Text = fmt.Sprintf(format, v...)
	return tok
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentRune(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(identRunes, c)
}
