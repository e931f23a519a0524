package parser

import (
	"bytes"
	"io"
	"strconv"

	"github.com/pogyomo/mlisp/lisp"
	"github.com/pogyomo/mlisp/parser/lexer"
	"github.com/pogyomo/mlisp/parser/token"
)

// condUnexpectedEOF marks parse errors caused by source text ending in the
// middle of an expression, a special case of parse-error that the REPL uses
// to buffer continuation lines.
const condUnexpectedEOF = "unexpected-eof"

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (_ *reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// Parse parses expressions from source held in memory.
func Parse(name string, source []byte) ([]*lisp.LVal, error) {
	return NewReader().Read(name, bytes.NewReader(source))
}

// IsIncomplete returns true when err indicates that source text ended in the
// middle of an expression, meaning more input could complete the parse.
func IsIncomplete(err error) bool {
	lerr, ok := err.(*lisp.ErrorVal)
	return ok && lerr.Condition == condUnexpectedEOF
}

// Parser is a recursive descent parser for lisp expressions.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
	return p
}

func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		if p.expect(token.EOF) {
			break
		}
		expr := p.ParseExpression()
		if expr.Type == lisp.LError {
			return nil, lisp.GoError(expr)
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func (p *Parser) ParseExpression() *lisp.LVal {
	switch p.PeekType() {
	case token.INT:
		return p.ParseLiteralInt()
	case token.FLOAT:
		return p.ParseLiteralFloat()
	case token.STRING:
		return p.ParseLiteralString()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.QUOTE, token.BACKQUOTE, token.COMMA:
		return p.ParseQuote()
	case token.PAREN_L:
		return p.ParseList()
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return p.errorf(lisp.LexError, "%s %s", p.Token().Source, p.Token().Text)
	case token.EOF:
		p.ReadToken()
		return p.errorf(condUnexpectedEOF, "expression missing before end of input")
	default:
		p.ReadToken()
		return p.errorf(lisp.ParseError, "%s unexpected %s", p.Token().Source, p.Token().Type)
	}
}

func (p *Parser) ParseLiteralInt() *lisp.LVal {
	if !p.expect(token.INT) {
		return p.errorf(lisp.ParseError, "invalid integer literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return p.errorf(lisp.ParseError, "integer literal overflows int: %v", text)
	}
	return lisp.Int(x)
}

func (p *Parser) ParseLiteralFloat() *lisp.LVal {
	if !p.expect(token.FLOAT) {
		return p.errorf(lisp.ParseError, "invalid float literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return p.errorf(lisp.ParseError, "invalid floating point literal: %v", text)
	}
	return lisp.Float(x)
}

func (p *Parser) ParseLiteralString() *lisp.LVal {
	if !p.expect(token.STRING) {
		return p.errorf(lisp.ParseError, "invalid string literal: %v", p.PeekType())
	}
	// The token text retains the surrounding double quotes.  There are no
	// escape sequences to process.
	text := p.Token().Text
	return lisp.String(text[1 : len(text)-1])
}

func (p *Parser) ParseSymbol() *lisp.LVal {
	if !p.expect(token.SYMBOL) {
		return p.errorf(lisp.ParseError, "invalid symbol: %v", p.PeekType())
	}
	return lisp.Symbol(p.Token().Text)
}

// ParseQuote parses the quoting prefixes ' ` , and ,@ followed by the
// expression they wrap.
func (p *Parser) ParseQuote() *lisp.LVal {
	p.ReadToken()
	switch p.Token().Type {
	case token.QUOTE:
		return wrap(lisp.Quote, p.ParseExpression())
	case token.BACKQUOTE:
		return wrap(lisp.Backquote, p.ParseExpression())
	case token.COMMA:
		if p.expect(token.ATMARK) {
			return wrap(lisp.CommaSplice, p.ParseExpression())
		}
		return wrap(lisp.Comma, p.ParseExpression())
	default:
		return p.errorf(lisp.ParseError, "invalid quote: %v", p.Token().Type)
	}
}

func (p *Parser) ParseList() *lisp.LVal {
	if !p.expect(token.PAREN_L) {
		return p.errorf(lisp.ParseError, "invalid list: %v", p.PeekType())
	}
	open := p.Token()
	var vals []*lisp.LVal
	for {
		if p.expect(token.EOF) {
			return p.errorf(condUnexpectedEOF, "unmatched %s", open.Text)
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x := p.ParseExpression()
		if x.Type == lisp.LError {
			return x
		}
		vals = append(vals, x)
	}
	return lisp.NewList(vals...)
}

func wrap(fn func(*lisp.LVal) *lisp.LVal, v *lisp.LVal) *lisp.LVal {
	if v.Type == lisp.LError {
		return v
	}
	return fn(v)
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) *lisp.LVal {
	return lisp.ErrorConditionf(condition, format, v...)
}
