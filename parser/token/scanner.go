package token

import (
	"bufio"
	"io"
)

// Scanner reads runes from a source stream and accumulates the text of the
// token being scanned along with its location.
type Scanner struct {
	br    *bufio.Reader
	buf   []rune
	start Location
	pos   Location
}

// NewScanner initializes and returns a Scanner that reads runes from r.  The
// name is reported in token locations.
func NewScanner(name string, r io.Reader) *Scanner {
	loc := Location{File: name, Line: 1, Col: 1}
	return &Scanner{
		br:    bufio.NewReader(r),
		start: loc,
		pos:   loc,
	}
}

// Peek returns the next rune in the stream without consuming it.
func (s *Scanner) Peek() (rune, error) {
	c, _, err := s.br.ReadRune()
	if err != nil {
		return 0, err
	}
	s.br.UnreadRune()
	return c, nil
}

// ScanRune consumes the next rune in the stream, appending it to the text of
// the pending token.
func (s *Scanner) ScanRune() (rune, error) {
	c, n, err := s.br.ReadRune()
	if err != nil {
		return 0, err
	}
	s.buf = append(s.buf, c)
	s.pos.Pos += n
	if c == '\n' {
		s.pos.Line++
		s.pos.Col = 1
	} else {
		s.pos.Col++
	}
	return c, nil
}

// Text returns the text of the pending token.
func (s *Scanner) Text() string {
	return string(s.buf)
}

// Ignore discards the pending token text without emitting a token.
func (s *Scanner) Ignore() {
	s.buf = s.buf[:0]
	s.start = s.pos
}

// EmitToken returns a token of the given type holding the pending text and
// its starting location, resetting the scanner for the next token.
func (s *Scanner) EmitToken(typ Type) *Token {
	loc := s.start
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: &loc,
	}
	s.Ignore()
	return tok
}
