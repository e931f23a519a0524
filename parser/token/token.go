package token

import "fmt"

// Type is the type of a lexical token.
type Type uint

// Possible Type values.
const (
	INVALID Type = iota
	ERROR
	EOF
	SYMBOL
	INT
	FLOAT
	STRING
	QUOTE
	BACKQUOTE
	COMMA
	ATMARK
	PAREN_L
	PAREN_R
)

var typeStrings = []string{
	INVALID:   "INVALID",
	ERROR:     "ERROR",
	EOF:       "EOF",
	SYMBOL:    "SYMBOL",
	INT:       "INT",
	FLOAT:     "FLOAT",
	STRING:    "STRING",
	QUOTE:     "QUOTE",
	BACKQUOTE: "BACKQUOTE",
	COMMA:     "COMMA",
	ATMARK:    "ATMARK",
	PAREN_L:   "PAREN_L",
	PAREN_R:   "PAREN_R",
}

func (t Type) String() string {
	if int(t) >= len(typeStrings) {
		return typeStrings[INVALID]
	}
	return typeStrings[t]
}

// Token is a single lexical element of source text.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

// Location describes a position in a source stream.
type Location struct {
	File string
	Pos  int
	Line int
	Col  int
}

func (loc *Location) String() string {
	if loc.File == "" {
		return fmt.Sprintf("%d:%d", loc.Line, loc.Col)
	}
	return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
}
