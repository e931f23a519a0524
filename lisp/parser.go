package lisp

import "io"

// Reader abstracts the parser so that it may live in its own package without
// creating an import cycle with the interpreter core.
type Reader interface {
	// Read parses expressions from r until EOF.  The name is used to locate
	// errors in the source text.
	Read(name string, r io.Reader) ([]*LVal, error)
}
