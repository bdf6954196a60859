package parser

import "fmt"

// Position identifies a source location for diagnostics: a file name and
// a 1-based line number. Line numbers are assigned by the Normalizer and
// survive blank-line and comment-line removal (spec.md §4.1).
type Position struct {
	Filename string
	Line     int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}
