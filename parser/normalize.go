package parser

import "strings"

// Line is one normalized source line: comments stripped and whitespace
// trimmed, tagged with its 1-based position in the original file
// (spec.md §4.1).
type Line struct {
	Text string
	Pos  Position
}

// Normalize strips `//` line comments and surrounding whitespace from
// every line of src, retaining the original 1-based line number on each
// produced Line. Lines that become empty after stripping are dropped from
// the returned slice, but they still consume a line number, so the next
// real line's Pos is correct.
func Normalize(src string, filename string) []Line {
	rawLines := strings.Split(src, "\n")
	lines := make([]Line, 0, len(rawLines))

	for i, raw := range rawLines {
		lineNo := i + 1

		text := raw
		if idx := strings.Index(text, "//"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)

		if text == "" {
			continue
		}
		lines = append(lines, Line{Text: text, Pos: Position{Filename: filename, Line: lineNo}})
	}

	return lines
}
