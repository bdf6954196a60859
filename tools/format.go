// Package tools provides static analysis and re-emission utilities over a
// parsed Command stream that sit outside the core Parser/CodeGen
// contract: formatting, linting, and cross-reference reporting.
package tools

import (
	"fmt"
	"strings"

	"hackvm/parser"
)

// FormatOptions controls canonical re-emission. There is exactly one
// style today — one command per line, single-space-separated tokens, no
// comments — but the option struct is kept so a future style does not
// require an API break, matching the teacher's FormatOptions shape.
type FormatOptions struct {
	TrailingNewline bool
}

// DefaultFormatOptions returns the default formatting style.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{TrailingNewline: true}
}

// Formatter re-emits a Command stream as canonical VM source text.
type Formatter struct {
	opts *FormatOptions
}

// NewFormatter creates a Formatter with the given options.
func NewFormatter(opts *FormatOptions) *Formatter {
	return &Formatter{opts: opts}
}

// Format renders cmds back to canonical VM source. This is the fixed
// point exercised by testable property 7: parsing then reformatting
// (without comments) reproduces the command stream up to whitespace.
func (f *Formatter) Format(cmds []parser.Command) string {
	var sb strings.Builder
	for _, cmd := range cmds {
		sb.WriteString(formatCommand(cmd))
		sb.WriteByte('\n')
	}
	out := sb.String()
	if !f.opts.TrailingNewline {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

func formatCommand(cmd parser.Command) string {
	switch cmd.Kind {
	case parser.Arithmetic:
		return cmd.Op
	case parser.Return:
		return "return"
	case parser.Label:
		return fmt.Sprintf("label %s", cmd.Name)
	case parser.Goto:
		return fmt.Sprintf("goto %s", cmd.Name)
	case parser.IfGoto:
		return fmt.Sprintf("if-goto %s", cmd.Name)
	case parser.Push:
		return fmt.Sprintf("push %s %d", cmd.Segment, cmd.Offset)
	case parser.Pop:
		return fmt.Sprintf("pop %s %d", cmd.Segment, cmd.Offset)
	case parser.Function:
		return fmt.Sprintf("function %s %d", cmd.Name, cmd.Offset)
	case parser.Call:
		return fmt.Sprintf("call %s %d", cmd.Name, cmd.Offset)
	default:
		return ""
	}
}
