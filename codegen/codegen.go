// Package codegen is the CodeGen / Translation Unit of spec.md §4.3: it
// holds the per-run TranslationUnitState and converts each parsed Command
// into a deterministic block of target-assembly text.
package codegen

import (
	"fmt"
	"strings"

	"hackvm/isa"
	"hackvm/parser"
)

// Options controls cosmetic aspects of emission that do not affect the
// assembly semantics: whether the source-echo comment is written, and
// what it's prefixed with (SPEC_FULL.md §6.2 Translation settings).
type Options struct {
	EmitComments  bool
	CommentPrefix string
}

// DefaultOptions matches the translator's behavior before any config file
// is introduced: always echo the source command as a comment.
func DefaultOptions() Options {
	return Options{EmitComments: true, CommentPrefix: "// --- "}
}

// CodeGen emits target-assembly fragments for a stream of Commands,
// exposing one method per command variant (spec.md §4.3).
type CodeGen struct {
	State *State
	Opts  Options
}

// New creates a CodeGen around a fresh or existing TranslationUnitState.
// Reuse the same State across files in one run to keep counters and
// current_function globally unique (spec.md §3 Invariants).
func New(state *State, opts Options) *CodeGen {
	return &CodeGen{State: state, Opts: opts}
}

// Emit dispatches cmd to its command-specific emission method and
// prepends the `// --- <source> ---` comment line (spec.md §4.3, §6).
func (c *CodeGen) Emit(cmd parser.Command) (string, error) {
	var body string
	var err error

	switch cmd.Kind {
	case parser.Arithmetic:
		body, err = c.arithmetic(cmd)
	case parser.Push:
		body, err = c.push(cmd)
	case parser.Pop:
		body, err = c.pop(cmd)
	case parser.Label:
		body = c.label(cmd)
	case parser.Goto:
		body = c.goTo(cmd)
	case parser.IfGoto:
		body = c.ifGoto(cmd)
	case parser.Function:
		body = c.function(cmd)
	case parser.Call:
		body = c.call(cmd.Name, cmd.Offset)
	case parser.Return:
		body = c.ret()
	default:
		return "", NewError(InvalidSegment, cmd, fmt.Sprintf("unhandled command kind %v", cmd.Kind))
	}
	if err != nil {
		return "", err
	}

	if !c.Opts.EmitComments {
		return body, nil
	}
	var sb strings.Builder
	sb.WriteString(c.Opts.CommentPrefix)
	sb.WriteString(cmd.Raw)
	sb.WriteString(" ---\n")
	sb.WriteString(body)
	return sb.String(), nil
}

// Bootstrap emits the optional prologue of spec.md §4.3.9: set SP to 256,
// then call the configured entry function through the same call-emission
// logic used for any other call.
func (c *CodeGen) Bootstrap(entry string, nArgs uint) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "@%d\nD=A\n@SP\nM=D\n", isa.StackOrigin)
	sb.WriteString(c.call(entry, nArgs))
	return sb.String()
}
