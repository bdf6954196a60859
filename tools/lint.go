package tools

import (
	"fmt"

	"hackvm/parser"
)

// LintLevel represents the severity of a lint issue.
type LintLevel int

const (
	LintError LintLevel = iota
	LintWarning
	LintInfo
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue represents a single lint finding.
type LintIssue struct {
	Level   LintLevel
	Pos     parser.Position
	Message string
	Code    string // e.g. "UNDEF_LABEL", "UNKNOWN_CALLEE", "UNREACHABLE"
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", i.Pos, i.Level, i.Message, i.Code)
}

// LintOptions controls which checks the Linter runs. These are checks the
// Parser/CodeGen grammar does not perform (spec.md §9.2); none of them
// affect translation output, and the Linter is only invoked when the CLI
// is given --lint.
type LintOptions struct {
	WarnUndefinedLabel         bool
	WarnUnknownCallee          bool
	WarnUnreachableAfterReturn bool
}

// DefaultLintOptions returns every check enabled.
func DefaultLintOptions() *LintOptions {
	return &LintOptions{
		WarnUndefinedLabel:         true,
		WarnUnknownCallee:          true,
		WarnUnreachableAfterReturn: true,
	}
}

// Linter runs static checks over a fully-parsed run (every file's
// commands, concatenated in CLI-supplied order) that the grammar alone
// cannot catch: branches to labels never declared, calls to functions
// never declared anywhere in the run, and code immediately following a
// return with no intervening label.
type Linter struct {
	opts *LintOptions
}

// NewLinter creates a Linter with the given options.
func NewLinter(opts *LintOptions) *Linter {
	return &Linter{opts: opts}
}

// Lint runs the enabled checks over cmds and returns every issue found, in
// command order.
func (l *Linter) Lint(cmds []parser.Command) []*LintIssue {
	var issues []*LintIssue

	definedLabels, functions := collectDefinitions(cmds)

	currentFunction := ""
	justReturned := false

	for _, cmd := range cmds {
		if justReturned && cmd.Kind != parser.Function && cmd.Kind != parser.Label && l.opts.WarnUnreachableAfterReturn {
			issues = append(issues, &LintIssue{
				Level:   LintWarning,
				Pos:     cmd.Pos,
				Message: "unreachable command immediately after return",
				Code:    "UNREACHABLE",
			})
		}

		switch cmd.Kind {
		case parser.Function:
			currentFunction = cmd.Name
			justReturned = false

		case parser.Label:
			justReturned = false

		case parser.Goto, parser.IfGoto:
			if l.opts.WarnUndefinedLabel {
				if !definedLabels[scopedKey(currentFunction, cmd.Name)] {
					issues = append(issues, &LintIssue{
						Level:   LintWarning,
						Pos:     cmd.Pos,
						Message: fmt.Sprintf("branch target %q is never defined in function %q", cmd.Name, currentFunction),
						Code:    "UNDEF_LABEL",
					})
				}
			}

		case parser.Call:
			if l.opts.WarnUnknownCallee {
				if !functions[cmd.Name] {
					issues = append(issues, &LintIssue{
						Level:   LintWarning,
						Pos:     cmd.Pos,
						Message: fmt.Sprintf("call to %q which is never declared with `function` in this run", cmd.Name),
						Code:    "UNKNOWN_CALLEE",
					})
				}
			}

		case parser.Return:
			justReturned = true
		}
	}

	return issues
}

// collectDefinitions makes a pre-pass over the whole run to find every
// label definition (scoped the same way CodeGen scopes branch labels) and
// every declared function name, so undefined-label and unknown-callee
// checks see forward references correctly.
func collectDefinitions(cmds []parser.Command) (labels map[string]bool, functions map[string]bool) {
	labels = make(map[string]bool)
	functions = make(map[string]bool)

	currentFunction := ""
	for _, cmd := range cmds {
		switch cmd.Kind {
		case parser.Function:
			currentFunction = cmd.Name
			functions[cmd.Name] = true
		case parser.Label:
			labels[scopedKey(currentFunction, cmd.Name)] = true
		}
	}
	return labels, functions
}

func scopedKey(function, name string) string {
	return function + "$" + name
}
