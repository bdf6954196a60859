package tools

import (
	"fmt"
	"sort"
	"strings"

	"hackvm/parser"
)

// ReferenceType indicates how a symbol is used, mirrored against the
// Command kind that produced the reference.
type ReferenceType int

const (
	RefLabelDef ReferenceType = iota
	RefBranch
	RefFunctionDef
	RefCall
	RefStatic
)

func (r ReferenceType) String() string {
	switch r {
	case RefLabelDef:
		return "label-def"
	case RefBranch:
		return "branch"
	case RefFunctionDef:
		return "function-def"
	case RefCall:
		return "call"
	case RefStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Reference is a single occurrence of a symbol.
type Reference struct {
	Type ReferenceType
	Pos  parser.Position
}

// Symbol groups every reference to one name (a label, function, or
// static slot) seen during a run.
type Symbol struct {
	Name       string
	References []Reference
}

// Xref is the cross-reference report over a fully-processed run: every
// label and function definition and reference, and every static slot
// (spec.md §9.3).
type Xref struct {
	Labels    map[string]*Symbol
	Functions map[string]*Symbol
	Statics   map[string]*Symbol
}

// Build walks cmds (the whole run's Command stream, in order) and
// produces the cross-reference report. filePrefixOf maps a command's
// position to the file_prefix active when it was parsed, so static
// references land in the right per-file namespace.
func Build(cmds []parser.Command, filePrefixOf func(parser.Position) string) *Xref {
	x := &Xref{
		Labels:    make(map[string]*Symbol),
		Functions: make(map[string]*Symbol),
		Statics:   make(map[string]*Symbol),
	}

	currentFunction := ""
	for _, cmd := range cmds {
		switch cmd.Kind {
		case parser.Function:
			currentFunction = cmd.Name
			x.addFunction(cmd.Name, Reference{Type: RefFunctionDef, Pos: cmd.Pos})
		case parser.Call:
			x.addFunction(cmd.Name, Reference{Type: RefCall, Pos: cmd.Pos})
		case parser.Label:
			x.addLabel(currentFunction, cmd.Name, Reference{Type: RefLabelDef, Pos: cmd.Pos})
		case parser.Goto, parser.IfGoto:
			x.addLabel(currentFunction, cmd.Name, Reference{Type: RefBranch, Pos: cmd.Pos})
		case parser.Push, parser.Pop:
			if cmd.Segment == parser.Static {
				prefix := filePrefixOf(cmd.Pos)
				name := fmt.Sprintf("%s.%d", prefix, cmd.Offset)
				x.addStatic(name, Reference{Type: RefStatic, Pos: cmd.Pos})
			}
		}
	}

	return x
}

func (x *Xref) addFunction(name string, ref Reference) {
	addRef(x.Functions, name, ref)
}

func (x *Xref) addLabel(function, name string, ref Reference) {
	addRef(x.Labels, function+"$"+name, ref)
}

func (x *Xref) addStatic(name string, ref Reference) {
	addRef(x.Statics, name, ref)
}

func addRef(table map[string]*Symbol, name string, ref Reference) {
	sym, ok := table[name]
	if !ok {
		sym = &Symbol{Name: name}
		table[name] = sym
	}
	sym.References = append(sym.References, ref)
}

// Report renders the cross-reference as a plain text table, grouped by
// category, symbols sorted by name and each symbol's references in the
// order they occur in the command stream.
func (x *Xref) Report() string {
	var sb strings.Builder

	writeSection(&sb, "Functions", x.Functions)
	writeSection(&sb, "Labels", x.Labels)
	writeSection(&sb, "Statics", x.Statics)

	return sb.String()
}

func writeSection(sb *strings.Builder, title string, table map[string]*Symbol) {
	fmt.Fprintf(sb, "%s:\n", title)

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sym := table[name]
		fmt.Fprintf(sb, "  %s\n", name)
		for _, ref := range sym.References {
			fmt.Fprintf(sb, "    %s  %s\n", ref.Type, ref.Pos)
		}
	}
}
