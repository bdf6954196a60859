package codegen

import (
	"fmt"

	"hackvm/parser"
)

// ErrorKind categorizes a TranslatorError (spec.md §7).
type ErrorKind int

const (
	InvalidSegment ErrorKind = iota
	CannotPopToConstant
	TempOutOfRange
	PointerOutOfRange
	ScratchRegisterOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidSegment:
		return "InvalidSegment"
	case CannotPopToConstant:
		return "CannotPopToConstant"
	case TempOutOfRange:
		return "TempOutOfRange"
	case PointerOutOfRange:
		return "PointerOutOfRange"
	case ScratchRegisterOutOfRange:
		return "ScratchRegisterOutOfRange"
	default:
		return "UnknownTranslatorError"
	}
}

// Error is a TranslatorError: raised during code generation when a
// command passed parsing but violates a semantic constraint the grammar
// did not catch (spec.md §7). It carries the offending Command for
// file:line context, the same way the teacher's EncodingError carries the
// offending Instruction.
type Error struct {
	Kind    ErrorKind
	Cmd     parser.Command
	Message string
	Wrapped error
}

// Error implements the error interface, including source location context
// when the offending command's position is known.
func (e *Error) Error() string {
	loc := ""
	if e.Cmd.Pos.Filename != "" {
		loc = fmt.Sprintf("%s: ", e.Cmd.Pos)
	}

	msg := e.Message
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}

	if e.Cmd.Raw != "" {
		return fmt.Sprintf("%s%s: %s\n  source: %s", loc, e.Kind, msg, e.Cmd.Raw)
	}
	return fmt.Sprintf("%s%s: %s", loc, e.Kind, msg)
}

// Unwrap supports errors.Is/As against a wrapped cause.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// NewError constructs a TranslatorError bound to the command that
// triggered it.
func NewError(kind ErrorKind, cmd parser.Command, message string) *Error {
	return &Error{Kind: kind, Cmd: cmd, Message: message}
}
