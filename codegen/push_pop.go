package codegen

import (
	"fmt"
	"strings"

	"hackvm/isa"
	"hackvm/parser"
)

// segPointerSymbols names the symbolic base-pointer register for each of
// the four pointer-backed segments (spec.md §4.3.1 table).
var segPointerSymbols = map[parser.Segment]string{
	parser.Local:    "LCL",
	parser.Argument: "ARG",
	parser.This:     "THIS",
	parser.That:     "THAT",
}

// pushEpilogue stores D to RAM[SP] and increments SP: the 5-instruction
// sequence shared by every push, regardless of segment (spec.md §4.3.1).
const pushEpilogue = "@SP\nA=M\nM=D\n@SP\nM=M+1\n"

// popPrologue pops the top of the stack into D: the 3-instruction
// sequence shared by every pop (spec.md §4.3.2).
const popPrologue = "@SP\nAM=M-1\nD=M\n"

func (c *CodeGen) push(cmd parser.Command) (string, error) {
	var sb strings.Builder

	switch cmd.Segment {
	case parser.Constant:
		fmt.Fprintf(&sb, "@%d\nD=A\n", cmd.Offset)

	case parser.Static:
		label := c.State.StaticLabel(cmd.Offset)
		fmt.Fprintf(&sb, "@%s\nD=M\n", label)

	case parser.Temp:
		if cmd.Offset > isa.TempMax {
			return "", NewError(TempOutOfRange, cmd, fmt.Sprintf("temp offset %d exceeds max %d", cmd.Offset, isa.TempMax))
		}
		fmt.Fprintf(&sb, "@%d\nD=M\n", isa.TempBase+cmd.Offset)

	case parser.Pointer:
		sym, err := pointerSymbol(cmd)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "@%s\nD=M\n", sym)

	case parser.Local, parser.Argument, parser.This, parser.That:
		sym := segPointerSymbols[cmd.Segment]
		fmt.Fprintf(&sb, "@%s\nD=M\n@%d\nA=D+A\nD=M\n", sym, cmd.Offset)

	default:
		return "", NewError(InvalidSegment, cmd, fmt.Sprintf("invalid push segment %v", cmd.Segment))
	}

	sb.WriteString(pushEpilogue)
	return sb.String(), nil
}

func (c *CodeGen) pop(cmd parser.Command) (string, error) {
	if cmd.Segment == parser.Constant {
		return "", NewError(CannotPopToConstant, cmd, "cannot pop to constant")
	}

	switch cmd.Segment {
	case parser.Temp:
		if cmd.Offset > isa.TempMax {
			return "", NewError(TempOutOfRange, cmd, fmt.Sprintf("temp offset %d exceeds max %d", cmd.Offset, isa.TempMax))
		}
		return fmt.Sprintf("%s@%d\nM=D\n", popPrologue, isa.TempBase+cmd.Offset), nil

	case parser.Static:
		label := c.State.StaticLabel(cmd.Offset)
		return fmt.Sprintf("%s@%s\nM=D\n", popPrologue, label), nil

	case parser.Pointer:
		sym, err := pointerSymbol(cmd)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s@%s\nM=D\n", popPrologue, sym), nil

	case parser.Local, parser.Argument, parser.This, parser.That:
		return c.popToIndirectSegment(cmd)

	default:
		return "", NewError(InvalidSegment, cmd, fmt.Sprintf("invalid pop segment %v", cmd.Segment))
	}
}

// popToIndirectSegment implements spec.md §4.3.2's three cases for
// local/argument/this/that: k=0 and k=1 are short-circuited to avoid a
// scratch register; k>=2 computes the target address into R13 before the
// pop-to-D prologue, since the prologue clobbers D.
func (c *CodeGen) popToIndirectSegment(cmd parser.Command) (string, error) {
	sym := segPointerSymbols[cmd.Segment]
	var sb strings.Builder

	switch cmd.Offset {
	case 0:
		sb.WriteString(popPrologue)
		fmt.Fprintf(&sb, "@%s\nA=M\nM=D\n", sym)
	case 1:
		sb.WriteString(popPrologue)
		fmt.Fprintf(&sb, "@%s\nA=M+1\nM=D\n", sym)
	default:
		fmt.Fprintf(&sb, "@%s\nD=M\n@%d\nD=D+A\n@R%d\nM=D\n", sym, cmd.Offset, isa.ScratchR13)
		sb.WriteString(popPrologue)
		fmt.Fprintf(&sb, "@R%d\nA=M\nM=D\n", isa.ScratchR13)
	}

	return sb.String(), nil
}

func pointerSymbol(cmd parser.Command) (string, error) {
	switch cmd.Offset {
	case 0:
		return "THIS", nil
	case 1:
		return "THAT", nil
	default:
		return "", NewError(PointerOutOfRange, cmd, fmt.Sprintf("pointer offset %d exceeds max %d", cmd.Offset, isa.PointerMax))
	}
}
