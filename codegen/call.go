package codegen

import (
	"fmt"
	"strings"

	"hackvm/isa"
	"hackvm/parser"
)

// pushZero is a specialized 5-instruction push-constant-0 used only when
// a function reserves its local slots: it writes 0 to RAM[SP] directly
// instead of routing through D=A first (spec.md §4.3.5, testable
// scenario 5's "5-instruction push 0 block").
const pushZero = "@SP\nA=M\nM=0\n@SP\nM=M+1\n"

// function emits the function declaration of spec.md §4.3.5: the bare
// function symbol (no file prefix, relying on the caller's
// Class.method naming convention for global uniqueness), followed by
// nLocals repetitions of pushZero, and enters the function scope.
func (c *CodeGen) function(cmd parser.Command) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%s)\n", cmd.Name)
	for i := uint(0); i < cmd.Offset; i++ {
		sb.WriteString(pushZero)
	}
	c.State.EnterFunction(cmd.Name)
	return sb.String()
}

// call emits the call sequence of spec.md §4.3.6: a fresh per-callee
// return label, the saved 5-word frame (return address + LCL/ARG/THIS/
// THAT), repositioned ARG and LCL for the callee, and a jump to the
// callee followed by the return label definition.
func (c *CodeGen) call(name string, nArgs uint) string {
	retLabel := c.State.NextCallLabel(name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "@%s\nD=A\n%s", retLabel, pushEpilogue)
	for _, sym := range []string{"LCL", "ARG", "THIS", "THAT"} {
		fmt.Fprintf(&sb, "@%s\nD=M\n%s", sym, pushEpilogue)
	}
	fmt.Fprintf(&sb, "@SP\nD=M\n@%d\nD=D-A\n@%d\nD=D-A\n@ARG\nM=D\n", isa.CallFrameSize, nArgs)
	sb.WriteString("@SP\nD=M\n@LCL\nM=D\n")
	fmt.Fprintf(&sb, "@%s\n0;JMP\n", name)
	fmt.Fprintf(&sb, "(%s)\n", retLabel)
	return sb.String()
}

// ret emits the return sequence of spec.md §4.3.7: snapshot the callee's
// frame via R13/R14 before the caller's registers are overwritten, place
// the return value at the caller's new stack top, then restore THAT,
// THIS, ARG, LCL in that order and jump to the saved return address.
func (c *CodeGen) ret() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "@LCL\nD=M\n@R%d\nM=D\n", isa.ScratchR13)
	fmt.Fprintf(&sb, "@R%d\nD=M\n@%d\nA=D-A\nD=M\n@R%d\nM=D\n", isa.ScratchR13, isa.CallFrameSize, isa.ScratchR14)

	sb.WriteString(popPrologue)
	sb.WriteString("@ARG\nA=M\nM=D\n")
	sb.WriteString("@ARG\nD=M+1\n@SP\nM=D\n")

	for offset, sym := range []string{"THAT", "THIS", "ARG", "LCL"} {
		fmt.Fprintf(&sb, "@R%d\nD=M\n@%d\nA=D-A\nD=M\n@%s\nM=D\n", isa.ScratchR13, offset+1, sym)
	}

	fmt.Fprintf(&sb, "@R%d\nA=M\n0;JMP\n", isa.ScratchR14)
	return sb.String()
}
