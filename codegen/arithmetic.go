package codegen

import (
	"fmt"

	"hackvm/isa"
	"hackvm/parser"
)

// comparisonOp names the jump mnemonic and per-kind counter for one of
// the three comparison operators. Keeping this as a small table lets the
// ten-line comparison skeleton be written once instead of three times
// (spec.md §9 Design Notes).
type comparisonOp struct {
	stem   string
	jump   string
	nextFn func(*State) uint
}

var comparisonOps = map[string]comparisonOp{
	"eq": {stem: "EQ", jump: "JEQ", nextFn: (*State).NextEq},
	"gt": {stem: "GT", jump: "JGT", nextFn: (*State).NextGt},
	"lt": {stem: "LT", jump: "JLT", nextFn: (*State).NextLt},
}

func (c *CodeGen) arithmetic(cmd parser.Command) (string, error) {
	switch cmd.Op {
	case "add":
		return popPrologue + "A=A-1\nM=M+D\n", nil
	case "sub":
		return popPrologue + "A=A-1\nM=M-D\n", nil
	case "and":
		return popPrologue + "A=A-1\nM=M&D\n", nil
	case "or":
		return popPrologue + "A=A-1\nM=M|D\n", nil
	case "neg":
		return "@SP\nA=M-1\nM=-M\n", nil
	case "not":
		return "@SP\nA=M-1\nM=!M\n", nil
	case "eq", "gt", "lt":
		return c.comparison(cmd), nil
	default:
		return "", NewError(InvalidSegment, cmd, fmt.Sprintf("unrecognized arithmetic op %q", cmd.Op))
	}
}

// comparison emits the branchful sequence of spec.md §4.3.3: pop-to-D,
// subtract, branch on the condition, write TRUE or FALSE, and push the
// result. N is the per-kind counter, post-incremented, so labels read
// EQ1, EQ2, ... in order of occurrence (testable property 4).
func (c *CodeGen) comparison(cmd parser.Command) string {
	op := comparisonOps[cmd.Op]
	n := op.nextFn(c.State)
	label := fmt.Sprintf("%s%d", op.stem, n)

	return fmt.Sprintf(
		"%sA=A-1\nD=M-D\n@%s\nD;%s\nD=%d\n@%s_END\n0;JMP\n(%s)\nD=%d\n(%s_END)\n@SP\nA=M-1\nM=D\n",
		popPrologue, label, op.jump, isa.False, label, label, isa.True, label,
	)
}
