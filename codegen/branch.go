package codegen

import (
	"fmt"

	"hackvm/parser"
)

// label emits a function-scoped label definition (spec.md §4.3.4).
func (c *CodeGen) label(cmd parser.Command) string {
	return fmt.Sprintf("(%s)\n", c.State.ScopedLabel(cmd.Name))
}

// goTo emits an unconditional jump to a function-scoped label.
func (c *CodeGen) goTo(cmd parser.Command) string {
	return fmt.Sprintf("@%s\n0;JMP\n", c.State.ScopedLabel(cmd.Name))
}

// ifGoto pops the top of the stack and branches to a function-scoped
// label when the popped value is nonzero; TRUE (-1) is nonzero, so this
// also correctly handles the comparison result (spec.md §4.3.4).
func (c *CodeGen) ifGoto(cmd parser.Command) string {
	return fmt.Sprintf("%s@%s\nD;JNE\n", popPrologue, c.State.ScopedLabel(cmd.Name))
}
