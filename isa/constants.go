// Package isa names the fixed addresses and symbols of the target
// machine's memory map, so CodeGen never hard-codes a magic number.
package isa

// Segment base pointers live at fixed low RAM addresses 0-4. These are
// symbolic in the emitted assembly (@SP, @LCL, ...); the numeric values
// below are what the downstream assembler resolves them to.
const (
	SP   = 0
	LCL  = 1
	ARG  = 2
	THIS = 3
	THAT = 4
)

// TempBase is the fixed RAM address of temp segment offset 0; temp i
// lives at TempBase+i for i in 0..7 (spec.md §2 Segment).
const TempBase = 5

// TempMax is the highest legal temp offset.
const TempMax = 7

// Scratch registers used internally by call/return frame bookkeeping.
// Only these three addresses are legal scratch per spec.md §7
// (ScratchRegisterOutOfRange).
const (
	ScratchR13 = 13
	ScratchR14 = 14
	ScratchR15 = 15
)

// CallFrameSize is the number of words saved at call time: return
// address plus the four caller segment pointers (spec.md §4.3.6).
const CallFrameSize = 5

// True and False are the 16-bit boolean results of a comparison.
const (
	True  int16 = -1
	False int16 = 0
)

// PointerMax is the highest legal pointer segment offset (0=THIS, 1=THAT).
const PointerMax = 1

// StackOrigin is the initial value of SP installed by the bootstrap
// prologue (spec.md §4.3.9).
const StackOrigin = 256
