package machine

import (
	"math/big"
	"strconv"
)

// Registers is the architectural register set.
//
// Ic and Pc are equal except after a JN that was not taken or an instruction
// that was not decoded: those advance Ic but leave Pc alone.
type Registers struct {
	Ic  int     // Fetch cursor, index of the next program line.
	Pc  int     // Program counter.
	Acc big.Int // Accumulator.
	B   big.Int // Second operand of ADD and SUB.
	Nf  bool    // Negative flag, set by SUB.
}

// Display is the set of registers shown in the fetch cycle, but not held by
// the machine: MAR shows PC, MDR shows ACC, and IR shows IC.
type Display struct {
	Mar string
	Mdr string
	Ir  string
}

// Display derives the display registers.
func (regs *Registers) Display() Display {
	return Display{
		Mar: strconv.Itoa(regs.Pc),
		Mdr: regs.Acc.String(),
		Ir:  strconv.Itoa(regs.Ic),
	}
}

// clear zeros all registers.
func (regs *Registers) clear() {
	regs.Ic = 0
	regs.Pc = 0
	regs.Acc.SetInt64(0)
	regs.B.SetInt64(0)
	regs.Nf = false
}
