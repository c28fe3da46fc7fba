package machine

import (
	"strconv"

	"github.com/ezrec/jc62/memory"
)

// Snapshot is the observable machine state.
type Snapshot struct {
	Pc               string                 `json:"pc"`
	Acc              string                 `json:"acc"`
	B                string                 `json:"b"`
	Mar              string                 `json:"mar"`
	Mdr              string                 `json:"mdr"`
	Ir               string                 `json:"ir"`
	Nf               string                 `json:"nf"`
	Comments         string                 `json:"comments"`
	InstructionSteps string                 `json:"instructionSteps"`
	Memory           map[string]memory.Cell `json:"memory"`
}

// descriptions are the two line opcode summaries.
var descriptions = map[Mnemonic]string{
	OP_MBA: "MBA\n(Move A to B)",
	OP_LDA: "LDA\n(Load A)",
	OP_STA: "STA\n(Store A)",
	OP_ADD: "ADD\n(Add B to A)",
	OP_SUB: "SUB\n(Subtract B from A)",
	OP_JMP: "JMP\n(Jump to Address)",
	OP_JN:  "JN\n(Jump if Negative)",
	OP_HLT: "HLT\n(Terminate)",
}

// microSteps are the register transfers of each opcode.
var microSteps = map[Mnemonic]string{
	OP_MBA: "1. B <-- A",
	OP_LDA: "1. MAR <-- IR\n2. MDR <-- M(MAR)\n3. A <-- MDR",
	OP_STA: "1. MAR <-- IR\n2. MDR <-- A\n3. M(MAR) <-- MDR",
	OP_ADD: "1. A <-- ALU(add)",
	OP_SUB: "1. A <-- ALU(sub)",
	OP_JMP: "1. PC <-- IR",
	OP_JN:  "1. PC <-- IR",
	OP_HLT: "",
}

// Description returns the summary text of an opcode.
func (op Mnemonic) Description() string {
	return descriptions[op]
}

// MicroSteps returns the register transfer text of an opcode.
func (op Mnemonic) MicroSteps() string {
	return microSteps[op]
}

// snapshot captures the machine state, describing the opcode op.
func (m *Machine) snapshot(op Mnemonic) Snapshot {
	display := m.Registers.Display()

	nf := "0"
	if m.Nf {
		nf = "1"
	}

	return Snapshot{
		Pc:               strconv.Itoa(m.Pc),
		Acc:              m.Acc.String(),
		B:                m.B.String(),
		Mar:              display.Mar,
		Mdr:              display.Mdr,
		Ir:               display.Ir,
		Nf:               nf,
		Comments:         op.Description(),
		InstructionSteps: op.MicroSteps(),
		Memory:           m.Memory.Map(),
	}
}
