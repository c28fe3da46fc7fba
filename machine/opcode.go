package machine

import (
	"strings"
)

// Mnemonic is an instruction opcode.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_NONE = Mnemonic(0) // none
	OP_LDA  = Mnemonic(1) // LDA
	OP_STA  = Mnemonic(2) // STA
	OP_ADD  = Mnemonic(3) // ADD
	OP_SUB  = Mnemonic(4) // SUB
	OP_MBA  = Mnemonic(5) // MBA
	OP_JMP  = Mnemonic(6) // JMP
	OP_JN   = Mnemonic(7) // JN
	OP_HLT  = Mnemonic(8) // HLT
)

// mnemonicMap maps instruction text to opcodes. Matching is case-sensitive.
var mnemonicMap = map[string]Mnemonic{
	"LDA": OP_LDA,
	"STA": OP_STA,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"MBA": OP_MBA,
	"JMP": OP_JMP,
	"JN":  OP_JN,
	"HLT": OP_HLT,
}

// HasOperand is true for opcodes that take a label or line operand.
func (op Mnemonic) HasOperand() bool {
	switch op {
	case OP_LDA, OP_STA, OP_JMP, OP_JN:
		return true
	}
	return false
}

// IsJump is true for the control flow opcodes.
func (op Mnemonic) IsJump() bool {
	return op == OP_JMP || op == OP_JN
}

// Instruction is a decoded program line.
type Instruction struct {
	Text    string   // Line text, trimmed, without comment.
	Label   string   // Line label, ignored by execution.
	Words   []string // Mnemonic and operands.
	Op      Mnemonic // Decoded opcode, OP_NONE if empty or unknown.
	Operand string   // First operand, if any.
}

// Decode tokenizes a program line.
//
// A ';' starts a comment. The remaining text is split on whitespace; a
// leading word ending in ':' is the line label. The next word is the mnemonic
// and the word after it the operand.
func Decode(line string) (ins Instruction) {
	text, _, _ := strings.Cut(line, ";")
	ins.Text = strings.TrimSpace(text)

	words := strings.Fields(ins.Text)
	if len(words) > 0 && strings.HasSuffix(words[0], ":") {
		ins.Label = strings.TrimSuffix(words[0], ":")
		words = words[1:]
	}

	ins.Words = words
	if len(words) == 0 {
		return
	}

	ins.Op = mnemonicMap[words[0]]
	if len(words) > 1 {
		ins.Operand = words[1]
	}

	return
}

// String returns the canonical text of the instruction.
func (ins Instruction) String() string {
	text := strings.Join(ins.Words, " ")
	if len(ins.Label) != 0 {
		text = ins.Label + ": " + text
	}
	return text
}
