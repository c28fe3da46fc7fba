// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/jc62/memory"
)

const (
	DEFAULT_MAX_STEPS = 1 << 10 // Default step budget of Run and RunToCompletion.
)

var _machine_defines = map[string]string{
	"MEMORY_SIZE":       fmt.Sprintf("%v", memory.SIZE),
	"DEFAULT_MAX_STEPS": fmt.Sprintf("%v", DEFAULT_MAX_STEPS),
}

// Machine is the simulation context of the jc62 computer.
type Machine struct {
	Verbose  bool // Set to enable verbose logging.
	MaxSteps int  // Step budget of Run and RunToCompletion, 0 for none.

	Registers
	Memory  *memory.Memory // Labelled memory.
	Outcome Outcome        // Outcome of the last executed instruction.

	program []string
}

// NewMachine creates a reset machine.
func NewMachine() (m *Machine) {
	m = &Machine{
		MaxSteps: DEFAULT_MAX_STEPS,
		Memory:   memory.New(),
	}

	m.Reset()

	return
}

// Defines for the machine
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// Reset the machine state.
// - Zeros all registers and clears the negative flag.
// - Fills memory with NULL cells.
// - Empties the program.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	m.Registers.clear()
	m.Memory.Verbose = m.Verbose
	m.Memory.Reset()
	m.Outcome = OUTCOME_OK
	m.program = nil
}

// SubmitCode replaces the program. The fetch cursor is not changed.
func (m *Machine) SubmitCode(lines []string) {
	m.program = slices.Clone(lines)

	if m.Verbose {
		log.Printf("machine: %d program lines", len(m.program))
	}
}

// Program returns a copy of the program.
func (m *Machine) Program() []string {
	return slices.Clone(m.program)
}

// SetMemoryCell replaces the label and value of a memory cell.
// The address is two hex digits in either case.
func (m *Machine) SetMemoryCell(address string, label string, value string) (err error) {
	m.Memory.Verbose = m.Verbose
	return m.Memory.Set(address, label, value)
}

// String returns the current register state as a string.
func (m *Machine) String() (text string) {
	display := m.Registers.Display()

	regs := []string{
		"ic", "pc", "acc", "b", "nf",
		"mar", "mdr", "ir",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ic":
			strval = fmt.Sprintf("%02d", m.Ic)
		case "pc":
			strval = fmt.Sprintf("%02d", m.Pc)
		case "acc":
			strval = m.Acc.String()
		case "b":
			strval = m.B.String()
		case "nf":
			strval = "0"
			if m.Nf {
				strval = "1"
			}
		case "mar":
			strval = display.Mar
		case "mdr":
			strval = display.Mdr
		case "ir":
			strval = display.Ir
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Fetch decodes the program line at the fetch cursor.
func (m *Machine) Fetch() (ins Instruction, err error) {
	if m.Ic < 0 || m.Ic >= len(m.program) {
		err = ErrProgramCompleted
		return
	}

	ins = Decode(m.program[m.Ic])

	return
}

// Execute executes a single decoded instruction.
// If a jump was taken, IC and PC already hold the target index.
func (m *Machine) Execute(ins Instruction) (jumped bool) {
	ic := m.Ic
	outcome := OUTCOME_OK

	defer func() {
		m.Outcome = outcome
		if outcome.Absorbed() || m.Verbose {
			log.Printf("machine: %02d: '%v' %v", ic, ins.Text, outcome)
		}
	}()

	if ins.Op.HasOperand() && len(ins.Operand) == 0 {
		outcome = OUTCOME_OPERAND_MISSING
		if !ins.Op.IsJump() {
			m.Pc++
		}
		return
	}

	switch ins.Op {
	case OP_LDA:
		index, ok := m.Memory.First(ins.Operand)
		if !ok {
			outcome = OUTCOME_LABEL_MISSING
		} else if value, ok := parseValue(m.Memory.Cell[index].Value); !ok {
			outcome = OUTCOME_VALUE_INVALID
		} else {
			m.Acc.Set(value)
		}
		m.Pc++
	case OP_STA:
		index, ok := m.Memory.First(ins.Operand)
		if !ok {
			outcome = OUTCOME_LABEL_MISSING
		} else {
			m.Memory.Store(index, m.Acc.String())
		}
		m.Pc++
	case OP_ADD:
		m.Acc.Add(&m.Acc, &m.B)
		m.Pc++
	case OP_SUB:
		m.Acc.Sub(&m.Acc, &m.B)
		m.Nf = m.Acc.Sign() < 0
		m.Acc.Abs(&m.Acc)
		m.Pc++
	case OP_MBA:
		m.B.Set(&m.Acc)
		m.Pc++
	case OP_JMP, OP_JN:
		target, err := strconv.Atoi(ins.Operand)
		if err != nil || target < 1 {
			outcome = OUTCOME_TARGET_INVALID
			return
		}
		if ins.Op == OP_JN && !m.Nf {
			outcome = OUTCOME_NOT_TAKEN
			return
		}
		m.Ic = target - 1
		m.Pc = target - 1
		jumped = true
	case OP_HLT:
		m.Pc++
	default:
		outcome = OUTCOME_UNKNOWN
		if len(ins.Words) == 0 {
			outcome = OUTCOME_EMPTY
		}
	}

	return
}

// Step fetches and executes one instruction, and returns the state after it.
func (m *Machine) Step() (snap Snapshot, err error) {
	return m.step(true)
}

// step runs one instruction. The snapshot is only captured if asked for.
func (m *Machine) step(capture bool) (snap Snapshot, err error) {
	ins, err := m.Fetch()
	if err != nil {
		return
	}

	jumped := m.Execute(ins)

	if capture {
		snap = m.snapshot(ins.Op)
	}

	if !jumped {
		m.Ic++
	}

	return
}

// Run steps until the program is exhausted, handing the snapshot of every
// step to each. If each is nil, no snapshots are captured.
//
// If MaxSteps is set and that many steps run without exhausting the program,
// Run stops with ErrStepBudgetExceeded.
func (m *Machine) Run(each func(snap Snapshot) error) (steps int, err error) {
	for {
		if m.MaxSteps > 0 && steps >= m.MaxSteps && m.Ic < len(m.program) {
			err = ErrStepBudgetExceeded
			return
		}

		snap, step_err := m.step(each != nil)
		if step_err != nil {
			if m.Verbose {
				log.Printf("machine: stop after %d steps: %v", steps, step_err)
			}
			return
		}
		steps++

		if each != nil {
			err = each(snap)
			if err != nil {
				return
			}
		}
	}
}

// RunToCompletion steps until the program is exhausted, and returns the
// snapshot of every step.
//
// If MaxSteps is set and that many steps run without exhausting the program,
// the snapshots so far are returned with ErrStepBudgetExceeded.
func (m *Machine) RunToCompletion() (snaps []Snapshot, err error) {
	_, err = m.Run(func(snap Snapshot) error {
		snaps = append(snaps, snap)
		return nil
	})

	return
}

// GetState returns the current state, describing the instruction at IC.
func (m *Machine) GetState() Snapshot {
	op := OP_NONE
	if m.Ic >= 0 && m.Ic < len(m.program) {
		op = Decode(m.program[m.Ic]).Op
	}

	return m.snapshot(op)
}

// parseValue reads the decimal integer at the start of a memory value.
// Leading space and a sign are allowed; text after the digits is ignored.
func parseValue(text string) (value *big.Int, ok bool) {
	text = strings.TrimSpace(text)

	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return
	}

	return new(big.Int).SetString(text[:end], 10)
}
