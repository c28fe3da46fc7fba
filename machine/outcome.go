package machine

// Outcome records how the last instruction executed.
//
// Bad operands never fail a step. The instruction becomes a no-op, and the
// outcome says why.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_OK              = Outcome(0) // ok
	OUTCOME_NOT_TAKEN       = Outcome(1) // not taken
	OUTCOME_LABEL_MISSING   = Outcome(2) // label missing
	OUTCOME_VALUE_INVALID   = Outcome(3) // value invalid
	OUTCOME_TARGET_INVALID  = Outcome(4) // target invalid
	OUTCOME_OPERAND_MISSING = Outcome(5) // operand missing
	OUTCOME_UNKNOWN         = Outcome(6) // unknown instruction
	OUTCOME_EMPTY           = Outcome(7) // empty
)

// Absorbed is true if the instruction was skipped because of a bad operand or
// unknown text.
func (oc Outcome) Absorbed() bool {
	switch oc {
	case OUTCOME_LABEL_MISSING, OUTCOME_VALUE_INVALID, OUTCOME_TARGET_INVALID,
		OUTCOME_OPERAND_MISSING, OUTCOME_UNKNOWN:
		return true
	}
	return false
}
