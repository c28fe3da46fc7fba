// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package session owns one jc62 machine and the listing it runs.
package session

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/jc62/internal"
	"github.com/ezrec/jc62/machine"
)

var _session_defines = map[string]string{
	"PROGRAM_LINES_MAX": fmt.Sprintf("%v", PROGRAM_LINES_MAX),
}

const (
	PROGRAM_LINES_MAX = 99 // Jump operands are two decimal digits.
)

// Session state. Machine + listing + memory presets.
type Session struct {
	Verbose          bool // If set, enables verbose logging.
	*machine.Machine      // Reference to the machine simulation.

	Listing    *machine.Listing  // Reference to the current listing.
	Presets    []machine.Preset  // Memory cells applied after the listing's own.
	Predefines map[string]string // Assembler equates defined before parsing.
}

// NewSession creates a new session.
func NewSession() (ses *Session) {
	ses = &Session{
		Machine: machine.NewMachine(),
		Listing: &machine.Listing{},
	}

	return
}

// Defines returns an iterator over all of the defines, in name order.
// Predefines replace session and machine defines of the same name.
func (ses *Session) Defines() iter.Seq2[string, string] {
	return internal.SortedUnion(maps.All(_session_defines),
		ses.Machine.Defines(),
		maps.All(ses.Predefines),
	)
}

// Assembler returns an assembler predefined with the session defines.
func (ses *Session) Assembler() (asm *machine.Assembler) {
	asm = &machine.Assembler{Verbose: ses.Verbose}
	for name, value := range ses.Defines() {
		asm.Predefine(name, value)
	}

	return
}

// Load assembles a source listing into the session.
// The machine is not reset.
func (ses *Session) Load(source io.Reader) (err error) {
	asm := ses.Assembler()

	listing, err := asm.Parse(source)
	if err != nil {
		return
	}

	if len(listing.Lines) > PROGRAM_LINES_MAX {
		err = ErrProgramTooLong
		return
	}

	ses.Listing = listing

	return
}

// Reset the machine, submit the listing, and fill memory from the listing
// and the presets.
func (ses *Session) Reset() (err error) {
	ses.Machine.Verbose = ses.Verbose

	ses.Machine.Reset()
	ses.Machine.SubmitCode(ses.Listing.Program())

	for _, cell := range slices.Concat(ses.Listing.Cells, ses.Presets) {
		err = ses.Machine.SetMemoryCell(cell.Address, cell.Label, cell.Value)
		if err != nil {
			return
		}
	}

	return
}

// LineNo returns the source line number of the instruction at IC.
func (ses *Session) LineNo() int {
	return ses.Listing.LineNo(ses.Machine.Ic)
}

// Step performs a single step of the machine.
func (ses *Session) Step() (snap machine.Snapshot, err error) {
	ses.Machine.Verbose = ses.Verbose

	return ses.Machine.Step()
}

// RunEach steps the machine until the program is exhausted, handing every
// snapshot to each. A nil each captures no snapshots.
func (ses *Session) RunEach(each func(snap machine.Snapshot) error) (steps int, err error) {
	ses.Machine.Verbose = ses.Verbose

	steps, err = ses.Machine.Run(each)
	if err != nil {
		err = &ErrRuntime{
			LineNo: ses.LineNo(),
			Line:   ses.Listing.Text(ses.Machine.Ic),
			Err:    err,
		}
	}

	return
}

// Run steps the machine until the program is exhausted, and returns every
// snapshot.
func (ses *Session) Run() (snaps []machine.Snapshot, err error) {
	_, err = ses.RunEach(func(snap machine.Snapshot) error {
		snaps = append(snaps, snap)
		return nil
	})

	return
}
