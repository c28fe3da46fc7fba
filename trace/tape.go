// Package trace records machine snapshots to a stream.
package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ezrec/jc62/machine"
	"github.com/ezrec/jc62/memory"
	"github.com/ezrec/jc62/translate"
)

var f = translate.From

var (
	ErrFormatInvalid = errors.New(f("format invalid"))
)

// Format is the encoding of a recorded snapshot.
type Format string

const (
	FORMAT_TEXT = Format("text") // Register block, comments, and used memory.
	FORMAT_JSON = Format("json") // One JSON object per line.
)

// ParseFormat checks a format name.
func ParseFormat(name string) (format Format, err error) {
	format = Format(strings.ToLower(name))
	switch format {
	case FORMAT_TEXT, FORMAT_JSON:
	default:
		err = ErrFormatInvalid
	}
	return
}

// Tape writes a sequence of snapshots to an output stream.
type Tape struct {
	Output io.Writer
	Format Format

	count int
}

// Rewind restarts the step numbering.
func (tc *Tape) Rewind() {
	tc.count = 0
}

// Count returns the number of snapshots recorded since the last rewind.
func (tc *Tape) Count() int {
	return tc.count
}

// Record writes one snapshot.
func (tc *Tape) Record(snap machine.Snapshot) (err error) {
	switch tc.Format {
	case FORMAT_JSON:
		err = json.NewEncoder(tc.Output).Encode(&snap)
	case FORMAT_TEXT, "":
		_, err = io.WriteString(tc.Output, tc.text(snap))
	default:
		err = ErrFormatInvalid
	}
	if err != nil {
		return
	}

	tc.count++

	return
}

// text formats a snapshot for people.
func (tc *Tape) text(snap machine.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "step %d\n", tc.count+1)

	regs := [][2]string{
		{"pc", snap.Pc},
		{"acc", snap.Acc},
		{"b", snap.B},
		{"nf", snap.Nf},
		{"mar", snap.Mar},
		{"mdr", snap.Mdr},
		{"ir", snap.Ir},
	}
	for _, reg := range regs {
		fmt.Fprintf(&sb, "% 5s: %v\n", reg[0], reg[1])
	}

	if len(snap.Comments) != 0 {
		fmt.Fprintf(&sb, "  %v\n", strings.ReplaceAll(snap.Comments, "\n", " "))
	}
	for line := range strings.Lines(snap.InstructionSteps) {
		fmt.Fprintf(&sb, "    %v\n", strings.TrimSuffix(line, "\n"))
	}

	var used []string
	for address, cell := range snap.Memory {
		if cell.IsNull() {
			continue
		}
		used = append(used, address)
	}
	slices.Sort(used)
	for _, address := range used {
		cell := snap.Memory[address]
		fmt.Fprintf(&sb, "  [%v] %v = %v\n", address, displayLabel(cell), cell.Value)
	}

	return sb.String()
}

func displayLabel(cell memory.Cell) string {
	if len(cell.Label) == 0 {
		return "-"
	}
	return cell.Label
}
