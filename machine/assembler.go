// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/jc62/memory"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINE":        "1",
	"MEMORY_SIZE": fmt.Sprintf("%v", memory.SIZE),
	"NULL_LABEL":  memory.NULL_LABEL,
	"NULL_VALUE":  memory.NULL_VALUE,
}

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// link is a jump whose operand is a line label.
type link struct {
	index  int    // Index into the listing lines.
	label  string // Line label of the jump target.
	lineno int
	line   string
}

// Assembler is a single pass assembler for jc62 source listings.
//
// The machine itself runs any text; the assembler is strict, so that mistakes
// are found before a program is submitted.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of line labels to 1-indexed line numbers.
	Equate    map[string]string // Map of equates.

	local map[string]bool // Equates defined by .equ in the source.

	lines []Line
	cells []Preset
	links []link
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Defines iterates over the system equates and the predefines.
func (asm *Assembler) Defines() iter.Seq2[string, string] {
	equates := maps.Clone(sysEquate)
	maps.Copy(equates, asm.predefine)
	return maps.All(equates)
}

// nextLine is the 1-indexed line number of the next program line.
func (asm *Assembler) nextLine() int {
	return len(asm.lines) + 1
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value string, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates. They may be labels
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, lineno := range asm.Label {
		pred[key] = starlark.MakeInt(lineno)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = st_int.BigInt().String()
	return
}

// parseLine expands a line of source into words.
// Directives are handled here, and return no words.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	asm.Equate["LINE"] = fmt.Sprintf("%v", asm.nextLine())

	// Do $() evaluations
	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return value
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	switch words[0] {
	case ".equ":
		// .equ CONST VALUE
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		asm.local[words[1]] = true
		words = nil
		return
	case ".data":
		// .data ADDR LABEL [VALUE]
		if len(words) < 3 || len(words) > 4 {
			err = ErrDataSyntax
			return
		}
		words[1] = asm.substitute(words[1], false)
		words[2] = asm.substitute(words[2], true)
		if len(words) == 4 {
			words[3] = asm.substitute(words[3], false)
		}
		var index int
		index, err = memory.ParseAddress(words[1])
		if err != nil {
			return
		}
		cell := Preset{Address: memory.Address(index), Label: words[2], Value: memory.NULL_VALUE}
		if len(words) == 4 {
			cell.Value = words[3]
		}
		asm.cells = append(asm.cells, cell)
		words = nil
		return
	}

	for n, word := range words {
		// Memory label operands only take source equates.
		memoryLabel := n > 0 && (words[n-1] == OP_LDA.String() || words[n-1] == OP_STA.String())
		words[n] = asm.substitute(word, memoryLabel)
	}

	return
}

// substitute replaces a word by its equate. A memory label is only replaced
// by equates from .equ lines, never by system equates or predefines.
func (asm *Assembler) substitute(word string, memoryLabel bool) string {
	if memoryLabel && !asm.local[word] {
		return word
	}

	equate, ok := asm.Equate[word]
	if !ok {
		return word
	}

	return equate
}

// parseWords assembles the words of one program line.
func (asm *Assembler) parseWords(words []string, lineno int, line string) (err error) {
	var label string

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label = strings.TrimSuffix(words[0], ":")
		if len(label) == 0 {
			err = ErrLabelMissing(label)
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.nextLine()
		words = words[1:]
	}

	// Label on a line by itself.
	if len(words) == 0 {
		return
	}

	op, ok := mnemonicMap[words[0]]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	need := 1
	if op.HasOperand() {
		need = 2
	}
	if len(words) < need {
		err = ErrOperandMissing
		return
	}
	if len(words) > need {
		err = ErrOperandExtra
		return
	}

	if op.IsJump() {
		target, perr := strconv.Atoi(words[1])
		if perr == nil {
			if target < 1 {
				err = ErrTargetInvalid
				return
			}
			words[1] = fmt.Sprintf("%02d", target)
		} else {
			asm.links = append(asm.links, link{
				index:  len(asm.lines),
				label:  words[1],
				lineno: lineno,
				line:   line,
			})
		}
	}

	ins := Instruction{Label: label, Words: words}
	asm.lines = append(asm.lines, Line{LineNo: lineno, Text: ins.String()})

	if asm.Verbose {
		log.Printf("asm: %02d: %v", len(asm.lines), ins.String())
	}

	return
}

// Parse parses an input stream into a Listing.
func (asm *Assembler) Parse(input io.Reader) (listing *Listing, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, asm.predefine)
	asm.local = map[string]bool{}
	asm.lines = nil
	asm.cells = nil
	asm.links = nil

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(text_comment)

		var words []string
		words, err = asm.parseLine(line)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno, line)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels.
	for _, jump := range asm.links {
		target, ok := asm.Label[jump.label]
		if !ok {
			lineno = jump.lineno
			line = jump.line
			err = ErrLabelMissing(jump.label)
			return
		}
		ins := Decode(asm.lines[jump.index].Text)
		ins.Words[1] = fmt.Sprintf("%02d", target)
		asm.lines[jump.index].Text = ins.String()
	}

	listing = &Listing{
		Lines: slices.Clone(asm.lines),
		Cells: slices.Clone(asm.cells),
	}

	return
}
