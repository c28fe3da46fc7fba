package machine

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/jc62/memory"
)

func assemble(t *testing.T, source ...string) (listing *Listing, err error) {
	t.Helper()

	asm := &Assembler{}
	return asm.Parse(strings.NewReader(strings.Join(source, "\n")))
}

func TestAssembler_Parse(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	listing, err := assemble(t,
		"; add two numbers",
		".data 0a x 10",
		".data 0B y",
		"",
		"start: LDA x   ; load",
		"       MBA",
		"       ADD",
		"       STA y",
		"       HLT",
	)
	require.NoError(err)

	assert.Equal([]string{"start: LDA x", "MBA", "ADD", "STA y", "HLT"}, listing.Program())
	assert.Equal([]Preset{
		{Address: "0A", Label: "x", Value: "10"},
		{Address: "0B", Label: "y", Value: "0"},
	}, listing.Cells)

	assert.Equal(5, listing.LineNo(0))
	assert.Equal(9, listing.LineNo(4))
	assert.Equal(0, listing.LineNo(5))
	assert.Equal(0, listing.LineNo(-1))
}

func TestAssembler_Labels(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	listing, err := assemble(t,
		"      JMP skip",
		"top:",
		"      ADD",
		"skip: SUB",
		"      JN top",
		"      JMP 1",
		"      HLT",
	)
	require.NoError(err)

	assert.Equal([]string{"JMP 03", "ADD", "skip: SUB", "JN 02", "JMP 01", "HLT"}, listing.Program())
}

func TestAssembler_Equates(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	asm := &Assembler{}
	asm.Predefine("START", "20")

	listing, err := asm.Parse(strings.NewReader(strings.Join([]string{
		".equ COUNT 3",
		".equ VAR total",
		".data $(START+1) VAR COUNT", // expressions expand to decimal text
		".data $(0x10) limit $(COUNT*4)",
		"LDA VAR",
		"JMP $(LINE+1)",
		"HLT",
	}, "\n")))
	require.NoError(err)

	assert.Equal([]Preset{
		{Address: "21", Label: "total", Value: "3"},
		{Address: "16", Label: "limit", Value: "12"},
	}, listing.Cells)
	assert.Equal([]string{"LDA total", "JMP 03", "HLT"}, listing.Program())

	defines := maps.Collect(asm.Defines())
	assert.Equal("20", defines["START"])
	assert.Equal("256", defines["MEMORY_SIZE"])
}

func TestAssembler_DataAddressEquate(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	asm := &Assembler{}
	asm.Predefine("TOP", "0b")

	listing, err := asm.Parse(strings.NewReader(strings.Join([]string{
		".equ BASE 0A",
		".data BASE x 1",
		".data TOP y",
		"HLT",
	}, "\n")))
	require.NoError(err)

	assert.Equal([]Preset{
		{Address: "0A", Label: "x", Value: "1"},
		{Address: "0B", Label: "y", Value: "0"},
	}, listing.Cells)
}

func TestAssembler_MemoryLabelPredefines(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	asm := &Assembler{}
	asm.Predefine("LIMIT", "10")

	listing, err := asm.Parse(strings.NewReader(strings.Join([]string{
		".equ SUM total",
		".data 00 LINE 5",
		".data 01 LIMIT LIMIT",
		".data 02 SUM",
		"LDA LINE",
		"STA LINE",
		"LDA LIMIT",
		"STA SUM",
		"HLT",
	}, "\n")))
	require.NoError(err)

	assert.Equal([]Preset{
		{Address: "00", Label: "LINE", Value: "5"},
		{Address: "01", Label: "LIMIT", Value: "10"},
		{Address: "02", Label: "total", Value: "0"},
	}, listing.Cells)
	assert.Equal([]string{"LDA LINE", "STA LINE", "LDA LIMIT", "STA total", "HLT"}, listing.Program())

	m := NewMachine()
	m.SubmitCode(listing.Program())
	for _, cell := range listing.Cells {
		require.NoError(m.SetMemoryCell(cell.Address, cell.Label, cell.Value))
	}
	_, err = m.RunToCompletion()
	require.NoError(err)

	state := m.GetState()
	assert.Equal("5", state.Memory["00"].Value)
	assert.Equal("10", state.Memory["02"].Value)
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source []string
		err    error
		lineno int
	}){
		{"equ_syntax", []string{".equ A"}, ErrEquateSyntax, 1},
		{"equ_dup", []string{".equ A 1", ".equ A 2"}, ErrEquateDuplicate, 2},
		{"data_syntax", []string{".data 00"}, ErrDataSyntax, 1},
		{"data_addr", []string{"HLT", ".data FG x 1"}, memory.ErrAddressInvalid, 2},
		{"label_dup", []string{"a: HLT", "a: HLT"}, ErrLabelDuplicate, 2},
		{"invalid", []string{"NOP"}, ErrInstructionInvalid, 1},
		{"lowercase", []string{"lda x"}, ErrInstructionInvalid, 1},
		{"missing", []string{"ADD", "LDA"}, ErrOperandMissing, 2},
		{"extra", []string{"ADD x"}, ErrOperandExtra, 1},
		{"target", []string{"JMP 0"}, ErrTargetInvalid, 1},
		{"link", []string{"HLT", "JN nowhere", "HLT"}, ErrLabelMissing("nowhere"), 2},
		{"expr", []string{"JMP $(1+)"}, nil, 1},
		{"expr_type", []string{"JMP $('a')"}, ErrParseExpression("'a'"), 1},
	}

	for _, entry := range table {
		_, err := assemble(t, entry.source...)
		if !assert.Error(err, entry.name) {
			continue
		}
		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestAssembler_RunListing(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// Multiply a by b using repeated addition.
	listing, err := assemble(t,
		".data 00 a 6",
		".data 01 b 4",
		".data 02 one 1",
		".data 03 product",
		"loop: LDA one",
		"      MBA",
		"      LDA b",
		"      SUB",
		"      JN done",
		"      STA b",
		"      LDA a",
		"      MBA",
		"      LDA product",
		"      ADD",
		"      STA product",
		"      JMP loop",
		"done: HLT",
	)
	require.NoError(err)

	m := NewMachine()
	m.SubmitCode(listing.Program())
	for _, cell := range listing.Cells {
		require.NoError(m.SetMemoryCell(cell.Address, cell.Label, cell.Value))
	}

	// b counts down from 4 to -1, so the loop body runs 4 times.
	_, err = m.RunToCompletion()
	assert.NoError(err)

	state := m.GetState()
	assert.Equal("24", state.Memory["03"].Value)
	assert.Equal("0", state.Memory["01"].Value)
}
