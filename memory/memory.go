// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the labelled, symbolically addressed memory of the
// jc62 machine.
//
// Memory holds a fixed 256 cells, addressed by two uppercase hexadecimal digits
// (00-FF). Each cell carries a label and a value, both text. Instructions find
// cells by label, not by address: a search returns the first cell, in address
// order, whose label matches.
package memory

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strconv"
	"strings"
)

const (
	SIZE       = 256    // Number of cells.
	NULL_LABEL = "NULL" // Label of a cell after reset.
	NULL_VALUE = "0"    // Value of a cell after reset.
)

// Cell is a single memory slot.
type Cell struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// IsNull is true if the cell holds its reset contents.
func (cell Cell) IsNull() bool {
	return cell.Label == NULL_LABEL && cell.Value == NULL_VALUE
}

// Memory is the 256 cell labelled store.
type Memory struct {
	Verbose bool
	Cell    [SIZE]Cell
}

// New creates a reset memory.
func New() (mem *Memory) {
	mem = &Memory{}

	mem.Reset()

	return
}

// Reset fills every cell with the NULL label and a zero value.
func (mem *Memory) Reset() {
	for n := range mem.Cell {
		mem.Cell[n] = Cell{Label: NULL_LABEL, Value: NULL_VALUE}
	}

	if mem.Verbose {
		log.Printf("memory: reset")
	}
}

// Address formats a cell index as its two digit address.
func Address(index int) string {
	return fmt.Sprintf("%02X", index)
}

// ParseAddress converts an address to a cell index.
// The address is case-insensitive, and a single digit is zero padded.
func ParseAddress(text string) (index int, err error) {
	addr := strings.ToUpper(strings.TrimSpace(text))
	if len(addr) == 1 {
		addr = "0" + addr
	}

	if len(addr) != 2 {
		err = ErrAddress(text)
		return
	}

	value, perr := strconv.ParseUint(addr, 16, 8)
	if perr != nil {
		err = ErrAddress(text)
		return
	}

	index = int(value)
	return
}

// Set replaces the label and value of the cell at an address.
// Strings are stored as given, including empty ones.
func (mem *Memory) Set(address string, label string, value string) (err error) {
	index, err := ParseAddress(address)
	if err != nil {
		if mem.Verbose {
			log.Printf("memory: set %q: %v", address, err)
		}
		return
	}

	mem.Cell[index] = Cell{Label: label, Value: value}

	if mem.Verbose {
		log.Printf("memory: [%v] = {label:%q value:%q}", Address(index), label, value)
	}

	return
}

// First finds the first cell, in address order, whose label matches.
// Labels compare case-insensitively.
func (mem *Memory) First(label string) (index int, ok bool) {
	for n := range mem.Cell {
		if strings.EqualFold(mem.Cell[n].Label, label) {
			return n, true
		}
	}

	return
}

// Store overwrites the value of a cell, keeping its label.
func (mem *Memory) Store(index int, value string) {
	mem.Cell[index].Value = value

	if mem.Verbose {
		log.Printf("memory: [%v].value = %q", Address(index), value)
	}
}

// All iterates over every cell, in address order.
func (mem *Memory) All() iter.Seq2[string, Cell] {
	return func(yield func(address string, cell Cell) bool) {
		for n, cell := range mem.Cell {
			if !yield(Address(n), cell) {
				return
			}
		}
	}
}

// Map copies the memory into an address keyed map.
func (mem *Memory) Map() map[string]Cell {
	return maps.Collect(mem.All())
}
