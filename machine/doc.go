// Package machine implements the jc62 single accumulator computer and its
// assembler.
//
// The machine has a fetch cursor (IC), a program counter (PC), an accumulator
// (ACC), a partner operand register (B) and a negative flag (NF). Programs are
// lists of text lines, decoded one at a time. The instruction set has eight
// opcodes: LDA, STA, ADD, SUB, MBA, JMP, JN and HLT. LDA and STA address
// memory symbolically, by the label of a memory cell, and JMP and JN take a
// 1-indexed program line number.
//
// After every step the machine returns a Snapshot of its observable state,
// including the MAR, MDR and IR display registers, which mirror PC, ACC and IC.
//
// The assembler turns a source listing (comments, equates, memory presets,
// jump labels and Starlark expressions) into the program lines the machine
// executes.
package machine
