// Package cpu implements the dojo microprocessor.
//
// The CPU consists of a program counter (PC), three 32-bit registers (A, X
// and Y), a single comparison flag, and a linear word memory shared between
// the program and the call stack. The stack grows down from the last cell of
// memory.
//
// Opcodes are resolved through an InstructionSet, so an alternate table can
// be installed without changing the fetch/execute loop. Every instruction
// moves the PC itself; the loop never adds an increment of its own.
package cpu
