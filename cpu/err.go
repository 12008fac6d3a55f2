package cpu

import (
	"errors"

	"github.com/ezrec/dojo/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrMemorySize           = errors.New(f("memory size invalid"))
	ErrProgramExceedsMemory = errors.New(f("program exceeds memory"))
	ErrOpcodeNotFound       = errors.New(f("opcode not found"))
	ErrMemoryRange          = errors.New(f("memory access out of range"))
	ErrStackEmpty           = errors.New(f("stack empty"))
	ErrStackFull            = errors.New(f("stack full"))
	ErrTickLimit            = errors.New(f("tick limit reached"))
)

// ErrOpcode is returned when a fetched cell has no entry in the instruction set.
type ErrOpcode int32

func (eo ErrOpcode) Error() string {
	return f("bad opcode %d", int32(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrOpcodeNotFound {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress is returned when an instruction accesses a cell outside of memory.
type ErrAddress int64

func (ea ErrAddress) Error() string {
	return f("address %d out of range", int64(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	if err == ErrMemoryRange {
		return true
	}
	_, ok = err.(ErrAddress)
	return
}

// ErrExecute indicates the program counter and opcode of a failed instruction.
type ErrExecute struct {
	Pc     uint32
	Opcode int32
	Err    error
}

func (err ErrExecute) Error() string {
	return f("pc %d opcode %v %v", err.Pc, Opcode(err.Opcode), err.Err)
}

func (err ErrExecute) Unwrap() error {
	return err.Err
}
