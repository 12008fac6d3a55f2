package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"math"
)

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING       = State(0) // running
	STATE_HALTED        = State(1) // halted
	STATE_OUT_OF_BOUNDS = State(2) // out of bounds
)

// MAX_MEMORY_SIZE is the largest memory, in cells, a Cpu can address.
const MAX_MEMORY_SIZE = math.MaxInt32 - 1

// Cpu is the simulation context for the dojo CPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Lenient bool // Set to skip unknown opcodes instead of failing.
	Limit   int  // If non-zero, Run() stops with ErrTickLimit after this many ticks.

	Pc     uint32 // Program counter.
	A      int32  // Accumulator.
	X      int32  // X index register.
	Y      int32  // Y index register.
	Flags  bool   // True if the last comparison was equal.
	Stack  Stack  // Call stack, at the top of Memory.
	Memory Memory // Program, data and stack memory.

	Ticks int // Instructions executed.

	halted bool
	isa    InstructionSet
}

// NewCpu creates a new CPU with count cells of memory, using the Dojo
// instruction set. Every address, including a JSR return address, must fit
// in a positive int32, so count is at most MAX_MEMORY_SIZE.
func NewCpu(count uint) (cpu *Cpu, err error) {
	if count == 0 || count > MAX_MEMORY_SIZE {
		err = ErrMemorySize
		return
	}

	cpu = &Cpu{
		Memory: NewMemory(count),
		isa:    Dojo,
	}
	cpu.Stack.Memory = cpu.Memory
	cpu.Stack.Reset()

	return
}

// SetInstructionSet replaces the instruction set used to resolve opcodes.
func (cpu *Cpu) SetInstructionSet(isa InstructionSet) {
	cpu.isa = isa
}

// Defines returns the opcode mnemonics and memory layout symbols.
func (cpu *Cpu) Defines() iter.Seq2[string, int64] {
	return func(yield func(name string, value int64) bool) {
		for op := OP_BRK; op.Valid(); op++ {
			if !yield(op.String(), int64(op)) {
				return
			}
		}
		if !yield("MEMORY_SIZE", int64(len(cpu.Memory))) {
			return
		}
		yield("STACK_TOP", int64(len(cpu.Memory)-1))
	}
}

// Reset clears memory and registers, and restarts from PC 0.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory)
	cpu.Pc = 0
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.Flags = false
	cpu.Stack.Reset()
	cpu.Ticks = 0
	cpu.halted = false
}

// Load copies the program to the start of memory, and marks the CPU as
// running. Registers and the remainder of memory are not modified.
func (cpu *Cpu) Load(program []int32) (err error) {
	err = cpu.Memory.Load(program)
	if err != nil {
		return
	}

	cpu.halted = false

	if cpu.Verbose {
		log.Printf("cpu: loaded %d cells", len(program))
	}

	return
}

// State returns the current execution state.
func (cpu *Cpu) State() State {
	switch {
	case cpu.halted:
		return STATE_HALTED
	case int64(cpu.Pc) >= int64(len(cpu.Memory)):
		return STATE_OUT_OF_BOUNDS
	}

	return STATE_RUNNING
}

// Operand returns the cell following the opcode at the PC.
func (cpu *Cpu) Operand() (value int32, err error) {
	return cpu.Memory.Read(int64(cpu.Pc) + 1)
}

// Tick executes a single instruction. A CPU that is not running is left as is.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State() != STATE_RUNNING {
		return
	}

	pc := cpu.Pc
	code := cpu.Memory[pc]

	defer func() {
		if err != nil {
			err = ErrExecute{Pc: pc, Opcode: code, Err: err}
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %03d: %v", pc, Opcode(code))
	}

	inst, err := cpu.isa.Lookup(code)
	if err != nil {
		if cpu.Lenient && errors.Is(err, ErrOpcodeNotFound) {
			log.Printf("cpu: %03d: %v, skipped", pc, err)
			err = nil
			cpu.Pc++
			cpu.Ticks++
		}
		return
	}

	err = inst(cpu)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Run executes instructions until the CPU halts, the PC leaves memory,
// or an instruction fails.
func (cpu *Cpu) Run() (err error) {
	for cpu.State() == STATE_RUNNING {
		if cpu.Limit > 0 && cpu.Ticks >= cpu.Limit {
			err = ErrTickLimit
			return
		}
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	if cpu.Verbose {
		log.Printf("cpu: %v at pc %d after %d ticks", cpu.State(), cpu.Pc, cpu.Ticks)
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"state",
		"pc",
		"a", "x", "y",
		"flags",
		"sp",
		"depth",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "state":
			strval = cpu.State().String()
		case "pc":
			strval = fmt.Sprintf("%d", cpu.Pc)
		case "a":
			strval = fmt.Sprintf("%d", cpu.A)
		case "x":
			strval = fmt.Sprintf("%d", cpu.X)
		case "y":
			strval = fmt.Sprintf("%d", cpu.Y)
		case "flags":
			strval = "false"
			if cpu.Flags {
				strval = "true"
			}
		case "sp":
			strval = fmt.Sprintf("%d", cpu.Stack.Pointer)
		case "depth":
			strval = fmt.Sprintf("%d", cpu.Stack.Depth())
		case "stack":
			val, err := cpu.Stack.Peek()
			if err == nil {
				strval = fmt.Sprintf("%d", val)
			} else {
				strval = "-"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
