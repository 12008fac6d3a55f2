// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs parsed dojo programs, reporting errors against
// the program source.
package emulator

import (
	"io"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/dojo/cpu"
	"github.com/ezrec/dojo/internal"
	"github.com/ezrec/dojo/program"
)

const (
	MEMORY_SIZE = 512 // Default memory size, in cells.
	TEXT_BASE   = 128 // Conventional start of the text output buffer.
)

var _emulator_defines = map[string]int64{
	"TEXT_BASE": TEXT_BASE,
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool             // If set, enables verbose logging.
	*cpu.Cpu                  // Reference to the CPU simulation.
	Program  *program.Program // Reference to the currently loaded program listing.
}

// NewEmulator creates a new emulator with size cells of memory.
func NewEmulator(size uint) (emu *Emulator, err error) {
	cp, err := cpu.NewCpu(size)
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:     cp,
		Program: &program.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, int64] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Compile parses program text into the program listing.
// The program is not loaded until Reset.
func (emu *Emulator) Compile(r io.Reader) (err error) {
	parser := &program.Parser{Verbose: emu.Verbose}
	prog, err := parser.Parse(r, emu.Defines())
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Reset the CPU, and load the program listing into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	return emu.Cpu.Load(emu.Program.Cells())
}

// LineNo returns the source line number for the cell at the PC, or 0.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	err = emu.Cpu.Tick()
	if err != nil {
		err = &ErrRuntime{LineNo: lineno, Err: err}
		return
	}

	done = emu.Cpu.State() != cpu.STATE_RUNNING
	return
}

// Run the program until it halts, leaves memory, or fails.
func (emu *Emulator) Run() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Run()
	if err != nil {
		// The PC is left on the failing instruction.
		err = &ErrRuntime{LineNo: emu.LineNo(), Err: err}
	}

	return
}

// Text decodes the positive cells in [start, end) as characters.
func (emu *Emulator) Text(start, end int64) (text string, err error) {
	cells, err := emu.Cpu.Memory.Slice(start, end)
	if err != nil {
		return
	}

	var sb strings.Builder
	for _, cell := range cells {
		if cell > 0 {
			sb.WriteRune(rune(cell))
		}
	}

	text = sb.String()
	return
}
