package cpu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// snapshot is the observable CPU state.
type snapshot struct {
	Pc     uint32
	A      int32
	X      int32
	Y      int32
	Flags  bool
	Sp     uint32
	Halted bool
	Memory Memory
}

func takeSnapshot(cpu *Cpu) snapshot {
	return snapshot{
		Pc:     cpu.Pc,
		A:      cpu.A,
		X:      cpu.X,
		Y:      cpu.Y,
		Flags:  cpu.Flags,
		Sp:     cpu.Stack.Pointer,
		Halted: cpu.halted,
		Memory: slices.Clone(cpu.Memory),
	}
}

func TestTableLookup(t *testing.T) {
	assert := assert.New(t)

	for op := OP_BRK; op.Valid(); op++ {
		inst, err := Dojo.Lookup(int32(op))
		assert.NoError(err, op.String())
		assert.NotNil(inst, op.String())
	}

	for _, code := range []int32{-1, OPCODE_COUNT, 99, 1 << 30} {
		inst, err := Dojo.Lookup(code)
		assert.Nil(inst)
		assert.ErrorIs(err, ErrOpcodeNotFound)
		assert.Equal(ErrOpcode(code), err)
	}

	sparse := Table{nil, opInx}
	_, err := sparse.Lookup(0)
	assert.ErrorIs(err, ErrOpcodeNotFound)
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("BRK", OP_BRK.String())
	assert.Equal("STA_X", OP_STA_X.String())
	assert.Equal("RTS", OP_RTS.String())
	assert.Equal("Opcode(99)", Opcode(99).String())
	assert.False(Opcode(13).Valid())
	assert.False(Opcode(-1).Valid())
}

func TestInstructions(t *testing.T) {
	assert := assert.New(t)

	const base = 4

	table := [](struct {
		name    string
		code    []int32
		flags   bool
		width   uint32 // PC advance, when not jumping
		pc      int64  // PC after, when jumping (width == 0)
		changed func(s *snapshot)
	}){
		{"brk", []int32{0}, false, 1, 0, func(s *snapshot) { s.Halted = true }},
		{"lda", []int32{1, -7}, false, 2, 0, func(s *snapshot) { s.A = -7 }},
		{"adc", []int32{2, 7}, false, 2, 0, func(s *snapshot) { s.A = 17 }},
		{"adc_neg", []int32{2, -12}, false, 2, 0, func(s *snapshot) { s.A = -2 }},
		{"sta", []int32{3, 12}, false, 2, 0, func(s *snapshot) { s.Memory[12] = 10 }},
		{"ldx", []int32{4, 9}, false, 2, 0, func(s *snapshot) { s.X = 9 }},
		{"inx", []int32{5}, false, 1, 0, func(s *snapshot) { s.X = 4 }},
		{"cmy_eq", []int32{6, 5}, false, 2, 0, func(s *snapshot) { s.Flags = true }},
		{"cmy_ne", []int32{6, 6}, true, 2, 0, func(s *snapshot) { s.Flags = false }},
		{"bne_taken", []int32{7, 3}, false, 0, base + 3, func(s *snapshot) {}},
		{"bne_back", []int32{7, -4}, false, 0, base - 4, func(s *snapshot) {}},
		{"bne_not_taken", []int32{7, -4}, true, 2, 0, func(s *snapshot) {}},
		{"sta_x", []int32{8}, false, 1, 0, func(s *snapshot) { s.Memory[3] = 10 }},
		{"dey", []int32{9}, false, 1, 0, func(s *snapshot) { s.Y = 4 }},
		{"ldy", []int32{10, -1}, false, 2, 0, func(s *snapshot) { s.Y = -1 }},
		{"jsr", []int32{11, 10}, false, 0, 10, func(s *snapshot) {
			s.Memory[15] = base + 2
			s.Sp = 14
		}},
		{"jsr_clamp", []int32{11, -10}, false, 0, 0, func(s *snapshot) {
			s.Memory[15] = base + 2
			s.Sp = 14
		}},
	}

	for _, entry := range table {
		cpu := newCpu(t, 16)
		cpu.Pc = base
		cpu.A = 10
		cpu.X = 3
		cpu.Y = 5
		cpu.Flags = entry.flags
		copy(cpu.Memory[base:], entry.code)

		expected := takeSnapshot(cpu)
		entry.changed(&expected)
		if entry.width != 0 {
			expected.Pc = base + entry.width
		} else {
			expected.Pc = uint32(entry.pc)
		}

		err := cpu.Tick()
		assert.NoError(err, entry.name)
		assert.Equal(expected, takeSnapshot(cpu), entry.name)
	}
}

func TestInstructionRts(t *testing.T) {
	assert := assert.New(t)

	cpu := newCpu(t, 16)
	cpu.Memory[6] = 12 // RTS
	assert.NoError(cpu.Stack.Push(9))
	cpu.Pc = 6

	expected := takeSnapshot(cpu)
	expected.Pc = 9
	expected.Sp = 15

	assert.NoError(cpu.Tick())
	assert.Equal(expected, takeSnapshot(cpu))
}

func TestInstructionErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		setup func(cpu *Cpu)
		err   error
	}){
		{"lda_no_operand", func(cpu *Cpu) { cpu.Pc = 7; cpu.Memory[7] = 1 }, ErrMemoryRange},
		{"sta_negative", func(cpu *Cpu) { cpu.Memory[0], cpu.Memory[1] = 3, -1 }, ErrMemoryRange},
		{"sta_x_high", func(cpu *Cpu) { cpu.Memory[0] = 8; cpu.X = 8 }, ErrMemoryRange},
		{"bne_negative", func(cpu *Cpu) { cpu.Memory[0], cpu.Memory[1] = 7, -5 }, ErrMemoryRange},
		{"rts_empty", func(cpu *Cpu) { cpu.Memory[0] = 12 }, ErrStackEmpty},
		{"rts_negative", func(cpu *Cpu) {
			cpu.Memory[0] = 12
			_ = cpu.Stack.Push(-3)
		}, ErrMemoryRange},
		{"jsr_full", func(cpu *Cpu) {
			cpu.Memory[0], cpu.Memory[1] = 11, 4
			cpu.Stack.Pointer = 0
		}, ErrStackFull},
		{"unknown", func(cpu *Cpu) { cpu.Memory[0] = 13 }, ErrOpcodeNotFound},
	}

	for _, entry := range table {
		cpu := newCpu(t, 8)
		entry.setup(cpu)

		expected := takeSnapshot(cpu)
		err := cpu.Tick()
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Equal(expected, takeSnapshot(cpu), entry.name)
		assert.Equal(0, cpu.Ticks, entry.name)
	}
}

func TestOpcodeOperands(t *testing.T) {
	assert := assert.New(t)

	for op := OP_BRK; op.Valid(); op++ {
		cpu := newCpu(t, 16)
		cpu.Flags = true // BNE falls through
		cpu.Memory[0] = int32(op)
		cpu.Memory[1] = 2
		if op == OP_JSR || op == OP_RTS {
			continue
		}
		assert.NoError(cpu.Tick(), op.String())
		assert.Equal(uint32(1+op.Operands()), cpu.Pc, op.String())
	}
}
