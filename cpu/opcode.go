package cpu

// Opcode is an instruction code of the dojo instruction set.
type Opcode int32

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BRK   = Opcode(0)  // BRK
	OP_LDA   = Opcode(1)  // LDA
	OP_ADC   = Opcode(2)  // ADC
	OP_STA   = Opcode(3)  // STA
	OP_LDX   = Opcode(4)  // LDX
	OP_INX   = Opcode(5)  // INX
	OP_CMY   = Opcode(6)  // CMY
	OP_BNE   = Opcode(7)  // BNE
	OP_STA_X = Opcode(8)  // STA_X
	OP_DEY   = Opcode(9)  // DEY
	OP_LDY   = Opcode(10) // LDY
	OP_JSR   = Opcode(11) // JSR
	OP_RTS   = Opcode(12) // RTS
)

// OPCODE_COUNT is the number of opcodes in the dojo instruction set.
const OPCODE_COUNT = 13

// Operands returns the number of operand cells following the opcode.
func (op Opcode) Operands() int {
	switch op {
	case OP_LDA, OP_ADC, OP_STA, OP_LDX, OP_CMY, OP_BNE, OP_LDY, OP_JSR:
		return 1
	}

	return 0
}

// Valid returns true if the opcode is part of the dojo instruction set.
func (op Opcode) Valid() bool {
	return op >= OP_BRK && op <= OP_RTS
}
