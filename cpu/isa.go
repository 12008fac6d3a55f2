package cpu

// Instruction executes a single opcode against the CPU state.
// It is responsible for moving the PC past its opcode and operands, or
// to its jump target. On error, the CPU state is left unchanged.
type Instruction func(cpu *Cpu) error

// InstructionSet resolves an opcode into its Instruction.
type InstructionSet interface {
	// Lookup returns the instruction for opcode, or ErrOpcode if there is none.
	Lookup(opcode int32) (Instruction, error)
}

// Table is an InstructionSet indexed directly by opcode.
type Table []Instruction

var _ InstructionSet = (Table)(nil)

// Lookup returns the instruction for opcode.
func (t Table) Lookup(opcode int32) (inst Instruction, err error) {
	if opcode < 0 || int64(opcode) >= int64(len(t)) || t[opcode] == nil {
		err = ErrOpcode(opcode)
		return
	}

	inst = t[opcode]
	return
}

// Dojo is the 13 opcode instruction set.
var Dojo = Table{
	OP_BRK:   opBrk,
	OP_LDA:   opLda,
	OP_ADC:   opAdc,
	OP_STA:   opSta,
	OP_LDX:   opLdx,
	OP_INX:   opInx,
	OP_CMY:   opCmy,
	OP_BNE:   opBne,
	OP_STA_X: opStaX,
	OP_DEY:   opDey,
	OP_LDY:   opLdy,
	OP_JSR:   opJsr,
	OP_RTS:   opRts,
}

// opBrk halts the CPU.
func opBrk(cpu *Cpu) error {
	cpu.halted = true
	cpu.Pc++
	return nil
}

// opLda loads A with the operand.
func opLda(cpu *Cpu) (err error) {
	value, err := cpu.Operand()
	if err != nil {
		return
	}

	cpu.A = value
	cpu.Pc += 2
	return
}

// opAdc adds the operand to A.
func opAdc(cpu *Cpu) (err error) {
	value, err := cpu.Operand()
	if err != nil {
		return
	}

	cpu.A += value
	cpu.Pc += 2
	return
}

// opSta stores A at the address in the operand.
func opSta(cpu *Cpu) (err error) {
	addr, err := cpu.Operand()
	if err != nil {
		return
	}

	err = cpu.Memory.Write(int64(addr), cpu.A)
	if err != nil {
		return
	}

	cpu.Pc += 2
	return
}

func opLdx(cpu *Cpu) (err error) {
	value, err := cpu.Operand()
	if err != nil {
		return
	}

	cpu.X = value
	cpu.Pc += 2
	return
}

func opInx(cpu *Cpu) error {
	cpu.X++
	cpu.Pc++
	return nil
}

// opCmy sets Flags if Y equals the operand.
func opCmy(cpu *Cpu) (err error) {
	value, err := cpu.Operand()
	if err != nil {
		return
	}

	cpu.Flags = value == cpu.Y
	cpu.Pc += 2
	return
}

// opBne branches when Flags is clear. The signed offset is relative to the
// BNE opcode itself, so an offset of 0 branches to self.
func opBne(cpu *Cpu) (err error) {
	offset, err := cpu.Operand()
	if err != nil {
		return
	}

	if cpu.Flags {
		cpu.Pc += 2
		return
	}

	target := int64(cpu.Pc) + int64(offset)
	if target < 0 {
		err = ErrAddress(target)
		return
	}

	cpu.Pc = uint32(target)
	return
}

// opStaX stores A at the address in X.
func opStaX(cpu *Cpu) (err error) {
	err = cpu.Memory.Write(int64(cpu.X), cpu.A)
	if err != nil {
		return
	}

	cpu.Pc++
	return
}

func opDey(cpu *Cpu) error {
	cpu.Y--
	cpu.Pc++
	return nil
}

func opLdy(cpu *Cpu) (err error) {
	value, err := cpu.Operand()
	if err != nil {
		return
	}

	cpu.Y = value
	cpu.Pc += 2
	return
}

// opJsr pushes the address of the next instruction, and jumps to the
// operand. Negative targets are clamped to 0.
func opJsr(cpu *Cpu) (err error) {
	target, err := cpu.Operand()
	if err != nil {
		return
	}

	err = cpu.Stack.Push(int32(cpu.Pc + 2))
	if err != nil {
		return
	}

	cpu.Pc = uint32(max(target, 0))
	return
}

// opRts returns to the address pushed by the matching JSR.
func opRts(cpu *Cpu) (err error) {
	ret, err := cpu.Stack.Peek()
	if err != nil {
		return
	}
	if ret < 0 {
		err = ErrAddress(ret)
		return
	}

	_, _ = cpu.Stack.Pop()
	cpu.Pc = uint32(ret)
	return
}
