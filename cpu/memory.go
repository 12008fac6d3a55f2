package cpu

// Memory is the linear word memory of the CPU.
type Memory []int32

// NewMemory creates a zero-initialized memory of count cells.
func NewMemory(count uint) Memory {
	return make(Memory, count)
}

// Read returns the cell at addr.
func (mem Memory) Read(addr int64) (value int32, err error) {
	if addr < 0 || addr >= int64(len(mem)) {
		err = ErrAddress(addr)
		return
	}

	value = mem[addr]
	return
}

// Write sets the cell at addr.
func (mem Memory) Write(addr int64, value int32) (err error) {
	if addr < 0 || addr >= int64(len(mem)) {
		err = ErrAddress(addr)
		return
	}

	mem[addr] = value
	return
}

// Load copies program to the start of memory.
// Memory is left untouched if the program does not fit.
func (mem Memory) Load(program []int32) (err error) {
	if len(program) > len(mem) {
		err = ErrProgramExceedsMemory
		return
	}

	copy(mem, program)
	return
}

// Slice returns a copy of the cells in [start, end).
func (mem Memory) Slice(start, end int64) (cells []int32, err error) {
	if start < 0 || start > int64(len(mem)) {
		err = ErrAddress(start)
		return
	}
	if end < start || end > int64(len(mem)) {
		err = ErrAddress(end)
		return
	}

	cells = make([]int32, end-start)
	copy(cells, mem[start:end])
	return
}
