package cpu

// Stack is the call stack. It lives at the top of Memory and grows down,
// towards the program. Nothing prevents the two from colliding; programs
// must leave room for their call depth.
type Stack struct {
	Memory  Memory
	Pointer uint32 // Next free cell.
}

// Push stores value at the stack pointer, then decrements the pointer.
func (s *Stack) Push(value int32) (err error) {
	if s.Full() {
		err = ErrStackFull
		return
	}

	err = s.Memory.Write(int64(s.Pointer), value)
	if err != nil {
		return
	}

	s.Pointer--
	return
}

// Pop increments the stack pointer, then returns the cell it points to.
func (s *Stack) Pop() (value int32, err error) {
	value, err = s.Peek()
	if err != nil {
		return
	}

	s.Pointer++
	return
}

// Peek returns the most recently pushed value.
func (s *Stack) Peek() (value int32, err error) {
	if s.Empty() {
		err = ErrStackEmpty
		return
	}

	return s.Memory.Read(int64(s.Pointer) + 1)
}

// Empty is true when nothing has been pushed.
func (s *Stack) Empty() bool {
	return int64(s.Pointer)+1 >= int64(len(s.Memory))
}

// Full is true when the next push would fall below cell 0.
// Pointer 0 is still writable, but cannot be decremented further.
func (s *Stack) Full() bool {
	return s.Pointer == 0 || len(s.Memory) == 0
}

// Depth returns the number of values on the stack.
func (s *Stack) Depth() int {
	if s.Empty() {
		return 0
	}
	return len(s.Memory) - 1 - int(s.Pointer)
}

// Reset the stack pointer to the last cell of memory.
func (s *Stack) Reset() {
	s.Pointer = 0
	if len(s.Memory) > 0 {
		s.Pointer = uint32(len(s.Memory) - 1)
	}
}
