package vm

// Stack is the machine's call stack placeholder. No opcode in the
// instruction set pushes or pops it; it exists for parity with the
// memory dump projection.
type Stack struct {
	Data []int64
}

func (s *Stack) Push(value int64) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value int64, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Peek() (value int64, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
