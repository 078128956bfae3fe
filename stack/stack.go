package stack

// Stack is a LIFO backed by a slice. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes the top element. ok is false if the stack is empty.
func (s *Stack[T]) Pop() (value T, ok bool) {
	if len(s.items) <= 0 {
		return value, false
	}

	value = s.items[len(s.items)-1]
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]

	return value, true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}
