package list

// Stack is a slice-backed LIFO stack. The zero value is an empty stack
// ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack creates a stack containing the given values, bottom first.
func NewStack[T any](values ...T) *Stack[T] {
	return &Stack[T]{items: append([]T(nil), values...)}
}

// Len returns the number of stacked values.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value. The second return is false on an
// empty stack.
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Peek returns the top value without removing it. The second return is
// false on an empty stack.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}
