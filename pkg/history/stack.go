package history

// A Stack is a LIFO stack with a fixed capacity.
//
// Pushing onto a full Stack discards its oldest element.
type Stack[T any] struct {
	items []T

	// head is the index of the oldest element.
	head int
	size int
}

// NewStack returns an empty Stack holding at most capacity elements. A
// capacity below 1 is treated as 1.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Stack[T]{items: make([]T, capacity)}
}

func (s *Stack[T]) Len() int {
	return s.size
}

func (s *Stack[T]) Cap() int {
	return len(s.items)
}

// Push adds item to the top of the stack and reports whether the oldest
// element had to be evicted to make room.
func (s *Stack[T]) Push(item T) bool {
	if s.size == len(s.items) {
		s.items[s.head] = item
		s.head = (s.head + 1) % len(s.items)
		return true
	}

	s.items[(s.head+s.size)%len(s.items)] = item
	s.size++
	return false
}

// Pop removes and returns the most recently pushed element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.size == 0 {
		return zero, false
	}

	i := (s.head + s.size - 1) % len(s.items)
	item := s.items[i]
	s.items[i] = zero
	s.size--

	return item, true
}

// Peek returns the most recently pushed element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.size == 0 {
		var zero T
		return zero, false
	}
	return s.items[(s.head+s.size-1)%len(s.items)], true
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.head = 0
	s.size = 0
}

// Items returns the elements from oldest to newest.
func (s *Stack[T]) Items() []T {
	out := make([]T, s.size)
	for i := range out {
		out[i] = s.items[(s.head+i)%len(s.items)]
	}
	return out
}
