package navigation

// Stack is an ordered list of entries where index 0 sits closest to the root
// and the last entry is the visible top.
type Stack[T any] struct {
	entries []T
}

// NewStack creates a new empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		entries: make([]T, 0),
	}
}

// Push adds a new entry on top of the stack.
func (s *Stack[T]) Push(entry T) {
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry.
// The second result is false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.entries) == 0 {
		return zero, false
	}
	entry := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return entry, true
}

// Peek returns the top entry without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.entries) == 0 {
		return zero, false
	}
	return s.entries[len(s.entries)-1], true
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// Clear removes all entries and returns them in stack order.
func (s *Stack[T]) Clear() []T {
	removed := s.Entries()
	clear(s.entries)
	s.entries = s.entries[:0]
	return removed
}

// Entries returns a copy of the entries, root side first.
func (s *Stack[T]) Entries() []T {
	out := make([]T, len(s.entries))
	copy(out, s.entries)
	return out
}

// At returns the entry at index i, counted from the root side.
func (s *Stack[T]) At(i int) T {
	return s.entries[i]
}
