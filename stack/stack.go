// Package stack implements a singly linked last-in-first-out stack.
package stack

type (
	// Stack is a LIFO stack backed by a singly linked chain of nodes.
	Stack[T any] struct {
		head   *node[T]
		length int
	}

	// node represents an element in the stack.
	node[T any] struct {
		elem T
		next *node[T]
	}
)

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds a value to the top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.head = &node[T]{elem: elem, next: s.head}
	s.length++
}

// Pop removes and returns the value at the top of the stack.
// It reports false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.head == nil {
		return zero, false
	}
	n := s.head
	s.head = n.next
	n.next = nil
	s.length--
	return n.elem, true
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return s.length
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.length == 0
}

// Clear removes all elements from the stack, unlinking the chain node by
// node rather than dropping it in one piece.
func (s *Stack[T]) Clear() {
	for {
		if _, ok := s.Pop(); !ok {
			return
		}
	}
}
