// Package deque implements an unbounded doubly linked double-ended queue.
package deque

type (
	// Deque is a double-ended queue backed by a doubly linked chain, with
	// O(1) push, pop and peek at both ends.
	Deque[T any] struct {
		head   *node[T]
		tail   *node[T]
		length int
	}

	// node represents an element in the deque.
	node[T any] struct {
		elem T
		prev *node[T]
		next *node[T]
	}
)

// New creates an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushFront adds a value to the front of the deque.
func (d *Deque[T]) PushFront(elem T) {
	n := &node[T]{elem: elem}
	if d.length == 0 {
		d.head = n
		d.tail = n
	} else {
		n.next = d.head
		d.head.prev = n
		d.head = n
	}
	d.length++
}

// PushBack adds a value to the back of the deque.
func (d *Deque[T]) PushBack(elem T) {
	n := &node[T]{elem: elem}
	if d.length == 0 {
		d.head = n
		d.tail = n
	} else {
		n.prev = d.tail
		d.tail.next = n
		d.tail = n
	}
	d.length++
}

// PopFront removes and returns the value at the front of the deque.
// It reports false if the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	n := d.head
	if d.length == 1 {
		d.head = nil
		d.tail = nil
	} else {
		d.head = n.next
		d.head.prev = nil
	}
	n.next = nil
	d.length--
	return n.elem, true
}

// PopBack removes and returns the value at the back of the deque.
// It reports false if the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	n := d.tail
	if d.length == 1 {
		d.head = nil
		d.tail = nil
	} else {
		d.tail = n.prev
		d.tail.next = nil
	}
	n.prev = nil
	d.length--
	return n.elem, true
}

// PeekFront returns a pointer to the front element, or nil if the deque is
// empty. The pointer may be used to mutate the element in place.
func (d *Deque[T]) PeekFront() *T {
	if d.length == 0 {
		return nil
	}
	return &d.head.elem
}

// PeekBack returns a pointer to the back element, or nil if the deque is
// empty.
func (d *Deque[T]) PeekBack() *T {
	if d.length == 0 {
		return nil
	}
	return &d.tail.elem
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.length
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.length == 0
}

// Clear removes all elements from the deque, unlinking the chain front to
// back.
func (d *Deque[T]) Clear() {
	for {
		if _, ok := d.PopFront(); !ok {
			return
		}
	}
}
