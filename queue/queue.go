// Package queue implements a singly linked first-in-first-out queue.
package queue

type (
	// Queue is a FIFO queue backed by a singly linked chain with a tail
	// pointer, so both enqueue and dequeue are O(1).
	Queue[T any] struct {
		head   *node[T]
		tail   *node[T]
		length int
	}

	// node represents an element in the queue.
	node[T any] struct {
		elem T
		next *node[T]
	}
)

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push adds a value to the back of the queue.
func (q *Queue[T]) Push(elem T) {
	n := &node[T]{elem: elem}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
}

// Pop removes and returns the value at the front of the queue.
// It reports false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == nil {
		return zero, false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.length--
	return n.elem, true
}

// Peek returns a pointer to the front element, or nil if the queue is
// empty. The pointer may be used to mutate the element in place.
func (q *Queue[T]) Peek() *T {
	if q.head == nil {
		return nil
	}
	return &q.head.elem
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.length
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.length == 0
}

// Clear removes all elements from the queue, unlinking the chain node by
// node.
func (q *Queue[T]) Clear() {
	for {
		if _, ok := q.Pop(); !ok {
			return
		}
	}
}

// Iter is a forward iterator over the elements of a queue.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns an iterator over the queue's elements, front to back.
func (q *Queue[T]) Iter() Iter[T] {
	return Iter[T]{next: q.head}
}

// Next returns the next element, reporting false once the iterator is
// exhausted.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.next == nil {
		return zero, false
	}
	elem := it.next.elem
	it.next = it.next.next
	return elem, true
}

// Drain is a consuming iterator: every element it yields is removed from
// the underlying queue.
type Drain[T any] struct {
	queue *Queue[T]
}

// Drain returns a consuming iterator that empties the queue front to back.
func (q *Queue[T]) Drain() Drain[T] {
	return Drain[T]{queue: q}
}

// Next removes and returns the front element, reporting false when the
// queue is empty.
func (d Drain[T]) Next() (T, bool) {
	return d.queue.Pop()
}
