// Package list implements a doubly linked list with a positional cursor.
//
// The list owns its nodes through the head pointer; prev/next fields and the
// tail pointer are plain references into that chain. A Cursor obtained from
// a list can move across a conceptual "ghost" position between the tail and
// the head, mutate elements in place, and perform structural surgery:
// removing the current node, splitting the list in two, or splicing the
// nodes of another list in without copying elements.
package list

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"strings"
)

type (
	// List represents a doubly linked list.
	List[T any] struct {
		head   *node[T]
		tail   *node[T]
		length int
	}

	// node represents an element in the doubly linked list.
	node[T any] struct {
		elem T
		prev *node[T]
		next *node[T]
	}
)

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From creates a list holding the given elements in order.
func From[T any](elems ...T) *List[T] {
	l := New[T]()
	l.Extend(elems...)
	return l
}

// PushFront adds a value to the front (head) of the list.
func (l *List[T]) PushFront(elem T) {
	n := &node[T]{elem: elem}
	if l.length == 0 {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.length++
}

// PushBack adds a value to the back (tail) of the list.
func (l *List[T]) PushBack(elem T) {
	n := &node[T]{elem: elem}
	if l.length == 0 {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

// PopFront removes and returns the value at the front of the list.
// It reports false if the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.length == 0 {
		return zero, false
	}
	n := l.head
	if l.length == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.head = n.next
		l.head.prev = nil
	}
	n.next = nil
	l.length--
	return n.elem, true
}

// PopBack removes and returns the value at the back of the list.
// It reports false if the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	var zero T
	if l.length == 0 {
		return zero, false
	}
	n := l.tail
	if l.length == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.tail = n.prev
		l.tail.next = nil
	}
	n.prev = nil
	l.length--
	return n.elem, true
}

// Front returns a pointer to the first element, or nil if the list is empty.
// The pointer stays valid until the element is removed from the list, and
// may be used to mutate the element in place.
func (l *List[T]) Front() *T {
	if l.length == 0 {
		return nil
	}
	return &l.head.elem
}

// Back returns a pointer to the last element, or nil if the list is empty.
func (l *List[T]) Back() *T {
	if l.length == 0 {
		return nil
	}
	return &l.tail.elem
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Clear removes all elements from the list, unlinking every node front to
// back so no dropped node keeps another reachable.
func (l *List[T]) Clear() {
	for {
		if _, ok := l.PopFront(); !ok {
			return
		}
	}
}

// Clone returns a new list holding copies of the elements in order.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	it := l.Iter()
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		out.PushBack(elem)
	}
	return out
}

// Extend appends the given elements at the back of the list in order.
func (l *List[T]) Extend(elems ...T) {
	for _, elem := range elems {
		l.PushBack(elem)
	}
}

// String renders the list as a bracketed element list, e.g. "[1, 2, 3]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	it := l.Iter()
	for i := 0; ; i++ {
		elem, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", elem)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Iter(), b.Iter()
	for {
		x, ok := ia.Next()
		if !ok {
			return true
		}
		y, _ := ib.Next()
		if !eq(x, y) {
			return false
		}
	}
}

// Compare compares a and b lexicographically, element by element, with
// length as the final tiebreak. Elements are compared with the raw < and >
// operators, so floating-point NaN falls through IEEE semantics untouched:
// a NaN ranks neither below nor above anything and compares as equal-rank.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return +1
		default:
			return 0
		}
	})
}

// CompareFunc is like Compare but compares elements with compare.
func CompareFunc[T, U any](a *List[T], b *List[U], compare func(T, U) int) int {
	ia, ib := a.Iter(), b.Iter()
	for {
		x, okx := ia.Next()
		y, oky := ib.Next()
		switch {
		case !okx && !oky:
			return 0
		case !okx:
			return -1
		case !oky:
			return +1
		}
		if c := compare(x, y); c != 0 {
			return c
		}
	}
}

// Hash returns a seed-dependent hash of the list, mixing the length first
// and then every element in order. Lists that are Equal hash to the same
// value for the same seed, so lists can key a hash table through it.
func Hash[T comparable](seed maphash.Seed, l *List[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, l.Len())
	it := l.Iter()
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		maphash.WriteComparable(&h, elem)
	}
	return h.Sum64()
}
