package list

// Iter is a double-ended iterator over the elements of a list.
//
// Next consumes from the front, NextBack from the back; both draw down the
// same remaining count, so the two ends never cross or yield an element
// twice under interleaved consumption. The list must not be mutated while
// an Iter over it is in use.
type Iter[T any] struct {
	front  *node[T]
	back   *node[T]
	length int
}

// Iter returns a double-ended iterator over the list's elements.
func (l *List[T]) Iter() Iter[T] {
	return Iter[T]{front: l.head, back: l.tail, length: l.length}
}

// Next returns the next element from the front. It reports false once the
// iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.length == 0 {
		return zero, false
	}
	elem := it.front.elem
	it.front = it.front.next
	it.length--
	return elem, true
}

// NextBack returns the next element from the back. It reports false once
// the iterator is exhausted.
func (it *Iter[T]) NextBack() (T, bool) {
	var zero T
	if it.length == 0 {
		return zero, false
	}
	elem := it.back.elem
	it.back = it.back.prev
	it.length--
	return elem, true
}

// Len returns the number of elements the iterator has yet to yield.
func (it *Iter[T]) Len() int {
	return it.length
}

// IterMut is like Iter but yields pointers to the element slots, allowing
// elements to be mutated in place during traversal. Only one IterMut may be
// live at a time, and no other access to the list may happen while it is.
type IterMut[T any] struct {
	front  *node[T]
	back   *node[T]
	length int
}

// IterMut returns a double-ended iterator yielding pointers to the list's
// element slots.
func (l *List[T]) IterMut() IterMut[T] {
	return IterMut[T]{front: l.head, back: l.tail, length: l.length}
}

// Next returns a pointer to the next element slot from the front, or nil
// once the iterator is exhausted.
func (it *IterMut[T]) Next() *T {
	if it.length == 0 {
		return nil
	}
	elem := &it.front.elem
	it.front = it.front.next
	it.length--
	return elem
}

// NextBack returns a pointer to the next element slot from the back, or nil
// once the iterator is exhausted.
func (it *IterMut[T]) NextBack() *T {
	if it.length == 0 {
		return nil
	}
	elem := &it.back.elem
	it.back = it.back.prev
	it.length--
	return elem
}

// Len returns the number of elements the iterator has yet to yield.
func (it *IterMut[T]) Len() int {
	return it.length
}

// Drain is a consuming double-ended iterator: every element it yields is
// removed from the underlying list, which ends up empty once the drain is
// exhausted.
type Drain[T any] struct {
	list *List[T]
}

// Drain returns a consuming iterator that empties the list from either end.
func (l *List[T]) Drain() Drain[T] {
	return Drain[T]{list: l}
}

// Next removes and returns the front element, reporting false when the list
// is empty.
func (d Drain[T]) Next() (T, bool) {
	return d.list.PopFront()
}

// NextBack removes and returns the back element, reporting false when the
// list is empty.
func (d Drain[T]) NextBack() (T, bool) {
	return d.list.PopBack()
}

// Len returns the number of elements left to drain.
func (d Drain[T]) Len() int {
	return d.list.Len()
}
