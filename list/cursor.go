package list

// Cursor is a positional, mutating view into a single list.
//
// A fresh cursor starts at the ghost position, a conceptual slot between
// the list's tail and head; moving next from there lands on the head,
// moving prev lands on the tail, and walking off either end returns to the
// ghost, so the list behaves as circular with one gap. While at an element
// the cursor can read and write it, remove it, split the list at its
// position, or splice another list's nodes in around it.
//
// The cursor must be the only accessor of its list for as long as it is in
// use: mutating the list through any other path (or through a second
// cursor) invalidates the cursor's node pointer and index.
type Cursor[T any] struct {
	list  *List[T]
	cur   *node[T] // nil means the ghost position
	index int      // meaningful only when cur != nil
}

// Cursor returns a cursor over the list, positioned at the ghost.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}

// Index returns the zero-based position of the current element. It reports
// false at the ghost position.
func (c *Cursor[T]) Index() (int, bool) {
	if c.cur == nil {
		return 0, false
	}
	return c.index, true
}

// MoveNext moves the cursor one step toward the back. From the ghost it
// lands on the head; from the tail it lands on the ghost. Over an empty
// list the cursor stays at the ghost.
func (c *Cursor[T]) MoveNext() {
	switch {
	case c.cur != nil:
		c.cur = c.cur.next
		c.index++
	case c.list.length > 0:
		c.cur = c.list.head
		c.index = 0
	}
}

// MovePrev moves the cursor one step toward the front. From the ghost it
// lands on the tail; from the head it lands on the ghost. Over an empty
// list the cursor stays at the ghost.
func (c *Cursor[T]) MovePrev() {
	switch {
	case c.cur != nil:
		c.cur = c.cur.prev
		c.index--
	case c.list.length > 0:
		c.cur = c.list.tail
		c.index = c.list.length - 1
	}
}

// Current returns a pointer to the current element, or nil at the ghost.
func (c *Cursor[T]) Current() *T {
	if c.cur == nil {
		return nil
	}
	return &c.cur.elem
}

// PeekNext returns a pointer to the element one step toward the back
// without moving the cursor. At the ghost that is the head element. It
// returns nil if no such element exists.
func (c *Cursor[T]) PeekNext() *T {
	next := c.list.head
	if c.cur != nil {
		next = c.cur.next
	}
	if next == nil {
		return nil
	}
	return &next.elem
}

// PeekPrev returns a pointer to the element one step toward the front
// without moving the cursor. At the ghost that is the tail element. It
// returns nil if no such element exists.
func (c *Cursor[T]) PeekPrev() *T {
	prev := c.list.tail
	if c.cur != nil {
		prev = c.cur.prev
	}
	if prev == nil {
		return nil
	}
	return &prev.elem
}

// SplitBefore detaches every element before the cursor into a new list and
// returns it. The cursor's list keeps the current element through the tail,
// and the cursor stays on its element, now at index 0. At the ghost the
// entire list is detached and returned, leaving the original empty.
func (c *Cursor[T]) SplitBefore() *List[T] {
	if c.cur == nil {
		return c.takeAll()
	}
	out := New[T]()
	if prev := c.cur.prev; prev != nil {
		prev.next = nil
		c.cur.prev = nil
		out.head = c.list.head
		out.tail = prev
		out.length = c.index
	}
	c.list.head = c.cur
	c.list.length -= c.index
	c.index = 0
	return out
}

// SplitAfter detaches every element after the cursor into a new list and
// returns it. The cursor's list keeps the head through the current element,
// and the cursor stays on its element at its current index. At the ghost
// the entire list is detached and returned, leaving the original empty.
func (c *Cursor[T]) SplitAfter() *List[T] {
	if c.cur == nil {
		return c.takeAll()
	}
	out := New[T]()
	if next := c.cur.next; next != nil {
		next.prev = nil
		c.cur.next = nil
		out.head = next
		out.tail = c.list.tail
		out.length = c.list.length - c.index - 1
	}
	c.list.tail = c.cur
	c.list.length = c.index + 1
	return out
}

// takeAll moves every node of the cursor's list into a fresh list, leaving
// the original empty. Used by the ghost-position splits.
func (c *Cursor[T]) takeAll() *List[T] {
	out := &List[T]{head: c.list.head, tail: c.list.tail, length: c.list.length}
	c.list.head = nil
	c.list.tail = nil
	c.list.length = 0
	return out
}

// SpliceBefore moves every node of other into the list immediately before
// the cursor, in O(1): only the boundary links are re-pointed, the spliced
// nodes keep their internal links. other is left empty. At the ghost the
// nodes are appended at the back of the list (or adopted wholesale if the
// list is empty); in either ghost case the cursor stays at the ghost.
// Splicing an empty list, a nil list, or the cursor's own list is a no-op.
func (c *Cursor[T]) SpliceBefore(other *List[T]) {
	if other == nil || other.length == 0 || other == c.list {
		return
	}
	switch {
	case c.cur != nil:
		if prev := c.cur.prev; prev != nil {
			prev.next = other.head
			other.head.prev = prev
		} else {
			c.list.head = other.head
		}
		c.cur.prev = other.tail
		other.tail.next = c.cur
		c.list.length += other.length
		c.index += other.length
	case c.list.tail != nil:
		// Ghost over a non-empty list: append at the back.
		c.list.tail.next = other.head
		other.head.prev = c.list.tail
		c.list.tail = other.tail
		c.list.length += other.length
	default:
		// Both lists empty except other: adopt its chain wholesale.
		c.list.head = other.head
		c.list.tail = other.tail
		c.list.length = other.length
	}
	other.head = nil
	other.tail = nil
	other.length = 0
}

// SpliceAfter moves every node of other into the list immediately after
// the cursor, in O(1). other is left empty. At the ghost the nodes are
// prepended at the front of the list (or adopted wholesale if the list is
// empty); in either ghost case the cursor stays at the ghost. Splicing an
// empty list, a nil list, or the cursor's own list is a no-op.
func (c *Cursor[T]) SpliceAfter(other *List[T]) {
	if other == nil || other.length == 0 || other == c.list {
		return
	}
	switch {
	case c.cur != nil:
		if next := c.cur.next; next != nil {
			next.prev = other.tail
			other.tail.next = next
		} else {
			c.list.tail = other.tail
		}
		c.cur.next = other.head
		other.head.prev = c.cur
		c.list.length += other.length
	case c.list.head != nil:
		// Ghost over a non-empty list: prepend at the front.
		c.list.head.prev = other.tail
		other.tail.next = c.list.head
		c.list.head = other.head
		c.list.length += other.length
	default:
		c.list.head = other.head
		c.list.tail = other.tail
		c.list.length = other.length
	}
	other.head = nil
	other.tail = nil
	other.length = 0
}

// RemoveCurrent detaches and returns the current element, relinking its
// neighbors to each other. The cursor moves to what was the element's
// successor, keeping the same index, or to the ghost if the element was the
// tail. It reports false at the ghost.
func (c *Cursor[T]) RemoveCurrent() (T, bool) {
	var zero T
	if c.cur == nil {
		return zero, false
	}
	n := c.cur
	succ := n.next
	if n.prev != nil {
		n.prev.next = succ
	} else {
		c.list.head = succ
	}
	if succ != nil {
		succ.prev = n.prev
	} else {
		c.list.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	c.cur = succ
	c.list.length--
	return n.elem, true
}
