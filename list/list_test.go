package list

import (
	"hash/maphash"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// collect drains an iterator into a slice, front to back.
func collect[T any](l *List[T]) []T {
	out := []T{}
	it := l.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// collectBack gathers the elements back to front.
func collectBack[T any](l *List[T]) []T {
	out := []T{}
	it := l.Iter()
	for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
		out = append(out, v)
	}
	return out
}

// checkLinks walks the chain and verifies back-link symmetry, the tail
// pointer and the stored length. Plain pointer comparisons on purpose: the
// chain is cyclic through prev links and must not be deep-compared.
func checkLinks[T any](t *testing.T, l *List[T]) {
	t.Helper()
	count := 0
	var prev *node[T]
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.prev != prev {
			t.Fatalf("back-link broken at index %d", count)
		}
		prev = cur
		count++
	}
	if prev != l.tail {
		t.Fatalf("tail pointer does not match last node")
	}
	if count != l.length {
		t.Fatalf("stored length %d does not match node count %d", l.length, count)
	}
}

func TestBasicFront(t *testing.T) {
	assert := require.New(t)
	l := New[int]()

	assert.Equal(0, l.Len())
	_, ok := l.PopFront()
	assert.False(ok)
	assert.Equal(0, l.Len())

	l.PushFront(10)
	assert.Equal(1, l.Len())
	v, ok := l.PopFront()
	assert.True(ok)
	assert.Equal(10, v)
	assert.Equal(0, l.Len())
	_, ok = l.PopFront()
	assert.False(ok)

	l.PushFront(10)
	l.PushFront(20)
	l.PushFront(30)
	assert.Equal(3, l.Len())
	v, _ = l.PopFront()
	assert.Equal(30, v)
	l.PushFront(40)
	v, _ = l.PopFront()
	assert.Equal(40, v)
	v, _ = l.PopFront()
	assert.Equal(20, v)
	v, _ = l.PopFront()
	assert.Equal(10, v)
	assert.Equal(0, l.Len())
	_, ok = l.PopFront()
	assert.False(ok)
	checkLinks(t, l)
}

func TestBasics(t *testing.T) {
	assert := require.New(t)
	m := New[int]()
	_, ok := m.PopFront()
	assert.False(ok)
	_, ok = m.PopBack()
	assert.False(ok)

	m.PushFront(1)
	v, _ := m.PopFront()
	assert.Equal(1, v)

	m.PushBack(2)
	m.PushBack(3)
	assert.Equal(2, m.Len())
	v, _ = m.PopFront()
	assert.Equal(2, v)
	v, _ = m.PopFront()
	assert.Equal(3, v)
	assert.Equal(0, m.Len())
	assert.True(m.Empty())

	n := New[int]()
	n.PushFront(2)
	n.PushFront(3)
	assert.Equal(3, *n.Front())
	*n.Front() = 0
	assert.Equal(2, *n.Back())
	*n.Back() = 1
	v, _ = n.PopFront()
	assert.Equal(0, v)
	v, _ = n.PopFront()
	assert.Equal(1, v)
	checkLinks(t, n)
}

func TestFrontBackEmpty(t *testing.T) {
	assert := require.New(t)
	l := New[string]()
	assert.Nil(l.Front())
	assert.Nil(l.Back())
}

func TestFIFOAndLIFO(t *testing.T) {
	assert := require.New(t)

	// push_back/pop_front behaves as a FIFO queue.
	q := New[int]()
	q.PushBack(1)
	q.PushBack(2)
	q.PushBack(3)
	assert.Equal([]int{1, 2, 3}, collect(q))
	v, _ := q.PopFront()
	assert.Equal(1, v)
	v, _ = q.PopFront()
	assert.Equal(2, v)
	v, _ = q.PopFront()
	assert.Equal(3, v)
	_, ok := q.PopFront()
	assert.False(ok)

	// push_front/pop_front behaves as a LIFO stack.
	s := New[int]()
	s.PushFront(1)
	s.PushFront(2)
	s.PushFront(3)
	v, _ = s.PopFront()
	assert.Equal(3, v)
	v, _ = s.PopFront()
	assert.Equal(2, v)
	v, _ = s.PopFront()
	assert.Equal(1, v)
}

func TestClear(t *testing.T) {
	assert := require.New(t)
	l := From(1, 2, 3, 4, 5)
	l.Clear()
	assert.True(l.Empty())
	assert.Nil(l.Front())
	assert.Nil(l.Back())
	checkLinks(t, l)

	// A cleared list is still usable.
	l.PushBack(7)
	assert.Equal([]int{7}, collect(l))
}

func TestRoundTrip(t *testing.T) {
	assert := require.New(t)
	elems := []string{"just", "one", "test", "more"}
	l := From(elems...)
	assert.Equal(elems, collect(l))

	rebuilt := From(collect(l)...)
	assert.True(Equal(l, rebuilt))
}

func TestCloneAndExtend(t *testing.T) {
	assert := require.New(t)
	l := From(1, 2, 3)
	c := l.Clone()
	assert.True(Equal(l, c))

	c.PushBack(4)
	assert.False(Equal(l, c))
	assert.Equal([]int{1, 2, 3}, collect(l))

	l.Extend(4, 5)
	assert.Equal([]int{1, 2, 3, 4, 5}, collect(l))
	checkLinks(t, l)
}

func TestEqual(t *testing.T) {
	assert := require.New(t)
	n := New[int]()
	m := New[int]()
	assert.True(Equal(n, m))

	n.PushFront(1)
	assert.False(Equal(n, m))
	m.PushBack(1)
	assert.True(Equal(n, m))

	assert.False(Equal(From(2, 3, 4), From(1, 2, 3)))
	assert.True(EqualFunc(From("A", "b"), From("a", "B"), func(x, y string) bool {
		return len(x) == len(y)
	}))
}

func TestCompare(t *testing.T) {
	assert := require.New(t)
	n := New[int]()
	m := From(1, 2, 3)
	assert.Equal(-1, Compare(n, m))
	assert.Equal(+1, Compare(m, n))
	assert.Equal(0, Compare(n, n))
	assert.Equal(0, Compare(m, m.Clone()))

	// Lexicographic before length.
	assert.Equal(-1, Compare(From(1, 2), From(1, 2, 3)))
	assert.Equal(+1, Compare(From(2), From(1, 2, 3)))
	assert.Equal(-1, Compare(From(1, 2, 3), From(1, 3)))
}

func TestCompareNaN(t *testing.T) {
	assert := require.New(t)
	nan := math.NaN()

	// NaN is neither below nor above anything, so it ranks equal and the
	// comparison falls through to the remaining elements and the lengths.
	assert.Equal(0, Compare(From(nan), From(nan)))
	assert.Equal(0, Compare(From(nan), From(1.0)))
	assert.Equal(0, Compare(From(1.0, 2.0, nan), From(1.0, 2.0, 3.0)))
	assert.Equal(+1, Compare(From(1.0, 2.0, 4.0, 2.0), From(1.0)))
}

func TestHash(t *testing.T) {
	assert := require.New(t)
	seed := maphash.MakeSeed()

	l1 := From(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	l2 := l1.Clone()
	l3 := From(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	assert.Equal(Hash(seed, l1), Hash(seed, l2))
	assert.NotEqual(Hash(seed, l1), Hash(seed, l3))

	// Length is mixed in, so a shorter prefix does not collide trivially.
	assert.NotEqual(Hash(seed, From(0, 1)), Hash(seed, From(0, 1, 2)))

	// Lists can key a map through their hash.
	m := map[uint64]string{}
	m[Hash(seed, l1)] = "l1"
	m[Hash(seed, l3)] = "l3"
	assert.Len(m, 2)
	assert.Equal("l1", m[Hash(seed, l2)])
}

func TestString(t *testing.T) {
	assert := require.New(t)
	assert.Equal("[]", New[int]().String())
	assert.Equal("[1, 2, 3]", From(1, 2, 3).String())
	assert.Equal("[just, one, test, more]", From("just", "one", "test", "more").String())
}

func TestBackLinkSymmetry(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			l.PushBack(i)
		} else {
			l.PushFront(i)
		}
		checkLinks(t, l)
	}
	for !l.Empty() {
		l.PopBack()
		checkLinks(t, l)
	}
}
