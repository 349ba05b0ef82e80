package datastructures

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkLinks verifies the head/tail/length bookkeeping and that every link
// has a matching back link.
func checkLinks[T comparable](l *DoublyLinkedList[T]) error {
	if (l.length == 0) != (l.head == nil) || (l.head == nil) != (l.tail == nil) {
		return errors.Newf("length %d inconsistent with head %p tail %p", l.length, l.head, l.tail)
	}
	if l.head != nil && l.head.prev != nil {
		return errors.New("head has a predecessor")
	}
	if l.tail != nil && l.tail.next != nil {
		return errors.New("tail has a successor")
	}

	forward := 0
	var last *Node[T]
	for n := l.head; n != nil; n = n.next {
		if n.next != nil && n.next.prev != n {
			return errors.Newf("node %d: next.prev does not point back", forward)
		}
		if n.prev != nil && n.prev.next != n {
			return errors.Newf("node %d: prev.next does not point back", forward)
		}
		last = n
		forward++
		if forward > l.length {
			return errors.Newf("forward walk exceeds length %d", l.length)
		}
	}
	if forward != l.length || last != l.tail {
		return errors.Newf("forward walk saw %d nodes, length %d", forward, l.length)
	}

	backward := 0
	for n := l.tail; n != nil; n = n.prev {
		backward++
		if backward > l.length {
			return errors.Newf("backward walk exceeds length %d", l.length)
		}
	}
	if backward != l.length {
		return errors.Newf("backward walk saw %d nodes, length %d", backward, l.length)
	}
	return nil
}

func newIntList(values ...int) *DoublyLinkedList[int] {
	l := NewList[int]()
	for _, v := range values {
		l.AddLast(v)
	}
	return l
}

func TestListAdd(t *testing.T) {
	t.Run("AddLastThenFirst", func(t *testing.T) {
		l := NewList[int]()
		l.AddLast(1)
		l.AddLast(2)
		l.AddFirst(0)

		require.NoError(t, checkLinks(l))
		assert.Equal(t, 3, l.Len())
		assert.Equal(t, []int{0, 1, 2}, l.Values())

		v, err := l.RemoveLast()
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, "[0, 1]", l.String())
		require.NoError(t, checkLinks(l))
	})

	t.Run("AddIsAddLast", func(t *testing.T) {
		l := NewList[string]()
		l.Add("a")
		l.Add("b")
		assert.Equal(t, "[a, b]", l.String())
	})

	t.Run("AddFirstSingle", func(t *testing.T) {
		l := NewList[int]()
		l.AddFirst(5)
		require.NoError(t, checkLinks(l))
		assert.Same(t, l.Front(), l.Back())
	})
}

func TestListPeek(t *testing.T) {
	l := NewList[int]()

	_, err := l.PeekFirst()
	assert.True(t, errors.Is(err, ErrEmptyCollection))
	_, err = l.PeekLast()
	assert.True(t, errors.Is(err, ErrEmptyCollection))

	l.AddLast(1)
	l.AddLast(2)
	first, err := l.PeekFirst()
	require.NoError(t, err)
	last, err := l.PeekLast()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, last)
	assert.Equal(t, 2, l.Len(), "peek must not remove")
}

func TestListRemoveTerminals(t *testing.T) {
	l := newIntList(1, 2, 3)

	v, err := l.RemoveFirst()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, checkLinks(l))

	v, err = l.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	require.NoError(t, checkLinks(l))

	v, err = l.RemoveFirst()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, checkLinks(l))
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	_, err = l.RemoveFirst()
	assert.True(t, errors.Is(err, ErrEmptyCollection))
	_, err = l.RemoveLast()
	assert.True(t, errors.Is(err, ErrEmptyCollection))
}

func TestListRemovedNodeIsReleased(t *testing.T) {
	l := newIntList(1, 2, 3)
	head, middle, tail := l.Front(), l.Front().Next(), l.Back()

	assert.True(t, l.Remove(2))
	assert.Nil(t, middle.Next())
	assert.Nil(t, middle.Prev())
	assert.Equal(t, 0, middle.Value)

	_, err := l.RemoveFirst()
	require.NoError(t, err)
	assert.Nil(t, head.Next())
	assert.Equal(t, 0, head.Value)

	_, err = l.RemoveLast()
	require.NoError(t, err)
	assert.Nil(t, tail.Prev())
}

func TestListRemoveNode(t *testing.T) {
	l := newIntList(1, 2, 3, 4)

	_, err := l.removeNode(nil)
	assert.True(t, errors.Is(err, ErrNullReference))
	assert.Equal(t, 4, l.Len())

	v, err := l.removeNode(l.Front().Next())
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, checkLinks(l))

	v, err = l.removeNode(l.Front())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = l.removeNode(l.Back())
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, []int{3}, l.Values())
	require.NoError(t, checkLinks(l))
}

func TestListRemoveValue(t *testing.T) {
	l := newIntList(1, 2, 3, 2)

	assert.True(t, l.Remove(2))
	assert.Equal(t, []int{1, 3, 2}, l.Values())
	require.NoError(t, checkLinks(l))

	assert.False(t, l.Remove(9))
	assert.Equal(t, 3, l.Len())

	assert.True(t, l.Remove(1))
	assert.True(t, l.Remove(2))
	assert.Equal(t, []int{3}, l.Values())
	require.NoError(t, checkLinks(l))
}

func TestListRemoveValueTerminals(t *testing.T) {
	l := newIntList(1, 2, 3)
	head, tail := l.Front(), l.Back()

	assert.True(t, l.Remove(1))
	assert.Equal(t, 2, l.Front().Value)
	assert.Nil(t, head.Next(), "removed head is released")
	require.NoError(t, checkLinks(l))

	assert.True(t, l.Remove(3))
	assert.Equal(t, 2, l.Back().Value)
	assert.Nil(t, tail.Prev(), "removed tail is released")
	require.NoError(t, checkLinks(l))

	assert.True(t, l.Remove(2))
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
	require.NoError(t, checkLinks(l))
}

func TestListRemoveAt(t *testing.T) {
	l := newIntList(10, 20, 30, 40)

	for _, index := range []int{-1, 4} {
		_, err := l.RemoveAt(index)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "index %d", index)
	}

	v, err := l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 30, v)
	assert.Equal(t, []int{10, 20, 40}, l.Values())
	require.NoError(t, checkLinks(l))

	v, err = l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 40, v)
	v, err = l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, []int{20}, l.Values())
	require.NoError(t, checkLinks(l))

	_, err = NewList[int]().RemoveAt(0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestListSearch(t *testing.T) {
	l := newIntList(3, 1, 3)
	assert.Equal(t, 0, l.IndexOf(3))
	assert.Equal(t, 1, l.IndexOf(1))
	assert.Equal(t, -1, l.IndexOf(7))
	assert.True(t, l.Contains(1))
	assert.False(t, l.Contains(7))

	var none *string
	s := "x"
	pl := NewList[*string]()
	pl.AddLast(&s)
	assert.Equal(t, -1, pl.IndexOf(none))
	pl.AddLast(none)
	assert.Equal(t, 1, pl.IndexOf(none))
	assert.True(t, pl.Contains(nil))
}

func TestListClear(t *testing.T) {
	l := newIntList(1, 2, 3)
	nodes := []*Node[int]{l.Front(), l.Front().Next(), l.Back()}

	l.Clear()
	require.NoError(t, checkLinks(l))
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "[]", l.String())
	for _, n := range nodes {
		assert.Nil(t, n.Next())
		assert.Nil(t, n.Prev())
		assert.Equal(t, 0, n.Value)
	}

	l.AddLast(4)
	assert.Equal(t, "[4]", l.String())
	require.NoError(t, checkLinks(l))
}

func TestListClone(t *testing.T) {
	l := newIntList(1, 2)
	c := l.Clone()
	require.NoError(t, checkLinks(c))
	assert.Equal(t, l.Values(), c.Values())

	c.AddFirst(0)
	_, err := l.RemoveLast()
	require.NoError(t, err)

	assert.Equal(t, "[1]", l.String())
	assert.Equal(t, "[0, 1, 2]", c.String())
}

func TestListIterator(t *testing.T) {
	l := NewList[int]()
	l.AddLast(1)
	l.AddLast(2)
	l.AddFirst(0)

	it := l.Iterator()
	var got []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2}, got)

	_, err := it.Next()
	assert.True(t, errors.Is(err, ErrIteratorExhausted))
	assert.False(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = NewList[int]().Iterator().Next()
	assert.True(t, errors.Is(err, ErrIteratorExhausted))
}

func TestListRangeFunc(t *testing.T) {
	l := newIntList(1, 2, 3)

	var forward [][2]int
	for i, v := range l.All() {
		forward = append(forward, [2]int{i, v})
	}
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, forward)

	var backward [][2]int
	for i, v := range l.Backward() {
		backward = append(backward, [2]int{i, v})
	}
	assert.Equal(t, [][2]int{{2, 3}, {1, 2}, {0, 1}}, backward)

	var firstTwo []int
	for _, v := range l.All() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	assert.Equal(t, []int{1, 2}, firstTwo)
}

func TestListNodeNavigation(t *testing.T) {
	l := newIntList(1, 2, 3)

	var values []int
	for n := l.Back(); n != nil; n = n.Prev() {
		values = append(values, n.Value)
	}
	assert.Equal(t, []int{3, 2, 1}, values)
}
