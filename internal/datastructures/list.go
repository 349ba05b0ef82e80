package datastructures

import (
	"iter"

	"github.com/cockroachdb/errors"
)

type (
	// DoublyLinkedList is a list of nodes linked in both directions, with
	// O(1) access to both ends.
	DoublyLinkedList[T comparable] struct {
		head   *Node[T]
		tail   *Node[T]
		length int
	}

	// Node is an element of a DoublyLinkedList. A node is reachable through
	// its predecessor's next link; prev is only used to walk backwards and
	// to unlink in O(1).
	Node[T comparable] struct {
		Value T
		prev  *Node[T]
		next  *Node[T]
	}
)

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// release drops the node's value and links once it has left the list.
func (n *Node[T]) release() {
	var zeroValue T
	n.Value = zeroValue
	n.prev = nil
	n.next = nil
}

// NewList creates an empty list.
func NewList[T comparable]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// Add appends value at the tail. It is the same as AddLast.
func (l *DoublyLinkedList[T]) Add(value T) {
	l.AddLast(value)
}

// AddFirst inserts value at the head of the list.
func (l *DoublyLinkedList[T]) AddFirst(value T) {
	n := &Node[T]{Value: value}
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

// AddLast inserts value at the tail of the list.
func (l *DoublyLinkedList[T]) AddLast(value T) {
	n := &Node[T]{Value: value}
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

// PeekFirst returns the head value without removing it.
func (l *DoublyLinkedList[T]) PeekFirst() (T, error) {
	if l.length == 0 {
		var zeroValue T
		return zeroValue, errors.Wrap(ErrEmptyCollection, "peek first")
	}
	return l.head.Value, nil
}

// PeekLast returns the tail value without removing it.
func (l *DoublyLinkedList[T]) PeekLast() (T, error) {
	if l.length == 0 {
		var zeroValue T
		return zeroValue, errors.Wrap(ErrEmptyCollection, "peek last")
	}
	return l.tail.Value, nil
}

// RemoveFirst removes and returns the head value.
func (l *DoublyLinkedList[T]) RemoveFirst() (T, error) {
	if l.length == 0 {
		var zeroValue T
		return zeroValue, errors.Wrap(ErrEmptyCollection, "remove first")
	}
	return l.unlink(l.head), nil
}

// RemoveLast removes and returns the tail value.
func (l *DoublyLinkedList[T]) RemoveLast() (T, error) {
	if l.length == 0 {
		var zeroValue T
		return zeroValue, errors.Wrap(ErrEmptyCollection, "remove last")
	}
	return l.unlink(l.tail), nil
}

// removeNode unlinks n, which must belong to l, and returns its value.
func (l *DoublyLinkedList[T]) removeNode(n *Node[T]) (T, error) {
	if n == nil {
		var zeroValue T
		return zeroValue, errors.Wrap(ErrNullReference, "node cannot be nil")
	}
	return l.unlink(n), nil
}

// unlink splices the non-nil node n out of l, releases it and returns the
// value it held.
func (l *DoublyLinkedList[T]) unlink(n *Node[T]) T {
	value := n.Value
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	l.length--
	n.release()
	return value
}

// Remove deletes the first node holding value and reports whether one was
// found.
func (l *DoublyLinkedList[T]) Remove(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.Value == value {
			l.unlink(n)
			return true
		}
	}
	return false
}

// RemoveAt removes and returns the value at position index.
func (l *DoublyLinkedList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zeroValue T
		return zeroValue, lengthIndexError(index, l.length)
	}
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return l.removeNode(n)
}

// IndexOf returns the position of the first node holding value, or -1.
func (l *DoublyLinkedList[T]) IndexOf(value T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.Value == value {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether any node holds value.
func (l *DoublyLinkedList[T]) Contains(value T) bool {
	return l.IndexOf(value) != -1
}

// Clear removes all elements from the list, releasing every node.
func (l *DoublyLinkedList[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.release()
		n = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Clone returns a new list holding the same values in the same order.
func (l *DoublyLinkedList[T]) Clone() *DoublyLinkedList[T] {
	c := NewList[T]()
	for n := l.head; n != nil; n = n.next {
		c.AddLast(n.Value)
	}
	return c
}

// Len returns the number of elements in the list.
func (l *DoublyLinkedList[T]) Len() int {
	return l.length
}

func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.length == 0
}

// Front returns the head node, or nil if the list is empty.
func (l *DoublyLinkedList[T]) Front() *Node[T] {
	return l.head
}

// Back returns the tail node, or nil if the list is empty.
func (l *DoublyLinkedList[T]) Back() *Node[T] {
	return l.tail
}

// Iterator returns a fresh iterator starting at the head.
func (l *DoublyLinkedList[T]) Iterator() Iterator[T] {
	return &listIterator[T]{current: l.head}
}

// All yields the values from head to tail with their positions.
func (l *DoublyLinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.Value) {
				return
			}
			i++
		}
	}
}

// Backward yields the values from tail to head. Positions count from the
// head, so the first pair is (Len()-1, tail value).
func (l *DoublyLinkedList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.length - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.Value) {
				return
			}
			i--
		}
	}
}

// Values returns the list contents from head to tail.
func (l *DoublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.Value)
	}
	return values
}

func (l *DoublyLinkedList[T]) String() string {
	return render(l.All())
}
