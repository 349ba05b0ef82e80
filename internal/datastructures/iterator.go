package datastructures

import (
	"fmt"
	"iter"
	"strings"
)

// Iterator walks a container once, front to back. It cannot be rewound;
// ask the container for a fresh one to traverse again.
type Iterator[T any] interface {
	// HasNext reports whether another element is available.
	HasNext() bool
	// Next returns the next element, or an error once the iterator is
	// exhausted.
	Next() (T, error)
}

// sliceIterator iterates the first n slots of a backing slice.
type sliceIterator[T any] struct {
	data    []T
	n       int
	current int
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.current < it.n
}

func (it *sliceIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zeroValue T
		return zeroValue, arrayExhaustedError()
	}
	v := it.data[it.current]
	it.current++
	return v, nil
}

// listIterator follows next links from the node it was created at.
type listIterator[T comparable] struct {
	current *Node[T]
}

func (it *listIterator[T]) HasNext() bool {
	return it.current != nil
}

func (it *listIterator[T]) Next() (T, error) {
	if it.current == nil {
		var zeroValue T
		return zeroValue, listExhaustedError()
	}
	v := it.current.Value
	it.current = it.current.next
	return v, nil
}

// render formats a sequence as "[a, b, c]".
func render[T any](seq iter.Seq2[int, T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range seq {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// sliceSeq yields the first n slots of data with their indices.
func sliceSeq[T any](data []T, n int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < n; i++ {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}
