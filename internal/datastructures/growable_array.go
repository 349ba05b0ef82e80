package datastructures

import "iter"

// GrowableArray is a contiguous array that doubles its capacity when an
// append finds it full.
//
// Slots [0, Len()) hold the appended elements in order. Slots [Len(), Cap())
// hold the zero value of T. Index checks for Get, Set, Swap and RemoveAt are
// made against the capacity, not the length, so unused slots can be read
// and written directly.
type GrowableArray[T comparable] struct {
	storage []T // len(storage) is the capacity
	length  int
}

// NewGrowableArray creates an empty array able to hold initialCapacity
// elements before it has to grow.
func NewGrowableArray[T comparable](initialCapacity int) (*GrowableArray[T], error) {
	if initialCapacity < 0 {
		return nil, negativeSizeError("initial capacity", initialCapacity)
	}
	return &GrowableArray[T]{storage: make([]T, initialCapacity)}, nil
}

// Append adds an element after the last live one, growing first if full.
func (a *GrowableArray[T]) Append(element T) {
	if a.length == len(a.storage) {
		a.grow()
	}
	a.storage[a.length] = element
	a.length++
}

// grow doubles the capacity. A zero capacity grows to one.
func (a *GrowableArray[T]) grow() {
	storage := make([]T, max(len(a.storage)*2, 1))
	copy(storage, a.storage[:a.length])
	a.storage = storage
}

// Get returns the element stored at index.
func (a *GrowableArray[T]) Get(index int) (T, error) {
	if err := a.validateIndex(index); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return a.storage[index], nil
}

// Set replaces the element stored at index.
func (a *GrowableArray[T]) Set(index int, element T) error {
	if err := a.validateIndex(index); err != nil {
		return err
	}
	a.storage[index] = element
	return nil
}

// RemoveAt removes the element at index, shifting the elements after it one
// slot to the left. An empty array has nothing to remove. On a non-empty
// array an index between Len() and Cap() addresses an empty slot, which is
// reset to the zero value without changing the length.
func (a *GrowableArray[T]) RemoveAt(index int) error {
	if err := a.validateIndex(index); err != nil {
		return err
	}
	if a.length == 0 {
		return emptyRemoveError(index)
	}
	var zeroValue T
	if index >= a.length {
		a.storage[index] = zeroValue
		return nil
	}
	copy(a.storage[index:a.length-1], a.storage[index+1:a.length])
	a.length--
	a.storage[a.length] = zeroValue
	return nil
}

// Clear resets every live slot and sets the length to zero. The capacity
// is kept.
func (a *GrowableArray[T]) Clear() {
	clear(a.storage[:a.length])
	a.length = 0
}

// IndexOf returns the position of the first live element equal to element,
// or -1.
func (a *GrowableArray[T]) IndexOf(element T) int {
	for i := 0; i < a.length; i++ {
		if a.storage[i] == element {
			return i
		}
	}
	return -1
}

// Contains reports whether element is among the live elements.
func (a *GrowableArray[T]) Contains(element T) bool {
	return a.IndexOf(element) != -1
}

// Fill overwrites every live element with element.
func (a *GrowableArray[T]) Fill(element T) {
	for i := 0; i < a.length; i++ {
		a.storage[i] = element
	}
}

// Swap exchanges the elements at i and j.
func (a *GrowableArray[T]) Swap(i, j int) error {
	if err := a.validateIndex(i); err != nil {
		return err
	}
	if err := a.validateIndex(j); err != nil {
		return err
	}
	a.storage[i], a.storage[j] = a.storage[j], a.storage[i]
	return nil
}

// Clone returns an independent copy with the same capacity and contents.
func (a *GrowableArray[T]) Clone() *GrowableArray[T] {
	storage := make([]T, len(a.storage))
	copy(storage, a.storage)
	return &GrowableArray[T]{storage: storage, length: a.length}
}

// Len returns the number of appended elements.
func (a *GrowableArray[T]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots.
func (a *GrowableArray[T]) Cap() int {
	return len(a.storage)
}

func (a *GrowableArray[T]) IsEmpty() bool {
	return a.length == 0
}

// Iterator returns a fresh iterator over the live elements.
func (a *GrowableArray[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{data: a.storage, n: a.length}
}

// All yields the live elements with their indices.
func (a *GrowableArray[T]) All() iter.Seq2[int, T] {
	return sliceSeq(a.storage, a.length)
}

// Values returns a copy of the live elements.
func (a *GrowableArray[T]) Values() []T {
	values := make([]T, a.length)
	copy(values, a.storage)
	return values
}

func (a *GrowableArray[T]) String() string {
	return render(a.All())
}

func (a *GrowableArray[T]) validateIndex(index int) error {
	if index < 0 || index >= len(a.storage) {
		return capacityIndexError(index, len(a.storage))
	}
	return nil
}
