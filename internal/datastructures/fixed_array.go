package datastructures

import "iter"

// FixedArray is an array whose size is set at construction. Every slot is
// addressable and counts toward its length.
type FixedArray[T comparable] struct {
	storage []T
}

// NewFixedArray creates an array of size zero-valued slots.
func NewFixedArray[T comparable](size int) (*FixedArray[T], error) {
	if size < 0 {
		return nil, negativeSizeError("capacity", size)
	}
	return &FixedArray[T]{storage: make([]T, size)}, nil
}

// Get returns the element at index.
func (a *FixedArray[T]) Get(index int) (T, error) {
	if err := a.validateIndex(index); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return a.storage[index], nil
}

// Set stores element at index.
func (a *FixedArray[T]) Set(index int, element T) error {
	if err := a.validateIndex(index); err != nil {
		return err
	}
	a.storage[index] = element
	return nil
}

// Clear resets every slot to the zero value.
func (a *FixedArray[T]) Clear() {
	clear(a.storage)
}

// Fill stores element in every slot.
func (a *FixedArray[T]) Fill(element T) {
	for i := range a.storage {
		a.storage[i] = element
	}
}

// IndexOf returns the first slot equal to element, or -1.
func (a *FixedArray[T]) IndexOf(element T) int {
	for i, v := range a.storage {
		if v == element {
			return i
		}
	}
	return -1
}

func (a *FixedArray[T]) Contains(element T) bool {
	return a.IndexOf(element) >= 0
}

// Swap exchanges the elements at i and j.
func (a *FixedArray[T]) Swap(i, j int) error {
	if err := a.validateIndex(i); err != nil {
		return err
	}
	if err := a.validateIndex(j); err != nil {
		return err
	}
	a.storage[i], a.storage[j] = a.storage[j], a.storage[i]
	return nil
}

// Reverse reverses the array in place, swapping pairs from both ends toward
// the middle.
func (a *FixedArray[T]) Reverse() {
	n := len(a.storage)
	for i := 0; i < n/2; i++ {
		a.storage[i], a.storage[n-1-i] = a.storage[n-1-i], a.storage[i]
	}
}

// Copy returns an independent copy.
func (a *FixedArray[T]) Copy() *FixedArray[T] {
	storage := make([]T, len(a.storage))
	copy(storage, a.storage)
	return &FixedArray[T]{storage: storage}
}

// Len returns the fixed capacity.
func (a *FixedArray[T]) Len() int {
	return len(a.storage)
}

func (a *FixedArray[T]) IsEmpty() bool {
	return len(a.storage) == 0
}

func (a *FixedArray[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{data: a.storage, n: len(a.storage)}
}

func (a *FixedArray[T]) All() iter.Seq2[int, T] {
	return sliceSeq(a.storage, len(a.storage))
}

// Values returns a copy of every slot.
func (a *FixedArray[T]) Values() []T {
	values := make([]T, len(a.storage))
	copy(values, a.storage)
	return values
}

func (a *FixedArray[T]) String() string {
	return render(a.All())
}

func (a *FixedArray[T]) validateIndex(index int) error {
	if index < 0 || index >= len(a.storage) {
		return capacityIndexError(index, len(a.storage))
	}
	return nil
}
