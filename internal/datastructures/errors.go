package datastructures

import "github.com/cockroachdb/errors"

// Error classes returned by the containers. Callers match them with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrEmptyCollection   = errors.New("collection is empty")
	ErrNullReference     = errors.New("null reference")
	ErrIteratorExhausted = errors.New("iterator exhausted")
)

func negativeSizeError(what string, size int) error {
	return errors.Wrapf(ErrInvalidArgument, "%s cannot be negative: %d", what, size)
}

func capacityIndexError(index, capacity int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index: %d, capacity: %d", index, capacity)
}

func lengthIndexError(index, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index: %d, size: %d", index, length)
}

func emptyRemoveError(index int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index: %d, size: 0", index)
}

// arrayExhaustedError is returned by array iterators. It matches both
// ErrIteratorExhausted and ErrIndexOutOfRange.
func arrayExhaustedError() error {
	return errors.Mark(errors.Wrap(ErrIteratorExhausted, "no more elements to iterate"), ErrIndexOutOfRange)
}

func listExhaustedError() error {
	return errors.Wrap(ErrIteratorExhausted, "no more nodes to iterate")
}
