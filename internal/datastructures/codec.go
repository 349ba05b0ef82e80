package datastructures

import (
	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot layouts used by the msgpack encoders below.
type (
	growableSnapshot[T any] struct {
		Length int `msgpack:"length"`
		Slots  []T `msgpack:"slots"`
	}

	itemsSnapshot[T any] struct {
		Items []T `msgpack:"items"`
	}
)

var (
	_ msgpack.CustomEncoder = (*GrowableArray[int])(nil)
	_ msgpack.CustomDecoder = (*GrowableArray[int])(nil)
	_ msgpack.CustomEncoder = (*FixedArray[int])(nil)
	_ msgpack.CustomDecoder = (*FixedArray[int])(nil)
	_ msgpack.CustomEncoder = (*DoublyLinkedList[int])(nil)
	_ msgpack.CustomDecoder = (*DoublyLinkedList[int])(nil)
)

// EncodeMsgpack writes the length and every slot up to the capacity, so
// values set past the length survive a round trip.
func (a *GrowableArray[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(growableSnapshot[T]{Length: a.length, Slots: a.storage})
}

// DecodeMsgpack replaces the array contents with a decoded snapshot. The
// capacity becomes the number of decoded slots.
func (a *GrowableArray[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var s growableSnapshot[T]
	if err := dec.Decode(&s); err != nil {
		return errors.Wrap(err, "decode growable array")
	}
	if s.Length < 0 {
		return negativeSizeError("length", s.Length)
	}
	if s.Length > len(s.Slots) {
		return errors.Wrapf(ErrInvalidArgument, "length %d exceeds capacity %d", s.Length, len(s.Slots))
	}
	storage := make([]T, len(s.Slots))
	copy(storage, s.Slots)
	a.storage = storage
	a.length = s.Length
	return nil
}

// EncodeMsgpack writes every slot.
func (a *FixedArray[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(itemsSnapshot[T]{Items: a.Values()})
}

// DecodeMsgpack replaces the array with a decoded snapshot. The size of the
// array becomes the number of decoded items.
func (a *FixedArray[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var s itemsSnapshot[T]
	if err := dec.Decode(&s); err != nil {
		return errors.Wrap(err, "decode fixed array")
	}
	storage := make([]T, len(s.Items))
	copy(storage, s.Items)
	a.storage = storage
	return nil
}

// EncodeMsgpack writes the values from head to tail.
func (l *DoublyLinkedList[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(itemsSnapshot[T]{Items: l.Values()})
}

// DecodeMsgpack clears the list and appends the decoded values in order.
func (l *DoublyLinkedList[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var s itemsSnapshot[T]
	if err := dec.Decode(&s); err != nil {
		return errors.Wrap(err, "decode linked list")
	}
	l.Clear()
	for _, v := range s.Items {
		l.AddLast(v)
	}
	return nil
}
