package datastructures

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestGrowableArraySnapshot(t *testing.T) {
	a := newGrowable(t, 2, 1, 2, 3)
	data, err := msgpack.Marshal(a)
	require.NoError(t, err)

	var restored GrowableArray[int]
	require.NoError(t, msgpack.Unmarshal(data, &restored))
	assert.Equal(t, 4, restored.Cap())
	assert.Equal(t, []int{1, 2, 3}, restored.Values())

	// Restored storage is independent of the source.
	restored.Append(4)
	assert.Equal(t, 3, a.Len())
}

func TestGrowableArraySnapshotKeepsSlotsPastLength(t *testing.T) {
	a := newGrowable(t, 4, 1)
	require.NoError(t, a.Set(a.Cap()-1, 99))

	data, err := msgpack.Marshal(a)
	require.NoError(t, err)

	var restored GrowableArray[int]
	require.NoError(t, msgpack.Unmarshal(data, &restored))
	assert.Equal(t, 1, restored.Len())
	assert.Equal(t, 4, restored.Cap())
	v, err := restored.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 99, v)

	clone := a.Clone()
	for i := 0; i < a.Cap(); i++ {
		want, _ := clone.Get(i)
		got, _ := restored.Get(i)
		assert.Equal(t, want, got, "slot %d matches a clone", i)
	}
}

func TestGrowableArraySnapshotRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		snapshot growableSnapshot[int]
	}{
		{"NegativeLength", growableSnapshot[int]{Length: -1, Slots: []int{1}}},
		{"LengthPastCapacity", growableSnapshot[int]{Length: 3, Slots: []int{1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := msgpack.Marshal(tt.snapshot)
			require.NoError(t, err)

			a := newGrowable(t, 1, 5)
			err = msgpack.Unmarshal(data, a)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Equal(t, []int{5}, a.Values(), "a rejected snapshot must not mutate")
		})
	}
}

func TestFixedArraySnapshot(t *testing.T) {
	a, err := NewFixedArray[string](3)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, "b"))

	data, err := msgpack.Marshal(a)
	require.NoError(t, err)

	var restored FixedArray[string]
	require.NoError(t, msgpack.Unmarshal(data, &restored))
	assert.Equal(t, 3, restored.Len())
	assert.Equal(t, a.Values(), restored.Values())
}

func TestListSnapshot(t *testing.T) {
	l := NewList[string]()
	l.AddLast("b")
	l.AddFirst("a")

	data, err := msgpack.Marshal(l)
	require.NoError(t, err)

	restored := newStringList("stale")
	require.NoError(t, msgpack.Unmarshal(data, restored))
	assert.Equal(t, "[a, b]", restored.String())
	require.NoError(t, checkLinks(restored))
}

func newStringList(values ...string) *DoublyLinkedList[string] {
	l := NewList[string]()
	for _, v := range values {
		l.AddLast(v)
	}
	return l
}
