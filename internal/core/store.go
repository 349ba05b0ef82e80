package core

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vskvj3/vessel/internal/datastructures"
)

type (
	// List is the list type held by the store.
	List = datastructures.DoublyLinkedList[string]
	// Array is the growable array type held by the store.
	Array = datastructures.GrowableArray[string]
)

// Container kinds, as reported by TYPE and carried by DUMP.
const (
	KindList  = "list"
	KindArray = "array"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrKeyExists   = errors.New("key already exists")
	ErrWrongType   = errors.New("operation against a key holding the wrong kind of container")
)

// Store holds named containers. The containers themselves are not safe for
// concurrent use, so every access goes through the store's mutex.
type Store struct {
	mu              sync.Mutex
	lists           map[string]*List
	arrays          map[string]*Array
	defaultCapacity int
	maxCapacity     int
}

// NewStore creates an empty store. Arrays created implicitly by an append
// start with defaultCapacity slots. No array may hold more than maxCapacity
// slots.
func NewStore(defaultCapacity, maxCapacity int) *Store {
	return &Store{
		lists:           make(map[string]*List),
		arrays:          make(map[string]*Array),
		defaultCapacity: min(defaultCapacity, maxCapacity),
		maxCapacity:     maxCapacity,
	}
}

// checkCapacity rejects capacities above the store limit.
func (s *Store) checkCapacity(capacity int) error {
	if capacity > s.maxCapacity {
		return errors.Wrapf(datastructures.ErrInvalidArgument,
			"capacity %d exceeds the maximum of %d", capacity, s.maxCapacity)
	}
	return nil
}

// appendArray appends value to a, refusing to grow a full array past the
// store limit.
func (s *Store) appendArray(a *Array, value string) error {
	if a.Len() == a.Cap() {
		if err := s.checkCapacity(max(2*a.Cap(), 1)); err != nil {
			return errors.Wrap(err, "array is full")
		}
	}
	a.Append(value)
	return nil
}

// WithList runs fn on the list stored at key. If create is set, a missing
// key gets a new empty list first.
func (s *Store) WithList(key string, create bool, fn func(l *List) error) error {
	if key == "" {
		return errors.Wrap(ErrMissingArgument, "key cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.arrays[key]; ok {
		return errors.Wrapf(ErrWrongType, "%s holds an array", key)
	}
	l, ok := s.lists[key]
	if !ok {
		if !create {
			return errors.Wrapf(ErrKeyNotFound, "%s", key)
		}
		l = datastructures.NewList[string]()
		s.lists[key] = l
	}
	return fn(l)
}

// WithArray runs fn on the array stored at key. If create is set, a missing
// key gets a new array with the default capacity first.
func (s *Store) WithArray(key string, create bool, fn func(a *Array) error) error {
	if key == "" {
		return errors.Wrap(ErrMissingArgument, "key cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[key]; ok {
		return errors.Wrapf(ErrWrongType, "%s holds a list", key)
	}
	a, ok := s.arrays[key]
	if !ok {
		if !create {
			return errors.Wrapf(ErrKeyNotFound, "%s", key)
		}
		var err error
		if a, err = datastructures.NewGrowableArray[string](s.defaultCapacity); err != nil {
			return err
		}
		s.arrays[key] = a
	}
	return fn(a)
}

// CreateArray stores a new empty array with the given capacity at key.
func (s *Store) CreateArray(key string, capacity int) error {
	if key == "" {
		return errors.Wrap(ErrMissingArgument, "key cannot be empty")
	}
	if err := s.checkCapacity(capacity); err != nil {
		return err
	}
	a, err := datastructures.NewGrowableArray[string](capacity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.existsLocked(key) {
		return errors.Wrapf(ErrKeyExists, "%s", key)
	}
	s.arrays[key] = a
	return nil
}

// CloneArray stores an independent copy of the array at src under dst.
func (s *Store) CloneArray(src, dst string) error {
	if src == "" || dst == "" {
		return errors.Wrap(ErrMissingArgument, "key cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.arrays[src]
	if !ok {
		if _, isList := s.lists[src]; isList {
			return errors.Wrapf(ErrWrongType, "%s holds a list", src)
		}
		return errors.Wrapf(ErrKeyNotFound, "%s", src)
	}
	if s.existsLocked(dst) {
		return errors.Wrapf(ErrKeyExists, "%s", dst)
	}
	s.arrays[dst] = a.Clone()
	return nil
}

// Delete removes key and reports whether it existed.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.existsLocked(key) {
		return false
	}
	delete(s.lists, key)
	delete(s.arrays, key)
	return true
}

// Keys returns every key in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.lists)+len(s.arrays))
	for k := range s.lists {
		keys = append(keys, k)
	}
	for k := range s.arrays {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Type returns the kind of container stored at key.
func (s *Store) Type(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[key]; ok {
		return KindList, nil
	}
	if _, ok := s.arrays[key]; ok {
		return KindArray, nil
	}
	return "", errors.Wrapf(ErrKeyNotFound, "%s", key)
}

// Dump encodes the container at key as a msgpack snapshot.
func (s *Store) Dump(key string) (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.lists[key]; ok {
		payload, err := msgpack.Marshal(l)
		return KindList, payload, errors.Wrap(err, "dump list")
	}
	if a, ok := s.arrays[key]; ok {
		payload, err := msgpack.Marshal(a)
		return KindArray, payload, errors.Wrap(err, "dump array")
	}
	return "", nil, errors.Wrapf(ErrKeyNotFound, "%s", key)
}

// Restore decodes a snapshot produced by Dump and stores it at key,
// replacing whatever was there.
func (s *Store) Restore(key, kind string, payload []byte) error {
	if key == "" {
		return errors.Wrap(ErrMissingArgument, "key cannot be empty")
	}
	switch kind {
	case KindList:
		l := datastructures.NewList[string]()
		if err := msgpack.Unmarshal(payload, l); err != nil {
			return errors.Mark(err, datastructures.ErrInvalidArgument)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.arrays, key)
		s.lists[key] = l
	case KindArray:
		a := new(Array)
		if err := msgpack.Unmarshal(payload, a); err != nil {
			return errors.Mark(err, datastructures.ErrInvalidArgument)
		}
		if err := s.checkCapacity(a.Cap()); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.lists, key)
		s.arrays[key] = a
	default:
		return errors.Wrapf(datastructures.ErrInvalidArgument, "unknown container type %q", kind)
	}
	return nil
}

func (s *Store) existsLocked(key string) bool {
	_, isList := s.lists[key]
	_, isArray := s.arrays[key]
	return isList || isArray
}
