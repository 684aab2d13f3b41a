package kura

import (
	"fmt"
	"iter"
	"reflect"
)

const tombstone = -1

// Per-slot tracking flags.
const (
	flagInserted uint8 = 1 << iota
	flagModified
)

// SparseSet stores the components of one type.
//
// sparse is indexed by EntityID.Index and holds a position into dense, or
// tombstone. dense, data and meta are index-aligned: dense[i] owns data[i] and
// meta[i] holds its tracking flags. sparse[id.Index()] is valid iff
// dense[sparse[id.Index()]] == id.
type SparseSet[T any] struct {
	sparse []int
	dense  []EntityID
	data   []T
	meta   []uint8
	borrow borrowState
}

// NewSparseSet creates an empty SparseSet.
func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

// indexOf returns the dense position of id.
func (s *SparseSet[T]) indexOf(id EntityID) (int, bool) {
	index := id.Index()
	if index >= uint64(len(s.sparse)) {
		return 0, false
	}
	pos := s.sparse[index]
	if pos == tombstone || s.dense[pos] != id {
		return 0, false
	}
	return pos, true
}

// growSparse makes sparse long enough to address index.
func (s *SparseSet[T]) growSparse(index uint64) {
	if index < uint64(len(s.sparse)) {
		return
	}
	oldLen := len(s.sparse)
	newLen := max(oldLen*2, int(index)+1)
	s.sparse = extendSlice(s.sparse, newLen-oldLen)
	for i := oldLen; i < newLen; i++ {
		s.sparse[i] = tombstone
	}
}

// Insert adds or overwrites the component of id.
//
// A new component is flagged inserted. Overwriting keeps an inserted flag and
// otherwise flags the slot modified.
func (s *SparseSet[T]) Insert(id EntityID, value T) {
	index := id.Index()
	s.growSparse(index)
	if pos := s.sparse[index]; pos != tombstone {
		s.data[pos] = value
		if s.dense[pos] != id {
			// the slot belonged to an older generation of this index
			s.dense[pos] = id
			s.meta[pos] = flagInserted
			return
		}
		if s.meta[pos]&flagInserted == 0 {
			s.meta[pos] |= flagModified
		}
		return
	}
	s.sparse[index] = len(s.dense)
	s.dense = append(s.dense, id)
	s.data = append(s.data, value)
	s.meta = append(s.meta, flagInserted)
}

// Remove deletes the component of id and returns it. The last component is
// moved into the freed slot, so iteration order is not stable.
func (s *SparseSet[T]) Remove(id EntityID) (T, bool) {
	var zero T
	pos, ok := s.indexOf(id)
	if !ok {
		return zero, false
	}
	value := s.data[pos]
	last := len(s.dense) - 1
	if pos < last {
		moved := s.dense[last]
		s.dense[pos] = moved
		s.data[pos] = s.data[last]
		s.meta[pos] = s.meta[last]
		s.sparse[moved.Index()] = pos
	}
	s.data[last] = zero
	s.dense = s.dense[:last]
	s.data = s.data[:last]
	s.meta = s.meta[:last]
	s.sparse[id.Index()] = tombstone
	return value, true
}

// Contains reports whether id has a component in this set.
func (s *SparseSet[T]) Contains(id EntityID) bool {
	_, ok := s.indexOf(id)
	return ok
}

// Get returns a pointer to the component of id. The pointer is valid until
// the next Insert or Remove on this set.
func (s *SparseSet[T]) Get(id EntityID) (*T, bool) {
	pos, ok := s.indexOf(id)
	if !ok {
		return nil, false
	}
	return &s.data[pos], true
}

// GetMut is like Get but flags the slot modified.
func (s *SparseSet[T]) GetMut(id EntityID) (*T, bool) {
	pos, ok := s.indexOf(id)
	if !ok {
		return nil, false
	}
	s.flag(pos)
	return &s.data[pos], true
}

// mut builds a tracked reference to the slot at pos. An inserted slot needs
// no modified flag, so it gets none.
func (s *SparseSet[T]) mut(pos int) Mut[T] {
	m := Mut[T]{data: &s.data[pos]}
	if s.meta[pos]&flagInserted == 0 {
		m.flag = &s.meta[pos]
	}
	return m
}

func (s *SparseSet[T]) flag(pos int) {
	if s.meta[pos]&flagInserted == 0 {
		s.meta[pos] |= flagModified
	}
}

// Len returns the number of components.
func (s *SparseSet[T]) Len() int {
	return len(s.dense)
}

// IDs returns the entities owning a component, aligned with Data. The slice
// is owned by the set.
func (s *SparseSet[T]) IDs() []EntityID {
	return s.dense
}

// Data returns the dense component slice. The slice is owned by the set.
func (s *SparseSet[T]) Data() []T {
	return s.data
}

// Iter yields every component.
func (s *SparseSet[T]) Iter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range s.data {
			if !yield(&s.data[i]) {
				return
			}
		}
	}
}

// IterWithID yields every component together with its owner.
func (s *SparseSet[T]) IterWithID() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := range s.data {
			if !yield(s.dense[i], &s.data[i]) {
				return
			}
		}
	}
}

// Clear removes every component, keeping the allocated memory.
func (s *SparseSet[T]) Clear() {
	for _, id := range s.dense {
		s.sparse[id.Index()] = tombstone
	}
	clear(s.data)
	s.dense = s.dense[:0]
	s.data = s.data[:0]
	s.meta = s.meta[:0]
}

// IsInserted reports whether the component of id was inserted this epoch.
func (s *SparseSet[T]) IsInserted(id EntityID) bool {
	pos, ok := s.indexOf(id)
	return ok && s.meta[pos]&flagInserted != 0
}

// IsModified reports whether the component of id was modified this epoch.
func (s *SparseSet[T]) IsModified(id EntityID) bool {
	pos, ok := s.indexOf(id)
	return ok && s.meta[pos]&flagModified != 0
}

// Inserted yields the entities whose component was inserted this epoch.
func (s *SparseSet[T]) Inserted() iter.Seq[EntityID] {
	return s.flagged(flagInserted)
}

// Modified yields the entities whose component was modified this epoch.
func (s *SparseSet[T]) Modified() iter.Seq[EntityID] {
	return s.flagged(flagModified)
}

// InsertedOrModified yields the entities with either flag.
func (s *SparseSet[T]) InsertedOrModified() iter.Seq[EntityID] {
	return s.flagged(flagInserted | flagModified)
}

func (s *SparseSet[T]) flagged(mask uint8) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for i, m := range s.meta {
			if m&mask == 0 {
				continue
			}
			if !yield(s.dense[i]) {
				return
			}
		}
	}
}

// ClearInserted ends the insertion epoch.
func (s *SparseSet[T]) ClearInserted() {
	for i := range s.meta {
		s.meta[i] &^= flagInserted
	}
}

// ClearModified ends the modification epoch.
func (s *SparseSet[T]) ClearModified() {
	for i := range s.meta {
		s.meta[i] &^= flagModified
	}
}

// ClearTracking clears both flags on every slot.
func (s *SparseSet[T]) ClearTracking() {
	clear(s.meta)
}

// Storage implementation.

// TypeID returns the TypeID of T.
func (s *SparseSet[T]) TypeID() TypeID { return TypeOf[T]() }

// Type returns the reflect.Type of T.
func (s *SparseSet[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

// Has is Contains.
func (s *SparseSet[T]) Has(id EntityID) bool { return s.Contains(id) }

// RemoveEntity removes the component of id, reporting whether there was one.
func (s *SparseSet[T]) RemoveEntity(id EntityID) bool {
	_, ok := s.Remove(id)
	return ok
}

// InsertAny inserts value, which must be a T.
func (s *SparseSet[T]) InsertAny(id EntityID, value any) error {
	v, ok := value.(T)
	if !ok {
		return fmt.Errorf("ecs: cannot insert %T into storage of %s", value, typeName[T]())
	}
	s.Insert(id, v)
	return nil
}

func (s *SparseSet[T]) state() *borrowState { return &s.borrow }
