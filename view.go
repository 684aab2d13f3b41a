package kura

import "iter"

// Mut is a tracked mutable reference to a component. Reading through Get
// leaves the slot untouched; the first Ptr or Set flags it modified, later
// ones are no-ops on the flag.
type Mut[T any] struct {
	data *T
	flag *uint8 // nil when the slot needs no flag (inserted this epoch)
}

// Get returns the component for reading. Writing through the returned
// pointer bypasses change tracking.
func (m Mut[T]) Get() *T {
	return m.data
}

// Ptr flags the component modified and returns it for writing.
func (m Mut[T]) Ptr() *T {
	m.markModified()
	return m.data
}

// Set flags the component modified and overwrites it.
func (m Mut[T]) Set(value T) {
	m.markModified()
	*m.data = value
}

func (m Mut[T]) markModified() {
	if m.flag != nil {
		*m.flag |= flagModified
	}
}

// View is a shared borrow of the storage of T. Many Views of the same
// storage can coexist; none can coexist with a ViewMut. Pointers returned by
// a View must only be read.
type View[T any] struct {
	guard
	set *SparseSet[T]
}

// Get returns the component of id, or a *MissingComponent.
func (v *View[T]) Get(id EntityID) (*T, error) {
	v.check()
	p, ok := v.set.Get(id)
	if !ok {
		return nil, missing[T](id)
	}
	return p, nil
}

// FastGet is Get. A shared view never tracks anything.
func (v *View[T]) FastGet(id EntityID) (*T, error) {
	return v.Get(id)
}

// EntityIDs returns the owners of every component in the storage.
func (v *View[T]) EntityIDs() []EntityID {
	v.check()
	return v.set.IDs()
}

// Contains reports whether id has a component of type T.
func (v *View[T]) Contains(id EntityID) bool {
	v.check()
	return v.set.Contains(id)
}

// Len returns the number of components.
func (v *View[T]) Len() int {
	v.check()
	return v.set.Len()
}

// Iter yields every component with its owner.
func (v *View[T]) Iter() iter.Seq2[EntityID, *T] {
	v.check()
	return v.set.IterWithID()
}

// IsInserted reports whether the component of id was inserted this epoch.
func (v *View[T]) IsInserted(id EntityID) bool {
	v.check()
	return v.set.IsInserted(id)
}

// IsModified reports whether the component of id was modified this epoch.
func (v *View[T]) IsModified(id EntityID) bool {
	v.check()
	return v.set.IsModified(id)
}

// Inserted yields the entities whose component was inserted this epoch.
func (v *View[T]) Inserted() iter.Seq[EntityID] {
	v.check()
	return v.set.Inserted()
}

// Modified yields the entities whose component was modified this epoch.
func (v *View[T]) Modified() iter.Seq[EntityID] {
	v.check()
	return v.set.Modified()
}

// ViewMut is an exclusive borrow of the storage of T. It is the only way to
// insert or remove components outside of the World helpers.
//
// A Mut or pointer obtained from a ViewMut is invalidated by the next Insert
// or Remove on the same view.
type ViewMut[T any] struct {
	guard
	set *SparseSet[T]
}

// Get returns a tracked reference to the component of id, or a
// *MissingComponent.
func (v *ViewMut[T]) Get(id EntityID) (Mut[T], error) {
	v.check()
	pos, ok := v.set.indexOf(id)
	if !ok {
		return Mut[T]{}, missing[T](id)
	}
	return v.set.mut(pos), nil
}

// FastGet returns the component of id without flagging it modified.
func (v *ViewMut[T]) FastGet(id EntityID) (*T, error) {
	v.check()
	p, ok := v.set.Get(id)
	if !ok {
		return nil, missing[T](id)
	}
	return p, nil
}

// EntityIDs returns the owners of every component in the storage.
func (v *ViewMut[T]) EntityIDs() []EntityID {
	v.check()
	return v.set.IDs()
}

// Read returns a getter over the same storage that yields plain pointers
// and never tracks, so a ViewMut can be joined as a reader.
func (v *ViewMut[T]) Read() Getter[*T, *T] {
	return readOnly[T]{v}
}

// Insert adds or overwrites the component of id.
func (v *ViewMut[T]) Insert(id EntityID, value T) {
	v.check()
	v.set.Insert(id, value)
}

// Remove deletes the component of id and returns it.
func (v *ViewMut[T]) Remove(id EntityID) (T, bool) {
	v.check()
	return v.set.Remove(id)
}

// Contains reports whether id has a component of type T.
func (v *ViewMut[T]) Contains(id EntityID) bool {
	v.check()
	return v.set.Contains(id)
}

// Len returns the number of components.
func (v *ViewMut[T]) Len() int {
	v.check()
	return v.set.Len()
}

// Clear removes every component.
func (v *ViewMut[T]) Clear() {
	v.check()
	v.set.Clear()
}

// Iter yields a tracked reference to every component with its owner.
func (v *ViewMut[T]) Iter() iter.Seq2[EntityID, Mut[T]] {
	v.check()
	s := v.set
	return func(yield func(EntityID, Mut[T]) bool) {
		for i := range s.dense {
			if !yield(s.dense[i], s.mut(i)) {
				return
			}
		}
	}
}

// FastIter yields every component with its owner, without tracking.
func (v *ViewMut[T]) FastIter() iter.Seq2[EntityID, *T] {
	v.check()
	return v.set.IterWithID()
}

// IsInserted reports whether the component of id was inserted this epoch.
func (v *ViewMut[T]) IsInserted(id EntityID) bool {
	v.check()
	return v.set.IsInserted(id)
}

// IsModified reports whether the component of id was modified this epoch.
func (v *ViewMut[T]) IsModified(id EntityID) bool {
	v.check()
	return v.set.IsModified(id)
}

// Inserted yields the entities whose component was inserted this epoch.
func (v *ViewMut[T]) Inserted() iter.Seq[EntityID] {
	v.check()
	return v.set.Inserted()
}

// Modified yields the entities whose component was modified this epoch.
func (v *ViewMut[T]) Modified() iter.Seq[EntityID] {
	v.check()
	return v.set.Modified()
}

// ClearInserted ends the insertion epoch.
func (v *ViewMut[T]) ClearInserted() {
	v.check()
	v.set.ClearInserted()
}

// ClearModified ends the modification epoch.
func (v *ViewMut[T]) ClearModified() {
	v.check()
	v.set.ClearModified()
}

// ClearTracking ends both epochs.
func (v *ViewMut[T]) ClearTracking() {
	v.check()
	v.set.ClearTracking()
}

type readOnly[T any] struct {
	v *ViewMut[T]
}

func (r readOnly[T]) Get(id EntityID) (*T, error)     { return r.v.FastGet(id) }
func (r readOnly[T]) FastGet(id EntityID) (*T, error) { return r.v.FastGet(id) }
func (r readOnly[T]) EntityIDs() []EntityID           { return r.v.EntityIDs() }
