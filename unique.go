package kura

import (
	"fmt"
	"reflect"
)

// uniqueStorage is the erased face of a unique: a storage holding a single
// value that belongs to the World rather than to an entity.
type uniqueStorage interface {
	Type() reflect.Type
	state() *borrowState
	clearModified()
}

type unique[T any] struct {
	value    T
	modified bool
	borrow   borrowState
}

func (u *unique[T]) Type() reflect.Type  { return reflect.TypeFor[T]() }
func (u *unique[T]) state() *borrowState { return &u.borrow }
func (u *unique[T]) clearModified()      { u.modified = false }

// AddUnique stores value as the unique of type T.
func AddUnique[T any](w *World, value T) error {
	id := TypeOf[T]()
	w.mu.Lock()
	defer w.mu.Unlock()
	if u, ok := w.uniques[id]; ok {
		if u.Type() != reflect.TypeFor[T]() {
			return fmt.Errorf("%w: %s and %s share %s", ErrTypeIDCollision, u.Type(), typeName[T](), id)
		}
		return fmt.Errorf("%w: %s", ErrUniqueExists, typeName[T]())
	}
	w.uniques[id] = &unique[T]{value: value}
	return nil
}

// lookupUnique finds the unique of type T.
func lookupUnique[T any](w *World) (*unique[T], error) {
	id := TypeOf[T]()
	w.mu.RLock()
	u, ok := w.uniques[id]
	w.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingUnique, typeName[T]())
	}
	typed, ok := u.(*unique[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s and %s share %s", ErrTypeIDCollision, u.Type(), typeName[T](), id)
	}
	return typed, nil
}

// RemoveUnique removes the unique of type T and returns its value. It needs
// the unique not to be borrowed.
func RemoveUnique[T any](w *World) (T, error) {
	var zero T
	v, err := BorrowUniqueMut[T](w)
	if err != nil {
		return zero, err
	}
	defer v.Release()
	w.mu.Lock()
	delete(w.uniques, TypeOf[T]())
	w.mu.Unlock()
	return v.u.value, nil
}

// UniqueView is a shared borrow of a unique.
type UniqueView[T any] struct {
	guard
	u *unique[T]
}

// Get returns the unique for reading.
func (v *UniqueView[T]) Get() *T {
	v.check()
	return &v.u.value
}

// IsModified reports whether the unique was modified this epoch.
func (v *UniqueView[T]) IsModified() bool {
	v.check()
	return v.u.modified
}

// UniqueViewMut is an exclusive borrow of a unique.
type UniqueViewMut[T any] struct {
	guard
	u *unique[T]
}

// Get returns the unique for reading without flagging it.
func (v *UniqueViewMut[T]) Get() *T {
	v.check()
	return &v.u.value
}

// Ptr flags the unique modified and returns it for writing.
func (v *UniqueViewMut[T]) Ptr() *T {
	v.check()
	v.u.modified = true
	return &v.u.value
}

// Set flags the unique modified and overwrites it.
func (v *UniqueViewMut[T]) Set(value T) {
	*v.Ptr() = value
}

// IsModified reports whether the unique was modified this epoch.
func (v *UniqueViewMut[T]) IsModified() bool {
	v.check()
	return v.u.modified
}

// ClearModified ends the modification epoch of the unique.
func (v *UniqueViewMut[T]) ClearModified() {
	v.check()
	v.u.modified = false
}

// BorrowUnique borrows the unique of type T shared.
func BorrowUnique[T any](w *World) (*UniqueView[T], error) {
	u, err := lookupUnique[T](w)
	if err != nil {
		return nil, err
	}
	v := &UniqueView[T]{u: u}
	if err := w.acquire(&v.guard, typeName[T](), TypeOf[T](), u.state(), Shared); err != nil {
		return nil, err
	}
	return v, nil
}

// BorrowUniqueMut borrows the unique of type T exclusively.
func BorrowUniqueMut[T any](w *World) (*UniqueViewMut[T], error) {
	u, err := lookupUnique[T](w)
	if err != nil {
		return nil, err
	}
	v := &UniqueViewMut[T]{u: u}
	if err := w.acquire(&v.guard, typeName[T](), TypeOf[T](), u.state(), Exclusive); err != nil {
		return nil, err
	}
	return v, nil
}
