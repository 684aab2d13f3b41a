package kura

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Storage is the type-erased face of a component storage, as seen by the
// World registry and the AllStorages coordinator.
type Storage interface {
	// TypeID returns the identifier of the component type.
	TypeID() TypeID
	// Type returns the component type.
	Type() reflect.Type
	// Has reports whether id owns a component in this storage.
	Has(id EntityID) bool
	// Len returns the number of components.
	Len() int
	// RemoveEntity drops the component of id. It returns false if there
	// was none.
	RemoveEntity(id EntityID) bool
	// InsertAny inserts a component given as an untyped value.
	InsertAny(id EntityID, value any) error
	// Clear removes every component.
	Clear()
	// ClearTracking ends the current tracking epoch.
	ClearTracking()

	state() *borrowState
}

var _ Storage = (*SparseSet[struct{}])(nil)

// storageOf returns the storage of T, creating it on first use.
func storageOf[T any](w *World) (*SparseSet[T], error) {
	id := TypeOf[T]()
	w.mu.RLock()
	s, ok := w.storages[id]
	w.mu.RUnlock()
	if !ok {
		w.mu.Lock()
		if s, ok = w.storages[id]; !ok {
			s = NewSparseSet[T]()
			w.storages[id] = s
			w.logger.Debug("storage created",
				zap.String("type", typeName[T]()),
				zap.Stringer("type_id", id))
		}
		w.mu.Unlock()
	}
	set, ok := s.(*SparseSet[T])
	if !ok {
		w.logger.Warn("type id collision",
			zap.Stringer("type_id", id),
			zap.String("registered", s.Type().String()),
			zap.String("requested", typeName[T]()))
		return nil, fmt.Errorf("%w: %s and %s share %s", ErrTypeIDCollision, s.Type(), typeName[T](), id)
	}
	return set, nil
}
