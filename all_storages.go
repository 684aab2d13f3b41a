package kura

import (
	"slices"

	"go.uber.org/zap"
)

// AllStorages is an exclusive borrow of every storage and unique of a
// World. It coordinates operations spanning storages, such as deleting an
// entity everywhere.
type AllStorages struct {
	guard
	w *World
}

// snapshot copies the registered storages.
func (a *AllStorages) snapshot() []Storage {
	a.w.mu.RLock()
	defer a.w.mu.RUnlock()
	out := make([]Storage, 0, len(a.w.storages))
	for _, s := range a.w.storages {
		out = append(out, s)
	}
	return out
}

// Delete deletes id from the allocator and removes its component from every
// storage. Storages without a component for id are skipped. It returns false
// if id was not alive, in which case nothing is touched.
func (a *AllStorages) Delete(entities *EntitiesViewMut, id EntityID) bool {
	a.check()
	entities.check()
	alive, retired := entities.ents.delete(id)
	if !alive {
		return false
	}
	a.strip(id)
	if retired {
		a.w.logger.Debug("entity slot retired", zap.Uint64("index", id.Index()))
		Publish(a.w.events, SlotRetired{Index: id.Index()})
	}
	Publish(a.w.events, EntityDeleted{ID: id})
	return true
}

// Strip removes every component of id without deleting the entity. It
// returns the number of components removed.
func (a *AllStorages) Strip(id EntityID) int {
	a.check()
	return a.strip(id)
}

func (a *AllStorages) strip(id EntityID) int {
	n := 0
	for _, s := range a.snapshot() {
		if s.RemoveEntity(id) {
			n++
		}
	}
	return n
}

// DeleteWith deletes every entity owning a component T, together with all
// of its components. It returns the number of deleted entities.
func DeleteWith[T any](a *AllStorages, entities *EntitiesViewMut) (int, error) {
	a.check()
	s, err := storageOf[T](a.w)
	if err != nil {
		return 0, err
	}
	ids := slices.Clone(s.IDs())
	n := 0
	for _, id := range ids {
		if a.Delete(entities, id) {
			n++
		} else {
			// owner died without cascading, drop the orphan
			s.Remove(id)
		}
	}
	return n, nil
}

// StorageMut returns an exclusive view of the storage of T, covered by the
// AllStorages borrow. Using it after a is released panics.
func StorageMut[T any](a *AllStorages) (*ViewMut[T], error) {
	a.check()
	s, err := storageOf[T](a.w)
	if err != nil {
		return nil, err
	}
	v := &ViewMut[T]{set: s}
	v.owner = &a.guard
	return v, nil
}

// Len returns the number of component storages.
func (a *AllStorages) Len() int {
	a.check()
	a.w.mu.RLock()
	defer a.w.mu.RUnlock()
	return len(a.w.storages)
}

// TypeIDs returns the TypeID of every component storage, sorted.
func (a *AllStorages) TypeIDs() []TypeID {
	a.check()
	ids := make([]TypeID, 0)
	for _, s := range a.snapshot() {
		ids = append(ids, s.TypeID())
	}
	slices.Sort(ids)
	return ids
}

// ClearTracking ends the tracking epoch of every storage and unique.
func (a *AllStorages) ClearTracking() {
	a.check()
	for _, s := range a.snapshot() {
		s.ClearTracking()
	}
	a.w.mu.RLock()
	defer a.w.mu.RUnlock()
	for _, u := range a.w.uniques {
		u.clearModified()
	}
}
