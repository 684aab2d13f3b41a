package kura

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

const (
	entitiesName    = "Entities"
	allStoragesName = "AllStorages"
)

// World is the registry tying the entity allocator to one storage per
// component type and one per unique.
//
// A World is safe for concurrent use: every access goes through a borrow,
// and conflicting borrows fail immediately with a *BorrowError. mu only
// guards the registry maps, never the storage contents.
type World struct {
	mu             sync.RWMutex
	entities       *Entities
	storages       map[TypeID]Storage
	uniques        map[TypeID]uniqueStorage
	events         *EventBus
	logger         *zap.Logger
	entitiesBorrow borrowState
	all            borrowState // storage borrows hold it shared, AllStorages exclusive
	capacity       int
}

// NewWorld creates an empty World.
//
// Parameters:
//   - opts: Options such as WithLogger and WithEntityCapacity.
//
// Returns:
//   - The newly created World.
func NewWorld(opts ...Option) *World {
	w := &World{
		storages: make(map[TypeID]Storage, 16),
		uniques:  make(map[TypeID]uniqueStorage),
		events:   &EventBus{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.entities = NewEntities(w.capacity)
	return w
}

// Events returns the bus on which the World publishes EntityDeleted and
// SlotRetired.
func (w *World) Events() *EventBus {
	return w.events
}

// Logger returns the World's logger.
func (w *World) Logger() *zap.Logger {
	return w.logger
}

func (w *World) conflict(name string, id TypeID, mode Mode) error {
	w.logger.Debug("borrow conflict",
		zap.String("storage", name),
		zap.Stringer("type_id", id),
		zap.Stringer("mode", mode))
	return &BorrowError{Name: name, Type: id, Mode: mode}
}

// acquire borrows a storage or unique. The World's all-storages state is
// held shared for as long as the borrow lives.
func (w *World) acquire(g *guard, name string, id TypeID, state *borrowState, mode Mode) error {
	if !w.all.tryShared() {
		return w.conflict(allStoragesName, TypeOf[AllStorages](), mode)
	}
	if !state.try(mode) {
		w.all.release(Shared)
		return w.conflict(name, id, mode)
	}
	g.init(state, &w.all, mode)
	return nil
}

// acquireAll borrows every storage in mode, rolling back on the first
// failure.
func (w *World) acquireAll(storages []Storage, mode Mode) ([]*guard, error) {
	guards := make([]*guard, 0, len(storages))
	for _, s := range storages {
		g := &guard{}
		if err := w.acquire(g, s.Type().String(), s.TypeID(), s.state(), mode); err != nil {
			releaseAll(guards)
			return nil, err
		}
		guards = append(guards, g)
	}
	return guards, nil
}

func releaseAll(guards []*guard) {
	for _, g := range guards {
		g.Release()
	}
}

// spawn generates an entity and lets fill insert its components while the
// entities and every storage are borrowed exclusively.
func (w *World) spawn(storages []Storage, fill func(EntityID)) (EntityID, error) {
	for i, a := range storages {
		for _, b := range storages[i+1:] {
			if a.TypeID() == b.TypeID() {
				return DeadEntity, fmt.Errorf("%w: %s", ErrDuplicateComponent, a.Type())
			}
		}
	}
	ents, err := BorrowEntitiesMut(w)
	if err != nil {
		return DeadEntity, err
	}
	defer ents.Release()
	guards, err := w.acquireAll(storages, Exclusive)
	if err != nil {
		return DeadEntity, err
	}
	defer releaseAll(guards)
	id := ents.Generate()
	fill(id)
	return id, nil
}

// AddEntity creates an entity without components.
//
// Parameters:
//   - w: The World to create the entity in.
//
// Returns:
//   - The new EntityID, or DeadEntity and a *BorrowError if the entity
//     allocator is borrowed.
func AddEntity(w *World) (EntityID, error) {
	ents, err := BorrowEntitiesMut(w)
	if err != nil {
		return DeadEntity, err
	}
	defer ents.Release()
	return ents.Generate(), nil
}

// BorrowView borrows the storage of T shared. The storage is created on
// first use.
//
// Parameters:
//   - w: The World owning the storage.
//
// Returns:
//   - A *View[T] that must be released, or a *BorrowError if the storage or
//     AllStorages is borrowed exclusively.
func BorrowView[T any](w *World) (*View[T], error) {
	s, err := storageOf[T](w)
	if err != nil {
		return nil, err
	}
	v := &View[T]{set: s}
	if err := w.acquire(&v.guard, typeName[T](), TypeOf[T](), s.state(), Shared); err != nil {
		return nil, err
	}
	return v, nil
}

// BorrowViewMut borrows the storage of T exclusively.
//
// Parameters:
//   - w: The World owning the storage.
//
// Returns:
//   - A *ViewMut[T] that must be released, or a *BorrowError if the storage
//     or AllStorages is borrowed at all.
func BorrowViewMut[T any](w *World) (*ViewMut[T], error) {
	s, err := storageOf[T](w)
	if err != nil {
		return nil, err
	}
	v := &ViewMut[T]{set: s}
	if err := w.acquire(&v.guard, typeName[T](), TypeOf[T](), s.state(), Exclusive); err != nil {
		return nil, err
	}
	return v, nil
}

// BorrowEntities borrows the entity allocator shared.
//
// Returns:
//   - An *EntitiesView, or a *BorrowError if the allocator is borrowed
//     exclusively.
func BorrowEntities(w *World) (*EntitiesView, error) {
	if !w.entitiesBorrow.tryShared() {
		return nil, w.conflict(entitiesName, TypeOf[Entities](), Shared)
	}
	v := &EntitiesView{ents: w.entities}
	v.init(&w.entitiesBorrow, nil, Shared)
	return v, nil
}

// BorrowEntitiesMut borrows the entity allocator exclusively.
//
// Returns:
//   - An *EntitiesViewMut, or a *BorrowError if the allocator is borrowed.
func BorrowEntitiesMut(w *World) (*EntitiesViewMut, error) {
	if !w.entitiesBorrow.tryExclusive() {
		return nil, w.conflict(entitiesName, TypeOf[Entities](), Exclusive)
	}
	v := &EntitiesViewMut{ents: w.entities}
	v.init(&w.entitiesBorrow, nil, Exclusive)
	return v, nil
}

// BorrowAllStorages borrows every storage and unique exclusively. It fails
// while any storage or unique is borrowed. The entity allocator is not
// covered and is borrowed separately.
//
// Returns:
//   - An *AllStorages that must be released, or a *BorrowError.
func BorrowAllStorages(w *World) (*AllStorages, error) {
	if !w.all.tryExclusive() {
		return nil, w.conflict(allStoragesName, TypeOf[AllStorages](), Exclusive)
	}
	a := &AllStorages{w: w}
	a.init(&w.all, nil, Exclusive)
	return a, nil
}

// AddComponent adds or overwrites the component T of a live entity.
//
// Parameters:
//   - w: The World owning the entity.
//   - id: A live EntityID.
//   - value: The component to store.
//
// Returns:
//   - ErrEntityNotAlive for a stale or deleted id, a *BorrowError if the
//     storage or allocator is borrowed, nil otherwise.
func AddComponent[T any](w *World, id EntityID, value T) error {
	s, err := storageOf[T](w)
	if err != nil {
		return err
	}
	ents, err := BorrowEntities(w)
	if err != nil {
		return err
	}
	defer ents.Release()
	if !ents.IsAlive(id) {
		return fmt.Errorf("%w: %s", ErrEntityNotAlive, id)
	}
	v := &ViewMut[T]{set: s}
	if err := w.acquire(&v.guard, typeName[T](), TypeOf[T](), s.state(), Exclusive); err != nil {
		return err
	}
	defer v.Release()
	v.Insert(id, value)
	return nil
}

// RemoveComponent removes and returns the component T of id. The boolean is
// false if id had none.
func RemoveComponent[T any](w *World, id EntityID) (T, bool, error) {
	var zero T
	v, err := BorrowViewMut[T](w)
	if err != nil {
		return zero, false, err
	}
	defer v.Release()
	value, ok := v.Remove(id)
	return value, ok, nil
}

// GetComponent returns a copy of the component T of id.
func GetComponent[T any](w *World, id EntityID) (T, error) {
	var zero T
	v, err := BorrowView[T](w)
	if err != nil {
		return zero, err
	}
	defer v.Release()
	p, err := v.Get(id)
	if err != nil {
		return zero, err
	}
	return *p, nil
}

// Delete deletes id and every component it owns. It returns false if id
// was not alive.
func (w *World) Delete(id EntityID) (bool, error) {
	ents, err := BorrowEntitiesMut(w)
	if err != nil {
		return false, err
	}
	defer ents.Release()
	all, err := BorrowAllStorages(w)
	if err != nil {
		return false, err
	}
	defer all.Release()
	return all.Delete(ents, id), nil
}
