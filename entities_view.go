package kura

import "iter"

// EntitiesView is a shared borrow of the entity allocator.
type EntitiesView struct {
	guard
	ents *Entities
}

// IsAlive reports whether id is a live handle.
func (v *EntitiesView) IsAlive(id EntityID) bool {
	v.check()
	return v.ents.IsAlive(id)
}

// Len returns the number of living entities.
func (v *EntitiesView) Len() int {
	v.check()
	return v.ents.Len()
}

// Iter yields every living entity.
func (v *EntitiesView) Iter() iter.Seq[EntityID] {
	v.check()
	return v.ents.Iter()
}

// EntitiesViewMut is an exclusive borrow of the entity allocator.
type EntitiesViewMut struct {
	guard
	ents *Entities
}

// Generate returns a new live handle.
func (v *EntitiesViewMut) Generate() EntityID {
	v.check()
	return v.ents.Generate()
}

// Delete frees id in the allocator only. Components are left in place; use
// AllStorages.Delete to cascade.
func (v *EntitiesViewMut) Delete(id EntityID) bool {
	v.check()
	return v.ents.Delete(id)
}

// IsAlive reports whether id is a live handle.
func (v *EntitiesViewMut) IsAlive(id EntityID) bool {
	v.check()
	return v.ents.IsAlive(id)
}

// Len returns the number of living entities.
func (v *EntitiesViewMut) Len() int {
	v.check()
	return v.ents.Len()
}

// Iter yields every living entity.
func (v *EntitiesViewMut) Iter() iter.Seq[EntityID] {
	v.check()
	return v.ents.Iter()
}
