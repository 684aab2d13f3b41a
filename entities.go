package kura

import (
	"fmt"
	"iter"
)

// Entities owns every entity slot: living, removed and dead.
//
// Removed slots form a FIFO linked list threaded through the index part of
// the slots themselves. Deleting pushes at the tail, generating pops from the
// head. A slot whose generation cannot be bumped any further is retired: it is
// never linked again and its index is never handed out again.
type Entities struct {
	data    []EntityID
	head    uint64
	tail    uint64
	hasFree bool
	alive   int
	retired int
}

// NewEntities creates an empty allocator with room for capacity slots.
func NewEntities(capacity int) *Entities {
	return &Entities{data: make([]EntityID, 0, capacity)}
}

// Generate returns a live EntityID, reusing the oldest removed slot when one
// is available. It panics if the index space is exhausted.
func (e *Entities) Generate() EntityID {
	e.alive++
	if e.hasFree {
		index := e.head
		slot := &e.data[index]
		if e.head == e.tail {
			e.hasFree = false
		} else {
			e.head = slot.Index()
		}
		slot.setIndex(index)
		return *slot
	}
	index := uint64(len(e.data))
	if index > MaxIndex {
		panic(fmt.Sprintf("ecs: entity index space exhausted (%d)", MaxIndex))
	}
	id := NewEntityID(index, 0)
	e.data = append(e.data, id)
	return id
}

// Delete removes id from the allocator. It returns true if id was alive.
// Stale, dead or never-allocated handles return false.
func (e *Entities) Delete(id EntityID) bool {
	alive, _ := e.delete(id)
	return alive
}

// delete reports whether id was alive and whether its slot got retired.
func (e *Entities) delete(id EntityID) (alive, retired bool) {
	if !e.IsAlive(id) {
		return false, false
	}
	index := id.Index()
	slot := &e.data[index]
	e.alive--
	if !slot.bumpGen() {
		slot.kill()
		e.retired++
		return true, true
	}
	if e.hasFree {
		e.data[e.tail].setIndex(index)
		e.tail = index
	} else {
		e.head, e.tail = index, index
		e.hasFree = true
	}
	return true, false
}

// IsAlive checks that id matches the generation currently stored at its index.
// The free-list tail points at itself and already carries the generation of
// its next handout, so it never counts as alive.
func (e *Entities) IsAlive(id EntityID) bool {
	index := id.Index()
	if index >= uint64(len(e.data)) || id.isDead() {
		return false
	}
	return e.data[index] == id && !e.isFree(index)
}

// Len returns the number of living entities.
func (e *Entities) Len() int {
	return e.alive
}

// Retired returns the number of slots that reached the maximum generation and
// will never be reused.
func (e *Entities) Retired() int {
	return e.retired
}

// Iter yields every living entity in index order.
func (e *Entities) Iter() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for i, id := range e.data {
			if id.isDead() || id.Index() != uint64(i) {
				continue
			}
			if e.isFree(uint64(i)) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// isFree reports whether a self-pointing slot is a removed one. Linked free
// slots point at their successor, so only the list tail can point at itself.
func (e *Entities) isFree(index uint64) bool {
	if !e.hasFree {
		return false
	}
	return index == e.tail
}
