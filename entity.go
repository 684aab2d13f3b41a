// Package kura is a sparse-set Entity Component Store for Go.
//
// Features:
//   - Generational entity handles packed into a single machine word.
//   - One sparse set per component type: O(1) insert, remove and lookup with
//     dense, cache-friendly iteration.
//   - Runtime borrow checking (shared or exclusive per storage) that fails
//     fast instead of blocking.
//   - Change tracking (inserted / modified) per component slot.
//   - Generated tuple joins for up to 10 component types.
//
//go:generate go run ./cmd/generate
package kura

import (
	"fmt"
	"math/bits"
)

// EntityID is an opaque handle to an entity. The low bits hold the index of
// the entity slot, the high bits hold its generation. On 64-bit platforms the
// generation uses 16 bits, otherwise 12.
type EntityID uint

const (
	genLen    = 12 + 4*(bits.UintSize/64)
	genShift  = bits.UintSize - genLen
	indexMask = ^uint(0) >> genLen
	genMask   = ^indexMask

	// maxGen is reserved: a slot carrying it is dead and never reused.
	maxGen = uint64(1)<<genLen - 1
)

// DeadEntity is a handle that never matches a live entity.
const DeadEntity = EntityID(^uint(0))

// MaxIndex is the largest index an EntityID can address.
const MaxIndex = uint64(indexMask)

// MaxGen is the largest generation a live entity can carry.
const MaxGen = maxGen - 1

// NewEntityID packs an index and a generation into an EntityID.
// It panics if either part exceeds its bit budget.
func NewEntityID(index, gen uint64) EntityID {
	if index > MaxIndex {
		panic(fmt.Sprintf("ecs: entity index %d exceeds maximum (%d)", index, MaxIndex))
	}
	if gen > maxGen {
		panic(fmt.Sprintf("ecs: entity generation %d exceeds maximum (%d)", gen, maxGen))
	}
	return EntityID(uint(index) | uint(gen)<<genShift)
}

// Index returns the slot index of the entity.
func (e EntityID) Index() uint64 {
	return uint64(uint(e) & indexMask)
}

// Gen returns the generation of the entity.
func (e EntityID) Gen() uint64 {
	return uint64((uint(e) & genMask) >> genShift)
}

// String implements fmt.Stringer.
func (e EntityID) String() string {
	if e == DeadEntity {
		return "EntityID(dead)"
	}
	return fmt.Sprintf("EntityID(%d:%d)", e.Index(), e.Gen())
}

func (e *EntityID) setIndex(index uint64) {
	if index > MaxIndex {
		panic(fmt.Sprintf("ecs: entity index %d exceeds maximum (%d)", index, MaxIndex))
	}
	*e = EntityID(uint(*e)&genMask | uint(index))
}

// bumpGen increments the generation. It returns false, leaving e untouched,
// when the next generation would reach the reserved dead value.
func (e *EntityID) bumpGen() bool {
	gen := e.Gen()
	if gen >= MaxGen {
		return false
	}
	*e = EntityID(uint(*e)&indexMask | uint(gen+1)<<genShift)
	return true
}

// kill marks the slot dead in place, keeping its index.
func (e *EntityID) kill() {
	*e = EntityID(uint(*e) | genMask)
}

func (e EntityID) isDead() bool {
	return e.Gen() == maxGen
}
