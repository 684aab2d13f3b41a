package kura

import "iter"

// Getter retrieves component data by entity. O is what a tracked Get
// returns, F what the untracked FastGet returns. Views are Getters, and so
// are the JoinN combinators, which makes joins nest.
type Getter[O, F any] interface {
	// Get retrieves the data of id, flagging tracked slots as modified on
	// write. It fails with a *MissingComponent.
	Get(id EntityID) (O, error)
	// FastGet retrieves the data of id without touching change tracking.
	FastGet(id EntityID) (F, error)
	// EntityIDs returns candidate owners. Joins return the shortest list
	// among their members.
	EntityIDs() []EntityID
}

// Iter lazily yields every entity for which g.Get succeeds.
//
// Inserting or removing components in a storage joined by g while iterating
// may skip entities.
func Iter[O, F any](g Getter[O, F]) iter.Seq2[EntityID, O] {
	return func(yield func(EntityID, O) bool) {
		for _, id := range g.EntityIDs() {
			out, err := g.Get(id)
			if err != nil {
				continue
			}
			if !yield(id, out) {
				return
			}
		}
	}
}

// FastIter is Iter using FastGet.
func FastIter[O, F any](g Getter[O, F]) iter.Seq2[EntityID, F] {
	return func(yield func(EntityID, F) bool) {
		for _, id := range g.EntityIDs() {
			out, err := g.FastGet(id)
			if err != nil {
				continue
			}
			if !yield(id, out) {
				return
			}
		}
	}
}

// shortest returns the smallest id list.
func shortest(lists ...[]EntityID) []EntityID {
	best := lists[0]
	for _, l := range lists[1:] {
		if len(l) < len(best) {
			best = l
		}
	}
	return best
}
