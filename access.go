package kura

import "fmt"

// Target is the kind of thing an Access borrows.
type Target uint8

const (
	// TargetStorage is a component storage.
	TargetStorage Target = iota
	// TargetUnique is a unique.
	TargetUnique
	// TargetEntities is the entity allocator.
	TargetEntities
	// TargetAllStorages is every storage and unique at once.
	TargetAllStorages
)

// Access declares one borrow a unit of work needs. Schedulers use it to
// decide which units may run at the same time.
type Access struct {
	Target Target
	Type   TypeID
	Mode   Mode
}

// Read declares a shared borrow of the storage of T.
func Read[T any]() Access { return Access{Target: TargetStorage, Type: TypeOf[T](), Mode: Shared} }

// Write declares an exclusive borrow of the storage of T.
func Write[T any]() Access { return Access{Target: TargetStorage, Type: TypeOf[T](), Mode: Exclusive} }

// ReadUnique declares a shared borrow of the unique T.
func ReadUnique[T any]() Access { return Access{Target: TargetUnique, Type: TypeOf[T](), Mode: Shared} }

// WriteUnique declares an exclusive borrow of the unique T.
func WriteUnique[T any]() Access {
	return Access{Target: TargetUnique, Type: TypeOf[T](), Mode: Exclusive}
}

// ReadEntities declares a shared borrow of the entity allocator.
func ReadEntities() Access {
	return Access{Target: TargetEntities, Type: TypeOf[Entities](), Mode: Shared}
}

// WriteEntities declares an exclusive borrow of the entity allocator.
func WriteEntities() Access {
	return Access{Target: TargetEntities, Type: TypeOf[Entities](), Mode: Exclusive}
}

// WriteAllStorages declares an exclusive borrow of every storage and unique.
func WriteAllStorages() Access {
	return Access{Target: TargetAllStorages, Type: TypeOf[AllStorages](), Mode: Exclusive}
}

func (a Access) String() string {
	return fmt.Sprintf("%s(%s)", a.Mode, a.Type)
}

// ConflictsWith reports whether a and b cannot be held at the same time.
func (a Access) ConflictsWith(b Access) bool {
	if a.Mode == Shared && b.Mode == Shared {
		return false
	}
	switch {
	case a.Target == TargetAllStorages:
		return b.Target != TargetEntities
	case b.Target == TargetAllStorages:
		return a.Target != TargetEntities
	}
	return a.Target == b.Target && a.Type == b.Type
}

// Requirements is the set of borrows a unit of work declares.
type Requirements []Access

// ConflictsWith reports whether any borrow of r conflicts with one of o.
// Two units may run concurrently iff their requirements do not conflict.
func (r Requirements) ConflictsWith(o Requirements) bool {
	for _, a := range r {
		for _, b := range o {
			if a.ConflictsWith(b) {
				return true
			}
		}
	}
	return false
}

// Validate checks that r can be acquired by a single unit, i.e. it does not
// conflict with itself.
func (r Requirements) Validate() error {
	for i, a := range r {
		for _, b := range r[i+1:] {
			if a.ConflictsWith(b) {
				return fmt.Errorf("%w: %s and %s in the same requirements", ErrBorrowConflict, a, b)
			}
		}
	}
	return nil
}
