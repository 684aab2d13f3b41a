package kura

import (
	"errors"
	"fmt"
)

var (
	// ErrBorrowConflict is matched by every *BorrowError.
	ErrBorrowConflict = errors.New("ecs: borrow conflict")
	// ErrEntityNotAlive is returned when a stale or deleted handle is used to
	// add data.
	ErrEntityNotAlive = errors.New("ecs: entity is not alive")
	// ErrDuplicateComponent is returned when the same component type appears
	// twice in one AddEntity call.
	ErrDuplicateComponent = errors.New("ecs: duplicate component type")
	// ErrUniqueExists is returned by AddUnique when the World already holds
	// a unique of that type.
	ErrUniqueExists = errors.New("ecs: unique already exists")
	// ErrMissingUnique is returned when borrowing or removing a unique that
	// was never added.
	ErrMissingUnique = errors.New("ecs: missing unique")
	// ErrTypeIDCollision is returned when two distinct Go types hash to the
	// same TypeID.
	ErrTypeIDCollision = errors.New("ecs: type id collision")
)

// MissingComponent is returned by Get and FastGet when the entity has no
// component in the storage. It does not distinguish a live entity lacking
// the component from a deleted or never-allocated one.
type MissingComponent struct {
	ID   EntityID
	Type TypeID
	Name string
}

func (e *MissingComponent) Error() string {
	return fmt.Sprintf("ecs: entity %s has no component %s (%s)", e.ID, e.Name, e.Type)
}

func missing[T any](id EntityID) *MissingComponent {
	return &MissingComponent{ID: id, Type: TypeOf[T](), Name: typeName[T]()}
}

// Mode is the kind of borrow held on a storage.
type Mode uint8

const (
	// Shared borrows may coexist with other shared borrows.
	Shared Mode = iota
	// Exclusive borrows exclude every other borrow of the same target.
	Exclusive
)

func (m Mode) String() string {
	if m == Exclusive {
		return "exclusive"
	}
	return "shared"
}

// BorrowError reports a borrow that could not be granted.
type BorrowError struct {
	Name string
	Type TypeID
	Mode Mode
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("ecs: cannot borrow %s (%s) as %s: already borrowed", e.Name, e.Type, e.Mode)
}

// Is makes errors.Is(err, ErrBorrowConflict) hold.
func (e *BorrowError) Is(target error) bool {
	return target == ErrBorrowConflict
}
