package kura_test

import (
	"errors"
	"testing"

	"github.com/edwinsyarief/kura"
)

func TestAccessConflicts(t *testing.T) {
	tests := []struct {
		name string
		a, b kura.Access
		want bool
	}{
		{"read read", kura.Read[Position](), kura.Read[Position](), false},
		{"read write", kura.Read[Position](), kura.Write[Position](), true},
		{"write write", kura.Write[Position](), kura.Write[Position](), true},
		{"different types", kura.Write[Position](), kura.Write[Velocity](), false},
		{"unique vs storage", kura.WriteUnique[Position](), kura.Write[Position](), false},
		{"unique write read", kura.WriteUnique[Gravity](), kura.ReadUnique[Gravity](), true},
		{"entities", kura.ReadEntities(), kura.WriteEntities(), true},
		{"all storages vs storage", kura.WriteAllStorages(), kura.Read[Position](), true},
		{"all storages vs unique", kura.ReadUnique[Gravity](), kura.WriteAllStorages(), true},
		{"all storages vs entities", kura.WriteAllStorages(), kura.WriteEntities(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ConflictsWith(tt.b); got != tt.want {
				t.Errorf("%s vs %s: got %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.ConflictsWith(tt.a); got != tt.want {
				t.Errorf("conflicts must be symmetric for %s and %s", tt.a, tt.b)
			}
		})
	}
}

func TestRequirements(t *testing.T) {
	movement := kura.Requirements{kura.Write[Position](), kura.Read[Velocity]()}
	render := kura.Requirements{kura.Read[Position]()}
	damage := kura.Requirements{kura.Write[Health](), kura.Read[Velocity]()}

	if !movement.ConflictsWith(render) {
		t.Error("movement and render both touch Position")
	}
	if movement.ConflictsWith(damage) {
		t.Error("movement and damage may run concurrently")
	}
	if err := movement.Validate(); err != nil {
		t.Error(err)
	}
	bad := kura.Requirements{kura.Read[Position](), kura.Write[Position]()}
	if err := bad.Validate(); !errors.Is(err, kura.ErrBorrowConflict) {
		t.Errorf("expected ErrBorrowConflict, got %v", err)
	}
}
