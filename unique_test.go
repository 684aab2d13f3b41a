package kura_test

import (
	"errors"
	"testing"

	"github.com/edwinsyarief/kura"
)

type Gravity struct{ G float32 }
type Tick struct{ N int }

func TestUniques(t *testing.T) {
	t.Run("Add and Borrow", func(t *testing.T) {
		w := kura.NewWorld()
		if err := kura.AddUnique(w, Gravity{G: 9.8}); err != nil {
			t.Fatal(err)
		}
		v, err := kura.BorrowUnique[Gravity](w)
		if err != nil {
			t.Fatal(err)
		}
		defer v.Release()
		if v.Get().G != 9.8 {
			t.Errorf("expected 9.8, got %v", v.Get().G)
		}
		if v.IsModified() {
			t.Error("a new unique is not modified")
		}
	})

	t.Run("Add same type fails", func(t *testing.T) {
		w := kura.NewWorld()
		kura.AddUnique(w, Tick{})
		if err := kura.AddUnique(w, Tick{N: 1}); !errors.Is(err, kura.ErrUniqueExists) {
			t.Errorf("expected ErrUniqueExists, got %v", err)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		w := kura.NewWorld()
		if _, err := kura.BorrowUnique[Tick](w); !errors.Is(err, kura.ErrMissingUnique) {
			t.Errorf("expected ErrMissingUnique, got %v", err)
		}
	})

	t.Run("Mutate and track", func(t *testing.T) {
		w := kura.NewWorld()
		kura.AddUnique(w, Tick{})
		m, err := kura.BorrowUniqueMut[Tick](w)
		if err != nil {
			t.Fatal(err)
		}
		_ = m.Get().N
		if m.IsModified() {
			t.Error("Get must not flag")
		}
		m.Ptr().N++
		m.Set(Tick{N: m.Get().N + 1})
		if !m.IsModified() {
			t.Error("expected modified after Ptr")
		}
		if _, err := kura.BorrowUnique[Tick](w); !errors.Is(err, kura.ErrBorrowConflict) {
			t.Errorf("expected a conflict, got %v", err)
		}
		m.Release()

		v, _ := kura.BorrowUnique[Tick](w)
		if v.Get().N != 2 || !v.IsModified() {
			t.Errorf("expected N=2 modified, got %+v %v", *v.Get(), v.IsModified())
		}
		v.Release()

		all, _ := kura.BorrowAllStorages(w)
		all.ClearTracking()
		all.Release()
		v, _ = kura.BorrowUnique[Tick](w)
		defer v.Release()
		if v.IsModified() {
			t.Error("ClearTracking should reset uniques")
		}
	})

	t.Run("Remove", func(t *testing.T) {
		w := kura.NewWorld()
		kura.AddUnique(w, Gravity{G: 1})
		v, _ := kura.BorrowUnique[Gravity](w)
		if _, err := kura.RemoveUnique[Gravity](w); !errors.Is(err, kura.ErrBorrowConflict) {
			t.Errorf("removing a borrowed unique should conflict, got %v", err)
		}
		v.Release()
		g, err := kura.RemoveUnique[Gravity](w)
		if err != nil || g.G != 1 {
			t.Fatalf("unexpected remove result %+v %v", g, err)
		}
		if _, err := kura.BorrowUnique[Gravity](w); !errors.Is(err, kura.ErrMissingUnique) {
			t.Errorf("expected ErrMissingUnique after remove, got %v", err)
		}
	})
}
