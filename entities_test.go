package kura

import (
	"slices"
	"testing"
)

// go test -run ^TestEntitiesFreeListFIFO$ . -count 1
func TestEntitiesFreeListFIFO(t *testing.T) {
	e := NewEntities(0)

	key00 := e.Generate()
	key10 := e.Generate()
	if key00 != NewEntityID(0, 0) || key10 != NewEntityID(1, 0) {
		t.Fatalf("unexpected first handles %s %s", key00, key10)
	}

	if !e.Delete(key00) {
		t.Fatal("deleting a live handle should return true")
	}
	if e.Delete(key00) {
		t.Fatal("deleting a removed handle should return false")
	}
	key01 := e.Generate()
	if key01 != NewEntityID(0, 1) {
		t.Fatalf("expected index 0 generation 1, got %s", key01)
	}

	if !e.Delete(key10) || !e.Delete(key01) {
		t.Fatal("deleting live handles should return true")
	}
	key11 := e.Generate()
	key02 := e.Generate()
	if key11 != NewEntityID(1, 1) {
		t.Errorf("expected index 1 generation 1, got %s", key11)
	}
	if key02 != NewEntityID(0, 2) {
		t.Errorf("expected index 0 generation 2, got %s", key02)
	}
}

// go test -run ^TestEntitiesRetireSlot$ . -count 1
func TestEntitiesRetireSlot(t *testing.T) {
	e := NewEntities(0)
	e.Generate()
	e.Generate()

	last := NewEntityID(0, MaxGen)
	e.data[0] = last
	alive, retired := e.delete(last)
	if !alive || !retired {
		t.Fatalf("expected alive and retired, got %v %v", alive, retired)
	}
	if e.hasFree {
		t.Error("a retired slot must not enter the free list")
	}
	if e.IsAlive(last) {
		t.Error("a retired handle must not be alive")
	}
	if e.Retired() != 1 {
		t.Errorf("expected 1 retired slot, got %d", e.Retired())
	}
	fresh := e.Generate()
	if fresh != NewEntityID(2, 0) {
		t.Errorf("expected a brand new slot at index 2, got %s", fresh)
	}
}

// go test -run ^TestEntitiesGenerationMonotonic$ . -count 1
func TestEntitiesGenerationMonotonic(t *testing.T) {
	e := NewEntities(0)
	id := e.Generate()
	seen := []EntityID{id}
	for n := uint64(1); n <= 100; n++ {
		if !e.Delete(id) {
			t.Fatalf("cycle %d: delete failed", n)
		}
		id = e.Generate()
		if id.Index() != 0 || id.Gen() != n {
			t.Fatalf("cycle %d: expected (0, %d), got %s", n, n, id)
		}
		for _, old := range seen {
			if old == id || e.IsAlive(old) {
				t.Fatalf("cycle %d: stale handle %s matches live %s", n, old, id)
			}
		}
		seen = append(seen, id)
	}
}

// go test -run ^TestEntitiesIter$ . -count 1
func TestEntitiesIter(t *testing.T) {
	e := NewEntities(4)
	a := e.Generate()
	b := e.Generate()
	c := e.Generate()
	d := e.Generate()
	e.Delete(b)
	e.Delete(d)

	got := slices.Collect(e.Iter())
	want := []EntityID{a, c}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if e.Len() != 2 {
		t.Errorf("expected 2 live entities, got %d", e.Len())
	}
}

// go test -run ^TestEntitiesUnissuedHandle$ . -count 1
func TestEntitiesUnissuedHandle(t *testing.T) {
	e := NewEntities(0)
	a := e.Generate()
	b := e.Generate()
	c := e.Generate()
	e.Delete(a)

	next := NewEntityID(a.Index(), a.Gen()+1)
	if e.IsAlive(next) {
		t.Errorf("%s sits on the free list and must not be alive", next)
	}
	if e.Delete(next) {
		t.Errorf("deleting %s before it is handed out should return false", next)
	}
	if e.Len() != 2 {
		t.Errorf("expected 2 living entities, got %d", e.Len())
	}

	// a no longer is the tail once c is pushed behind it
	e.Delete(c)
	if e.IsAlive(next) || e.IsAlive(NewEntityID(c.Index(), c.Gen()+1)) {
		t.Error("no free slot may be alive")
	}

	if got := e.Generate(); got != next {
		t.Fatalf("expected the reused handle %s, got %s", next, got)
	}
	if !e.IsAlive(next) || !e.IsAlive(b) || e.Len() != 2 {
		t.Errorf("expected %s and %s alive, Len=%d", next, b, e.Len())
	}
}
