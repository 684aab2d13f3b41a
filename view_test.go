package kura_test

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/edwinsyarief/kura"
)

// go test -run ^TestJoinShortCircuit$ . -count 1
func TestJoinShortCircuit(t *testing.T) {
	w := kura.NewWorld()
	e, _ := kura.AddEntity1(w, Position{X: 1})
	kura.AddEntity1(w, Velocity{VX: 1})

	pos, _ := kura.BorrowView[Position](w)
	defer pos.Release()
	vel, _ := kura.BorrowView[Velocity](w)
	defer vel.Release()

	_, err := kura.Join2(pos, vel).Get(e)
	var mc *kura.MissingComponent
	if !errors.As(err, &mc) {
		t.Fatalf("expected MissingComponent, got %v", err)
	}
	if mc.ID != e || mc.Type != kura.TypeOf[Velocity]() || mc.Name != "kura_test.Velocity" {
		t.Errorf("MissingComponent should name Velocity for %s, got %+v", e, mc)
	}
	if _, err := kura.Join2(vel, pos).FastGet(e); !errors.As(err, &mc) || mc.Type != kura.TypeOf[Velocity]() {
		t.Errorf("expected the first member to fail first, got %v", err)
	}
}

// go test -run ^TestJoinGet$ . -count 1
func TestJoinGet(t *testing.T) {
	w := kura.NewWorld()
	e, _ := kura.AddEntity3(w, Position{X: 1}, Velocity{VX: 2}, Health{HP: 3})

	pos, _ := kura.BorrowViewMut[Position](w)
	defer pos.Release()
	vel, _ := kura.BorrowView[Velocity](w)
	defer vel.Release()
	hp, _ := kura.BorrowView[Health](w)
	defer hp.Release()

	out, err := kura.Join2(kura.Join2(pos, vel), hp).Get(e)
	if err != nil {
		t.Fatal(err)
	}
	inner, h := out.Unpack()
	p, v := inner.Unpack()
	if p.Get().X != 1 || v.VX != 2 || h.HP != 3 {
		t.Errorf("unexpected join output %+v %+v %+v", p.Get(), v, h)
	}

	fast, err := kura.Join3(pos, vel, hp).FastGet(e)
	if err != nil {
		t.Fatal(err)
	}
	fast.V1.X = 9
	if pos.IsModified(e) {
		t.Error("FastGet must not flag")
	}
	if got, _ := pos.FastGet(e); got.X != 9 {
		t.Errorf("write through FastGet lost, got %+v", got)
	}
}

// go test -run ^TestMutFlagOnce$ . -count 1
func TestMutFlagOnce(t *testing.T) {
	w := kura.NewWorld()
	a, _ := kura.AddEntity1(w, Health{HP: 10})
	b, _ := kura.AddEntity1(w, Health{HP: 20})

	hp, _ := kura.BorrowViewMut[Health](w)
	defer hp.Release()

	m, _ := hp.Get(a)
	m.Ptr().HP = 11
	if hp.IsModified(a) {
		t.Error("a component inserted this epoch is not flagged modified")
	}
	hp.ClearInserted()

	m, _ = hp.Get(a)
	_ = m.Get().HP
	if hp.IsModified(a) {
		t.Error("reading through Mut must not flag")
	}
	m.Ptr().HP = 12
	m2, _ := hp.Get(a)
	m2.Set(Health{HP: 13})
	if got := slices.Collect(hp.Modified()); !slices.Equal(got, []kura.EntityID{a}) {
		t.Errorf("expected exactly [%s] modified, got %v", a, got)
	}

	p, _ := hp.FastGet(b)
	p.HP = 21
	if hp.IsModified(b) {
		t.Error("FastGet must never flag")
	}

	hp.ClearModified()
	if hp.IsModified(a) {
		t.Error("ClearModified should end the epoch")
	}
	if _, err := hp.Get(kura.DeadEntity); err == nil {
		t.Error("expected MissingComponent for a dead handle")
	}
}

// go test -run ^TestIter$ . -count 1
func TestIter(t *testing.T) {
	w := kura.NewWorld()
	for i := range 10 {
		if i%2 == 0 {
			kura.AddEntity2(w, Position{X: float32(i)}, Velocity{VX: 1, VY: 2})
		} else {
			kura.AddEntity1(w, Position{X: float32(i)})
		}
	}

	pos, _ := kura.BorrowViewMut[Position](w)
	vel, _ := kura.BorrowView[Velocity](w)
	pos.ClearTracking()

	count := 0
	for _, out := range kura.Iter(kura.Join2(pos, vel)) {
		p, v := out.Unpack()
		p.Ptr().X += v.VX
		count++
	}
	if count != 5 {
		t.Errorf("expected 5 entities with both components, got %d", count)
	}
	if got := len(slices.Collect(pos.Modified())); got != 5 {
		t.Errorf("expected 5 modified positions, got %d", got)
	}

	pos.ClearModified()
	fast := 0
	for _, out := range kura.FastIter(kura.Join2(pos.Read(), vel)) {
		out.V1.Y = out.V2.VY
		fast++
	}
	if fast != 5 || len(slices.Collect(pos.Modified())) != 0 {
		t.Errorf("FastIter visited %d entities and must not flag", fast)
	}

	seen := 0
	for range pos.Iter() {
		seen++
	}
	if seen != 10 {
		t.Errorf("expected 10 positions, got %d", seen)
	}
	pos.Release()
	vel.Release()

	view, _ := kura.BorrowView[Position](w)
	defer view.Release()
	sum := float32(0)
	for _, p := range kura.Iter(view) {
		sum += p.X
	}
	// 0..9 plus one per even entity
	if sum != 50 {
		t.Errorf("expected sum 50, got %v", sum)
	}
}

type c1 struct{ V int }
type c2 struct{ V int }
type c3 struct{ V int }
type c4 struct{ V int }
type c5 struct{ V int }
type c6 struct{ V int }
type c7 struct{ V int }
type c8 struct{ V int }
type c9 struct{ V int }
type c10 struct{ V int }

// go test -run ^TestJoin10$ . -count 1
func TestJoin10(t *testing.T) {
	w := kura.NewWorld()
	e, err := kura.AddEntity10(w, c1{1}, c2{2}, c3{3}, c4{4}, c5{5}, c6{6}, c7{7}, c8{8}, c9{9}, c10{10})
	if err != nil {
		t.Fatal(err)
	}
	v1, _ := kura.BorrowView[c1](w)
	v2, _ := kura.BorrowView[c2](w)
	v3, _ := kura.BorrowView[c3](w)
	v4, _ := kura.BorrowView[c4](w)
	v5, _ := kura.BorrowView[c5](w)
	v6, _ := kura.BorrowView[c6](w)
	v7, _ := kura.BorrowView[c7](w)
	v8, _ := kura.BorrowView[c8](w)
	v9, _ := kura.BorrowView[c9](w)
	v10, err := kura.BorrowViewMut[c10](w)
	if err != nil {
		t.Fatal(err)
	}
	out, err := kura.Join10(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10).Get(e)
	if err != nil {
		t.Fatal(err)
	}
	a1, a2, a3, a4, a5, a6, a7, a8, a9, a10 := out.Unpack()
	total := a1.V + a2.V + a3.V + a4.V + a5.V + a6.V + a7.V + a8.V + a9.V + a10.Get().V
	if total != 55 {
		t.Errorf("expected 55, got %d", total)
	}
	for _, v := range []interface{ Release() }{v1, v2, v3, v4, v5, v6, v7, v8, v9, v10} {
		v.Release()
	}
}

// go test -run ^TestBorrowExclusive$ . -count 1
func TestBorrowExclusive(t *testing.T) {
	w := kura.NewWorld()

	first, err := kura.BorrowViewMut[Position](w)
	if err != nil {
		t.Fatal(err)
	}
	_, err = kura.BorrowViewMut[Position](w)
	var be *kura.BorrowError
	if !errors.Is(err, kura.ErrBorrowConflict) || !errors.As(err, &be) || be.Mode != kura.Exclusive {
		t.Fatalf("second exclusive borrow should conflict, got %v", err)
	}
	if _, err := kura.BorrowView[Position](w); !errors.Is(err, kura.ErrBorrowConflict) {
		t.Errorf("shared borrow during an exclusive one should conflict, got %v", err)
	}
	other, err := kura.BorrowViewMut[Velocity](w)
	if err != nil {
		t.Errorf("a different storage should be free: %v", err)
	}
	other.Release()

	first.Release()
	first.Release()
	s1, err := kura.BorrowView[Position](w)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := kura.BorrowView[Position](w)
	if err != nil {
		t.Fatalf("shared borrows should coexist: %v", err)
	}
	if _, err := kura.BorrowViewMut[Position](w); !errors.Is(err, kura.ErrBorrowConflict) {
		t.Errorf("exclusive borrow during shared ones should conflict, got %v", err)
	}
	s1.Release()
	s2.Release()
	if v, err := kura.BorrowViewMut[Position](w); err != nil {
		t.Errorf("storage should be free again: %v", err)
	} else {
		v.Release()
	}
}

// go test -run ^TestBorrowAllStorages$ . -count 1
func TestBorrowAllStorages(t *testing.T) {
	w := kura.NewWorld()
	kura.AddEntity1(w, Position{})

	v, _ := kura.BorrowView[Position](w)
	if _, err := kura.BorrowAllStorages(w); !errors.Is(err, kura.ErrBorrowConflict) {
		t.Errorf("AllStorages during a view should conflict, got %v", err)
	}
	v.Release()

	all, err := kura.BorrowAllStorages(w)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := kura.BorrowView[Velocity](w); !errors.Is(err, kura.ErrBorrowConflict) {
		t.Errorf("a view during AllStorages should conflict, got %v", err)
	}
	ents, err := kura.BorrowEntities(w)
	if err != nil {
		t.Errorf("entities are not covered by AllStorages: %v", err)
	} else {
		ents.Release()
	}
	all.Release()
}

// go test -run ^TestBorrowEntities$ . -count 1
func TestBorrowEntities(t *testing.T) {
	w := kura.NewWorld()
	ents, _ := kura.BorrowEntities(w)
	if _, err := kura.AddEntity(w); !errors.Is(err, kura.ErrBorrowConflict) {
		t.Errorf("AddEntity during a shared entities borrow should conflict, got %v", err)
	}
	ents.Release()
	if _, err := kura.AddEntity(w); err != nil {
		t.Error(err)
	}
}

// go test -run ^TestReleasedViewPanics$ . -count 1
func TestReleasedViewPanics(t *testing.T) {
	w := kura.NewWorld()
	v, _ := kura.BorrowView[Position](w)
	v.Release()
	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a released view")
		}
	}()
	v.Len()
}

// go test -run ^TestBorrowConcurrent$ . -count 1
func TestBorrowConcurrent(t *testing.T) {
	w := kura.NewWorld()
	kura.AddEntity1(w, Position{})

	const workers = 16
	var granted atomic.Int32
	views := make(chan *kura.ViewMut[Position], workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := kura.BorrowViewMut[Position](w)
			if err != nil {
				return
			}
			granted.Add(1)
			views <- v
		}()
	}
	wg.Wait()
	close(views)
	if granted.Load() != 1 {
		t.Errorf("expected exactly one exclusive borrow, got %d", granted.Load())
	}
	for v := range views {
		v.Release()
	}

	var shared sync.WaitGroup
	var failed atomic.Int32
	for range workers {
		shared.Add(1)
		go func() {
			defer shared.Done()
			for range 100 {
				v, err := kura.BorrowView[Position](w)
				if err != nil {
					failed.Add(1)
					return
				}
				_ = v.Len()
				v.Release()
			}
		}()
	}
	shared.Wait()
	if failed.Load() != 0 {
		t.Errorf("shared borrows failed %d times", failed.Load())
	}
}
