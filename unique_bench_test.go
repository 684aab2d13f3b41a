package kura_test

import (
	"testing"

	"github.com/edwinsyarief/kura"
)

func BenchmarkBorrowUnique(b *testing.B) {
	w := kura.NewWorld()
	kura.AddUnique(w, Gravity{G: 9.8})
	b.ReportAllocs()
	for b.Loop() {
		v, _ := kura.BorrowUnique[Gravity](w)
		_ = v.Get().G
		v.Release()
	}
}

func BenchmarkBorrowUniqueMut(b *testing.B) {
	w := kura.NewWorld()
	kura.AddUnique(w, Tick{})
	b.ReportAllocs()
	for b.Loop() {
		v, _ := kura.BorrowUniqueMut[Tick](w)
		v.Ptr().N++
		v.Release()
	}
}
