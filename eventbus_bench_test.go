package kura

import (
	"fmt"
	"testing"
)

func BenchmarkEventBusPublish(b *testing.B) {
	for _, handlers := range []int{0, 1, 10, 100} {
		b.Run(fmt.Sprintf("%dHandlers", handlers), func(b *testing.B) {
			bus := &EventBus{}
			sum := 0
			for range handlers {
				Subscribe(bus, func(e testEvent) { sum += e.Value })
			}
			event := testEvent{Value: 42}
			b.ReportAllocs()
			for b.Loop() {
				Publish(bus, event)
			}
		})
	}
}
