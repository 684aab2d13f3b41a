package kura

import (
	"testing"
)

type testEvent struct {
	Value int
}

type otherEvent struct {
	Name string
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &EventBus{}
	received := 0
	Subscribe(bus, func(e testEvent) {
		received += e.Value
	})
	Subscribe(bus, func(e testEvent) {
		received += e.Value * 2
	})
	Publish(bus, testEvent{Value: 1})
	if received != 3 {
		t.Errorf("expected received 3, got %d", received)
	}
	Publish(bus, testEvent{Value: 2})
	if received != 3+6 {
		t.Errorf("expected received 9, got %d", received)
	}
}

func TestEventBusMultipleTypes(t *testing.T) {
	bus := &EventBus{}
	received1 := 0
	received2 := ""
	Subscribe(bus, func(e testEvent) {
		received1 += e.Value
	})
	Subscribe(bus, func(e otherEvent) {
		received2 += e.Name
	})
	Publish(bus, testEvent{Value: 42})
	Publish(bus, otherEvent{Name: "x"})
	if received1 != 42 {
		t.Errorf("expected received1 42, got %d", received1)
	}
	if received2 != "x" {
		t.Errorf("expected received2 x, got %q", received2)
	}
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &EventBus{}
	// No panic expected
	Publish(bus, testEvent{Value: 42})
}

func TestEventBusOrder(t *testing.T) {
	bus := &EventBus{}
	var order []int
	for i := range 5 {
		Subscribe(bus, func(testEvent) {
			order = append(order, i)
		})
	}
	Publish(bus, testEvent{})
	for i, v := range order {
		if v != i {
			t.Fatalf("handlers ran out of order: %v", order)
		}
	}
	if len(order) != 5 {
		t.Errorf("expected 5 handlers to run, got %d", len(order))
	}
}

func TestWorldEvents(t *testing.T) {
	w := NewWorld()
	var deleted []EntityID
	Subscribe(w.Events(), func(e EntityDeleted) {
		deleted = append(deleted, e.ID)
	})
	id, _ := AddEntity(w)
	if ok, err := w.Delete(id); !ok || err != nil {
		t.Fatalf("delete failed: %v %v", ok, err)
	}
	if ok, _ := w.Delete(id); ok {
		t.Error("a stale handle must not be deleted twice")
	}
	if len(deleted) != 1 || deleted[0] != id {
		t.Errorf("expected one EntityDeleted for %s, got %v", id, deleted)
	}
}
