package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adventureworks/catalog-api/internal/core/ports"
)

type recordingSink struct {
	mu     sync.Mutex
	events []ports.AuditEvent
}

func (s *recordingSink) Record(_ context.Context, event ports.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) snapshot() []ports.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.AuditEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(2, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.AuditEvent{ID: "evt-1", Action: ports.AuditActionCreated, ProductID: 1})
	d.Enqueue(ports.AuditEvent{ID: "evt-2", Action: ports.AuditActionDeleted, ProductID: 2})

	waitFor(t, func() bool { return len(sink.snapshot()) == 2 })

	actions := map[string]string{}
	for _, e := range sink.snapshot() {
		actions[e.ID] = e.Action
	}
	if actions["evt-1"] != ports.AuditActionCreated || actions["evt-2"] != ports.AuditActionDeleted {
		t.Fatalf("unexpected recorded events: %v", actions)
	}
}

func TestDispatcher_SameProductSameWorker(t *testing.T) {
	d := NewDispatcher(4, &recordingSink{}, zerolog.Nop())

	first := d.shardIndex(42)
	for i := 0; i < 10; i++ {
		if got := d.shardIndex(42); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_OrderPreservedPerProduct(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(1, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.AuditEvent{ID: "a", Action: ports.AuditActionCreated, ProductID: 7})
	d.Enqueue(ports.AuditEvent{ID: "b", Action: ports.AuditActionUpdated, ProductID: 7})
	d.Enqueue(ports.AuditEvent{ID: "c", Action: ports.AuditActionDeleted, ProductID: 7})

	waitFor(t, func() bool { return len(sink.snapshot()) == 3 })

	got := sink.snapshot()
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("events out of order: %v", got)
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingSink{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
