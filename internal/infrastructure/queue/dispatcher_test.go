package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/estatehub/auth-service/internal/core/domain"
)

type captureAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (r *captureAuditRepo) Insert(_ context.Context, event *domain.AuthEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *captureAuditRepo) snapshot() []domain.AuthEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuthEvent, len(r.events))
	copy(out, r.events)
	return out
}

func waitFor(t *testing.T, repo *captureAuditRepo, n int) []domain.AuthEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if events := repo.snapshot(); len(events) >= n {
			return events
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", n, len(repo.snapshot()))
	return nil
}

func TestDispatcher_PersistsEvents(t *testing.T) {
	repo := &captureAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.AuthEvent{Subject: "a@example.com", Action: domain.AuditLogin, OccurredAt: time.Now()})
	d.Record(domain.AuthEvent{Subject: "b@example.com", Action: domain.AuditRegister, OccurredAt: time.Now()})

	events := waitFor(t, repo, 2)
	seen := map[string]bool{}
	for _, e := range events {
		seen[e.Subject] = true
	}
	if !seen["a@example.com"] || !seen["b@example.com"] {
		t.Fatalf("missing events: %+v", events)
	}
}

func TestDispatcher_PerSubjectOrdering(t *testing.T) {
	repo := &captureAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 50
	for i := 0; i < n; i++ {
		d.Record(domain.AuthEvent{
			Subject:    "same@example.com",
			Action:     domain.AuditLogin,
			Detail:     string(rune('a' + i%26)),
			OccurredAt: time.Unix(int64(i), 0),
		})
	}

	events := waitFor(t, repo, n)
	for i, e := range events {
		if e.OccurredAt.Unix() != int64(i) {
			t.Fatalf("ordering broken at %d: got ts %d", i, e.OccurredAt.Unix())
		}
	}
}

func TestDispatcher_SameSubjectSameShard(t *testing.T) {
	d := NewDispatcher(8, &captureAuditRepo{}, zerolog.Nop())

	first := d.shardIndex("pin@example.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("pin@example.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &captureAuditRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
