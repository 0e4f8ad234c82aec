package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"retail_assistant/internal/domain/entities"
)

func TestSessionRegistry(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		r := NewSessionRegistry(fixedClock)
		err := r.With("  ", func(*entities.Session) error { return nil })
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("state persists between calls", func(t *testing.T) {
		r := NewSessionRegistry(fixedClock)
		_ = r.With("s1", func(s *entities.Session) error {
			s.SetPendingOrder(&entities.Order{ID: "ORD-1"})
			return nil
		})
		_ = r.With("s1", func(s *entities.Session) error {
			if s.PendingOrder() == nil || s.PendingOrder().ID != "ORD-1" {
				t.Fatalf("expected pending order to survive")
			}
			return nil
		})
		_ = r.With("s2", func(s *entities.Session) error {
			if s.PendingOrder() != nil {
				t.Fatalf("sessions must be isolated")
			}
			return nil
		})
	})

	t.Run("end discards pending state", func(t *testing.T) {
		r := NewSessionRegistry(fixedClock)
		var held *entities.Session
		_ = r.With("s1", func(s *entities.Session) error {
			s.SetPendingOrder(&entities.Order{ID: "ORD-1"})
			held = s
			return nil
		})
		if !r.End("s1") {
			t.Fatalf("expected session to exist")
		}
		if held.PendingOrder() != nil {
			t.Fatalf("pending order must be discarded")
		}
		if r.End("s1") {
			t.Fatalf("second end must report false")
		}
		_ = r.With("s1", func(s *entities.Session) error {
			if s.PendingOrder() != nil {
				t.Fatalf("new session must start empty")
			}
			return nil
		})
	})

	t.Run("serializes one session", func(t *testing.T) {
		r := NewSessionRegistry(fixedClock)
		var wg sync.WaitGroup
		counter := 0
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = r.With("shared", func(*entities.Session) error {
					counter++
					return nil
				})
			}()
		}
		wg.Wait()
		if counter != 50 {
			t.Fatalf("expected 50, got %d", counter)
		}
		if r.Len() != 1 {
			t.Fatalf("expected one session, got %d", r.Len())
		}
	})

	t.Run("sweep evicts idle sessions only", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		var clockMu sync.Mutex
		clock := func() time.Time {
			clockMu.Lock()
			defer clockMu.Unlock()
			return now
		}
		advance := func(d time.Duration) {
			clockMu.Lock()
			now = now.Add(d)
			clockMu.Unlock()
		}

		r := NewSessionRegistry(clock)
		var stale *entities.Session
		_ = r.With("stale", func(s *entities.Session) error {
			s.SetPendingOrder(&entities.Order{ID: "ORD-1"})
			stale = s
			return nil
		})
		advance(20 * time.Minute)
		_ = r.With("fresh", func(*entities.Session) error { return nil })
		advance(15 * time.Minute)

		if n := r.Sweep(30 * time.Minute); n != 1 {
			t.Fatalf("expected one eviction, got %d", n)
		}
		if r.Len() != 1 {
			t.Fatalf("expected the fresh session to remain, got %d", r.Len())
		}
		if stale.PendingOrder() != nil {
			t.Fatalf("evicted session must drop its pending order")
		}
		if r.End("stale") {
			t.Fatalf("evicted session must be gone")
		}

		// Using a session refreshes it.
		advance(20 * time.Minute)
		_ = r.With("fresh", func(*entities.Session) error { return nil })
		advance(20 * time.Minute)
		if n := r.Sweep(30 * time.Minute); n != 0 {
			t.Fatalf("expected no eviction, got %d", n)
		}
	})

	t.Run("sweep skips a busy session", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		r := NewSessionRegistry(func() time.Time { return now })

		entered := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = r.With("busy", func(*entities.Session) error {
				close(entered)
				<-release
				return nil
			})
		}()
		<-entered

		if n := r.Sweep(0); n != 0 {
			t.Fatalf("busy session must not be evicted, got %d", n)
		}
		close(release)
		<-done
		if n := r.Sweep(0); n != 1 {
			t.Fatalf("expected eviction once idle, got %d", n)
		}
	})

	t.Run("janitor stops with its context", func(t *testing.T) {
		r := NewSessionRegistry(nil)
		_ = r.With("s1", func(*entities.Session) error { return nil })

		ctx, cancel := context.WithCancel(context.Background())
		stopped := make(chan struct{})
		go func() {
			r.Janitor(ctx, time.Millisecond, time.Nanosecond)
			close(stopped)
		}()

		deadline := time.After(2 * time.Second)
		for r.Len() != 0 {
			select {
			case <-deadline:
				t.Fatalf("janitor never evicted the session")
			case <-time.After(time.Millisecond):
			}
		}
		cancel()
		select {
		case <-stopped:
		case <-time.After(2 * time.Second):
			t.Fatalf("janitor did not stop")
		}
	})
}
