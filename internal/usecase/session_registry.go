package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"retail_assistant/internal/domain/entities"
)

type sessionEntry struct {
	mu       sync.Mutex
	session  *entities.Session
	lastSeen time.Time
	// removed is set under mu once the entry has left the map.
	removed bool
}

// SessionRegistry owns the live conversation sessions. Operations on one
// session run one at a time; different sessions run in parallel.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	clock    Clock
}

func NewSessionRegistry(clock Clock) *SessionRegistry {
	if clock == nil {
		clock = SystemClock
	}
	return &SessionRegistry{sessions: make(map[string]*sessionEntry), clock: clock}
}

// With runs fn against the session id, creating it on first use.
func (r *SessionRegistry) With(id string, fn func(*entities.Session) error) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return NewValidationError("session_id", "is required")
	}

	for {
		entry := r.lookup(id)
		entry.mu.Lock()
		if entry.removed {
			// Ended or evicted between lookup and lock.
			entry.mu.Unlock()
			continue
		}
		entry.lastSeen = r.clock()
		err := fn(entry.session)
		entry.mu.Unlock()
		return err
	}
}

func (r *SessionRegistry) lookup(id string) *sessionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.sessions[id]
	if !ok {
		now := r.clock()
		entry = &sessionEntry{session: entities.NewSession(id, now), lastSeen: now}
		r.sessions[id] = entry
		log.Printf("[session][usecase] started session_id=%s", id)
	}
	return entry
}

// End discards the session and everything pending in it. It reports whether
// the session existed.
func (r *SessionRegistry) End(id string) bool {
	id = strings.TrimSpace(id)
	r.mu.Lock()
	entry, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return false
	}

	entry.mu.Lock()
	hadOrder := entry.session.PendingOrder() != nil
	entry.session.Discard()
	entry.removed = true
	entry.mu.Unlock()
	log.Printf("[session][usecase] ended session_id=%s discarded_order=%t", id, hadOrder)
	return true
}

// Sweep discards every session untouched for at least idle and returns how
// many went. Sessions busy in With are skipped until the next sweep.
func (r *SessionRegistry) Sweep(idle time.Duration) int {
	now := r.clock()
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, entry := range r.sessions {
		if !entry.mu.TryLock() {
			continue
		}
		if now.Sub(entry.lastSeen) >= idle {
			hadOrder := entry.session.PendingOrder() != nil
			entry.session.Discard()
			entry.removed = true
			delete(r.sessions, id)
			evicted++
			log.Printf("[session][usecase] evicted idle session_id=%s discarded_order=%t", id, hadOrder)
		}
		entry.mu.Unlock()
	}
	return evicted
}

// Janitor sweeps idle sessions every interval until ctx is done.
func (r *SessionRegistry) Janitor(ctx context.Context, interval, idle time.Duration) {
	if interval <= 0 || idle <= 0 {
		log.Printf("[session][usecase] janitor disabled interval=%s idle=%s", interval, idle)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(idle); n > 0 {
				log.Printf("[session][usecase] sweep evicted=%d remaining=%d", n, r.Len())
			}
		}
	}
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
