package visit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds live visits in memory. Nothing is written anywhere else; a
// restart forgets every visit.
type Store struct {
	mu     sync.RWMutex
	visits map[string]*Visit
	ttl    time.Duration
	now    func() time.Time
}

// NewStore creates a store that forgets visits idle for longer than ttl.
// A ttl of zero keeps visits until shutdown.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		visits: make(map[string]*Visit),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Get returns the visit with the given id and marks it as seen.
func (s *Store) Get(id string) (*Visit, bool) {
	s.mu.RLock()
	v, ok := s.visits[id]
	s.mu.RUnlock()
	if ok {
		v.touch(s.now())
	}
	return v, ok
}

// Create starts a new visit on the landing view.
func (s *Store) Create() *Visit {
	v := newVisit(uuid.NewString(), s.now())
	s.mu.Lock()
	s.visits[v.ID] = v
	s.mu.Unlock()
	slog.Debug("visit started", "visit_id", v.ID)
	return v
}

// Resolve returns the visit for id, starting a new one when id is unknown.
// created reports whether a new visit was started.
func (s *Store) Resolve(id string) (v *Visit, created bool) {
	if id != "" {
		if v, ok := s.Get(id); ok {
			return v, false
		}
	}
	return s.Create(), true
}

// Len returns the number of live visits.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visits)
}

// Sweep drops visits idle for longer than the ttl and returns how many were
// dropped.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, v := range s.visits {
		if v.idleSince(now) > s.ttl {
			delete(s.visits, id)
			dropped++
		}
	}
	return dropped
}

// Run sweeps every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Info("expired idle visits", "count", n, "remaining", s.Len())
			}
		}
	}
}

// Shutdown forgets every visit.
func (s *Store) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.visits)
	return nil
}
