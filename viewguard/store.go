package viewguard

import (
	"sync"
	"time"
)

// Store remembers which viewer looked at which CV recently so that
// refreshing a profile page does not inflate its view counter
type Store struct {
	mu     sync.RWMutex
	seen   map[string]time.Time
	window time.Duration
	now    func() time.Time
}

func NewStore(window time.Duration) *Store {
	return &Store{
		seen:   make(map[string]time.Time),
		window: window,
		now:    time.Now,
	}
}

func key(viewerID, cvID string) string {
	return viewerID + "|" + cvID
}

// Allow reports whether a view of cvID by viewerID should be counted and,
// if so, records it
func (s *Store) Allow(viewerID, cvID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(viewerID, cvID)
	now := s.now()
	if last, exists := s.seen[k]; exists && now.Sub(last) < s.window {
		return false
	}

	s.seen[k] = now
	return true
}

// Forget drops a recorded view, used when the counter update failed
func (s *Store) Forget(viewerID, cvID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.seen, key(viewerID, cvID))
}

// Len returns the number of remembered views
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.seen)
}

// CleanupExpired drops views older than the window and returns how many were removed
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for k, last := range s.seen {
		if now.Sub(last) >= s.window {
			delete(s.seen, k)
			removed++
		}
	}
	return removed
}
