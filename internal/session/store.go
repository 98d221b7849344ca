package session

import (
	"sync"
	"time"

	"github.com/maheshrc27/postflow-composer/internal/composer"
)

// Factory builds the composer of a user on first use.
type Factory func(userID int64) *composer.Composer

type entry struct {
	composer *composer.Composer
	lastSeen time.Time
}

// Store keeps one composer per signed-in user.
type Store struct {
	mu      sync.Mutex
	factory Factory
	entries map[int64]*entry
	now     func() time.Time
}

func NewStore(factory Factory) *Store {
	return &Store{
		factory: factory,
		entries: make(map[int64]*entry),
		now:     time.Now,
	}
}

// Get returns the user's composer, creating it if needed, and marks it as used.
func (s *Store) Get(userID int64) *composer.Composer {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &entry{composer: s.factory(userID)}
		s.entries[userID] = e
	}
	e.lastSeen = s.now()
	return e.composer
}

// Drop closes and forgets the user's composer.
func (s *Store) Drop(userID int64) {
	s.mu.Lock()
	e, ok := s.entries[userID]
	delete(s.entries, userID)
	s.mu.Unlock()

	if ok {
		e.composer.Close()
	}
}

// Sweep closes composers not used for longer than idle and reports how many went.
func (s *Store) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	var stale []*composer.Composer
	for userID, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e.composer)
			delete(s.entries, userID)
		}
	}
	s.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	return len(stale)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close drops every composer.
func (s *Store) Close() {
	s.mu.Lock()
	entries := s.entries
	s.entries = make(map[int64]*entry)
	s.mu.Unlock()

	for _, e := range entries {
		e.composer.Close()
	}
}
