// Package store owns the in-memory collection of committed sessions and
// keeps the persisted snapshot in sync with it.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/snapshot"
)

// Store is the durable collection of committed sessions. Every mutation
// rewrites the full snapshot; when a write fails the in-memory state stays
// authoritative and the store reports itself degraded until a write
// succeeds again. A mutex guards the slice because the HTTP surface handles
// requests concurrently, even though there is only one logical writer.
type Store struct {
	mu       sync.Mutex
	sessions []models.Session
	adapter  *snapshot.Adapter
	log      *slog.Logger
	degraded bool
}

// Open loads the persisted sessions and returns a store over them. Load
// fails open, so Open never fails.
func Open(ctx context.Context, adapter *snapshot.Adapter, log *slog.Logger) *Store {
	return &Store{
		sessions: adapter.Load(ctx),
		adapter:  adapter,
		log:      log,
	}
}

// Add appends a committed session. The session is presumed already
// validated; Add never rejects.
func (s *Store) Add(ctx context.Context, sess models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, sess)
	s.save(ctx)
}

// Delete removes the session with the given id. Deleting an unknown id is a
// no-op and does not touch the snapshot.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sess := range s.sessions {
		if sess.ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			s.save(ctx)
			return
		}
	}
}

// All returns a copy of the committed sessions in insertion order. Ordering
// for display is the query layer's concern.
func (s *Store) All() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Get returns the session with the given id.
func (s *Store) Get(id string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return models.Session{}, false
}

// Degraded reports whether the most recent snapshot write failed. Memory is
// still authoritative; the flag lets a surface show a non-fatal warning.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// save must be called with the mutex held.
func (s *Store) save(ctx context.Context) {
	if err := s.adapter.Save(ctx, s.sessions); err != nil {
		s.log.Warn("saving sessions failed, in-memory state remains authoritative", "error", err)
		s.degraded = true
		return
	}
	s.degraded = false
}
