// Package snapshot persists the session collection as a single named record
// holding a JSON array, behind a small key-value Backend interface. The
// store overwrites the whole record on every mutation; there is exactly one
// logical writer, so no finer-grained scheme is needed.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/meltforce/liftlog/internal/models"
)

// SessionsRecord is the record name under which the session array is stored.
const SessionsRecord = "sessions"

// Backend is a minimal key-value byte store. Get reports found=false for a
// missing record rather than an error.
type Backend interface {
	Get(ctx context.Context, name string) (value []byte, found bool, err error)
	Put(ctx context.Context, name string, value []byte) error
	Close() error
}

// Adapter serializes sessions to and from a Backend.
type Adapter struct {
	backend Backend
	log     *slog.Logger
}

// NewAdapter creates an Adapter over the given backend.
func NewAdapter(b Backend, log *slog.Logger) *Adapter {
	return &Adapter{backend: b, log: log}
}

// Load reads the persisted session array. It fails open: a missing record,
// empty bytes, invalid JSON, or a non-array document all yield an empty
// collection with a log entry, never an error. Corrupt persisted state must
// not block the user from logging new workouts.
func (a *Adapter) Load(ctx context.Context) []models.Session {
	raw, found, err := a.backend.Get(ctx, SessionsRecord)
	if err != nil {
		a.log.Warn("reading persisted sessions failed, starting empty", "error", err)
		return []models.Session{}
	}
	if !found || len(raw) == 0 {
		a.log.Info("no persisted sessions found, starting empty")
		return []models.Session{}
	}

	var sessions []models.Session
	if err := json.Unmarshal(raw, &sessions); err != nil {
		a.log.Warn("persisted sessions are malformed, starting empty", "error", err)
		return []models.Session{}
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	return sessions
}

// Save overwrites the persisted record with the full collection. A nil
// slice is written as an empty array so the record always round-trips.
func (a *Adapter) Save(ctx context.Context, sessions []models.Session) error {
	if sessions == nil {
		sessions = []models.Session{}
	}
	raw, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encoding sessions: %w", err)
	}
	if err := a.backend.Put(ctx, SessionsRecord, raw); err != nil {
		return fmt.Errorf("writing sessions: %w", err)
	}
	return nil
}
