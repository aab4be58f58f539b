package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/liftlog/internal/draft"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/query"
)

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, query.View(s.store.All(), q))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// handleCommitSession validates a draft and appends the resulting session.
// A draft with nothing worth keeping is a 422 with an actionable message;
// the caller keeps its draft and can fix it.
func (s *Server) handleCommitSession(w http.ResponseWriter, r *http.Request) {
	var d models.SessionDraft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	sess, err := draft.Commit(d, time.Now())
	if err != nil {
		if errors.Is(err, draft.ErrNoValidEntries) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		s.log.Error("commit error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.store.Add(r.Context(), sess)
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	// Deleting an unknown id is a no-op, so this always succeeds.
	s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleDuplicateIntoDraft loads a committed session back into editable
// draft form with fresh identifiers. Committing the result creates a new
// session; stored sessions are never edited in place.
func (s *Server) handleDuplicateIntoDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, draft.FromSession(sess))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, query.Summarize(s.store.All()))
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	sessions := s.store.All()
	writeJSON(w, http.StatusOK, map[string]any{
		"total_sessions":   query.TotalSessions(sessions),
		"total_sets":       query.TotalSets(sessions),
		"total_reps":       query.TotalReps(sessions),
		"total_volume":     query.TotalVolume(sessions),
		"storage_degraded": s.store.Degraded(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
