package draft

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/meltforce/liftlog/internal/id"
	"github.com/meltforce/liftlog/internal/models"
)

// ErrNoValidEntries is returned by Commit when, after filtering, the draft
// retains no exercise with at least one valid set. The draft itself is left
// untouched so the user can fix it and retry.
var ErrNoValidEntries = errors.New("no valid exercises or sets to save")

// Commit validates and normalizes a draft into a committed session.
//
// Filtering runs in two stages: per set, reps must parse as an integer > 0
// or the set is silently dropped, and weight text that is blank,
// unparseable, non-finite, or negative becomes an absent weight; per
// exercise, the trimmed name must be non-empty and at least one set must
// survive, or the whole exercise is dropped. Only when nothing survives does
// the commit fail.
//
// The result is a fresh value with its own session id and createdAt taken
// from now; the input draft is never mutated.
func Commit(d models.SessionDraft, now time.Time) (models.Session, error) {
	var exercises []models.ExerciseEntry

	for _, exd := range d.Exercises {
		name := strings.TrimSpace(exd.Name)
		if name == "" {
			continue
		}

		var sets []models.Set
		for _, sd := range exd.Sets {
			reps, err := strconv.Atoi(strings.TrimSpace(sd.Reps))
			if err != nil || reps <= 0 {
				continue
			}
			set := models.Set{ID: keepID(sd.ID), Reps: reps}
			set.Weight = parseWeight(sd.Weight)
			sets = append(sets, set)
		}
		if len(sets) == 0 {
			continue
		}

		exercises = append(exercises, models.ExerciseEntry{
			ID:    keepID(exd.ID),
			Name:  name,
			Notes: strings.TrimSpace(exd.Notes),
			Sets:  sets,
		})
	}

	if len(exercises) == 0 {
		return models.Session{}, ErrNoValidEntries
	}

	return models.Session{
		ID:        id.New(),
		Date:      strings.TrimSpace(d.Date),
		Title:     strings.TrimSpace(d.Title),
		Notes:     strings.TrimSpace(d.Notes),
		Exercises: exercises,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}, nil
}

// parseWeight turns raw weight text into an optional weight. Anything that
// is not a finite non-negative number is treated as absent, never an error.
func parseWeight(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return nil
	}
	return &w
}

// keepID reuses the id assigned when the draft row was created; drafts
// arriving from an external caller may omit ids, in which case one is
// assigned here.
func keepID(existing string) string {
	if existing != "" {
		return existing
	}
	return id.New()
}
