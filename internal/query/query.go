// Package query derives read-only views and aggregates from the session
// collection. Everything here is a pure function of its inputs and is
// recomputed on demand; commit volume is far too low for caching to matter.
package query

import (
	"math"
	"slices"
	"strings"

	"github.com/meltforce/liftlog/internal/models"
)

// UnnamedExercise is the grouping key used for exercises whose stored name
// is empty. Committed sessions cannot contain one, but persisted data from
// older snapshots might.
const UnnamedExercise = "Unnamed Exercise"

// ExerciseSummary aggregates one exercise name across all sessions.
type ExerciseSummary struct {
	Name          string  `json:"name"`
	TotalSets     int     `json:"total_sets"`
	TotalReps     int     `json:"total_reps"`
	TotalVolume   float64 `json:"total_volume"`
	LastPerformed string  `json:"last_performed"`
}

// View returns sessions matching searchText, newest first. Dates and
// createdAt are ISO strings, so descending string order is descending
// chronological order; createdAt breaks date ties. The match is a
// case-insensitive substring test against the session title or any exercise
// name, and blank search text matches everything. The input slice is never
// mutated.
func View(sessions []models.Session, searchText string) []models.Session {
	q := strings.ToLower(strings.TrimSpace(searchText))

	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if q == "" || matches(s, q) {
			out = append(out, s)
		}
	}

	slices.SortStableFunc(out, func(a, b models.Session) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return strings.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out
}

func matches(s models.Session, q string) bool {
	if strings.Contains(strings.ToLower(s.Title), q) {
		return true
	}
	for _, ex := range s.Exercises {
		if strings.Contains(strings.ToLower(ex.Name), q) {
			return true
		}
	}
	return false
}

// Summarize groups every set by its exercise name (literal trimmed name,
// empty collapsing to UnnamedExercise) and totals sets, reps, and volume,
// tracking the latest date each name was performed. Output is ordered most
// recently performed first, name ascending on ties. Totals are insensitive
// to input ordering.
func Summarize(sessions []models.Session) []ExerciseSummary {
	byName := make(map[string]*ExerciseSummary)

	for _, s := range sessions {
		for _, ex := range s.Exercises {
			name := strings.TrimSpace(ex.Name)
			if name == "" {
				name = UnnamedExercise
			}
			sum, ok := byName[name]
			if !ok {
				sum = &ExerciseSummary{Name: name}
				byName[name] = sum
			}
			for _, set := range ex.Sets {
				sum.TotalSets++
				sum.TotalReps += set.Reps
				if w := set.WeightOrZero(); !math.IsNaN(w) && !math.IsInf(w, 0) {
					sum.TotalVolume += w * float64(set.Reps)
				}
			}
			if s.Date > sum.LastPerformed {
				sum.LastPerformed = s.Date
			}
		}
	}

	out := make([]ExerciseSummary, 0, len(byName))
	for _, sum := range byName {
		out = append(out, *sum)
	}
	slices.SortFunc(out, func(a, b ExerciseSummary) int {
		if c := strings.Compare(b.LastPerformed, a.LastPerformed); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// TotalSessions returns the number of sessions.
func TotalSessions(sessions []models.Session) int {
	return len(sessions)
}

// TotalSets counts every set across all sessions.
func TotalSets(sessions []models.Session) int {
	n := 0
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			n += len(ex.Sets)
		}
	}
	return n
}

// TotalReps sums reps across all sets of all sessions.
func TotalReps(sessions []models.Session) int {
	n := 0
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			for _, set := range ex.Sets {
				n += set.Reps
			}
		}
	}
	return n
}

// TotalVolume sums weight × reps across all sets of all sessions, counting
// weightless sets as 0.
func TotalVolume(sessions []models.Session) float64 {
	v := 0.0
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			for _, set := range ex.Sets {
				w := set.WeightOrZero()
				if math.IsNaN(w) || math.IsInf(w, 0) {
					continue
				}
				v += w * float64(set.Reps)
			}
		}
	}
	return v
}
