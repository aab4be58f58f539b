package models

// Set is one performance unit within an exercise: a rep count and an
// optional weight. Weight is a pointer so that "no weight recorded"
// round-trips as an omitted JSON field rather than 0.
type Set struct {
	ID     string   `json:"id"`
	Reps   int      `json:"reps"`
	Weight *float64 `json:"weight,omitempty"`
}

// ExerciseEntry is one named movement performed within a session.
// A committed entry always has a non-empty trimmed name and at least one set.
type ExerciseEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
	Sets  []Set  `json:"sets"`
}

// Session is one logged workout on a given date. Date is a plain
// YYYY-MM-DD string and CreatedAt an RFC 3339 instant string; both sort
// chronologically under ordinary string comparison, which the query layer
// relies on. CreatedAt is assigned once at commit time and never changes.
type Session struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Title     string          `json:"title,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Exercises []ExerciseEntry `json:"exercises"`
	CreatedAt string          `json:"createdAt"`
}

// WeightOrZero returns the set's weight, or 0 when absent.
func (s Set) WeightOrZero() float64 {
	if s.Weight == nil {
		return 0
	}
	return *s.Weight
}
