package models

// SetDraft holds a set as the user typed it: reps and weight are raw text
// that may be empty or unparseable until commit-time validation.
type SetDraft struct {
	ID     string `json:"id"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
}

// ExerciseDraft is an in-progress exercise entry.
type ExerciseDraft struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Notes string     `json:"notes"`
	Sets  []SetDraft `json:"sets"`
}

// SessionDraft is the transient working copy of a session being composed.
// It is never persisted; committing produces a fresh Session value and the
// draft itself stays untouched.
type SessionDraft struct {
	Date      string          `json:"date"`
	Title     string          `json:"title"`
	Notes     string          `json:"notes"`
	Exercises []ExerciseDraft `json:"exercises"`
}
