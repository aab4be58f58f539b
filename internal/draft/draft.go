// Package draft holds the mutable working copy of a session being composed
// and the validation that turns it into a committed session. The editing
// surface owns exactly one draft at a time; nothing here touches durable
// state.
package draft

import (
	"strconv"
	"time"

	"github.com/meltforce/liftlog/internal/id"
	"github.com/meltforce/liftlog/internal/models"
)

// Field names a draft-level text field.
type Field string

const (
	FieldDate  Field = "date"
	FieldTitle Field = "title"
	FieldNotes Field = "notes"
)

// ExerciseField names an editable field of an exercise draft.
type ExerciseField string

const (
	ExerciseFieldName  ExerciseField = "name"
	ExerciseFieldNotes ExerciseField = "notes"
)

// SetField names an editable field of a set draft.
type SetField string

const (
	SetFieldReps   SetField = "reps"
	SetFieldWeight SetField = "weight"
)

// New returns an empty draft dated today, seeded with one blank exercise
// holding one blank set so the editing surface has something to render.
func New() models.SessionDraft {
	return models.SessionDraft{
		Date:      time.Now().Format("2006-01-02"),
		Exercises: []models.ExerciseDraft{newExercise()},
	}
}

// Reset discards all edits, replacing the draft with a fresh one.
func Reset(d *models.SessionDraft) {
	*d = New()
}

func newExercise() models.ExerciseDraft {
	return models.ExerciseDraft{
		ID:   id.New(),
		Sets: []models.SetDraft{{ID: id.New()}},
	}
}

// UpdateField sets a draft-level field. Unknown fields are ignored.
func UpdateField(d *models.SessionDraft, field Field, value string) {
	switch field {
	case FieldDate:
		d.Date = value
	case FieldTitle:
		d.Title = value
	case FieldNotes:
		d.Notes = value
	}
}

// AddExercise appends a blank exercise with one blank set.
func AddExercise(d *models.SessionDraft) {
	d.Exercises = append(d.Exercises, newExercise())
}

// RemoveExercise deletes the exercise with the given id. Removing an unknown
// id is a no-op.
func RemoveExercise(d *models.SessionDraft, exerciseID string) {
	for i, ex := range d.Exercises {
		if ex.ID == exerciseID {
			d.Exercises = append(d.Exercises[:i], d.Exercises[i+1:]...)
			return
		}
	}
}

// ChangeExerciseField sets a field on the exercise with the given id.
func ChangeExerciseField(d *models.SessionDraft, exerciseID string, field ExerciseField, value string) {
	for i := range d.Exercises {
		if d.Exercises[i].ID != exerciseID {
			continue
		}
		switch field {
		case ExerciseFieldName:
			d.Exercises[i].Name = value
		case ExerciseFieldNotes:
			d.Exercises[i].Notes = value
		}
		return
	}
}

// AddSet appends a blank set to the exercise with the given id.
func AddSet(d *models.SessionDraft, exerciseID string) {
	for i := range d.Exercises {
		if d.Exercises[i].ID == exerciseID {
			d.Exercises[i].Sets = append(d.Exercises[i].Sets, models.SetDraft{ID: id.New()})
			return
		}
	}
}

// RemoveSet deletes a set from its exercise. Unknown ids are a no-op.
func RemoveSet(d *models.SessionDraft, exerciseID, setID string) {
	for i := range d.Exercises {
		if d.Exercises[i].ID != exerciseID {
			continue
		}
		sets := d.Exercises[i].Sets
		for j, set := range sets {
			if set.ID == setID {
				d.Exercises[i].Sets = append(sets[:j], sets[j+1:]...)
				return
			}
		}
		return
	}
}

// ChangeSetField sets the raw reps or weight text of a set.
func ChangeSetField(d *models.SessionDraft, exerciseID, setID string, field SetField, value string) {
	for i := range d.Exercises {
		if d.Exercises[i].ID != exerciseID {
			continue
		}
		for j := range d.Exercises[i].Sets {
			if d.Exercises[i].Sets[j].ID != setID {
				continue
			}
			switch field {
			case SetFieldReps:
				d.Exercises[i].Sets[j].Reps = value
			case SetFieldWeight:
				d.Exercises[i].Sets[j].Weight = value
			}
			return
		}
		return
	}
}

// FromSession loads a committed session back into editable draft form for
// re-entry. Every identifier is regenerated so a commit of the result never
// collides with the original; numbers are rendered back to text.
func FromSession(s models.Session) models.SessionDraft {
	d := models.SessionDraft{
		Date:      s.Date,
		Title:     s.Title,
		Notes:     s.Notes,
		Exercises: make([]models.ExerciseDraft, 0, len(s.Exercises)),
	}
	for _, ex := range s.Exercises {
		exd := models.ExerciseDraft{
			ID:    id.New(),
			Name:  ex.Name,
			Notes: ex.Notes,
			Sets:  make([]models.SetDraft, 0, len(ex.Sets)),
		}
		for _, set := range ex.Sets {
			sd := models.SetDraft{
				ID:   id.New(),
				Reps: strconv.Itoa(set.Reps),
			}
			if set.Weight != nil {
				sd.Weight = strconv.FormatFloat(*set.Weight, 'f', -1, 64)
			}
			exd.Sets = append(exd.Sets, sd)
		}
		d.Exercises = append(d.Exercises, exd)
	}
	return d
}
