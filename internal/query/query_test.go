package query

import (
	"reflect"
	"testing"

	"github.com/meltforce/liftlog/internal/models"
)

func fp(v float64) *float64 { return &v }

func session(id, date, createdAt, title string, exercises ...models.ExerciseEntry) models.Session {
	return models.Session{ID: id, Date: date, CreatedAt: createdAt, Title: title, Exercises: exercises}
}

func exercise(name string, sets ...models.Set) models.ExerciseEntry {
	return models.ExerciseEntry{ID: "ex-" + name, Name: name, Sets: sets}
}

// TestViewSortsNewestFirst verifies date-descending order with createdAt
// breaking ties, and that no session is duplicated or dropped.
func TestViewSortsNewestFirst(t *testing.T) {
	sessions := []models.Session{
		session("a", "2024-01-05", "2024-01-05T09:00:00Z", ""),
		session("b", "2024-01-07", "2024-01-07T08:00:00Z", ""),
		session("c", "2024-01-05", "2024-01-05T10:00:00Z", ""),
	}

	got := View(sessions, "")
	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
}

// TestViewDoesNotMutateInput verifies the input slice keeps its original
// order after a view is derived.
func TestViewDoesNotMutateInput(t *testing.T) {
	sessions := []models.Session{
		session("a", "2024-01-05", "2024-01-05T09:00:00Z", ""),
		session("b", "2024-01-07", "2024-01-07T08:00:00Z", ""),
	}

	View(sessions, "")
	if sessions[0].ID != "a" || sessions[1].ID != "b" {
		t.Error("View reordered its input")
	}
}

// TestViewFilter verifies case-insensitive substring matching against
// titles and exercise names, with blank queries matching everything.
func TestViewFilter(t *testing.T) {
	sessions := []models.Session{
		session("a", "2024-01-01", "2024-01-01T08:00:00Z", "Push Day", exercise("Bench Press")),
		session("b", "2024-01-02", "2024-01-02T08:00:00Z", "", exercise("Squat")),
		session("c", "2024-01-03", "2024-01-03T08:00:00Z", "Deload week", exercise("Leg Press")),
	}

	cases := []struct {
		q    string
		want []string
	}{
		{"", []string{"c", "b", "a"}},
		{"   ", []string{"c", "b", "a"}},
		{"press", []string{"c", "a"}},
		{"BENCH", []string{"a"}},
		{"deload", []string{"c"}},
		{"squat", []string{"b"}},
		{"yoga", []string{}},
	}
	for _, tc := range cases {
		got := View(sessions, tc.q)
		ids := make([]string, 0, len(got))
		for _, s := range got {
			ids = append(ids, s.ID)
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Errorf("View(q=%q) = %v, want %v", tc.q, ids, tc.want)
		}
	}
}

// TestSummarizeTotals verifies the single-session scenario: one bench press
// set of 10 reps at 100 gives volume 1000.
func TestSummarizeTotals(t *testing.T) {
	sessions := []models.Session{
		session("a", "2024-01-05", "2024-01-05T10:00:00Z", "",
			exercise("Bench Press", models.Set{ID: "s1", Reps: 10, Weight: fp(100)})),
	}

	got := Summarize(sessions)
	if len(got) != 1 {
		t.Fatalf("summaries = %d, want 1", len(got))
	}
	s := got[0]
	if s.Name != "Bench Press" {
		t.Errorf("name = %q", s.Name)
	}
	if s.TotalSets != 1 || s.TotalReps != 10 || s.TotalVolume != 1000 {
		t.Errorf("totals = %d/%d/%v, want 1/10/1000", s.TotalSets, s.TotalReps, s.TotalVolume)
	}
	if s.LastPerformed != "2024-01-05" {
		t.Errorf("lastPerformed = %q", s.LastPerformed)
	}
}

// TestSummarizeAggregatesAcrossSessions verifies grouping by literal name,
// weightless sets counting 0 volume, lastPerformed tracking the max date,
// and ordering by lastPerformed descending.
func TestSummarizeAggregatesAcrossSessions(t *testing.T) {
	sessions := []models.Session{
		session("a", "2024-01-01", "2024-01-01T08:00:00Z", "",
			exercise("Squat", models.Set{Reps: 5, Weight: fp(120)}, models.Set{Reps: 5, Weight: fp(120)}),
			exercise("Pull Up", models.Set{Reps: 10})),
		session("b", "2024-01-08", "2024-01-08T08:00:00Z", "",
			exercise("Squat", models.Set{Reps: 3, Weight: fp(140)})),
	}

	got := Summarize(sessions)
	if len(got) != 2 {
		t.Fatalf("summaries = %d, want 2", len(got))
	}
	if got[0].Name != "Squat" {
		t.Fatalf("first summary = %q, want Squat (most recent)", got[0].Name)
	}
	squat := got[0]
	if squat.TotalSets != 3 || squat.TotalReps != 13 {
		t.Errorf("squat sets/reps = %d/%d, want 3/13", squat.TotalSets, squat.TotalReps)
	}
	if want := 5*120.0 + 5*120.0 + 3*140.0; squat.TotalVolume != want {
		t.Errorf("squat volume = %v, want %v", squat.TotalVolume, want)
	}
	if squat.LastPerformed != "2024-01-08" {
		t.Errorf("squat lastPerformed = %q", squat.LastPerformed)
	}
	pullUp := got[1]
	if pullUp.TotalVolume != 0 {
		t.Errorf("pull up volume = %v, want 0 (no weight)", pullUp.TotalVolume)
	}
}

// TestSummarizeOrderInvariant verifies totals do not depend on input order.
func TestSummarizeOrderInvariant(t *testing.T) {
	a := session("a", "2024-01-01", "2024-01-01T08:00:00Z", "",
		exercise("Squat", models.Set{Reps: 5, Weight: fp(100)}))
	b := session("b", "2024-01-08", "2024-01-08T08:00:00Z", "",
		exercise("Squat", models.Set{Reps: 8, Weight: fp(80)}))

	fwd := Summarize([]models.Session{a, b})
	rev := Summarize([]models.Session{b, a})
	if !reflect.DeepEqual(fwd, rev) {
		t.Errorf("summaries differ by input order:\n fwd %+v\n rev %+v", fwd, rev)
	}
}

// TestSummarizeUnnamedSentinel verifies empty exercise names collapse into
// the Unnamed Exercise group.
func TestSummarizeUnnamedSentinel(t *testing.T) {
	sessions := []models.Session{
		session("a", "2024-01-01", "2024-01-01T08:00:00Z", "",
			exercise("", models.Set{Reps: 5}),
			exercise("  ", models.Set{Reps: 3})),
	}

	got := Summarize(sessions)
	if len(got) != 1 {
		t.Fatalf("summaries = %d, want 1", len(got))
	}
	if got[0].Name != UnnamedExercise {
		t.Errorf("name = %q, want %q", got[0].Name, UnnamedExercise)
	}
	if got[0].TotalSets != 2 || got[0].TotalReps != 8 {
		t.Errorf("totals = %d/%d, want 2/8", got[0].TotalSets, got[0].TotalReps)
	}
}

// TestScalarTotals verifies the whole-log aggregates.
func TestScalarTotals(t *testing.T) {
	sessions := []models.Session{
		session("a", "2024-01-01", "2024-01-01T08:00:00Z", "",
			exercise("Bench Press",
				models.Set{Reps: 10, Weight: fp(100)},
				models.Set{Reps: 8, Weight: fp(105)})),
		session("b", "2024-01-02", "2024-01-02T08:00:00Z", "",
			exercise("Pull Up", models.Set{Reps: 12})),
	}

	if got := TotalSessions(sessions); got != 2 {
		t.Errorf("TotalSessions = %d, want 2", got)
	}
	if got := TotalSets(sessions); got != 3 {
		t.Errorf("TotalSets = %d, want 3", got)
	}
	if got := TotalReps(sessions); got != 30 {
		t.Errorf("TotalReps = %d, want 30", got)
	}
	if got, want := TotalVolume(sessions), 10*100.0+8*105.0; got != want {
		t.Errorf("TotalVolume = %v, want %v", got, want)
	}
}
