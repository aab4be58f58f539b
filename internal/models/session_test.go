package models

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestSessionWireShape verifies the persisted JSON shape: weight, title,
// and notes are omitted when absent, never null.
func TestSessionWireShape(t *testing.T) {
	w := 100.0
	sess := Session{
		ID:   "sess1",
		Date: "2024-01-05",
		Exercises: []ExerciseEntry{{
			ID:   "ex1",
			Name: "Bench Press",
			Sets: []Set{
				{ID: "s1", Reps: 10, Weight: &w},
				{ID: "s2", Reps: 8},
			},
		}},
		CreatedAt: "2024-01-05T10:00:00Z",
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	js := string(raw)

	if !strings.Contains(js, `"date":"2024-01-05"`) {
		t.Errorf("date missing or misshaped: %s", js)
	}
	if !strings.Contains(js, `"createdAt":"2024-01-05T10:00:00Z"`) {
		t.Errorf("createdAt missing or misshaped: %s", js)
	}
	if !strings.Contains(js, `"weight":100`) {
		t.Errorf("present weight not serialized: %s", js)
	}
	if strings.Contains(js, "null") {
		t.Errorf("absent optional serialized as null: %s", js)
	}
	if strings.Contains(js, `"title"`) || strings.Contains(js, `"notes"`) {
		t.Errorf("empty title/notes not omitted: %s", js)
	}

	var back Session
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Exercises[0].Sets[1].Weight != nil {
		t.Error("absent weight resurrected on round trip")
	}
}

// TestZeroWeightSurvivesRoundTrip verifies a real 0 weight is kept distinct
// from an absent one.
func TestZeroWeightSurvivesRoundTrip(t *testing.T) {
	z := 0.0
	raw, err := json.Marshal(Set{ID: "s1", Reps: 15, Weight: &z})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Set
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Weight == nil || *back.Weight != 0 {
		t.Errorf("weight = %v, want explicit 0", back.Weight)
	}
}
