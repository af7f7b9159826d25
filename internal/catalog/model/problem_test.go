package model

import "testing"

func TestDifficultyFromRating(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{800, DifficultyEasy},
		{1199, DifficultyEasy},
		{1200, DifficultyMedium},
		{1599, DifficultyMedium},
		{1600, DifficultyHard},
		{1999, DifficultyHard},
		{2000, DifficultyExpert},
		{3500, DifficultyExpert},
	}
	for _, tc := range cases {
		if got := DifficultyFromRating(tc.rating); got != tc.want {
			t.Errorf("rating %d: got %q, want %q", tc.rating, got, tc.want)
		}
	}
}

func TestDedupeProblemsKeepsFirstOccurrence(t *testing.T) {
	problems := []Problem{
		{ID: "1", Title: "first"},
		{ID: "2", Title: "second"},
		{ID: "1", Title: "duplicate"},
		{ID: "3", Title: "third"},
	}

	deduped := DedupeProblems(problems)
	if len(deduped) != 3 {
		t.Fatalf("got %d problems, want 3", len(deduped))
	}
	if deduped[0].Title != "first" {
		t.Errorf("first occurrence should win, got %q", deduped[0].Title)
	}
	if deduped[0].ID != "1" || deduped[1].ID != "2" || deduped[2].ID != "3" {
		t.Errorf("order not preserved: %v", deduped)
	}
}

func TestDedupeProblemsEmpty(t *testing.T) {
	if got := DedupeProblems(nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
