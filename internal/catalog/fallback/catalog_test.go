package fallback

import "testing"

func TestDSAProblemsReturnsCopy(t *testing.T) {
	first := DSAProblems()
	if len(first) == 0 {
		t.Fatal("expected bundled dsa problems")
	}
	first[0].Title = "mutated"

	second := DSAProblems()
	if second[0].Title == "mutated" {
		t.Error("callers must not be able to mutate the bundled data")
	}
}

func TestCPProblemsHaveRatings(t *testing.T) {
	problems := CPProblems()
	if len(problems) == 0 {
		t.Fatal("expected bundled cp problems")
	}
	for _, p := range problems {
		if p.Source != "codeforces" {
			t.Errorf("problem %s: got source %q, want codeforces", p.ID, p.Source)
		}
		if p.Rating == 0 {
			t.Errorf("problem %s: expected a rating", p.ID)
		}
	}
}

func TestListSheetsOrder(t *testing.T) {
	metas := ListSheets()
	if len(metas) != 2 {
		t.Fatalf("got %d sheets, want 2", len(metas))
	}
	if metas[0].Key != "striver" || metas[1].Key != "babbar" {
		t.Errorf("unexpected sheet order: %s, %s", metas[0].Key, metas[1].Key)
	}
	for _, meta := range metas {
		if meta.Title == "" || meta.Author == "" || meta.Total == 0 {
			t.Errorf("sheet %s: incomplete metadata %+v", meta.Key, meta)
		}
	}
}

func TestSheetProblemsKnownKey(t *testing.T) {
	items, ok := SheetProblems("striver")
	if !ok {
		t.Fatal("striver sheet should exist")
	}
	if len(items) == 0 {
		t.Fatal("expected sheet items")
	}
	for _, item := range items {
		if item.ID == "" || item.Title == "" || item.URL == "" {
			t.Errorf("incomplete item: %+v", item)
		}
	}
}

func TestSheetProblemsUnknownKey(t *testing.T) {
	if _, ok := SheetProblems("nope"); ok {
		t.Error("unknown sheet key should report not found")
	}
}
