package progress

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	ld := Load(filepath.Join(t.TempDir(), "absent.json"))
	if len(ld.Solved) != 0 || len(ld.Bookmarked) != 0 || len(ld.Notes) != 0 {
		t.Errorf("missing file should load as empty ledger: %+v", ld)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	ld := Load(path)
	if len(ld.Solved) != 0 || len(ld.Notes) != 0 {
		t.Errorf("corrupt file should load as empty ledger: %+v", ld)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.json")

	var ld Ledger
	ld.Solve("LC-1")
	ld.Bookmark("CF-4A")
	note := ld.AddNote("LC-1", "use a hash map")

	if err := Save(path, ld); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := Load(path)
	if !loaded.IsSolved("LC-1") {
		t.Error("solved entry lost")
	}
	if !loaded.IsBookmarked("CF-4A") {
		t.Error("bookmark lost")
	}
	notes := loaded.NotesFor("LC-1")
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}
	if notes[0].ID != note.ID || notes[0].Content != "use a hash map" {
		t.Errorf("note changed across round trip: %+v", notes[0])
	}
	if notes[0].CreatedAt.IsZero() || notes[0].UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}
}

func TestSolveIdempotent(t *testing.T) {
	var ld Ledger
	if !ld.Solve("LC-1") {
		t.Error("first solve should report a change")
	}
	if ld.Solve("LC-1") {
		t.Error("second solve should be a no-op")
	}
	ld.Solve("LC-2")
	ld.Solve("LC-1")
	if len(ld.Solved) != 2 || ld.Solved[0] != "LC-1" || ld.Solved[1] != "LC-2" {
		t.Errorf("insertion order not preserved: %v", ld.Solved)
	}
}

func TestUnsolve(t *testing.T) {
	var ld Ledger
	ld.Solve("LC-1")
	if !ld.Unsolve("LC-1") {
		t.Error("unsolve should report a change")
	}
	if ld.Unsolve("LC-1") {
		t.Error("second unsolve should be a no-op")
	}
	if ld.IsSolved("LC-1") {
		t.Error("entry should be gone")
	}
}

func TestEditNotePreservesIdentity(t *testing.T) {
	var ld Ledger
	note := ld.AddNote("LC-1", "first draft")

	if !ld.EditNote(note.ID, "second draft") {
		t.Fatal("edit should find the note")
	}
	edited := ld.Notes[0]
	if edited.ID != note.ID {
		t.Error("edit must not change the ID")
	}
	if !edited.CreatedAt.Equal(note.CreatedAt) {
		t.Error("edit must not change CreatedAt")
	}
	if edited.Content != "second draft" {
		t.Errorf("got content %q", edited.Content)
	}
	if edited.UpdatedAt.Before(note.UpdatedAt) {
		t.Error("UpdatedAt should move forward")
	}
}

func TestEditUnknownNote(t *testing.T) {
	var ld Ledger
	if ld.EditNote("nope", "content") {
		t.Error("editing an unknown note should report not found")
	}
}

func TestRemoveNote(t *testing.T) {
	var ld Ledger
	first := ld.AddNote("LC-1", "keep")
	second := ld.AddNote("LC-1", "drop")

	if !ld.RemoveNote(second.ID) {
		t.Fatal("remove should find the note")
	}
	if len(ld.Notes) != 1 || ld.Notes[0].ID != first.ID {
		t.Errorf("wrong note removed: %+v", ld.Notes)
	}
	if ld.RemoveNote(second.ID) {
		t.Error("second remove should report not found")
	}
}

func TestNotesForFiltersByProblem(t *testing.T) {
	var ld Ledger
	ld.AddNote("LC-1", "a")
	ld.AddNote("LC-2", "b")
	ld.AddNote("LC-1", "c")

	notes := ld.NotesFor("LC-1")
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	if notes[0].Content != "a" || notes[1].Content != "c" {
		t.Errorf("creation order not preserved: %+v", notes)
	}
}

func TestNoteIDsUnique(t *testing.T) {
	var ld Ledger
	a := ld.AddNote("LC-1", "a")
	b := ld.AddNote("LC-1", "b")
	if a.ID == b.ID {
		t.Error("note IDs must be unique")
	}
}
