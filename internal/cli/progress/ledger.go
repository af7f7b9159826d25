package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Note is a free-form annotation attached to one problem.
type Note struct {
	ID        string    `json:"id"`
	ProblemID string    `json:"problemId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ledger is the local study record. It lives in a JSON file next to the
// CLI config and is never synced to the server.
type Ledger struct {
	Solved     []string `json:"solved"`
	Bookmarked []string `json:"bookmarked"`
	Notes      []Note   `json:"notes"`
}

// Load reads a ledger from path. A missing, empty, or unparseable file
// yields a fresh empty ledger so a damaged record never blocks the CLI.
func Load(path string) Ledger {
	var ld Ledger
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return ld
	}
	if err := json.Unmarshal(data, &ld); err != nil {
		return Ledger{}
	}
	return ld
}

// Save writes the ledger to path, creating parent directories as needed.
func Save(path string, ld Ledger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create progress dir failed: %w", err)
	}
	data, err := json.MarshalIndent(ld, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write progress failed: %w", err)
	}
	return nil
}

// Solve records a problem as solved. Returns false when it already was.
func (ld *Ledger) Solve(problemID string) bool {
	var added bool
	ld.Solved, added = insert(ld.Solved, problemID)
	return added
}

// Unsolve removes a problem from the solved list. Returns false when it
// was not present.
func (ld *Ledger) Unsolve(problemID string) bool {
	var removed bool
	ld.Solved, removed = remove(ld.Solved, problemID)
	return removed
}

// Bookmark marks a problem for later. Returns false when already marked.
func (ld *Ledger) Bookmark(problemID string) bool {
	var added bool
	ld.Bookmarked, added = insert(ld.Bookmarked, problemID)
	return added
}

// Unbookmark clears a bookmark. Returns false when it was not present.
func (ld *Ledger) Unbookmark(problemID string) bool {
	var removed bool
	ld.Bookmarked, removed = remove(ld.Bookmarked, problemID)
	return removed
}

// IsSolved reports whether a problem is on the solved list.
func (ld *Ledger) IsSolved(problemID string) bool {
	return contains(ld.Solved, problemID)
}

// IsBookmarked reports whether a problem is bookmarked.
func (ld *Ledger) IsBookmarked(problemID string) bool {
	return contains(ld.Bookmarked, problemID)
}

// AddNote appends a new note for the problem and returns it.
func (ld *Ledger) AddNote(problemID, content string) Note {
	now := time.Now().UTC()
	note := Note{
		ID:        uuid.NewString(),
		ProblemID: problemID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ld.Notes = append(ld.Notes, note)
	return note
}

// EditNote replaces a note's content in place. The note keeps its ID and
// CreatedAt; only UpdatedAt moves. Returns false when no note matches.
func (ld *Ledger) EditNote(noteID, content string) bool {
	for i := range ld.Notes {
		if ld.Notes[i].ID == noteID {
			ld.Notes[i].Content = content
			ld.Notes[i].UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// RemoveNote deletes a note by ID. Returns false when no note matches.
func (ld *Ledger) RemoveNote(noteID string) bool {
	for i := range ld.Notes {
		if ld.Notes[i].ID == noteID {
			ld.Notes = append(ld.Notes[:i], ld.Notes[i+1:]...)
			return true
		}
	}
	return false
}

// NotesFor returns the notes attached to one problem, in creation order.
func (ld *Ledger) NotesFor(problemID string) []Note {
	var notes []Note
	for _, note := range ld.Notes {
		if note.ProblemID == problemID {
			notes = append(notes, note)
		}
	}
	return notes
}

func insert(list []string, value string) ([]string, bool) {
	if contains(list, value) {
		return list, false
	}
	return append(list, value), true
}

func remove(list []string, value string) ([]string, bool) {
	for i, item := range list {
		if item == value {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
