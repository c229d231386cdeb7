// Package history keeps a linear undo/redo log of text snapshots.
//
// The stack always holds at least one entry (the initial text) and a cursor
// that points at the entry currently shown. Recording a new snapshot after
// one or more undos discards every entry past the cursor.
package history

import (
	"errors"
	"fmt"
)

// ErrHistoryBoundary is returned when undo or redo runs past the edge of the stack
var ErrHistoryBoundary = errors.New("history boundary")

var (
	errNothingToUndo = fmt.Errorf("nothing to undo: %w", ErrHistoryBoundary)
	errNothingToRedo = fmt.Errorf("nothing to redo: %w", ErrHistoryBoundary)
)

// DefaultLimit is the number of snapshots retained when no limit is configured.
// Zero keeps every snapshot.
const DefaultLimit = 0

// Stack is a linear edit history over text snapshots
type Stack struct {
	entries []string
	cursor  int
	limit   int
}

// New creates a stack holding initial as its only entry.
// A limit <= 0 keeps every snapshot. A positive limit drops the oldest
// snapshots after the initial one, which is always kept.
func New(initial string, limit int) *Stack {
	if limit > 0 && limit < 2 {
		limit = 2
	}
	return &Stack{
		entries: []string{initial},
		limit:   limit,
	}
}

// Record drops the redo tail and appends text as the newest entry
func (s *Stack) Record(text string) {
	s.entries = append(s.entries[:s.cursor+1], text)
	s.cursor = len(s.entries) - 1
	s.trim()
}

// Amend drops the redo tail and replaces the newest entry with text, so a
// run of small edits undoes as one step. The initial entry is never
// replaced; amending it records instead.
func (s *Stack) Amend(text string) {
	if s.cursor == 0 {
		s.Record(text)
		return
	}
	s.entries = append(s.entries[:s.cursor], text)
}

func (s *Stack) trim() {
	if s.limit <= 0 || len(s.entries) <= s.limit {
		return
	}
	drop := len(s.entries) - s.limit
	kept := make([]string, 0, s.limit)
	kept = append(kept, s.entries[0])
	kept = append(kept, s.entries[1+drop:]...)
	s.entries = kept
	s.cursor -= drop
}

// Undo moves the cursor back one entry and returns its text
func (s *Stack) Undo() (string, error) {
	if s.cursor == 0 {
		return s.entries[0], errNothingToUndo
	}
	s.cursor--
	return s.entries[s.cursor], nil
}

// Redo moves the cursor forward one entry and returns its text
func (s *Stack) Redo() (string, error) {
	if s.cursor == len(s.entries)-1 {
		return s.entries[s.cursor], errNothingToRedo
	}
	s.cursor++
	return s.entries[s.cursor], nil
}

// Current returns the entry under the cursor
func (s *Stack) Current() string { return s.entries[s.cursor] }

// CanUndo reports whether an older entry exists
func (s *Stack) CanUndo() bool { return s.cursor > 0 }

// CanRedo reports whether a newer entry exists
func (s *Stack) CanRedo() bool { return s.cursor < len(s.entries)-1 }

// Len returns the number of retained entries
func (s *Stack) Len() int { return len(s.entries) }

// Cursor returns the index of the current entry
func (s *Stack) Cursor() int { return s.cursor }
