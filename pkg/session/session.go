// Package session is the editor orchestrator. A Session owns the live text,
// its edit history, the current selection and the active view, and routes
// every user intent through the formatting, history and markup packages.
//
// A Session is driven by exactly one UI surface and is not safe for
// concurrent use. The only asynchronous step is the clipboard read; see
// RequestPaste.
package session

import (
	"log/slog"

	"github.com/pluqqy/quill/internal/logging"
	"github.com/pluqqy/quill/pkg/format"
	"github.com/pluqqy/quill/pkg/history"
	"github.com/pluqqy/quill/pkg/markup"
	"github.com/pluqqy/quill/pkg/selection"
	"github.com/pluqqy/quill/pkg/utils"
)

// Reported conditions. All of them leave the session unchanged.
var (
	ErrEmptySelection  = format.ErrEmptySelection
	ErrHistoryBoundary = history.ErrHistoryBoundary
)

// HistoryState tells the shell which history actions are available
type HistoryState struct {
	CanUndo bool
	CanRedo bool
}

// Session is a single in-memory editing session
type Session struct {
	history      *history.Stack
	tracker      *selection.Tracker
	view         ViewMode
	saved        string
	compiler     *markup.Compiler
	placeholders format.Placeholders
	clipboard    Clipboard
	onSave       func(string)
	logger       *slog.Logger
	historyLimit int
}

// Option configures a Session
type Option func(*Session)

// WithHistoryLimit caps the number of retained snapshots (<= 0 keeps all)
func WithHistoryLimit(limit int) Option {
	return func(s *Session) { s.historyLimit = limit }
}

// WithPlaceholders sets the link label and url used when a Link command
// arrives without them
func WithPlaceholders(ph format.Placeholders) Option {
	return func(s *Session) { s.placeholders = ph }
}

// WithClipboard replaces the system clipboard
func WithClipboard(cb Clipboard) Option {
	return func(s *Session) { s.clipboard = cb }
}

// WithSaveHandler registers a callback that receives the committed text on Save
func WithSaveHandler(fn func(string)) Option {
	return func(s *Session) { s.onSave = fn }
}

// WithLogger sets the diagnostic logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithViewMode sets the initial view
func WithViewMode(v ViewMode) Option {
	return func(s *Session) { s.view = v }
}

// WithCompiler replaces the markup compiler
func WithCompiler(c *markup.Compiler) Option {
	return func(s *Session) { s.compiler = c }
}

// New starts a session on initial
func New(initial string, opts ...Option) *Session {
	s := &Session{
		tracker:      selection.NewTracker(),
		view:         ViewAuthor,
		saved:        initial,
		clipboard:    SystemClipboard{},
		logger:       logging.NewNop(),
		historyLimit: history.DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.compiler == nil {
		s.compiler = markup.NewCompiler(nil)
	}
	s.history = history.New(initial, s.historyLimit)
	return s
}

// Text returns the live text
func (s *Session) Text() string {
	return s.history.Current()
}

// Selection returns the current selection, clamped to the live text
func (s *Session) Selection() selection.Range {
	return selection.Clamp(s.tracker.Current(), s.runeLen())
}

// Select records the selection observed on the editing surface
func (s *Session) Select(r selection.Range) {
	s.tracker.Update(r, s.runeLen())
}

// SelectedText returns the substring covered by the selection
func (s *Session) SelectedText() string {
	sel := s.Selection()
	return string([]rune(s.Text())[sel.Start:sel.End])
}

// ViewMode returns the active view
func (s *Session) ViewMode() ViewMode {
	return s.view
}

// SetViewMode switches the active view
func (s *Session) SetViewMode(v ViewMode) {
	s.view = v
}

// CycleViewMode moves to the next view and returns it
func (s *Session) CycleViewMode() ViewMode {
	s.view = s.view.Next()
	return s.view
}

// Dispatch applies a formatting command to the live text and records the
// result. On error nothing changes.
func (s *Session) Dispatch(cmd format.Command) error {
	res, err := format.ApplyWith(cmd, s.Text(), s.Selection(), s.placeholders)
	if err != nil {
		s.logger.Debug("command rejected", "command", cmd.String(), "error", err)
		return err
	}

	s.history.Record(res.Text)
	s.tracker.Update(selection.Caret(res.Caret), s.runeLen())
	s.logger.Debug("command applied", "command", cmd.String(), "caret", res.Caret)
	return nil
}

// Edit records a typed change made directly on the editing surface
func (s *Session) Edit(text string, caret int) {
	s.history.Record(text)
	s.tracker.Update(selection.Caret(caret), s.runeLen())
}

// Amend folds a typed change into the newest snapshot instead of recording
// a new one. The initial text is never overwritten.
func (s *Session) Amend(text string, caret int) {
	s.history.Amend(text)
	s.tracker.Update(selection.Caret(caret), s.runeLen())
}

// Undo steps back one snapshot
func (s *Session) Undo() error {
	if _, err := s.history.Undo(); err != nil {
		return err
	}
	s.afterHistoryMove()
	return nil
}

// Redo steps forward one snapshot
func (s *Session) Redo() error {
	if _, err := s.history.Redo(); err != nil {
		return err
	}
	s.afterHistoryMove()
	return nil
}

func (s *Session) afterHistoryMove() {
	s.tracker.Update(selection.Caret(s.runeLen()), s.runeLen())
}

// Clear empties the buffer as a normal, undoable edit
func (s *Session) Clear() {
	s.history.Record("")
	s.tracker.Reset()
}

// Save freezes the live text as the committed value and hands it to the
// save handler, if any
func (s *Session) Save() string {
	s.saved = s.Text()
	if s.onSave != nil {
		s.onSave(s.saved)
	}
	s.logger.Debug("saved", "runes", s.runeLen())
	return s.saved
}

// Saved returns the last committed text
func (s *Session) Saved() string {
	return s.saved
}

// Dirty reports whether the live text differs from the last committed text
func (s *Session) Dirty() bool {
	return s.Text() != s.saved
}

// Revert discards uncommitted edits by recording the committed text as a
// new, undoable snapshot
func (s *Session) Revert() {
	s.Edit(s.saved, len([]rune(s.saved)))
}

// Compile renders the live text. It is recomputed on every call.
func (s *Session) Compile() string {
	return s.compiler.Compile(s.Text())
}

// Blocks returns the compiled blocks of the live text, for surfaces that
// render the compiled output themselves
func (s *Session) Blocks() []markup.Block {
	return s.compiler.Blocks(s.Text())
}

// HistoryState reports which history moves are possible
func (s *Session) HistoryState() HistoryState {
	return HistoryState{
		CanUndo: s.history.CanUndo(),
		CanRedo: s.history.CanRedo(),
	}
}

// Stats summarizes the live text
func (s *Session) Stats() utils.TextStats {
	return utils.Stats(s.Text())
}

func (s *Session) runeLen() int {
	return len([]rune(s.Text()))
}
