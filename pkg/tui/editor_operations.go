package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/quill/pkg/format"
	"github.com/pluqqy/quill/pkg/session"
	"github.com/pluqqy/quill/pkg/utils"
)

type formatBinding struct {
	key     ShortcutKey
	command func() format.Command
}

var formatBindings = []formatBinding{
	{Shortcuts.Bold, format.Bold},
	{Shortcuts.Italic, format.Italic},
	{Shortcuts.Underline, format.Underline},
	{Shortcuts.Heading1, func() format.Command { return format.Heading(1) }},
	{Shortcuts.Heading2, func() format.Command { return format.Heading(2) }},
	{Shortcuts.Heading3, func() format.Command { return format.Heading(3) }},
	{Shortcuts.Bullets, format.BulletList},
	{Shortcuts.Numbered, format.NumberedList},
	{Shortcuts.Link, func() format.Command { return format.Link("", "") }},
}

// handleShortcut runs editor-level shortcuts. It reports false for keys
// that belong to the textarea or viewport.
func (e *Editor) handleShortcut(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	for _, b := range formatBindings {
		if b.key.Matches(key) {
			return e.dispatch(b.command()), true
		}
	}

	switch {
	case Shortcuts.Cancel.Matches(key):
		if e.mark >= 0 {
			e.mark = -1
			e.syncFromTextarea()
			return nil, true
		}
		return e.cancel(), true
	case Shortcuts.Quit.Matches(key):
		return e.cancel(), true
	case Shortcuts.Save.Matches(key):
		return e.save(), true
	case Shortcuts.View.Matches(key):
		e.syncFromTextarea()
		view := e.session.CycleViewMode()
		e.refreshViewport()
		e.viewport.GotoTop()
		return e.status.ShowInfo("View: %s", view), true
	case Shortcuts.Help.Matches(key):
		e.showHelp = !e.showHelp
		if e.width > 0 {
			e.resize(e.width, e.height)
		}
		return nil, true
	case Shortcuts.Undo.Matches(key):
		return e.undo(), true
	case Shortcuts.Redo.Matches(key):
		return e.redo(), true
	case Shortcuts.Clear.Matches(key):
		e.syncFromTextarea()
		e.session.Clear()
		e.syncToTextarea()
		return e.status.ShowSuccess("Cleared"), true
	case Shortcuts.Revert.Matches(key):
		e.syncFromTextarea()
		if !e.session.Dirty() {
			return e.status.ShowInfo("Nothing to revert"), true
		}
		return e.confirmRevert(), true
	case Shortcuts.Paste.Matches(key):
		return e.requestPaste(), true
	case Shortcuts.Copy.Matches(key):
		return e.copy(session.CopySelection), true
	case Shortcuts.CopyHTML.Matches(key):
		return e.copy(session.CopyHTML), true
	case Shortcuts.Mark.Matches(key):
		if e.mark >= 0 {
			e.mark = -1
			e.syncFromTextarea()
			return e.status.ShowInfo("Selection cleared"), true
		}
		e.mark = caretOffset(&e.textarea)
		e.syncFromTextarea()
		return e.status.ShowInfo("Mark set"), true
	case Shortcuts.SelectAll.Matches(key):
		e.syncFromTextarea()
		e.mark = 0
		e.textarea.SetValue(e.session.Text())
		e.syncFromTextarea()
		return nil, true
	}

	return nil, false
}

// dispatch applies a formatting command to the current selection
func (e *Editor) dispatch(cmd format.Command) tea.Cmd {
	e.syncFromTextarea()

	if err := e.session.Dispatch(cmd); err != nil {
		if errors.Is(err, session.ErrEmptySelection) {
			return e.status.ShowWarning("Select text first (%s sets the mark)", FormatShortcutForHelp(Shortcuts.Mark))
		}
		return e.status.ShowError("%v", err)
	}

	e.syncToTextarea()
	return e.status.ShowSuccess("Applied %s", cmd)
}

func (e *Editor) undo() tea.Cmd {
	e.syncFromTextarea()
	if err := e.session.Undo(); err != nil {
		return e.status.ShowWarning("Nothing to undo")
	}
	e.syncToTextarea()
	return nil
}

func (e *Editor) redo() tea.Cmd {
	e.syncFromTextarea()
	if err := e.session.Redo(); err != nil {
		return e.status.ShowWarning("Nothing to redo")
	}
	e.syncToTextarea()
	return nil
}

// requestPaste starts an asynchronous clipboard read. Its result arrives
// as a pasteResultMsg and is applied to whatever is selected then.
func (e *Editor) requestPaste() tea.Cmd {
	if e.pasting {
		return nil
	}
	e.syncFromTextarea()
	e.pasting = true

	ctx, cancel := context.WithTimeout(context.Background(), e.clipboardTimeout)
	read := e.session.RequestPaste(ctx)
	return func() tea.Msg {
		defer cancel()
		return pasteResultMsg{result: read()}
	}
}

func (e *Editor) completePaste(res session.PasteResult) tea.Cmd {
	e.pasting = false
	e.syncFromTextarea()

	if err := e.session.CompletePaste(res); err != nil {
		e.logger.Debug("paste failed", "error", err)
		return e.status.ShowError("Clipboard unavailable")
	}
	if res.Text == "" {
		return e.status.ShowWarning("Nothing to paste")
	}

	e.syncToTextarea()
	return e.status.ShowSuccess("Pasted %d lines", utils.CountLines(res.Text))
}

func (e *Editor) copy(src session.CopySource) tea.Cmd {
	e.syncFromTextarea()
	if err := e.session.Copy(src); err != nil {
		if errors.Is(err, session.ErrEmptySelection) {
			return e.status.ShowWarning("Nothing selected")
		}
		return e.status.ShowError("Clipboard unavailable")
	}
	if src == session.CopyHTML {
		return e.status.ShowSuccess("HTML copied")
	}
	return e.status.ShowSuccess("Selection copied")
}

// save persists the live text and only then marks it committed, so a
// failed write keeps the buffer dirty
func (e *Editor) save() tea.Cmd {
	e.syncFromTextarea()
	text := e.session.Text()

	if e.cfg.OnSave != nil {
		if err := e.cfg.OnSave(text); err != nil {
			e.logger.Warn("save failed", "name", e.cfg.Name, "error", err)
			return e.status.ShowError("Save failed: %v", err)
		}
	}

	e.session.Save()
	e.updateDirtyMessage()
	return e.status.ShowSuccess("Saved: %s (%s)", e.cfg.Name, utils.FormatStats(utils.Stats(text)))
}

// cancel quits, asking first when there are unsaved changes
// confirmRevert asks before throwing away edits since the last save
func (e *Editor) confirmRevert() tea.Cmd {
	width := 60
	if e.width > 0 && e.width-8 < width {
		width = max(e.width-8, 24)
	}
	e.confirm.Show(ConfirmationConfig{
		Title:       "Revert to last save",
		Message:     fmt.Sprintf("Discard the edits made to %s since it was last saved?", e.cfg.Name),
		Warning:     "Undo brings them back",
		Destructive: true,
		Type:        ConfirmTypeDialog,
		Width:       width,
	},
		func() tea.Cmd {
			e.session.Revert()
			e.syncToTextarea()
			return e.status.ShowSuccess("Reverted to last save")
		},
		nil,
	)
	return nil
}

func (e *Editor) cancel() tea.Cmd {
	e.syncFromTextarea()
	if !e.session.Dirty() {
		e.quitting = true
		return tea.Quit
	}

	e.confirm.ShowInline("Discard unsaved changes?", true,
		func() tea.Cmd {
			e.quitting = true
			return tea.Quit
		},
		func() tea.Cmd {
			return nil
		},
	)
	return nil
}
