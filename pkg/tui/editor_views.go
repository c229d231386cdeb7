package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/quill/pkg/session"
)

const (
	headerHeight = 2
	statusHeight = 1
)

// View implements tea.Model
func (e *Editor) View() string {
	if e.quitting {
		return ""
	}

	width := e.width
	if width == 0 {
		width = 84
	}

	var body string
	switch {
	case e.confirm.Dialog():
		body = lipgloss.Place(width-4, e.textarea.Height(), lipgloss.Center, lipgloss.Center, e.confirm.View())
	case e.session.ViewMode() == session.ViewAuthor:
		body = e.textarea.View()
	default:
		body = e.viewport.View()
	}

	sections := []string{
		e.renderHeader(width),
		ActiveBorderStyle.Width(width - 2).Render(body),
	}
	if e.confirm.Active() && !e.confirm.Dialog() {
		sections = append(sections, HeaderPaddingStyle.Render(e.confirm.View()))
	} else {
		sections = append(sections, e.renderStatusBar(width))
	}
	if e.showHelp {
		sections = append(sections, e.renderHelp(width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader draws the document name, the dirty marker and the view tabs
func (e *Editor) renderHeader(width int) string {
	title := TitleStyle.Render("quill · " + e.cfg.Name)
	if e.session.Dirty() {
		title += " " + DirtyStyle.Render("●")
	}

	var tabs []string
	for _, v := range []session.ViewMode{session.ViewAuthor, session.ViewPreview, session.ViewCompiledSource} {
		if v == e.session.ViewMode() {
			tabs = append(tabs, ActiveTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, TabStyle.Render(v.String()))
		}
	}
	tabBar := strings.Join(tabs, " ")

	gap := width - 2 - lipgloss.Width(title) - lipgloss.Width(tabBar)
	if gap < 1 {
		gap = 1
	}
	line := title + strings.Repeat(" ", gap) + tabBar
	return HeaderPaddingStyle.Render(line) + "\n"
}

// renderStatusBar shows a transient status if there is one, and always the
// caret position, selection and history availability
func (e *Editor) renderStatusBar(width int) string {
	sel := e.session.Selection()
	row, col := rowCol(e.session.Text(), sel.End)

	var parts []string
	parts = append(parts, fmt.Sprintf("Ln %d, Col %d", row+1, col+1))
	if !sel.IsEmpty() {
		parts = append(parts, SelectionStyle.Render(fmt.Sprintf("sel %d-%d", sel.Start, sel.End)))
	} else if e.mark >= 0 {
		parts = append(parts, SelectionStyle.Render("mark"))
	}
	stats := e.session.Stats()
	parts = append(parts, fmt.Sprintf("%d words", stats.Words))

	hs := e.session.HistoryState()
	var history []string
	if hs.CanUndo {
		history = append(history, "undo")
	}
	if hs.CanRedo {
		history = append(history, "redo")
	}
	if len(history) > 0 {
		parts = append(parts, strings.Join(history, "/"))
	}
	if e.pasting {
		parts = append(parts, "pasting…")
	}
	right := DescriptionStyle.Render(strings.Join(parts, " · "))

	left := ""
	if msg, typ, ok := e.status.GetStatus(); ok {
		left = StatusStyle(typ).Render(msg)
	}

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return HeaderPaddingStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// renderHelp lists the shortcuts and the authoring syntax
func (e *Editor) renderHelp(width int) string {
	keys := []struct {
		name string
		key  ShortcutKey
	}{
		{"bold", Shortcuts.Bold},
		{"italic", Shortcuts.Italic},
		{"underline", Shortcuts.Underline},
		{"h1-3", Shortcuts.Heading1},
		{"list", Shortcuts.Bullets},
		{"numbered", Shortcuts.Numbered},
		{"link", Shortcuts.Link},
		{"mark", Shortcuts.Mark},
		{"undo", Shortcuts.Undo},
		{"redo", Shortcuts.Redo},
		{"paste", Shortcuts.Paste},
		{"copy", Shortcuts.Copy},
		{"save", Shortcuts.Save},
		{"view", Shortcuts.View},
		{"clear", Shortcuts.Clear},
		{"quit", Shortcuts.Cancel},
	}

	var shortcuts []string
	for _, k := range keys {
		shortcuts = append(shortcuts, HelpKeyStyle.Render(FormatShortcutForHelp(k.key))+" "+k.name)
	}

	var syntax []string
	for _, s := range SyntaxHelp {
		syntax = append(syntax, s.Syntax+" "+DescriptionStyle.Render(s.Name))
	}

	content := lipgloss.NewStyle().Width(width - 4).Render(strings.Join(shortcuts, "  ")) + "\n" +
		lipgloss.NewStyle().Width(width-4).Render(strings.Join(syntax, "  "))
	return HelpBorderStyle.Width(width - 2).Render(content)
}
