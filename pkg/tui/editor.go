// Package tui is the terminal shell around an editing session: a bubbletea
// program with an author view (textarea), a rendered preview and the
// compiled HTML source.
package tui

import (
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/quill/internal/logging"
	"github.com/pluqqy/quill/pkg/format"
	"github.com/pluqqy/quill/pkg/models"
	"github.com/pluqqy/quill/pkg/selection"
	"github.com/pluqqy/quill/pkg/session"
)

// Config configures an Editor
type Config struct {
	Name      string
	Text      string
	Settings  *models.Settings
	Logger    *slog.Logger
	Clipboard session.Clipboard      // nil uses the system clipboard
	OnSave    func(text string) error // persists the committed text
}

// Editor is the bubbletea model for one editing session
type Editor struct {
	cfg     Config
	session *session.Session
	logger  *slog.Logger

	textarea textarea.Model
	viewport viewport.Model
	preview  *PreviewRenderer
	confirm  *ConfirmationModel
	status   *StatusManager

	mark             int // rune offset where the selection started, -1 when none
	typing           bool
	typedRunes       int
	width, height    int
	showHelp         bool
	pasting          bool
	quitting         bool
	clipboardTimeout time.Duration
}

type pasteResultMsg struct {
	result session.PasteResult
}

// NewEditor creates an editor for cfg.Text
func NewEditor(cfg Config) *Editor {
	if cfg.Settings == nil {
		cfg.Settings = models.DefaultSettings()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Name == "" {
		cfg.Name = "untitled"
	}
	settings := cfg.Settings

	opts := []session.Option{
		session.WithHistoryLimit(settings.Editor.HistoryLimit),
		session.WithPlaceholders(format.Placeholders{
			LinkText: settings.Editor.LinkPlaceholderText,
			LinkURL:  settings.Editor.LinkPlaceholderURL,
		}),
		session.WithLogger(cfg.Logger),
	}
	if view, err := session.ParseViewMode(settings.Editor.DefaultView); err == nil {
		opts = append(opts, session.WithViewMode(view))
	}
	if cfg.Clipboard != nil {
		opts = append(opts, session.WithClipboard(cfg.Clipboard))
	}

	ta := textarea.New()
	ta.ShowLineNumbers = settings.Editor.ShowLineNumbers
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = settings.Editor.Placeholder
	ta.KeyMap.Paste.SetEnabled(false) // clipboard reads go through the session
	ta.SetWidth(80)
	ta.SetHeight(20)
	ta.Focus()

	timeout := time.Duration(settings.Editor.ClipboardTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	e := &Editor{
		cfg:              cfg,
		session:          session.New(cfg.Text, opts...),
		logger:           cfg.Logger,
		textarea:         ta,
		viewport:         viewport.New(80, 20),
		preview:          NewPreviewRenderer(settings.UI.PreviewStyle),
		confirm:          NewConfirmation(),
		status:           NewStatusManager(),
		mark:             -1,
		showHelp:         settings.UI.ShowHelp,
		clipboardTimeout: timeout,
	}
	setTextareaValue(&e.textarea, cfg.Text, 0)
	e.syncFromTextarea()
	e.refreshViewport()
	return e
}

// Session exposes the underlying session
func (e *Editor) Session() *session.Session {
	return e.session
}

// Quitting reports whether the editor asked the program to exit
func (e *Editor) Quitting() bool {
	return e.quitting
}

// Init implements tea.Model
func (e *Editor) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.resize(msg.Width, msg.Height)
		return e, nil

	case ClearStatusMsg:
		return e, nil

	case pasteResultMsg:
		return e, e.completePaste(msg.result)

	case tea.MouseMsg:
		if e.session.ViewMode() != session.ViewAuthor {
			var cmd tea.Cmd
			e.viewport, cmd = e.viewport.Update(msg)
			return e, cmd
		}
		return e, nil

	case tea.KeyMsg:
		if e.confirm.Active() {
			return e, e.confirm.Update(msg)
		}
		if cmd, handled := e.handleShortcut(msg); handled {
			return e, cmd
		}
		if e.session.ViewMode() != session.ViewAuthor {
			var cmd tea.Cmd
			e.viewport, cmd = e.viewport.Update(msg)
			return e, cmd
		}

		var cmd tea.Cmd
		e.textarea, cmd = e.textarea.Update(msg)
		e.syncFromTextarea()
		return e, cmd
	}

	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// syncFromTextarea pushes what the user did on the textarea into the
// session: a changed value is a typed edit, otherwise only the selection
// moved
func (e *Editor) syncFromTextarea() {
	value := e.textarea.Value()
	caret := caretOffset(&e.textarea)

	if value != e.session.Text() {
		e.mark = -1
		e.recordTyping(value, caret)
		e.updateDirtyMessage()
		return
	}
	if sel := e.selectionAt(caret); sel != e.session.Selection() {
		e.typing = false
		e.session.Select(sel)
	}
}

// typingRunLimit caps how many typed runes fold into one undo step
const typingRunLimit = 20

// recordTyping folds a run of single-rune changes on the same line into one
// undo step. A line break, a larger change, a caret jump or typingRunLimit
// runes start a new step.
func (e *Editor) recordTyping(value string, caret int) {
	prev := e.session.Text()
	diff := utf8.RuneCountInString(value) - utf8.RuneCountInString(prev)
	small := diff >= -1 && diff <= 1 && strings.Count(value, "\n") == strings.Count(prev, "\n")

	if e.typing && small && e.typedRunes < typingRunLimit {
		e.session.Amend(value, caret)
		e.typedRunes++
		return
	}
	e.session.Edit(value, caret)
	e.typing = small
	e.typedRunes = 1
}

// syncToTextarea replaces the textarea content with the session text after
// a command changed it
func (e *Editor) syncToTextarea() {
	e.mark = -1
	e.typing = false
	setTextareaValue(&e.textarea, e.session.Text(), e.session.Selection().End)
	e.updateDirtyMessage()
	e.refreshViewport()
}

func (e *Editor) selectionAt(caret int) selection.Range {
	if e.mark < 0 {
		return selection.Caret(caret)
	}
	return selection.NewRange(e.mark, caret)
}

func (e *Editor) updateDirtyMessage() {
	if e.session.Dirty() {
		e.status.SetPersistentMessage("Unsaved changes", StatusTypeWarning)
	} else {
		e.status.ClearPersistentMessage()
	}
}

func (e *Editor) resize(width, height int) {
	e.width = width
	e.height = height

	bodyHeight := height - headerHeight - statusHeight - 2 // border
	if e.showHelp {
		bodyHeight -= lipgloss.Height(e.renderHelp(width))
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	bodyWidth := width - 4 // border and padding
	if bodyWidth < 10 {
		bodyWidth = 10
	}

	e.textarea.SetWidth(bodyWidth)
	e.textarea.SetHeight(bodyHeight)
	e.viewport.Width = bodyWidth
	e.viewport.Height = bodyHeight
	e.refreshViewport()
}

// refreshViewport re-renders the non-editable views from the live text
func (e *Editor) refreshViewport() {
	switch e.session.ViewMode() {
	case session.ViewPreview:
		e.viewport.SetContent(e.preview.Render(e.session.Blocks(), e.viewport.Width))
	case session.ViewCompiledSource:
		e.viewport.SetContent(renderSource(e.session.Compile(), e.viewport.Width))
	}
}
