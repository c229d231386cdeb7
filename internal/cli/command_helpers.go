package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/pluqqy/quill/internal/logging"
	"github.com/pluqqy/quill/pkg/files"
	"github.com/pluqqy/quill/pkg/models"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	Logger      *slog.Logger
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.QuillDir,
		Logger:      logging.New(logging.Level(verbose)),
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .quill directory found. Run 'quill init' first")
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		c.Logger.Debug("using default settings", "error", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// Source is authored text loaded for a command, together with where it
// came from
type Source struct {
	Name     string
	Text     string
	Meta     models.DocumentMeta
	Document *models.Document // nil unless loaded from .quill/documents
}

// ReadSource resolves ref as "-" (stdin), an existing file path, or the
// name of a stored document, in that order
func (c *CommandContext) ReadSource(ref string, stdin io.Reader) (*Source, error) {
	if ref == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return &Source{Name: "stdin", Text: string(raw)}, nil
	}

	if err := ValidateFilePath(ref); err == nil {
		raw, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", ref, err)
		}
		meta, body, err := files.ExtractFrontmatter(string(raw))
		if err != nil {
			return nil, err
		}
		return &Source{Name: ref, Text: body, Meta: meta}, nil
	}

	if err := c.ValidateProject(); err != nil {
		return nil, fmt.Errorf("'%s' is not a file and %w", ref, err)
	}
	doc, err := files.ReadDocument(ref)
	if err != nil {
		return nil, fmt.Errorf("document '%s' not found: %w", ref, err)
	}
	return &Source{Name: doc.Name, Text: doc.Content, Document: doc}, nil
}

// EditorLauncher opens documents in the user's $EDITOR
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// Command builds the exec.Cmd for editing path, splitting editors that
// carry flags (e.g. "code --wait")
func (e *EditorLauncher) Command(path string) *exec.Cmd {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) > 1 {
		return exec.Command(parts[0], append(parts[1:], path)...)
	}
	return exec.Command(e.DefaultEditor, path)
}

// OpenFile opens a file in the configured editor and waits for it to exit
func (e *EditorLauncher) OpenFile(path string) error {
	editorCmd := e.Command(path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
