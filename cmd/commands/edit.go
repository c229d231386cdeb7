package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
	"github.com/pluqqy/quill/pkg/models"
	"github.com/pluqqy/quill/pkg/tui"
)

var (
	editExternal bool
	editView     string
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [document]",
		Short: "Edit a document in the terminal editor",
		Long: `Open a document in the built-in terminal editor.

A document that does not exist yet is created on first save. Without
a name the document is called "untitled".

Examples:
  # Edit a document
  quill edit landing-page

  # Start in the preview
  quill edit landing-page --view preview

  # Edit in $EDITOR instead
  EDITOR=vim quill edit landing-page --external`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    runEdit,
	}

	cmd.Flags().BoolVarP(&editExternal, "external", "x", false, "Open in $EDITOR instead of the built-in editor")
	cmd.Flags().StringVar(&editView, "view", "", "Initial view: author, preview or source")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	name := "untitled"
	if len(args) > 0 {
		name = args[0]
	}
	if err := files.ValidateDocumentName(name); err != nil {
		return err
	}

	ctx := cli.NewCommandContext()
	settings := ctx.LoadSettingsWithDefault()

	doc, err := loadOrNewDocument(name)
	if err != nil {
		return err
	}

	if editExternal {
		if !files.DocumentExists(name) {
			if err := files.WriteDocument(doc.Name, doc.Content, doc.Tags); err != nil {
				return err
			}
		}
		launcher := cli.NewEditorLauncher()
		cli.PrintInfo("Opening %s in editor...", files.DocumentPath(name))
		return launcher.OpenFile(files.DocumentPath(name))
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the editor needs an interactive terminal; use --external or the format command instead")
	}

	if editView != "" {
		settings.Editor.DefaultView = editView
	}

	editor := tui.NewEditor(tui.Config{
		Name:     doc.Name,
		Text:     doc.Content,
		Settings: settings,
		Logger:   ctx.Logger,
		OnSave: func(text string) error {
			return files.WriteDocument(doc.Name, text, doc.Tags)
		},
	})

	p := tea.NewProgram(editor, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if editor.Session().Dirty() {
		cli.PrintWarning("Unsaved changes to '%s' were discarded", doc.Name)
	}
	return nil
}

// loadOrNewDocument reads a stored document, or starts an empty one
func loadOrNewDocument(name string) (*models.Document, error) {
	if !files.DocumentExists(name) {
		return &models.Document{Name: name, Path: files.DocumentPath(name)}, nil
	}
	doc, err := files.ReadDocument(name)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
