package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
)

var (
	createTags    []string
	createContent string
	createEdit    bool
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new document",
		Long: `Create a new document in .quill/documents.

The document starts empty unless --content is given. Use --edit to
open it in your default editor ($EDITOR) right away, or run
'quill edit <name>' to open it in the built-in editor.

Examples:
  # Create an empty document
  quill create landing-page

  # Create with tags and initial text
  quill create release-notes --tags web,draft --content "# Release notes"

  # Create and open in $EDITOR
  quill create about --edit`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(cmd, args); err != nil {
				return err
			}
			return files.ValidateDocumentName(args[0])
		},
		RunE: runCreate,
	}

	cmd.Flags().StringSliceVar(&createTags, "tags", nil, "Tags for the document (comma-separated)")
	cmd.Flags().StringVar(&createContent, "content", "", "Initial text")
	cmd.Flags().BoolVarP(&createEdit, "edit", "e", false, "Open the new document in $EDITOR")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if files.DocumentExists(name) {
		return fmt.Errorf("document already exists: %s", name)
	}

	if err := files.WriteDocument(name, createContent, createTags); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	path := files.DocumentPath(name)
	cli.PrintSuccess("Created document: %s", path)

	if createEdit {
		launcher := cli.NewEditorLauncher()
		cli.PrintInfo("Opening %s in editor...", path)
		if err := launcher.OpenFile(path); err != nil {
			return err
		}
	}

	return nil
}
