package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
)

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <document>",
		Short: "Restore an archived document",
		Long: `Restore an archived document back to active use.

Examples:
  # Restore a document
  quill restore old-draft`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runRestore,
	}

	return cmd
}

func runRestore(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := files.RestoreDocument(name); err != nil {
		return fmt.Errorf("failed to restore document: %w", err)
	}

	cli.PrintSuccess("Restored document: %s", name)
	return nil
}
