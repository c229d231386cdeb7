package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
)

// NewArchiveCommand creates the archive command
func NewArchiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <document>",
		Short: "Archive a document",
		Long: `Archive a document to move it out of active use.

Archived documents are moved to .quill/archive and won't appear in
normal listings unless specifically requested.

Examples:
  # Archive a document
  quill archive old-draft

  # Archive without confirmation
  quill archive old-draft -y`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runArchive,
	}

	return cmd
}

func runArchive(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !files.DocumentExists(name) {
		return fmt.Errorf("document not found: %s", name)
	}

	confirmed, err := cli.ConfirmFrom(cmd.InOrStdin(), fmt.Sprintf("Archive '%s'?", name), false)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Archive cancelled")
		return nil
	}

	if err := files.ArchiveDocument(name); err != nil {
		return fmt.Errorf("failed to archive document: %w", err)
	}

	cli.PrintSuccess("Archived document: %s", name)
	return nil
}
