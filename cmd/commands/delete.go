package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
)

var (
	deleteForce    bool
	deleteArchived bool
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <document>",
		Short: "Delete a document",
		Long: `Permanently delete a document.

This action cannot be undone. Consider archiving instead if you
might need the document later.

Examples:
  # Delete a document (with confirmation)
  quill delete old-draft

  # Delete an archived document
  quill delete old-draft --archived

  # Force delete without confirmation
  quill delete old-draft --force`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Force deletion without confirmation")
	cmd.Flags().BoolVarP(&deleteArchived, "archived", "a", false, "Delete from the archive")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !deleteForce {
		confirmed, err := cli.ConfirmFrom(cmd.InOrStdin(), fmt.Sprintf("Permanently delete '%s'?", name), false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	if err := files.DeleteDocument(name, deleteArchived); err != nil {
		return err
	}

	cli.PrintSuccess("Deleted document: %s", name)
	return nil
}
