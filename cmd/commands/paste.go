package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
	"github.com/pluqqy/quill/pkg/selection"
	"github.com/pluqqy/quill/pkg/session"
)

var (
	pasteAt int
)

// NewPasteCommand creates the paste command
func NewPasteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paste <document>",
		Short: "Insert the clipboard into a document",
		Long: `Insert the system clipboard into a stored document.

The clipboard is inserted at --at (a character offset) or appended
to the end of the document. A clipboard that cannot be read within
editor.clipboard_timeout_ms leaves the document untouched.

Examples:
  # Append the clipboard
  quill paste landing-page

  # Insert at the beginning
  quill paste landing-page --at 0`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runPaste,
	}

	cmd.Flags().IntVar(&pasteAt, "at", -1, "Insert at this offset (default: end of document)")

	return cmd
}

func runPaste(cmd *cobra.Command, args []string) error {
	cctx := cli.NewCommandContext()
	settings := cctx.LoadSettingsWithDefault()

	doc, err := files.ReadDocument(args[0])
	if err != nil {
		return fmt.Errorf("document '%s' not found: %w", args[0], err)
	}

	opts := append(sessionOptions(cctx), session.WithClipboard(clipboardBackend))
	sess := session.New(doc.Content, opts...)

	at := pasteAt
	if at < 0 {
		at = len([]rune(doc.Content))
	}
	sess.Select(selection.Caret(at))

	ctx, cancel := context.WithTimeout(cmd.Context(), clipboardTimeout(settings))
	defer cancel()

	if err := sess.Paste(ctx); err != nil {
		return fmt.Errorf("failed to paste: %w", err)
	}
	if !sess.Dirty() {
		cli.PrintInfo("Clipboard is empty, nothing pasted")
		return nil
	}

	if err := files.WriteDocument(doc.Name, sess.Save(), doc.Tags); err != nil {
		return err
	}
	cli.PrintSuccess("Pasted into '%s'", doc.Name)
	return nil
}
