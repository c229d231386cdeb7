package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/session"
	"github.com/pluqqy/quill/pkg/utils"
)

var (
	clipboardHTML bool

	// clipboardBackend is swapped out by tests
	clipboardBackend session.Clipboard = session.SystemClipboard{}
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <document|file|->",
		Short: "Copy a document's text or compiled HTML to the clipboard",
		Long: `Copy a document to the system clipboard.

By default the authored text is copied. Use --html to copy the
compiled HTML instead.

Examples:
  # Copy the authored text
  quill clipboard landing-page

  # Copy the compiled HTML
  quill clipboard landing-page --html`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "copy"},
		RunE:    runClipboard,
	}

	cmd.Flags().BoolVar(&clipboardHTML, "html", false, "Copy compiled HTML instead of the authored text")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	src, err := ctx.ReadSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts := append(sessionOptions(ctx), session.WithClipboard(clipboardBackend))
	sess := session.New(src.Text, opts...)

	what, copySource := "text", session.CopyText
	if clipboardHTML {
		what, copySource = "HTML", session.CopyHTML
	}

	if err := sess.Copy(copySource); err != nil {
		return err
	}

	cli.PrintSuccess("'%s' %s copied to clipboard", src.Name, what)
	cli.PrintInfo("%s", utils.FormatStats(sess.Stats()))
	cli.PrintInfo("Preview: %s", utils.Preview(src.Text, 80))

	return nil
}
