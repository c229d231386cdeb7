package commands

import (
	"fmt"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
	"github.com/pluqqy/quill/pkg/markup"
)

var (
	compileWrap       int
	compileStandalone bool
)

// NewCompileCommand creates the compile command
func NewCompileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <file|document|->",
		Short: "Compile authored text to HTML",
		Long: `Compile authored text to HTML and write it to stdout.

The argument may be a file path, the name of a document stored in
.quill/documents, or "-" to read from stdin.

Supported syntax:
  # ## ###        headings
  **bold** *italic* _underline_
  [label](url)    links
  - item          bullet lists
  1. item         numbered lists

Examples:
  # Compile a file
  quill compile notes.md

  # Compile a stored document as a full HTML page
  quill compile landing-page --standalone

  # Compile from stdin, wrapping long lines
  echo "**hi**" | quill compile - --wrap 80`,
		Args: cobra.ExactArgs(1),
		RunE: runCompile,
	}

	cmd.Flags().IntVar(&compileWrap, "wrap", 0, "Wrap output at this width (0 disables wrapping)")
	cmd.Flags().BoolVar(&compileStandalone, "standalone", false, "Wrap output in a complete HTML document")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	src, err := ctx.ReadSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	out := markup.Compile(src.Text)
	if compileWrap > 0 {
		out = wordwrap.String(out, compileWrap)
	}
	if compileStandalone {
		out = files.WrapHTMLDocument(src.Name, out)
	}

	ctx.Logger.Debug("compiled", "source", src.Name, "bytes", len(out))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
