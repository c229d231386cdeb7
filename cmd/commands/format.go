package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
	"github.com/pluqqy/quill/pkg/format"
	"github.com/pluqqy/quill/pkg/selection"
	"github.com/pluqqy/quill/pkg/session"
)

// FormatResult is the structured output of the format command
type FormatResult struct {
	Command string `json:"command" yaml:"command"`
	Text    string `json:"text" yaml:"text"`
	Caret   int    `json:"caret" yaml:"caret"`
}

var (
	formatCommand string
	formatStart   int
	formatEnd     int
	formatLevel   int
	formatText    string
	formatURL     string
	formatWrite   bool
)

// NewFormatCommand creates the format command
func NewFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <file|document|->",
		Short: "Apply a formatting command to a selection",
		Long: `Apply one formatting command to the text between --start and --end.

Offsets count characters from the beginning of the text. An empty
selection (start == end) is a caret: bold, italic and underline need
a non-empty selection, the other commands act on the caret's line.

Commands:
  bold, italic, underline
  heading (--level 1-3)
  bullet, numbered
  link (--text, --url)

Examples:
  # Bold the first five characters and print the result
  quill format notes.md --command bold --start 0 --end 5

  # Turn lines into a numbered list in place
  quill format landing-page --command numbered --start 0 --end 40 --write

  # Insert a link at the caret
  quill format - --command link --start 3 --end 3 --text docs --url https://example.com`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := format.ParseKind(formatCommand); err != nil {
				return err
			}
			if cmd.Flags().Changed("level") {
				if err := cli.ValidateHeadingLevel(formatLevel); err != nil {
					return err
				}
			}
			return cli.ValidateRange(formatStart, formatEnd)
		},
		RunE: runFormat,
	}

	cmd.Flags().StringVarP(&formatCommand, "command", "c", "", "Formatting command to apply")
	cmd.Flags().IntVar(&formatStart, "start", 0, "Selection start offset")
	cmd.Flags().IntVar(&formatEnd, "end", 0, "Selection end offset")
	cmd.Flags().IntVar(&formatLevel, "level", 1, "Heading level (1-3)")
	cmd.Flags().StringVar(&formatText, "text", "", "Link label when nothing is selected")
	cmd.Flags().StringVar(&formatURL, "url", "", "Link target")
	cmd.Flags().BoolVarP(&formatWrite, "write", "w", false, "Write the result back to the source")
	cmd.MarkFlagRequired("command")

	return cmd
}

func buildCommand() (format.Command, error) {
	kind, err := format.ParseKind(formatCommand)
	if err != nil {
		return format.Command{}, err
	}

	switch kind {
	case format.KindHeading:
		return format.Heading(formatLevel), nil
	case format.KindLink:
		return format.Link(formatText, formatURL), nil
	default:
		return format.Command{Kind: kind}, nil
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	src, err := ctx.ReadSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	command, err := buildCommand()
	if err != nil {
		return err
	}

	sess := session.New(src.Text, sessionOptions(ctx)...)
	sess.Select(selection.NewRange(formatStart, formatEnd))

	if err := sess.Dispatch(command); err != nil {
		return fmt.Errorf("failed to apply %s: %w", command, err)
	}

	if formatWrite {
		if err := writeBack(args[0], src, sess.Save()); err != nil {
			return err
		}
		cli.PrintSuccess("Applied %s to %s", command, src.Name)
		return nil
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, FormatResult{
			Command: command.String(),
			Text:    sess.Text(),
			Caret:   sess.Selection().End,
		})
	default:
		fmt.Fprint(cmd.OutOrStdout(), sess.Text())
		return nil
	}
}

// writeBack persists text to where src was read from
func writeBack(ref string, src *cli.Source, text string) error {
	switch {
	case ref == "-":
		return fmt.Errorf("cannot --write when reading from stdin")
	case src.Document != nil:
		return files.WriteDocument(src.Document.Name, text, src.Document.Tags)
	default:
		raw, err := files.ComposeFrontmatter(src.Meta, text)
		if err != nil {
			return err
		}
		return files.WriteFile(ref, raw)
	}
}
