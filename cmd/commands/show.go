package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/markup"
	"github.com/pluqqy/quill/pkg/utils"
)

// ShowResult is the structured output of the show command
type ShowResult struct {
	Name  string          `json:"name" yaml:"name"`
	Tags  []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Path  string          `json:"path,omitempty" yaml:"path,omitempty"`
	Text  string          `json:"text" yaml:"text"`
	HTML  string          `json:"html,omitempty" yaml:"html,omitempty"`
	Stats utils.TextStats `json:"stats" yaml:"stats"`
}

var (
	showMetadata bool
	showHTML     bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <document|file|->",
		Short: "Display a document",
		Long: `Display the authored text of a document, or its compiled HTML.

Examples:
  # Show a document
  quill show landing-page

  # Show with name, tags and stats
  quill show landing-page --metadata

  # Show the compiled HTML
  quill show landing-page --html

  # Output as JSON
  quill show landing-page -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().BoolVarP(&showMetadata, "metadata", "m", false, "Show document metadata")
	cmd.Flags().BoolVar(&showHTML, "html", false, "Show compiled HTML instead of the authored text")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	src, err := ctx.ReadSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	result := ShowResult{
		Name:  src.Name,
		Text:  src.Text,
		Stats: utils.Stats(src.Text),
	}
	if src.Document != nil {
		result.Tags = src.Document.Tags
		result.Path = src.Document.Path
	}
	if showHTML {
		result.HTML = markup.Compile(src.Text)
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	out := cmd.OutOrStdout()
	if showMetadata {
		fmt.Fprintf(out, "Name: %s\n", result.Name)
		if len(result.Tags) > 0 {
			fmt.Fprintf(out, "Tags: %s\n", strings.Join(result.Tags, ", "))
		}
		if result.Path != "" {
			fmt.Fprintf(out, "Path: %s\n", result.Path)
		}
		fmt.Fprintf(out, "Stats: %s\n", utils.FormatStats(result.Stats))
		fmt.Fprintln(out, strings.Repeat("-", 80))
	}

	if showHTML {
		fmt.Fprintln(out, result.HTML)
	} else {
		fmt.Fprintln(out, result.Text)
	}
	return nil
}
