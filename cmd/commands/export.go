package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
	"github.com/pluqqy/quill/pkg/markup"
	"github.com/pluqqy/quill/pkg/models"
)

var (
	exportToFile     string
	exportStandalone bool
	exportDefault    bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <document|file|->",
		Short: "Export compiled HTML to stdout or a file",
		Long: `Export a document by compiling it and writing the result.

By default the compiled HTML is written to stdout. Use --file to write
it somewhere else, or --default to write it under the export path from
.quill/settings.yaml. With -o json or -o yaml both the authored text
and the compiled HTML are emitted.

Examples:
  # Export to stdout
  quill export landing-page

  # Export a complete HTML page to a file
  quill export landing-page --standalone --file site/index.html

  # Export to the configured export directory
  quill export landing-page --default

  # Structured export
  quill export landing-page -o yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, _ := cmd.Flags().GetString("output")
			if outputFormat == "" || outputFormat == string(cli.FormatText) {
				return nil
			}
			return cli.ValidateOutputFormat(outputFormat, cli.FormatHTML, cli.FormatJSON, cli.FormatYAML)
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout")
	cmd.Flags().BoolVar(&exportStandalone, "standalone", false, "Wrap the HTML in a complete document")
	cmd.Flags().BoolVar(&exportDefault, "default", false, "Export to the configured export path")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	settings := ctx.LoadSettingsWithDefault()

	src, err := ctx.ReadSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	body := markup.Compile(src.Text)
	if exportStandalone || settings.Output.Standalone {
		body = files.WrapHTMLDocument(src.Name, body)
	}

	target := exportToFile
	if target == "" && exportDefault {
		target = files.ExportPath(settings, src.Name)
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" || outputFormat == "yaml" {
		exported := models.ExportedDocument{
			Name: src.Name,
			Text: src.Text,
			HTML: body,
		}
		if src.Document != nil {
			exported.Tags = src.Document.Tags
		}

		if target == "" {
			return cli.OutputResults(cmd.OutOrStdout(), outputFormat, exported)
		}

		file, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		defer file.Close()

		if err := cli.OutputResults(file, outputFormat, exported); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		cli.PrintSuccess("'%s' exported to: %s (%s format)", src.Name, target, outputFormat)
		return nil
	}

	if target == "" {
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	}

	if err := files.WriteFile(target, body); err != nil {
		return err
	}
	cli.PrintSuccess("'%s' exported to: %s", src.Name, target)
	return nil
}
