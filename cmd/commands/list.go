package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
	"github.com/pluqqy/quill/pkg/models"
	"github.com/pluqqy/quill/pkg/utils"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Archived bool       `json:"archived" yaml:"archived"`
	Items    []ListItem `json:"items" yaml:"items"`
	Count    int        `json:"count" yaml:"count"`
}

// ListItem represents a single document in the list
type ListItem struct {
	Name     string   `json:"name" yaml:"name"`
	Tags     []string `json:"tags" yaml:"tags"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Words    int      `json:"words" yaml:"words"`
	Modified string   `json:"modified" yaml:"modified"`
}

var (
	listShowArchived bool
	listShowPaths    bool
	listTag          string
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		Long: `List all documents in the current project, most recently
modified first.

Examples:
  # List documents
  quill list

  # Only documents tagged "draft"
  quill list --tag draft

  # Show only archived documents
  quill list --archived

  # JSON output with file paths
  quill list --paths -o json`,
		Args:    cobra.NoArgs,
		Aliases: []string{"ls"},
		PreRunE: requireProject,
		RunE:    runList,
	}

	cmd.Flags().BoolVarP(&listShowArchived, "archived", "a", false, "Show only archived documents")
	cmd.Flags().BoolVar(&listShowPaths, "paths", false, "Show file paths")
	cmd.Flags().StringVarP(&listTag, "tag", "t", "", "Only show documents with this tag")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	var docs []*models.Document
	var err error
	if listShowArchived {
		docs, err = files.ListArchivedDocuments()
	} else {
		docs, err = files.ListDocuments()
	}
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	result := ListResult{Archived: listShowArchived, Items: []ListItem{}}
	tag := models.NormalizeTagName(listTag)
	for _, doc := range docs {
		if tag != "" && !cli.Contains(doc.Tags, tag) {
			continue
		}
		item := ListItem{
			Name:     doc.Name,
			Tags:     doc.Tags,
			Words:    utils.CountWords(doc.Content),
			Modified: doc.Modified.Format("2006-01-02 15:04"),
		}
		if item.Tags == nil {
			item.Tags = []string{}
		}
		if listShowPaths {
			item.Path = doc.Path
		}
		result.Items = append(result.Items, item)
	}
	result.Count = len(result.Items)

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputListText(cmd, result)
	}
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 {
		cli.PrintInfo("No documents found")
		return nil
	}

	title := "DOCUMENTS"
	if result.Archived {
		title = "ARCHIVED DOCUMENTS"
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\n"+title)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 80))

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	if listShowPaths {
		table.Header("Name", "Words", "Modified", "Tags", "Path")
	} else {
		table.Header("Name", "Words", "Modified", "Tags")
	}

	for _, item := range result.Items {
		tags := strings.Join(item.Tags, ", ")
		if tags == "" {
			tags = "-"
		}
		name := cli.TruncateString(item.Name, 40)
		if listShowPaths {
			table.Row(name, fmt.Sprintf("%d", item.Words), item.Modified, tags, item.Path)
		} else {
			table.Row(name, fmt.Sprintf("%d", item.Words), item.Modified, tags)
		}
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d\n", result.Count)
	return nil
}
