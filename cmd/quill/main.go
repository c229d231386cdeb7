package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/cmd/commands"
	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/files"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	outputFormat string
	quiet        bool
	noColor      bool
	skipConfirm  bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Terminal editor and compiler for lightweight formatted text",
	Long: `Quill is a small authoring tool: write text with a lightweight markup
(headings, bold, italic, underline, lists and links), preview it in the
terminal and compile it to HTML. Documents are stored as plain Markdown
files with YAML frontmatter under .quill/.

Run without a command to open the editor on an untitled document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, skipConfirm, verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(files.QuillDir); os.IsNotExist(err) {
			return fmt.Errorf("no .quill directory found in the current directory. Run 'quill init' first")
		}
		editCmd := commands.NewEditCommand()
		editCmd.SetContext(cmd.Context())
		return editCmd.RunE(editCmd, args)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new quill project",
	Long:  `Creates the .quill folder structure and a default settings file in the current directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintBanner(cmd.OutOrStdout())
		cli.PrintInfo("Initializing quill project in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		cli.PrintSuccess("Created .quill folder structure")
		cli.PrintInfo("Run 'quill edit <name>' to start writing.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quill",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quill version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml; html for export)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewCompileCommand())
	rootCmd.AddCommand(commands.NewFormatCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewPasteCommand())
	rootCmd.AddCommand(commands.NewArchiveCommand())
	rootCmd.AddCommand(commands.NewRestoreCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
