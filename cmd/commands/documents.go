package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pluqqy/quill/internal/cli"
	"github.com/pluqqy/quill/pkg/format"
	"github.com/pluqqy/quill/pkg/models"
	"github.com/pluqqy/quill/pkg/session"
)

// requireProject is the PreRunE shared by commands that only work inside
// an initialized project
func requireProject(cmd *cobra.Command, args []string) error {
	return cli.NewCommandContext().ValidateProject()
}

// sessionOptions turns editor settings into session options
func sessionOptions(ctx *cli.CommandContext) []session.Option {
	settings := ctx.LoadSettingsWithDefault()
	opts := []session.Option{
		session.WithHistoryLimit(settings.Editor.HistoryLimit),
		session.WithPlaceholders(format.Placeholders{
			LinkText: settings.Editor.LinkPlaceholderText,
			LinkURL:  settings.Editor.LinkPlaceholderURL,
		}),
		session.WithLogger(ctx.Logger),
	}
	if view, err := session.ParseViewMode(settings.Editor.DefaultView); err == nil {
		opts = append(opts, session.WithViewMode(view))
	}
	return opts
}

// clipboardTimeout returns how long a clipboard read may block
func clipboardTimeout(settings *models.Settings) time.Duration {
	ms := settings.Editor.ClipboardTimeoutMS
	if ms <= 0 {
		ms = models.DefaultSettings().Editor.ClipboardTimeoutMS
	}
	return time.Duration(ms) * time.Millisecond
}
