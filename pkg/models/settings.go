package models

// Settings represents the application configuration
type Settings struct {
	Editor EditorSettings `yaml:"editor"`
	Output OutputSettings `yaml:"output"`
	UI     UISettings     `yaml:"ui"`
}

// EditorSettings controls the authoring session
type EditorSettings struct {
	HistoryLimit        int    `yaml:"history_limit"`
	DefaultView         string `yaml:"default_view"` // "author", "preview" or "source"
	LinkPlaceholderText string `yaml:"link_placeholder_text"`
	LinkPlaceholderURL  string `yaml:"link_placeholder_url"`
	ShowLineNumbers     bool   `yaml:"show_line_numbers"`
	Placeholder         string `yaml:"placeholder"`
	ClipboardTimeoutMS  int    `yaml:"clipboard_timeout_ms"`
}

// OutputSettings controls compile and export behavior
type OutputSettings struct {
	ExportPath       string `yaml:"export_path"`
	DefaultExtension string `yaml:"default_extension"`
	WrapWidth        int    `yaml:"wrap_width"`
	Standalone       bool   `yaml:"standalone"` // wrap exported HTML in a full document
}

// UISettings controls UI preferences
type UISettings struct {
	ShowHelp     bool   `yaml:"show_help"`
	PreviewStyle string `yaml:"preview_style"` // "auto", "dark", "light", "plain"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			HistoryLimit:        100,
			DefaultView:         "author",
			LinkPlaceholderText: "link text",
			LinkPlaceholderURL:  "https://",
			ShowLineNumbers:     true,
			Placeholder:         "Start typing...",
			ClipboardTimeoutMS:  2000,
		},
		Output: OutputSettings{
			ExportPath:       "./",
			DefaultExtension: ".html",
			WrapWidth:        100,
			Standalone:       false,
		},
		UI: UISettings{
			ShowHelp:     true,
			PreviewStyle: "auto",
		},
	}
}
