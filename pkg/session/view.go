package session

import (
	"fmt"
	"strings"
)

// ViewMode selects what the shell shows. It is presentation state only and
// never affects the text or its history.
type ViewMode int

const (
	ViewAuthor ViewMode = iota
	ViewPreview
	ViewCompiledSource
)

func (v ViewMode) String() string {
	switch v {
	case ViewAuthor:
		return "author"
	case ViewPreview:
		return "preview"
	case ViewCompiledSource:
		return "source"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Next returns the view that follows v in the author, preview, source cycle
func (v ViewMode) Next() ViewMode {
	switch v {
	case ViewAuthor:
		return ViewPreview
	case ViewPreview:
		return ViewCompiledSource
	default:
		return ViewAuthor
	}
}

// ParseViewMode converts a settings or flag value to a ViewMode
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "author", "edit":
		return ViewAuthor, nil
	case "preview":
		return ViewPreview, nil
	case "source", "html", "compiled":
		return ViewCompiledSource, nil
	}
	return ViewAuthor, fmt.Errorf("invalid view mode: %s (must be: author, preview, or source)", s)
}
