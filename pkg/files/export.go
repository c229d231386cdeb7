package files

import (
	"html"
	"path/filepath"
	"strings"

	"github.com/pluqqy/quill/pkg/models"
)

// ExportPath returns where an exported document lands when no explicit
// file is given
func ExportPath(settings *models.Settings, name string) string {
	ext := settings.Output.DefaultExtension
	if ext == "" {
		ext = ".html"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	dir := settings.Output.ExportPath
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, Slugify(name)+ext)
}

// WrapHTMLDocument wraps a compiled body in a minimal standalone page
func WrapHTMLDocument(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
