package files

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/quill/pkg/models"
)

const frontmatterDelim = "---"

// ExtractFrontmatter splits a document file into its YAML frontmatter and
// body. A file without a complete frontmatter block is returned whole as
// the body.
func ExtractFrontmatter(raw string) (models.DocumentMeta, string, error) {
	var meta models.DocumentMeta

	lines := strings.SplitAfter(raw, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != frontmatterDelim {
		return meta, raw, nil
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == frontmatterDelim {
			closing = i
			break
		}
	}
	if closing == -1 {
		return meta, raw, nil
	}

	header := strings.Join(lines[1:closing], "")
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return meta, raw, fmt.Errorf("invalid frontmatter: %w", err)
	}

	body := strings.Join(lines[closing+1:], "")
	body = strings.TrimPrefix(body, "\n")
	return meta, body, nil
}

// ComposeFrontmatter prepends meta as YAML frontmatter to content. Empty
// metadata produces the content unchanged.
func ComposeFrontmatter(meta models.DocumentMeta, content string) (string, error) {
	if meta.Name == "" && len(meta.Tags) == 0 {
		return content, nil
	}

	header, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString(frontmatterDelim + "\n")
	b.Write(header)
	b.WriteString(frontmatterDelim + "\n\n")
	b.WriteString(content)
	return b.String(), nil
}
