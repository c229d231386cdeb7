package files

import (
	"testing"

	"github.com/pluqqy/quill/pkg/models"
)

func TestExtractFrontmatter(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		expectedName    string
		expectedTags    []string
		expectedContent string
		wantErr         bool
	}{
		{
			name: "with name and tags",
			content: `---
name: Home
tags: [web, hero]
---

# Welcome
Body text.`,
			expectedName:    "Home",
			expectedTags:    []string{"web", "hero"},
			expectedContent: "# Welcome\nBody text.",
		},
		{
			name:            "no frontmatter",
			content:         "# Plain\ntext",
			expectedContent: "# Plain\ntext",
		},
		{
			name:            "unterminated frontmatter is body",
			content:         "---\nname: x\nno closing",
			expectedContent: "---\nname: x\nno closing",
		},
		{
			name:            "empty frontmatter",
			content:         "---\n---\nbody",
			expectedContent: "body",
		},
		{
			name:    "invalid yaml",
			content: "---\nname: [unclosed\n---\nbody",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := ExtractFrontmatter(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractFrontmatter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if meta.Name != tt.expectedName {
				t.Errorf("Name = %q, want %q", meta.Name, tt.expectedName)
			}
			if len(meta.Tags) != len(tt.expectedTags) {
				t.Fatalf("Tags = %v, want %v", meta.Tags, tt.expectedTags)
			}
			for i := range tt.expectedTags {
				if meta.Tags[i] != tt.expectedTags[i] {
					t.Errorf("Tags[%d] = %q, want %q", i, meta.Tags[i], tt.expectedTags[i])
				}
			}
			if body != tt.expectedContent {
				t.Errorf("body = %q, want %q", body, tt.expectedContent)
			}
		})
	}
}

func TestComposeFrontmatter(t *testing.T) {
	plain, err := ComposeFrontmatter(models.DocumentMeta{}, "body")
	if err != nil || plain != "body" {
		t.Errorf("ComposeFrontmatter(empty) = %q, %v", plain, err)
	}

	raw, err := ComposeFrontmatter(models.DocumentMeta{Name: "Doc", Tags: []string{"a"}}, "line one\n\nline two")
	if err != nil {
		t.Fatalf("ComposeFrontmatter() error = %v", err)
	}
	meta, body, err := ExtractFrontmatter(raw)
	if err != nil {
		t.Fatalf("ExtractFrontmatter() error = %v", err)
	}
	if meta.Name != "Doc" || body != "line one\n\nline two" {
		t.Errorf("round trip = %+v, %q", meta, body)
	}
}
