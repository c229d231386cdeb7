package models

import (
	"testing"
)

func TestNormalizeTagName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "API", "api"},
		{"trim spaces", "  api  ", "api"},
		{"replace spaces", "api endpoint", "api-endpoint"},
		{"remove invalid chars", "api@endpoint!", "apiendpoint"},
		{"keep hyphens", "api-endpoint", "api-endpoint"},
		{"keep slashes", "project/frontend", "project/frontend"},
		{"mixed case with spaces", "API Endpoint", "api-endpoint"},
		{"numbers allowed", "api-v2", "api-v2"},
	}
	
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeTagName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeTagName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidateTagName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errType error
	}{
		{"valid simple", "api", false, nil},
		{"valid with hyphen", "api-endpoint", false, nil},
		{"valid with slash", "project/frontend", false, nil},
		{"valid with numbers", "api-v2", false, nil},
		{"empty string", "", true, ErrEmptyTagName},
		{"too long", "this-is-a-very-long-tag-name-that-exceeds-fifty-characters-limit", true, ErrTagNameTooLong},
		{"valid with spaces", "api endpoint", false, nil}, // spaces are allowed, will be normalized
		{"invalid chars", "api@endpoint", true, ErrInvalidTagCharacter},
		{"special chars", "api#endpoint!", true, ErrInvalidTagCharacter},
	}
	
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTagName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTagName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && err != tt.errType {
				t.Errorf("ValidateTagName(%q) error = %v, want %v", tt.input, err, tt.errType)
			}
		})
	}
}


func TestNormalizeTags(t *testing.T) {
	got, err := NormalizeTags([]string{"Draft", "draft", " Web Copy ", "site/home"})
	if err != nil {
		t.Fatalf("NormalizeTags() error = %v", err)
	}
	expected := []string{"draft", "web-copy", "site/home"}
	if len(got) != len(expected) {
		t.Fatalf("NormalizeTags() = %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("NormalizeTags()[%d] = %q, want %q", i, got[i], expected[i])
		}
	}

	if _, err := NormalizeTags([]string{"bad!"}); err != ErrInvalidTagCharacter {
		t.Errorf("NormalizeTags(bad!) error = %v, want ErrInvalidTagCharacter", err)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Editor.HistoryLimit <= 0 {
		t.Errorf("HistoryLimit = %d, want positive", s.Editor.HistoryLimit)
	}
	if s.Editor.DefaultView != "author" {
		t.Errorf("DefaultView = %q, want author", s.Editor.DefaultView)
	}
	if s.Editor.LinkPlaceholderURL == "" || s.Editor.LinkPlaceholderText == "" {
		t.Error("link placeholders must have defaults")
	}
}
