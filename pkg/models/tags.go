package models

import (
	"errors"
	"strings"
)

// Tag-related errors
var (
	ErrEmptyTagName        = errors.New("tag name cannot be empty")
	ErrTagNameTooLong      = errors.New("tag name cannot exceed 50 characters")
	ErrInvalidTagCharacter = errors.New("tag name contains invalid characters")
)

// NormalizeTagName normalizes a tag name for consistency
func NormalizeTagName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")

	var result strings.Builder
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '/' {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ValidateTagName checks if a tag name is valid
func ValidateTagName(name string) error {
	if name == "" {
		return ErrEmptyTagName
	}
	if len(name) > 50 {
		return ErrTagNameTooLong
	}
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '/' || r == ' ') {
			return ErrInvalidTagCharacter
		}
	}
	return nil
}

// NormalizeTags validates and normalizes a tag list, dropping duplicates
func NormalizeTags(tags []string) ([]string, error) {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		if err := ValidateTagName(strings.TrimSpace(tag)); err != nil {
			return nil, err
		}
		n := NormalizeTagName(tag)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}
