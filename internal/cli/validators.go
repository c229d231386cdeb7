package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag against the
// formats a command supports
func ValidateOutputFormat(format string, allowed ...OutputFormat) error {
	if len(allowed) == 0 {
		allowed = []OutputFormat{FormatText, FormatJSON, FormatYAML}
	}
	names := make([]string, len(allowed))
	for i, valid := range allowed {
		if OutputFormat(format) == valid {
			return nil
		}
		names[i] = string(valid)
	}
	return fmt.Errorf("invalid output format: %s (must be: %s)", format, strings.Join(names, ", "))
}

// ValidateHeadingLevel validates a --level flag
func ValidateHeadingLevel(level int) error {
	if level < 1 || level > 3 {
		return fmt.Errorf("invalid heading level: %d (must be 1, 2, or 3)", level)
	}
	return nil
}

// ValidateRange validates --start/--end offsets before they are clamped
// against the text
func ValidateRange(start, end int) error {
	if start < 0 || end < 0 {
		return fmt.Errorf("selection offsets cannot be negative")
	}
	if end < start {
		return fmt.Errorf("selection end (%d) is before start (%d)", end, start)
	}
	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
