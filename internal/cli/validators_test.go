package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		allowed []OutputFormat
		wantErr bool
	}{
		{"text by default", "text", nil, false},
		{"yaml by default", "yaml", nil, false},
		{"html not allowed by default", "html", nil, true},
		{"html when allowed", "html", []OutputFormat{FormatHTML, FormatJSON}, false},
		{"text when not allowed", "text", []OutputFormat{FormatHTML}, true},
		{"unknown", "xml", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.allowed...)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid output format")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHeadingLevel(t *testing.T) {
	for _, level := range []int{1, 2, 3} {
		assert.NoError(t, ValidateHeadingLevel(level))
	}
	assert.Error(t, ValidateHeadingLevel(0))
	assert.Error(t, ValidateHeadingLevel(4))
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange(0, 0))
	assert.NoError(t, ValidateRange(2, 9))
	assert.ErrorContains(t, ValidateRange(-1, 3), "negative")
	assert.ErrorContains(t, ValidateRange(5, 3), "before start")
}

func TestValidateFilePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.NoError(t, ValidateFilePath(file))
	assert.ErrorContains(t, ValidateFilePath(dir), "directory")
	assert.ErrorContains(t, ValidateFilePath(filepath.Join(dir, "missing.md")), "does not exist")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abcd...", TruncateString("abcdefghij", 7))
	assert.Equal(t, "héé...", TruncateString("héééééé", 6))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestConfirmFrom(t *testing.T) {
	SetGlobalFlags(true, true, false, false)
	defer SetGlobalFlags(false, false, false, false)

	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
	}

	for _, tt := range tests {
		got, err := ConfirmFrom(strings.NewReader(tt.input), "Proceed?", tt.defaultYes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	SetGlobalFlags(true, true, true, false)
	got, err := ConfirmFrom(strings.NewReader(""), "Proceed?", false)
	require.NoError(t, err)
	assert.True(t, got)
}
