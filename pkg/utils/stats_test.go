package utils

import (
	"strings"
	"testing"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"single line", "one", 1},
		{"trailing newline", "one\n", 1},
		{"two lines", "one\ntwo", 2},
		{"blank line between", "one\n\ntwo", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountLines(tt.input); got != tt.expected {
				t.Errorf("CountLines(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStats(t *testing.T) {
	s := Stats("# Title\n\nsome **bold** words héré")
	if s.Lines != 3 {
		t.Errorf("Lines = %d, expected 3", s.Lines)
	}
	if s.Words != 6 {
		t.Errorf("Words = %d, expected 6", s.Words)
	}
	if s.Runes != 33 {
		t.Errorf("Runes = %d, expected 33", s.Runes)
	}
	if s.Minutes != 1 {
		t.Errorf("Minutes = %d, expected 1", s.Minutes)
	}
}

func TestEstimateReadingMinutes(t *testing.T) {
	tests := []struct {
		words    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{200, 1},
		{201, 2},
		{1000, 5},
	}
	for _, tt := range tests {
		if got := EstimateReadingMinutes(tt.words); got != tt.expected {
			t.Errorf("EstimateReadingMinutes(%d) = %d, expected %d", tt.words, got, tt.expected)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("first\nsecond", 80); got != "first ..." {
		t.Errorf("Preview() = %q", got)
	}
	long := strings.Repeat("x", 100)
	got := Preview(long, 20)
	if len(got) != 20 || !strings.HasSuffix(got, "...") {
		t.Errorf("Preview() = %q", got)
	}
}
