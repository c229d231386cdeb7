package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// wordsPerMinute is a typical silent reading speed for prose
const wordsPerMinute = 200

// TextStats summarizes a buffer for the status bar and the CLI
type TextStats struct {
	Lines   int `json:"lines" yaml:"lines"`
	Words   int `json:"words" yaml:"words"`
	Runes   int `json:"runes" yaml:"runes"`
	Minutes int `json:"reading_minutes" yaml:"reading_minutes"`
}

// Stats computes TextStats for content
func Stats(content string) TextStats {
	words := CountWords(content)
	return TextStats{
		Lines:   CountLines(content),
		Words:   words,
		Runes:   utf8.RuneCountInString(content),
		Minutes: EstimateReadingMinutes(words),
	}
}

// CountLines counts lines, ignoring a single trailing newline
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		return len(lines) - 1
	}
	return len(lines)
}

// CountWords counts whitespace separated words
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// EstimateReadingMinutes rounds up, with a minimum of one minute for any text
func EstimateReadingMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// FormatStats formats stats for a status line
func FormatStats(s TextStats) string {
	return fmt.Sprintf("%d lines · %d words · ~%d min", s.Lines, s.Words, s.Minutes)
}

// Preview returns the first line of content, shortened to max runes
func Preview(content string, max int) string {
	lines := strings.Split(content, "\n")
	preview := lines[0]
	if len(lines) > 1 {
		preview += " ..."
	}
	if max > 3 && utf8.RuneCountInString(preview) > max {
		preview = string([]rune(preview)[:max-3]) + "..."
	}
	return preview
}
