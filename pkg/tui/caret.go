package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
)

// caretOffset converts the textarea cursor (row, column) into a rune
// offset into its value
func caretOffset(ta *textarea.Model) int {
	lines := strings.Split(ta.Value(), "\n")
	row := ta.Line()
	if row >= len(lines) {
		row = len(lines) - 1
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len([]rune(lines[i])) + 1
	}

	li := ta.LineInfo()
	col := li.StartColumn + li.ColumnOffset
	if n := len([]rune(lines[row])); col > n {
		col = n
	}
	return offset + col
}

// rowCol converts a rune offset into a logical row and column
func rowCol(text string, offset int) (int, int) {
	row, col := 0, 0
	for i, r := range []rune(text) {
		if i == offset {
			break
		}
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}

// placeCaret moves the textarea cursor to a rune offset. SetValue leaves
// the cursor at the end, so the cursor only ever needs to move up.
func placeCaret(ta *textarea.Model, offset int) {
	row, col := rowCol(ta.Value(), offset)
	for ta.Line() > row {
		before := ta.Line()
		ta.CursorUp()
		if ta.Line() == before && ta.LineInfo().RowOffset == 0 {
			break
		}
	}
	ta.SetCursor(col)
}

// setTextareaValue replaces the textarea content and positions the caret
func setTextareaValue(ta *textarea.Model, text string, caret int) {
	ta.SetValue(text)
	placeCaret(ta, caret)
}
