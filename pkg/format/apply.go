// Package format turns formatting commands into text edits.
//
// Apply is pure: it takes the whole buffer and a selection and returns the
// new buffer plus where the caret should land. Offsets are rune offsets.
//
// Line-prefix commands (heading, lists) never inspect or strip markers that
// are already present. Applying a heading to "## a" yields "# ## a"; the
// compiler then renders the line as an h1 whose content starts with "## ".
// This keeps every command total without guessing at user intent.
package format

import (
	"errors"
	"strconv"
	"strings"

	"github.com/pluqqy/quill/pkg/selection"
)

// ErrEmptySelection is returned when an inline command has no text to wrap
var ErrEmptySelection = errors.New("nothing selected")

// Placeholders used for link commands when neither a selection nor an
// explicit label/url is available.
const (
	DefaultLinkText = "link text"
	DefaultLinkURL  = "https://"
)

// Result is the outcome of a successful Apply
type Result struct {
	Text  string
	Caret int
}

// Placeholders supplies the link label and url used when a Link command
// arrives without them
type Placeholders struct {
	LinkText string
	LinkURL  string
}

// Apply runs cmd against text using the default placeholders
func Apply(cmd Command, text string, sel selection.Range) (Result, error) {
	return ApplyWith(cmd, text, sel, Placeholders{})
}

// ApplyWith runs cmd against text. The selection is clamped to the text
// before use. On error the returned Result carries the unchanged text.
func ApplyWith(cmd Command, text string, sel selection.Range, ph Placeholders) (Result, error) {
	rs := []rune(text)
	sel = selection.Clamp(sel, len(rs))

	switch cmd.Kind {
	case KindBold:
		return wrap(rs, sel, "**")
	case KindItalic:
		return wrap(rs, sel, "*")
	case KindUnderline:
		return wrap(rs, sel, "_")
	case KindHeading:
		return heading(rs, sel, clampLevel(cmd.Level)), nil
	case KindBulletList:
		return prefixLines(rs, sel, func(int) string { return "- " }), nil
	case KindNumberedList:
		return prefixLines(rs, sel, func(i int) string { return strconv.Itoa(i) + ". " }), nil
	case KindLink:
		return link(rs, sel, cmd, ph), nil
	}
	return Result{Text: text, Caret: sel.End}, nil
}

func wrap(rs []rune, sel selection.Range, delim string) (Result, error) {
	if sel.IsEmpty() {
		return Result{Text: string(rs), Caret: sel.End}, ErrEmptySelection
	}

	d := []rune(delim)
	out := make([]rune, 0, len(rs)+2*len(d))
	out = append(out, rs[:sel.Start]...)
	out = append(out, d...)
	out = append(out, rs[sel.Start:sel.End]...)
	out = append(out, d...)
	out = append(out, rs[sel.End:]...)

	return Result{Text: string(out), Caret: sel.End + 2*len(d)}, nil
}

func heading(rs []rune, sel selection.Range, level int) Result {
	prefix := []rune(strings.Repeat("#", level) + " ")

	at := sel.Start
	caret := sel.End + len(prefix)
	if sel.IsEmpty() {
		at, _ = lineSpan(rs, sel)
	}

	return Result{Text: string(insert(rs, at, prefix)), Caret: caret}
}

// prefixLines prefixes every line touched by sel. marker receives the
// 1-based index of the line within the span.
func prefixLines(rs []rune, sel selection.Range, marker func(int) string) Result {
	start, end := lineSpan(rs, sel)
	lines := strings.Split(string(rs[start:end]), "\n")

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(marker(i + 1))
		b.WriteString(line)
	}

	block := []rune(b.String())
	out := make([]rune, 0, len(rs)+len(block))
	out = append(out, rs[:start]...)
	out = append(out, block...)
	out = append(out, rs[end:]...)

	return Result{Text: string(out), Caret: start + len(block)}
}

func link(rs []rune, sel selection.Range, cmd Command, ph Placeholders) Result {
	label := string(rs[sel.Start:sel.End])
	if label == "" {
		label = firstNonEmpty(cmd.Text, ph.LinkText, DefaultLinkText)
	}
	url := firstNonEmpty(cmd.URL, ph.LinkURL, DefaultLinkURL)

	markup := []rune("[" + label + "](" + url + ")")
	out := make([]rune, 0, len(rs)+len(markup))
	out = append(out, rs[:sel.Start]...)
	out = append(out, markup...)
	out = append(out, rs[sel.End:]...)

	return Result{Text: string(out), Caret: sel.Start + len(markup)}
}

// lineSpan returns the offsets of the line block containing sel: from the
// rune after the last newline before sel.Start to the first newline at or
// after sel.End.
func lineSpan(rs []rune, sel selection.Range) (int, int) {
	start := sel.Start
	for start > 0 && rs[start-1] != '\n' {
		start--
	}
	end := sel.End
	for end < len(rs) && rs[end] != '\n' {
		end++
	}
	return start, end
}

func insert(rs []rune, at int, ins []rune) []rune {
	out := make([]rune, 0, len(rs)+len(ins))
	out = append(out, rs[:at]...)
	out = append(out, ins...)
	return append(out, rs[at:]...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
