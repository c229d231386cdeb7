package format

import (
	"errors"
	"testing"

	"github.com/pluqqy/quill/pkg/selection"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name          string
		cmd           Command
		text          string
		sel           selection.Range
		expectedText  string
		expectedCaret int
	}{
		{
			name:          "bold wraps selection",
			cmd:           Bold(),
			text:          "make this bold",
			sel:           selection.Range{Start: 10, End: 14},
			expectedText:  "make this **bold**",
			expectedCaret: 18,
		},
		{
			name:          "italic wraps selection",
			cmd:           Italic(),
			text:          "a word here",
			sel:           selection.Range{Start: 2, End: 6},
			expectedText:  "a *word* here",
			expectedCaret: 8,
		},
		{
			name:          "underline wraps selection",
			cmd:           Underline(),
			text:          "under",
			sel:           selection.Range{Start: 0, End: 5},
			expectedText:  "_under_",
			expectedCaret: 7,
		},
		{
			name:          "bold counts runes not bytes",
			cmd:           Bold(),
			text:          "héllo wörld",
			sel:           selection.Range{Start: 6, End: 11},
			expectedText:  "héllo **wörld**",
			expectedCaret: 15,
		},
		{
			name:          "heading with caret prefixes current line",
			cmd:           Heading(2),
			text:          "abc\ndef",
			sel:           selection.Range{Start: 0, End: 0},
			expectedText:  "## abc\ndef",
			expectedCaret: 3,
		},
		{
			name:          "heading with caret on second line",
			cmd:           Heading(1),
			text:          "abc\ndef",
			sel:           selection.Range{Start: 6, End: 6},
			expectedText:  "abc\n# def",
			expectedCaret: 8,
		},
		{
			name:          "heading with selection prefixes selected span",
			cmd:           Heading(3),
			text:          "intro title",
			sel:           selection.Range{Start: 6, End: 11},
			expectedText:  "intro ### title",
			expectedCaret: 15,
		},
		{
			name:          "heading level clamped",
			cmd:           Heading(9),
			text:          "x",
			sel:           selection.Range{},
			expectedText:  "### x",
			expectedCaret: 4,
		},
		{
			name:          "heading does not strip existing marker",
			cmd:           Heading(1),
			text:          "## old",
			sel:           selection.Range{Start: 3, End: 3},
			expectedText:  "# ## old",
			expectedCaret: 5,
		},
		{
			name:          "bullet list on caret",
			cmd:           BulletList(),
			text:          "one\ntwo",
			sel:           selection.Range{Start: 5, End: 5},
			expectedText:  "one\n- two",
			expectedCaret: 9,
		},
		{
			name:          "bullet list across lines",
			cmd:           BulletList(),
			text:          "a\nb\nc\nd",
			sel:           selection.Range{Start: 2, End: 5},
			expectedText:  "a\n- b\n- c\nd",
			expectedCaret: 9,
		},
		{
			name:          "bullet list on empty buffer",
			cmd:           BulletList(),
			text:          "",
			sel:           selection.Range{},
			expectedText:  "- ",
			expectedCaret: 2,
		},
		{
			name:          "numbered list counts within span",
			cmd:           NumberedList(),
			text:          "intro\nfirst\nsecond\nthird",
			sel:           selection.Range{Start: 7, End: 24},
			expectedText:  "intro\n1. first\n2. second\n3. third",
			expectedCaret: 33,
		},
		{
			name:          "link uses selection as label",
			cmd:           Link("ignored", "https://x.io"),
			text:          "see go now",
			sel:           selection.Range{Start: 4, End: 6},
			expectedText:  "see [go](https://x.io) now",
			expectedCaret: 22,
		},
		{
			name:          "link without selection uses given label",
			cmd:           Link("docs", "https://d.io"),
			text:          "read ",
			sel:           selection.Range{Start: 5, End: 5},
			expectedText:  "read [docs](https://d.io)",
			expectedCaret: 25,
		},
		{
			name:          "link falls back to placeholders",
			cmd:           Link("", ""),
			text:          "",
			sel:           selection.Range{},
			expectedText:  "[link text](https://)",
			expectedCaret: 21,
		},
		{
			name:          "out of range selection is clamped",
			cmd:           Bold(),
			text:          "abc",
			sel:           selection.Range{Start: 1, End: 40},
			expectedText:  "a**bc**",
			expectedCaret: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Apply(tt.cmd, tt.text, tt.sel)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if res.Text != tt.expectedText {
				t.Errorf("Text = %q, expected %q", res.Text, tt.expectedText)
			}
			if res.Caret != tt.expectedCaret {
				t.Errorf("Caret = %d, expected %d", res.Caret, tt.expectedCaret)
			}
		})
	}
}

func TestApply_EmptySelection(t *testing.T) {
	for _, cmd := range []Command{Bold(), Italic(), Underline()} {
		t.Run(cmd.String(), func(t *testing.T) {
			for _, text := range []string{"", "anything", "multi\nline"} {
				res, err := Apply(cmd, text, selection.Range{})
				if !errors.Is(err, ErrEmptySelection) {
					t.Errorf("Apply(%q) error = %v, expected ErrEmptySelection", text, err)
				}
				if res.Text != text {
					t.Errorf("Apply(%q) changed text to %q", text, res.Text)
				}
			}
		})
	}
}

func TestApplyWith_Placeholders(t *testing.T) {
	res, err := ApplyWith(Link("", ""), "", selection.Range{}, Placeholders{LinkText: "label", LinkURL: "https://example.com"})
	if err != nil {
		t.Fatalf("ApplyWith() error = %v", err)
	}
	if res.Text != "[label](https://example.com)" {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{"bold", KindBold, false},
		{"B", KindBold, false},
		{"italic", KindItalic, false},
		{"underline", KindUnderline, false},
		{"heading", KindHeading, false},
		{"ul", KindBulletList, false},
		{"numbered-list", KindNumberedList, false},
		{" link ", KindLink, false},
		{"strike", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseKind(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
