package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/quill/pkg/markup"
)

func TestRenderSource(t *testing.T) {
	html := "<h1>Title</h1><ul><li>a</li><li>b</li></ul><p>done</p>"
	want := strings.Join([]string{
		"<h1>Title</h1>",
		"<ul>",
		"<li>a</li>",
		"<li>b</li>",
		"</ul>",
		"<p>done</p>",
	}, "\n")

	assert.Equal(t, want, renderSource(html, 0))
	assert.Equal(t, "", renderSource("", 80))
}

func TestRenderSource_Wraps(t *testing.T) {
	out := renderSource("<p>one two three four five six</p>", 12)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 12, "line %q exceeds width", line)
	}
}

func TestPreviewRenderer(t *testing.T) {
	r := NewPreviewRenderer("plain")
	blocks := markup.NewCompiler(nil).Blocks("# Heading\n\nSome **bold** & _under_\n- one\n- two\n1. first\n[docs](https://x.io)")

	out := r.Render(blocks, 60)
	want := strings.Join([]string{
		"Heading",
		"",
		"Some bold & under",
		"",
		"• one",
		"• two",
		"",
		"1. first",
		"",
		"docs (https://x.io)",
	}, "\n")
	assert.Equal(t, want, out)
	assert.Equal(t, out, r.Render(blocks, 60))

	narrow := r.Render(markup.NewCompiler(nil).Blocks("word"), 2)
	assert.Equal(t, "word", narrow, "tiny widths are raised to a usable minimum")
}

func TestPreviewRenderer_StylesFollowCompiledTags(t *testing.T) {
	r := newPreviewRenderer(io.Discard, "dark")
	r.renderer.SetColorProfile(termenv.ANSI)
	compiler := markup.NewCompiler(nil)

	tests := []struct {
		name    string
		text    string
		want    string
		notWant string
	}{
		{"underscore is underline", "_u_", "\x1b[4m", "\x1b[3m"},
		{"single star is italic", "*i*", "\x1b[3m", "\x1b[4m"},
		{"double star is bold", "**b**", "\x1b[1m", "\x1b[4m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Render(compiler.Blocks(tt.text), 40)
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, tt.notWant)
			assert.NotContains(t, out, "_", "markers never reach the preview")
		})
	}
}

func TestPreviewRenderer_MisnestedTags(t *testing.T) {
	r := NewPreviewRenderer("plain")
	out := r.Render(markup.NewCompiler(nil).Blocks("***x*** after"), 40)
	assert.Equal(t, "x after", out)
}
