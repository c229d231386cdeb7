package tui

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"golang.org/x/net/html"

	"github.com/pluqqy/quill/pkg/markup"
)

// PreviewRenderer draws compiled blocks for the terminal preview, so the
// preview shows exactly what export produces. Output is cached for the
// last blocks and width.
type PreviewRenderer struct {
	renderer *lipgloss.Renderer

	lastKey   string
	lastWidth int
	lastOut   string
}

// NewPreviewRenderer creates a renderer for a preview style: "auto" (or
// empty) detects the terminal, "dark" and "light" pick a palette, "plain"
// disables styling.
func NewPreviewRenderer(style string) *PreviewRenderer {
	return newPreviewRenderer(os.Stdout, style)
}

func newPreviewRenderer(w io.Writer, style string) *PreviewRenderer {
	r := lipgloss.NewRenderer(w)
	switch style {
	case "dark":
		r.SetHasDarkBackground(true)
	case "light":
		r.SetHasDarkBackground(false)
	case "plain", "notty":
		r.SetColorProfile(termenv.Ascii)
	}
	return &PreviewRenderer{renderer: r}
}

// Render draws blocks at width
func (p *PreviewRenderer) Render(blocks []markup.Block, width int) string {
	if width < 10 {
		width = 10
	}

	var key strings.Builder
	for _, blk := range blocks {
		key.WriteString(blk.HTML)
		key.WriteByte(0)
	}
	if p.lastOut != "" && p.lastWidth == width && p.lastKey == key.String() {
		return p.lastOut
	}

	rendered := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		var lines []string
		for _, line := range p.renderBlock(blk) {
			lines = append(lines, wordwrap.String(line, width))
		}
		rendered = append(rendered, strings.Join(lines, "\n"))
	}

	p.lastKey = key.String()
	p.lastWidth = width
	p.lastOut = strings.Join(rendered, "\n\n")
	return p.lastOut
}

// inlineState tracks open formatting tags. Counters rather than flags keep
// misnested output like <strong><em>x</strong></em> balanced.
type inlineState struct {
	strong, em, u, link int
	heading             int
	ordered             bool
	item                int
}

func (p *PreviewRenderer) style(st inlineState) lipgloss.Style {
	s := p.renderer.NewStyle()
	if st.strong > 0 {
		s = s.Bold(true)
	}
	if st.em > 0 {
		s = s.Italic(true)
	}
	if st.u > 0 {
		s = s.Underline(true)
	}
	switch {
	case st.heading == 1:
		s = s.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "125", Dark: ColorBrand})
	case st.heading > 1:
		s = s.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "91", Dark: ColorActive})
	}
	if st.link > 0 {
		s = s.Foreground(lipgloss.AdaptiveColor{Light: "26", Dark: "39"})
	}
	return s
}

func (p *PreviewRenderer) dim() lipgloss.Style {
	return p.renderer.NewStyle().Foreground(lipgloss.Color(ColorDim))
}

// renderBlock turns one compiled block into terminal lines. List blocks
// produce one line per item.
func (p *PreviewRenderer) renderBlock(blk markup.Block) []string {
	var (
		lines []string
		cur   strings.Builder
		st    inlineState
		hrefs []string
	)
	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
	}

	z := html.NewTokenizer(strings.NewReader(blk.HTML))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tok := z.Token()

		switch tt {
		case html.TextToken:
			cur.WriteString(p.style(st).Render(tok.Data))
		case html.StartTagToken:
			switch tok.Data {
			case "strong":
				st.strong++
			case "em":
				st.em++
			case "u":
				st.u++
			case "a":
				st.link++
				hrefs = append(hrefs, attr(tok, "href"))
			case "h1", "h2", "h3":
				st.heading, _ = strconv.Atoi(tok.Data[1:])
			case "ul":
				st.ordered, st.item = false, 0
			case "ol":
				st.ordered, st.item = true, 0
			case "li":
				flush()
				st.item++
				bullet := "• "
				if st.ordered {
					bullet = strconv.Itoa(st.item) + ". "
				}
				cur.WriteString(p.dim().Render(bullet))
			}
		case html.EndTagToken:
			switch tok.Data {
			case "strong":
				st.strong = decr(st.strong)
			case "em":
				st.em = decr(st.em)
			case "u":
				st.u = decr(st.u)
			case "a":
				st.link = decr(st.link)
				if n := len(hrefs); n > 0 {
					href := hrefs[n-1]
					hrefs = hrefs[:n-1]
					if href != "" {
						cur.WriteString(p.dim().Render(" (" + href + ")"))
					}
				}
			case "h1", "h2", "h3":
				st.heading = 0
			case "li":
				flush()
			}
		}
	}
	flush()
	return lines
}

func attr(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func decr(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}

// renderSource formats compiled HTML for the source view: one block per
// line, wrapped to width
func renderSource(compiled string, width int) string {
	if compiled == "" {
		return ""
	}
	blocks := strings.NewReplacer(
		"</h1>", "</h1>\n",
		"</h2>", "</h2>\n",
		"</h3>", "</h3>\n",
		"</p>", "</p>\n",
		"<ul>", "<ul>\n",
		"<ol>", "<ol>\n",
		"</li>", "</li>\n",
		"</ul>", "</ul>\n",
		"</ol>", "</ol>\n",
	).Replace(compiled)
	blocks = strings.TrimRight(blocks, "\n")
	if width <= 0 {
		return blocks
	}
	return wordwrap.String(blocks, width)
}
