package markup

import (
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold paragraph",
			input:    "**hi**",
			expected: "<p><strong>hi</strong></p>",
		},
		{
			name:     "h1",
			input:    "# Title",
			expected: "<h1>Title</h1>",
		},
		{
			name:     "h2 and h3",
			input:    "## Sub\n### Minor",
			expected: "<h2>Sub</h2><h3>Minor</h3>",
		},
		{
			name:     "heading needs a space",
			input:    "#Title",
			expected: "<p>#Title</p>",
		},
		{
			name:     "four hashes stay literal",
			input:    "#### deep",
			expected: "<p>#### deep</p>",
		},
		{
			name:     "bullet list",
			input:    "- a\n- b",
			expected: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name:     "link",
			input:    "[go](https://x.io)",
			expected: `<p><a href="https://x.io">go</a></p>`,
		},
		{
			name:     "italic and underline",
			input:    "*it* and _un_",
			expected: "<p><em>it</em> and <u>un</u></p>",
		},
		{
			name:     "bold resolved before italic",
			input:    "**b** *i*",
			expected: "<p><strong>b</strong> <em>i</em></p>",
		},
		{
			name:     "non-greedy inline",
			input:    "*a* x *b*",
			expected: "<p><em>a</em> x <em>b</em></p>",
		},
		{
			name:     "ordered list",
			input:    "1. one\n2. two\n10. ten",
			expected: "<ol><li>one</li><li>two</li><li>ten</li></ol>",
		},
		{
			name:     "bullet run then ordered run",
			input:    "- a\n- b\n1. c\n2. d",
			expected: "<ul><li>a</li><li>b</li></ul><ol><li>c</li><li>d</li></ol>",
		},
		{
			name:     "blank line splits lists",
			input:    "- a\n\n- b",
			expected: "<ul><li>a</li></ul><ul><li>b</li></ul>",
		},
		{
			name:     "blank lines produce nothing",
			input:    "first\n\n   \nsecond",
			expected: "<p>first</p><p>second</p>",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "inline inside list and heading",
			input:    "# **Big**\n- *x*",
			expected: "<h1><strong>Big</strong></h1><ul><li><em>x</em></li></ul>",
		},
		{
			name:     "unmatched delimiters stay literal",
			input:    "**open and _half",
			expected: "<p>**open and _half</p>",
		},
		{
			name:     "unterminated link stays literal",
			input:    "[label](https://x.io",
			expected: "<p>[label](https://x.io</p>",
		},
		{
			name:     "html in text is escaped",
			input:    "<script> & \"q\"",
			expected: "<p>&lt;script&gt; &amp; &quot;q&quot;</p>",
		},
		{
			name:     "crlf line endings",
			input:    "# T\r\nbody",
			expected: "<h1>T</h1><p>body</p>",
		},
		{
			name:     "dash without space is a paragraph",
			input:    "-nope",
			expected: "<p>-nope</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compile(tt.input); got != tt.expected {
				t.Errorf("Compile(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompile_OverlapFollowsRuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "triple star misnests",
			input:    "***x***",
			expected: "<p><strong><em>x</strong></em></p>",
		},
		{
			name:     "underscores in link target",
			input:    "[a](u_b_c)",
			expected: `<p><a href="u<u>b</u>c">a</a></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compile(tt.input); got != tt.expected {
				t.Errorf("Compile(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompile_Deterministic(t *testing.T) {
	inputs := []string{
		"",
		"# a\n- b\n- c\n1. d\n**e** *f* _g_ [h](i)",
		strings.Repeat("*x* _y_ **z**\n", 20),
		"[[nested]](a)(b)",
	}
	for _, in := range inputs {
		first := Compile(in)
		second := Compile(in)
		if first != second {
			t.Errorf("Compile(%q) not deterministic: %q vs %q", in, first, second)
		}
	}
}

func TestCompiler_RuleOrder(t *testing.T) {
	c := NewCompiler(nil)
	expected := []string{"headings", "inline", "links", "bullet-lists", "ordered-lists", "paragraphs"}
	got := c.Rules()
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Errorf("Rules() = %v, expected %v", got, expected)
	}
}

func TestCompiler_CustomPipeline(t *testing.T) {
	// Without the paragraph stage plain lines are emitted as escaped text.
	p := DefaultPipeline()[:5]
	c := NewCompiler(p)
	if got := c.Compile("plain <b>"); got != "plain &lt;b&gt;" {
		t.Errorf("Compile() = %q", got)
	}
}

func TestGroupRuns(t *testing.T) {
	blocks := []Block{
		{Kind: BlockBulletItem, HTML: "<li>a</li>"},
		{Kind: BlockParagraph, HTML: "<p>x</p>"},
		{Kind: BlockBulletItem, HTML: "<li>b</li>"},
		{Kind: BlockBulletItem, HTML: "<li>c</li>"},
	}
	got := groupRuns(blocks, BlockBulletItem, "ul")
	if len(got) != 3 {
		t.Fatalf("groupRuns() returned %d blocks, expected 3", len(got))
	}
	if got[2].HTML != "<ul><li>b</li><li>c</li></ul>" {
		t.Errorf("last block = %q", got[2].HTML)
	}
	if got[0].Kind != BlockList || got[1].Kind != BlockParagraph {
		t.Errorf("unexpected kinds: %v, %v", got[0].Kind, got[1].Kind)
	}
}
