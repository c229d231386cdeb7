// Package markup compiles authored text into HTML.
//
// Compilation is a fixed, ordered pipeline of rules over line blocks. Every
// source line starts as a text block; rules either rewrite a block's HTML in
// place or fold runs of adjacent blocks into one. The order matters:
//
//  1. headings        "# ", "## ", "### " at line start
//  2. inline          **strong**, then *em*, then _u_
//  3. links           [label](url)
//  4. bullet lists    "- item" lines, adjacent items grouped into <ul>
//  5. ordered lists   "N. item" lines, adjacent items grouped into <ol>
//  6. paragraphs      any other non-blank line; blank lines are dropped
//
// Each rule sees the output of the rules before it, so overlapping markers
// resolve by rule order rather than by position. "***x***" compiles to the
// misnested "<strong><em>x</strong></em>", and underscores in a link target
// are turned into <u> tags before the link rule runs, leaving them inside
// the href.
//
// The compiler is total. Anything that does not match a rule is emitted as
// literal (escaped) text.
package markup

import "strings"

// BlockKind classifies a block as it moves through the pipeline
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockHeading
	BlockBulletItem
	BlockOrderedItem
	BlockList
	BlockParagraph
)

// Block is one unit of output. Before grouping each block is one source line.
type Block struct {
	Kind BlockKind
	HTML string
}

// Rule is a named pipeline stage
type Rule struct {
	Name  string
	Apply func([]Block) []Block
}

// Pipeline is an ordered list of rules
type Pipeline []Rule

// DefaultPipeline returns the standard rule order
func DefaultPipeline() Pipeline {
	return Pipeline{
		{Name: "headings", Apply: headingRule},
		{Name: "inline", Apply: inlineRule},
		{Name: "links", Apply: linkRule},
		{Name: "bullet-lists", Apply: bulletListRule},
		{Name: "ordered-lists", Apply: orderedListRule},
		{Name: "paragraphs", Apply: paragraphRule},
	}
}

// Compiler runs a pipeline over text
type Compiler struct {
	pipeline Pipeline
}

// NewCompiler creates a compiler with the given pipeline, or the default
// pipeline when none is given
func NewCompiler(p Pipeline) *Compiler {
	if len(p) == 0 {
		p = DefaultPipeline()
	}
	return &Compiler{pipeline: p}
}

var defaultCompiler = NewCompiler(nil)

// Compile renders text with the default pipeline
func Compile(text string) string {
	return defaultCompiler.Compile(text)
}

// Compile renders text to HTML. It never fails.
func (c *Compiler) Compile(text string) string {
	blocks := c.Blocks(text)

	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(blk.HTML)
	}
	return b.String()
}

// Blocks runs the pipeline and returns the resulting blocks
func (c *Compiler) Blocks(text string) []Block {
	blocks := Split(text)
	for _, rule := range c.pipeline {
		blocks = rule.Apply(blocks)
	}
	return blocks
}

// Rules returns the names of the pipeline stages in order
func (c *Compiler) Rules() []string {
	names := make([]string, len(c.pipeline))
	for i, r := range c.pipeline {
		names[i] = r.Name
	}
	return names
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Split turns text into one escaped text block per line
func Split(text string) []Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	blocks := make([]Block, len(lines))
	for i, line := range lines {
		blocks[i] = Block{Kind: BlockText, HTML: htmlEscaper.Replace(line)}
	}
	return blocks
}
