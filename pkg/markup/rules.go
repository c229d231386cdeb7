package markup

import (
	"regexp"
	"strings"
)

var (
	strongPattern  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emPattern      = regexp.MustCompile(`\*(.+?)\*`)
	underPattern   = regexp.MustCompile(`_(.+?)_`)
	linkPattern    = regexp.MustCompile(`\[([^\[\]]+)\]\(([^()\s]+)\)`)
	orderedPattern = regexp.MustCompile(`^\d+\. `)
)

// headingRule checks the longest marker first so "### x" is not read as "#".
func headingRule(blocks []Block) []Block {
	markers := []struct {
		prefix string
		tag    string
	}{
		{"### ", "h3"},
		{"## ", "h2"},
		{"# ", "h1"},
	}

	for i, blk := range blocks {
		if blk.Kind != BlockText {
			continue
		}
		for _, m := range markers {
			if rest, ok := strings.CutPrefix(blk.HTML, m.prefix); ok {
				blocks[i] = Block{Kind: BlockHeading, HTML: "<" + m.tag + ">" + rest + "</" + m.tag + ">"}
				break
			}
		}
	}
	return blocks
}

func inlineRule(blocks []Block) []Block {
	for i := range blocks {
		html := blocks[i].HTML
		html = strongPattern.ReplaceAllString(html, "<strong>$1</strong>")
		html = emPattern.ReplaceAllString(html, "<em>$1</em>")
		html = underPattern.ReplaceAllString(html, "<u>$1</u>")
		blocks[i].HTML = html
	}
	return blocks
}

func linkRule(blocks []Block) []Block {
	for i := range blocks {
		blocks[i].HTML = linkPattern.ReplaceAllString(blocks[i].HTML, `<a href="$2">$1</a>`)
	}
	return blocks
}

func bulletListRule(blocks []Block) []Block {
	for i, blk := range blocks {
		if blk.Kind != BlockText {
			continue
		}
		if rest, ok := strings.CutPrefix(blk.HTML, "- "); ok {
			blocks[i] = Block{Kind: BlockBulletItem, HTML: "<li>" + rest + "</li>"}
		}
	}
	return groupRuns(blocks, BlockBulletItem, "ul")
}

func orderedListRule(blocks []Block) []Block {
	for i, blk := range blocks {
		if blk.Kind != BlockText {
			continue
		}
		if loc := orderedPattern.FindStringIndex(blk.HTML); loc != nil {
			blocks[i] = Block{Kind: BlockOrderedItem, HTML: "<li>" + blk.HTML[loc[1]:] + "</li>"}
		}
	}
	return groupRuns(blocks, BlockOrderedItem, "ol")
}

func paragraphRule(blocks []Block) []Block {
	out := blocks[:0]
	for _, blk := range blocks {
		if blk.Kind != BlockText {
			out = append(out, blk)
			continue
		}
		if strings.TrimSpace(blk.HTML) == "" {
			continue
		}
		out = append(out, Block{Kind: BlockParagraph, HTML: "<p>" + blk.HTML + "</p>"})
	}
	return out
}

// groupRuns folds each run of adjacent blocks of the given kind into a
// single list block wrapped in tag.
func groupRuns(blocks []Block, kind BlockKind, tag string) []Block {
	out := make([]Block, 0, len(blocks))
	for i := 0; i < len(blocks); {
		if blocks[i].Kind != kind {
			out = append(out, blocks[i])
			i++
			continue
		}

		var b strings.Builder
		b.WriteString("<" + tag + ">")
		for ; i < len(blocks) && blocks[i].Kind == kind; i++ {
			b.WriteString(blocks[i].HTML)
		}
		b.WriteString("</" + tag + ">")
		out = append(out, Block{Kind: BlockList, HTML: b.String()})
	}
	return out
}
