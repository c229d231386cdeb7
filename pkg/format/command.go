package format

import (
	"fmt"
	"strings"
)

// Kind identifies a formatting command
type Kind int

const (
	KindBold Kind = iota
	KindItalic
	KindUnderline
	KindHeading
	KindBulletList
	KindNumberedList
	KindLink
)

var kindNames = map[Kind]string{
	KindBold:         "bold",
	KindItalic:       "italic",
	KindUnderline:    "underline",
	KindHeading:      "heading",
	KindBulletList:   "bullet-list",
	KindNumberedList: "numbered-list",
	KindLink:         "link",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a command name (as typed on the command line) to a Kind
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "b", "bold":
		return KindBold, nil
	case "i", "italic":
		return KindItalic, nil
	case "u", "underline":
		return KindUnderline, nil
	case "h", "heading":
		return KindHeading, nil
	case "ul", "bullet", "bullets", "bullet-list":
		return KindBulletList, nil
	case "ol", "numbered", "numbered-list":
		return KindNumberedList, nil
	case "link":
		return KindLink, nil
	}
	return 0, fmt.Errorf("unknown formatting command: %s", name)
}

// Command is a formatting intent. Commands never touch editor state; they
// are handed to Apply together with the text and selection they act on.
type Command struct {
	Kind  Kind
	Level int    // heading level, 1..3
	Text  string // link label used when nothing is selected
	URL   string // link target
}

func Bold() Command         { return Command{Kind: KindBold} }
func Italic() Command       { return Command{Kind: KindItalic} }
func Underline() Command    { return Command{Kind: KindUnderline} }
func BulletList() Command   { return Command{Kind: KindBulletList} }
func NumberedList() Command { return Command{Kind: KindNumberedList} }

// Heading builds a heading command; levels outside 1..3 are clamped
func Heading(level int) Command {
	return Command{Kind: KindHeading, Level: clampLevel(level)}
}

// Link builds a link command. Empty text or url fall back to the
// placeholders passed to Apply.
func Link(text, url string) Command {
	return Command{Kind: KindLink, Text: text, URL: url}
}

func (c Command) String() string {
	switch c.Kind {
	case KindHeading:
		return fmt.Sprintf("heading(%d)", clampLevel(c.Level))
	case KindLink:
		return fmt.Sprintf("link(%q, %q)", c.Text, c.URL)
	}
	return c.Kind.String()
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 3 {
		return 3
	}
	return level
}
