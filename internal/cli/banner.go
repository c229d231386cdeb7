package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"             _ _ _ ",
	"  __ _ _   _(_) | |",
	" / _` | | | | | | |",
	"| (_| | |_| | | | |",
	" \\__, |\\__,_|_|_|_|",
	"    |_|            ",
}

var bannerColors = []string{"#f472b6", "#e879f9", "#c084fc", "#a78bfa", "#818cf8", "#818cf8"}

// PrintBanner writes the quill logo, colored unless --no-color is set or
// the terminal cannot show color
func PrintBanner(w io.Writer) {
	if quiet {
		return
	}

	p := termenv.ColorProfile()
	if noColor || termenv.EnvNoColor() {
		p = termenv.Ascii
	}

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
}
