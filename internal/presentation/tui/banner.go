package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"        _",
	"  ___  | | __  __ _   __ _  _ __   __ _",
	" / _ \\ | |/ / / _` | / _` || '__| / _` |",
	"| (_) ||   < | (_| || (_| || |   | (_| |",
	" \\___/ |_|\\_\\ \\__,_| \\__,_||_|    \\__,_|",
}

// Warm gradient, top to bottom.
var bannerColors = []string{
	"#f97316",
	"#fb923c",
	"#fbbf24",
	"#f59e0b",
	"#ef4444",
}

// PrintBanner writes the okaara ASCII art banner and version line. With
// colored false the banner comes out as plain text.
func PrintBanner(out io.Writer, version string, colored bool) {
	p := termenv.Ascii
	if colored {
		p = termenv.ANSI256
	}

	fmt.Fprintln(out)
	for i, line := range bannerLines {
		fmt.Fprintln(out, p.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, p.String(fmt.Sprintf("  interactive prompts, v%s", version)).Faint())
	fmt.Fprintln(out)
}
