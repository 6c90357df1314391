package okaara

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// DefaultWidth is used for centering when the output is not a terminal or
// the terminal size cannot be determined.
const DefaultWidth = 80

// Center pads text with spaces so it is horizontally centered within width
// columns. Text at least width columns wide is returned unchanged, never
// truncated. Widths are display widths (East Asian characters count as two
// cells), and odd padding leaves the extra space on the right.
//
// Center performs no I/O and composes with other modifiers: the result is
// safe to pass to another modifier or to Write.
func Center(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// TerminalSize returns the dimensions of the terminal attached to stdout.
// It fails when stdout is not a terminal.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// width resolves the column count for Centered writes: the real terminal
// width when the output handle is one, DefaultWidth otherwise.
func (p *Prompt) width() int {
	if f, ok := p.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}
