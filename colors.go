package okaara

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Color identifies one of the supported terminal foreground colors. The set
// is closed: only the constants below are legal arguments, anything else
// fails with ErrInvalidColor.
type Color string

const (
	Black   Color = "black"
	Red     Color = "red"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Blue    Color = "blue"
	Magenta Color = "magenta"
	Cyan    Color = "cyan"
	White   Color = "white"

	BrightBlack   Color = "bright-black"
	BrightRed     Color = "bright-red"
	BrightGreen   Color = "bright-green"
	BrightYellow  Color = "bright-yellow"
	BrightBlue    Color = "bright-blue"
	BrightMagenta Color = "bright-magenta"
	BrightCyan    Color = "bright-cyan"
	BrightWhite   Color = "bright-white"
)

var ansiColors = map[Color]termenv.ANSIColor{
	Black:         termenv.ANSIBlack,
	Red:           termenv.ANSIRed,
	Green:         termenv.ANSIGreen,
	Yellow:        termenv.ANSIYellow,
	Blue:          termenv.ANSIBlue,
	Magenta:       termenv.ANSIMagenta,
	Cyan:          termenv.ANSICyan,
	White:         termenv.ANSIWhite,
	BrightBlack:   termenv.ANSIBrightBlack,
	BrightRed:     termenv.ANSIBrightRed,
	BrightGreen:   termenv.ANSIBrightGreen,
	BrightYellow:  termenv.ANSIBrightYellow,
	BrightBlue:    termenv.ANSIBrightBlue,
	BrightMagenta: termenv.ANSIBrightMagenta,
	BrightCyan:    termenv.ANSIBrightCyan,
	BrightWhite:   termenv.ANSIBrightWhite,
}

// enumeration order for Colors(), and the order the demo color table uses
var colorOrder = []Color{
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White,
	BrightBlack, BrightRed, BrightGreen, BrightYellow,
	BrightBlue, BrightMagenta, BrightCyan, BrightWhite,
}

// Colors returns every valid color constant in a stable order.
func Colors() []Color {
	out := make([]Color, len(colorOrder))
	copy(out, colorOrder)
	return out
}

// Valid reports whether c is one of the enumerated color constants.
func (c Color) Valid() bool {
	_, ok := ansiColors[c]
	return ok
}

func (c Color) String() string {
	return string(c)
}

// colorize wraps text in the color's start and reset sequences under the
// given profile. The Ascii profile renders no sequences at all, which is how
// a disabled prompt returns text byte-identical.
func colorize(profile termenv.Profile, text string, c Color) (string, error) {
	seq, ok := ansiColors[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, string(c))
	}
	return profile.String(text).Foreground(seq).String(), nil
}
