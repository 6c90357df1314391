package okaara

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxLineSize is 4KB (conservative default)
	DefaultMaxLineSize = 4096
	// EnvMaxLineSize is the environment variable to override the default
	EnvMaxLineSize = "OKAARA_MAX_LINE_SIZE"
)

var (
	ErrLineTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeLine cleans a line of user input before it is interpreted:
// enforces the size limit, validates UTF-8, and strips control characters
// (ESC, NUL, BEL and friends) that could corrupt the terminal or poison
// logs. Newline, tab and carriage return survive.
//
// Read itself never sanitizes; it returns the exact string entered. Layers
// that act on input, like the menu shell, sanitize before tokenizing.
func SanitizeLine(line string) (string, error) {
	limit := maxLineSize()
	if len(line) > limit {
		// Reject rather than truncate so the caller sees a deterministic value.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrLineTooLarge, len(line), limit)
	}

	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	// Fast path: nothing to strip.
	clean := true
	for _, r := range line {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return line, nil
	}

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

func maxLineSize() int {
	if val := os.Getenv(EnvMaxLineSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxLineSize
}

// trimLineEnding removes one trailing line terminator, \n or \r\n. Anything
// else the user typed stays.
func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
