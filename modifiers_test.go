package okaara

import (
	"os"
	"strings"
	"testing"

	"golang.org/x/term"
)

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"even padding", "hi", 6, "  hi  "},
		{"odd padding keeps extra space right", "abc", 8, "  abc   "},
		{"exact width unchanged", "12345", 5, "12345"},
		{"wider than width unchanged", "a long line", 4, "a long line"},
		{"zero width unchanged", "text", 0, "text"},
		{"negative width unchanged", "text", -3, "text"},
		{"empty text becomes all padding", "", 4, "    "},
		{"east asian runes count double", "日本", 8, "  日本  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Center(tt.text, tt.width)
			if got != tt.want {
				t.Errorf("Center(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestCenter_NeverTruncates(t *testing.T) {
	text := strings.Repeat("x", 120)
	if got := Center(text, 80); got != text {
		t.Errorf("Center truncated oversized text: got %d chars", len(got))
	}
}

func TestTerminalSize(t *testing.T) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is not a terminal")
	}

	w, h, err := TerminalSize()
	if err != nil {
		t.Fatalf("TerminalSize() error: %v", err)
	}
	if w <= 0 || h <= 0 {
		t.Errorf("TerminalSize() = %dx%d, want positive dimensions", w, h)
	}
}

func TestPromptWidth_FallsBackWithoutTerminal(t *testing.T) {
	p := New(WithOutput(&strings.Builder{}))
	if got := p.width(); got != DefaultWidth {
		t.Errorf("width() = %d, want DefaultWidth %d for non-file output", got, DefaultWidth)
	}
}
