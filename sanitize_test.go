package okaara

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain text passes through", "hello world", "hello world", nil},
		{"tabs survive", "col1\tcol2", "col1\tcol2", nil},
		{"null bytes stripped", "a\x00b", "ab", nil},
		{"escape sequences stripped", "\x1b[31mred", "[31mred", nil},
		{"delete char stripped", "a\x7fb", "ab", nil},
		{"unicode preserved", "héllo 日本", "héllo 日本", nil},
		{"empty line ok", "", "", nil},
		{"invalid utf-8 rejected", "ok\xff\xfe", "", ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeLine(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SanitizeLine() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SanitizeLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeLine_SizeLimit(t *testing.T) {
	t.Setenv(EnvMaxLineSize, "10")

	if _, err := SanitizeLine(strings.Repeat("a", 11)); !errors.Is(err, ErrLineTooLarge) {
		t.Errorf("SanitizeLine() error = %v, want ErrLineTooLarge", err)
	}

	if _, err := SanitizeLine(strings.Repeat("a", 10)); err != nil {
		t.Errorf("SanitizeLine() at the limit: %v", err)
	}
}

func TestSanitizeLine_BadEnvFallsBackToDefault(t *testing.T) {
	t.Setenv(EnvMaxLineSize, "not-a-number")

	// Well under DefaultMaxLineSize but over the garbage value, so this
	// only passes when the fallback applies.
	if _, err := SanitizeLine(strings.Repeat("a", 100)); err != nil {
		t.Errorf("SanitizeLine() with unparseable limit: %v", err)
	}
}

func TestTrimLineEnding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"line\n", "line"},
		{"line\r\n", "line"},
		{"line\r", "line"},
		{"line", "line"},
		{"", ""},
		{"keep\ninner\n", "keep\ninner"},
	}

	for _, tt := range tests {
		if got := trimLineEnding(tt.input); got != tt.want {
			t.Errorf("trimLineEnding(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
