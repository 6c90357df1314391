package okaara

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring a Prompt.
type Option func(*Prompt)

// WithInput sets the input handle (default: os.Stdin). The reader is adapted
// to a line-oriented source internally.
func WithInput(r io.Reader) Option {
	return func(p *Prompt) {
		p.input = r
	}
}

// WithSource injects a complete input source, bypassing the reader
// adaptation. Use it to substitute a Script for a real handle.
func WithSource(src LineSource) Option {
	return func(p *Prompt) {
		p.source = src
	}
}

// WithOutput sets the output handle (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(p *Prompt) {
		p.out = w
	}
}

// WithColor enables or disables color formatting (default: enabled). When
// disabled, colored writes emit the text byte-identical, with no escape
// sequences.
func WithColor(enabled bool) Option {
	return func(p *Prompt) {
		p.enableColor = enabled
	}
}

// WithTagRecording enables the write-tag and read-tag logs (default:
// disabled). When disabled the logs stay empty no matter how many tagged
// calls are made.
func WithTagRecording(enabled bool) Option {
	return func(p *Prompt) {
		p.recordTags = enabled
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prompt) {
		p.logger = logger
	}
}

// WithRenderer configures a content renderer (e.g. a markdown renderer)
// applied to writes that opt in with Rendered. Render failures fall back to
// the unrendered text; prompts written by Read are never rendered.
func WithRenderer(renderer ContentRenderer) Option {
	return func(p *Prompt) {
		p.renderer = renderer
	}
}

type writeConfig struct {
	color    Color
	hasColor bool
	tag      string
	hasTag   bool
	centered bool
	newline  bool
	render   bool
}

// WriteOption adjusts the formatting of a single Write call.
type WriteOption func(*writeConfig)

// Colored formats the text in the given color, when color is enabled on the
// prompt. Invalid colors fail the write before anything is emitted.
func Colored(c Color) WriteOption {
	return func(cfg *writeConfig) {
		cfg.color = c
		cfg.hasColor = true
	}
}

// Tagged records the tag in the write-tag log, when tag recording is
// enabled.
func Tagged(tag string) WriteOption {
	return func(cfg *writeConfig) {
		cfg.tag = tag
		cfg.hasTag = true
	}
}

// Centered pads the text so it is centered in the terminal width (or
// DefaultWidth when the output is not a terminal).
func Centered() WriteOption {
	return func(cfg *writeConfig) {
		cfg.centered = true
	}
}

// NoNewline suppresses the trailing newline that Write appends by default.
func NoNewline() WriteOption {
	return func(cfg *writeConfig) {
		cfg.newline = false
	}
}

// Rendered passes the text through the prompt's content renderer, when one
// is configured. Render failures fall back to the unrendered text.
func Rendered() WriteOption {
	return func(cfg *writeConfig) {
		cfg.render = true
	}
}

type readConfig struct {
	promptColor   Color
	hasColor      bool
	tag           string
	hasTag        bool
	interruptible bool
}

// ReadOption adjusts the behavior of a single Read call.
type ReadOption func(*readConfig)

// PromptColored formats the prompt text in the given color, when color is
// enabled on the prompt.
func PromptColored(c Color) ReadOption {
	return func(cfg *readConfig) {
		cfg.promptColor = c
		cfg.hasColor = true
	}
}

// ReadTagged records the tag in the read-tag log, when tag recording is
// enabled. The tag is recorded whatever the outcome: a value, an abort, or
// an exhausted source.
func ReadTagged(tag string) ReadOption {
	return func(cfg *readConfig) {
		cfg.tag = tag
		cfg.hasTag = true
	}
}

// Interruptible makes a user interrupt propagate out of Read as
// ErrInterrupted instead of being converted to ErrAborted.
func Interruptible() ReadOption {
	return func(cfg *readConfig) {
		cfg.interruptible = true
	}
}
