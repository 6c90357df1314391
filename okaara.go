package okaara

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ContentRenderer transforms text before it is written (e.g. markdown to
// styled terminal output).
type ContentRenderer func(string) (string, error)

// Prompt orchestrates reads and writes against a pair of terminal handles.
// It applies color and centering on the way out, records write/read tags
// when enabled, and converts an interrupt during a read into an abort unless
// the caller asked for propagation.
//
// A Prompt is owned by a single logical caller: it is not safe for
// concurrent use without external synchronization.
type Prompt struct {
	out    io.Writer
	input  io.Reader
	source LineSource

	enableColor bool
	recordTags  bool

	profile  termenv.Profile
	screen   *termenv.Output
	renderer ContentRenderer
	logger   *slog.Logger

	writeTags tagLog
	readTags  tagLog
}

// New creates a Prompt bound to stdin/stdout with color enabled and tag
// recording disabled, then applies the options.
func New(opts ...Option) *Prompt {
	p := &Prompt{
		out:         os.Stdout,
		enableColor: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if p.source == nil {
		if p.input == nil {
			p.input = os.Stdin
		}
		p.source = newLineReader(p.input)
	}

	// The Ascii profile renders no escape sequences, so disabling color makes
	// every colored write byte-identical to its input.
	p.profile = termenv.Ascii
	if p.enableColor {
		p.profile = termenv.ANSI
	}
	p.screen = termenv.NewOutput(p.out, termenv.WithProfile(p.profile))

	p.writeTags.enabled = p.recordTags
	p.readTags.enabled = p.recordTags

	return p
}

// Write formats text and emits it to the output handle, fully delivered
// before returning. By default a trailing newline is appended; see
// NoNewline, Colored, Centered and Tagged for per-call formatting.
//
// An invalid color fails the call with ErrInvalidColor before anything is
// emitted. I/O failures propagate; tag recording never fails a write.
func (p *Prompt) Write(text string, opts ...WriteOption) error {
	cfg := writeConfig{newline: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return p.emit(text, cfg)
}

func (p *Prompt) emit(text string, cfg writeConfig) error {
	out := text

	if cfg.render && p.renderer != nil {
		rendered, err := p.renderer(out)
		if err != nil {
			p.logger.Debug("renderer failed, writing unrendered text", "err", err)
		} else {
			out = rendered
		}
	}

	// Center before coloring so escape sequences do not count as width.
	if cfg.centered {
		out = Center(out, p.width())
	}

	if cfg.hasColor {
		colored, err := colorize(p.profile, out, cfg.color)
		if err != nil {
			return err
		}
		out = colored
	}

	if cfg.newline {
		out += "\n"
	}

	// One Write call per emit keeps output atomic per call.
	if _, err := io.WriteString(p.out, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if f, ok := p.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}

	if cfg.hasTag {
		p.writeTags.record(cfg.tag)
	}
	return nil
}

// Read writes the prompt text (same formatting path as Write, no trailing
// newline) and blocks for one line of input. The line is returned exactly as
// entered, minus the line terminator; an empty entry is ("", nil), which is
// distinct from an abort.
//
// An interrupt during the read returns ("", ErrAborted) by default, or
// propagates as ErrInterrupted when the Interruptible option is set. An
// exhausted input source returns ErrExhausted. A supplied ReadTagged tag is
// recorded whatever the outcome.
func (p *Prompt) Read(ctx context.Context, prompt string, opts ...ReadOption) (string, error) {
	cfg := readConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	wcfg := writeConfig{color: cfg.promptColor, hasColor: cfg.hasColor}
	if err := p.emit(prompt, wcfg); err != nil {
		return "", err
	}

	if cfg.hasTag {
		defer p.readTags.record(cfg.tag)
	}

	line, err := p.source.ReadLine(ctx)
	if err != nil {
		switch {
		case isInterrupt(err):
			if cfg.interruptible {
				if errors.Is(err, ErrInterrupted) {
					return "", err
				}
				return "", fmt.Errorf("%w: %w", ErrInterrupted, err)
			}
			return "", ErrAborted
		case errors.Is(err, ErrExhausted) || errors.Is(err, io.EOF):
			return "", ErrExhausted
		default:
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	return line, nil
}

// ReadDefault reads a line and substitutes fallback when the user just
// presses enter.
func (p *Prompt) ReadDefault(ctx context.Context, prompt, fallback string, opts ...ReadOption) (string, error) {
	line, err := p.Read(ctx, prompt, opts...)
	if err != nil {
		return "", err
	}
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

// Confirm asks a yes/no question until it gets an answer. A blank entry
// picks the default; y/yes and n/no are accepted case-insensitively.
func (p *Prompt) Confirm(ctx context.Context, prompt string, defaultYes bool, opts ...ReadOption) (bool, error) {
	suffix := " [y/N] "
	if defaultYes {
		suffix = " [Y/n] "
	}
	for {
		line, err := p.Read(ctx, prompt+suffix, opts...)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// Color wraps text in the color's start/reset markers when color is enabled
// on this prompt, and returns it unchanged when disabled. The reset marker
// is always part of the wrapping, so concatenating further text never
// inherits the color. Unknown colors fail with ErrInvalidColor.
func (p *Prompt) Color(text string, c Color) (string, error) {
	return colorize(p.profile, text, c)
}

// ClearScreen erases the visible display and homes the cursor. It is a
// no-op when color (and with it, terminal control) is disabled.
func (p *Prompt) ClearScreen() {
	if p.profile == termenv.Ascii {
		return
	}
	p.screen.ClearScreen()
}

// WriteTags returns a copy of the tags recorded by Write calls, in exact
// call order with duplicates preserved. Empty unless tag recording was
// enabled at construction.
func (p *Prompt) WriteTags() []string {
	return p.writeTags.all()
}

// ReadTags returns a copy of the tags recorded by Read calls, in exact call
// order with duplicates preserved. Empty unless tag recording was enabled at
// construction.
func (p *Prompt) ReadTags() []string {
	return p.readTags.all()
}

// isInterrupt classifies an input error as a user cancel: a scripted or
// signal-driven interrupt, or a context cancelled while the read blocked.
func isInterrupt(err error) bool {
	return errors.Is(err, ErrInterrupted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
