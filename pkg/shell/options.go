package shell

import (
	"log/slog"

	"github.com/pronix/okaara"
)

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the prompt used for all reading and writing. The default
// is a prompt over stdin and stdout.
func WithPrompt(p *okaara.Prompt) Option {
	return func(s *Shell) {
		if p != nil {
			s.prompt = p
		}
	}
}

// WithLogger sets the logger for shell diagnostics. The default discards
// them.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAutoRenderMenu re-renders the active menu after every executed item.
func WithAutoRenderMenu(enabled bool) Option {
	return func(s *Shell) {
		s.autoRender = enabled
	}
}

// WithLongTriggers controls whether the built-in menu items also answer to
// their word forms (home, help, clear, quit, exit) next to the
// single-character triggers. Enabled by default.
func WithLongTriggers(enabled bool) Option {
	return func(s *Shell) {
		s.longTriggers = enabled
	}
}

// WithPromptPrefix sets the template written before each command read. The
// marker $s is replaced with the active screen's id.
func WithPromptPrefix(prefix string) Option {
	return func(s *Shell) {
		s.promptPrefix = prefix
	}
}

// WithExecutor replaces the default dispatcher that simply calls an item's
// Action. A custom executor can wrap every invocation with setup and
// teardown.
func WithExecutor(exec Executor) Option {
	return func(s *Shell) {
		s.executor = exec
	}
}
