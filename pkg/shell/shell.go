package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pronix/okaara"
	"github.com/pronix/okaara/internal/logging"
)

// ErrExit stops the shell loop. Menu item actions return it (directly or
// wrapped) to quit cleanly; the built-in quit item does exactly that.
var ErrExit = errors.New("exit shell")

const invalidItemMessage = `Invalid menu item; type "?" for a list of available commands`

// DefaultPromptPrefix is the prompt shown before each command, with $s
// replaced by the active screen's id.
const DefaultPromptPrefix = "($s) => "

// Executor runs a selected menu item. Installing a custom one with
// WithExecutor is the hook for pre-run and post-run behavior around every
// action.
type Executor func(ctx context.Context, item *Item, args []string) error

// Shell drives a multi-screen command loop over a Prompt. One screen is
// active at a time and only its menu answers user input, next to a small
// shell-level menu (help, quit, screen navigation) that works everywhere.
type Shell struct {
	prompt       *okaara.Prompt
	logger       *slog.Logger
	promptPrefix string
	autoRender   bool
	longTriggers bool
	executor     Executor

	screens  map[string]*Screen
	home     *Screen
	current  *Screen
	previous *Screen

	// The shell-level menu reuses Screen for its trigger bookkeeping.
	menu *Screen
}

// New creates an empty shell. At least one screen must be added before Run.
func New(opts ...Option) *Shell {
	s := &Shell{
		prompt:       okaara.New(),
		logger:       logging.NewNop(), // Default to no-op
		promptPrefix: DefaultPromptPrefix,
		longTriggers: true,
		screens:      make(map[string]*Screen),
		menu:         NewScreen("shell"),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerBuiltins()
	return s
}

func (s *Shell) registerBuiltins() {
	homeTriggers := []string{"^"}
	previousTriggers := []string{"<"}
	helpTriggers := []string{"?"}
	clearTriggers := []string{"/"}
	quitTriggers := []string{"q"}

	if s.longTriggers {
		homeTriggers = append(homeTriggers, "home")
		helpTriggers = append(helpTriggers, "help")
		clearTriggers = append(clearTriggers, "clear")
		quitTriggers = append(quitTriggers, "quit", "exit")
	}

	s.AddMenuItem(NewItem("move to the home screen", func(context.Context, []string) error {
		s.Home()
		return nil
	}, homeTriggers...))

	s.AddMenuItem(NewItem("move to the previous screen", func(context.Context, []string) error {
		s.Previous()
		return nil
	}, previousTriggers...))

	s.AddMenuItem(NewItem("display help", func(context.Context, []string) error {
		return s.RenderMenu()
	}, helpTriggers...))

	s.AddMenuItem(NewItem("clears the screen", func(context.Context, []string) error {
		s.ClearScreen()
		return nil
	}, clearTriggers...))

	s.AddMenuItem(NewItem("exit", func(context.Context, []string) error {
		return ErrExit
	}, quitTriggers...))
}

// Add registers a screen. A screen added under an id that already exists
// replaces the earlier one. The first screen added becomes both the active
// and the home screen until AddHome says otherwise.
func (s *Shell) Add(screen *Screen) error {
	if screen == nil {
		return errors.New("shell: screen is nil")
	}
	if screen.ID() == "" {
		return errors.New("shell: screen id is empty")
	}

	s.screens[screen.ID()] = screen
	if s.current == nil {
		s.current = screen
	}
	if s.home == nil {
		s.home = screen
	}
	return nil
}

// AddHome registers a screen and marks it as the home screen.
func (s *Shell) AddHome(screen *Screen) error {
	if err := s.Add(screen); err != nil {
		return err
	}
	s.home = screen
	return nil
}

// AddMenuItem registers an item on the shell-level menu, available on every
// screen. Items holding an already registered trigger replace the earlier
// owner, which is also how the built-in triggers can be rebound.
func (s *Shell) AddMenuItem(item *Item) {
	s.menu.Add(item)
}

// Current returns the active screen.
func (s *Shell) Current() *Screen {
	return s.current
}

// Run reads commands and dispatches them against the active screen until the
// user quits, input runs out, or the context is cancelled. The shell-level
// menu is consulted before the screen's own items.
func (s *Shell) Run(ctx context.Context) error {
	if s.home == nil {
		return errors.New("shell: no screens added")
	}

	for {
		line, err := s.prompt.Read(ctx, s.prefix())
		switch {
		case errors.Is(err, okaara.ErrAborted) || errors.Is(err, okaara.ErrExhausted):
			_ = s.prompt.Write("")
			return nil
		case err != nil:
			return fmt.Errorf("shell: read command: %w", err)
		}

		line, err = okaara.SanitizeLine(line)
		if err != nil {
			s.logger.Warn("rejected input line", "err", err)
			if werr := s.prompt.Write(fmt.Sprintf("Invalid input: %v", err)); werr != nil {
				return werr
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		trigger, args := fields[0], fields[1:]

		item := s.menu.Item(trigger)
		if item == nil {
			item = s.current.Item(trigger)
		}
		if item == nil {
			if werr := s.prompt.Write(invalidItemMessage); werr != nil {
				return werr
			}
			continue
		}

		if err := s.execute(ctx, item, args); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			s.logger.Error("menu item failed", "trigger", trigger, "err", err)
			if werr := s.prompt.Write(err.Error(), okaara.Colored(okaara.Red)); werr != nil {
				return werr
			}
		}

		if s.autoRender {
			if err := s.RenderMenu(); err != nil {
				return err
			}
		}
	}
}

func (s *Shell) execute(ctx context.Context, item *Item, args []string) error {
	if s.executor != nil {
		return s.executor(ctx, item, args)
	}
	if item.Action == nil {
		return nil
	}
	return item.Action(ctx, args)
}

// Transition activates the screen with the given id. An unknown id is logged
// and lands on the home screen instead of failing, so a mistyped transition
// never strands the shell.
func (s *Shell) Transition(id string) {
	screen, ok := s.screens[id]
	if !ok {
		s.logger.Error("attempt to transition to non-existent screen", "screen", id)
		if s.home == nil {
			return
		}
		screen = s.home
	}

	s.previous = s.current
	s.current = screen
}

// Previous activates the screen that was active before the last transition,
// or the home screen when there is none.
func (s *Shell) Previous() {
	if s.previous == nil {
		s.Home()
		return
	}
	s.Transition(s.previous.ID())
}

// Home activates the home screen.
func (s *Shell) Home() {
	if s.home == nil {
		return
	}
	s.Transition(s.home.ID())
}

// ClearScreen clears the terminal the prompt writes to.
func (s *Shell) ClearScreen() {
	s.prompt.ClearScreen()
}

// RenderMenu writes the active screen's menu followed by the shell-level
// menu. The built-in help item calls this on demand; WithAutoRenderMenu
// calls it after every executed item.
func (s *Shell) RenderMenu() error {
	if err := s.prompt.Write(""); err != nil {
		return err
	}

	for _, item := range s.current.Items() {
		if err := s.renderItem(item); err != nil {
			return err
		}
	}

	if items := s.menu.Items(); len(items) > 0 {
		if err := s.prompt.Write(""); err != nil {
			return err
		}
		for _, item := range items {
			if err := s.renderItem(item); err != nil {
				return err
			}
		}
	}

	return s.prompt.Write("")
}

// renderItem writes one menu row, using a second line for the description
// when the trigger list is too wide for the aligned column.
func (s *Shell) renderItem(item *Item) error {
	display := strings.Join(item.Triggers, ", ")
	if len(display) < 4 {
		return s.prompt.Write(fmt.Sprintf("   %-4s%s", display, item.Description))
	}

	if err := s.prompt.Write("   " + display); err != nil {
		return err
	}
	return s.prompt.Write("       " + item.Description)
}

// prefix resolves the prompt prefix for the active screen, substituting $s
// with the screen id.
func (s *Shell) prefix() string {
	return strings.ReplaceAll(s.promptPrefix, "$s", s.current.ID())
}
