package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/pronix/okaara"
	"github.com/pronix/okaara/internal/dto"
	"github.com/pronix/okaara/internal/logging"
	"github.com/pronix/okaara/internal/presentation/tui"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	MenuPath   string // -m: menu definition file, empty for the built-in demo
	ScriptPath string // -s: feed input lines from a file instead of stdin
	NoBanner   bool
	NoColor    bool
	RecordTags bool
	Debug      bool
}

// Execute handles the 'run' command logic: merge settings and flags, build
// the prompt and shell, and drive the loop until the user leaves.
func Execute(opts RunOptions) error {
	settings, err := LoadSettings()
	if err != nil {
		return err
	}

	// Flags override file and environment settings.
	if opts.NoColor {
		settings.Color = "never"
	}
	if opts.NoBanner {
		settings.Banner = false
	}
	if opts.MenuPath != "" {
		settings.Menu = opts.MenuPath
	}

	logger, err := createLogger(opts.Debug, settings.LogLevel)
	if err != nil {
		return err
	}

	menu := DefaultMenu()
	if settings.Menu != "" {
		menu, err = LoadMenu(settings.Menu)
		if err != nil {
			return err
		}
		tui.Success("menu loaded: " + settings.Menu)
	}

	colored := resolveColor(settings.Color)

	promptOpts := []okaara.Option{
		okaara.WithColor(colored),
		okaara.WithLogger(logger),
		okaara.WithRenderer(tui.NewMarkdownRenderer()),
		okaara.WithTagRecording(opts.RecordTags),
	}

	if opts.ScriptPath != "" {
		script, err := loadScript(opts.ScriptPath)
		if err != nil {
			return err
		}
		promptOpts = append(promptOpts, okaara.WithSource(script))
	}

	prompt := okaara.New(promptOpts...)

	sigCtx := newSignalContext(context.Background())
	defer sigCtx.Stop()

	if settings.Banner {
		tui.PrintBanner(os.Stdout, okaara.Version, colored)
	}

	if err := writeGreeting(prompt, menu); err != nil {
		return err
	}

	sh, err := BuildShell(menu, prompt, logger)
	if err != nil {
		return err
	}

	runErr := sh.Run(sigCtx)

	logCompletion(runErr, sigCtx.Signal())

	if opts.RecordTags {
		tui.Info("tag summary")
		tui.Step(fmt.Sprintf("write tags: %v", prompt.WriteTags()))
		tui.Step(fmt.Sprintf("read tags: %v", prompt.ReadTags()))
	}

	return handleExecutionError(runErr)
}

// createLogger configures the application logger. Debug mode wins over the
// configured level.
func createLogger(debug bool, level string) (*slog.Logger, error) {
	if debug {
		return logging.New(slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// resolveColor maps the color setting to a concrete on/off decision; "auto"
// means on only when stdout is a terminal.
func resolveColor(setting string) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// loadScript turns a file of input lines into a scripted source. Blank lines
// are kept: a scripted blank is a legitimate entry, e.g. accepting a default.
func loadScript(path string) (*okaara.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return okaara.NewScript(lines...), nil
}

func writeGreeting(prompt *okaara.Prompt, menu *dto.Menu) error {
	if menu.Title != "" {
		if err := prompt.Write(menu.Title, okaara.Centered(), okaara.Colored(okaara.BrightWhite)); err != nil {
			return err
		}
	}
	return prompt.Write(`type "?" for available commands, "q" to leave`)
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// logCompletion closes the session visually. A SIGINT lands mid-prompt, so
// the [CTRL+C] echo completes that line before the system message.
func logCompletion(err error, sig os.Signal) {
	if sig == os.Interrupt {
		fmt.Printf("[CTRL+C]\n")
		printSystemMessage("Interrupted.")
		return
	}
	if sig != nil {
		fmt.Printf("\n")
		printSystemMessage("Terminated.")
		return
	}
	if err == nil {
		printSystemMessage("Bye.")
	}
}

// handleExecutionError keeps user-driven exits at status zero.
func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, okaara.ErrAborted) {
		return nil
	}
	return err
}
