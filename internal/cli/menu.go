package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/pronix/okaara"
	"github.com/pronix/okaara/internal/dto"
	"github.com/pronix/okaara/pkg/shell"
)

// LoadMenu reads a shell menu definition from a YAML file. The document is
// decoded generically first and then mapped onto the DTO, so unknown keys
// are tolerated while known ones are type-checked.
func LoadMenu(path string) (*dto.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu definition: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse menu yaml: %w", err)
	}

	var menu dto.Menu
	if err := mapstructure.Decode(raw, &menu); err != nil {
		return nil, fmt.Errorf("failed to decode menu definition: %w", err)
	}

	if err := validateMenu(&menu); err != nil {
		return nil, fmt.Errorf("invalid menu %s: %w", path, err)
	}
	return &menu, nil
}

// validateMenu rejects definitions that would produce a broken shell:
// missing screens, colliding ids, unknown colors or dangling goto targets.
func validateMenu(m *dto.Menu) error {
	if len(m.Screens) == 0 {
		return errors.New("menu has no screens")
	}

	ids := make(map[string]bool, len(m.Screens))
	for _, sc := range m.Screens {
		if sc.ID == "" {
			return errors.New("screen with empty id")
		}
		if ids[sc.ID] {
			return fmt.Errorf("duplicate screen id %q", sc.ID)
		}
		ids[sc.ID] = true
	}

	if m.Home != "" && !ids[m.Home] {
		return fmt.Errorf("home screen %q is not defined", m.Home)
	}

	for _, sc := range m.Screens {
		for _, it := range sc.Items {
			if len(it.Triggers) == 0 {
				return fmt.Errorf("screen %q: item %q has no triggers", sc.ID, it.Description)
			}
			if c := it.Action.Color; c != "" && !okaara.Color(c).Valid() {
				return fmt.Errorf("screen %q: unknown color %q", sc.ID, c)
			}
			if g := it.Action.Goto; g != "" && !ids[g] {
				return fmt.Errorf("screen %q: goto target %q is not defined", sc.ID, g)
			}
		}
	}
	return nil
}

// DefaultMenu is the built-in demo used when no menu file is given.
func DefaultMenu() *dto.Menu {
	return &dto.Menu{
		Title: "okaara demo",
		Home:  "main",
		Screens: []dto.Screen{
			{
				ID: "main",
				Items: []dto.Item{
					{
						Triggers:    []string{"h", "hello"},
						Description: "print a friendly greeting",
						Action:      dto.Action{Write: "Hello from okaara!", Color: "green"},
					},
					{
						Triggers:    []string{"n", "name"},
						Description: "ask for your name",
						Action:      dto.Action{Prompt: "What is your name? "},
					},
					{
						Triggers:    []string{"m", "md"},
						Description: "render a markdown sample",
						Action: dto.Action{Markdown: "# okaara\n\nPrompts, *colors* and `menus` for terminal programs.\n"},
					},
					{
						Triggers:    []string{"more"},
						Description: "open the extras screen",
						Action:      dto.Action{Goto: "extras"},
					},
				},
			},
			{
				ID: "extras",
				Items: []dto.Item{
					{
						Triggers:    []string{"w", "warn"},
						Description: "print a warning in yellow",
						Action:      dto.Action{Write: "This is what a warning looks like.", Color: "yellow"},
					},
					{
						Triggers:    []string{"e", "err"},
						Description: "print an error in red",
						Action:      dto.Action{Write: "This is what an error looks like.", Color: "red"},
					},
				},
			},
		},
	}
}

// BuildShell turns a menu definition into a runnable shell over the given
// prompt.
func BuildShell(menu *dto.Menu, prompt *okaara.Prompt, logger *slog.Logger) (*shell.Shell, error) {
	sh := shell.New(
		shell.WithPrompt(prompt),
		shell.WithLogger(logger),
	)

	for _, sc := range menu.Screens {
		screen := shell.NewScreen(sc.ID)
		for _, it := range sc.Items {
			screen.Add(shell.NewItem(it.Description, buildAction(prompt, sh, it.Action), it.Triggers...))
		}

		var err error
		if sc.ID == menu.Home {
			err = sh.AddHome(screen)
		} else {
			err = sh.Add(screen)
		}
		if err != nil {
			return nil, err
		}
	}

	return sh, nil
}

// buildAction compiles a declarative menu action into a shell Action. The
// steps run in a fixed order: write, markdown, prompt, goto.
func buildAction(p *okaara.Prompt, sh *shell.Shell, a dto.Action) shell.Action {
	return func(ctx context.Context, args []string) error {
		if a.Write != "" {
			var opts []okaara.WriteOption
			if a.Color != "" {
				opts = append(opts, okaara.Colored(okaara.Color(a.Color)))
			}
			if err := p.Write(a.Write, opts...); err != nil {
				return err
			}
		}

		if a.Markdown != "" {
			if err := p.Write(a.Markdown, okaara.Rendered()); err != nil {
				return err
			}
		}

		if a.Prompt != "" {
			answer, err := p.Read(ctx, a.Prompt, okaara.PromptColored(okaara.Cyan))
			switch {
			case errors.Is(err, okaara.ErrAborted) || errors.Is(err, okaara.ErrExhausted):
				// Backing out of a question is not an action failure; the
				// main loop notices exhaustion on its next read.
				return nil
			case err != nil:
				return err
			}
			if answer != "" {
				if err := p.Write("you entered: " + answer); err != nil {
					return err
				}
			}
		}

		if a.Goto != "" {
			sh.Transition(a.Goto)
		}
		return nil
	}
}
