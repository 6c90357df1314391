package shell

import (
	"context"
	"slices"
)

// Action is the function a menu item runs when its trigger is entered. Extra
// words the user typed after the trigger arrive as args. Returning ErrExit
// stops the shell loop; any other error is reported and the loop continues.
type Action func(ctx context.Context, args []string) error

// Item is a single command the user can invoke from a screen's menu. An Item
// may answer to several triggers, typically a short and a long form.
type Item struct {
	// Triggers are the words that select this item. The shell reserves a few
	// triggers for its own menu; screen items must not reuse those.
	Triggers []string

	// Description is the short explanation shown next to the triggers when
	// the menu is rendered.
	Description string

	// Action runs when the item is selected. A nil Action is a placeholder
	// that does nothing, which keeps menu prototyping cheap.
	Action Action
}

// NewItem builds a menu item answering to the given triggers.
func NewItem(description string, action Action, triggers ...string) *Item {
	return &Item{
		Triggers:    slices.Clone(triggers),
		Description: description,
		Action:      action,
	}
}

// Screen is one section of a shell: an ordered menu of items plus an
// identifier used in the prompt prefix and for transitions. Only one screen
// is active at a time.
type Screen struct {
	id        string
	byTrigger map[string]*Item
	ordered   []*Item
}

// NewScreen creates an empty screen. The id identifies the screen in
// transitions and must be unique within a shell.
func NewScreen(id string) *Screen {
	return &Screen{
		id:        id,
		byTrigger: make(map[string]*Item),
	}
}

// ID returns the screen's identifier.
func (s *Screen) ID() string {
	return s.id
}

// Add registers an item on this screen. Every trigger of the item must be
// unique on the screen: an existing item holding any of the same triggers is
// replaced. Items with no triggers are ignored.
func (s *Screen) Add(item *Item) {
	if item == nil || len(item.Triggers) == 0 {
		return
	}

	for _, trigger := range item.Triggers {
		s.byTrigger[trigger] = item
	}

	// Replace in place when an item with the same trigger set was already
	// registered, so the menu keeps its original position.
	for i, existing := range s.ordered {
		if slices.Equal(existing.Triggers, item.Triggers) {
			s.ordered[i] = item
			return
		}
	}
	s.ordered = append(s.ordered, item)
}

// Item returns the item registered for trigger, or nil if there is none.
func (s *Screen) Item(trigger string) *Item {
	return s.byTrigger[trigger]
}

// Items returns the screen's menu in registration order.
func (s *Screen) Items() []*Item {
	return slices.Clone(s.ordered)
}
