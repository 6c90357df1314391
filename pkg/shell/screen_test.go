package shell

import (
	"context"
	"testing"
)

func TestNewItem_ClonesTriggers(t *testing.T) {
	triggers := []string{"l", "list"}
	item := NewItem("list things", nil, triggers...)

	triggers[0] = "mutated"

	if item.Triggers[0] != "l" {
		t.Errorf("Triggers[0] = %q, want %q", item.Triggers[0], "l")
	}
}

func TestScreen_AddAndLookup(t *testing.T) {
	s := NewScreen("main")
	item := NewItem("list things", nil, "l", "list")
	s.Add(item)

	if got := s.Item("l"); got != item {
		t.Errorf("Item(%q) = %v, want the registered item", "l", got)
	}
	if got := s.Item("list"); got != item {
		t.Errorf("Item(%q) = %v, want the registered item", "list", got)
	}
	if got := s.Item("missing"); got != nil {
		t.Errorf("Item(%q) = %v, want nil", "missing", got)
	}
}

func TestScreen_ReplaceKeepsPosition(t *testing.T) {
	s := NewScreen("main")
	s.Add(NewItem("first", nil, "a"))
	s.Add(NewItem("second", nil, "b"))

	replacement := NewItem("first again", nil, "a")
	s.Add(replacement)

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("len(Items()) = %d, want 2", len(items))
	}
	if items[0] != replacement {
		t.Errorf("Items()[0].Description = %q, want the replacement first", items[0].Description)
	}
	if got := s.Item("a"); got != replacement {
		t.Errorf("Item(%q) still resolves to the old item", "a")
	}
}

func TestScreen_OverlappingTriggersReassign(t *testing.T) {
	s := NewScreen("main")
	old := NewItem("old", nil, "x", "y")
	s.Add(old)

	takeover := NewItem("new", nil, "y")
	s.Add(takeover)

	if got := s.Item("y"); got != takeover {
		t.Errorf("Item(%q) = %q, want the newer item", "y", got.Description)
	}
	if got := s.Item("x"); got != old {
		t.Errorf("Item(%q) = %q, want the original item", "x", got.Description)
	}
	if len(s.Items()) != 2 {
		t.Errorf("len(Items()) = %d, want both items listed", len(s.Items()))
	}
}

func TestScreen_IgnoresUnusableItems(t *testing.T) {
	s := NewScreen("main")
	s.Add(nil)
	s.Add(&Item{Description: "no triggers"})

	if len(s.Items()) != 0 {
		t.Errorf("len(Items()) = %d, want 0", len(s.Items()))
	}
}

func TestScreen_ItemsReturnsCopy(t *testing.T) {
	s := NewScreen("main")
	s.Add(NewItem("only", nil, "o"))

	items := s.Items()
	items[0] = NewItem("tampered", nil, "t")

	if s.Items()[0].Description != "only" {
		t.Error("mutating the returned slice must not affect the screen")
	}
}

func TestItem_NilActionIsNoop(t *testing.T) {
	sh := New()
	item := NewItem("placeholder", nil, "p")

	if err := sh.execute(context.Background(), item, nil); err != nil {
		t.Errorf("execute() with nil action = %v, want nil", err)
	}
}
