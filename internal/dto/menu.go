package dto

// Menu is the root of a shell menu definition loaded from YAML.
// It uses "mapstructure" tags to match the YAML keys after the generic
// decode step.
type Menu struct {
	Title   string   `json:"title" mapstructure:"title"`
	Home    string   `json:"home" mapstructure:"home"`
	Screens []Screen `json:"screens" mapstructure:"screens"`
}

// Screen is one named section of the shell with its own menu items.
type Screen struct {
	ID    string `json:"id" mapstructure:"id"`
	Items []Item `json:"items" mapstructure:"items"`
}

// Item binds triggers to a declarative action.
type Item struct {
	Triggers    []string `json:"triggers" mapstructure:"triggers"`
	Description string   `json:"description" mapstructure:"description"`
	Action      Action   `json:"action" mapstructure:"action"`
}

// Action describes what a menu item does. The fields are alternatives;
// when several are set they run in the order write, markdown, prompt, goto.
type Action struct {
	// Write prints a line of text, optionally in Color.
	Write string `json:"write" mapstructure:"write"`
	Color string `json:"color" mapstructure:"color"`

	// Markdown renders a markdown snippet.
	Markdown string `json:"markdown" mapstructure:"markdown"`

	// Prompt asks a question and echoes the answer back.
	Prompt string `json:"prompt" mapstructure:"prompt"`

	// Goto transitions to the named screen.
	Goto string `json:"goto" mapstructure:"goto"`
}
