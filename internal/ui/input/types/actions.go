package types

// Query editing actions
type InsertTextAction struct {
	Text string
}

func (a InsertTextAction) Type() string { return "insert_text" }

type BackspaceAction struct{}

func (a BackspaceAction) Type() string { return "backspace" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// SetQueryAction replaces the whole query. It seeds the startup query.
type SetQueryAction struct {
	Query string
}

func (a SetQueryAction) Type() string { return "set_query" }

// Navigation actions
type NavigateAction struct {
	Direction Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// ResizeAction carries the number of list rows the terminal can show
type ResizeAction struct {
	Height int
}

func (a ResizeAction) Type() string { return "resize" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for Esc
}

func (a QuitAction) Type() string { return "quit" }
