package input

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vimbo/internal/ui/input/types"
)

// Handler translates key messages into actions
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// HandleKey maps a key message to at most one action.
// Unbound keys that are not printable yield nil.
func (h *Handler) HandleKey(msg tea.KeyMsg) types.Action {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return types.QuitAction{}
	case key.Matches(msg, h.keys.Interrupt):
		return types.QuitAction{Force: true}
	case key.Matches(msg, h.keys.Help):
		return types.ToggleHelpAction{}
	case key.Matches(msg, h.keys.ClearQuery):
		return types.ClearQueryAction{}
	case key.Matches(msg, h.keys.Backspace):
		return types.BackspaceAction{}
	case key.Matches(msg, h.keys.Up):
		return types.NavigateAction{Direction: types.DirectionUp}
	case key.Matches(msg, h.keys.Down):
		return types.NavigateAction{Direction: types.DirectionDown}
	case key.Matches(msg, h.keys.PageUp):
		return types.NavigateAction{Direction: types.DirectionPageUp}
	case key.Matches(msg, h.keys.PageDown):
		return types.NavigateAction{Direction: types.DirectionPageDown}
	case key.Matches(msg, h.keys.Top):
		return types.NavigateAction{Direction: types.DirectionTop}
	case key.Matches(msg, h.keys.Bottom):
		return types.NavigateAction{Direction: types.DirectionBottom}
	}

	if text := printableText(msg); text != "" {
		return types.InsertTextAction{Text: text}
	}
	return nil
}

// printableText returns the characters a key message would type, or ""
// when the key is not plain text input.
func printableText(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}

	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		var b strings.Builder
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				b.WriteRune(r)
			}
		}
		return b.String()
	default:
		return ""
	}
}
