// Package reducer applies input actions to the application state.
//
// Reduce is a pure function: it never performs I/O and never mutates its
// input. Every query edit refilters the dataset in full and resets the
// selection to the top; every selection change is followed by a scroll
// reconciliation so the highlighted row stays inside the viewport.
package reducer

import (
	"vimbo/internal/ui/input/types"
	"vimbo/internal/ui/logic"
	"vimbo/internal/ui/state"
)

// Reduce returns the state that results from applying action to s.
// A nil or unknown action returns s unchanged.
func Reduce(s state.AppState, action types.Action) state.AppState {
	switch a := action.(type) {
	case types.InsertTextAction:
		if a.Text == "" {
			return s
		}
		return setQuery(s, s.Query+a.Text)

	case types.BackspaceAction:
		if s.Query == "" {
			return s
		}
		return setQuery(s, dropLastRune(s.Query))

	case types.ClearQueryAction:
		return setQuery(s, "")

	case types.SetQueryAction:
		return setQuery(s, a.Query)

	case types.NavigateAction:
		return navigate(s, a.Direction)

	case types.ResizeAction:
		s.ViewportHeight = a.Height
		if s.ViewportHeight < 1 {
			s.ViewportHeight = 1
		}
		s.ScrollOffset = logic.ReconcileScroll(s.SelectedIndex, len(s.Filtered), s.ViewportHeight)
		return s

	case types.ToggleHelpAction:
		s.HelpVisible = !s.HelpVisible
		return s

	case types.QuitAction:
		s.Quitting = true
		return s
	}

	return s
}

// setQuery replaces the query and recomputes every derived field
func setQuery(s state.AppState, query string) state.AppState {
	s.Query = query
	s.Filtered = logic.Filter(s.Dataset, query)
	s.SelectedIndex, s.ScrollOffset = logic.Reset()
	s.ScrollOffset = logic.ReconcileScroll(s.SelectedIndex, len(s.Filtered), s.ViewportHeight)
	return s
}

func navigate(s state.AppState, dir types.Direction) state.AppState {
	n := len(s.Filtered)
	switch dir {
	case types.DirectionUp:
		s.SelectedIndex = logic.Move(s.SelectedIndex, -1, n)
	case types.DirectionDown:
		s.SelectedIndex = logic.Move(s.SelectedIndex, 1, n)
	case types.DirectionPageUp:
		s.SelectedIndex = logic.Move(s.SelectedIndex, -s.PageSize, n)
	case types.DirectionPageDown:
		s.SelectedIndex = logic.Move(s.SelectedIndex, s.PageSize, n)
	case types.DirectionTop:
		s.SelectedIndex = logic.JumpTop()
	case types.DirectionBottom:
		s.SelectedIndex = logic.JumpBottom(n)
	default:
		return s
	}
	s.ScrollOffset = logic.ReconcileScroll(s.SelectedIndex, n, s.ViewportHeight)
	return s
}

func dropLastRune(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
