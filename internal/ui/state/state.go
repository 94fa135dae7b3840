// Package state holds AppState, the single value describing a cheatsheet
// session. The reducer is its only writer.
package state

import (
	"vimbo/internal/domain"
)

// DefaultPageSize is the PageUp/PageDown step
const DefaultPageSize = 10

// DefaultViewportHeight is used until the terminal reports its size
const DefaultViewportHeight = 20

// AppState contains all the application state.
// Only the reducer produces new values of it.
type AppState struct {
	// Read-only context
	Dataset  domain.Dataset // shared, never mutated
	PageSize int            // rows moved by PageUp/PageDown

	// Search state
	Query    string              // current filter query
	Filtered []domain.CheatEntry // entries matching Query, recomputed on every edit

	// Selection state
	SelectedIndex int // index into Filtered, 0 when Filtered is empty

	// UI state
	ScrollOffset   int  // first visible row of Filtered
	ViewportHeight int  // rows available for the list
	HelpVisible    bool // help overlay toggle
	Quitting       bool // set once Esc is processed
}

// NewAppState creates a new application state over dataset.
// Filtered starts out empty; the caller applies the initial query through
// the reducer so that every derived field is computed in one place.
func NewAppState(dataset domain.Dataset, pageSize int) AppState {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return AppState{
		Dataset:        dataset,
		PageSize:       pageSize,
		Filtered:       []domain.CheatEntry{},
		ViewportHeight: DefaultViewportHeight,
	}
}

// HasSelection reports whether a row is highlighted
func (s AppState) HasSelection() bool {
	return len(s.Filtered) > 0
}

// Valid reports whether the selection and scroll invariants hold
func (s AppState) Valid() bool {
	if s.ScrollOffset < 0 {
		return false
	}
	if len(s.Filtered) == 0 {
		return s.SelectedIndex == 0 && s.ScrollOffset == 0
	}
	height := s.ViewportHeight
	if height < 1 {
		height = 1
	}
	return s.SelectedIndex >= 0 &&
		s.SelectedIndex < len(s.Filtered) &&
		s.ScrollOffset <= s.SelectedIndex &&
		s.SelectedIndex < s.ScrollOffset+height
}
