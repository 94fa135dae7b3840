package viewmodels

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"

	"vimbo/internal/domain"
	"vimbo/internal/ui/input"
	"vimbo/internal/ui/state"
)

// NoSelection marks a view model without a highlighted row
const NoSelection = -1

// ViewModel is everything the renderer needs to draw one frame
type ViewModel struct {
	Rows        []domain.CheatEntry // visible window of the filtered list
	SelectedRow int                 // index into Rows, or NoSelection
	Query       string
	Total       int // entries in the dataset
	Shown       int // entries matching the query
	HasAbove    bool
	HasBelow    bool
	HelpVisible bool
	HelpText    string // static help block, empty unless HelpVisible
}

var staticHelp = sync.OnceValue(func() string {
	h := help.New()
	var b strings.Builder
	b.WriteString("Typing filters cheats\n")
	b.WriteString(h.FullHelpView(input.DefaultKeyMap().FullHelp()))
	return b.String()
})

// HelpText returns the help block shown by the help overlay
func HelpText() string {
	return staticHelp()
}

// Project transforms application state into view-ready data.
// It has no side effects; height is the number of list rows on screen.
func Project(s state.AppState, height int) ViewModel {
	if height < 1 {
		height = 1
	}

	vm := ViewModel{
		SelectedRow: NoSelection,
		Query:       s.Query,
		Total:       len(s.Dataset),
		Shown:       len(s.Filtered),
		HelpVisible: s.HelpVisible,
	}

	start := s.ScrollOffset
	if start > len(s.Filtered) {
		start = len(s.Filtered)
	}
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(s.Filtered) {
		end = len(s.Filtered)
	}

	vm.Rows = s.Filtered[start:end:end]
	vm.HasAbove = start > 0
	vm.HasBelow = end < len(s.Filtered)

	if s.HasSelection() {
		row := s.SelectedIndex - start
		if row >= 0 && row < len(vm.Rows) {
			vm.SelectedRow = row
		}
	}

	if s.HelpVisible {
		vm.HelpText = HelpText()
	}

	return vm
}
