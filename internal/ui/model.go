package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"vimbo/internal/domain"
	"vimbo/internal/ui/input"
	"vimbo/internal/ui/input/types"
	"vimbo/internal/ui/reducer"
	"vimbo/internal/ui/state"
	"vimbo/internal/ui/viewmodels"
	"vimbo/internal/ui/views"
)

// Options configures a cheatsheet session
type Options struct {
	Dataset      domain.Dataset
	InitialQuery string
	PageSize     int
}

// Model represents the UI state
type Model struct {
	state state.AppState // centralized state, only changed through the reducer

	// UI-specific state not in AppState
	width  int
	height int

	inputHandler *input.Handler
	renderer     *views.Renderer
}

// NewModel creates a new UI model with the initial query already applied
func NewModel(opts Options) *Model {
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = state.DefaultPageSize
	}

	m := &Model{
		state:        state.NewAppState(opts.Dataset, pageSize),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
	}
	m.fitViewport()
	m.dispatch(types.SetQueryAction{Query: opts.InitialQuery})
	return m
}

// State returns a copy of the current application state
func (m *Model) State() state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fitViewport()

	case tea.KeyMsg:
		action := m.inputHandler.HandleKey(msg)
		if action == nil {
			log.Printf("key ignored: %q", msg.String())
			return m, nil
		}
		log.Printf("key %q -> %s", msg.String(), action.Type())

		m.dispatch(action)
		if m.state.Quitting {
			if quit, ok := action.(types.QuitAction); ok && quit.Force {
				log.Printf("interrupted, quitting")
			} else {
				log.Printf("quit requested")
			}
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Quitting {
		return ""
	}
	vm := viewmodels.Project(m.state, m.state.ViewportHeight)
	return m.renderer.Render(vm, m.width, m.height)
}

// dispatch runs an action through the reducer and keeps the viewport
// height in step with the layout, which shrinks while help is shown.
func (m *Model) dispatch(action types.Action) {
	prev := m.state
	m.state = reducer.Reduce(m.state, action)

	if prev.HelpVisible != m.state.HelpVisible {
		m.fitViewport()
	}

	switch action.(type) {
	case types.InsertTextAction, types.BackspaceAction, types.ClearQueryAction, types.SetQueryAction:
		log.Printf("filter updated; query=%q, shown=%d", m.state.Query, len(m.state.Filtered))
	}
}

func (m *Model) fitViewport() {
	height := views.ListHeight(m.height, m.state.HelpVisible)
	if height != m.state.ViewportHeight {
		m.state = reducer.Reduce(m.state, types.ResizeAction{Height: height})
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled. The terminal is restored on every exit path.
func Run(ctx context.Context, opts Options) error {
	log.Printf("starting session; entries=%d, query=%q", len(opts.Dataset), opts.InitialQuery)

	m := NewModel(opts)
	// Signals reach the program only through ctx so the caller decides the exit code
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithoutSignalHandler())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	log.Printf("session ended")
	return nil
}

// Interrupted reports whether err from Run means the session was stopped by
// a signal or a cancelled context rather than a terminal failure.
func Interrupted(err error) bool {
	return errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)
}
