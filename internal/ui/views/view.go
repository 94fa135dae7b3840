package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vimbo/internal/domain"
	"vimbo/internal/ui/viewmodels"
)

const (
	searchTitle = " Search (type to filter, Esc to quit) "
	listTitle   = " Vim Cheatsheet "
	helpTitle   = " Help "

	highlightSymbol = ">> "
	commandWidth    = 12

	// Default terminal size used before the first resize message
	defaultWidth  = 80
	defaultHeight = 24

	searchBoxHeight = 3
	boxChrome       = 2 // top and bottom border lines
)

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// ListHeight returns the number of list rows that fit a terminal of the
// given height, with the help panel or the status line below the list.
func ListHeight(termHeight int, helpVisible bool) int {
	if termHeight <= 0 {
		termHeight = defaultHeight
	}
	rows := termHeight - searchBoxHeight - boxChrome - bottomHeight(helpVisible)
	if rows < 1 {
		rows = 1
	}
	return rows
}

func bottomHeight(helpVisible bool) int {
	if !helpVisible {
		return 1
	}
	return lipgloss.Height(viewmodels.HelpText()) + boxChrome
}

// Render produces the complete view for one frame
func (r *Renderer) Render(vm viewmodels.ViewModel, width, height int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	rows := ListHeight(height, vm.HelpVisible)

	sections := []string{
		r.box(searchTitle, r.styles.SearchTitle, []string{r.styles.Query.Render(vm.Query)}, width),
		r.box(listTitle, r.styles.ListTitle, r.renderRows(vm, width-boxChrome, rows), width),
	}
	if vm.HelpVisible {
		sections = append(sections, r.box(helpTitle, r.styles.HelpTitle, r.renderHelp(vm.HelpText), width))
	} else {
		sections = append(sections, r.renderStatus(vm, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderRows renders the visible window, padded to exactly rows lines
func (r *Renderer) renderRows(vm viewmodels.ViewModel, width, rows int) []string {
	lines := make([]string, 0, rows)
	if len(vm.Rows) == 0 {
		lines = append(lines, r.styles.Empty.Render("No matching cheats"))
	}

	for i, entry := range vm.Rows {
		lines = append(lines, r.renderRow(entry, i == vm.SelectedRow, width))
	}

	for len(lines) < rows {
		lines = append(lines, "")
	}
	return lines[:rows]
}

func (r *Renderer) renderRow(entry domain.CheatEntry, selected bool, width int) string {
	if selected {
		plain := highlightSymbol + formatEntry(entry)
		return r.styles.Highlight.Width(width).Render(fit(plain, width))
	}

	line := strings.Repeat(" ", len(highlightSymbol)) +
		r.styles.Category.Render(fmt.Sprintf("[%s] ", entry.Category)) +
		r.styles.Command.Render(fmt.Sprintf("%-*s", commandWidth, entry.Command)) +
		" " +
		r.styles.Description.Render(entry.Description)
	return fit(line, width)
}

func formatEntry(entry domain.CheatEntry) string {
	return fmt.Sprintf("[%s] %-*s %s", entry.Category, commandWidth, entry.Command, entry.Description)
}

func (r *Renderer) renderHelp(text string) []string {
	return strings.Split(r.styles.HelpBody.Render(text), "\n")
}

func (r *Renderer) renderStatus(vm viewmodels.ViewModel, width int) string {
	status := r.styles.Status.Render(fmt.Sprintf("Total: %d  Shown: %d  (? for help)", vm.Total, vm.Shown))
	if vm.HasAbove || vm.HasBelow {
		status += "  " + r.styles.Scroll.Render(scrollHint(vm))
	}
	return fit(status, width)
}

// fit truncates every line of s to width cells
func fit(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

func scrollHint(vm viewmodels.ViewModel) string {
	switch {
	case vm.HasAbove && vm.HasBelow:
		return "↑↓ more"
	case vm.HasAbove:
		return "↑ more"
	default:
		return "↓ more"
	}
}

// box draws body inside a normal border with title embedded in the top edge
func (r *Renderer) box(title string, titleStyle lipgloss.Style, body []string, width int) string {
	inner := width - boxChrome
	if inner < 1 {
		inner = 1
	}
	border := lipgloss.NormalBorder()

	titleText := title
	if lipgloss.Width(titleText) > inner {
		titleText = ""
	}
	fill := inner - lipgloss.Width(titleText)

	var b strings.Builder
	b.WriteString(r.styles.Border.Render(border.TopLeft))
	b.WriteString(titleStyle.Render(titleText))
	b.WriteString(r.styles.Border.Render(strings.Repeat(border.Top, fill) + border.TopRight))
	b.WriteString("\n")

	cell := lipgloss.NewStyle().Width(inner)
	for _, line := range body {
		b.WriteString(r.styles.Border.Render(border.Left))
		b.WriteString(cell.Render(fit(line, inner)))
		b.WriteString(r.styles.Border.Render(border.Right))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Border.Render(border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight))
	return b.String()
}
