package pager

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/noborus/ov/oviewer"

	"vimbo/internal/domain"
)

// PageFunc displays content interactively
type PageFunc func(content string) error

// Pager writes cheat listings, through ov when the output is a terminal
type Pager struct {
	out      io.Writer
	terminal bool
	page     PageFunc
}

type fdWriter interface {
	Fd() uintptr
}

// New creates a pager writing to out
func New(out io.Writer) *Pager {
	return &Pager{
		out:      out,
		terminal: isTerminal(out),
		page:     ShowInOV,
	}
}

// NewWithPageFunc creates a pager that always pages through page
func NewWithPageFunc(out io.Writer, page PageFunc) *Pager {
	return &Pager{out: out, terminal: true, page: page}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// List shows entries, one per line
func (p *Pager) List(entries []domain.CheatEntry) error {
	content := Format(entries)
	if p.terminal {
		if err := p.page(content); err != nil {
			return fmt.Errorf("page cheats: %w", err)
		}
		return nil
	}

	if _, err := io.WriteString(p.out, content); err != nil {
		return fmt.Errorf("write cheats: %w", err)
	}
	return nil
}

// Format lays out entries in aligned columns
func Format(entries []domain.CheatEntry) string {
	categoryWidth, commandWidth := 0, 0
	for _, e := range entries {
		categoryWidth = max(categoryWidth, len(e.Category)+2)
		commandWidth = max(commandWidth, len(e.Command))
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%-*s  %-*s  %s\n",
			categoryWidth, "["+e.Category+"]",
			commandWidth, e.Command,
			e.Description)
	}
	return b.String()
}

// ShowInOV shows content using the ov pager
func ShowInOV(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Leave nothing behind on the screen after the pager exits
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
